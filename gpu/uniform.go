// This file is part of pixelengine.
//
// pixelengine is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pixelengine is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pixelengine.  If not, see <https://www.gnu.org/licenses/>.

package gpu

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/curated"
)

// Sentinal error patterns.
const (
	WrongUniformValue = "gpu: %T is not a valid value for a %s uniform"
)

// UniformType is the type of a named shader uniform.
type UniformType int

// List of valid UniformType values.
const (
	Mat4 UniformType = iota
	Vec4
	Vec3
	Vec2
	Vec1
	IVec1
	UVec1
	numUniformTypes
)

func (u UniformType) String() string {
	switch u {
	case Mat4:
		return "mat4"
	case Vec4:
		return "vec4"
	case Vec3:
		return "vec3"
	case Vec2:
		return "vec2"
	case Vec1:
		return "float"
	case IVec1:
		return "int"
	case UVec1:
		return "uint"
	}
	return fmt.Sprintf("UniformType(%d)", int(u))
}

// UniformSetter uploads a value to a uniform location. The value must be of
// the Go type that corresponds to the uniform type (see UniformSetterFor).
type UniformSetter func(dev Device, loc int32, value any) error

// the dispatch table is indexed by UniformType. entries are selected once, when
// the uniform is registered with a program, and not per call.
var uniformSetters = [numUniformTypes]UniformSetter{
	Mat4: func(dev Device, loc int32, value any) error {
		v, ok := value.(mgl32.Mat4)
		if !ok {
			return wrongUniformValue(Mat4, value)
		}
		dev.UniformMat4(loc, v)
		return nil
	},
	Vec4: func(dev Device, loc int32, value any) error {
		v, ok := value.(mgl32.Vec4)
		if !ok {
			return wrongUniformValue(Vec4, value)
		}
		dev.UniformVec4(loc, v)
		return nil
	},
	Vec3: func(dev Device, loc int32, value any) error {
		v, ok := value.(mgl32.Vec3)
		if !ok {
			return wrongUniformValue(Vec3, value)
		}
		dev.UniformVec3(loc, v)
		return nil
	},
	Vec2: func(dev Device, loc int32, value any) error {
		v, ok := value.(mgl32.Vec2)
		if !ok {
			return wrongUniformValue(Vec2, value)
		}
		dev.UniformVec2(loc, v)
		return nil
	},
	Vec1: func(dev Device, loc int32, value any) error {
		switch v := value.(type) {
		case float32:
			dev.Uniform1f(loc, v)
		case float64:
			dev.Uniform1f(loc, float32(v))
		default:
			return wrongUniformValue(Vec1, value)
		}
		return nil
	},
	IVec1: func(dev Device, loc int32, value any) error {
		switch v := value.(type) {
		case int32:
			dev.Uniform1i(loc, v)
		case int:
			dev.Uniform1i(loc, int32(v))
		default:
			return wrongUniformValue(IVec1, value)
		}
		return nil
	},
	UVec1: func(dev Device, loc int32, value any) error {
		switch v := value.(type) {
		case uint32:
			dev.Uniform1ui(loc, v)
		case uint:
			dev.Uniform1ui(loc, uint32(v))
		case bool:
			var b uint32
			if v {
				b = 1
			}
			dev.Uniform1ui(loc, b)
		default:
			return wrongUniformValue(UVec1, value)
		}
		return nil
	},
}

func wrongUniformValue(u UniformType, value any) error {
	return curated.Errorf(WrongUniformValue, value, u)
}

// UniformSetterFor returns the upload function for the uniform type. The
// second return value is false if the type is not supported.
func UniformSetterFor(u UniformType) (UniformSetter, bool) {
	if u < 0 || u >= numUniformTypes {
		return nil, false
	}
	return uniformSetters[u], true
}
