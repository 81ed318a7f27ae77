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

import "fmt"

// DataType is the numeric type of a single component of a buffer element or
// texture texel.
type DataType int

// List of valid DataType values.
const (
	Float32 DataType = iota
	Float64
	Uint8
	Uint16
	Uint32
)

// Size returns the size in bytes of a single component.
func (t DataType) Size() int {
	switch t {
	case Float32:
		return 4
	case Float64:
		return 8
	case Uint8:
		return 1
	case Uint16:
		return 2
	case Uint32:
		return 4
	}
	panic(fmt.Sprintf("gpu: unknown data type (%d)", t))
}

func (t DataType) String() string {
	switch t {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	}
	return fmt.Sprintf("DataType(%d)", int(t))
}

// Primitive is the kind of primitive drawn by a draw call.
type Primitive int

// List of valid Primitive values.
const (
	Points Primitive = iota
	Lines
	Triangles
)

// IndicesPerPrimitive returns the number of vertex indices that make up one
// primitive. Returns zero for an invalid primitive.
func (p Primitive) IndicesPerPrimitive() int {
	switch p {
	case Points:
		return 1
	case Lines:
		return 2
	case Triangles:
		return 3
	}
	return 0
}

// Valid returns true if the primitive is one of the defined values.
func (p Primitive) Valid() bool {
	return p.IndicesPerPrimitive() > 0
}

func (p Primitive) String() string {
	switch p {
	case Points:
		return "points"
	case Lines:
		return "lines"
	case Triangles:
		return "triangles"
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// BufferTarget indicates how a buffer is used.
type BufferTarget int

// List of valid BufferTarget values.
const (
	// vertex attribute data
	ArrayBuffer BufferTarget = iota

	// vertex indices
	ElementArrayBuffer
)

// ShaderStage identifies one stage of a shader program.
type ShaderStage int

// List of valid ShaderStage values.
const (
	VertexStage ShaderStage = iota
	GeometryStage
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case GeometryStage:
		return "geometry"
	case FragmentStage:
		return "fragment"
	}
	return fmt.Sprintf("ShaderStage(%d)", int(s))
}

// TextureFormat is the layout of texels in a texture upload.
type TextureFormat int

// List of valid TextureFormat values.
const (
	Alpha TextureFormat = iota
	Red
	RGB
	RGBA
)

// Channels returns the number of bytes per texel for the format.
func (f TextureFormat) Channels() int {
	switch f {
	case Alpha, Red:
		return 1
	case RGB:
		return 3
	case RGBA:
		return 4
	}
	return 0
}

func (f TextureFormat) String() string {
	switch f {
	case Alpha:
		return "alpha"
	case Red:
		return "red"
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	}
	return fmt.Sprintf("TextureFormat(%d)", int(f))
}

// Filter is the texture sampling filter.
type Filter int

// List of valid Filter values.
const (
	Nearest Filter = iota
	Linear
)
