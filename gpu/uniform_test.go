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

package gpu_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/gpu"
	"github.com/jepebe/pixelengine/gpu/headless"
	"github.com/jepebe/pixelengine/test"
)

func TestUniformSetters(t *testing.T) {
	dev := headless.NewDevice()
	prg := dev.CreateProgram()
	dev.UseProgram(prg)

	set, ok := gpu.UniformSetterFor(gpu.Vec4)
	test.ExpectSuccess(t, ok)

	loc := dev.UniformLocation(prg, "color")
	test.ExpectSuccess(t, set(dev, loc, mgl32.Vec4{1, 0, 0, 1}))
	v, ok := dev.Uniform("color")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(mgl32.Vec4), mgl32.Vec4{1, 0, 0, 1})

	// wrong go type for the uniform
	test.ExpectSuccess(t, curated.Is(set(dev, loc, mgl32.Vec3{}), gpu.WrongUniformValue))

	set, ok = gpu.UniformSetterFor(gpu.UVec1)
	test.ExpectSuccess(t, ok)
	test.ExpectSuccess(t, set(dev, loc, true))
	v, _ = dev.Uniform("color")
	test.ExpectEquality(t, v.(uint32), uint32(1))

	_, ok = gpu.UniformSetterFor(gpu.UniformType(100))
	test.ExpectFailure(t, ok)
}

func TestPrimitive(t *testing.T) {
	test.ExpectEquality(t, gpu.Points.IndicesPerPrimitive(), 1)
	test.ExpectEquality(t, gpu.Lines.IndicesPerPrimitive(), 2)
	test.ExpectEquality(t, gpu.Triangles.IndicesPerPrimitive(), 3)
	test.ExpectFailure(t, gpu.Primitive(-1).Valid())
	test.ExpectEquality(t, gpu.Uint16.Size(), 2)
}
