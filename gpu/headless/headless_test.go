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

package headless_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/gpu"
	"github.com/jepebe/pixelengine/gpu/headless"
	"github.com/jepebe/pixelengine/test"
)

// compile time check
var _ gpu.Device = (*headless.Device)(nil)

func TestBuffers(t *testing.T) {
	dev := headless.NewDevice()

	vao := dev.CreateVertexArray()
	dev.BindVertexArray(vao)

	id := dev.CreateBuffer()
	dev.BindBuffer(gpu.ElementArrayBuffer, id)
	dev.BufferData(gpu.ElementArrayBuffer, []byte{0, 1, 2})
	test.ExpectEquality(t, len(dev.Buffers[id]), 3)
	test.ExpectEquality(t, dev.BufferUpload[id], 1)

	dev.DrawElements(gpu.Triangles, 3, gpu.Uint8)
	d, ok := dev.LastDraw()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Count, 3)
	test.ExpectEquality(t, len(d.Indices), 3)
	test.ExpectEquality(t, d.VertexArray, vao)
}

func TestTextures(t *testing.T) {
	dev := headless.NewDevice()

	id := dev.CreateTexture()
	dev.BindTexture(0, id)
	dev.TexImage2D(3, 2, gpu.Red, gpu.Nearest, []byte{1, 2, 3, 4, 5, 6})

	tex := dev.Textures[id]
	test.ExpectEquality(t, tex.Uploads, 1)
	test.ExpectEquality(t, len(tex.Pix), 6)

	dev.TexSubImage2D(1, 1, 2, 1, gpu.Red, []byte{9, 9})
	test.ExpectEquality(t, tex.SubUploads, 1)
	test.ExpectEquality(t, tex.Pix[3], uint8(4))
	test.ExpectEquality(t, tex.Pix[4], uint8(9))
	test.ExpectEquality(t, tex.Pix[5], uint8(9))
	test.ExpectEquality(t, tex.LastSub, [4]int{1, 1, 2, 1})
}

func TestUniformSnapshot(t *testing.T) {
	dev := headless.NewDevice()

	prg := dev.CreateProgram()
	dev.UseProgram(prg)
	loc := dev.UniformLocation(prg, "model")
	test.ExpectEquality(t, dev.UniformLocation(prg, "model"), loc)

	dev.UniformMat4(loc, mgl32.Ident4())
	dev.DrawArrays(gpu.Points, 0, 1)

	dev.UniformMat4(loc, mgl32.Scale3D(2, 2, 2))
	dev.DrawArrays(gpu.Points, 0, 1)

	test.ExpectEquality(t, len(dev.Draws), 2)
	test.ExpectEquality(t, dev.Draws[0].Uniforms["model"].(mgl32.Mat4), mgl32.Ident4())
	test.ExpectEquality(t, dev.Draws[1].Uniforms["model"].(mgl32.Mat4), mgl32.Scale3D(2, 2, 2))
}

func TestCompileOutcome(t *testing.T) {
	dev := headless.NewDevice()
	dev.Compile = func(stage gpu.ShaderStage, source string) (string, bool) {
		return "bad", stage != gpu.FragmentStage
	}

	v := dev.CreateShader(gpu.VertexStage)
	_, ok := dev.CompileShader(v, "")
	test.ExpectSuccess(t, ok)

	f := dev.CreateShader(gpu.FragmentStage)
	log, ok := dev.CompileShader(f, "")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, log, "bad")
}

func TestAttribLocations(t *testing.T) {
	dev := headless.NewDevice()
	prg := dev.CreateProgram()

	dev.BindAttribLocation(prg, 0, "position")
	dev.BindAttribLocation(prg, 1, "color")

	// bindings take effect at link time
	test.ExpectEquality(t, len(dev.AttribLocations(prg)), 0)

	_, ok := dev.LinkProgram(prg)
	test.ExpectSuccess(t, ok)
	locs := dev.AttribLocations(prg)
	test.ExpectEquality(t, len(locs), 2)
	test.ExpectEquality(t, locs["position"], 0)
	test.ExpectEquality(t, locs["color"], 1)

	// a failed link leaves the previous bindings in effect
	dev.BindAttribLocation(prg, 2, "color")
	dev.Link = func(uint32) (string, bool) { return "bad", false }
	_, ok = dev.LinkProgram(prg)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, dev.AttribLocations(prg)["color"], 1)
}
