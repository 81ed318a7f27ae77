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

package text_test

import (
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/font"
	"github.com/jepebe/pixelengine/gpu"
	"github.com/jepebe/pixelengine/gpu/headless"
	"github.com/jepebe/pixelengine/shader"
	"github.com/jepebe/pixelengine/spaces"
	"github.com/jepebe/pixelengine/test"
	"github.com/jepebe/pixelengine/text"
)

func newRenderer(t *testing.T, mode text.Mode) (*headless.Device, *text.Renderer) {
	t.Helper()

	fnt, err := font.Default(12)
	test.DemandSuccess(t, err)

	dev := headless.NewDevice()
	r, err := text.New(dev, shader.NewCatalogue(dev, ""), fnt, mode)
	test.DemandSuccess(t, err)

	return dev, r
}

func TestGlyphPositions(t *testing.T) {
	for _, mode := range []text.Mode{text.PointGlyphs, text.QuadGlyphs} {
		dev, r := newRenderer(t, mode)
		test.ExpectEquality(t, r.Mode(), mode)

		sp := spaces.NewSpaces(320, 200)
		test.ExpectSuccess(t, r.DrawString(sp, 10, 20, "Hello", 1, 0), mode)

		test.ExpectEquality(t, r.GlyphCount(), 5, mode)
		gw := float32(r.Font().GlyphWidth)
		for i, p := range r.Positions() {
			test.ExpectEquality(t, p, mgl32.Vec3{float32(i) * gw, 0, 0}, mode)
		}

		d, ok := dev.LastDraw()
		test.DemandSuccess(t, ok)
		if mode == text.PointGlyphs {
			test.ExpectEquality(t, d.Mode, gpu.Points)
			test.ExpectEquality(t, d.Count, 5)
			_, ok = d.Uniforms["glyph_size"]
			test.ExpectSuccess(t, ok)
		} else {
			test.ExpectEquality(t, d.Mode, gpu.Triangles)
			test.ExpectEquality(t, d.Count, 30)
		}

		// the string is placed by the model matrix
		model := d.Uniforms["model"].(mgl32.Mat4)
		o := model.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
		test.ExpectApproximate(t, o.X(), 10, 0.0001)
		test.ExpectApproximate(t, o.Y(), 20, 0.0001)

		test.ExpectEquality(t, d.Uniforms["color"].(mgl32.Vec4), spaces.White)
		test.ExpectEquality(t, sp.Model.Matrix(), mgl32.Ident4())
		test.ExpectEquality(t, sp.Model.Depth(), 0)
	}
}

func TestScaleAndRotation(t *testing.T) {
	dev, r := newRenderer(t, text.QuadGlyphs)

	sp := spaces.NewSpaces(320, 200)
	test.ExpectSuccess(t, r.DrawString(sp, 100, 100, "ab", 2, math.Pi/2))

	d, _ := dev.LastDraw()
	model := d.Uniforms["model"].(mgl32.Mat4)

	// the second glyph is advanced along the rotated x axis, which is now
	// pointing down the screen
	gw := float32(r.Font().GlyphWidth)
	p := model.Mul4x1(mgl32.Vec4{gw, 0, 0, 1})
	test.ExpectApproximate(t, p.X(), 100, 0.001)
	test.ExpectApproximate(t, p.Y(), 100+2*gw, 0.001)
}

func TestLongString(t *testing.T) {
	dev, r := newRenderer(t, text.PointGlyphs)

	sp := spaces.NewSpaces(320, 200)
	s := strings.Repeat("x", text.MaxGlyphs+10)
	test.ExpectSuccess(t, r.DrawString(sp, 0, 0, s, 1, 0))

	test.ExpectEquality(t, len(dev.Draws), 2)
	test.ExpectEquality(t, dev.Draws[0].Count, text.MaxGlyphs)
	test.ExpectEquality(t, dev.Draws[1].Count, 10)

	// positions carry on from the first draw call
	p := r.Positions()
	test.ExpectEquality(t, p[0].X(), float32(text.MaxGlyphs*r.Font().GlyphWidth))
}

func TestEmptyString(t *testing.T) {
	dev, r := newRenderer(t, text.PointGlyphs)
	sp := spaces.NewSpaces(320, 200)
	test.ExpectSuccess(t, r.DrawString(sp, 0, 0, "", 1, 0))
	test.ExpectEquality(t, len(dev.Draws), 0)
	test.ExpectEquality(t, r.GlyphCount(), 0)
}
