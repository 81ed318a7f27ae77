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

package shapes_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/gpu"
	"github.com/jepebe/pixelengine/gpu/headless"
	"github.com/jepebe/pixelengine/shader"
	"github.com/jepebe/pixelengine/shapes"
	"github.com/jepebe/pixelengine/spaces"
	"github.com/jepebe/pixelengine/test"
)

func TestRects(t *testing.T) {
	dev := headless.NewDevice()
	rects, err := shapes.NewRects(dev, shader.NewCatalogue(dev, ""), 0)
	test.DemandSuccess(t, err)

	sp := spaces.NewSpaces(320, 200)
	test.ExpectFailure(t, rects.Started())
	test.ExpectSuccess(t, rects.FlushIfStarted(sp))
	test.ExpectEquality(t, len(dev.Draws), 0)

	sp.SetTint(mgl32.Vec4{1, 0, 0, 1})
	for i := 0; i < 3; i++ {
		test.ExpectSuccess(t, rects.Fill(sp, float32(i*10), 0, 5, 5))
	}
	test.ExpectSuccess(t, rects.Started())
	test.ExpectEquality(t, rects.Len(), 3)

	// nothing is drawn until the batch is flushed
	test.ExpectEquality(t, len(dev.Draws), 0)

	test.ExpectSuccess(t, rects.FlushIfStarted(sp))
	test.ExpectFailure(t, rects.Started())
	test.DemandEquality(t, len(dev.Draws), 1)
	test.ExpectEquality(t, dev.Draws[0].Mode, gpu.Triangles)
	test.ExpectEquality(t, dev.Draws[0].Count, 18)

	// a new batch starts empty
	test.ExpectSuccess(t, rects.Fill(sp, 0, 0, 1, 1))
	test.ExpectEquality(t, rects.Len(), 1)
}

func TestRectsAutoFlush(t *testing.T) {
	dev := headless.NewDevice()
	rects, err := shapes.NewRects(dev, shader.NewCatalogue(dev, ""), 2)
	test.DemandSuccess(t, err)

	sp := spaces.NewSpaces(320, 200)
	for i := 0; i < 3; i++ {
		test.ExpectSuccess(t, rects.Fill(sp, 0, 0, 1, 1))
	}

	// the third rectangle did not fit so the first two were drawn
	test.DemandEquality(t, len(dev.Draws), 1)
	test.ExpectEquality(t, dev.Draws[0].Count, 12)
	test.ExpectEquality(t, rects.Len(), 1)
	test.ExpectSuccess(t, rects.Started())

	test.ExpectSuccess(t, rects.Flush(sp))
	test.ExpectEquality(t, len(dev.Draws), 2)
	test.ExpectEquality(t, dev.Draws[1].Count, 6)
	test.ExpectEquality(t, rects.Flushes(), 2)
}

// drawnPositions returns the contents of the position stream of the draw.
func drawnPositions(t *testing.T, dev *headless.Device, d headless.Draw) []mgl32.Vec3 {
	t.Helper()
	attr, ok := dev.VertexArrays[d.VertexArray][0]
	test.DemandSuccess(t, ok)
	data := dev.Buffers[attr.Buffer]

	var pos []mgl32.Vec3
	for i := 0; i+12 <= len(data); i += 12 {
		var v mgl32.Vec3
		for c := range v {
			v[c] = math.Float32frombits(binary.NativeEndian.Uint32(data[i+c*4:]))
		}
		pos = append(pos, v)
	}
	return pos
}

func TestRectsModelSpace(t *testing.T) {
	dev := headless.NewDevice()
	rects, err := shapes.NewRects(dev, shader.NewCatalogue(dev, ""), 0)
	test.DemandSuccess(t, err)

	sp := spaces.NewSpaces(320, 200)

	// filled at identity and drawn while the model space is translated
	test.ExpectSuccess(t, rects.Fill(sp, 0, 0, 5, 5))
	err = sp.Model.With(func() error {
		sp.Model.Translate(100, 0, 0)
		return rects.FlushIfStarted(sp)
	})
	test.ExpectSuccess(t, err)

	d, ok := dev.LastDraw()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, d.Uniforms["model"].(mgl32.Mat4), mgl32.Ident4())
	pos := drawnPositions(t, dev, d)
	test.DemandEquality(t, len(pos), 4)
	test.ExpectApproximate(t, pos[0].X(), 0, 0.0001)
	test.ExpectApproximate(t, pos[2].X(), 5, 0.0001)

	// filled while translated and drawn at identity
	err = sp.Model.With(func() error {
		sp.Model.Translate(100, 20, 0)
		return rects.Fill(sp, 0, 0, 5, 5)
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, rects.FlushIfStarted(sp))

	d, ok = dev.LastDraw()
	test.DemandSuccess(t, ok)
	pos = drawnPositions(t, dev, d)
	test.DemandEquality(t, len(pos), 4)
	test.ExpectApproximate(t, pos[0].X(), 100, 0.0001)
	test.ExpectApproximate(t, pos[0].Y(), 20, 0.0001)
	test.ExpectApproximate(t, pos[2].X(), 105, 0.0001)
	test.ExpectApproximate(t, pos[2].Y(), 25, 0.0001)
}

func TestGrid(t *testing.T) {
	dev := headless.NewDevice()
	grid, err := shapes.NewGrid(dev, shader.NewCatalogue(dev, ""), 4, 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, grid.Lines(), 5)

	sp := spaces.NewSpaces(320, 200)
	test.ExpectSuccess(t, grid.Draw(sp, 8, 2, 1))

	d, ok := dev.LastDraw()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, d.Mode, gpu.Lines)
	test.ExpectEquality(t, d.Count, 10)

	test.ExpectEquality(t, d.Uniforms["model"].(mgl32.Mat4), mgl32.Scale3D(8, 8, 1))
	test.ExpectEquality(t, d.Uniforms["resolution"].(mgl32.Vec2), mgl32.Vec2{320, 200})
	test.ExpectEquality(t, d.Uniforms["dash_size"].(float32), float32(2))
	test.ExpectEquality(t, d.Uniforms["gap_size"].(float32), float32(1))
	test.ExpectEquality(t, d.Uniforms["color"].(mgl32.Vec4), spaces.White)

	test.ExpectEquality(t, sp.Model.Matrix(), mgl32.Ident4())
}
