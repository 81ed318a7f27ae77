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

package shapes

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/batch"
	"github.com/jepebe/pixelengine/buffer"
	"github.com/jepebe/pixelengine/gpu"
	"github.com/jepebe/pixelengine/shader"
	"github.com/jepebe/pixelengine/spaces"
)

// Grid is a set of dashed lines one unit apart. The lines are built once and
// scaled to the required cell size when drawn.
type Grid struct {
	prg *shader.Program
	vao *batch.VertexArray

	width  int
	height int
}

// NewGrid creates a grid covering width by height units.
func NewGrid(dev gpu.Device, cat *shader.Catalogue, width, height int) (*Grid, error) {
	prg, err := cat.Program(shader.Line)
	if err != nil {
		return nil, err
	}

	lines := max(width-1, 0) + max(height-1, 0)

	vao, err := batch.New(dev, gpu.Lines, max(lines, 1))
	if err != nil {
		return nil, err
	}
	pos, err := buffer.New[mgl32.Vec3](dev, gpu.ArrayBuffer, max(lines*2, 1))
	if err != nil {
		return nil, err
	}
	vao.AttachStream(pos)

	w := float32(width)
	h := float32(height)

	for x := 1; x < width; x++ {
		if err := vao.AddLine(mgl32.Vec3{float32(x), 0, 0}, mgl32.Vec3{float32(x), h, 0}); err != nil {
			return nil, err
		}
	}
	for y := 1; y < height; y++ {
		if err := vao.AddLine(mgl32.Vec3{0, float32(y), 0}, mgl32.Vec3{w, float32(y), 0}); err != nil {
			return nil, err
		}
	}

	return &Grid{
		prg:    prg,
		vao:    vao,
		width:  width,
		height: height,
	}, nil
}

// Lines returns the number of lines in the grid.
func (g *Grid) Lines() int {
	return g.vao.IndexCount()
}

// Draw the grid with cells of size by size. Dash and gap sizes are in
// pixels. A gap size of zero draws solid lines.
func (g *Grid) Draw(sp *spaces.Spaces, size float32, dashSize float32, gapSize float32) error {
	return sp.Model.With(func() error {
		sp.Model.Scale(size, size, 1)

		// a program that failed to build has already been logged
		if !g.prg.Activate() {
			return nil
		}

		uniforms := []struct {
			name  string
			value any
		}{
			{"projection_view", sp.ProjectionView()},
			{"model", sp.Model.Matrix()},
			{"color", sp.Tint()},
			{"resolution", sp.Resolution()},
			{"dash_size", dashSize},
			{"gap_size", gapSize},
		}
		for _, u := range uniforms {
			if err := g.prg.SetUniform(u.name, u.value); err != nil {
				return err
			}
		}

		return g.vao.Draw()
	})
}

// Destroy releases the GPU resources used by the grid.
func (g *Grid) Destroy() {
	g.vao.Destroy()
}
