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

// Rects is a batch of filled rectangles.
type Rects struct {
	prg *shader.Program
	vao *batch.VertexArray

	started bool
	flushes int
}

// NewRects is the preferred method of initialisation for the Rects type.
// Capacity is the number of rectangles in a batch. A capacity of zero or less
// means a quarter of buffer.DefaultCapacity.
func NewRects(dev gpu.Device, cat *shader.Catalogue, capacity int) (*Rects, error) {
	if capacity <= 0 {
		capacity = buffer.DefaultCapacity / 4
	}

	prg, err := cat.Program(shader.Quad)
	if err != nil {
		return nil, err
	}

	vao, err := batch.New(dev, gpu.Triangles, capacity*2)
	if err != nil {
		return nil, err
	}
	pos, err := buffer.New[mgl32.Vec3](dev, gpu.ArrayBuffer, capacity*4)
	if err != nil {
		return nil, err
	}
	col, err := buffer.New[mgl32.Vec4](dev, gpu.ArrayBuffer, capacity*4)
	if err != nil {
		return nil, err
	}
	vao.AttachStream(pos)
	vao.AttachStream(col)

	return &Rects{
		prg: prg,
		vao: vao,
	}, nil
}

func (r *Rects) start() {
	r.vao.Reset()
	r.started = true
}

// Started returns true if there are rectangles waiting to be drawn.
func (r *Rects) Started() bool {
	return r.started
}

// Len returns the number of rectangles waiting to be drawn.
func (r *Rects) Len() int {
	return r.vao.IndexCount() / 2
}

// Flushes returns the number of times the batch has been drawn.
func (r *Rects) Flushes() int {
	return r.flushes
}

// Fill adds a rectangle to the batch in the current tint. The rectangle is
// transformed by the model space as it is when Fill() is called, so a model
// space in effect when the batch is drawn has no effect on it. The batch is
// drawn first if it is full.
func (r *Rects) Fill(sp *spaces.Spaces, x, y, w, h float32) error {
	if !r.started {
		r.start()
	} else if !r.vao.Room(4, 2) {
		if err := r.Flush(sp); err != nil {
			return err
		}
		r.start()
	}

	m := sp.Model.Matrix()
	corner := func(x, y float32) mgl32.Vec3 {
		return m.Mul4x1(mgl32.Vec4{x, y, 0, 1}).Vec3()
	}

	err := r.vao.AddQuad(
		corner(x, y),
		corner(x, y+h),
		corner(x+w, y+h),
		corner(x+w, y))
	if err != nil {
		return err
	}

	c := sp.Tint()
	return r.vao.SetColors(1, c, c, c, c)
}

// Flush draws the batch. Rectangles are already in world space so the model
// space is not used.
func (r *Rects) Flush(sp *spaces.Spaces) error {
	r.started = false

	// a program that failed to build has already been logged
	if !r.prg.Activate() {
		return nil
	}

	if err := r.prg.SetUniform("projection_view", sp.ProjectionView()); err != nil {
		return err
	}
	if err := r.prg.SetUniform("model", mgl32.Ident4()); err != nil {
		return err
	}

	r.flushes++
	return r.vao.Draw()
}

// FlushIfStarted draws the batch if there is anything in it.
func (r *Rects) FlushIfStarted(sp *spaces.Spaces) error {
	if !r.started {
		return nil
	}
	return r.Flush(sp)
}

// Destroy releases the GPU resources used by the batch.
func (r *Rects) Destroy() {
	r.vao.Destroy()
}
