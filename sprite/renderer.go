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

package sprite

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/batch"
	"github.com/jepebe/pixelengine/buffer"
	"github.com/jepebe/pixelengine/gpu"
	"github.com/jepebe/pixelengine/shader"
	"github.com/jepebe/pixelengine/spaces"
)

// Renderer draws sprites. One renderer is shared by all sprites.
type Renderer struct {
	dev  gpu.Device
	prg  *shader.Program
	quad *batch.VertexArray
}

// UnitQuad is the corners of the quad drawn for every sprite, in the order
// they are added to the vertex array.
var UnitQuad = [4]mgl32.Vec3{
	{0, 0, 0},
	{0, 1, 0},
	{1, 1, 0},
	{1, 0, 0},
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type.
func NewRenderer(dev gpu.Device, cat *shader.Catalogue) (*Renderer, error) {
	prg, err := cat.Program(shader.Sprite)
	if err != nil {
		return nil, err
	}

	quad, err := batch.New(dev, gpu.Triangles, 2)
	if err != nil {
		return nil, err
	}

	pos, err := buffer.New[mgl32.Vec3](dev, gpu.ArrayBuffer, 4)
	if err != nil {
		return nil, err
	}
	tex, err := buffer.New[mgl32.Vec2](dev, gpu.ArrayBuffer, 4)
	if err != nil {
		return nil, err
	}
	quad.AttachStream(pos)
	texSlot := quad.AttachStream(tex)

	err = quad.AddQuad(UnitQuad[0], UnitQuad[1], UnitQuad[2], UnitQuad[3])
	if err != nil {
		return nil, err
	}
	err = quad.SetTexCoords(texSlot,
		UnitQuad[0].Vec2(), UnitQuad[1].Vec2(),
		UnitQuad[2].Vec2(), UnitQuad[3].Vec2())
	if err != nil {
		return nil, err
	}

	return &Renderer{
		dev:  dev,
		prg:  prg,
		quad: quad,
	}, nil
}

func (r *Renderer) draw(sp *spaces.Spaces) error {
	// a program that failed to build has already been logged
	if !r.prg.Activate() {
		return nil
	}

	if err := r.prg.SetUniform("projection_view", sp.ProjectionView()); err != nil {
		return err
	}
	if err := r.prg.SetUniform("model", sp.Model.Matrix()); err != nil {
		return err
	}
	if err := r.prg.SetUniform("texture_model", sp.Texture.Matrix()); err != nil {
		return err
	}
	if err := r.prg.SetUniform("tint", sp.Tint()); err != nil {
		return err
	}
	if err := r.prg.SetUniform("sprite_texture", int32(0)); err != nil {
		return err
	}

	return r.quad.Draw()
}

// Destroy releases the GPU resources used by the renderer. The shader program
// belongs to the catalogue and is not destroyed.
func (r *Renderer) Destroy() {
	r.quad.Destroy()
}
