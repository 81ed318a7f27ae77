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

// Package text draws strings with a monospaced glyph atlas.
//
// Strings are drawn left to right with a fixed advance. There is no wrapping
// and no kerning. The position, scale and rotation of a string are applied
// through the model space.
package text

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/batch"
	"github.com/jepebe/pixelengine/buffer"
	"github.com/jepebe/pixelengine/font"
	"github.com/jepebe/pixelengine/gpu"
	"github.com/jepebe/pixelengine/shader"
	"github.com/jepebe/pixelengine/spaces"
	"github.com/jepebe/pixelengine/sprite"
)

// Mode selects how glyphs are sent to the GPU.
type Mode int

// List of valid Mode values.
const (
	// one point per glyph. a geometry shader expands the point into a quad
	PointGlyphs Mode = iota

	// one textured quad per glyph
	QuadGlyphs
)

func (m Mode) String() string {
	switch m {
	case PointGlyphs:
		return "points"
	case QuadGlyphs:
		return "quads"
	}
	return "unknown"
}

// MaxGlyphs is the number of glyphs drawn with one draw call. Longer strings
// are drawn with more than one draw call.
const MaxGlyphs = 2048

// Renderer draws strings.
type Renderer struct {
	dev   gpu.Device
	mode  Mode
	fnt   *font.Font
	atlas *sprite.Sprite
	prg   *shader.Program

	vao   *batch.VertexArray
	pos   *buffer.Buffer[mgl32.Vec3]
	cells *buffer.Buffer[[2]uint32]
	tex   *buffer.Buffer[mgl32.Vec2]

	glyphSize mgl32.Vec2
}

// New is the preferred method of initialisation for the Renderer type.
func New(dev gpu.Device, cat *shader.Catalogue, fnt *font.Font, mode Mode) (*Renderer, error) {
	atlas, err := fnt.Sprite()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		dev:       dev,
		mode:      mode,
		fnt:       fnt,
		atlas:     atlas,
		glyphSize: mgl32.Vec2{float32(fnt.GlyphWidth), float32(fnt.GlyphHeight)},
	}

	switch mode {
	case PointGlyphs:
		err = r.pointBatch(cat)
	default:
		r.mode = QuadGlyphs
		err = r.quadBatch(cat)
	}
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Renderer) pointBatch(cat *shader.Catalogue) error {
	var err error

	r.prg, err = cat.Program(shader.Font)
	if err != nil {
		return err
	}

	r.vao, err = batch.New(r.dev, gpu.Points, MaxGlyphs)
	if err != nil {
		return err
	}
	r.pos, err = buffer.New[mgl32.Vec3](r.dev, gpu.ArrayBuffer, MaxGlyphs)
	if err != nil {
		return err
	}
	r.cells, err = buffer.New[[2]uint32](r.dev, gpu.ArrayBuffer, MaxGlyphs)
	if err != nil {
		return err
	}

	r.vao.AttachStream(r.pos)
	r.vao.AttachStream(r.cells)

	return nil
}

func (r *Renderer) quadBatch(cat *shader.Catalogue) error {
	var err error

	r.prg, err = cat.Program(shader.Glyph)
	if err != nil {
		return err
	}

	r.vao, err = batch.New(r.dev, gpu.Triangles, MaxGlyphs*2)
	if err != nil {
		return err
	}
	r.pos, err = buffer.New[mgl32.Vec3](r.dev, gpu.ArrayBuffer, MaxGlyphs*4)
	if err != nil {
		return err
	}
	r.tex, err = buffer.New[mgl32.Vec2](r.dev, gpu.ArrayBuffer, MaxGlyphs*4)
	if err != nil {
		return err
	}

	r.vao.AttachStream(r.pos)
	r.vao.AttachStream(r.tex)

	return nil
}

// Mode returns the glyph mode of the renderer.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// Font returns the font used by the renderer.
func (r *Renderer) Font() *font.Font {
	return r.fnt
}

// GlyphCount returns the number of glyphs in the most recent draw call.
func (r *Renderer) GlyphCount() int {
	if r.mode == PointGlyphs {
		return r.vao.VertexCount()
	}
	return r.vao.VertexCount() / 4
}

// Positions returns the origin of every glyph in the most recent draw call, in
// model space.
func (r *Renderer) Positions() []mgl32.Vec3 {
	p := r.pos.Slice()
	if r.mode == PointGlyphs {
		return append([]mgl32.Vec3(nil), p...)
	}

	// the first corner of each quad is the origin
	o := make([]mgl32.Vec3, 0, len(p)/4)
	for i := 0; i < len(p); i += 4 {
		o = append(o, p[i])
	}
	return o
}

func (r *Renderer) addGlyph(p mgl32.Vec3, c rune) error {
	col, row := font.Cell(c)

	if r.mode == PointGlyphs {
		if err := r.vao.AddPoint(p); err != nil {
			return err
		}
		return batch.Set(r.vao, 1, [2]uint32{uint32(col), uint32(row)})
	}

	w := r.glyphSize.X()
	h := r.glyphSize.Y()
	err := r.vao.AddQuad(p, p.Add(mgl32.Vec3{0, h, 0}), p.Add(mgl32.Vec3{w, h, 0}), p.Add(mgl32.Vec3{w, 0, 0}))
	if err != nil {
		return err
	}

	u := float32(col) * w
	v := float32(row) * h
	return r.vao.SetTexCoords(1,
		mgl32.Vec2{u, v}, mgl32.Vec2{u, v + h},
		mgl32.Vec2{u + w, v + h}, mgl32.Vec2{u + w, v})
}

func (r *Renderer) room() bool {
	if r.mode == PointGlyphs {
		return r.vao.Room(1, 1)
	}
	return r.vao.Room(4, 2)
}

func (r *Renderer) flush(sp *spaces.Spaces) error {
	r.atlas.Activate(r.dev, 0)

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
	if err := r.prg.SetUniform("color", sp.Tint()); err != nil {
		return err
	}
	if err := r.prg.SetUniform("sprite_texture", int32(0)); err != nil {
		return err
	}
	if r.mode == PointGlyphs {
		if err := r.prg.SetUniform("glyph_size", r.glyphSize); err != nil {
			return err
		}
	}

	return r.vao.Draw()
}

// DrawString draws the text with the upper-left corner of the first glyph at
// (x, y). The text is scaled and then rotated by angle radians about that
// point.
func (r *Renderer) DrawString(sp *spaces.Spaces, x, y float32, text string, scale float32, angle float32) error {
	return sp.Model.With(func() error {
		sp.Model.Translate(x, y, 0)
		sp.Model.Scale(scale, scale, 1)
		sp.Model.Rotate(angle, mgl32.Vec3{0, 0, 1})

		r.vao.Reset()

		var i int
		for _, c := range text {
			if !r.room() {
				if err := r.flush(sp); err != nil {
					return err
				}
				r.vao.Reset()
			}

			p := mgl32.Vec3{float32(i * r.fnt.GlyphWidth), 0, 0}
			if err := r.addGlyph(p, c); err != nil {
				return err
			}
			i++
		}

		return r.flush(sp)
	})
}

// Destroy releases the GPU resources used by the renderer.
func (r *Renderer) Destroy() {
	r.vao.Destroy()
	r.atlas.Destroy()
}
