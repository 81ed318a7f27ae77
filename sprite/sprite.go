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
	"image"
	"image/color"

	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/gpu"
	"github.com/jepebe/pixelengine/spaces"
)

// State of the GPU texture of a sprite.
type State int

// List of valid State values.
const (
	Uncreated State = iota
	Clean
	Dirty
)

func (s State) String() string {
	switch s {
	case Uncreated:
		return "uncreated"
	case Clean:
		return "clean"
	case Dirty:
		return "dirty"
	}
	return "unknown"
}

// Sprite is an image that can be drawn.
type Sprite struct {
	pixels Pixels
	format gpu.TextureFormat
	filter gpu.Filter

	// the fraction of the sprite's size that is drawn at the origin. zero is
	// the upper-left corner
	anchor [2]float32

	state State
	dirty image.Rectangle

	// the device is not known until the sprite is first activated
	dev gpu.Device
	id  uint32

	// scratch space used for uploading a dirty region
	scratch []byte
}

// New creates a sprite from the pixels. The pixels are not copied. The
// format of the texture is decided by the policy. A nil policy means
// DefaultPolicy.
func New(pixels Pixels, policy FormatPolicy) (*Sprite, error) {
	if policy == nil {
		policy = DefaultPolicy
	}
	format, err := policy.Format(pixels.Channels)
	if err != nil {
		return nil, err
	}
	if len(pixels.Pix) < pixels.Width*pixels.Height*pixels.Channels {
		return nil, curated.Errorf("sprite: not enough pixel data for %dx%d", pixels.Width, pixels.Height)
	}
	return &Sprite{
		pixels: pixels,
		format: format,
		filter: gpu.Nearest,
		state:  Uncreated,
	}, nil
}

// NewBlank creates a sprite with all pixels set to zero.
func NewBlank(width, height, channels int, policy FormatPolicy) (*Sprite, error) {
	p, err := NewPixels(width, height, channels)
	if err != nil {
		return nil, err
	}
	return New(p, policy)
}

// Width of the sprite in pixels.
func (s *Sprite) Width() int {
	return s.pixels.Width
}

// Height of the sprite in pixels.
func (s *Sprite) Height() int {
	return s.pixels.Height
}

// Pixels returns the CPU copy of the pixels. Changes made to the pixels
// directly will not be uploaded, use SetPixel() or Update().
func (s *Sprite) Pixels() Pixels {
	return s.pixels
}

// Format returns the texture format.
func (s *Sprite) Format() gpu.TextureFormat {
	return s.format
}

// State returns the state of the GPU texture.
func (s *Sprite) State() State {
	return s.state
}

// SetFilter changes the sampling filter. Takes effect when the texture is
// next created.
func (s *Sprite) SetFilter(filter gpu.Filter) {
	s.filter = filter
}

// SetAnchor sets the point of the sprite that is drawn at the origin of the
// model space, as a fraction of the sprite's size.
func (s *Sprite) SetAnchor(x, y float32) {
	s.anchor = [2]float32{x, y}
}

func (s *Sprite) markDirty(r image.Rectangle) {
	if s.state == Uncreated {
		return
	}
	if s.state == Dirty {
		s.dirty = s.dirty.Union(r)
	} else {
		s.dirty = r
	}
	s.state = Dirty
}

// SetPixel changes the colour of a pixel. The change is uploaded when the
// sprite is next activated.
func (s *Sprite) SetPixel(x, y int, c color.Color) error {
	if x < 0 || y < 0 || x >= s.pixels.Width || y >= s.pixels.Height {
		return curated.Errorf(OutOfBounds, "pixel", x, y)
	}
	s.pixels.set(x, y, c)
	s.markDirty(image.Rect(x, y, x+1, y+1))
	return nil
}

// Update replaces all the pixels. The length of pix must match the size of
// the sprite.
func (s *Sprite) Update(pix []byte) error {
	if len(pix) != len(s.pixels.Pix) {
		return curated.Errorf("sprite: update with %d bytes for a sprite of %d bytes", len(pix), len(s.pixels.Pix))
	}
	copy(s.pixels.Pix, pix)
	s.markDirty(image.Rect(0, 0, s.pixels.Width, s.pixels.Height))
	return nil
}

// Activate binds the sprite's texture to the texture unit, creating and
// uploading the texture as required.
func (s *Sprite) Activate(dev gpu.Device, unit int) {
	switch s.state {
	case Uncreated:
		s.dev = dev
		s.id = dev.CreateTexture()
		dev.BindTexture(unit, s.id)
		dev.TexImage2D(s.pixels.Width, s.pixels.Height, s.format, s.filter, s.pixels.Pix)
		s.state = Clean
		return

	case Dirty:
		dev.BindTexture(unit, s.id)
		s.uploadDirty()
		s.state = Clean
		return
	}

	dev.BindTexture(unit, s.id)
}

func (s *Sprite) uploadDirty() {
	r := s.dirty
	stride := r.Dx() * s.pixels.Channels

	// the region is full width so there is no need to copy
	if r.Dx() == s.pixels.Width {
		i := s.pixels.offset(0, r.Min.Y)
		s.dev.TexSubImage2D(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), s.format, s.pixels.Pix[i:i+stride*r.Dy()])
		return
	}

	s.scratch = s.scratch[:0]
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := s.pixels.offset(r.Min.X, y)
		s.scratch = append(s.scratch, s.pixels.Pix[i:i+stride]...)
	}
	s.dev.TexSubImage2D(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), s.format, s.scratch)
}

// Destroy releases the GPU texture. The sprite returns to the Uncreated
// state.
func (s *Sprite) Destroy() {
	if s.id != 0 && s.dev != nil {
		s.dev.DeleteTexture(s.id)
	}
	s.id = 0
	s.state = Uncreated
}

// Draw the sprite with its anchor at the origin of the model space.
func (s *Sprite) Draw(sp *spaces.Spaces, r *Renderer) error {
	return s.draw(sp, r, 0, 0, float32(s.pixels.Width), float32(s.pixels.Height))
}

// DrawPartial draws the part of the sprite at (x, y) with size (w, h).
func (s *Sprite) DrawPartial(sp *spaces.Spaces, r *Renderer, x, y, w, h float32) error {
	if x < 0 || y < 0 || x+w > float32(s.pixels.Width) || y+h > float32(s.pixels.Height) {
		return curated.Errorf(OutOfBounds, "region", int(x), int(y))
	}
	return s.draw(sp, r, x, y, w, h)
}

func (s *Sprite) draw(sp *spaces.Spaces, r *Renderer, x, y, w, h float32) error {
	s.Activate(r.dev, 0)

	return sp.Model.With(func() error {
		return sp.Texture.With(func() error {
			sp.Model.Translate(-s.anchor[0]*w, -s.anchor[1]*h, 0)
			sp.Model.Scale(w, h, 1)
			sp.Texture.Translate(x, y, 0)
			sp.Texture.Scale(w, h, 1)
			return r.draw(sp)
		})
	})
}
