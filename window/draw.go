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

package window

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/shapes"
	"github.com/jepebe/pixelengine/spaces"
	"github.com/jepebe/pixelengine/sprite"
)

// Drawable is implemented by sprite.Sprite and sprite.AnimatedSprite.
type Drawable interface {
	Draw(sp *spaces.Spaces, r *sprite.Renderer) error
}

// defaults for DrawGrid()
const (
	DefaultDashSize = 1.0
	DefaultGapSize  = 2.0
)

// drawing is only possible while the loop is running.
func (win *Window) drawing(op string) error {
	if win.state != Running && win.state != Closing {
		return curated.Errorf(InvalidState, op, win.state)
	}
	return nil
}

// withTint calls fn with the tint set. A zero tint leaves the current tint
// alone.
func (win *Window) withTint(tint mgl32.Vec4, fn func() error) error {
	if tint == (mgl32.Vec4{}) {
		return fn()
	}
	prev := win.spaces.Tint()
	win.spaces.SetTint(tint)
	defer win.spaces.SetTint(prev)
	return fn()
}

// FillRect draws a filled rectangle. Rectangles are batched and drawn when
// something else is drawn or at the end of the frame.
func (win *Window) FillRect(x, y, w, h float32, tint mgl32.Vec4) error {
	if err := win.drawing("fill rect"); err != nil {
		return err
	}
	return win.withTint(tint, func() error {
		return win.rects.Fill(win.spaces, x, y, w, h)
	})
}

// DrawSprite draws the sprite with its upper-left corner at x, y.
func (win *Window) DrawSprite(x, y float32, s Drawable, scale float32) error {
	if err := win.drawing("draw sprite"); err != nil {
		return err
	}
	if err := win.rects.FlushIfStarted(win.spaces); err != nil {
		return err
	}
	return win.spaces.Model.With(func() error {
		win.spaces.Model.Translate(x, y, 0)
		win.spaces.Model.Scale(scale, scale, 1)
		return s.Draw(win.spaces, win.sprites)
	})
}

// DrawPartialSprite draws the region sx, sy, sw, sh of the sprite with its
// upper-left corner at x, y.
func (win *Window) DrawPartialSprite(x, y float32, s *sprite.Sprite, sx, sy, sw, sh float32) error {
	if err := win.drawing("draw partial sprite"); err != nil {
		return err
	}
	if err := win.rects.FlushIfStarted(win.spaces); err != nil {
		return err
	}
	return win.spaces.Model.With(func() error {
		win.spaces.Model.Translate(x, y, 0)
		return s.DrawPartial(win.spaces, win.sprites, sx, sy, sw, sh)
	})
}

// DrawText draws the text with the upper-left corner of the first character
// at x, y. The text is scaled and then rotated by angle radians.
func (win *Window) DrawText(x, y float32, text string, tint mgl32.Vec4, scale float32, angle float32) error {
	if err := win.drawing("draw text"); err != nil {
		return err
	}
	if err := win.rects.FlushIfStarted(win.spaces); err != nil {
		return err
	}
	return win.withTint(tint, func() error {
		return win.text.DrawString(win.spaces, x, y, text, scale, angle)
	})
}

// DrawGrid draws dashed grid lines over the window with cells of size by
// size logical pixels. Dash and gap are in window pixels. A gap of zero draws
// solid lines.
func (win *Window) DrawGrid(size float32, tint mgl32.Vec4, dash float32, gap float32) error {
	if err := win.drawing("draw grid"); err != nil {
		return err
	}
	if err := win.rects.FlushIfStarted(win.spaces); err != nil {
		return err
	}

	if win.grid == nil {
		w, h := win.cfg.LogicalSize()
		var err error
		win.grid, err = shapes.NewGrid(win.dev, win.cat, w, h)
		if err != nil {
			return err
		}
	}

	return win.withTint(tint, func() error {
		return win.grid.Draw(win.spaces, size, dash, gap)
	})
}
