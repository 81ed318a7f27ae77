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

package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/colors"
	"github.com/jepebe/pixelengine/input"
	"github.com/jepebe/pixelengine/sprite"
	"github.com/jepebe/pixelengine/window"
)

// demo is a mode of the launcher.
type demo interface {
	update(win *window.Window) error
}

// paused is shared by every demo. the space key toggles it and the Q key
// closes the window.
type paused bool

func (p *paused) handleInput(win *window.Window) {
	if win.KeyState(input.KeySpace).Pressed {
		*p = !*p
	}
	if win.KeyState(input.KeyQ).Pressed || win.KeyState(input.KeyEscape).Pressed {
		win.Close()
	}
}

type hello struct {
	paused
}

func (d *hello) update(win *window.Window) error {
	d.handleInput(win)
	return win.DrawText(100, 100, "Hello, world!", colors.LightGreen, 1, 0)
}

type palette struct {
	paused
	component float64
	direction float64
}

func newPalette() *palette {
	return &palette{direction: 1}
}

func (d *palette) update(win *window.Window) error {
	d.handleInput(win)

	if err := win.DrawGrid(5, colors.RGB(0.125, 0.125, 0.125), 1, 0); err != nil {
		return err
	}
	if err := win.DrawGrid(20, colors.DarkGrey, window.DefaultDashSize, window.DefaultGapSize); err != nil {
		return err
	}
	if err := win.DrawText(5, 5, "Palette", colors.LightGreen, 1, 0); err != nil {
		return err
	}

	if err := d.named(win, 10, 20); err != nil {
		return err
	}
	if err := d.hsl(win, 10, 110, 1.0); err != nil {
		return err
	}
	if err := d.hsl(win, 10, 170, d.component); err != nil {
		return err
	}
	for i, face := range []string{"RG", "BR", "GB"} {
		if err := d.rgb(win, 200, float32(20+i*70), face); err != nil {
			return err
		}
	}

	if !d.paused {
		d.component += d.direction * 0.01
		if d.component <= 0 || d.component >= 1 {
			d.direction = -d.direction
			d.component = math.Max(0, math.Min(d.component, 1))
		}
	}

	return nil
}

func (d *palette) named(win *window.Window, x, y float32) error {
	if err := win.DrawText(x, y, "Named Colors", colors.Azure, 0.5, 0); err != nil {
		return err
	}
	y += 5
	const size = 6
	for _, col := range colors.Palette {
		for i, c := range col {
			if err := win.FillRect(x, y+size*float32(i), size, size, c); err != nil {
				return err
			}
		}
		x += size
	}
	return nil
}

func (d *palette) hsl(win *window.Window, x, y float32, saturation float64) error {
	s := fmt.Sprintf("HSL Colors Saturation=%.2f", saturation)
	if err := win.DrawText(x, y, s, colors.Azure, 0.5, 0); err != nil {
		return err
	}
	y += 5

	const size = 5
	const hues = 35
	const shades = 10
	for l := 0; l < shades; l++ {
		// start from one to avoid an all white and an all black row
		lightness := 1 - float64(l+1)/float64(shades+1)
		for h := 0; h < hues; h++ {
			c := colors.HSL(float64(h)/float64(hues-1), saturation, lightness)
			if err := win.FillRect(x+float32(h*size), y, size, size, c); err != nil {
				return err
			}
		}
		y += size
	}
	return nil
}

// rgb draws a face of the RGB cube. the third component is animated.
func (d *palette) rgb(win *window.Window, x, y float32, face string) error {
	idx := map[byte]int{'R': 0, 'G': 1, 'B': 2}
	u := idx[face[0]]
	v := idx[face[1]]
	w := 3 - u - v

	s := fmt.Sprintf("RGB (%s) %c=%.2f", face, "RGB"[w], d.component)
	if err := win.DrawText(x, y, s, colors.Azure, 0.5, 0); err != nil {
		return err
	}
	y += 5

	const size = 4
	const steps = 15
	for i := 0; i < steps; i++ {
		for j := 0; j < steps; j++ {
			var c mgl32.Vec4
			c[u] = float32(i) / steps
			c[v] = float32(j) / steps
			c[w] = float32(d.component)
			c[3] = 1
			if err := win.FillRect(x+float32(j*size), y, size, size, c); err != nil {
				return err
			}
		}
		y += size
	}
	return nil
}

// the last line that can be scrolled to in the text demo
const lastLine = 0xfe0

type textDemo struct {
	paused
	line int
}

func (d *textDemo) input(win *window.Window) {
	d.handleInput(win)

	keys := []struct {
		key  input.Key
		move func()
	}{
		{input.KeyUp, func() { d.line-- }},
		{input.KeyDown, func() { d.line++ }},
		{input.KeyPageUp, func() { d.line -= 0x20 }},
		{input.KeyPageDown, func() { d.line += 0x20 }},
		{input.KeyHome, func() { d.line = 0 }},
		{input.KeyEnd, func() { d.line = lastLine }},
	}
	for _, k := range keys {
		if win.KeyState(k.key).Pressed {
			k.move()
		}
	}

	scroll := win.Mouse().Scroll().Y()
	if win.Mouse().Hover() && scroll != 0 {
		d.line -= int(math.Copysign(math.Max(1, math.Abs(float64(scroll))), float64(scroll)))
	}

	d.line = max(0, min(d.line, lastLine))
}

func (d *textDemo) update(win *window.Window) error {
	d.input(win)

	if err := win.DrawGrid(10, colors.DarkGrey, window.DefaultDashSize, window.DefaultGapSize); err != nil {
		return err
	}
	if err := win.DrawText(10, 10, "Text Rendering", colors.LightBlue, 1, 0); err != nil {
		return err
	}

	// the pixels of the font atlas are something interesting to scroll
	// through
	atlas := win.Font().Atlas
	const rows = 0x20
	const cols = 0x10
	for row := 0; row < rows; row++ {
		addr := ((d.line + row) * cols) % 0x10000
		s := fmt.Sprintf("$%04X", addr)
		for col := 0; col < cols; col++ {
			var v byte
			if i := addr + col; i < len(atlas.Pix) {
				v = atlas.Pix[i]
			}
			s = fmt.Sprintf("%s %02X", s, v)
		}
		if err := win.DrawText(15, float32(25+row*6), s, colors.LightGreen, 0.5, 0); err != nil {
			return err
		}
	}

	if err := win.DrawText(5, 215, "Text Rotated 90 degrees", colors.LightOrange, 0.5, -math.Pi/2); err != nil {
		return err
	}

	help := []string{
		"SPACE    : toggle auto",
		"UP       : 1 line up",
		"DOWN     : 1 line down",
		"PAGE UP  : 1 page up",
		"PAGE DOWN: 1 page down",
		"HOME     : go to top",
		"END      : go to end",
	}
	for i, s := range help {
		if err := win.DrawText(230, float32(25+i*6), s, colors.LightAzure, 0.5, 0); err != nil {
			return err
		}
	}

	status := "Auto scrolling"
	if d.paused {
		status = "Manual scrolling"
	}
	if err := win.DrawText(10, 226, fmt.Sprintf("Frames rendered: %d", win.Frame()), colors.LightYellow, 0.5, 0); err != nil {
		return err
	}
	if err := win.DrawText(10, 232, status, colors.LightYellow, 0.5, 0); err != nil {
		return err
	}

	if !d.paused {
		d.line = (d.line + 1) % (lastLine + 1)
	}

	return nil
}

type animation struct {
	paused
	ball  *sprite.AnimatedSprite
	sheet *sprite.AnimatedSprite
}

// size of each frame of the generated ball animation
const ballFrame = 16

// newAnimation creates the demo. The image file, if any, is loaded through
// the sprite library of the window and treated as a sheet of 8x8 frames.
func newAnimation(win *window.Window, sheet string) (*animation, error) {
	d := &animation{}

	s, err := ballSheet()
	if err != nil {
		return nil, err
	}
	d.ball, err = sprite.NewAnimated(s, 8, 2)
	if err != nil {
		return nil, err
	}

	var bounce, spin []sprite.Cell
	for c := 0; c < 8; c++ {
		bounce = append(bounce, sprite.Cell{Col: c, Row: 0})
		spin = append(spin, sprite.Cell{Col: c, Row: 1})
	}
	if err := d.ball.SetAnimation("bounce", bounce, 10); err != nil {
		return nil, err
	}
	if err := d.ball.SetAnimation("spin", spin, 5); err != nil {
		return nil, err
	}

	if sheet != "" {
		s, err := win.Sprites().Get(sheet)
		if err != nil {
			return nil, err
		}
		d.sheet, err = sprite.NewAnimated(s, 8, 8)
		if err != nil {
			return nil, err
		}
	}

	return d, nil
}

// ballSheet draws two rows of eight frames. the first row is a ball
// bouncing, the second row a ball with a rotating spot.
func ballSheet() (*sprite.Sprite, error) {
	s, err := sprite.NewBlank(ballFrame*8, ballFrame*2, 4, nil)
	if err != nil {
		return nil, err
	}

	const r = 5
	for f := 0; f < 8; f++ {
		ox := f * ballFrame

		// bounce height follows a half sine wave
		oy := ballFrame - r - 1 - int(math.Sin(math.Pi*float64(f)/8)*float64(ballFrame-2*r-1))
		spot := 2 * math.Pi * float64(f) / 8

		for y := 0; y < ballFrame; y++ {
			for x := 0; x < ballFrame; x++ {
				// bouncing ball
				if dx, dy := x-ballFrame/2, y-oy; dx*dx+dy*dy <= r*r {
					if err := s.SetPixel(ox+x, y, color.NRGBA{R: 255, G: 160, B: 40, A: 255}); err != nil {
						return nil, err
					}
				}

				// spinning ball
				dx, dy := x-ballFrame/2, y-ballFrame/2
				if dx*dx+dy*dy <= (r+1)*(r+1) {
					c := color.NRGBA{R: 60, G: 120, B: 255, A: 255}
					sx := float64(dx) - math.Cos(spot)*3
					sy := float64(dy) - math.Sin(spot)*3
					if sx*sx+sy*sy <= 4 {
						c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
					}
					if err := s.SetPixel(ox+x, ballFrame+y, c); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return s, nil
}

func (d *animation) update(win *window.Window) error {
	d.handleInput(win)

	if err := win.DrawGrid(5, colors.RGB(0.125, 0.125, 0.125), 1, 0); err != nil {
		return err
	}
	if err := win.DrawGrid(20, colors.DarkGrey, window.DefaultDashSize, window.DefaultGapSize); err != nil {
		return err
	}
	if err := win.DrawText(5, 5, "Animated Sprites", colors.LightGreen, 1, 0); err != nil {
		return err
	}

	if !d.paused {
		d.ball.AdvanceTimeAll(win.ElapsedTime())
		if d.sheet != nil {
			d.sheet.AdvanceTime(win.ElapsedTime())
		}
	}

	for i, scale := range []float32{0.5, 1, 2, 3} {
		if err := d.ball.SetCurrentAnimation("bounce"); err != nil {
			return err
		}
		if err := win.DrawSprite(float32(20+i*50), 40, d.ball, scale); err != nil {
			return err
		}
		if err := d.ball.SetCurrentAnimation("spin"); err != nil {
			return err
		}
		if err := win.DrawSprite(float32(20+i*50), 120, d.ball, scale); err != nil {
			return err
		}
	}

	if d.sheet != nil {
		if err := win.DrawSprite(220, 160, d.sheet, 1); err != nil {
			return err
		}
	}

	return nil
}
