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
	"github.com/jepebe/pixelengine/input"
)

// Headless is a Platform with no display. Input is set directly in the
// exported fields and what the window does with the platform is recorded.
type Headless struct {
	Width  int
	Height int

	Keys    map[input.Key]bool
	Buttons map[input.Button]bool

	MouseX float32
	MouseY float32
	Hover  bool

	// scrolling delivered to the mouse on the next poll
	Scroll mgl32.Vec2

	// the number of presents after which Poll() reports a quit request. zero
	// means never
	QuitAfter int

	// every title set by the window
	Titles []string

	Polls     int
	Presents  int
	Destroyed bool
}

// NewHeadless is the preferred method of initialisation for the Headless
// type.
func NewHeadless(width, height int) *Headless {
	return &Headless{
		Width:   width,
		Height:  height,
		Keys:    make(map[input.Key]bool),
		Buttons: make(map[input.Button]bool),
	}
}

// Poll implements the Platform interface.
func (plt *Headless) Poll(mouse *input.Mouse) bool {
	plt.Polls++
	if plt.Scroll != (mgl32.Vec2{}) {
		mouse.AddScroll(plt.Scroll.X(), plt.Scroll.Y())
		plt.Scroll = mgl32.Vec2{}
	}
	return plt.QuitAfter > 0 && plt.Presents >= plt.QuitAfter
}

// KeyDown implements the input.Sampler interface.
func (plt *Headless) KeyDown(k input.Key) bool {
	return plt.Keys[k]
}

// ButtonDown implements the input.Sampler interface.
func (plt *Headless) ButtonDown(b input.Button) bool {
	return plt.Buttons[b]
}

// MousePosition implements the input.Sampler interface.
func (plt *Headless) MousePosition() (float32, float32, bool) {
	return plt.MouseX, plt.MouseY, plt.Hover
}

// DrawableSize implements the Platform interface.
func (plt *Headless) DrawableSize() (int, int) {
	return plt.Width, plt.Height
}

// SetTitle implements the Platform interface.
func (plt *Headless) SetTitle(title string) {
	plt.Titles = append(plt.Titles, title)
}

// Title returns the most recent title or the empty string.
func (plt *Headless) Title() string {
	if len(plt.Titles) == 0 {
		return ""
	}
	return plt.Titles[len(plt.Titles)-1]
}

// Present implements the Platform interface.
func (plt *Headless) Present() {
	plt.Presents++
}

// Destroy implements the Platform interface.
func (plt *Headless) Destroy() error {
	plt.Destroyed = true
	return nil
}
