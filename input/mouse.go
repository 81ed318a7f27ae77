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

package input

import "github.com/go-gl/mathgl/mgl32"

// Button identifies a mouse button.
type Button int

// List of valid Button values.
const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
	Button4
	Button5
	NumButtons
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case Button4:
		return "button 4"
	case Button5:
		return "button 5"
	}
	return "unknown button"
}

// Mouse is the state of the mouse.
type Mouse struct {
	buttons [NumButtons]ButtonState

	pos   mgl32.Vec2
	delta mgl32.Vec2
	hover bool

	scroll mgl32.Vec2
}

// Poll samples the mouse. Position and buttons are only sampled when the
// mouse is over the window. When it is not, the delta is zero and all buttons
// are up.
func (m *Mouse) Poll(s Sampler) {
	x, y, hover := s.MousePosition()
	m.hover = hover

	if !hover {
		m.delta = mgl32.Vec2{}
		for b := range m.buttons {
			m.buttons[b].Update(false)
		}
		return
	}

	p := mgl32.Vec2{x, y}
	m.delta = p.Sub(m.pos)
	m.pos = p

	for b := range m.buttons {
		m.buttons[b].Update(s.ButtonDown(Button(b)))
	}
}

// AddScroll accumulates scrolling. Called by the platform as scroll events
// arrive.
func (m *Mouse) AddScroll(dx, dy float32) {
	m.scroll = m.scroll.Add(mgl32.Vec2{dx, dy})
}

// Scroll returns the scrolling accumulated since the previous call to
// Scroll(). Both axes are reset.
func (m *Mouse) Scroll() mgl32.Vec2 {
	s := m.scroll
	m.scroll = mgl32.Vec2{}
	return s
}

// Position of the mouse in window coordinates.
func (m *Mouse) Position() mgl32.Vec2 {
	return m.pos
}

// Delta is the movement of the mouse since the previous poll.
func (m *Mouse) Delta() mgl32.Vec2 {
	return m.delta
}

// Hover returns true if the mouse is over the window.
func (m *Mouse) Hover() bool {
	return m.hover
}

// Button returns the state of the button.
func (m *Mouse) Button(b Button) ButtonState {
	if b < 0 || b >= NumButtons {
		return ButtonState{}
	}
	return m.buttons[b]
}
