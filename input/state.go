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

import "fmt"

// ButtonState is the edge-triggered state of a key or mouse button.
type ButtonState struct {
	// true for the one frame in which the button went down
	Pressed bool

	// true for the one frame in which the button went up
	Released bool

	// true from the frame the button was pressed until it is released
	Held bool
}

func (s ButtonState) String() string {
	return fmt.Sprintf("pressed=%v released=%v held=%v", s.Pressed, s.Released, s.Held)
}

// Update the state with the current up/down sample.
func (s *ButtonState) Update(down bool) {
	switch {
	case down && !s.Held:
		s.Pressed = true
		s.Released = false
		s.Held = true
	case down && s.Held:
		s.Pressed = false
		s.Released = false
	case !down && s.Held:
		s.Pressed = false
		s.Released = true
		s.Held = false
	default:
		s.Pressed = false
		s.Released = false
		s.Held = false
	}
}

// Sampler reports the current state of the input devices.
type Sampler interface {
	KeyDown(k Key) bool
	ButtonDown(b Button) bool

	// position of the mouse in window coordinates and whether the mouse is
	// over the window
	MousePosition() (x float32, y float32, hover bool)
}
