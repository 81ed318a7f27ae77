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

// State of the window.
type State int

// List of valid State values.
const (
	Idle State = iota
	Running
	Closing
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Closing:
		return "closing"
	case Terminated:
		return "terminated"
	}
	return "unknown state"
}

// Sentinal error patterns.
const (
	InvalidState   = "window: %s is not possible when %s"
	WrongGoroutine = "window: %s must be called from the goroutine that created the window"
	PlatformError  = "window: sdl: %v"
)
