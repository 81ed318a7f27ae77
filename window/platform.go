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
	"github.com/jepebe/pixelengine/input"
)

// Platform is the windowing system.
type Platform interface {
	input.Sampler

	// Poll processes pending events. Scroll events are added to the mouse.
	// Returns true if the user has asked for the window to close.
	Poll(mouse *input.Mouse) bool

	// size of the drawable area in pixels. on high DPI displays this can be
	// larger than the size of the window
	DrawableSize() (int, int)

	SetTitle(title string)

	// Present the frame that has been drawn
	Present()

	Destroy() error
}
