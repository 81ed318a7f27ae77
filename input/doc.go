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

// Package input turns the raw up/down state of keys and mouse buttons into
// edge-triggered state.
//
// Once per frame the Poll() function of the Keyboard and Mouse types samples
// the current state through the Sampler interface. The ButtonState for a key
// or button then says whether it was pressed this frame, released this frame,
// or is being held down.
package input
