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

package buffer

// Stream is the part of a Buffer that does not depend on the element type. It
// allows buffers of different element types to be handled together.
type Stream interface {
	Bind(slot uint32) bool
	Len() int
	Cap() int
	Remaining() int
	Reset()
	Dirty() bool
	Layout() Layout
	Destroy()
}

// compile time check
var _ Stream = (*Buffer[float32])(nil)
