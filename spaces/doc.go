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

// Package spaces holds the transformation state used when drawing. There are
// four coordinate spaces, each a matrix with a stack of saved matrices:
//
//	projection: logical pixels to clip space
//	view: window scaling
//	model: placement of the thing being drawn
//	texture: selection of texels from a texture, in pixels
//
// Every Push() must be matched by a Pop(). The With() functions make this
// easy by popping on every path out of the function, including a panic:
//
//	err := sp.Model.With(func() error {
//		sp.Model.Translate(x, y, 0)
//		return draw()
//	})
//
// If the function leaves the stack at a different depth to the one it found
// it at then With() restores the stack and returns the UnbalancedStack error.
package spaces
