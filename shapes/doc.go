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

// Package shapes draws filled rectangles and grids.
//
// Rectangles are batched. Fill() adds a rectangle to the batch and the batch
// is drawn when Flush() is called, or when there is no room for another
// rectangle. Anything that draws with a different program must flush the
// batch first so that drawing order is preserved. FlushIfStarted() is
// provided for that purpose.
package shapes
