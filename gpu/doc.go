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

// Package gpu describes the graphics device that the rest of pixelengine
// draws with. The Device interface is deliberately narrow: it is the set of
// operations that the buffer, batch, shader and sprite packages need and
// nothing more.
//
// Two implementations exist. The gl32 package drives an OpenGL 3.2 core
// context and is what a window uses. The headless package records what it is
// asked to do and is used by the tests and by headless runs of the demo
// program.
//
// Handles returned by the Create*() functions are opaque. A zero handle is
// never a valid handle.
package gpu
