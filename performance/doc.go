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

// Package performance contains helpers for measuring the speed of the frame
// loop.
//
// The FPS type is a rolling frames-per-second counter. RunProfiler() wraps a
// function with the CPU profiler and writes a heap profile when it returns.
// The limiter sub-package caps the rate of the frame loop.
package performance
