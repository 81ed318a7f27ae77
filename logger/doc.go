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

// Package logger is the central log for pixelengine. Entries are tagged with
// the name of the subsystem that created them. Consecutive identical entries
// are collapsed into a single entry with a repeat count, which keeps the log
// readable when something goes wrong once per frame.
//
// Logging requests carry a Permission. The Allow value always permits logging.
// Other implementations can be used to silence a subsystem, for example while
// a shader is known to be broken and has already been reported.
//
// Diagnostics that do not stop the render loop, such as shader compilation
// failures, are reported here rather than returned as errors.
package logger
