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

// Package assert checks conditions that are programming errors rather than
// runtime failures.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier for the current goroutine. The result is
// different between goroutines and consistent for a given goroutine. It
// should only ever be used for assertions and testing.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Goroutine remembers the goroutine it was created in.
type Goroutine uint64

// CurrentGoroutine returns the current goroutine.
func CurrentGoroutine() Goroutine {
	return Goroutine(GoroutineID())
}

// IsCurrent returns true if called from the goroutine that created g.
func (g Goroutine) IsCurrent() bool {
	return uint64(g) == GoroutineID()
}
