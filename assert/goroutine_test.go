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

package assert_test

import (
	"testing"

	"github.com/jepebe/pixelengine/assert"
	"github.com/jepebe/pixelengine/test"
)

func TestGoroutine(t *testing.T) {
	g := assert.CurrentGoroutine()
	test.ExpectSuccess(t, g.IsCurrent())
	test.ExpectInequality(t, assert.GoroutineID(), 0)

	done := make(chan bool)
	go func() {
		done <- g.IsCurrent()
	}()
	test.ExpectFailure(t, <-done)

	// consistent for the lifetime of the goroutine
	test.ExpectEquality(t, uint64(g), assert.GoroutineID())
}
