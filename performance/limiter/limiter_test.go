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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jepebe/pixelengine/performance/limiter"
	"github.com/jepebe/pixelengine/test"
)

func TestUnlimited(t *testing.T) {
	lim := limiter.NewFPSLimiter(0)
	test.ExpectEquality(t, lim.Limit(), 0)
	test.ExpectSuccess(t, lim.HasWaited())

	// does not block
	lim.Wait()
}

func TestLimit(t *testing.T) {
	lim := limiter.NewFPSLimiter(100)
	defer lim.Stop()

	start := time.Now()
	for i := 0; i < 5; i++ {
		lim.Wait()
	}

	// five ticks at 100fps take at least 40ms
	test.ExpectSuccess(t, time.Since(start) >= 40*time.Millisecond)

	lim.Stop()
	test.ExpectEquality(t, lim.Limit(), 0)
	test.ExpectSuccess(t, lim.HasWaited())
}
