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

// Package limiter caps the rate of a loop.
//
//	lim := limiter.NewFPSLimiter(60)
//	defer lim.Stop()
//	for {
//		lim.Wait()
//		renderFrame()
//	}
//
// The limiter is only useful when the loop can run faster than the limit. A
// loop that runs slower than the limit is not held up.
package limiter

import (
	"sync"
	"time"
)

// FpsLimiter triggers a fixed number of times per second.
type FpsLimiter struct {
	crit   sync.Mutex
	fps    int
	ticker *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type. A value of zero or less means no limit.
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{}
	lim.SetLimit(framesPerSecond)
	return lim
}

// SetLimit changes the rate of the limiter. A value of zero or less means no
// limit.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	lim.crit.Lock()
	defer lim.crit.Unlock()

	lim.fps = framesPerSecond
	if framesPerSecond <= 0 {
		if lim.ticker != nil {
			lim.ticker.Stop()
			lim.ticker = nil
		}
		return
	}

	d := time.Second / time.Duration(framesPerSecond)
	if lim.ticker == nil {
		lim.ticker = time.NewTicker(d)
	} else {
		lim.ticker.Reset(d)
	}
}

// Limit returns the current rate.
func (lim *FpsLimiter) Limit() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.fps
}

func (lim *FpsLimiter) tick() <-chan time.Time {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	if lim.ticker == nil {
		return nil
	}
	return lim.ticker.C
}

// Wait blocks until the next trigger. Returns immediately if there is no
// limit.
func (lim *FpsLimiter) Wait() {
	if c := lim.tick(); c != nil {
		<-c
	}
}

// HasWaited returns true if the trigger has happened since the last call to
// Wait() or HasWaited(). Always true if there is no limit.
func (lim *FpsLimiter) HasWaited() bool {
	c := lim.tick()
	if c == nil {
		return true
	}
	select {
	case <-c:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() will no longer block.
func (lim *FpsLimiter) Stop() {
	lim.SetLimit(0)
}
