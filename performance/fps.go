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

package performance

import "time"

// Window is the minimum period over which the frame rate is measured.
const Window = time.Second

// FPS counts frames and calculates the frame rate once per Window.
type FPS struct {
	start  time.Time
	frames int
	rate   float64
}

// NewFPS is the preferred method of initialisation for the FPS type.
func NewFPS(now time.Time) *FPS {
	return &FPS{start: now}
}

// Tick counts a frame. Returns true if the window has elapsed and a new rate
// has been calculated.
func (f *FPS) Tick(now time.Time) bool {
	f.frames++
	elapsed := now.Sub(f.start)
	if elapsed < Window {
		return false
	}
	f.rate = float64(f.frames) / elapsed.Seconds()
	f.frames = 0
	f.start = now
	return true
}

// Rate returns the most recently calculated frame rate. Zero until the first
// window has elapsed.
func (f *FPS) Rate() float64 {
	return f.rate
}
