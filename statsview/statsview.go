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

// Package statsview runs a local HTTP server with graphs of the Go runtime
// statistics (heap, goroutines, GC pauses). It is a thin wrapper around
// github.com/go-echarts/statsview.
//
// After launch the graphs are at:
//
//	localhost:12600/debug/statsview
//
// and the standard pprof pages at:
//
//	localhost:12600/debug/pprof/
package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jepebe/pixelengine/logger"
)

// Address of the HTTP server.
const Address = "localhost:12600"

const url = "/debug/statsview"

var launch sync.Once

// Launch the server in its own goroutine. Subsequent calls do nothing.
func Launch(output io.Writer) {
	launch.Do(func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		go func() {
			if err := mgr.Start(); err != nil {
				logger.Logf(logger.Allow, "statsview", "%v", err)
			}
		}()
		fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
	})
}
