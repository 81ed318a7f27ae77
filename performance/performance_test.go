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

package performance_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/performance"
	"github.com/jepebe/pixelengine/test"
)

func TestFPS(t *testing.T) {
	start := time.Unix(0, 0)
	fps := performance.NewFPS(start)

	now := start
	for i := 0; i < 49; i++ {
		now = now.Add(20 * time.Millisecond)
		test.ExpectFailure(t, fps.Tick(now), i)
	}
	test.ExpectEquality(t, fps.Rate(), 0.0)

	// 50th frame completes the one second window
	now = now.Add(20 * time.Millisecond)
	test.ExpectSuccess(t, fps.Tick(now))
	test.ExpectApproximate(t, fps.Rate(), 50.0, 0.001)

	// a slow window
	now = now.Add(2 * time.Second)
	test.ExpectSuccess(t, fps.Tick(now))
	test.ExpectApproximate(t, fps.Rate(), 0.5, 0.001)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfileString("cpu")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU)

	p, err = performance.ParseProfileString("mem, cpu")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "cpu,mem")

	p, err = performance.ParseProfileString("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "none")

	_, err = performance.ParseProfileString("cpu,trace")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestRunProfiler(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := performance.RunProfiler(performance.ProfileMem, prefix, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(prefix + "_mem.profile")
	test.ExpectSuccess(t, err)

	_, err = os.Stat(prefix + "_cpu.profile")
	test.ExpectFailure(t, err)
}
