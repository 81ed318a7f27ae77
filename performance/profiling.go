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

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/jepebe/pixelengine/curated"
)

// Sentinal error patterns.
const (
	UnknownProfile = "performance: unknown profile type (%s)"
	ProfileError   = "performance: %v"
)

// Profile is a bit field of the profile types to create.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
)

func (p Profile) String() string {
	var s []string
	if p&ProfileCPU == ProfileCPU {
		s = append(s, "cpu")
	}
	if p&ProfileMem == ProfileMem {
		s = append(s, "mem")
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, ",")
}

// ParseProfileString parses a comma separated list of profile types. Valid
// types are "cpu", "mem", "all" and "none".
func ParseProfileString(s string) (Profile, error) {
	p := ProfileNone
	for _, t := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "all":
			p |= ProfileCPU | ProfileMem
		default:
			return ProfileNone, curated.Errorf(UnknownProfile, t)
		}
	}
	return p, nil
}

// RunProfiler runs the function and creates the profiles requested. Profile
// files are named with the prefix, eg. "pixelengine_cpu.profile".
func RunProfiler(profile Profile, prefix string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", prefix))
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf(ProfileError, err)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileMem == ProfileMem {
		defer func() {
			f, err := os.Create(fmt.Sprintf("%s_mem.profile", prefix))
			if err != nil {
				rerr = curated.Errorf(ProfileError, err)
				return
			}
			defer f.Close()

			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil && rerr == nil {
				rerr = curated.Errorf(ProfileError, err)
			}
		}()
	}

	return run()
}
