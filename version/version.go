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

// Package version reports the version of the program, derived from the
// build information.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name used in window titles and log messages.
const ApplicationName = "PixelEngine"

// number is set with -ldflags "-X github.com/jepebe/pixelengine/version.number=v0.1.0"
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the VCS revision and whether this is a
// numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

func init() {
	var vcs bool
	var rev string
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	switch {
	case rev == "":
		revision = "no revision information"
	case modified:
		revision = fmt.Sprintf("%s+dirty", rev)
	default:
		revision = rev
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
