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

// Package prefs holds the preference values of the engine.
//
// Values are of type Bool, Int, Float, String or Generic. Each can be given
// a pre and post hook that is called whenever the value is set. Values are
// safe to Set() and Get() from any goroutine.
//
// A Disk collects values under dotted keys (eg. "window.width") and saves them
// to a TOML file, one table per key prefix:
//
//	[window]
//	  width = 640
//	  scale = 2.0
//
// Values can also be set from the command line. The PushCommandLineStack()
// function takes a string of key/value pairs of the form:
//
//	"window.scale::3; window.vsync::true"
//
// A value added to a Disk takes the command line value, if present, in
// preference to the value in the file.
package prefs
