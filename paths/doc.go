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

// Package paths resolves the location of files used by the engine, such as
// the preferences file.
//
//	p := paths.ResourcePath("prefs.toml")
//
// If a directory named ".pixelengine" is present in the current directory
// then that is the base path. Otherwise the base path is the "pixelengine"
// directory in the user's config directory, as returned by os.UserConfigDir().
// On Linux, for example:
//
//	/home/user/.config/pixelengine/prefs.toml
package paths
