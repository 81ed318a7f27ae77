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

package paths

import (
	"fmt"
	"time"
)

// UniqueFilename returns a filename made from the prefix, the current time
// and the extension. For example:
//
//	spaces_20231105_141503.dot
//
// The filename is unique provided it isn't requested twice in the same
// second.
func UniqueFilename(prefix string, ext string) string {
	return uniqueFilename(prefix, ext, time.Now())
}

func uniqueFilename(prefix string, ext string, n time.Time) string {
	ts := n.Format("20060102_150405")
	if prefix == "" {
		return fmt.Sprintf("%s.%s", ts, ext)
	}
	return fmt.Sprintf("%s_%s.%s", prefix, ts, ext)
}
