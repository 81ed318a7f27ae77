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
	"os"
	"path/filepath"
)

const localConfigDir = ".pixelengine"

const userConfigDir = "pixelengine"

// ResourcePath joins the resource elements to the base path. The base path
// is not created.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, basePath())
	p = append(p, resource...)
	return filepath.Join(p...)
}

func basePath() string {
	if fi, err := os.Stat(localConfigDir); err == nil && fi.IsDir() {
		return localConfigDir
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return localConfigDir
	}
	return filepath.Join(cnf, userConfigDir)
}
