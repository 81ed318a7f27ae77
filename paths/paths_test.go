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
	"testing"
	"time"

	"github.com/jepebe/pixelengine/test"
)

func TestLocalPath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(localConfigDir, 0o700))

	test.ExpectEquality(t, ResourcePath("prefs.toml"), filepath.Join(".pixelengine", "prefs.toml"))
	test.ExpectEquality(t, ResourcePath("foo/bar", "baz"), filepath.Join(".pixelengine", "foo", "bar", "baz"))
	test.ExpectEquality(t, ResourcePath(""), ".pixelengine")
	test.ExpectEquality(t, ResourcePath(), ".pixelengine")
}

func TestUserPath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	cnf, err := os.UserConfigDir()
	if err != nil {
		t.Skip("no user config directory")
	}
	test.ExpectEquality(t, ResourcePath("prefs.toml"), filepath.Join(cnf, "pixelengine", "prefs.toml"))
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2023, 11, 5, 14, 15, 3, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("spaces", "dot", n), "spaces_20231105_141503.dot")
	test.ExpectEquality(t, uniqueFilename("", "dot", n), "20231105_141503.dot")
}
