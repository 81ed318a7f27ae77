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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/prefs"
	"github.com/jepebe/pixelengine/test"
)

func readFile(t *testing.T, fn string) string {
	t.Helper()
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	return string(data)
}

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectSuccess(t, v.Set("foo"))
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set(" TRUE "))
	test.ExpectEquality(t, v.Get().(bool), true)

	err := v.Set(10)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectSuccess(t, v.Set("99"))
	test.ExpectEquality(t, v.String(), "99")
	test.ExpectSuccess(t, v.Set(int64(5)))
	test.ExpectEquality(t, v.Get().(int), 5)

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))

	// failed sets leave the value alone
	test.ExpectEquality(t, v.Get().(int), 5)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.String(), "0.000")
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, v.Get().(float64), 2.0)
	test.ExpectSuccess(t, v.Set("2.5"))
	test.ExpectEquality(t, v.String(), "2.500")
	test.ExpectFailure(t, v.Set(true))
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length crops the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// removing the limit does not bring back the cropped part
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(3))
	test.ExpectEquality(t, post, 3)

	// pre hook prevents the value from being stored
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 3)
	test.ExpectEquality(t, post, 3)
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.toml")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var width prefs.Int
	var scale prefs.Float
	var vsync prefs.Bool
	var title prefs.String
	test.ExpectSuccess(t, dsk.Add("window.width", &width))
	test.ExpectSuccess(t, dsk.Add("window.scale", &scale))
	test.ExpectSuccess(t, dsk.Add("window.vsync", &vsync))
	test.ExpectSuccess(t, dsk.Add("title", &title))

	err = dsk.Add("title", &title)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))

	test.ExpectEquality(t, len(dsk.Keys()), 4)
	test.ExpectEquality(t, dsk.Keys()[0], "title")

	// loading a file that does not exist is not an error
	test.ExpectSuccess(t, dsk.Load(true))

	test.ExpectSuccess(t, width.Set(640))
	test.ExpectSuccess(t, scale.Set(2.5))
	test.ExpectSuccess(t, vsync.Set(true))
	test.ExpectSuccess(t, title.Set("pixels"))
	test.ExpectSuccess(t, dsk.Save())

	data := readFile(t, fn)
	test.ExpectSuccess(t, strings.HasPrefix(data, "title = \"pixels\"\n"))
	test.ExpectSuccess(t, strings.Contains(data, "[window]\n"))
	test.ExpectSuccess(t, strings.Contains(data, "width = 640\n"))
	test.ExpectSuccess(t, strings.Contains(data, "scale = 2.5\n"))

	test.ExpectSuccess(t, width.Reset())
	test.ExpectSuccess(t, scale.Reset())
	test.ExpectSuccess(t, vsync.Reset())
	test.ExpectSuccess(t, title.Reset())

	test.ExpectSuccess(t, dsk.Load(true))
	test.ExpectEquality(t, width.Get().(int), 640)
	test.ExpectEquality(t, scale.Get().(float64), 2.5)
	test.ExpectEquality(t, vsync.Get().(bool), true)
	test.ExpectEquality(t, title.String(), "pixels")
}

// a second Disk using the same file must not clobber the values saved by
// the first
func TestDiskPreserve(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.toml")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.ExpectSuccess(t, dsk.Save())

	test.ExpectEquality(t, readFile(t, fn), "foo = \"bar\"\ntest = true\n")
}

func TestDiskConflict(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.toml")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var a, b prefs.Int
	test.ExpectSuccess(t, dsk.Add("window", &a))
	test.ExpectSuccess(t, dsk.Add("window.width", &b))

	err = dsk.Save()
	test.ExpectSuccess(t, curated.Is(err, prefs.KeyConflict))
}

func TestDiskCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.toml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("[window]\nscale = 2\nwidth = 320\n"), 0o600))

	prefs.PushCommandLineStack("window.scale::3")
	defer prefs.PopCommandLineStack()

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var width prefs.Int
	var scale prefs.Float
	test.ExpectSuccess(t, dsk.Add("window.width", &width))
	test.ExpectSuccess(t, dsk.Add("window.scale", &scale))
	test.ExpectEquality(t, scale.Get().(float64), 3.0)

	// command line value survives the load
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, scale.Get().(float64), 3.0)
	test.ExpectEquality(t, width.Get().(int), 320)

	// unless overwrite is requested
	test.ExpectSuccess(t, dsk.Load(true))
	test.ExpectEquality(t, scale.Get().(float64), 2.0)
}

func TestGeneric(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.toml")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int
	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)
	test.ExpectSuccess(t, dsk.Add("generic", v))

	w = 1
	h = 2
	test.ExpectSuccess(t, dsk.Save())
	test.ExpectEquality(t, readFile(t, fn), "generic = \"1,2\"\n")

	w = 0
	h = 0
	test.ExpectSuccess(t, dsk.Load(true))
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}
