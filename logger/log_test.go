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

package logger_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jepebe/pixelengine/logger"
	"github.com/jepebe/pixelengine/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	test.ExpectEquality(t, log.Write(w), false)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", errors.New("this is another test"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	for i := 0; i < 3; i++ {
		log.Log(logger.Allow, "shader", "compile failed")
	}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "shader: compile failed (repeat x3)\n")
	test.ExpectEquality(t, len(log.Entries()), 1)
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(10)
	for i := 0; i < 25; i++ {
		log.Logf(logger.Allow, "tag", "entry %d", i)
	}
	e := log.Entries()
	test.ExpectEquality(t, len(e), 10)
	test.ExpectEquality(t, e[0].Detail, "entry 15")
	test.ExpectEquality(t, e[9].Detail, "entry 24")
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)
	log.Log(logger.Deny, "tag", "should not appear")
	test.ExpectEquality(t, len(log.Entries()), 0)
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}
	log.SetEcho(w)
	log.Log(logger.Allow, "window", fmt.Sprintf("%dx%d", 640, 480))
	test.ExpectEquality(t, w.String(), "window: 640x480\n")
}
