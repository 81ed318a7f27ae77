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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

var commandLine struct {
	crit  sync.Mutex
	stack []map[string]string
}

// SizeCommandLineStack returns the number of groups added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// PushCommandLineStack parses a string of key/value pairs and adds it as a
// new group. Pairs that are not of the form "key::value" are ignored.
func PushCommandLineStack(prefs string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	grp := make(map[string]string)
	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			grp[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	commandLine.stack = append(commandLine.stack, grp)
}

// PopCommandLineStack forgets the most recent group. The returned string is
// the group's unused key/value pairs, sorted by key.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return ""
	}

	grp := commandLine.stack[len(commandLine.stack)-1]
	commandLine.stack = commandLine.stack[:len(commandLine.stack)-1]

	keys := make([]string, 0, len(grp))
	for k := range grp {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	unused := make([]string, 0, len(keys))
	for _, k := range keys {
		unused = append(unused, fmt.Sprintf("%s::%s", k, grp[k]))
	}
	return strings.Join(unused, "; ")
}

// GetCommandLinePref returns the value for the key from the most recent
// group. The entry is removed once it has been returned.
func GetCommandLinePref(key string) (string, bool) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return "", false
	}

	grp := commandLine.stack[len(commandLine.stack)-1]
	v, ok := grp[key]
	if ok {
		delete(grp, key)
	}
	return v, ok
}
