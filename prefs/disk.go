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
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/logger"
)

// Sentinal error patterns.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	KeyConflict  = "prefs: key conflict (%s)"
	DiskError    = "prefs: %v"
)

// Disk is a collection of preferences saved to and loaded from a TOML file.
type Disk struct {
	path    string
	entries map[string]Pref

	// keys that have been set from the command line
	commandLine map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file does not need to exist.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(DiskError, "no path for preferences file")
	}
	return &Disk{
		path:        path,
		entries:     make(map[string]Pref),
		commandLine: make(map[string]bool),
	}, nil
}

// Path of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add a preference under the key. If the command line stack has a value for
// the key then that value is set immediately.
func (dsk *Disk) Add(key string, p Pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if v, ok := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
		dsk.commandLine[key] = true
		logger.Logf(logger.Allow, "prefs", "%s set from command line: %s", key, v)
	}

	return nil
}

// Keys returns the sorted list of keys in the Disk.
func (dsk *Disk) Keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// read the file and flatten the tables into dotted keys. a missing file is
// not an error.
func (dsk *Disk) read() (map[string]any, error) {
	var tree map[string]any
	_, err := toml.DecodeFile(dsk.path, &tree)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, curated.Errorf(DiskError, err)
	}

	flat := make(map[string]any)
	flatten(flat, "", tree)
	return flat, nil
}

func flatten(flat map[string]any, prefix string, tree map[string]any) {
	for k, v := range tree {
		if prefix != "" {
			k = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flatten(flat, k, sub)
			continue
		}
		flat[k] = v
	}
}

// Load the values of the Disk's preferences from the file. Keys in the file
// that are not in the Disk are ignored. Preferences that were set from the
// command line are not overwritten if overwrite is false.
func (dsk *Disk) Load(overwrite bool) error {
	flat, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		v, ok := flat[k]
		if !ok {
			continue
		}
		if !overwrite && dsk.commandLine[k] {
			continue
		}
		if err := p.Set(v); err != nil {
			logger.Logf(logger.Allow, "prefs", "%s: %v", k, err)
		}
	}

	return nil
}

// Save the Disk's preferences to the file. Entries in the file that are not
// part of the Disk are preserved.
func (dsk *Disk) Save() error {
	flat, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		flat[k] = p.Get()
	}

	tree := make(map[string]any)
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := insert(tree, strings.Split(k, "."), flat[k]); err != nil {
			return curated.Errorf(KeyConflict, k)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return curated.Errorf(DiskError, err)
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(tree); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

var errConflict = errors.New("conflict")

func insert(tree map[string]any, path []string, v any) error {
	if len(path) == 1 {
		if _, ok := tree[path[0]].(map[string]any); ok {
			return errConflict
		}
		tree[path[0]] = v
		return nil
	}

	sub, ok := tree[path[0]]
	if !ok {
		sub = make(map[string]any)
		tree[path[0]] = sub
	}
	m, ok := sub.(map[string]any)
	if !ok {
		return errConflict
	}
	return insert(m, path[1:], v)
}
