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

package sprite

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/logger"
)

// Library caches sprites loaded from files. When the library is full the
// least recently used sprite is removed and its texture released.
type Library struct {
	cache *lru.Cache
	load  func(path string) (*Sprite, error)
}

// NewLibrary is the preferred method of initialisation for the Library type.
func NewLibrary(size int) (*Library, error) {
	cache, err := lru.NewWithEvict(size, func(key any, value any) {
		logger.Logf(logger.Allow, "sprite", "evicting %v", key)
		value.(*Sprite).Destroy()
	})
	if err != nil {
		return nil, curated.Errorf(LibraryError, err)
	}

	return &Library{
		cache: cache,
		load:  Load,
	}, nil
}

// Get returns the sprite for the file, loading it if necessary.
func (lib *Library) Get(path string) (*Sprite, error) {
	if v, ok := lib.cache.Get(path); ok {
		return v.(*Sprite), nil
	}

	s, err := lib.load(path)
	if err != nil {
		return nil, err
	}
	lib.cache.Add(path, s)

	return s, nil
}

// Add a sprite to the library under a name of the caller's choosing. A
// different sprite already in the library under the name is replaced and its
// texture released.
func (lib *Library) Add(name string, s *Sprite) {
	if v, ok := lib.cache.Peek(name); ok {
		if old := v.(*Sprite); old != s {
			logger.Logf(logger.Allow, "sprite", "replacing %v", name)
			old.Destroy()
		}
	}
	lib.cache.Add(name, s)
}

// Len returns the number of sprites in the library.
func (lib *Library) Len() int {
	return lib.cache.Len()
}

// Contains returns true if the library has a sprite for the path.
func (lib *Library) Contains(path string) bool {
	return lib.cache.Contains(path)
}

// Purge removes every sprite from the library, releasing their textures.
func (lib *Library) Purge() {
	lib.cache.Purge()
}
