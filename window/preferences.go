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

package window

import (
	"github.com/jepebe/pixelengine/colors"
	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/paths"
	"github.com/jepebe/pixelengine/prefs"
)

// Sentinal error patterns.
const (
	InvalidPreference = "window: invalid preference: %s: %v"
)

// PreferencesFile is the name of the preferences file in the resource path.
const PreferencesFile = "prefs.toml"

// Preferences are the window settings saved between runs.
type Preferences struct {
	dsk *prefs.Disk

	Width      prefs.Int
	Height     prefs.Int
	Scale      prefs.Float
	VSync      prefs.Bool
	Resizable  prefs.Bool
	FontSize   prefs.Float
	Background prefs.String
	FPSCap     prefs.Int
}

// NewPreferences loads the preferences from the file. An empty path means
// the default file in the resource path. Values not in the file take the
// values of DefaultConfig().
func NewPreferences(path string) (*Preferences, error) {
	if path == "" {
		path = paths.ResourcePath(PreferencesFile)
	}

	p := &Preferences{}
	p.SetDefaults()

	p.Background.SetHookPre(func(v prefs.Value) error {
		if _, ok := colors.Parse(v.(string)); !ok {
			return curated.Errorf(InvalidPreference, "window.background", v)
		}
		return nil
	})
	p.Scale.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return curated.Errorf(InvalidPreference, "window.scale", v)
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	entries := []struct {
		key string
		p   prefs.Pref
	}{
		{"window.width", &p.Width},
		{"window.height", &p.Height},
		{"window.scale", &p.Scale},
		{"window.vsync", &p.VSync},
		{"window.resizable", &p.Resizable},
		{"window.fontSize", &p.FontSize},
		{"window.background", &p.Background},
		{"window.fpsCap", &p.FPSCap},
	}
	for _, e := range entries {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(false); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults sets every preference to the value in DefaultConfig().
func (p *Preferences) SetDefaults() {
	def := DefaultConfig()
	_ = p.Width.Set(def.Width)
	_ = p.Height.Set(def.Height)
	_ = p.Scale.Set(def.XScale)
	_ = p.VSync.Set(def.VSync)
	_ = p.Resizable.Set(def.Resizable)
	_ = p.FontSize.Set(def.FontSize)
	_ = p.Background.Set(colors.Hex(def.Background))
	_ = p.FPSCap.Set(def.FPSCap)
}

// Load the preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save the preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config returns a Config with the preference values. Values not covered by
// the preferences are the values of DefaultConfig(), with the title given.
func (p *Preferences) Config(title string) Config {
	cfg := DefaultConfig()
	cfg.Title = title
	cfg.Width = p.Width.Get().(int)
	cfg.Height = p.Height.Get().(int)
	cfg.SetScale(float32(p.Scale.Get().(float64)))
	cfg.VSync = p.VSync.Get().(bool)
	cfg.Resizable = p.Resizable.Get().(bool)
	cfg.FontSize = p.FontSize.Get().(float64)
	cfg.FPSCap = p.FPSCap.Get().(int)
	if c, ok := colors.Parse(p.Background.String()); ok {
		cfg.Background = c
	}
	cfg.normalise()
	return cfg
}
