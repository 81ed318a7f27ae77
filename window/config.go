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
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/colors"
	"github.com/jepebe/pixelengine/font"
	"github.com/jepebe/pixelengine/text"
	"github.com/jepebe/pixelengine/version"
)

// Config of a new window.
type Config struct {
	Title string

	// size of the window in pixels
	Width  int
	Height int

	// the number of window pixels per logical pixel in each direction
	XScale float32
	YScale float32

	VSync     bool
	Resizable bool

	// frame rate cap used when VSync is false. zero means no cap
	FPSCap int

	// size of the default font in points
	FontSize float64

	// how text is drawn
	TextMode text.Mode

	Background mgl32.Vec4

	// directory of GLSL files that replace the built in shaders. the files
	// are reloaded when they change
	ShaderDir string

	// number of sprites kept by the sprite library
	SpriteCache int
}

// DefaultConfig returns a 640x480 window with a scale of two.
func DefaultConfig() Config {
	return Config{
		Title:       version.ApplicationName,
		Width:       640,
		Height:      480,
		XScale:      2,
		YScale:      2,
		FontSize:    font.DefaultSize,
		TextMode:    text.PointGlyphs,
		Background:  colors.Black,
		SpriteCache: 64,
	}
}

// SetScale sets the scale in both directions.
func (cfg *Config) SetScale(scale float32) {
	cfg.XScale = scale
	cfg.YScale = scale
}

// LogicalSize returns the size of the window in logical pixels.
func (cfg Config) LogicalSize() (int, int) {
	return int(float32(cfg.Width) / cfg.XScale), int(float32(cfg.Height) / cfg.YScale)
}

// normalise replaces unusable values with the values from DefaultConfig().
func (cfg *Config) normalise() {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.XScale <= 0 {
		cfg.XScale = 1
	}
	if cfg.YScale <= 0 {
		cfg.YScale = 1
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = def.FontSize
	}
	if cfg.SpriteCache <= 0 {
		cfg.SpriteCache = def.SpriteCache
	}
}
