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

// Package font rasterises a monospaced TrueType font into a glyph atlas.
//
// The atlas is a single channel image of 16 columns and 6 rows of equally
// sized cells, holding the characters 32 to 127 in order. The cell for a
// character is therefore (code % 16, code / 16 - FirstRow).
package font

import (
	"image"
	"image/color"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/logger"
	"github.com/jepebe/pixelengine/sprite"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// Sentinal error patterns.
const (
	FontError     = "font: %s: %v"
	NotMonospaced = "font: %s: not a monospaced font"
	NoGlyphs      = "font: %s: no printable glyphs"
)

// Layout of the atlas.
const (
	FirstChar = 32
	LastChar  = 127
	Columns   = 16
	Rows      = (LastChar - FirstChar + 1) / Columns

	// the first row of the atlas is character 32, which is row 2 of the
	// full 16 column table
	FirstRow = FirstChar / Columns
)

// Replacement is drawn for characters outside of the atlas.
const Replacement = '?'

// DefaultSize is the point size used when no size is given.
const DefaultSize = 12.0

// Font is a glyph atlas.
type Font struct {
	name string
	size float64

	GlyphWidth  int
	GlyphHeight int

	// single channel coverage values
	Atlas sprite.Pixels
}

// New rasterises the TrueType font data at the point size. The font must be
// monospaced.
func New(name string, ttf []byte, size float64) (*Font, error) {
	if size <= 0 {
		size = DefaultSize
	}

	tt, err := truetype.Parse(ttf)
	if err != nil {
		return nil, curated.Errorf(FontError, name, err)
	}

	face := truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	defer face.Close()

	// DEL has no glyph so is not included in the check
	var advance fixed.Int26_6
	for c := rune(FirstChar); c < LastChar; c++ {
		a, ok := face.GlyphAdvance(c)
		if !ok {
			continue
		}
		if advance == 0 {
			advance = a
		} else if a != advance {
			return nil, curated.Errorf(NotMonospaced, name)
		}
	}
	if advance == 0 {
		return nil, curated.Errorf(NoGlyphs, name)
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	fnt := &Font{
		name:        name,
		size:        size,
		GlyphWidth:  advance.Ceil(),
		GlyphHeight: ascent + metrics.Descent.Ceil(),
	}

	img := image.NewAlpha(image.Rect(0, 0, fnt.GlyphWidth*Columns, fnt.GlyphHeight*Rows))
	d := &xfont.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Alpha{A: 0xff}),
		Face: face,
	}

	for c := FirstChar; c <= LastChar; c++ {
		col, row := Cell(rune(c))
		d.Dot = fixed.P(col*fnt.GlyphWidth, row*fnt.GlyphHeight+ascent)
		d.DrawString(string(rune(c)))
	}

	fnt.Atlas = sprite.Pixels{
		Width:    img.Rect.Dx(),
		Height:   img.Rect.Dy(),
		Channels: 1,
		Pix:      img.Pix,
	}

	logger.Logf(logger.Allow, "font", "%s at %.1fpt: %dx%d glyphs", name, size, fnt.GlyphWidth, fnt.GlyphHeight)

	return fnt, nil
}

// Default returns the Go Mono font at the point size.
func Default(size float64) (*Font, error) {
	return New("gomono", gomono.TTF, size)
}

// Load a TrueType font file.
func Load(path string, size float64) (*Font, error) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(FontError, path, err)
	}
	return New(path, ttf, size)
}

// Name of the font.
func (fnt *Font) Name() string {
	return fnt.name
}

// Size is the point size the font was rasterised at.
func (fnt *Font) Size() float64 {
	return fnt.size
}

// Sprite creates a sprite of the atlas. The sprite shares memory with the
// atlas.
func (fnt *Font) Sprite() (*sprite.Sprite, error) {
	s, err := sprite.New(fnt.Atlas, sprite.DefaultPolicy)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Printable returns true if the character is in the atlas.
func Printable(c rune) bool {
	return c >= FirstChar && c <= LastChar
}

// Cell returns the column and row of the character in the atlas. Characters
// not in the atlas return the cell of the Replacement character.
func Cell(c rune) (int, int) {
	if !Printable(c) {
		c = Replacement
	}
	return int(c) % Columns, int(c)/Columns - FirstRow
}
