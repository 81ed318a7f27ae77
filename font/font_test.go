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

package font_test

import (
	"errors"
	"os"
	"testing"

	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/font"
	"github.com/jepebe/pixelengine/gpu"
	"github.com/jepebe/pixelengine/test"
	"golang.org/x/image/font/gofont/goregular"
)

func TestCell(t *testing.T) {
	col, row := font.Cell(' ')
	test.ExpectEquality(t, col, 0)
	test.ExpectEquality(t, row, 0)

	col, row = font.Cell('A')
	test.ExpectEquality(t, col, 1)
	test.ExpectEquality(t, row, 2)

	col, row = font.Cell(127)
	test.ExpectEquality(t, col, 15)
	test.ExpectEquality(t, row, 5)

	// characters outside the atlas are drawn as a question mark
	qcol, qrow := font.Cell('?')
	for _, c := range []rune{'\n', 0, 128, 'é'} {
		col, row = font.Cell(c)
		test.ExpectEquality(t, col, qcol, c)
		test.ExpectEquality(t, row, qrow, c)
	}

	test.ExpectEquality(t, font.Rows, 6)
	test.ExpectEquality(t, font.FirstRow, 2)
}

func TestDefault(t *testing.T) {
	fnt, err := font.Default(16)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, fnt.GlyphWidth > 0)
	test.ExpectSuccess(t, fnt.GlyphHeight > fnt.GlyphWidth)
	test.ExpectEquality(t, fnt.Atlas.Width, fnt.GlyphWidth*font.Columns)
	test.ExpectEquality(t, fnt.Atlas.Height, fnt.GlyphHeight*font.Rows)
	test.ExpectEquality(t, len(fnt.Atlas.Pix), fnt.Atlas.Width*fnt.Atlas.Height)

	// the space cell is empty and the cell for 'M' is not
	cellCoverage := func(c rune) int {
		col, row := font.Cell(c)
		var n int
		for y := row * fnt.GlyphHeight; y < (row+1)*fnt.GlyphHeight; y++ {
			for x := col * fnt.GlyphWidth; x < (col+1)*fnt.GlyphWidth; x++ {
				n += int(fnt.Atlas.Pix[y*fnt.Atlas.Width+x])
			}
		}
		return n
	}
	test.ExpectEquality(t, cellCoverage(' '), 0)
	test.ExpectSuccess(t, cellCoverage('M') > 0)

	s, err := fnt.Sprite()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Format(), gpu.Alpha)
	test.ExpectEquality(t, s.Width(), fnt.Atlas.Width)
}

func TestInvalid(t *testing.T) {
	_, err := font.New("garbage", []byte("not a font"), 12)
	test.ExpectSuccess(t, curated.Is(err, font.FontError))

	_, err = font.Load("/no/such/font.ttf", 12)
	test.ExpectSuccess(t, curated.Is(err, font.FontError))
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))

	// proportional fonts cannot be laid out in the atlas
	_, err = font.New("goregular", goregular.TTF, 12)
	test.ExpectSuccess(t, curated.Is(err, font.NotMonospaced))
}
