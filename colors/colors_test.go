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

package colors_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/colors"
	"github.com/jepebe/pixelengine/test"
)

func TestRGB(t *testing.T) {
	test.ExpectEquality(t, colors.RGB(0.1, 0.2, 0.3), mgl32.Vec4{0.1, 0.2, 0.3, 1})
	test.ExpectEquality(t, colors.RGBA(0.1, 0.2, 0.3, 0.4), mgl32.Vec4{0.1, 0.2, 0.3, 0.4})
	test.ExpectEquality(t, colors.RGB8(255, 0, 255), colors.Magenta)
	test.ExpectEquality(t, colors.Fade(colors.Red, 0.5), mgl32.Vec4{1, 0, 0, 0.5})
}

func TestHSL(t *testing.T) {
	c := colors.HSL(0, 1, 0.5)
	test.ExpectApproximate(t, c[0], 1, 0.001)
	test.ExpectApproximate(t, c[1], 0, 0.001)
	test.ExpectApproximate(t, c[2], 0, 0.001)

	// hue wraps
	c = colors.HSL(1.0/3.0+1, 1, 0.5)
	test.ExpectApproximate(t, c[0], 0, 0.001)
	test.ExpectApproximate(t, c[1], 1, 0.001)
	test.ExpectApproximate(t, c[2], 0, 0.001)

	c = colors.HSL(0.5, 0, 1)
	test.ExpectEquality(t, c, colors.White)
}

func TestPalette(t *testing.T) {
	test.ExpectEquality(t, len(colors.Palette), 13)
	for i, col := range colors.Palette {
		for _, c := range col {
			test.ExpectEquality(t, c[3], float32(1), i)
		}
	}
}

func TestParse(t *testing.T) {
	c, ok := colors.Parse("darkgrey")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, colors.DarkGrey)

	c, ok = colors.Parse("#ff0000")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, colors.Red)

	_, ok = colors.Parse("not a color")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, colors.Hex(colors.Blue), "#0000ff")
}
