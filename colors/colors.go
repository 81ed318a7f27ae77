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

// Package colors is a palette of named colors for use as tints.
//
// Colors are RGBA vectors with components in the range 0 to 1. The palette is
// arranged as hues in columns, running from the lightest to the darkest shade.
package colors

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB returns an opaque color.
func RGB(r, g, b float32) mgl32.Vec4 {
	return mgl32.Vec4{r, g, b, 1}
}

// RGBA returns a color with alpha.
func RGBA(r, g, b, a float32) mgl32.Vec4 {
	return mgl32.Vec4{r, g, b, a}
}

// RGB8 returns an opaque color from eight bit components.
func RGB8(r, g, b uint8) mgl32.Vec4 {
	return mgl32.Vec4{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

// HSL returns an opaque color from hue, saturation and lightness. Hue is in
// the range 0 to 1 and wraps.
func HSL(h, s, l float64) mgl32.Vec4 {
	h -= float64(int(h))
	if h < 0 {
		h += 1
	}
	c := colorful.Hsl(h*360, s, l).Clamped()
	return mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), 1}
}

// Fade returns the color with the alpha channel multiplied by a.
func Fade(c mgl32.Vec4, a float32) mgl32.Vec4 {
	c[3] *= a
	return c
}

// Hex returns the color as a hex string of the form #rrggbb.
func Hex(c mgl32.Vec4) string {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Clamped().Hex()
}

// Greys.
var (
	White     = RGB(1, 1, 1)
	LightGrey = RGB(0.75, 0.75, 0.75)
	Grey      = RGB(0.5, 0.5, 0.5)
	DarkGrey  = RGB(0.25, 0.25, 0.25)
	Black     = RGB(0, 0, 0)
)

// Hues. Each hue has a light and a dark shade.
var (
	LightRed = RGB(1, 0.5, 0.5)
	Red      = RGB(1, 0, 0)
	DarkRed  = RGB(0.5, 0, 0)

	LightOrange = RGB(1, 0.75, 0.5)
	Orange      = RGB(1, 0.5, 0)
	DarkOrange  = RGB(0.5, 0.25, 0)

	LightYellow = RGB(1, 1, 0.5)
	Yellow      = RGB(1, 1, 0)
	DarkYellow  = RGB(0.5, 0.5, 0)

	LightChartreuse = RGB(0.75, 1, 0.5)
	Chartreuse      = RGB(0.5, 1, 0)
	DarkChartreuse  = RGB(0.25, 0.5, 0)

	LightGreen = RGB(0.5, 1, 0.5)
	Green      = RGB(0, 1, 0)
	DarkGreen  = RGB(0, 0.5, 0)

	LightSpring = RGB(0.5, 1, 0.75)
	Spring      = RGB(0, 1, 0.5)
	DarkSpring  = RGB(0, 0.5, 0.25)

	LightCyan = RGB(0.5, 1, 1)
	Cyan      = RGB(0, 1, 1)
	DarkCyan  = RGB(0, 0.5, 0.5)

	LightAzure = RGB(0.5, 0.75, 1)
	Azure      = RGB(0, 0.5, 1)
	DarkAzure  = RGB(0, 0.25, 0.5)

	LightBlue = RGB(0.5, 0.5, 1)
	Blue      = RGB(0, 0, 1)
	DarkBlue  = RGB(0, 0, 0.5)

	LightViolet = RGB(0.75, 0.5, 1)
	Violet      = RGB(0.5, 0, 1)
	DarkViolet  = RGB(0.25, 0, 0.5)

	LightMagenta = RGB(1, 0.5, 1)
	Magenta      = RGB(1, 0, 1)
	DarkMagenta  = RGB(0.5, 0, 0.5)

	LightRose = RGB(1, 0.5, 0.75)
	Rose      = RGB(1, 0, 0.5)
	DarkRose  = RGB(0.5, 0, 0.25)
)

// Palette lists the named colors by column. The first column is the greys,
// every other column a hue from light to dark.
var Palette = [][]mgl32.Vec4{
	{White, LightGrey, Grey, DarkGrey, Black},
	{LightRed, Red, DarkRed},
	{LightOrange, Orange, DarkOrange},
	{LightYellow, Yellow, DarkYellow},
	{LightChartreuse, Chartreuse, DarkChartreuse},
	{LightGreen, Green, DarkGreen},
	{LightSpring, Spring, DarkSpring},
	{LightCyan, Cyan, DarkCyan},
	{LightAzure, Azure, DarkAzure},
	{LightBlue, Blue, DarkBlue},
	{LightViolet, Violet, DarkViolet},
	{LightMagenta, Magenta, DarkMagenta},
	{LightRose, Rose, DarkRose},
}

var names = map[string]mgl32.Vec4{
	"white": White, "lightgrey": LightGrey, "grey": Grey, "darkgrey": DarkGrey, "black": Black,
	"lightred": LightRed, "red": Red, "darkred": DarkRed,
	"lightorange": LightOrange, "orange": Orange, "darkorange": DarkOrange,
	"lightyellow": LightYellow, "yellow": Yellow, "darkyellow": DarkYellow,
	"lightchartreuse": LightChartreuse, "chartreuse": Chartreuse, "darkchartreuse": DarkChartreuse,
	"lightgreen": LightGreen, "green": Green, "darkgreen": DarkGreen,
	"lightspring": LightSpring, "spring": Spring, "darkspring": DarkSpring,
	"lightcyan": LightCyan, "cyan": Cyan, "darkcyan": DarkCyan,
	"lightazure": LightAzure, "azure": Azure, "darkazure": DarkAzure,
	"lightblue": LightBlue, "blue": Blue, "darkblue": DarkBlue,
	"lightviolet": LightViolet, "violet": Violet, "darkviolet": DarkViolet,
	"lightmagenta": LightMagenta, "magenta": Magenta, "darkmagenta": DarkMagenta,
	"lightrose": LightRose, "rose": Rose, "darkrose": DarkRose,
}

// Parse a color from either a name in the palette (eg. "darkgrey") or a hex
// string of the form #rrggbb.
func Parse(s string) (mgl32.Vec4, bool) {
	if c, ok := names[s]; ok {
		return c, true
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return mgl32.Vec4{}, false
	}
	return mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), 1}, true
}
