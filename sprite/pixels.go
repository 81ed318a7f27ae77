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
	"image/color"

	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/gpu"
)

// Sentinal error patterns.
const (
	UnsupportedChannels = "sprite: unsupported number of channels: %d"
	UnknownAnimation    = "sprite: unknown animation: %s"
	OutOfBounds         = "sprite: %s out of bounds: %d, %d"
	ImageError          = "sprite: image: %s: %v"
	LibraryError        = "sprite: library: %v"
)

// Pixels is a rectangle of pixels with no padding at the end of each row.
type Pixels struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// NewPixels allocates pixels of the given size. Channels must be 1, 3 or 4.
func NewPixels(width, height, channels int) (Pixels, error) {
	switch channels {
	case 1, 3, 4:
	default:
		return Pixels{}, curated.Errorf(UnsupportedChannels, channels)
	}
	return Pixels{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]byte, width*height*channels),
	}, nil
}

// Stride is the number of bytes in a row.
func (p Pixels) Stride() int {
	return p.Width * p.Channels
}

func (p Pixels) offset(x, y int) int {
	return y*p.Stride() + x*p.Channels
}

func (p Pixels) set(x, y int, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := p.offset(x, y)
	switch p.Channels {
	case 1:
		p.Pix[i] = n.A
	case 3:
		p.Pix[i] = n.R
		p.Pix[i+1] = n.G
		p.Pix[i+2] = n.B
	case 4:
		p.Pix[i] = n.R
		p.Pix[i+1] = n.G
		p.Pix[i+2] = n.B
		p.Pix[i+3] = n.A
	}
}

// At returns the colour of the pixel. Single channel pixels are returned as
// white with the channel as the alpha.
func (p Pixels) At(x, y int) color.NRGBA {
	i := p.offset(x, y)
	switch p.Channels {
	case 1:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: p.Pix[i]}
	case 3:
		return color.NRGBA{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2], A: 0xff}
	}
	return color.NRGBA{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2], A: p.Pix[i+3]}
}

// FormatPolicy maps the number of channels to a texture format.
type FormatPolicy map[int]gpu.TextureFormat

// DefaultPolicy treats single channel pixels as alpha.
var DefaultPolicy = FormatPolicy{
	1: gpu.Alpha,
	3: gpu.RGB,
	4: gpu.RGBA,
}

// RedPolicy treats single channel pixels as the red channel.
var RedPolicy = FormatPolicy{
	1: gpu.Red,
	3: gpu.RGB,
	4: gpu.RGBA,
}

// Format returns the texture format for the number of channels.
func (pol FormatPolicy) Format(channels int) (gpu.TextureFormat, error) {
	f, ok := pol[channels]
	if !ok {
		return 0, curated.Errorf(UnsupportedChannels, channels)
	}
	return f, nil
}
