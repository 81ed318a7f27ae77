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
	"image"
	"os"

	// image formats supported by Load()
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/jepebe/pixelengine/curated"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// FromImage creates a four channel sprite from an image.
func FromImage(img image.Image) (*Sprite, error) {
	b := img.Bounds()

	var rgba *image.NRGBA
	if n, ok := img.(*image.NRGBA); ok && n.Stride == b.Dx()*4 && b.Min == (image.Point{}) {
		rgba = n
	} else {
		rgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	return New(Pixels{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: 4,
		Pix:      rgba.Pix,
	}, nil)
}

// FromImageScaled creates a sprite from an image scaled to the width and
// height with nearest neighbour sampling.
func FromImageScaled(img image.Image, width, height int) (*Sprite, error) {
	rgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(rgba, rgba.Bounds(), img, img.Bounds(), draw.Src, nil)
	return FromImage(rgba)
}

// Load creates a sprite from an image file. PNG, GIF, JPEG and BMP files are
// supported.
func Load(path string) (*Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(ImageError, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, curated.Errorf(ImageError, path, err)
	}

	return FromImage(img)
}
