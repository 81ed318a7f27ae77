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

package sprite_test

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/gpu"
	"github.com/jepebe/pixelengine/gpu/headless"
	"github.com/jepebe/pixelengine/shader"
	"github.com/jepebe/pixelengine/spaces"
	"github.com/jepebe/pixelengine/sprite"
	"github.com/jepebe/pixelengine/test"
)

func newRenderer(t *testing.T) (*headless.Device, *sprite.Renderer) {
	t.Helper()
	dev := headless.NewDevice()
	r, err := sprite.NewRenderer(dev, shader.NewCatalogue(dev, ""))
	test.DemandSuccess(t, err)
	return dev, r
}

func transform(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec2 {
	return m.Mul4x1(v.Vec4(1)).Vec2()
}

func expectVec2(t *testing.T, v mgl32.Vec2, expected mgl32.Vec2) {
	t.Helper()
	test.ExpectApproximate(t, v.X(), expected.X(), 0.0001)
	test.ExpectApproximate(t, v.Y(), expected.Y(), 0.0001)
}

func TestSpriteCorners(t *testing.T) {
	dev, r := newRenderer(t)

	s, err := sprite.NewBlank(16, 8, 4, nil)
	test.DemandSuccess(t, err)

	sp := spaces.NewSpaces(320, 200)
	test.ExpectSuccess(t, s.Draw(sp, r))

	d, ok := dev.LastDraw()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, d.Count, 6)

	model := d.Uniforms["model"].(mgl32.Mat4)
	expectVec2(t, transform(model, sprite.UnitQuad[0]), mgl32.Vec2{0, 0})
	expectVec2(t, transform(model, sprite.UnitQuad[1]), mgl32.Vec2{0, 8})
	expectVec2(t, transform(model, sprite.UnitQuad[2]), mgl32.Vec2{16, 8})
	expectVec2(t, transform(model, sprite.UnitQuad[3]), mgl32.Vec2{16, 0})

	// texture coordinates are in pixels
	tex := d.Uniforms["texture_model"].(mgl32.Mat4)
	expectVec2(t, transform(tex, sprite.UnitQuad[2]), mgl32.Vec2{16, 8})

	// the spaces are left as they were found
	test.ExpectEquality(t, sp.Model.Matrix(), mgl32.Ident4())
	test.ExpectEquality(t, sp.Texture.Matrix(), mgl32.Ident4())
	test.ExpectEquality(t, sp.Depths(), spaces.Depths{})
}

func TestDrawPartial(t *testing.T) {
	dev, r := newRenderer(t)

	s, err := sprite.NewBlank(64, 64, 4, nil)
	test.DemandSuccess(t, err)

	sp := spaces.NewSpaces(320, 200)
	sp.Model.Translate(100, 50, 0)
	test.ExpectSuccess(t, s.DrawPartial(sp, r, 16, 32, 8, 4))

	d, _ := dev.LastDraw()
	model := d.Uniforms["model"].(mgl32.Mat4)
	expectVec2(t, transform(model, sprite.UnitQuad[0]), mgl32.Vec2{100, 50})
	expectVec2(t, transform(model, sprite.UnitQuad[2]), mgl32.Vec2{108, 54})

	tex := d.Uniforms["texture_model"].(mgl32.Mat4)
	expectVec2(t, transform(tex, sprite.UnitQuad[0]), mgl32.Vec2{16, 32})
	expectVec2(t, transform(tex, sprite.UnitQuad[2]), mgl32.Vec2{24, 36})

	err = s.DrawPartial(sp, r, 60, 0, 8, 8)
	test.ExpectSuccess(t, curated.Is(err, sprite.OutOfBounds))
}

func TestAnchor(t *testing.T) {
	dev, r := newRenderer(t)

	s, err := sprite.NewBlank(10, 20, 4, nil)
	test.DemandSuccess(t, err)
	s.SetAnchor(0.5, 0.5)

	sp := spaces.NewSpaces(320, 200)
	test.ExpectSuccess(t, s.Draw(sp, r))

	d, _ := dev.LastDraw()
	model := d.Uniforms["model"].(mgl32.Mat4)
	expectVec2(t, transform(model, sprite.UnitQuad[0]), mgl32.Vec2{-5, -10})
	expectVec2(t, transform(model, sprite.UnitQuad[2]), mgl32.Vec2{5, 10})
}

func TestStates(t *testing.T) {
	dev := headless.NewDevice()

	// three pixels wide means rows that are not a multiple of four bytes
	s, err := sprite.NewBlank(3, 3, 3, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.State(), sprite.Uncreated)

	// changes before creation are included in the first upload
	test.ExpectSuccess(t, s.SetPixel(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255}))
	test.ExpectEquality(t, s.State(), sprite.Uncreated)

	s.Activate(dev, 0)
	test.ExpectEquality(t, s.State(), sprite.Clean)
	id := dev.BoundTexture(0)
	tex := dev.Textures[id]
	test.ExpectEquality(t, tex.Uploads, 1)
	test.ExpectEquality(t, tex.Format, gpu.RGB)
	test.ExpectEquality(t, len(tex.Pix), 27)
	test.ExpectEquality(t, tex.Pix[1], uint8(20))

	// writes are deferred until the next activation
	test.ExpectSuccess(t, s.SetPixel(2, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 255}))
	test.ExpectSuccess(t, s.SetPixel(1, 2, color.NRGBA{R: 4, G: 5, B: 6, A: 255}))
	test.ExpectEquality(t, s.State(), sprite.Dirty)
	test.ExpectEquality(t, tex.SubUploads, 0)

	s.Activate(dev, 0)
	test.ExpectEquality(t, s.State(), sprite.Clean)
	test.ExpectEquality(t, tex.Uploads, 1)
	test.ExpectEquality(t, tex.SubUploads, 1)
	test.ExpectEquality(t, tex.LastSub, [4]int{1, 1, 2, 2})

	// row 1, column 2 and row 2, column 1
	test.ExpectEquality(t, tex.Pix[(1*3+2)*3], uint8(1))
	test.ExpectEquality(t, tex.Pix[(2*3+1)*3+2], uint8(6))

	// a clean sprite is only bound
	s.Activate(dev, 0)
	test.ExpectEquality(t, tex.SubUploads, 1)

	err = s.SetPixel(3, 0, color.White)
	test.ExpectSuccess(t, curated.Is(err, sprite.OutOfBounds))

	test.ExpectSuccess(t, s.Update(make([]byte, 27)))
	s.Activate(dev, 0)
	test.ExpectEquality(t, tex.LastSub, [4]int{0, 0, 3, 3})
	test.ExpectEquality(t, tex.Pix[1], uint8(0))

	test.ExpectFailure(t, s.Update(make([]byte, 4)))

	s.Destroy()
	test.ExpectEquality(t, s.State(), sprite.Uncreated)
	test.ExpectEquality(t, len(dev.Textures), 0)
}

func TestFormatPolicy(t *testing.T) {
	s, err := sprite.NewBlank(4, 4, 1, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Format(), gpu.Alpha)

	s, err = sprite.NewBlank(4, 4, 1, sprite.RedPolicy)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Format(), gpu.Red)

	test.ExpectSuccess(t, s.SetPixel(1, 1, color.NRGBA{A: 200}))
	test.ExpectEquality(t, s.Pixels().At(1, 1).A, uint8(200))

	_, err = sprite.NewBlank(4, 4, 2, nil)
	test.ExpectSuccess(t, curated.Is(err, sprite.UnsupportedChannels))

	_, err = sprite.New(sprite.Pixels{Width: 4, Height: 4, Channels: 2}, nil)
	test.ExpectSuccess(t, curated.Is(err, sprite.UnsupportedChannels))
}

func TestLoad(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 3))
	img.Set(4, 2, color.NRGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, png.Encode(f, img))
	test.DemandSuccess(t, f.Close())

	s, err := sprite.Load(path)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Width(), 5)
	test.ExpectEquality(t, s.Height(), 3)
	test.ExpectEquality(t, s.Format(), gpu.RGBA)
	test.ExpectEquality(t, s.Pixels().At(4, 2), color.NRGBA{R: 255, A: 255})

	_, err = sprite.Load(filepath.Join(t.TempDir(), "missing.png"))
	test.ExpectSuccess(t, curated.Is(err, sprite.ImageError))
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))

	// not an image
	junk := filepath.Join(t.TempDir(), "junk.png")
	test.DemandSuccess(t, os.WriteFile(junk, []byte("junk"), 0o600))
	_, err = sprite.Load(junk)
	test.ExpectSuccess(t, curated.Is(err, sprite.ImageError))

	// sub-images are copied
	s, err = sprite.FromImage(img.SubImage(image.Rect(3, 1, 5, 3)))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Width(), 2)
	test.ExpectEquality(t, s.Pixels().At(1, 1), color.NRGBA{R: 255, A: 255})

	s, err = sprite.FromImageScaled(img, 10, 6)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Pixels().At(9, 5), color.NRGBA{R: 255, A: 255})
}

func TestLibrary(t *testing.T) {
	dev := headless.NewDevice()

	lib, err := sprite.NewLibrary(2)
	test.DemandSuccess(t, err)

	a, _ := sprite.NewBlank(1, 1, 4, nil)
	b, _ := sprite.NewBlank(1, 1, 4, nil)
	c, _ := sprite.NewBlank(1, 1, 4, nil)
	a.Activate(dev, 0)

	lib.Add("a", a)
	lib.Add("b", b)
	test.ExpectEquality(t, lib.Len(), 2)

	// adding a third sprite evicts the least recently used
	lib.Add("c", c)
	test.ExpectEquality(t, lib.Len(), 2)
	test.ExpectFailure(t, lib.Contains("a"))
	test.ExpectEquality(t, a.State(), sprite.Uncreated)
	test.ExpectEquality(t, len(dev.Textures), 0)

	v, err := lib.Get("b")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, b)

	_, err = lib.Get(filepath.Join(t.TempDir(), "missing.png"))
	test.ExpectSuccess(t, curated.Is(err, sprite.ImageError))

	_, err = sprite.NewLibrary(0)
	test.ExpectSuccess(t, curated.Is(err, sprite.LibraryError))

	lib.Purge()
	test.ExpectEquality(t, lib.Len(), 0)
}

func TestLibraryReplace(t *testing.T) {
	dev := headless.NewDevice()

	lib, err := sprite.NewLibrary(2)
	test.DemandSuccess(t, err)

	a, _ := sprite.NewBlank(1, 1, 4, nil)
	b, _ := sprite.NewBlank(1, 1, 4, nil)
	a.Activate(dev, 0)
	b.Activate(dev, 0)
	test.ExpectEquality(t, len(dev.Textures), 2)

	lib.Add("x", a)

	// adding the same sprite again keeps its texture
	lib.Add("x", a)
	test.ExpectEquality(t, a.State(), sprite.Clean)

	// replacing the sprite releases the texture of the old one
	lib.Add("x", b)
	test.ExpectEquality(t, lib.Len(), 1)
	test.ExpectEquality(t, a.State(), sprite.Uncreated)
	test.ExpectEquality(t, b.State(), sprite.Clean)
	test.ExpectEquality(t, len(dev.Textures), 1)

	v, err := lib.Get("x")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, b)
}
