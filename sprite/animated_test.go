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
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/spaces"
	"github.com/jepebe/pixelengine/sprite"
	"github.com/jepebe/pixelengine/test"
)

func newAnimated(t *testing.T) *sprite.AnimatedSprite {
	t.Helper()
	s, err := sprite.NewBlank(64, 32, 4, nil)
	test.DemandSuccess(t, err)
	as, err := sprite.NewAnimated(s, 4, 2)
	test.DemandSuccess(t, err)
	return as
}

func TestDefaultAnimation(t *testing.T) {
	as := newAnimated(t)
	test.ExpectEquality(t, as.CurrentAnimation(), sprite.DefaultAnimation)

	w, h := as.CellSize()
	test.ExpectEquality(t, w, 16)
	test.ExpectEquality(t, h, 16)

	// eight frames at thirty frames per second
	for i := 0; i < 5; i++ {
		as.AdvanceTime(1.0 / 20)
	}
	f, c := as.Frame()
	test.ExpectEquality(t, f, 5)
	test.ExpectEquality(t, c, sprite.Cell{Col: 1, Row: 1})

	// wraps at the end of the frames
	for i := 0; i < 3; i++ {
		as.AdvanceTime(1.0 / 20)
	}
	f, _ = as.Frame()
	test.ExpectEquality(t, f, 0)
}

func TestAnimationClocks(t *testing.T) {
	as := newAnimated(t)

	walk := []sprite.Cell{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0}, {Col: 3, Row: 0}}
	jump := []sprite.Cell{{Col: 0, Row: 1}, {Col: 1, Row: 1}}
	test.ExpectSuccess(t, as.SetAnimation("walk", walk, 10))
	test.ExpectSuccess(t, as.SetAnimation("jump", jump, 5))

	test.ExpectSuccess(t, as.SetCurrentAnimation("walk"))
	for i := 0; i < 3; i++ {
		as.AdvanceTime(0.1)
	}
	as.AdvanceTime(0.02)

	f, _ := as.Frame()
	test.ExpectEquality(t, f, 3)
	e, err := as.Elapsed("walk")
	test.ExpectSuccess(t, err)
	test.ExpectApproximate(t, e, 0.02, 0.00001)

	// advancing another animation leaves walk alone
	test.ExpectSuccess(t, as.SetCurrentAnimation("jump"))
	as.AdvanceTime(0.2)
	as.AdvanceTime(0.05)
	f, c := as.Frame()
	test.ExpectEquality(t, f, 1)
	test.ExpectEquality(t, c, sprite.Cell{Col: 1, Row: 1})

	test.ExpectSuccess(t, as.SetCurrentAnimation("walk"))
	f, _ = as.Frame()
	test.ExpectEquality(t, f, 3)
	e, _ = as.Elapsed("walk")
	test.ExpectApproximate(t, e, 0.02, 0.00001)

	// every animation moves with AdvanceTimeAll
	as.AdvanceTimeAll(0.1)
	f, _ = as.Frame()
	test.ExpectEquality(t, f, 0)
	e, _ = as.Elapsed("jump")
	test.ExpectApproximate(t, e, 0.15, 0.00001)

	err = as.SetCurrentAnimation("run")
	test.ExpectSuccess(t, curated.Is(err, sprite.UnknownAnimation))

	err = as.SetAnimation("bad", []sprite.Cell{{Col: 4, Row: 0}}, 10)
	test.ExpectSuccess(t, curated.Is(err, sprite.OutOfBounds))
}

func TestAnimatedDraw(t *testing.T) {
	dev, r := newRenderer(t)
	as := newAnimated(t)

	test.ExpectSuccess(t, as.SetAnimation("walk", []sprite.Cell{{Col: 2, Row: 1}}, 10))
	test.ExpectSuccess(t, as.SetCurrentAnimation("walk"))

	sp := spaces.NewSpaces(320, 200)
	test.ExpectSuccess(t, as.Draw(sp, r))

	d, _ := dev.LastDraw()
	tex := d.Uniforms["texture_model"].(mgl32.Mat4)
	expectVec2(t, transform(tex, sprite.UnitQuad[0]), mgl32.Vec2{32, 16})
	expectVec2(t, transform(tex, sprite.UnitQuad[2]), mgl32.Vec2{48, 32})

	model := d.Uniforms["model"].(mgl32.Mat4)
	expectVec2(t, transform(model, sprite.UnitQuad[2]), mgl32.Vec2{16, 16})
}
