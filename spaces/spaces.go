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

package spaces

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/curated"
)

// White is the initial default tint.
var White = mgl32.Vec4{1, 1, 1, 1}

// Spaces is the complete transformation state for drawing in a window of a
// fixed logical size.
type Spaces struct {
	width  int
	height int

	Projection *CoordinateSpace
	View       *CoordinateSpace
	Model      *CoordinateSpace
	Texture    *CoordinateSpace

	tint        mgl32.Vec4
	defaultTint mgl32.Vec4
}

// NewSpaces is the preferred method of initialisation for the Spaces type.
// The width and height are in logical pixels.
func NewSpaces(width, height int) *Spaces {
	return &Spaces{
		width:       width,
		height:      height,
		Projection:  NewCoordinateSpace(),
		View:        NewCoordinateSpace(),
		Model:       NewCoordinateSpace(),
		Texture:     NewCoordinateSpace(),
		tint:        White,
		defaultTint: White,
	}
}

// Width of the drawing area in logical pixels.
func (sp *Spaces) Width() int {
	return sp.width
}

// Height of the drawing area in logical pixels.
func (sp *Spaces) Height() int {
	return sp.height
}

// Resolution returns the width and height as a vector.
func (sp *Spaces) Resolution() mgl32.Vec2 {
	return mgl32.Vec2{float32(sp.width), float32(sp.height)}
}

// ProjectionView returns the product of the projection and view matrices. It
// is computed on every call.
func (sp *Spaces) ProjectionView() mgl32.Mat4 {
	return sp.Projection.Matrix().Mul4(sp.View.Matrix())
}

// Tint returns the colour applied to everything drawn.
func (sp *Spaces) Tint() mgl32.Vec4 {
	return sp.tint
}

// SetTint changes the tint. The zero value selects the default tint.
func (sp *Spaces) SetTint(c mgl32.Vec4) {
	if c == (mgl32.Vec4{}) {
		sp.tint = sp.defaultTint
		return
	}
	sp.tint = c
}

// DefaultTint returns the tint selected by SetTint() with the zero value.
func (sp *Spaces) DefaultTint() mgl32.Vec4 {
	return sp.defaultTint
}

// SetDefaultTint changes the default tint. The current tint is not changed.
func (sp *Spaces) SetDefaultTint(c mgl32.Vec4) {
	sp.defaultTint = c
}

func (sp *Spaces) all() [4]*CoordinateSpace {
	return [4]*CoordinateSpace{sp.Projection, sp.View, sp.Model, sp.Texture}
}

// Push all four coordinate spaces.
func (sp *Spaces) Push() {
	for _, cs := range sp.all() {
		cs.Push()
	}
}

// Pop all four coordinate spaces. All spaces are popped even if one of them
// fails.
func (sp *Spaces) Pop() error {
	var err error
	for _, cs := range sp.all() {
		if e := cs.Pop(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// Depths is the stack depth of each coordinate space.
type Depths struct {
	Projection int
	View       int
	Model      int
	Texture    int
}

func (d Depths) String() string {
	return fmt.Sprintf("projection=%d view=%d model=%d texture=%d", d.Projection, d.View, d.Model, d.Texture)
}

// Depths returns a snapshot of the stack depths.
func (sp *Spaces) Depths() Depths {
	return Depths{
		Projection: sp.Projection.Depth(),
		View:       sp.View.Depth(),
		Model:      sp.Model.Depth(),
		Texture:    sp.Texture.Depth(),
	}
}

// With pushes all four spaces, calls fn() and pops them again. Returns the
// UnbalancedStack error if fn() changed the depth of any space, in which case
// every space is restored to how it was before the push.
func (sp *Spaces) With(fn func() error) (err error) {
	before := sp.Depths()
	var saved [4]snapshot
	for i, cs := range sp.all() {
		saved[i] = cs.snapshot()
	}
	sp.Push()

	defer func() {
		after := sp.Depths()
		for i, cs := range sp.all() {
			cs.restore(saved[i])
		}

		expected := Depths{
			Projection: before.Projection + 1,
			View:       before.View + 1,
			Model:      before.Model + 1,
			Texture:    before.Texture + 1,
		}
		if after != expected && err == nil {
			err = curated.Errorf(UnbalancedStack, after)
		}
	}()

	return fn()
}

// Verify returns the UnbalancedStack error if the current depths are not the
// expected depths.
func (sp *Spaces) Verify(expected Depths) error {
	if d := sp.Depths(); d != expected {
		return curated.Errorf(UnbalancedStack, fmt.Sprintf("expected %s got %s", expected, d))
	}
	return nil
}
