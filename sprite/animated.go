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
	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/spaces"
)

// DefaultAnimation is the name of the animation of every frame in the grid.
// It is the current animation of a new AnimatedSprite.
const DefaultAnimation = "default"

// DefaultFPS is the rate of the default animation.
const DefaultFPS = 30

// Cell is the column and row of a frame in the grid.
type Cell struct {
	Col int
	Row int
}

type animation struct {
	frames      []Cell
	fps         float64
	delta       float64
	accumulated float64
	current     int
}

func (a *animation) advance(dt float64) {
	a.accumulated += dt
	if a.accumulated >= a.delta {
		a.accumulated = 0
		a.current++
	}
	if a.current >= len(a.frames) {
		a.current = 0
	}
}

// AnimatedSprite draws frames from a sprite that is divided into a grid of
// equally sized cells. Each named animation keeps its own clock.
type AnimatedSprite struct {
	sprite *Sprite

	cols int
	rows int

	// size of a cell in pixels
	cellWidth  int
	cellHeight int

	animations map[string]*animation
	current    *animation
	name       string
}

// NewAnimated is the preferred method of initialisation for the
// AnimatedSprite type. The grid size is the number of columns and rows.
func NewAnimated(sprite *Sprite, cols, rows int) (*AnimatedSprite, error) {
	if cols <= 0 || rows <= 0 {
		return nil, curated.Errorf("sprite: invalid animation grid: %dx%d", cols, rows)
	}

	as := &AnimatedSprite{
		sprite:     sprite,
		cols:       cols,
		rows:       rows,
		cellWidth:  sprite.Width() / cols,
		cellHeight: sprite.Height() / rows,
		animations: make(map[string]*animation),
	}

	frames := make([]Cell, 0, cols*rows)
	for i := 0; i < cols*rows; i++ {
		frames = append(frames, Cell{Col: i % cols, Row: i / cols})
	}

	err := as.SetAnimation(DefaultAnimation, frames, DefaultFPS)
	if err != nil {
		return nil, err
	}
	err = as.SetCurrentAnimation(DefaultAnimation)
	if err != nil {
		return nil, err
	}

	return as, nil
}

// Sprite returns the underlying sprite.
func (as *AnimatedSprite) Sprite() *Sprite {
	return as.sprite
}

// CellSize returns the size of one frame in pixels.
func (as *AnimatedSprite) CellSize() (int, int) {
	return as.cellWidth, as.cellHeight
}

// SetAnimation adds or replaces a named animation. Replacing the current
// animation makes the replacement current.
func (as *AnimatedSprite) SetAnimation(name string, frames []Cell, fps float64) error {
	if len(frames) == 0 {
		return curated.Errorf("sprite: animation %s has no frames", name)
	}
	if fps <= 0 {
		return curated.Errorf("sprite: animation %s has invalid rate: %v", name, fps)
	}
	for _, f := range frames {
		if f.Col < 0 || f.Row < 0 || f.Col >= as.cols || f.Row >= as.rows {
			return curated.Errorf(OutOfBounds, "frame", f.Col, f.Row)
		}
	}

	a := &animation{
		frames: append([]Cell(nil), frames...),
		fps:    fps,
		delta:  1 / fps,
	}
	as.animations[name] = a
	if as.name == name {
		as.current = a
	}

	return nil
}

// SetCurrentAnimation selects the animation that is drawn. The animation's
// clock is not reset.
func (as *AnimatedSprite) SetCurrentAnimation(name string) error {
	a, ok := as.animations[name]
	if !ok {
		return curated.Errorf(UnknownAnimation, name)
	}
	as.current = a
	as.name = name
	return nil
}

// CurrentAnimation returns the name of the current animation.
func (as *AnimatedSprite) CurrentAnimation() string {
	return as.name
}

// AdvanceTime moves the clock of the current animation forward by dt seconds.
func (as *AnimatedSprite) AdvanceTime(dt float64) {
	as.current.advance(dt)
}

// AdvanceTimeAll moves the clock of every animation forward by dt seconds.
func (as *AnimatedSprite) AdvanceTimeAll(dt float64) {
	for _, a := range as.animations {
		a.advance(dt)
	}
}

// Frame returns the index of the current frame of the current animation and
// the cell it refers to.
func (as *AnimatedSprite) Frame() (int, Cell) {
	return as.current.current, as.current.frames[as.current.current]
}

// Elapsed returns the time accumulated towards the next frame of the named
// animation.
func (as *AnimatedSprite) Elapsed(name string) (float64, error) {
	a, ok := as.animations[name]
	if !ok {
		return 0, curated.Errorf(UnknownAnimation, name)
	}
	return a.accumulated, nil
}

// Draw the current frame of the current animation.
func (as *AnimatedSprite) Draw(sp *spaces.Spaces, r *Renderer) error {
	_, c := as.Frame()
	w := float32(as.cellWidth)
	h := float32(as.cellHeight)
	return as.sprite.DrawPartial(sp, r, float32(c.Col)*w, float32(c.Row)*h, w, h)
}
