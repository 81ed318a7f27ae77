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
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/curated"
)

// Sentinal error patterns.
const (
	UnbalancedStack = "spaces: unbalanced stack: %s"
)

// CoordinateSpace is a transformation matrix and a stack of saved matrices.
// The zero value is not usable, use NewCoordinateSpace().
type CoordinateSpace struct {
	m     mgl32.Mat4
	stack []mgl32.Mat4
}

// NewCoordinateSpace is the preferred method of initialisation for the
// CoordinateSpace type. The matrix is the identity matrix.
func NewCoordinateSpace() *CoordinateSpace {
	return &CoordinateSpace{
		m:     mgl32.Ident4(),
		stack: make([]mgl32.Mat4, 0, 8),
	}
}

// Push a copy of the current matrix onto the stack.
func (cs *CoordinateSpace) Push() {
	cs.stack = append(cs.stack, cs.m)
}

// Pop the most recently pushed matrix from the stack and make it the current
// matrix.
func (cs *CoordinateSpace) Pop() error {
	if len(cs.stack) == 0 {
		return curated.Errorf(UnbalancedStack, "pop on empty stack")
	}
	cs.m = cs.stack[len(cs.stack)-1]
	cs.stack = cs.stack[:len(cs.stack)-1]
	return nil
}

// Depth returns the number of matrices on the stack.
func (cs *CoordinateSpace) Depth() int {
	return len(cs.stack)
}

// snapshot is a copy of the matrix and the stack of a CoordinateSpace.
type snapshot struct {
	m     mgl32.Mat4
	stack []mgl32.Mat4
}

func (cs *CoordinateSpace) snapshot() snapshot {
	return snapshot{
		m:     cs.m,
		stack: append([]mgl32.Mat4(nil), cs.stack...),
	}
}

// restore the matrix and the stack to the snapshot. entries popped since the
// snapshot was taken are put back.
func (cs *CoordinateSpace) restore(s snapshot) {
	cs.m = s.m
	cs.stack = append(cs.stack[:0], s.stack...)
}

// With pushes the current matrix, calls fn() and then pops. If fn() leaves
// the stack deeper or shallower than it found it, the matrix and the stack are
// restored to how they were before the push and UnbalancedStack is returned.
func (cs *CoordinateSpace) With(fn func() error) (err error) {
	before := cs.snapshot()
	cs.Push()

	defer func() {
		d := len(cs.stack)
		cs.restore(before)
		if d != len(before.stack)+1 && err == nil {
			err = curated.Errorf(UnbalancedStack, "depth changed during scope")
		}
	}()

	return fn()
}

// Translate post-multiplies the current matrix by a translation.
func (cs *CoordinateSpace) Translate(x, y, z float32) {
	cs.m = cs.m.Mul4(mgl32.Translate3D(x, y, z))
}

// Scale post-multiplies the current matrix by a scaling.
func (cs *CoordinateSpace) Scale(x, y, z float32) {
	cs.m = cs.m.Mul4(mgl32.Scale3D(x, y, z))
}

// Rotate post-multiplies the current matrix by a rotation of angle radians
// about the axis.
func (cs *CoordinateSpace) Rotate(angle float32, axis mgl32.Vec3) {
	cs.m = cs.m.Mul4(mgl32.HomogRotate3D(angle, axis.Normalize()))
}

// LoadIdentity replaces the current matrix with the identity matrix. The
// stack is not changed.
func (cs *CoordinateSpace) LoadIdentity() {
	cs.m = mgl32.Ident4()
}

// Matrix returns the current matrix.
func (cs *CoordinateSpace) Matrix() mgl32.Mat4 {
	return cs.m
}

// SetMatrix replaces the current matrix.
func (cs *CoordinateSpace) SetMatrix(m mgl32.Mat4) {
	cs.m = m
}
