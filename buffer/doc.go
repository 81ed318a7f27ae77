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

// Package buffer implements a fixed capacity, typed buffer of elements that
// is mirrored in GPU memory.
//
// The element type of a Buffer is a scalar or an array of one to four
// scalars, where the scalar is one of float32, float64, uint8, uint16 or
// uint32. The mgl32 vector types qualify because they are arrays of float32.
// The layout of the element (the number of components and the component
// type) is worked out once, when the buffer is created:
//
//	pos, err := buffer.New[mgl32.Vec3](dev, gpu.ArrayBuffer, 100)
//	if err != nil {
//		return err
//	}
//	err = pos.Append(mgl32.Vec3{10, 10, 0})
//
// Elements are written at the write cursor. Once the cursor reaches the
// capacity of the buffer, Append() fails with the OutOfCapacity error and the
// buffer is left untouched. Reset() moves the cursor back to zero without
// clearing memory. Only the elements before the cursor are ever uploaded.
//
// The GPU side of the buffer is created the first time the buffer is bound.
// Bind() uploads the live elements only if they have changed since the
// previous upload.
package buffer
