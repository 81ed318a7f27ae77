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

package buffer

import (
	"reflect"
	"unsafe"

	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/gpu"
)

// Sentinal error patterns.
const (
	OutOfCapacity   = "buffer: out of capacity (%d elements)"
	UnsupportedType = "buffer: unsupported element type: %s"
)

// DefaultCapacity is the capacity used by the batching types when no other
// capacity is specified.
const DefaultCapacity = 10000

// Layout describes an element of a Buffer in terms the GPU understands.
type Layout struct {
	Components int
	Type       gpu.DataType
}

// Stride is the size of one element in bytes.
func (l Layout) Stride() int {
	return l.Components * l.Type.Size()
}

func scalar(k reflect.Kind) (gpu.DataType, bool) {
	switch k {
	case reflect.Float32:
		return gpu.Float32, true
	case reflect.Float64:
		return gpu.Float64, true
	case reflect.Uint8:
		return gpu.Uint8, true
	case reflect.Uint16:
		return gpu.Uint16, true
	case reflect.Uint32:
		return gpu.Uint32, true
	}
	return 0, false
}

// LayoutOf returns the Layout of the type. Returns the UnsupportedType error
// if the type can not be used as a buffer element.
func LayoutOf(typ reflect.Type) (Layout, error) {
	if typ == nil {
		return Layout{}, curated.Errorf(UnsupportedType, "nil")
	}

	if t, ok := scalar(typ.Kind()); ok {
		return Layout{Components: 1, Type: t}, nil
	}

	if typ.Kind() == reflect.Array {
		if typ.Len() < 1 || typ.Len() > 4 {
			return Layout{}, curated.Errorf(UnsupportedType, typ)
		}
		if t, ok := scalar(typ.Elem().Kind()); ok {
			return Layout{Components: typ.Len(), Type: t}, nil
		}
	}

	return Layout{}, curated.Errorf(UnsupportedType, typ)
}

// Buffer is a fixed capacity buffer of elements of type T.
type Buffer[T any] struct {
	dev    gpu.Device
	target gpu.BufferTarget
	layout Layout

	data  []T
	index int
	dirty bool

	// GPU handle. created on first bind
	id uint32
}

// New is the preferred method of initialisation for the Buffer type. A
// capacity of zero or less means DefaultCapacity.
func New[T any](dev gpu.Device, target gpu.BufferTarget, capacity int) (*Buffer[T], error) {
	layout, err := LayoutOf(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return nil, err
	}

	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Buffer[T]{
		dev:    dev,
		target: target,
		layout: layout,
		data:   make([]T, capacity),
		dirty:  true,
	}, nil
}

// Append an element at the write cursor.
func (b *Buffer[T]) Append(v T) error {
	if b.index >= len(b.data) {
		return curated.Errorf(OutOfCapacity, len(b.data))
	}
	b.data[b.index] = v
	b.index++
	b.dirty = true
	return nil
}

// Reset the write cursor. Memory is not cleared.
func (b *Buffer[T]) Reset() {
	b.index = 0
	b.dirty = true
}

// Len returns the number of elements written since the last reset.
func (b *Buffer[T]) Len() int {
	return b.index
}

// Cap returns the capacity of the buffer.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Remaining returns the number of elements that can be appended before the
// buffer is full.
func (b *Buffer[T]) Remaining() int {
	return len(b.data) - b.index
}

// Dirty returns true if the live elements have changed since the last upload.
func (b *Buffer[T]) Dirty() bool {
	return b.dirty
}

// Layout returns the element layout.
func (b *Buffer[T]) Layout() Layout {
	return b.layout
}

// Slice returns the live elements. The slice is only valid until the next
// call to Append() or Reset().
func (b *Buffer[T]) Slice() []T {
	return b.data[:b.index]
}

// At returns the element at index i. Panics if i is not a live element.
func (b *Buffer[T]) At(i int) T {
	return b.Slice()[i]
}

// bytes returns the live elements as a byte slice, sharing memory with the
// buffer.
func (b *Buffer[T]) bytes() []byte {
	if b.index == 0 {
		return nil
	}
	p := unsafe.Pointer(unsafe.SliceData(b.data))
	return unsafe.Slice((*byte)(p), b.index*b.layout.Stride())
}

// Bind the buffer. If the buffer has changed since the last upload then the
// live elements are uploaded. For array buffers the attribute slot is enabled
// and described.
//
// Returns false if the buffer is empty, in which case nothing happens.
func (b *Buffer[T]) Bind(slot uint32) bool {
	if b.index == 0 {
		return false
	}

	if b.id == 0 {
		b.id = b.dev.CreateBuffer()
		b.dirty = true
	}

	b.dev.BindBuffer(b.target, b.id)

	if b.dirty {
		b.dev.BufferData(b.target, b.bytes())
		b.dirty = false
	}

	if b.target == gpu.ArrayBuffer {
		b.dev.EnableAttrib(slot)
		b.dev.AttribPointer(slot, b.layout.Components, b.layout.Type, b.layout.Stride())
	}

	return true
}

// Destroy releases the GPU side of the buffer. The buffer can still be used
// and a new GPU buffer will be created on the next bind.
func (b *Buffer[T]) Destroy() {
	if b.id != 0 {
		b.dev.DeleteBuffer(b.id)
		b.id = 0
	}
	b.dirty = true
}
