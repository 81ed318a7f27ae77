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

package batch

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/buffer"
	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/gpu"
)

// Sentinal error patterns.
const (
	UnknownPrimitive  = "batch: unknown primitive (%v)"
	NoPositionStream  = "batch: no position stream in slot 0"
	PrimitiveMismatch = "batch: cannot add %v to a batch of %v"
	StreamParity      = "batch: stream %d has %d elements but there are %d positions"
	StreamType        = "batch: stream %d is not a stream of %T"
	NoStream          = "batch: no stream in slot %d"
)

// MaxVertices is the number of vertices addressable by the 16bit indices.
const MaxVertices = math.MaxUint16 + 1

// VertexArray is a set of attribute streams and an index stream.
type VertexArray struct {
	dev  gpu.Device
	kind gpu.Primitive
	id   uint32

	streams []buffer.Stream
	indices buffer.Stream
}

// New is the preferred method of initialisation for the VertexArray type. The
// capacity is the number of primitives the index stream can hold. A capacity
// of zero or less means buffer.DefaultCapacity.
func New(dev gpu.Device, kind gpu.Primitive, capacity int) (*VertexArray, error) {
	vao := &VertexArray{
		dev:  dev,
		kind: kind,
	}

	var err error

	switch kind {
	case gpu.Points:
		vao.indices, err = buffer.New[[1]uint16](dev, gpu.ElementArrayBuffer, capacity)
	case gpu.Lines:
		vao.indices, err = buffer.New[[2]uint16](dev, gpu.ElementArrayBuffer, capacity)
	case gpu.Triangles:
		vao.indices, err = buffer.New[[3]uint16](dev, gpu.ElementArrayBuffer, capacity)
	default:
		return nil, curated.Errorf(UnknownPrimitive, kind)
	}
	if err != nil {
		return nil, curated.Errorf("batch: %v", err)
	}

	return vao, nil
}

// Kind returns the primitive kind of the vertex array.
func (vao *VertexArray) Kind() gpu.Primitive {
	return vao.kind
}

// AttachStream adds an attribute stream to the vertex array and returns the
// attribute slot it has been given. The first stream must be the position
// stream.
func (vao *VertexArray) AttachStream(s buffer.Stream) int {
	vao.streams = append(vao.streams, s)
	return len(vao.streams) - 1
}

// Stream returns the stream in the slot. Returns nil if there is no such
// slot.
func (vao *VertexArray) Stream(slot int) buffer.Stream {
	if slot < 0 || slot >= len(vao.streams) {
		return nil
	}
	return vao.streams[slot]
}

func (vao *VertexArray) positions() (*buffer.Buffer[mgl32.Vec3], error) {
	if len(vao.streams) == 0 {
		return nil, curated.Errorf(NoPositionStream)
	}
	pos, ok := vao.streams[0].(*buffer.Buffer[mgl32.Vec3])
	if !ok {
		return nil, curated.Errorf(NoPositionStream)
	}
	return pos, nil
}

// VertexCount returns the number of vertices in the position stream.
func (vao *VertexArray) VertexCount() int {
	pos, err := vao.positions()
	if err != nil {
		return 0
	}
	return pos.Len()
}

// IndexCount returns the number of primitives in the index stream.
func (vao *VertexArray) IndexCount() int {
	return vao.indices.Len()
}

// Room returns true if the vertex array has space for the number of vertices
// and primitives.
func (vao *VertexArray) Room(vertices int, primitives int) bool {
	pos, err := vao.positions()
	if err != nil {
		return false
	}
	if pos.Len()+vertices > MaxVertices {
		return false
	}
	return pos.Remaining() >= vertices && vao.indices.Remaining() >= primitives
}

// prepare checks that the primitive can be added to the batch. the base index
// of the new vertices is returned.
func (vao *VertexArray) prepare(kind gpu.Primitive, vertices int, primitives int) (*buffer.Buffer[mgl32.Vec3], uint16, error) {
	pos, err := vao.positions()
	if err != nil {
		return nil, 0, err
	}

	if kind != vao.kind {
		return nil, 0, curated.Errorf(PrimitiveMismatch, kind, vao.kind)
	}

	// checking for room before appending anything means a failed Add*() leaves
	// the vertex array untouched
	if pos.Remaining() < vertices || pos.Len()+vertices > MaxVertices {
		return nil, 0, curated.Errorf(buffer.OutOfCapacity, pos.Cap())
	}
	if vao.indices.Remaining() < primitives {
		return nil, 0, curated.Errorf(buffer.OutOfCapacity, vao.indices.Cap())
	}

	return pos, uint16(pos.Len()), nil
}

func (vao *VertexArray) addIndices(idx ...uint16) error {
	switch b := vao.indices.(type) {
	case *buffer.Buffer[[1]uint16]:
		return b.Append([1]uint16{idx[0]})
	case *buffer.Buffer[[2]uint16]:
		return b.Append([2]uint16{idx[0], idx[1]})
	case *buffer.Buffer[[3]uint16]:
		return b.Append([3]uint16{idx[0], idx[1], idx[2]})
	}
	return curated.Errorf(UnknownPrimitive, vao.kind)
}

func appendPositions(pos *buffer.Buffer[mgl32.Vec3], p ...mgl32.Vec3) error {
	for _, v := range p {
		if err := pos.Append(v); err != nil {
			return err
		}
	}
	return nil
}

// AddQuad adds four vertices and two triangles to a triangle batch. The
// vertices are given in order around the quad.
func (vao *VertexArray) AddQuad(p1, p2, p3, p4 mgl32.Vec3) error {
	pos, i, err := vao.prepare(gpu.Triangles, 4, 2)
	if err != nil {
		return err
	}
	if err := appendPositions(pos, p1, p2, p3, p4); err != nil {
		return err
	}
	if err := vao.addIndices(i, i+1, i+3); err != nil {
		return err
	}
	return vao.addIndices(i+1, i+2, i+3)
}

// AddTriangle adds three vertices and one triangle to a triangle batch.
func (vao *VertexArray) AddTriangle(p1, p2, p3 mgl32.Vec3) error {
	pos, i, err := vao.prepare(gpu.Triangles, 3, 1)
	if err != nil {
		return err
	}
	if err := appendPositions(pos, p1, p2, p3); err != nil {
		return err
	}
	return vao.addIndices(i, i+1, i+2)
}

// AddLine adds two vertices and one line to a line batch.
func (vao *VertexArray) AddLine(p1, p2 mgl32.Vec3) error {
	pos, i, err := vao.prepare(gpu.Lines, 2, 1)
	if err != nil {
		return err
	}
	if err := appendPositions(pos, p1, p2); err != nil {
		return err
	}
	return vao.addIndices(i, i+1)
}

// AddPoint adds one vertex to a point batch.
func (vao *VertexArray) AddPoint(p mgl32.Vec3) error {
	pos, i, err := vao.prepare(gpu.Points, 1, 1)
	if err != nil {
		return err
	}
	if err := pos.Append(p); err != nil {
		return err
	}
	return vao.addIndices(i)
}

// Set appends values to the attribute stream in the slot. The stream must be
// a buffer of type T.
func Set[T any](vao *VertexArray, slot int, values ...T) error {
	s := vao.Stream(slot)
	if s == nil {
		return curated.Errorf(NoStream, slot)
	}
	b, ok := s.(*buffer.Buffer[T])
	if !ok {
		var zero T
		return curated.Errorf(StreamType, slot, zero)
	}
	for _, v := range values {
		if err := b.Append(v); err != nil {
			return err
		}
	}
	return nil
}

// SetColors appends colours to the colour stream in the slot.
func (vao *VertexArray) SetColors(slot int, colors ...mgl32.Vec4) error {
	return Set(vao, slot, colors...)
}

// SetTexCoords appends texture coordinates to the stream in the slot.
func (vao *VertexArray) SetTexCoords(slot int, coords ...mgl32.Vec2) error {
	return Set(vao, slot, coords...)
}

// Bind the vertex array and its streams ready for drawing. Returns false if
// there is nothing to draw.
//
// Attribute streams are only rebound if one of them has changed since the
// last bind. The index stream is always bound.
func (vao *VertexArray) Bind() (bool, error) {
	if vao.indices.Len() == 0 {
		return false, nil
	}

	pos, err := vao.positions()
	if err != nil {
		return false, err
	}

	var dirty bool
	for slot, s := range vao.streams {
		if s.Len() != pos.Len() {
			return false, curated.Errorf(StreamParity, slot, s.Len(), pos.Len())
		}
		dirty = dirty || s.Dirty()
	}

	if vao.id == 0 {
		vao.id = vao.dev.CreateVertexArray()
		dirty = true
	}
	vao.dev.BindVertexArray(vao.id)

	vao.indices.Bind(0)

	if dirty {
		for slot, s := range vao.streams {
			s.Bind(uint32(slot))
		}
	}

	return true, nil
}

// Draw the contents of the vertex array with one draw call.
func (vao *VertexArray) Draw() error {
	ok, err := vao.Bind()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	vao.dev.DrawElements(vao.kind, vao.indices.Len()*vao.kind.IndicesPerPrimitive(), gpu.Uint16)
	return nil
}

// Reset every stream, including the index stream.
func (vao *VertexArray) Reset() {
	for _, s := range vao.streams {
		s.Reset()
	}
	vao.indices.Reset()
}

// Destroy releases all GPU resources used by the vertex array.
func (vao *VertexArray) Destroy() {
	for _, s := range vao.streams {
		s.Destroy()
	}
	vao.indices.Destroy()
	if vao.id != 0 {
		vao.dev.DeleteVertexArray(vao.id)
		vao.id = 0
	}
}
