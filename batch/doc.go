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

// Package batch combines typed buffers into a vertex array that is drawn with
// a single indexed draw call.
//
// A VertexArray draws one kind of primitive. The first attribute stream
// attached to it (slot zero) must be the position stream, a buffer of
// mgl32.Vec3. Other streams carry per-vertex data (colours, texture
// coordinates, glyph cells) and are filled with Set() after the positions for
// a primitive have been added:
//
//	vao, _ := batch.New(dev, gpu.Triangles, 100)
//	pos, _ := buffer.New[mgl32.Vec3](dev, gpu.ArrayBuffer, 400)
//	col, _ := buffer.New[mgl32.Vec4](dev, gpu.ArrayBuffer, 400)
//	vao.AttachStream(pos)
//	vao.AttachStream(col)
//
//	vao.AddQuad(p1, p2, p3, p4)
//	vao.SetColors(1, c, c, c, c)
//	vao.Draw()
//
// Every attribute stream must have the same number of elements as the
// position stream when the vertex array is bound. A mismatch is reported with
// the StreamParity error.
package batch
