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

package gpu

import "github.com/go-gl/mathgl/mgl32"

// Device is the interface to the graphics hardware. All functions must be
// called from the thread that owns the graphics context.
type Device interface {
	// frame state
	Viewport(x, y, width, height int)
	Clear(color mgl32.Vec4)
	EnableBlending()

	// buffers
	CreateBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target BufferTarget, id uint32)

	// BufferData replaces the contents of the buffer currently bound to the
	// target. The data slice is not retained.
	BufferData(target BufferTarget, data []byte)

	// EnableAttrib and AttribPointer describe the layout of the buffer bound
	// to ArrayBuffer for the attribute slot of the bound vertex array.
	EnableAttrib(slot uint32)
	AttribPointer(slot uint32, components int, typ DataType, stride int)

	// vertex arrays
	CreateVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)

	// DrawElements draws count indices of type typ from the bound
	// ElementArrayBuffer.
	DrawElements(mode Primitive, count int, typ DataType)
	DrawArrays(mode Primitive, first int, count int)

	// textures
	CreateTexture() uint32
	DeleteTexture(id uint32)
	BindTexture(unit int, id uint32)

	// TexImage2D allocates storage for the bound texture and uploads the
	// pixels. Rows are tightly packed: there is no padding at the end of a row
	// whatever the width of the texture.
	TexImage2D(width, height int, format TextureFormat, filter Filter, pix []byte)

	// TexSubImage2D replaces a region of the bound texture. Rows are tightly
	// packed.
	TexSubImage2D(x, y, width, height int, format TextureFormat, pix []byte)

	// shaders and programs
	CreateShader(stage ShaderStage) uint32
	CompileShader(id uint32, source string) (string, bool)
	DeleteShader(id uint32)
	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	DetachShader(program uint32, shader uint32)
	BindFragDataLocation(program uint32, color uint32, name string)

	// BindAttribLocation ties a vertex shader input to an attribute slot. The
	// binding takes effect when the program is next linked.
	BindAttribLocation(program uint32, slot uint32, name string)
	LinkProgram(program uint32) (string, bool)
	DeleteProgram(id uint32)
	UseProgram(id uint32)

	// uniforms of the program currently in use
	UniformLocation(program uint32, name string) int32
	UniformMat4(loc int32, m mgl32.Mat4)
	UniformVec4(loc int32, v mgl32.Vec4)
	UniformVec3(loc int32, v mgl32.Vec3)
	UniformVec2(loc int32, v mgl32.Vec2)
	Uniform1f(loc int32, v float32)
	Uniform1i(loc int32, v int32)
	Uniform1ui(loc int32, v uint32)
}
