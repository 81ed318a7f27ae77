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

// Package gl32 implements the gpu.Device interface with an OpenGL 3.2 core
// profile context. The context must have been created and made current
// before calling New().
package gl32

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/gpu"
	"github.com/jepebe/pixelengine/logger"
)

// Sentinal error patterns.
const (
	InitError = "gl32: init: %v"
)

// Device is an OpenGL 3.2 implementation of gpu.Device.
type Device struct {
	program uint32
}

// New initialises the OpenGL function pointers for the current context and
// returns a new Device.
func New() (*Device, error) {
	err := gl.Init()
	if err != nil {
		return nil, curated.Errorf(InitError, err)
	}

	// log GPU vendor information
	logger.Logf(logger.Allow, "gl32", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gl32", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gl32", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	// texture rows are tightly packed whatever their width
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	return &Device{}, nil
}

func dataType(t gpu.DataType) uint32 {
	switch t {
	case gpu.Float32:
		return gl.FLOAT
	case gpu.Float64:
		return gl.DOUBLE
	case gpu.Uint8:
		return gl.UNSIGNED_BYTE
	case gpu.Uint16:
		return gl.UNSIGNED_SHORT
	case gpu.Uint32:
		return gl.UNSIGNED_INT
	}
	panic(fmt.Sprintf("gl32: unsupported data type: %v", t))
}

func primitive(p gpu.Primitive) uint32 {
	switch p {
	case gpu.Points:
		return gl.POINTS
	case gpu.Lines:
		return gl.LINES
	case gpu.Triangles:
		return gl.TRIANGLES
	}
	panic(fmt.Sprintf("gl32: unsupported primitive: %v", p))
}

func bufferTarget(t gpu.BufferTarget) uint32 {
	if t == gpu.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func textureFormat(f gpu.TextureFormat) (internal int32, format uint32) {
	switch f {
	case gpu.Alpha:
		// there is no GL_ALPHA texture in a core profile. the single channel
		// is stored as red and the shaders read the red component
		return gl.R8, gl.RED
	case gpu.Red:
		return gl.R8, gl.RED
	case gpu.RGB:
		return gl.RGB8, gl.RGB
	case gpu.RGBA:
		return gl.RGBA8, gl.RGBA
	}
	panic(fmt.Sprintf("gl32: unsupported texture format: %v", f))
}

// Viewport implements the gpu.Device interface.
func (dev *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// Clear implements the gpu.Device interface.
func (dev *Device) Clear(color mgl32.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// EnableBlending implements the gpu.Device interface.
func (dev *Device) EnableBlending() {
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
}

// CreateBuffer implements the gpu.Device interface.
func (dev *Device) CreateBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

// DeleteBuffer implements the gpu.Device interface.
func (dev *Device) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

// BindBuffer implements the gpu.Device interface.
func (dev *Device) BindBuffer(target gpu.BufferTarget, id uint32) {
	gl.BindBuffer(bufferTarget(target), id)
}

// BufferData implements the gpu.Device interface.
func (dev *Device) BufferData(target gpu.BufferTarget, data []byte) {
	if len(data) == 0 {
		gl.BufferData(bufferTarget(target), 0, nil, gl.DYNAMIC_DRAW)
		return
	}
	gl.BufferData(bufferTarget(target), len(data), gl.Ptr(data), gl.DYNAMIC_DRAW)
}

// EnableAttrib implements the gpu.Device interface.
func (dev *Device) EnableAttrib(slot uint32) {
	gl.EnableVertexAttribArray(slot)
}

// AttribPointer implements the gpu.Device interface.
func (dev *Device) AttribPointer(slot uint32, components int, typ gpu.DataType, stride int) {
	switch typ {
	case gpu.Uint8, gpu.Uint16, gpu.Uint32:
		// integer attributes reach the shader as integers
		gl.VertexAttribIPointer(slot, int32(components), dataType(typ), int32(stride), nil)
	default:
		gl.VertexAttribPointer(slot, int32(components), dataType(typ), false, int32(stride), nil)
	}
}

// CreateVertexArray implements the gpu.Device interface.
func (dev *Device) CreateVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

// DeleteVertexArray implements the gpu.Device interface.
func (dev *Device) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

// BindVertexArray implements the gpu.Device interface.
func (dev *Device) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

// DrawElements implements the gpu.Device interface.
func (dev *Device) DrawElements(mode gpu.Primitive, count int, typ gpu.DataType) {
	gl.DrawElements(primitive(mode), int32(count), dataType(typ), nil)
}

// DrawArrays implements the gpu.Device interface.
func (dev *Device) DrawArrays(mode gpu.Primitive, first int, count int) {
	gl.DrawArrays(primitive(mode), int32(first), int32(count))
}

// CreateTexture implements the gpu.Device interface.
func (dev *Device) CreateTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

// DeleteTexture implements the gpu.Device interface.
func (dev *Device) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

// BindTexture implements the gpu.Device interface.
func (dev *Device) BindTexture(unit int, id uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, id)
}

// TexImage2D implements the gpu.Device interface.
func (dev *Device) TexImage2D(width, height int, format gpu.TextureFormat, filter gpu.Filter, pix []byte) {
	if filter == gpu.Linear {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	internal, f := textureFormat(format)
	if format == gpu.Alpha {
		// present a single channel texture as (1, 1, 1, a) to the shaders
		swizzle := [4]int32{gl.ONE, gl.ONE, gl.ONE, gl.RED}
		gl.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_RGBA, &swizzle[0])
	}

	ptr := gl.Ptr(nil)
	if len(pix) > 0 {
		ptr = gl.Ptr(pix)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(width), int32(height), 0, f, gl.UNSIGNED_BYTE, ptr)
}

// TexSubImage2D implements the gpu.Device interface.
func (dev *Device) TexSubImage2D(x, y, width, height int, format gpu.TextureFormat, pix []byte) {
	if len(pix) == 0 {
		return
	}
	_, f := textureFormat(format)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, int32(x), int32(y), int32(width), int32(height), f, gl.UNSIGNED_BYTE, gl.Ptr(pix))
}

// CreateShader implements the gpu.Device interface.
func (dev *Device) CreateShader(stage gpu.ShaderStage) uint32 {
	switch stage {
	case gpu.VertexStage:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case gpu.GeometryStage:
		return gl.CreateShader(gl.GEOMETRY_SHADER)
	case gpu.FragmentStage:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	}
	return 0
}

// CompileShader implements the gpu.Device interface. The returned string is
// the compiler's info log.
func (dev *Device) CompileShader(id uint32, source string) (string, bool) {
	csource, free := gl.Strs(source + "\x00")
	defer free()

	gl.ShaderSource(id, 1, csource, nil)
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)

	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return "", status != gl.FALSE
	}

	// the log length includes the NULL character
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00"), status != gl.FALSE
}

// DeleteShader implements the gpu.Device interface.
func (dev *Device) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

// CreateProgram implements the gpu.Device interface.
func (dev *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

// AttachShader implements the gpu.Device interface.
func (dev *Device) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

// DetachShader implements the gpu.Device interface.
func (dev *Device) DetachShader(program uint32, shader uint32) {
	gl.DetachShader(program, shader)
}

// BindAttribLocation implements the gpu.Device interface.
func (dev *Device) BindAttribLocation(program uint32, slot uint32, name string) {
	gl.BindAttribLocation(program, slot, gl.Str(name+"\x00"))
}

// BindFragDataLocation implements the gpu.Device interface.
func (dev *Device) BindFragDataLocation(program uint32, color uint32, name string) {
	gl.BindFragDataLocation(program, color, gl.Str(name+"\x00"))
}

// LinkProgram implements the gpu.Device interface. The returned string is the
// linker's info log.
func (dev *Device) LinkProgram(program uint32) (string, bool) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)

	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return "", status != gl.FALSE
	}

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00"), status != gl.FALSE
}

// DeleteProgram implements the gpu.Device interface.
func (dev *Device) DeleteProgram(id uint32) {
	if dev.program == id {
		dev.program = 0
	}
	gl.DeleteProgram(id)
}

// UseProgram implements the gpu.Device interface.
func (dev *Device) UseProgram(id uint32) {
	if dev.program == id {
		return
	}
	dev.program = id
	gl.UseProgram(id)
}

// UniformLocation implements the gpu.Device interface.
func (dev *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// UniformMat4 implements the gpu.Device interface.
func (dev *Device) UniformMat4(loc int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// UniformVec4 implements the gpu.Device interface.
func (dev *Device) UniformVec4(loc int32, v mgl32.Vec4) {
	gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
}

// UniformVec3 implements the gpu.Device interface.
func (dev *Device) UniformVec3(loc int32, v mgl32.Vec3) {
	gl.Uniform3f(loc, v[0], v[1], v[2])
}

// UniformVec2 implements the gpu.Device interface.
func (dev *Device) UniformVec2(loc int32, v mgl32.Vec2) {
	gl.Uniform2f(loc, v[0], v[1])
}

// Uniform1f implements the gpu.Device interface.
func (dev *Device) Uniform1f(loc int32, v float32) {
	gl.Uniform1f(loc, v)
}

// Uniform1i implements the gpu.Device interface.
func (dev *Device) Uniform1i(loc int32, v int32) {
	gl.Uniform1i(loc, v)
}

// Uniform1ui implements the gpu.Device interface.
func (dev *Device) Uniform1ui(loc int32, v uint32) {
	gl.Uniform1ui(loc, v)
}
