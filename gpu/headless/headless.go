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

// Package headless implements the gpu.Device interface without any graphics
// hardware. Every request is recorded so that the effect of a sequence of
// drawing operations can be inspected after the fact.
//
// Shader compilation always succeeds unless the Compile or Link fields are
// set to something that says otherwise.
package headless

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/gpu"
)

// Attrib describes how an attribute slot of a vertex array was configured.
type Attrib struct {
	Enabled    bool
	Buffer     uint32
	Components int
	Type       gpu.DataType
	Stride     int
}

// Texture is the recorded state of a texture.
type Texture struct {
	Width  int
	Height int
	Format gpu.TextureFormat
	Filter gpu.Filter
	Pix    []byte

	// number of full uploads and of sub-region uploads
	Uploads    int
	SubUploads int

	// the most recent sub-region upload
	LastSub [4]int
}

// Draw is a single recorded draw call.
type Draw struct {
	Mode        gpu.Primitive
	Count       int
	IndexType   gpu.DataType
	Indexed     bool
	Program     uint32
	VertexArray uint32
	Texture     uint32

	// copy of the index buffer bound at the time of the draw
	Indices []byte

	// value of every uniform of the program, keyed by name
	Uniforms map[string]any
}

type program struct {
	shaders   map[uint32]bool
	locations map[string]int32
	names     map[int32]string
	values    map[int32]any

	// attribute bindings requested and those in effect since the last link
	pending map[string]uint32
	attribs map[string]uint32
}

type shader struct {
	stage  gpu.ShaderStage
	source string
}

// Device records the requests made of it. The zero value is not usable, use
// NewDevice().
type Device struct {
	// Compile decides the outcome of every CompileShader() call. If nil all
	// compilations succeed.
	Compile func(stage gpu.ShaderStage, source string) (string, bool)

	// Link decides the outcome of every LinkProgram() call. If nil all links
	// succeed.
	Link func(program uint32) (string, bool)

	nextID uint32

	Buffers      map[uint32][]byte
	BufferUpload map[uint32]int
	VertexArrays map[uint32]map[uint32]*Attrib
	Textures     map[uint32]*Texture
	Draws        []Draw
	Compiles     []gpu.ShaderStage
	Clears       []mgl32.Vec4
	ViewportSize [4]int
	Blending     bool

	shaders  map[uint32]*shader
	programs map[uint32]*program

	arrayBuffer   uint32
	elementBuffer map[uint32]uint32
	vertexArray   uint32
	textureUnits  map[int]uint32
	program       uint32
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice() *Device {
	return &Device{
		Buffers:       make(map[uint32][]byte),
		BufferUpload:  make(map[uint32]int),
		VertexArrays:  make(map[uint32]map[uint32]*Attrib),
		Textures:      make(map[uint32]*Texture),
		shaders:       make(map[uint32]*shader),
		programs:      make(map[uint32]*program),
		elementBuffer: make(map[uint32]uint32),
		textureUnits:  make(map[int]uint32),
	}
}

func (dev *Device) id() uint32 {
	dev.nextID++
	return dev.nextID
}

// ResetDraws forgets all recorded draw calls and clears.
func (dev *Device) ResetDraws() {
	dev.Draws = dev.Draws[:0]
	dev.Clears = dev.Clears[:0]
}

// LastDraw returns the most recent draw call. The second return value is false
// if there have been no draw calls.
func (dev *Device) LastDraw() (Draw, bool) {
	if len(dev.Draws) == 0 {
		return Draw{}, false
	}
	return dev.Draws[len(dev.Draws)-1], true
}

// Viewport implements the gpu.Device interface.
func (dev *Device) Viewport(x, y, width, height int) {
	dev.ViewportSize = [4]int{x, y, width, height}
}

// Clear implements the gpu.Device interface.
func (dev *Device) Clear(color mgl32.Vec4) {
	dev.Clears = append(dev.Clears, color)
}

// EnableBlending implements the gpu.Device interface.
func (dev *Device) EnableBlending() {
	dev.Blending = true
}

// CreateBuffer implements the gpu.Device interface.
func (dev *Device) CreateBuffer() uint32 {
	id := dev.id()
	dev.Buffers[id] = nil
	return id
}

// DeleteBuffer implements the gpu.Device interface.
func (dev *Device) DeleteBuffer(id uint32) {
	delete(dev.Buffers, id)
	delete(dev.BufferUpload, id)
}

// BindBuffer implements the gpu.Device interface.
func (dev *Device) BindBuffer(target gpu.BufferTarget, id uint32) {
	if target == gpu.ElementArrayBuffer {
		// element array binding is part of the vertex array state
		dev.elementBuffer[dev.vertexArray] = id
		return
	}
	dev.arrayBuffer = id
}

func (dev *Device) bound(target gpu.BufferTarget) uint32 {
	if target == gpu.ElementArrayBuffer {
		return dev.elementBuffer[dev.vertexArray]
	}
	return dev.arrayBuffer
}

// BufferData implements the gpu.Device interface.
func (dev *Device) BufferData(target gpu.BufferTarget, data []byte) {
	id := dev.bound(target)
	if id == 0 {
		panic("headless: BufferData() with no buffer bound")
	}
	dev.Buffers[id] = append([]byte(nil), data...)
	dev.BufferUpload[id]++
}

func (dev *Device) attrib(slot uint32) *Attrib {
	vao, ok := dev.VertexArrays[dev.vertexArray]
	if !ok {
		panic("headless: attribute specified with no vertex array bound")
	}
	a, ok := vao[slot]
	if !ok {
		a = &Attrib{}
		vao[slot] = a
	}
	return a
}

// EnableAttrib implements the gpu.Device interface.
func (dev *Device) EnableAttrib(slot uint32) {
	dev.attrib(slot).Enabled = true
}

// AttribPointer implements the gpu.Device interface.
func (dev *Device) AttribPointer(slot uint32, components int, typ gpu.DataType, stride int) {
	a := dev.attrib(slot)
	a.Buffer = dev.arrayBuffer
	a.Components = components
	a.Type = typ
	a.Stride = stride
}

// CreateVertexArray implements the gpu.Device interface.
func (dev *Device) CreateVertexArray() uint32 {
	id := dev.id()
	dev.VertexArrays[id] = make(map[uint32]*Attrib)
	return id
}

// DeleteVertexArray implements the gpu.Device interface.
func (dev *Device) DeleteVertexArray(id uint32) {
	delete(dev.VertexArrays, id)
	delete(dev.elementBuffer, id)
	if dev.vertexArray == id {
		dev.vertexArray = 0
	}
}

// BindVertexArray implements the gpu.Device interface.
func (dev *Device) BindVertexArray(id uint32) {
	dev.vertexArray = id
}

func (dev *Device) uniformSnapshot() map[string]any {
	s := make(map[string]any)
	if p, ok := dev.programs[dev.program]; ok {
		for loc, v := range p.values {
			s[p.names[loc]] = v
		}
	}
	return s
}

// DrawElements implements the gpu.Device interface.
func (dev *Device) DrawElements(mode gpu.Primitive, count int, typ gpu.DataType) {
	dev.Draws = append(dev.Draws, Draw{
		Mode:        mode,
		Count:       count,
		IndexType:   typ,
		Indexed:     true,
		Program:     dev.program,
		VertexArray: dev.vertexArray,
		Texture:     dev.textureUnits[0],
		Indices:     append([]byte(nil), dev.Buffers[dev.bound(gpu.ElementArrayBuffer)]...),
		Uniforms:    dev.uniformSnapshot(),
	})
}

// DrawArrays implements the gpu.Device interface.
func (dev *Device) DrawArrays(mode gpu.Primitive, first int, count int) {
	dev.Draws = append(dev.Draws, Draw{
		Mode:        mode,
		Count:       count,
		Program:     dev.program,
		VertexArray: dev.vertexArray,
		Texture:     dev.textureUnits[0],
		Uniforms:    dev.uniformSnapshot(),
	})
}

// CreateTexture implements the gpu.Device interface.
func (dev *Device) CreateTexture() uint32 {
	id := dev.id()
	dev.Textures[id] = &Texture{}
	return id
}

// DeleteTexture implements the gpu.Device interface.
func (dev *Device) DeleteTexture(id uint32) {
	delete(dev.Textures, id)
	for u, t := range dev.textureUnits {
		if t == id {
			delete(dev.textureUnits, u)
		}
	}
}

// BindTexture implements the gpu.Device interface.
func (dev *Device) BindTexture(unit int, id uint32) {
	dev.textureUnits[unit] = id
}

// BoundTexture returns the texture bound to the texture unit.
func (dev *Device) BoundTexture(unit int) uint32 {
	return dev.textureUnits[unit]
}

func (dev *Device) boundTexture() *Texture {
	t, ok := dev.Textures[dev.textureUnits[0]]
	if !ok {
		panic("headless: texture operation with no texture bound")
	}
	return t
}

// TexImage2D implements the gpu.Device interface.
func (dev *Device) TexImage2D(width, height int, format gpu.TextureFormat, filter gpu.Filter, pix []byte) {
	t := dev.boundTexture()
	t.Width = width
	t.Height = height
	t.Format = format
	t.Filter = filter
	t.Pix = make([]byte, width*height*format.Channels())
	copy(t.Pix, pix)
	t.Uploads++
}

// TexSubImage2D implements the gpu.Device interface.
func (dev *Device) TexSubImage2D(x, y, width, height int, format gpu.TextureFormat, pix []byte) {
	t := dev.boundTexture()
	ch := format.Channels()
	for r := 0; r < height; r++ {
		dst := ((y+r)*t.Width + x) * ch
		src := r * width * ch
		copy(t.Pix[dst:dst+width*ch], pix[src:src+width*ch])
	}
	t.SubUploads++
	t.LastSub = [4]int{x, y, width, height}
}

// CreateShader implements the gpu.Device interface.
func (dev *Device) CreateShader(stage gpu.ShaderStage) uint32 {
	id := dev.id()
	dev.shaders[id] = &shader{stage: stage}
	return id
}

// CompileShader implements the gpu.Device interface.
func (dev *Device) CompileShader(id uint32, source string) (string, bool) {
	sh, ok := dev.shaders[id]
	if !ok {
		return "no such shader", false
	}
	sh.source = source
	dev.Compiles = append(dev.Compiles, sh.stage)
	if dev.Compile != nil {
		return dev.Compile(sh.stage, source)
	}
	return "", true
}

// DeleteShader implements the gpu.Device interface.
func (dev *Device) DeleteShader(id uint32) {
	delete(dev.shaders, id)
}

// CreateProgram implements the gpu.Device interface.
func (dev *Device) CreateProgram() uint32 {
	id := dev.id()
	dev.programs[id] = &program{
		shaders:   make(map[uint32]bool),
		locations: make(map[string]int32),
		names:     make(map[int32]string),
		values:    make(map[int32]any),
		pending:   make(map[string]uint32),
		attribs:   make(map[string]uint32),
	}
	return id
}

// AttachShader implements the gpu.Device interface.
func (dev *Device) AttachShader(prg uint32, shader uint32) {
	if p, ok := dev.programs[prg]; ok {
		p.shaders[shader] = true
	}
}

// DetachShader implements the gpu.Device interface.
func (dev *Device) DetachShader(prg uint32, shader uint32) {
	if p, ok := dev.programs[prg]; ok {
		delete(p.shaders, shader)
	}
}

// BindAttribLocation implements the gpu.Device interface.
func (dev *Device) BindAttribLocation(prg uint32, slot uint32, name string) {
	if p, ok := dev.programs[prg]; ok {
		p.pending[name] = slot
	}
}

// AttribLocations returns the attribute bindings of the program as they were
// when it was last linked successfully.
func (dev *Device) AttribLocations(prg uint32) map[string]uint32 {
	locs := make(map[string]uint32)
	if p, ok := dev.programs[prg]; ok {
		for name, slot := range p.attribs {
			locs[name] = slot
		}
	}
	return locs
}

// BindFragDataLocation implements the gpu.Device interface.
func (dev *Device) BindFragDataLocation(program uint32, color uint32, name string) {
}

// LinkProgram implements the gpu.Device interface.
func (dev *Device) LinkProgram(prg uint32) (string, bool) {
	p, ok := dev.programs[prg]
	if !ok {
		return "no such program", false
	}
	var info string
	if dev.Link != nil {
		info, ok = dev.Link(prg)
		if !ok {
			return info, false
		}
	}
	clear(p.attribs)
	for name, slot := range p.pending {
		p.attribs[name] = slot
	}
	return info, true
}

// DeleteProgram implements the gpu.Device interface.
func (dev *Device) DeleteProgram(id uint32) {
	delete(dev.programs, id)
	if dev.program == id {
		dev.program = 0
	}
}

// UseProgram implements the gpu.Device interface.
func (dev *Device) UseProgram(id uint32) {
	dev.program = id
}

// Program returns the program in use.
func (dev *Device) Program() uint32 {
	return dev.program
}

// Programs returns the number of live programs.
func (dev *Device) Programs() int {
	return len(dev.programs)
}

// UniformLocation implements the gpu.Device interface. Every name is given a
// location the first time it is asked for.
func (dev *Device) UniformLocation(prg uint32, name string) int32 {
	p, ok := dev.programs[prg]
	if !ok {
		return -1
	}
	loc, ok := p.locations[name]
	if !ok {
		loc = int32(len(p.locations))
		p.locations[name] = loc
		p.names[loc] = name
	}
	return loc
}

func (dev *Device) setUniform(loc int32, v any) {
	if loc < 0 {
		return
	}
	if p, ok := dev.programs[dev.program]; ok {
		p.values[loc] = v
	}
}

// Uniform returns the most recent value set for the named uniform of the
// program in use.
func (dev *Device) Uniform(name string) (any, bool) {
	p, ok := dev.programs[dev.program]
	if !ok {
		return nil, false
	}
	loc, ok := p.locations[name]
	if !ok {
		return nil, false
	}
	v, ok := p.values[loc]
	return v, ok
}

// UniformMat4 implements the gpu.Device interface.
func (dev *Device) UniformMat4(loc int32, m mgl32.Mat4) {
	dev.setUniform(loc, m)
}

// UniformVec4 implements the gpu.Device interface.
func (dev *Device) UniformVec4(loc int32, v mgl32.Vec4) {
	dev.setUniform(loc, v)
}

// UniformVec3 implements the gpu.Device interface.
func (dev *Device) UniformVec3(loc int32, v mgl32.Vec3) {
	dev.setUniform(loc, v)
}

// UniformVec2 implements the gpu.Device interface.
func (dev *Device) UniformVec2(loc int32, v mgl32.Vec2) {
	dev.setUniform(loc, v)
}

// Uniform1f implements the gpu.Device interface.
func (dev *Device) Uniform1f(loc int32, v float32) {
	dev.setUniform(loc, v)
}

// Uniform1i implements the gpu.Device interface.
func (dev *Device) Uniform1i(loc int32, v int32) {
	dev.setUniform(loc, v)
}

// Uniform1ui implements the gpu.Device interface.
func (dev *Device) Uniform1ui(loc int32, v uint32) {
	dev.setUniform(loc, v)
}
