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

package shader

import (
	"strings"

	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/gpu"
	"github.com/jepebe/pixelengine/logger"
)

// Sentinal error patterns.
const (
	UnsupportedUniformType = "shader: %s: unsupported uniform type for %s: %v"
	UnknownUniform         = "shader: %s: unknown uniform: %s"
	UniformValue           = "shader: %s: uniform %s: %v"
	SourceError            = "shader: source: %s: %v"
)

// the name of the fragment shader output variable
const fragOutput = "out_color"

type stage struct {
	src Source
	id  uint32

	// version of the source that has been compiled successfully
	version  int64
	compiled bool

	// version of the source that failed to compile. it will not be compiled
	// again until the version changes
	failedVersion int64
	failed        bool

	attached bool
}

type uniform struct {
	typ gpu.UniformType
	loc int32
	set gpu.UniformSetter
}

// Program is a shader program made up of one or more shader stages.
type Program struct {
	dev  gpu.Device
	name string
	id   uint32

	stages   []*stage
	uniforms map[string]uniform

	// vertex inputs and the attribute slots they read from
	attribs map[string]uint32

	linked     bool
	linkFailed bool

	// attribute bindings have changed since the last link
	relink bool
}

// NewProgram is the preferred method of initialisation for the Program type.
func NewProgram(dev gpu.Device, name string) *Program {
	return &Program{
		dev:      dev,
		name:     name,
		uniforms: make(map[string]uniform),
		attribs:  make(map[string]uint32),
	}
}

// Name returns the name of the program.
func (prg *Program) Name() string {
	return prg.name
}

// Add a shader stage to the program.
func (prg *Program) Add(src Source) {
	prg.stages = append(prg.stages, &stage{src: src})
	prg.linked = false
}

// BindAttrib ties the named vertex input to an attribute slot. Slot numbers
// are those returned by batch.VertexArray.AttachStream(). The binding is
// applied the next time the program is linked.
func (prg *Program) BindAttrib(name string, slot uint32) {
	if s, ok := prg.attribs[name]; ok && s == slot {
		return
	}
	prg.attribs[name] = slot
	prg.relink = true
}

// log a multi-line message from the compiler or linker. each line is a
// separate log entry.
func (prg *Program) log(detail string, info string) {
	logger.Logf(logger.Allow, "shader", "%s: %s", prg.name, detail)
	for _, l := range strings.Split(info, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			logger.Logf(logger.Allow, "shader", "%s: %s", prg.name, l)
		}
	}
}

// compile the stage if it has changed. returns true if the stage was
// compiled and false if the stage was unchanged or failed to compile. the
// stage should be checked for failure by the caller.
func (prg *Program) compile(st *stage) bool {
	v, err := st.src.Version()
	if err != nil {
		if !st.failed {
			prg.log(err.Error(), "")
		}
		st.failed = true
		return false
	}

	if st.compiled && st.version == v {
		return false
	}
	if st.failed && st.failedVersion == v {
		return false
	}

	glsl, err := st.src.Load()
	if err != nil {
		prg.log(err.Error(), "")
		st.failed = true
		st.failedVersion = v
		return false
	}

	if st.id == 0 {
		st.id = prg.dev.CreateShader(st.src.Stage())
	}

	info, ok := prg.dev.CompileShader(st.id, glsl)
	if !ok {
		prg.log(st.src.Stage().String()+" stage failed to compile: "+st.src.Name(), info)
		st.failed = true
		st.failedVersion = v
		st.compiled = false
		return false
	}

	st.failed = false
	st.compiled = true
	st.version = v
	return true
}

// CompileAndLink compiles any stage that has changed since it was last
// compiled and links the program. Returns false if the program is not usable.
func (prg *Program) CompileAndLink() bool {
	if prg.id == 0 {
		prg.id = prg.dev.CreateProgram()
	}

	var changed bool
	for _, st := range prg.stages {
		if prg.compile(st) {
			changed = true
		}
		if st.failed {
			prg.linked = false
			return false
		}
	}

	if !changed && !prg.relink && (prg.linked || prg.linkFailed) {
		return prg.linked
	}

	for _, st := range prg.stages {
		if st.attached {
			prg.dev.DetachShader(prg.id, st.id)
		}
		prg.dev.AttachShader(prg.id, st.id)
		st.attached = true
	}

	for name, slot := range prg.attribs {
		prg.dev.BindAttribLocation(prg.id, slot, name)
	}
	prg.dev.BindFragDataLocation(prg.id, 0, fragOutput)
	prg.relink = false

	info, ok := prg.dev.LinkProgram(prg.id)
	if !ok {
		prg.log("failed to link", info)
		prg.linked = false
		prg.linkFailed = true
		return false
	}

	prg.linked = true
	prg.linkFailed = false

	// uniform locations can change when a program is relinked
	for name, u := range prg.uniforms {
		u.loc = prg.dev.UniformLocation(prg.id, name)
		prg.uniforms[name] = u
	}

	return true
}

// Stale returns true if any stage has changed since the last attempt to
// compile it.
func (prg *Program) Stale() bool {
	for _, st := range prg.stages {
		v, err := st.src.Version()
		if err != nil {
			continue
		}
		if st.failed {
			if st.failedVersion != v {
				return true
			}
			continue
		}
		if !st.compiled || st.version != v {
			return true
		}
	}
	return false
}

// Refresh rebuilds the program if any of its sources have changed. Returns
// true if the program is usable.
func (prg *Program) Refresh() bool {
	if prg.Stale() {
		return prg.CompileAndLink()
	}
	return prg.linked
}

// Linked returns true if the program is usable.
func (prg *Program) Linked() bool {
	return prg.linked
}

// AddUniform registers a uniform with the program.
func (prg *Program) AddUniform(name string, typ gpu.UniformType) error {
	set, ok := gpu.UniformSetterFor(typ)
	if !ok {
		return curated.Errorf(UnsupportedUniformType, prg.name, name, typ)
	}

	u := uniform{
		typ: typ,
		loc: -1,
		set: set,
	}
	if prg.id != 0 {
		u.loc = prg.dev.UniformLocation(prg.id, name)
	}
	prg.uniforms[name] = u

	return nil
}

// SetUniform sets the value of a registered uniform. The program should be
// active.
func (prg *Program) SetUniform(name string, value any) error {
	u, ok := prg.uniforms[name]
	if !ok {
		return curated.Errorf(UnknownUniform, prg.name, name)
	}
	err := u.set(prg.dev, u.loc, value)
	if err != nil {
		return curated.Errorf(UniformValue, prg.name, name, err)
	}
	return nil
}

// Activate makes the program the current program. Returns false if the
// program is not usable.
func (prg *Program) Activate() bool {
	if !prg.linked {
		return false
	}
	prg.dev.UseProgram(prg.id)
	return true
}

// Destroy releases the GPU resources used by the program.
func (prg *Program) Destroy() {
	for _, st := range prg.stages {
		if st.id != 0 {
			if st.attached && prg.id != 0 {
				prg.dev.DetachShader(prg.id, st.id)
			}
			prg.dev.DeleteShader(st.id)
		}
		st.id = 0
		st.attached = false
		st.compiled = false
		st.failed = false
	}
	if prg.id != 0 {
		prg.dev.DeleteProgram(prg.id)
		prg.id = 0
	}
	prg.linked = false
	prg.linkFailed = false
}
