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
	"embed"
	"os"
	"path/filepath"

	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/gpu"
)

//go:embed glsl
var glsl embed.FS

// Names of the programs in the catalogue.
const (
	Quad   = "quad"
	Sprite = "sprite"
	Font   = "font"
	Glyph  = "glyph"
	Line   = "line"
)

// UnknownProgram is returned by Catalogue.Program() for a name not in the
// catalogue.
const UnknownProgram = "shader: unknown program: %s"

var extensions = map[gpu.ShaderStage]string{
	gpu.VertexStage:   ".vert",
	gpu.GeometryStage: ".geom",
	gpu.FragmentStage: ".frag",
}

type definition struct {
	stages   []gpu.ShaderStage
	attribs  map[string]uint32
	uniforms map[string]gpu.UniformType
}

var definitions = map[string]definition{
	Quad: {
		stages:  []gpu.ShaderStage{gpu.VertexStage, gpu.FragmentStage},
		attribs: map[string]uint32{"position": 0, "color": 1},
		uniforms: map[string]gpu.UniformType{
			"projection_view": gpu.Mat4,
			"model":           gpu.Mat4,
		},
	},
	Sprite: {
		stages:  []gpu.ShaderStage{gpu.VertexStage, gpu.FragmentStage},
		attribs: map[string]uint32{"position": 0, "texcoord": 1},
		uniforms: map[string]gpu.UniformType{
			"projection_view": gpu.Mat4,
			"model":           gpu.Mat4,
			"texture_model":   gpu.Mat4,
			"tint":            gpu.Vec4,
			"sprite_texture":  gpu.IVec1,
		},
	},
	Font: {
		stages:  []gpu.ShaderStage{gpu.VertexStage, gpu.GeometryStage, gpu.FragmentStage},
		attribs: map[string]uint32{"position": 0, "cell": 1},
		uniforms: map[string]gpu.UniformType{
			"projection_view": gpu.Mat4,
			"model":           gpu.Mat4,
			"color":           gpu.Vec4,
			"glyph_size":      gpu.Vec2,
			"sprite_texture":  gpu.IVec1,
		},
	},
	Glyph: {
		stages:  []gpu.ShaderStage{gpu.VertexStage, gpu.FragmentStage},
		attribs: map[string]uint32{"position": 0, "texcoord": 1},
		uniforms: map[string]gpu.UniformType{
			"projection_view": gpu.Mat4,
			"model":           gpu.Mat4,
			"color":           gpu.Vec4,
			"sprite_texture":  gpu.IVec1,
		},
	},
	Line: {
		stages:  []gpu.ShaderStage{gpu.VertexStage, gpu.FragmentStage},
		attribs: map[string]uint32{"position": 0},
		uniforms: map[string]gpu.UniformType{
			"projection_view": gpu.Mat4,
			"model":           gpu.Mat4,
			"color":           gpu.Vec4,
			"resolution":      gpu.Vec2,
			"dash_size":       gpu.Vec1,
			"gap_size":        gpu.Vec1,
		},
	},
}

// Catalogue creates and owns the programs used for drawing. Programs are
// created on first request and shared after that.
type Catalogue struct {
	dev      gpu.Device
	dir      string
	programs map[string]*Program
}

// NewCatalogue is the preferred method of initialisation for the Catalogue
// type. If dir is not empty then a GLSL file in that directory replaces the
// embedded file of the same name, and changes to the file are picked up by
// Refresh().
func NewCatalogue(dev gpu.Device, dir string) *Catalogue {
	return &Catalogue{
		dev:      dev,
		dir:      dir,
		programs: make(map[string]*Program),
	}
}

func (cat *Catalogue) source(filename string, stage gpu.ShaderStage) (Source, error) {
	if cat.dir != "" {
		path := filepath.Join(cat.dir, filename)
		if _, err := os.Stat(path); err == nil {
			return NewFileSource(path, stage), nil
		}
	}

	b, err := glsl.ReadFile("glsl/" + filename)
	if err != nil {
		return nil, curated.Errorf(SourceError, filename, err)
	}
	return NewEmbeddedSource(filename, stage, string(b)), nil
}

// Program returns the named program. The program is compiled and linked when
// it is first requested. A program that fails to compile is still returned,
// the failure having been logged.
func (cat *Catalogue) Program(name string) (*Program, error) {
	if prg, ok := cat.programs[name]; ok {
		return prg, nil
	}

	def, ok := definitions[name]
	if !ok {
		return nil, curated.Errorf(UnknownProgram, name)
	}

	prg := NewProgram(cat.dev, name)
	for _, st := range def.stages {
		src, err := cat.source(name+extensions[st], st)
		if err != nil {
			return nil, err
		}
		prg.Add(src)
	}
	for name, slot := range def.attribs {
		prg.BindAttrib(name, slot)
	}

	prg.CompileAndLink()

	for u, typ := range def.uniforms {
		if err := prg.AddUniform(u, typ); err != nil {
			return nil, err
		}
	}

	cat.programs[name] = prg

	return prg, nil
}

// Refresh every program in the catalogue.
func (cat *Catalogue) Refresh() {
	for _, prg := range cat.programs {
		prg.Refresh()
	}
}

// Destroy every program in the catalogue.
func (cat *Catalogue) Destroy() {
	for _, prg := range cat.programs {
		prg.Destroy()
	}
	clear(cat.programs)
}
