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
	"os"

	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/gpu"
)

// Source is the GLSL source for one stage of a program.
type Source interface {
	Stage() gpu.ShaderStage

	// Name used in log messages
	Name() string

	// Version changes whenever the source changes
	Version() (int64, error)

	// Load returns the GLSL source
	Load() (string, error)
}

// EmbeddedSource is GLSL that never changes.
type EmbeddedSource struct {
	name  string
	stage gpu.ShaderStage
	glsl  string
}

// NewEmbeddedSource is the preferred method of initialisation for the
// EmbeddedSource type.
func NewEmbeddedSource(name string, stage gpu.ShaderStage, glsl string) *EmbeddedSource {
	return &EmbeddedSource{
		name:  name,
		stage: stage,
		glsl:  glsl,
	}
}

// Stage implements the Source interface.
func (src *EmbeddedSource) Stage() gpu.ShaderStage {
	return src.stage
}

// Name implements the Source interface.
func (src *EmbeddedSource) Name() string {
	return src.name
}

// Version implements the Source interface.
func (src *EmbeddedSource) Version() (int64, error) {
	return 1, nil
}

// Load implements the Source interface.
func (src *EmbeddedSource) Load() (string, error) {
	return src.glsl, nil
}

// FileSource is GLSL read from a file. The version of the source is the
// modification time of the file.
type FileSource struct {
	path  string
	stage gpu.ShaderStage
}

// NewFileSource is the preferred method of initialisation for the FileSource
// type.
func NewFileSource(path string, stage gpu.ShaderStage) *FileSource {
	return &FileSource{
		path:  path,
		stage: stage,
	}
}

// Stage implements the Source interface.
func (src *FileSource) Stage() gpu.ShaderStage {
	return src.stage
}

// Name implements the Source interface.
func (src *FileSource) Name() string {
	return src.path
}

// Version implements the Source interface.
func (src *FileSource) Version() (int64, error) {
	st, err := os.Stat(src.path)
	if err != nil {
		return 0, curated.Errorf(SourceError, src.path, err)
	}
	return st.ModTime().UnixNano(), nil
}

// Load implements the Source interface.
func (src *FileSource) Load() (string, error) {
	b, err := os.ReadFile(src.path)
	if err != nil {
		return "", curated.Errorf(SourceError, src.path, err)
	}
	return string(b), nil
}
