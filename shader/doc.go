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

// Package shader compiles and links shader programs and sets their uniforms.
//
// A Program is made up of one Source for each shader stage. Sources are
// either embedded in the binary or read from a file. File sources are checked
// for changes by Refresh() and the program is rebuilt when they change, which
// allows shaders to be edited while the program is running.
//
// Compile and link errors do not stop the program. They are written to the
// log once and the program is disabled until the source changes. A disabled
// program returns false from Activate() and nothing is drawn with it.
//
// Uniforms are registered by name and type with AddUniform(). The function
// that uploads the value is selected at that point and SetUniform() calls it
// directly.
//
// The Catalogue type provides the programs used by the rest of pixelengine.
// The programs are embedded but any of the GLSL files can be replaced by a
// file of the same name in an override directory.
package shader
