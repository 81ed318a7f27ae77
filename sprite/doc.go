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

// Package sprite draws rectangular images.
//
// A Sprite holds its pixels in CPU memory and mirrors them in a GPU texture.
// The texture is created the first time the sprite is activated. Changes made
// with SetPixel() or Update() mark the sprite as dirty and the changed region
// is uploaded the next time the sprite is activated, which in practice means
// the next time it is drawn. The states of a sprite are:
//
//	Uncreated -> Clean <-> Dirty
//
// Sprites are drawn with a Renderer, which is shared by every sprite. The
// Renderer draws a unit quad that is scaled by the model space to the size of
// the sprite. Texture coordinates are in pixels: the texture space is scaled
// by the size of the sprite (or the part of the sprite being drawn) and the
// shader divides by the size of the texture.
//
// AnimatedSprite treats a sprite as a grid of frames and draws one frame of
// the current animation.
package sprite
