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

package input

// Keyboard is the edge-triggered state of every key.
type Keyboard struct {
	keys [NumKeys]ButtonState
}

// Poll samples every key.
func (kb *Keyboard) Poll(s Sampler) {
	for k := range kb.keys {
		kb.keys[k].Update(s.KeyDown(Key(k)))
	}
}

// State returns the state of the key.
func (kb *Keyboard) State(k Key) ButtonState {
	if k < 0 || k >= NumKeys {
		return ButtonState{}
	}
	return kb.keys[k]
}
