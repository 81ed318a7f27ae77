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

// Package curated is a helper package for errors that need to be identified
// by the code that receives them. A curated error is created with Errorf(),
// which takes a pattern and values in the same manner as fmt.Errorf(). The
// pattern, rather than the formatted message, is what identifies the error.
//
// Packages that return errors that callers may want to react to declare the
// pattern as an exported constant:
//
//	const OutOfCapacity = "buffer: out of capacity (%d elements)"
//
//	func (b *Buffer[T]) Append(v T) error {
//		if b.index >= len(b.data) {
//			return curated.Errorf(OutOfCapacity, len(b.data))
//		}
//		...
//	}
//
// The caller then tests for the pattern with Is() or, when the error may have
// been wrapped by an intermediate caller, with Has():
//
//	if curated.Has(err, buffer.OutOfCapacity) {
//		...
//	}
//
// The Error() function normalises the message so that adjacent duplicate
// parts of a chain are removed. Parts are separated by the sub-string ": ".
// This means that wrapping with a prefix that the wrapped error already
// begins with does not produce a stuttering message:
//
//	e := curated.Errorf("shader: %v", curated.Errorf("shader: link failed"))
//
// prints as "shader: link failed" and not "shader: shader: link failed".
//
// Curated errors also support the Unwrap() convention of the standard errors
// package. The first error value in the list of values is the wrapped error.
package curated
