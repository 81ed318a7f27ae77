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

// Package test contains helper functions for the package tests. The Expect*()
// functions report failure with t.Errorf() and allow the test to continue. The
// Demand*() functions stop the test with t.Fatalf().
//
// Success and failure are interpreted according to the type of the value. A
// bool is successful when true. An error is successful when it is nil.
package test
