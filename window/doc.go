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

// Package window opens a window with an OpenGL 3.2 context and runs the frame
// loop.
//
//	win, err := window.New(window.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	return win.Start(func(win *window.Window) error {
//		return win.DrawText(100, 100, "Hello, world!", colors.LightGreen, 1, 0)
//	})
//
// The window moves through the states Idle, Running, Closing and Terminated.
// Start() can only be called on an Idle window. The loop runs until Close()
// is called or the platform reports that the user wants to quit, at which
// point the window finishes the current frame and releases its resources.
//
// Everything is drawn through the Spaces of the window. The projection maps
// window pixels to clip space with the origin in the upper-left corner. The
// view is scaled by the Scale of the Config so that one logical pixel covers
// Scale window pixels.
//
// Filled rectangles are batched. The draw helpers flush pending rectangles
// before drawing anything else so that draw order is preserved.
//
// The Platform interface hides the windowing system. The SDL platform is used
// by New(). The Headless platform, together with the headless GPU device, runs
// the loop without a display.
package window
