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

package window

import (
	"runtime"

	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/gpu/gl32"
	"github.com/jepebe/pixelengine/input"
	"github.com/jepebe/pixelengine/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// sdlPlatform is an SDL window with an OpenGL 3.2 core context.
type sdlPlatform struct {
	window *sdl.Window
	ctx    sdl.GLContext
}

// newSDLPlatform creates the window and the GL device for its context. Must
// be called from the main thread.
func newSDLPlatform(cfg Config) (*sdlPlatform, *gl32.Device, error) {
	// SDL must be serviced from the thread it was initialised on. we never
	// unlock the thread
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, nil, curated.Errorf(PlatformError, err)
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, nil, curated.Errorf(PlatformError, err)
		}
	}

	var v sdl.Version
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	plt := &sdlPlatform{}

	plt.window, err = sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		sdl.Quit()
		return nil, nil, curated.Errorf(PlatformError, err)
	}

	plt.ctx, err = plt.window.GLCreateContext()
	if err != nil {
		_ = plt.Destroy()
		return nil, nil, curated.Errorf(PlatformError, err)
	}
	err = plt.window.GLMakeCurrent(plt.ctx)
	if err != nil {
		_ = plt.Destroy()
		return nil, nil, curated.Errorf(PlatformError, err)
	}

	swap := 0
	if cfg.VSync {
		swap = 1
	}
	if err := sdl.GLSetSwapInterval(swap); err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %v", swap, err)
	}

	dev, err := gl32.New()
	if err != nil {
		_ = plt.Destroy()
		return nil, nil, err
	}

	return plt, dev, nil
}

// Poll implements the Platform interface.
func (plt *sdlPlatform) Poll(mouse *input.Mouse) bool {
	var quit bool
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_CLOSE {
				quit = true
			}
		case *sdl.MouseWheelEvent:
			dx, dy := float32(ev.X), float32(ev.Y)
			if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dx, dy = -dx, -dy
			}
			mouse.AddScroll(dx, dy)
		}
	}
	return quit
}

var scancodes = [input.NumKeys]sdl.Scancode{
	input.KeySpace:        sdl.SCANCODE_SPACE,
	input.KeyApostrophe:   sdl.SCANCODE_APOSTROPHE,
	input.KeyComma:        sdl.SCANCODE_COMMA,
	input.KeyMinus:        sdl.SCANCODE_MINUS,
	input.KeyPeriod:       sdl.SCANCODE_PERIOD,
	input.KeySlash:        sdl.SCANCODE_SLASH,
	input.KeyNum0:         sdl.SCANCODE_0,
	input.KeyNum1:         sdl.SCANCODE_1,
	input.KeyNum2:         sdl.SCANCODE_2,
	input.KeyNum3:         sdl.SCANCODE_3,
	input.KeyNum4:         sdl.SCANCODE_4,
	input.KeyNum5:         sdl.SCANCODE_5,
	input.KeyNum6:         sdl.SCANCODE_6,
	input.KeyNum7:         sdl.SCANCODE_7,
	input.KeyNum8:         sdl.SCANCODE_8,
	input.KeyNum9:         sdl.SCANCODE_9,
	input.KeySemicolon:    sdl.SCANCODE_SEMICOLON,
	input.KeyEqual:        sdl.SCANCODE_EQUALS,
	input.KeyA:            sdl.SCANCODE_A,
	input.KeyB:            sdl.SCANCODE_B,
	input.KeyC:            sdl.SCANCODE_C,
	input.KeyD:            sdl.SCANCODE_D,
	input.KeyE:            sdl.SCANCODE_E,
	input.KeyF:            sdl.SCANCODE_F,
	input.KeyG:            sdl.SCANCODE_G,
	input.KeyH:            sdl.SCANCODE_H,
	input.KeyI:            sdl.SCANCODE_I,
	input.KeyJ:            sdl.SCANCODE_J,
	input.KeyK:            sdl.SCANCODE_K,
	input.KeyL:            sdl.SCANCODE_L,
	input.KeyM:            sdl.SCANCODE_M,
	input.KeyN:            sdl.SCANCODE_N,
	input.KeyO:            sdl.SCANCODE_O,
	input.KeyP:            sdl.SCANCODE_P,
	input.KeyQ:            sdl.SCANCODE_Q,
	input.KeyR:            sdl.SCANCODE_R,
	input.KeyS:            sdl.SCANCODE_S,
	input.KeyT:            sdl.SCANCODE_T,
	input.KeyU:            sdl.SCANCODE_U,
	input.KeyV:            sdl.SCANCODE_V,
	input.KeyW:            sdl.SCANCODE_W,
	input.KeyX:            sdl.SCANCODE_X,
	input.KeyY:            sdl.SCANCODE_Y,
	input.KeyZ:            sdl.SCANCODE_Z,
	input.KeyLeftBracket:  sdl.SCANCODE_LEFTBRACKET,
	input.KeyBackslash:    sdl.SCANCODE_BACKSLASH,
	input.KeyRightBracket: sdl.SCANCODE_RIGHTBRACKET,
	input.KeyGraveAccent:  sdl.SCANCODE_GRAVE,
	input.KeyEscape:       sdl.SCANCODE_ESCAPE,
	input.KeyEnter:        sdl.SCANCODE_RETURN,
	input.KeyTab:          sdl.SCANCODE_TAB,
	input.KeyBackspace:    sdl.SCANCODE_BACKSPACE,
	input.KeyInsert:       sdl.SCANCODE_INSERT,
	input.KeyDelete:       sdl.SCANCODE_DELETE,
	input.KeyRight:        sdl.SCANCODE_RIGHT,
	input.KeyLeft:         sdl.SCANCODE_LEFT,
	input.KeyDown:         sdl.SCANCODE_DOWN,
	input.KeyUp:           sdl.SCANCODE_UP,
	input.KeyPageUp:       sdl.SCANCODE_PAGEUP,
	input.KeyPageDown:     sdl.SCANCODE_PAGEDOWN,
	input.KeyHome:         sdl.SCANCODE_HOME,
	input.KeyEnd:          sdl.SCANCODE_END,
	input.KeyCapsLock:     sdl.SCANCODE_CAPSLOCK,
	input.KeyScrollLock:   sdl.SCANCODE_SCROLLLOCK,
	input.KeyNumLock:      sdl.SCANCODE_NUMLOCKCLEAR,
	input.KeyPrintScreen:  sdl.SCANCODE_PRINTSCREEN,
	input.KeyPause:        sdl.SCANCODE_PAUSE,
	input.KeyF1:           sdl.SCANCODE_F1,
	input.KeyF2:           sdl.SCANCODE_F2,
	input.KeyF3:           sdl.SCANCODE_F3,
	input.KeyF4:           sdl.SCANCODE_F4,
	input.KeyF5:           sdl.SCANCODE_F5,
	input.KeyF6:           sdl.SCANCODE_F6,
	input.KeyF7:           sdl.SCANCODE_F7,
	input.KeyF8:           sdl.SCANCODE_F8,
	input.KeyF9:           sdl.SCANCODE_F9,
	input.KeyF10:          sdl.SCANCODE_F10,
	input.KeyF11:          sdl.SCANCODE_F11,
	input.KeyF12:          sdl.SCANCODE_F12,
	input.KeyLeftShift:    sdl.SCANCODE_LSHIFT,
	input.KeyLeftControl:  sdl.SCANCODE_LCTRL,
	input.KeyLeftAlt:      sdl.SCANCODE_LALT,
	input.KeyLeftSuper:    sdl.SCANCODE_LGUI,
	input.KeyRightShift:   sdl.SCANCODE_RSHIFT,
	input.KeyRightControl: sdl.SCANCODE_RCTRL,
	input.KeyRightAlt:     sdl.SCANCODE_RALT,
	input.KeyRightSuper:   sdl.SCANCODE_RGUI,
	input.KeyMenu:         sdl.SCANCODE_MENU,
}

// KeyDown implements the input.Sampler interface.
func (plt *sdlPlatform) KeyDown(k input.Key) bool {
	if k < 0 || k >= input.NumKeys {
		return false
	}
	state := sdl.GetKeyboardState()
	sc := int(scancodes[k])
	return sc < len(state) && state[sc] != 0
}

var buttons = [input.NumButtons]uint32{
	input.ButtonLeft:   sdl.BUTTON_LEFT,
	input.ButtonMiddle: sdl.BUTTON_MIDDLE,
	input.ButtonRight:  sdl.BUTTON_RIGHT,
	input.Button4:      sdl.BUTTON_X1,
	input.Button5:      sdl.BUTTON_X2,
}

// ButtonDown implements the input.Sampler interface.
func (plt *sdlPlatform) ButtonDown(b input.Button) bool {
	if b < 0 || b >= input.NumButtons {
		return false
	}
	_, _, state := sdl.GetMouseState()
	return state&sdl.Button(buttons[b]) != 0
}

// MousePosition implements the input.Sampler interface.
func (plt *sdlPlatform) MousePosition() (float32, float32, bool) {
	x, y, _ := sdl.GetMouseState()
	hover := plt.window.GetFlags()&sdl.WINDOW_MOUSE_FOCUS == sdl.WINDOW_MOUSE_FOCUS
	return float32(x), float32(y), hover
}

// DrawableSize implements the Platform interface.
func (plt *sdlPlatform) DrawableSize() (int, int) {
	w, h := plt.window.GLGetDrawableSize()
	return int(w), int(h)
}

// SetTitle implements the Platform interface.
func (plt *sdlPlatform) SetTitle(title string) {
	plt.window.SetTitle(title)
}

// Present implements the Platform interface.
func (plt *sdlPlatform) Present() {
	plt.window.GLSwap()
}

// Destroy implements the Platform interface.
func (plt *sdlPlatform) Destroy() error {
	if plt.ctx != nil {
		sdl.GLDeleteContext(plt.ctx)
		plt.ctx = nil
	}
	if plt.window != nil {
		if err := plt.window.Destroy(); err != nil {
			return curated.Errorf(PlatformError, err)
		}
		plt.window = nil
	}
	sdl.Quit()
	return nil
}
