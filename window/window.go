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
	"fmt"
	"io"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jepebe/pixelengine/assert"
	"github.com/jepebe/pixelengine/curated"
	"github.com/jepebe/pixelengine/font"
	"github.com/jepebe/pixelengine/gpu"
	"github.com/jepebe/pixelengine/input"
	"github.com/jepebe/pixelengine/logger"
	"github.com/jepebe/pixelengine/performance"
	"github.com/jepebe/pixelengine/performance/limiter"
	"github.com/jepebe/pixelengine/shader"
	"github.com/jepebe/pixelengine/shapes"
	"github.com/jepebe/pixelengine/spaces"
	"github.com/jepebe/pixelengine/sprite"
	"github.com/jepebe/pixelengine/text"
)

// Window is a drawing surface and the loop that draws on it.
type Window struct {
	cfg   Config
	plt   Platform
	dev   gpu.Device
	state State
	title string

	// the GL context is only current in this goroutine
	owner assert.Goroutine

	spaces  *spaces.Spaces
	cat     *shader.Catalogue
	rects   *shapes.Rects
	sprites *sprite.Renderer
	text    *text.Renderer
	library *sprite.Library

	// created on first use
	grid *shapes.Grid

	keyboard input.Keyboard
	mouse    input.Mouse

	limiter *limiter.FpsLimiter

	now     func() time.Time
	fps     *performance.FPS
	last    time.Time
	elapsed float64
	frame   int
}

// New creates a window with the SDL platform. Must be called from the main
// thread.
func New(cfg Config) (*Window, error) {
	cfg.normalise()
	plt, dev, err := newSDLPlatform(cfg)
	if err != nil {
		return nil, err
	}
	win, err := NewWithPlatform(cfg, plt, dev)
	if err != nil {
		_ = plt.Destroy()
		return nil, err
	}
	return win, nil
}

// NewWithPlatform creates a window with the platform and device. The device
// must be for the platform's GL context.
func NewWithPlatform(cfg Config, plt Platform, dev gpu.Device) (*Window, error) {
	cfg.normalise()

	win := &Window{
		cfg:    cfg,
		plt:    plt,
		dev:    dev,
		title:  cfg.Title,
		spaces: spaces.NewSpaces(cfg.Width, cfg.Height),
		cat:    shader.NewCatalogue(dev, cfg.ShaderDir),
		now:    time.Now,
		owner:  assert.CurrentGoroutine(),
	}

	win.spaces.Projection.SetMatrix(mgl32.Ortho(0, float32(cfg.Width), float32(cfg.Height), 0, -1, 1))
	dev.EnableBlending()

	var err error

	win.rects, err = shapes.NewRects(dev, win.cat, 0)
	if err != nil {
		return nil, err
	}

	win.sprites, err = sprite.NewRenderer(dev, win.cat)
	if err != nil {
		return nil, err
	}

	fnt, err := font.Default(cfg.FontSize)
	if err != nil {
		return nil, err
	}
	win.text, err = text.New(dev, win.cat, fnt, cfg.TextMode)
	if err != nil {
		return nil, err
	}

	win.library, err = sprite.NewLibrary(cfg.SpriteCache)
	if err != nil {
		return nil, err
	}

	if !cfg.VSync && cfg.FPSCap > 0 {
		win.limiter = limiter.NewFPSLimiter(cfg.FPSCap)
	}

	plt.SetTitle(win.title)

	logger.Logf(logger.Allow, "window", "%dx%d scale %.1fx%.1f", cfg.Width, cfg.Height, cfg.XScale, cfg.YScale)

	return win, nil
}

// Start the frame loop. The update function is called once per frame. An
// error from the update function, or from drawing, ends the loop and is
// returned. Start() can only be called once.
func (win *Window) Start(update func(*Window) error) error {
	if win.state != Idle {
		return curated.Errorf(InvalidState, "start", win.state)
	}
	if !win.owner.IsCurrent() {
		return curated.Errorf(WrongGoroutine, "start")
	}

	win.state = Running
	logger.Log(logger.Allow, "window", "running")

	win.last = win.now()
	win.fps = performance.NewFPS(win.last)

	defer win.terminate()

	for win.state == Running {
		if err := win.iterate(update); err != nil {
			return err
		}
	}

	return nil
}

// iterate performs one frame of the loop.
func (win *Window) iterate(update func(*Window) error) error {
	if win.plt.Poll(&win.mouse) {
		win.Close()
	}
	win.keyboard.Poll(win.plt)
	win.mouse.Poll(win.plt)

	win.cat.Refresh()

	expected := win.spaces.Depths()
	win.spaces.Push()
	win.spaces.View.LoadIdentity()
	win.spaces.View.Scale(win.cfg.XScale, win.cfg.YScale, 1)
	win.spaces.SetTint(mgl32.Vec4{})

	w, h := win.plt.DrawableSize()
	win.dev.Viewport(0, 0, w, h)
	win.dev.Clear(win.cfg.Background)

	err := update(win)
	if err == nil {
		err = win.rects.FlushIfStarted(win.spaces)
	}

	win.plt.Present()
	if win.limiter != nil {
		win.limiter.Wait()
	}

	if e := win.spaces.Pop(); e != nil && err == nil {
		err = e
	}
	if e := win.spaces.Verify(expected); e != nil && err == nil {
		err = e
	}
	if err != nil {
		return err
	}

	now := win.now()
	win.elapsed = now.Sub(win.last).Seconds()
	win.last = now
	win.frame++

	if win.fps.Tick(now) {
		win.plt.SetTitle(fmt.Sprintf("%s @ %.0f FPS", win.title, win.fps.Rate()))
	}

	return nil
}

// terminate releases every resource of the window.
func (win *Window) terminate() {
	if win.grid != nil {
		win.grid.Destroy()
	}
	if win.limiter != nil {
		win.limiter.Stop()
	}
	win.library.Purge()
	win.text.Destroy()
	win.sprites.Destroy()
	win.rects.Destroy()
	win.cat.Destroy()

	if err := win.plt.Destroy(); err != nil {
		logger.Logf(logger.Allow, "window", "%v", err)
	}

	win.state = Terminated
	logger.Log(logger.Allow, "window", "terminated")
}

// Close the window. The current frame is completed before the loop ends.
func (win *Window) Close() {
	if win.state == Running {
		win.state = Closing
		logger.Log(logger.Allow, "window", "closing")
	}
}

// State returns the current state of the window.
func (win *Window) State() State {
	return win.state
}

// Config returns the configuration of the window.
func (win *Window) Config() Config {
	return win.cfg
}

// Title returns the title of the window without the FPS counter.
func (win *Window) Title() string {
	return win.title
}

// SetTitle changes the title of the window. The FPS counter is appended to
// the title once it has been measured.
func (win *Window) SetTitle(title string) {
	win.title = title
	win.plt.SetTitle(title)
}

// Spaces returns the coordinate spaces used for drawing.
func (win *Window) Spaces() *spaces.Spaces {
	return win.spaces
}

// Device returns the GPU device of the window.
func (win *Window) Device() gpu.Device {
	return win.dev
}

// Catalogue returns the shader programs of the window.
func (win *Window) Catalogue() *shader.Catalogue {
	return win.cat
}

// Sprites returns the sprite library of the window. Sprites in the library
// are released when the window terminates.
func (win *Window) Sprites() *sprite.Library {
	return win.library
}

// Font returns the font used by DrawText().
func (win *Window) Font() *font.Font {
	return win.text.Font()
}

// KeyState returns the state of the key in the current frame.
func (win *Window) KeyState(k input.Key) input.ButtonState {
	return win.keyboard.State(k)
}

// Mouse returns the state of the mouse in the current frame.
func (win *Window) Mouse() *input.Mouse {
	return &win.mouse
}

// ElapsedTime returns the duration of the previous frame in seconds.
func (win *Window) ElapsedTime() float64 {
	return win.elapsed
}

// FPS returns the most recently measured frame rate.
func (win *Window) FPS() float64 {
	if win.fps == nil {
		return 0
	}
	return win.fps.Rate()
}

// Frame returns the number of frames completed.
func (win *Window) Frame() int {
	return win.frame
}

// Tint returns the current tint.
func (win *Window) Tint() mgl32.Vec4 {
	return win.spaces.Tint()
}

// SetTint sets the tint used by draw calls that do not specify one. The tint
// is reset to the default tint at the start of every frame.
func (win *Window) SetTint(c mgl32.Vec4) {
	win.spaces.SetTint(c)
}

// DumpSpaces writes a graphviz graph of the coordinate spaces to the writer.
func (win *Window) DumpSpaces(w io.Writer) {
	memviz.Map(w, win.spaces)
}
