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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/jepebe/pixelengine/gpu/headless"
	"github.com/jepebe/pixelengine/logger"
	"github.com/jepebe/pixelengine/modalflag"
	"github.com/jepebe/pixelengine/paths"
	"github.com/jepebe/pixelengine/performance"
	"github.com/jepebe/pixelengine/prefs"
	"github.com/jepebe/pixelengine/statsview"
	"github.com/jepebe/pixelengine/version"
	"github.com/jepebe/pixelengine/window"
)

// SDL and OpenGL calls must all happen on the main thread.
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])

	if err := launch(md, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "* error in %s mode: %s\n", md, err)
		os.Exit(10)
	}
}

// the demo modes. the first mode is the default.
var demoModes = []string{"HELLO", "PALETTE", "TEXT", "ANIMATION"}

func launch(md *modalflag.Modes, output io.Writer) error {
	md.AddSubModes(demoModes...)

	echo := md.AddBool("log", false, "echo log to stdout")
	showVersion := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *showVersion {
		v, rev, release := version.Version()
		if release {
			fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
		} else {
			fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, rev)
		}
		return nil
	}

	if *echo {
		logger.SetEcho(output)
	}

	return runDemo(md, output)
}

// options common to every demo mode.
type options struct {
	prefs     *string
	prefsFile *string
	profile   *string
	shaders   *string
	statsview *bool
	memviz    *bool
	headless  *bool
	frames    *int
}

func runDemo(md *modalflag.Modes, output io.Writer) error {
	mode := md.Mode()
	md.NewMode()

	opts := addOptions(md)

	switch mode {
	case "ANIMATION":
		md.AdditionalHelp("the optional argument is an image to show as a sheet of 8x8 frames")
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if len(md.RemainingArgs()) > 1 || (mode != "ANIMATION" && len(md.RemainingArgs()) > 0) {
		return fmt.Errorf("too many arguments for %s mode", mode)
	}

	prefs.PushCommandLineStack(*opts.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "pixelengine", "unused preferences: %s", unused)
		}
	}()

	profile, err := performance.ParseProfileString(*opts.profile)
	if err != nil {
		return err
	}

	if *opts.statsview {
		statsview.Launch(output)
	}

	win, plt, err := createWindow(opts)
	if err != nil {
		return err
	}

	var d demo
	switch mode {
	case "HELLO":
		d = &hello{}
	case "PALETTE":
		d = newPalette()
	case "TEXT":
		d = &textDemo{}
	case "ANIMATION":
		d, err = newAnimation(win, md.GetArg(0))
		if err != nil {
			return err
		}
	}

	update := d.update
	if *opts.memviz {
		update = func(win *window.Window) error {
			if win.Frame() == 0 {
				if err := dumpSpaces(win); err != nil {
					return err
				}
			}
			return d.update(win)
		}
	}

	err = performance.RunProfiler(profile, strings.ToLower(mode), func() error {
		return win.Start(update)
	})
	if err != nil {
		return err
	}

	if plt != nil {
		fmt.Fprintf(output, "%s: %dx%d %d frames (%s)\n", mode, plt.Width, plt.Height, win.Frame(), plt.Title())
	}

	return nil
}

func addOptions(md *modalflag.Modes) options {
	return options{
		prefs:     md.AddString("prefs", "", "preferences for this session. 'key::value; key::value'"),
		prefsFile: md.AddString("prefsfile", "", "preferences file. default is in the resource path"),
		profile:   md.AddString("profile", "none", "run performance profiler (cpu, mem, all, none)"),
		shaders:   md.AddString("shaders", os.Getenv("PIXELENGINE_SHADERS"), "directory of shader sources to use in place of the built-in shaders"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
		memviz:    md.AddBool("memviz", false, "write a graph of the coordinate spaces on the first frame"),
		headless:  md.AddBool("headless", false, "run without a display"),
		frames:    md.AddInt("frames", 60, "number of frames to run for in headless mode"),
	}
}

// createWindow returns the Headless platform if one was created.
func createWindow(opts options) (*window.Window, *window.Headless, error) {
	p, err := window.NewPreferences(*opts.prefsFile)
	if err != nil {
		return nil, nil, err
	}

	cfg := p.Config(version.ApplicationName)
	cfg.ShaderDir = *opts.shaders

	if !*opts.headless {
		win, err := window.New(cfg)
		return win, nil, err
	}

	// no reason to limit the frame rate of a headless window
	cfg.FPSCap = 0

	plt := window.NewHeadless(int(float32(cfg.Width)*cfg.XScale), int(float32(cfg.Height)*cfg.YScale))
	plt.QuitAfter = *opts.frames
	win, err := window.NewWithPlatform(cfg, plt, headless.NewDevice())
	if err != nil {
		return nil, nil, err
	}
	return win, plt, nil
}

func dumpSpaces(win *window.Window) error {
	fn := paths.UniqueFilename("spaces", "dot")
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	win.DumpSpaces(f)
	logger.Logf(logger.Allow, "memviz", "coordinate spaces written to %s", fn)
	return nil
}
