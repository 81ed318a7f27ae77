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

package modalflag

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes is the parsing state of the command line.
type Modes struct {
	// where help messages are written
	Output io.Writer

	flags *flag.FlagSet
	help  strings.Builder

	args    []string
	argsIdx int

	subModes []string

	// the modes found by successive calls to Parse()
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs starts parsing a new argument list. The mode path is reset.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode prepares for the flags and sub-modes of the next mode.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.help.Reset()
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(&md.help)
}

// AdditionalHelp is printed after the flags and sub-modes when help is
// requested.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// AddSubModes to the list of modes that can be selected. The first sub-mode
// added is the default.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// ParseResult says how the caller should proceed after Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the error is returned alongside the result
	ParseError
)

// Parse the arguments for the current mode. If sub-modes have been added
// then the first remaining argument selects the mode. If that argument is not
// a sub-mode then the default mode is selected and the argument is left
// alone.
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			md.writeHelp()
			return ParseHelp, nil
		}
		return ParseError, fmt.Errorf("modalflag: %w", err)
	}

	// skip past the flags
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.argsIdx++
				break
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments after the flags and selected mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the remaining argument at the index or the empty string.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddBool flag to the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag to the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddFloat64 flag to the current mode.
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddString flag to the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls the function for every flag that has been set.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

func (md *Modes) writeHelp() {
	if md.Output == nil {
		return
	}

	md.help.Reset()
	md.flags.PrintDefaults()
	flags := md.help.String()

	if flags == "" && len(md.subModes) == 0 {
		if md.Path() == "" {
			fmt.Fprintln(md.Output, "No help available")
		} else {
			fmt.Fprintf(md.Output, "No help available for %s\n", md.Path())
		}
		return
	}

	if md.Path() == "" {
		fmt.Fprintln(md.Output, "Usage:")
	} else {
		fmt.Fprintf(md.Output, "Usage for %s mode:\n", md.Path())
	}

	fmt.Fprint(md.Output, flags)

	if len(md.subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(md.Output)
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}
