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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jepebe/pixelengine/curated"
)

// Sentinal error patterns.
const (
	CannotConvert = "prefs: cannot convert %T to %s"
)

// Value is the raw Go value of a preference.
type Value interface{}

// Pref is implemented by all preference types.
type Pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are called either side of storing a new value. Even if the value has
// not changed the hooks are called.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the function to be called just before the value is stored.
// An error from the hook prevents the value from being stored.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the function to be called just after the value is stored.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

func (h *hooks) store(v *atomic.Value, nv Value) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}
	v.Store(nv)
	if h.post != nil {
		if err := h.post(nv); err != nil {
			return err
		}
	}
	return nil
}

// Bool is a boolean preference.
type Bool struct {
	hooks
	value atomic.Value
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.Get().(bool))
}

// Set accepts a bool or a string. Any string other than "true" (case
// insensitive) is false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return curated.Errorf(CannotConvert, v, "prefs.Bool")
	}
	return p.store(&p.value, nv)
}

// Get returns the value as a bool.
func (p *Bool) Get() Value {
	if v, ok := p.value.Load().(bool); ok {
		return v
	}
	return false
}

// Reset to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int is an integer preference.
type Int struct {
	hooks
	value atomic.Value
}

func (p *Int) String() string {
	return strconv.Itoa(p.Get().(int))
}

// Set accepts any of the int types or a string. The int64 type is included
// because that is how TOML files decode integers.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int32:
		nv = int(v)
	case int64:
		nv = int(v)
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return curated.Errorf(CannotConvert, v, "prefs.Int")
		}
	default:
		return curated.Errorf(CannotConvert, v, "prefs.Int")
	}
	return p.store(&p.value, nv)
}

// Get returns the value as an int.
func (p *Int) Get() Value {
	if v, ok := p.value.Load().(int); ok {
		return v
	}
	return 0
}

// Reset to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float is a floating point preference.
type Float struct {
	hooks
	value atomic.Value
}

func (p *Float) String() string {
	return strconv.FormatFloat(p.Get().(float64), 'f', 3, 64)
}

// Set accepts float32, float64, int, int64 or a string.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case int64:
		nv = float64(v)
	case string:
		var err error
		nv, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return curated.Errorf(CannotConvert, v, "prefs.Float")
		}
	default:
		return curated.Errorf(CannotConvert, v, "prefs.Float")
	}
	return p.store(&p.value, nv)
}

// Get returns the value as a float64.
func (p *Float) Get() Value {
	if v, ok := p.value.Load().(float64); ok {
		return v
	}
	return 0.0
}

// Reset to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// String is a string preference with an optional maximum length.
type String struct {
	hooks
	maxLen int
	value  atomic.Value
}

func (p *String) String() string {
	if v, ok := p.value.Load().(string); ok {
		return v
	}
	return ""
}

// SetMaxLen sets the maximum length of the string. A value of zero or less
// means no limit. The existing string is cropped if necessary.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s := p.String(); p.maxLen > 0 && len(s) > p.maxLen {
		p.value.Store(s[:p.maxLen])
	}
}

// Set accepts any value and stores its string representation.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	return p.store(&p.value, nv)
}

// Get returns the value as a string.
func (p *String) Get() Value {
	return p.String()
}

// Reset to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Generic is a preference for values that are not a single live value, for
// example a pair of numbers. The set and get functions convert to and from
// the string representation. Use NewGeneric() to create a Generic.
//
// Generic has no hooks and is protected by a mutex rather than an atomic
// value.
type Generic struct {
	crit sync.Mutex
	set  func(string) error
	get  func() string
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(string) error, get func() string) *Generic {
	return &Generic{
		set: set,
		get: get,
	}
}

func (p *Generic) String() string {
	return p.Get().(string)
}

// Set passes the string representation of the value to the set function.
func (p *Generic) Set(v Value) error {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.set(fmt.Sprintf("%v", v))
}

// Get returns the result of the get function.
func (p *Generic) Get() Value {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.get()
}

// Reset sets the generic value with the empty string.
func (p *Generic) Reset() error {
	return p.Set("")
}
