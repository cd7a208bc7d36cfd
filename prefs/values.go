// This file is part of atari800core.
//
// atari800core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// atari800core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with atari800core.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
)

// Bool is a boolean preference PrefValue.
type Bool struct {
	value bool
}

// Set accepts a bool, or a string parseable by strconv.ParseBool. Any other
// type, or an unparseable string, leaves the value false.
func (b *Bool) Set(v Value) error {
	switch t := v.(type) {
	case bool:
		b.value = t
	case string:
		p, err := strconv.ParseBool(t)
		if err != nil {
			b.value = false
			return nil
		}
		b.value = p
	default:
		b.value = false
	}
	return nil
}

// Get returns the current value.
func (b *Bool) Get() bool { return b.value }

// String implements the PrefValue interface.
func (b *Bool) String() string {
	return strconv.FormatBool(b.value)
}

// String is a string preference PrefValue, optionally truncated to a
// maximum length.
type String struct {
	value  string
	maxLen int
}

// Set accepts any value, formatting it with fmt.Sprintf("%v", ...) unless it
// is already a string.
func (s *String) Set(v Value) error {
	if str, ok := v.(string); ok {
		s.value = str
	} else {
		s.value = fmt.Sprintf("%v", v)
	}
	s.crop()
	return nil
}

// SetMaxLen sets the maximum length the value may have, cropping the
// current value immediately. A length of zero removes the limit, but does
// not restore any characters already cropped.
func (s *String) SetMaxLen(n int) {
	s.maxLen = n
	s.crop()
}

func (s *String) crop() {
	if s.maxLen > 0 && len(s.value) > s.maxLen {
		s.value = s.value[:s.maxLen]
	}
}

// String implements the PrefValue interface.
func (s *String) String() string {
	return s.value
}

// Int is an integer preference PrefValue.
type Int struct {
	value int
}

// Set accepts an int, or a string parseable by strconv.Atoi. Any other type
// is an error.
func (i *Int) Set(v Value) error {
	switch t := v.(type) {
	case int:
		i.value = t
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
		i.value = n
	default:
		return fmt.Errorf("prefs: cannot set int preference from %T", v)
	}
	return nil
}

// Get returns the current value.
func (i *Int) Get() int { return i.value }

// String implements the PrefValue interface.
func (i *Int) String() string {
	return strconv.Itoa(i.value)
}

// Float is a floating point preference PrefValue.
type Float struct {
	value float64
}

// Set accepts a float64, or a string parseable by strconv.ParseFloat. Any
// other type, or an unparseable string, is an error.
func (f *Float) Set(v Value) error {
	switch t := v.(type) {
	case float64:
		f.value = t
	case string:
		n, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
		f.value = n
	default:
		return fmt.Errorf("prefs: cannot set float preference from %T", v)
	}
	return nil
}

// Get returns the current value.
func (f *Float) Get() float64 { return f.value }

// String implements the PrefValue interface.
func (f *Float) String() string {
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

// Generic adapts an arbitrary getter/setter pair to the PrefValue interface,
// for preferences that don't map cleanly onto Bool/String/Int/Float.
type Generic struct {
	set func(Value) error
	get func() Value
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(Value) error, get func() Value) *Generic {
	return &Generic{set: set, get: get}
}

// Set calls through to the Generic's configured setter function.
func (g *Generic) Set(v Value) error {
	return g.set(v)
}

// String calls through to the Generic's configured getter function.
func (g *Generic) String() string {
	v := g.get()
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
