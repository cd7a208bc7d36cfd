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

// Package test provides convenience helpers for use in other package's test
// suites.
package test

import (
	"math"
	"reflect"
	"testing"
)

// resultIsFailure reduces common "did this operation fail" return shapes
// (bool, error, nil) to a single boolean.
func resultIsFailure(v interface{}) bool {
	switch r := v.(type) {
	case bool:
		return !r
	case error:
		return r != nil
	case nil:
		return false
	}
	return false
}

// ExpectFailure checks that v indicates failure: false for a bool, a non-nil
// error for an error.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	if !resultIsFailure(v) {
		t.Errorf("expected failure, got %v", v)
	}
}

// ExpectSuccess checks that v indicates success: true for a bool, nil for an
// error or nil interface.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	if resultIsFailure(v) {
		t.Errorf("expected success, got %v", v)
	}
}

// ExpectEquality checks that want and got are deeply equal.
func ExpectEquality(t *testing.T, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Errorf("expected equality: %v != %v", want, got)
	}
}

// ExpectInequality checks that want and got are not deeply equal.
func ExpectInequality(t *testing.T, want, got interface{}) {
	t.Helper()
	if reflect.DeepEqual(want, got) {
		t.Errorf("expected inequality: %v == %v", want, got)
	}
}

// ExpectApproximate checks that want and got are within tolerance of one
// another, as float64 values.
func ExpectApproximate(t *testing.T, want, got interface{}, tolerance float64) {
	t.Helper()

	w := toFloat64(want)
	g := toFloat64(got)

	if math.Abs(w-g) > tolerance {
		t.Errorf("expected approximate equality (tolerance %v): %v != %v", tolerance, want, got)
	}
}

func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

// Equate is a looser, older-style equality check retained for convenience.
// It accepts the same failure/success shapes as ExpectFailure/ExpectSuccess
// when comparing against a bool, and otherwise falls back to deep equality.
func Equate(t *testing.T, a, b interface{}) {
	t.Helper()
	if want, ok := b.(bool); ok {
		if got, ok := a.(bool); ok {
			if got != want {
				t.Errorf("expected %v, got %v", want, got)
			}
			return
		}
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("expected equality: %v != %v", a, b)
	}
}
