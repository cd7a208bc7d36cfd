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

// Package assert provides a debug-build guard against a collaborator
// goroutine (a keyboard/joystick driver, a file loader) mutating core state
// outside of the single-producer queue contract the machine loop relies on.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// Enabled controls whether AssertMainGoroutine panics on a violation. A host
// building for release can set this to false once; it defaults to true so
// the guard is live during development and testing.
var Enabled = true

// GetGoRoutineID returns an identifier for the calling goroutine: different
// between goroutines, consistent for a given goroutine. For debugging and
// testing purposes only -- never reliable enough to build behaviour on.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// MainGoroutine records the identity of whichever goroutine claims it, for
// later verification by AssertMainGoroutine.
type MainGoroutine struct {
	id uint64
}

// Claim records the calling goroutine as the one MainGoroutine will check
// against. Call this once, from the goroutine that will own the guarded
// state (typically wherever NewMemory or NewAtari is called).
func (m *MainGoroutine) Claim() {
	m.id = GetGoRoutineID()
}

// AssertMainGoroutine panics if called from a goroutine other than the one
// that last called Claim, unless Enabled is false. A zero-value
// MainGoroutine (Claim never called) always passes, since there is nothing
// yet to violate.
func (m *MainGoroutine) AssertMainGoroutine() {
	if !Enabled || m.id == 0 {
		return
	}
	if id := GetGoRoutineID(); id != m.id {
		panic(fmt.Sprintf("assert: called from goroutine %d, claimed by goroutine %d", id, m.id))
	}
}
