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

package input_test

import (
	"testing"

	"github.com/atari800core/emu/hardware/input"
	"github.com/atari800core/emu/test"
)

type fakeChips struct {
	keyCode       uint8
	keyPressed    bool
	breakPressed  bool
	start, sel, opt bool
	trigPort      int
	trigPressed   bool
	joyPort       int
	up, down, left, right bool
}

func (f *fakeChips) SetKey(keycode uint8, pressed bool) { f.keyCode, f.keyPressed = keycode, pressed }
func (f *fakeChips) SetBreakKey(pressed bool)            { f.breakPressed = pressed }
func (f *fakeChips) SetConsole(start, sel, opt bool)     { f.start, f.sel, f.opt = start, sel, opt }
func (f *fakeChips) SetTrigger(port int, pressed bool)   { f.trigPort, f.trigPressed = port, pressed }
func (f *fakeChips) SetJoystick(port int, up, down, left, right bool) {
	f.joyPort, f.up, f.down, f.left, f.right = port, up, down, left, right
}

func TestServiceAppliesQueuedEvents(t *testing.T) {
	chips := &fakeChips{}
	inp := input.NewInput(chips, chips, chips)

	test.ExpectSuccess(t, inp.SetKey(0x41, true))
	test.ExpectSuccess(t, inp.SetConsole(true, false, true))
	test.ExpectSuccess(t, inp.SetJoystick(1, true, false, false, false, true))

	inp.Service()

	test.ExpectEquality(t, chips.keyCode, uint8(0x41))
	test.ExpectEquality(t, chips.keyPressed, true)
	test.ExpectEquality(t, chips.start, true)
	test.ExpectEquality(t, chips.sel, false)
	test.ExpectEquality(t, chips.opt, true)
	test.ExpectEquality(t, chips.joyPort, 1)
	test.ExpectEquality(t, chips.up, true)
	test.ExpectEquality(t, chips.trigPort, 1)
	test.ExpectEquality(t, chips.trigPressed, true)
}

func TestInvalidJoystickPortRejected(t *testing.T) {
	chips := &fakeChips{}
	inp := input.NewInput(chips, chips, chips)

	err := inp.SetJoystick(2, true, false, false, false, false)
	test.ExpectFailure(t, err)

	inp.Service()
	test.ExpectEquality(t, chips.joyPort, 0)
}

func TestQueueFullDropsEvent(t *testing.T) {
	chips := &fakeChips{}
	inp := input.NewInput(chips, chips, chips)

	var lastErr error
	for i := 0; i < 100; i++ {
		lastErr = inp.SetBreakKey(true)
	}
	test.ExpectFailure(t, lastErr)
}
