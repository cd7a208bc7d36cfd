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

package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/atari800core/emu/hardware"
)

// keycodeTable maps a handful of SDL scancodes to their POKEY keyboard
// matrix codes. It covers letters, digits and the console-adjacent keys
// well enough to drive BASIC from the keyboard; a full 400/800 keyboard
// matrix has more shift-state-dependent codes than this reference host
// bothers to model.
var keycodeTable = map[sdl.Scancode]uint8{
	sdl.SCANCODE_A: 0x3f, sdl.SCANCODE_B: 0x15, sdl.SCANCODE_C: 0x12,
	sdl.SCANCODE_D: 0x3a, sdl.SCANCODE_E: 0x2a, sdl.SCANCODE_F: 0x38,
	sdl.SCANCODE_G: 0x3d, sdl.SCANCODE_H: 0x39, sdl.SCANCODE_I: 0x0d,
	sdl.SCANCODE_J: 0x01, sdl.SCANCODE_K: 0x05, sdl.SCANCODE_L: 0x00,
	sdl.SCANCODE_M: 0x25, sdl.SCANCODE_N: 0x23, sdl.SCANCODE_O: 0x08,
	sdl.SCANCODE_P: 0x0a, sdl.SCANCODE_Q: 0x2f, sdl.SCANCODE_R: 0x28,
	sdl.SCANCODE_S: 0x3e, sdl.SCANCODE_T: 0x2d, sdl.SCANCODE_U: 0x0b,
	sdl.SCANCODE_V: 0x10, sdl.SCANCODE_W: 0x2e, sdl.SCANCODE_X: 0x16,
	sdl.SCANCODE_Y: 0x2b, sdl.SCANCODE_Z: 0x17,
	sdl.SCANCODE_0: 0x32, sdl.SCANCODE_1: 0x1f, sdl.SCANCODE_2: 0x1e,
	sdl.SCANCODE_3: 0x1a, sdl.SCANCODE_4: 0x18, sdl.SCANCODE_5: 0x1d,
	sdl.SCANCODE_6: 0x1b, sdl.SCANCODE_7: 0x33, sdl.SCANCODE_8: 0x35,
	sdl.SCANCODE_9: 0x30,
	sdl.SCANCODE_SPACE:  0x21,
	sdl.SCANCODE_RETURN: 0x0c,
}

// joystickState tracks port 0's current digital directions and fire button
// between SDL axis/button events, since the core's SetJoystick wants the
// complete state on every call rather than one axis at a time.
var joystickState struct {
	up, down, left, right, fire bool
}

// pumpEvents drains the SDL event queue for one frame, forwarding keyboard
// and joystick state into the machine's input queue, and reports whether
// the host should quit.
func pumpEvents(at *hardware.Atari) (quit bool) {
	for {
		e := sdl.PollEvent()
		if e == nil {
			return false
		}

		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.KeyboardEvent:
			pressed := ev.State == sdl.PRESSED
			if ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE && pressed {
				return true
			}
			if ev.Keysym.Scancode == sdl.SCANCODE_F2 {
				_ = at.Input.SetBreakKey(pressed)
				continue
			}
			if code, ok := keycodeTable[ev.Keysym.Scancode]; ok {
				_ = at.Input.SetKey(code, pressed)
			}

		case *sdl.JoyAxisEvent:
			// axis motion is handled as discrete digital directions, matching
			// the Atari's own all-or-nothing joystick switches.
			const deadZone = 8000
			switch ev.Axis {
			case 0:
				joystickState.left = ev.Value < -deadZone
				joystickState.right = ev.Value > deadZone
			case 1:
				joystickState.up = ev.Value < -deadZone
				joystickState.down = ev.Value > deadZone
			}
			pushJoystick(at)

		case *sdl.JoyButtonEvent:
			joystickState.fire = ev.State == sdl.PRESSED
			pushJoystick(at)
		}
	}
}

func pushJoystick(at *hardware.Atari) {
	_ = at.Input.SetJoystick(0,
		joystickState.up, joystickState.down,
		joystickState.left, joystickState.right,
		joystickState.fire)
}
