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

package input

import (
	"github.com/atari800core/emu/assert"
	"github.com/atari800core/emu/curated"
)

// queueSize bounds how many pending events a host can get ahead of the
// machine loop by. 64 matches a few frames' worth of key/joystick activity.
const queueSize = 64

// ErrQueueFull is returned by PushEvent when the host is producing events
// faster than the machine loop drains them. The event is dropped.
var ErrQueueFull = curated.Errorf("input: event queue is full, event dropped")

// ErrInvalid is returned by PushEvent for a malformed event -- an
// out-of-range joystick port. Keycodes are not checked, since every 8-bit
// value is a key with some SHIFT/CONTROL combination. The call is ignored;
// no state change occurs.
var ErrInvalid = curated.Errorf("input: invalid event")

// Keyboard is the subset of POKEY's behaviour the input system drives.
type Keyboard interface {
	SetKey(keycode uint8, pressed bool)
	SetBreakKey(pressed bool)
}

// Console is the subset of GTIA's behaviour the input system drives.
type Console interface {
	SetConsole(start, sel, option bool)
	SetTrigger(port int, pressed bool)
}

// Joystick is the subset of PIA's behaviour the input system drives.
type Joystick interface {
	SetJoystick(port int, up, down, left, right bool)
}

// Input is the single-producer/single-consumer event queue sitting between
// a host's input thread and the machine's scanline loop. A host goroutine
// calls PushEvent; the machine loop calls Service once per frame (or more
// often) to drain pending events into the chips.
type Input struct {
	keyboard Keyboard
	console  Console
	joystick Joystick

	pushed chan Event

	owner assert.MainGoroutine
}

// NewInput is the preferred method of initialisation for the Input type.
// Call it from the goroutine that will go on to call Service -- ordinarily
// wherever NewAtari is called.
func NewInput(keyboard Keyboard, console Console, joystick Joystick) *Input {
	inp := &Input{
		keyboard: keyboard,
		console:  console,
		joystick: joystick,
		pushed:   make(chan Event, queueSize),
	}
	inp.owner.Claim()
	return inp
}

// PushEvent enqueues ev for the next Service call. It is safe to call from
// any goroutine. Returns ErrQueueFull if the host is outrunning the machine
// loop, or ErrInvalid for an out-of-range joystick port; in both cases the
// event is dropped and no state changes.
func (inp *Input) PushEvent(ev Event) error {
	if ev.Kind == KindJoystick && ev.Port != 0 && ev.Port != 1 {
		return ErrInvalid
	}

	select {
	case inp.pushed <- ev:
	default:
		return ErrQueueFull
	}
	return nil
}

// SetKey is a convenience wrapper around PushEvent for the set-key
// operation.
func (inp *Input) SetKey(keycode uint8, pressed bool) error {
	return inp.PushEvent(Event{Kind: KindKey, Keycode: keycode, Pressed: pressed})
}

// SetBreakKey is a convenience wrapper around PushEvent for set_break_key.
func (inp *Input) SetBreakKey(pressed bool) error {
	return inp.PushEvent(Event{Kind: KindBreakKey, Pressed: pressed})
}

// SetConsole is a convenience wrapper around PushEvent for set_console.
func (inp *Input) SetConsole(start, sel, option bool) error {
	return inp.PushEvent(Event{Kind: KindConsole, Start: start, Select: sel, Option: option})
}

// SetJoystick is a convenience wrapper around PushEvent for set_joystick.
// Each call is idempotent: pushing the same directions twice in a row has
// the same effect as pushing it once.
func (inp *Input) SetJoystick(port int, up, down, left, right, fire bool) error {
	return inp.PushEvent(Event{
		Kind: KindJoystick, Port: port,
		Up: up, Down: down, Left: left, Right: right, Fire: fire,
	})
}

// Service drains every event queued since the last call and applies it to
// the chips. It must be called from the same goroutine that steps the
// machine; it is the single consumer side of the SPSC queue.
func (inp *Input) Service() {
	inp.owner.AssertMainGoroutine()
	for {
		select {
		case ev := <-inp.pushed:
			inp.apply(ev)
		default:
			return
		}
	}
}

func (inp *Input) apply(ev Event) {
	switch ev.Kind {
	case KindKey:
		inp.keyboard.SetKey(ev.Keycode, ev.Pressed)
	case KindBreakKey:
		inp.keyboard.SetBreakKey(ev.Pressed)
	case KindConsole:
		inp.console.SetConsole(ev.Start, ev.Select, ev.Option)
	case KindJoystick:
		inp.joystick.SetJoystick(ev.Port, ev.Up, ev.Down, ev.Left, ev.Right)
		inp.console.SetTrigger(ev.Port, ev.Fire)
	}
}
