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

package gtia_test

import (
	"testing"

	"github.com/atari800core/emu/hardware/gtia"
	"github.com/atari800core/emu/test"
)

// Collision registers are monotonically non-decreasing between
// consecutive HITCLR writes.
func TestCollisionsMonotonicUntilHITCLR(t *testing.T) {
	g := gtia.NewGTIA(true)

	before := g.ReadRegister(0x04) // P0PF
	g.RecordPlayerToPlayfield(0, 1)
	after := g.ReadRegister(0x04)
	test.ExpectEquality(t, after >= before, true)

	g.RecordPlayerToPlayfield(0, 2)
	afterAgain := g.ReadRegister(0x04)
	test.ExpectEquality(t, afterAgain >= after, true)

	g.WriteRegister(0x1e, 0) // HITCLR
	test.ExpectEquality(t, g.ReadRegister(0x04), uint8(0))
}

func TestConsoleAndTriggerActiveLow(t *testing.T) {
	g := gtia.NewGTIA(true)

	// nothing pressed: all active-low bits set.
	test.ExpectEquality(t, g.ReadRegister(0x1f), uint8(0x07))

	g.SetConsole(true, false, false)
	test.ExpectEquality(t, g.ReadRegister(0x1f), uint8(0x06))

	g.SetTrigger(0, true)
	test.ExpectEquality(t, g.ReadRegister(0x10)&0x01, uint8(0))
}

// Last write wins.
func TestLastWriteWins(t *testing.T) {
	g := gtia.NewGTIA(true)
	g.WriteRegister(0x16, 0x11) // COLPF0
	g.WriteRegister(0x16, 0x22)
	g.WriteRegister(0x16, 0x33)
	test.ExpectEquality(t, g.ColorPF[0], uint8(0x33))
}
