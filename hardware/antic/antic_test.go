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

package antic_test

import (
	"testing"

	"github.com/atari800core/emu/hardware/antic"
	"github.com/atari800core/emu/hardware/gtia"
	"github.com/atari800core/emu/test"
)

// fakeRAM is the narrowest possible antic.RAM: a flat 64KiB array, good
// enough to host a display list and its screen data for these tests.
type fakeRAM struct {
	mem [0x10000]byte
}

func (r *fakeRAM) Peek(addr uint16) uint8 { return r.mem[addr] }

// S3 "WSYNC halt": a write to WSYNC halts the CPU's cycle budget for the
// rest of the scanline until ReleaseWSYNC is called at scanline end.
func TestWSYNCHalt(t *testing.T) {
	ram := &fakeRAM{}
	g := gtia.NewGTIA(true)
	a := antic.NewANTIC(ram, g, true)

	test.ExpectEquality(t, a.WSYNCHalted(), false)

	a.WriteRegister(0x0a, 0x00) // WSYNC
	test.ExpectEquality(t, a.WSYNCHalted(), true)

	a.ReleaseWSYNC()
	test.ExpectEquality(t, a.WSYNCHalted(), false)
}

// S4 "display-list walk": three 8-line blanks, a mode-2 row loading memscan
// via LMS, three more mode-2 rows, then a jump-and-wait-for-VBI back to the
// top of the list.
func TestDisplayListWalk(t *testing.T) {
	ram := &fakeRAM{}
	dl := []uint8{0x70, 0x70, 0x70, 0x42, 0x40, 0x06, 0x02, 0x02, 0x02, 0x41, 0x00, 0x06}
	copy(ram.mem[0x0600:], dl)

	g := gtia.NewGTIA(true)
	g.WriteRegister(0x1a, 0x00) // COLBK
	g.WriteRegister(0x16, 0x11) // COLPF0

	a := antic.NewANTIC(ram, g, true)
	a.WriteRegister(0x00, 0x20)          // DMACTL: display list DMA enabled
	a.WriteRegister(0x02, 0x00)          // DLISTL
	a.WriteRegister(0x03, 0x06)          // DLISTH -> DLIST = $0600
	a.WriteRegister(0x0e, antic.NMIVBI) // NMIEN: enable VBI

	blankRows, modeRows := 0, 0
	for s := 0; s < 65; s++ {
		a.RenderScanline()
		if a.Scanline[0] == 0x11 {
			modeRows++
		} else {
			blankRows++
		}
		a.AdvanceScanline()
	}

	// 8 lines of vertical blank, 24 lines of display-list blank, and the
	// single blank line rendered for the JVB instruction itself.
	test.ExpectEquality(t, blankRows, 8+24+1)
	// one LMS-loaded mode-2 row plus three more, 8 scanlines each.
	test.ExpectEquality(t, modeRows, 4*8)

	test.ExpectEquality(t, a.CheckPendingNMI(), true)
	test.ExpectEquality(t, a.ReadRegister(0x0f)&antic.NMIVBI, uint8(antic.NMIVBI))
}

// the edge latch delivers exactly one CheckPendingNMI rising edge per NMIST
// assertion, even though NMIST itself stays asserted until NMIRES is
// written.
func TestNMIEdgeNotLevel(t *testing.T) {
	ram := &fakeRAM{}
	g := gtia.NewGTIA(true)
	a := antic.NewANTIC(ram, g, true)
	a.WriteRegister(0x0e, antic.NMIVBI) // NMIEN

	for i := 0; i < int(antic.PALScanlines); i++ {
		a.AdvanceScanline()
	}

	test.ExpectEquality(t, a.CheckPendingNMI(), true)
	test.ExpectEquality(t, a.CheckPendingNMI(), false)
	test.ExpectEquality(t, a.ReadRegister(0x0f)&antic.NMIVBI, uint8(antic.NMIVBI))
}
