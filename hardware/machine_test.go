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

package hardware_test

import (
	"errors"
	"testing"

	"github.com/atari800core/emu/hardware"
	"github.com/atari800core/emu/hardware/memory/memorymap"
	"github.com/atari800core/emu/test"
)

// failingRenderer always rejects a presented frame, modelling a host sink
// that has fallen behind (a sink overflow).
type failingRenderer struct{}

func (failingRenderer) PresentBitmap(pixels []uint8) error { return errors.New("sink overflow") }
func (failingRenderer) PresentBorder(paletteIndex uint8) error { return nil }

// romImages builds a minimal OS ROM (a tight JMP-to-self loop at its base,
// so the CPU never halts or wanders into undefined opcodes) and an empty
// BASIC ROM, both of the correct size for memory.NewMemory.
func romImages() (os, basic []byte) {
	os = make([]byte, memorymap.OSROMSize)
	os[0x0000] = 0x4c // JMP $C000
	os[0x0001] = 0x00
	os[0x0002] = 0xc0
	os[0x3ffc] = 0x00 // reset vector -> $C000
	os[0x3ffd] = 0xc0

	basic = make([]byte, memorymap.BasicROMSize)
	return os, basic
}

// invariants 1 and 2: the scanline counter always stays within the frame,
// and no scanline consumes more than its cycle budget.
func TestScanlineCounterStaysInFrame(t *testing.T) {
	os, basic := romImages()
	at, err := hardware.NewAtari(os, basic, "PAL")
	test.ExpectSuccess(t, err)

	for i := 0; i < 400; i++ {
		at.RunScanline()
		scanline := at.ANTIC.CurrentScanline()
		test.ExpectEquality(t, scanline >= 0 && scanline < at.ANTIC.FrameScanlines(), true)
	}
}

func TestRunFrameAdvancesExactlyOneFrame(t *testing.T) {
	os, basic := romImages()
	at, err := hardware.NewAtari(os, basic, "PAL")
	test.ExpectSuccess(t, err)

	start := at.ANTIC.Frame()
	at.RunFrame()
	test.ExpectEquality(t, at.ANTIC.Frame(), start+1)
}

// A write to the PIA's port B data register, delivered through the bus
// exactly as the CPU would issue it, re-banks the $C000 window.
func TestPIABankingThroughBus(t *testing.T) {
	os, basic := romImages()
	at, err := hardware.NewAtari(os, basic, "PAL")
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, at.Mem.Peek(0xc000), uint8(0x4c)) // OS ROM visible

	at.Mem.Write(0xd303, 0x04) // PBCTL: select port B data register
	at.Mem.Write(0xd301, 0xff) // port B: bank out OS, BASIC and self-test

	test.ExpectInequality(t, at.Mem.Peek(0xc000), uint8(0x4c))
}

// Stop short-circuits frame end entirely: a mid-frame stop never even
// attempts to present the partial bitmap, so a sink that would otherwise
// always reject frames never sees one.
func TestStopDiscardsPartialFrame(t *testing.T) {
	os, basic := romImages()
	at, err := hardware.NewAtari(os, basic, "PAL")
	test.ExpectSuccess(t, err)
	at.TV.SetPixelRenderer(failingRenderer{})

	at.Stop = true
	for i := 0; i < at.ANTIC.FrameScanlines(); i++ {
		at.RunScanline()
	}
	test.ExpectEquality(t, at.TV.DroppedFrames(), 0)
}

func TestLoadBinarySetsPCToLoadAddr(t *testing.T) {
	os, basic := romImages()
	at, err := hardware.NewAtari(os, basic, "PAL")
	test.ExpectSuccess(t, err)

	at.LoadBinary([]byte{0xa9, 0x00}, 0x2000) // LDA #$00
	test.ExpectEquality(t, at.Mem.Peek(0x2000), uint8(0xa9))
	test.ExpectEquality(t, at.CPU.PC, uint16(0x2000))
}

// LoadXEX lands its segment in RAM and leaves PC at RUNAD, exercising the
// loader through the live CPU and memory rather than fakes.
func TestLoadXEXThroughLiveMachine(t *testing.T) {
	os, basic := romImages()
	at, err := hardware.NewAtari(os, basic, "PAL")
	test.ExpectSuccess(t, err)

	data := []byte{
		0xff, 0xff,
		0x00, 0x30, 0x01, 0x30, // segment $3000-$3001
		0xa9, 0x00, // LDA #$00
		0xe0, 0x02, 0xe1, 0x02, // segment $02e0-$02e1: RUNAD
		0x00, 0x30,
	}
	err = at.LoadXEX(data)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, at.Mem.Peek(0x3000), uint8(0xa9))
	test.ExpectEquality(t, at.CPU.PC, uint16(0x3000))
}
