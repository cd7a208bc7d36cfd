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

package pokey_test

import (
	"path/filepath"
	"testing"

	"github.com/atari800core/emu/hardware/pokey"
	"github.com/atari800core/emu/hardware/pokey/pokeytest"
	"github.com/atari800core/emu/test"
)

const (
	regIRQEN  = 0x0e
	regKBCODE = 0x09
	regIRQST  = 0x0e
	regAUDCTL = 0x08
	regRANDOM = 0x0a
)

// S6 "POKEY keyboard IRQ": IRQEN bit 6 enabled, a key pressed latches KBCODE
// and clears IRQST bit 6 (active low), and IRQPending reports true.
func TestKeyboardIRQ(t *testing.T) {
	p := pokey.NewPOKEY(44100)
	p.WriteRegister(regIRQEN, 0x40)

	p.SetKey(0x3f, true)

	test.ExpectEquality(t, p.ReadRegister(regKBCODE), uint8(0x3f))
	test.ExpectEquality(t, p.ReadRegister(regIRQST)&0x40, uint8(0))
	test.ExpectEquality(t, p.IRQPending(), true)
}

// releasing the key does not re-assert the already-serviced IRQ.
func TestKeyReleaseDoesNotReassertIRQ(t *testing.T) {
	p := pokey.NewPOKEY(44100)
	p.WriteRegister(regIRQEN, 0x40)
	p.SetKey(0x3f, true)

	// the OS acknowledges by writing IRQEN with the keyboard bit cleared.
	p.WriteRegister(regIRQEN, 0x00)
	test.ExpectEquality(t, p.ReadRegister(regIRQST)&0x40, uint8(0x40))

	p.SetKey(0x3f, false)
	test.ExpectEquality(t, p.IRQPending(), false)
}

// writing IRQEN acknowledges any source whose enable bit has just been
// cleared, per the chip's documented semantics.
func TestIRQENWriteAcknowledgesClearedSources(t *testing.T) {
	p := pokey.NewPOKEY(44100)
	p.WriteRegister(regIRQEN, 0x40)
	p.SetKey(0x3f, true)
	test.ExpectEquality(t, p.IRQPending(), true)

	p.WriteRegister(regIRQEN, 0x00)
	test.ExpectEquality(t, p.ReadRegister(regIRQST), uint8(0xff))
	test.ExpectEquality(t, p.IRQPending(), false)
}

// the 9-bit poly selected via AUDCTL returns to its initial RANDOM value
// after exactly 511 ticks, one short of 2^9 since the all-zero state is
// excluded from the maximal-length cycle.
func TestPoly9RoundTrip(t *testing.T) {
	p := pokey.NewPOKEY(44100)
	p.WriteRegister(regAUDCTL, 0x80) // select the 9-bit poly

	initial := p.ReadRegister(regRANDOM)
	for i := 0; i < 511; i++ {
		p.Tick()
	}
	test.ExpectEquality(t, p.ReadRegister(regRANDOM), initial)
}

// the 17-bit poly (the default when AUDCTL's poly9 bit is clear) returns to
// its initial RANDOM value after exactly 131071 ticks.
func TestPoly17RoundTrip(t *testing.T) {
	p := pokey.NewPOKEY(44100)

	initial := p.ReadRegister(regRANDOM)
	for i := 0; i < 131071; i++ {
		p.Tick()
	}
	test.ExpectEquality(t, p.ReadRegister(regRANDOM), initial)
}

// Tick must run the polynomial counters at full main-clock speed,
// independent of AppendSamples' sample-rate-granularity synthesis.
func TestTickAdvancesIndependentlyOfAppendSamples(t *testing.T) {
	p := pokey.NewPOKEY(44100)
	before := p.ReadRegister(regRANDOM)

	p.Tick()
	after := p.ReadRegister(regRANDOM)

	test.ExpectInequality(t, before, after)
}

// AppendSamples' output is stable frame to frame for a fixed channel
// configuration, checked by round-tripping it through a WAV golden file.
func TestAppendSamplesIsStableAcrossRuns(t *testing.T) {
	render := func() []int16 {
		p := pokey.NewPOKEY(44100)
		p.WriteRegister(0x00, 0xa0)
		p.WriteRegister(0x01, 0xa0)
		var buf []int16
		for i := 0; i < 100; i++ {
			buf = p.AppendSamples(buf, 44100/60)
		}
		return buf
	}

	path := filepath.Join(t.TempDir(), "channel1.wav")
	test.ExpectSuccess(t, pokeytest.WriteGolden(path, render(), 44100))
	test.ExpectSuccess(t, pokeytest.Compare(path, render(), 44100))
}
