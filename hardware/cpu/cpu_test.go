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

package cpu_test

import (
	"testing"

	"github.com/atari800core/emu/hardware/cpu"
	"github.com/atari800core/emu/test"
)

// flatRAM is the narrowest possible bus.CPUBus: 64KiB of plain RAM, no
// banking, no chip registers. Good enough to exercise the 6502 core in
// isolation from the rest of the machine.
type flatRAM [0x10000]byte

func (r *flatRAM) Read(addr uint16) (uint8, error)  { return r[addr], nil }
func (r *flatRAM) Write(addr uint16, v uint8) error { r[addr] = v; return nil }

func newCPU(program map[uint16]uint8, resetVector uint16) (*cpu.CPU, *flatRAM) {
	ram := &flatRAM{}
	ram[0xfffc] = uint8(resetVector)
	ram[0xfffd] = uint8(resetVector >> 8)
	for addr, v := range program {
		ram[addr] = v
	}
	c := cpu.NewCPU(ram)
	c.Reset()
	return c, ram
}

// S1 "BCD ADC": A = $45, set D, C=0; ADC #$38 -> A = $83, C=0, Z=0, N=0, 2 cycles.
func TestBCDADC(t *testing.T) {
	c, _ := newCPU(map[uint16]uint8{0x0200: 0x69, 0x0201: 0x38}, 0x0200)
	c.A = 0x45
	c.SR |= cpu.FlagD
	c.SR &^= cpu.FlagC

	cycles := c.Step()

	test.ExpectEquality(t, c.A, uint8(0x83))
	test.ExpectEquality(t, c.SR&cpu.FlagC, uint8(0))
	test.ExpectEquality(t, c.SR&cpu.FlagZ, uint8(0))
	test.ExpectEquality(t, c.SR&cpu.FlagN, uint8(0))
	test.ExpectEquality(t, cycles, 2)
}

// S2 "NMI dispatch": OS vector $FFFA/$FFFB = $40 $50; raise NMI; 3 pushes, I
// set, PC = $5040, 7 cycles.
func TestNMIDispatch(t *testing.T) {
	c, ram := newCPU(map[uint16]uint8{0xfffa: 0x40, 0xfffb: 0x50}, 0x0200)
	spBefore := c.SP

	c.RaiseNMI()
	cycles := c.Step()

	test.ExpectEquality(t, cycles, 7)
	test.ExpectEquality(t, c.PC, uint16(0x5040))
	test.ExpectEquality(t, c.SR&cpu.FlagI, cpu.FlagI)
	test.ExpectEquality(t, int(spBefore)-int(c.SP), 3)
	_ = ram
}

// PHA+PLA round trip: A unchanged, SP/flags restored, 3+4 cycles consumed.
func TestPHAPLARoundTrip(t *testing.T) {
	c, _ := newCPU(map[uint16]uint8{0x0200: 0x48, 0x0201: 0x68}, 0x0200)
	c.A = 0x7e
	spBefore := c.SP

	cycles := c.Step()
	test.ExpectEquality(t, cycles, 3)

	cycles = c.Step()
	test.ExpectEquality(t, cycles, 4)

	test.ExpectEquality(t, c.A, uint8(0x7e))
	test.ExpectEquality(t, c.SP, spBefore)
}
