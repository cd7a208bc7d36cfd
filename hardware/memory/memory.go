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

// Package memory implements the system bus: the address decoder that routes
// CPU reads and writes among RAM, the OS and BASIC ROMs, the self-test ROM
// window, and the four custom chips' register banks.
//
// The bus owns the machine's entire 64KiB address space. The chips never
// see RAM directly -- ANTIC is handed a narrow, non-mutating Peek-only view
// for its DMA reads, and the CPU only ever sees the bus through the
// bus.CPUBus interface, so neither chip needs to know how an address
// resolves to RAM, ROM, or a register bank.
package memory

import (
	"fmt"

	"github.com/atari800core/emu/assert"
	"github.com/atari800core/emu/curated"
	"github.com/atari800core/emu/hardware/memory/bus"
	"github.com/atari800core/emu/hardware/memory/memorymap"
)

// RAMSize is the full 64KiB address space, all of which is backed by RAM
// unless a ROM or register window currently overlays it.
const RAMSize = 0x10000

// ErrInvalidROM is returned by NewMemory when a supplied ROM image is the
// wrong size or its reset vector falls outside $C000-$FFFF.
var ErrInvalidROM = curated.Errorf("memory: invalid ROM image")

// Memory is the system bus.
type Memory struct {
	ram [RAMSize]byte

	osROM    []byte
	basicROM []byte

	osVisible       bool
	basicVisible    bool
	selfTestVisible bool

	gtia  bus.ChipRegisters
	pokey bus.ChipRegisters
	pia   bus.ChipRegisters
	antic bus.ChipRegisters

	owner assert.MainGoroutine
}

// NewMemory is the preferred method of initialisation for the Memory type.
// osROM must be exactly 16KiB, basicROM exactly 8KiB, and the OS ROM's
// embedded reset vector (at ROM offset $3FFC/$3FFD) must point within
// $C000-$FFFF.
func NewMemory(osROM, basicROM []byte) (*Memory, error) {
	if len(osROM) != memorymap.OSROMSize {
		return nil, fmt.Errorf("%w: OS ROM is %d bytes, want %d", ErrInvalidROM, len(osROM), memorymap.OSROMSize)
	}
	if len(basicROM) != memorymap.BasicROMSize {
		return nil, fmt.Errorf("%w: BASIC ROM is %d bytes, want %d", ErrInvalidROM, len(basicROM), memorymap.BasicROMSize)
	}

	resetVector := uint16(osROM[0x3ffd])<<8 | uint16(osROM[0x3ffc])
	if resetVector < memorymap.OSLowBase {
		return nil, fmt.Errorf("%w: reset vector %#04x outside OS ROM range", ErrInvalidROM, resetVector)
	}

	m := &Memory{
		osROM:           osROM,
		basicROM:        basicROM,
		osVisible:       true,
		basicVisible:    false,
		selfTestVisible: false,
	}
	m.owner.Claim()

	return m, nil
}

// AttachChips wires the four custom chip register banks into the bus. Must
// be called before the bus is used.
func (m *Memory) AttachChips(gtia, pokey, pia, antic bus.ChipRegisters) {
	m.gtia = gtia
	m.pokey = pokey
	m.pia = pia
	m.antic = antic
}

// SetBanking updates which ROM windows are visible. Called by the PIA's
// OnPortBWrite callback so that every port B write re-evaluates banking
// atomically, as required by the address decode rules.
func (m *Memory) SetBanking(osVisible, basicVisible, selfTestVisible bool) {
	m.osVisible = osVisible
	m.basicVisible = basicVisible
	m.selfTestVisible = selfTestVisible
}

// Read implements bus.CPUBus.
func (m *Memory) Read(addr uint16) (uint8, error) {
	return m.Peek(addr), nil
}

// Peek implements bus.DebuggerBus and also serves as ANTIC's non-mutating
// DMA read path (antic.RAM).
func (m *Memory) Peek(addr uint16) uint8 {
	switch memorymap.Decode(addr) {
	case memorymap.RegionRAM:
		return m.ram[addr]

	case memorymap.RegionSelfTest:
		if m.selfTestVisible {
			off := memorymap.SelfTestROMOffset + int(addr-memorymap.SelfTestBase)
			return m.osROM[off]
		}
		return m.ram[addr]

	case memorymap.RegionBasic:
		if m.basicVisible {
			return m.basicROM[addr-memorymap.BasicBase]
		}
		return m.ram[addr]

	case memorymap.RegionOS:
		if m.osVisible {
			return m.osROM[int(addr)-memorymap.OSLowBase]
		}
		return m.ram[addr]

	case memorymap.RegionGTIA:
		if m.gtia == nil {
			return memorymap.OpenBusValue
		}
		return m.gtia.ReadRegister(uint8(addr))

	case memorymap.RegionPOKEY:
		if m.pokey == nil {
			return memorymap.OpenBusValue
		}
		return m.pokey.ReadRegister(uint8(addr))

	case memorymap.RegionPIA:
		if m.pia == nil {
			return memorymap.OpenBusValue
		}
		return m.pia.ReadRegister(uint8(addr))

	case memorymap.RegionANTIC:
		if m.antic == nil {
			return memorymap.OpenBusValue
		}
		return m.antic.ReadRegister(uint8(addr))

	case memorymap.RegionOpenBus:
		return memorymap.OpenBusValue
	}

	return memorymap.OpenBusValue
}

// Write implements bus.CPUBus. RAM always accepts the write, even when a
// ROM window is currently mapped over it ("write-under-ROM"), which the XL
// OS relies on for re-entry after banking itself out.
func (m *Memory) Write(addr uint16, data uint8) error {
	m.owner.AssertMainGoroutine()
	m.ram[addr] = data

	switch memorymap.Decode(addr) {
	case memorymap.RegionGTIA:
		if m.gtia != nil {
			m.gtia.WriteRegister(uint8(addr), data)
		}
	case memorymap.RegionPOKEY:
		if m.pokey != nil {
			m.pokey.WriteRegister(uint8(addr), data)
		}
	case memorymap.RegionPIA:
		if m.pia != nil {
			m.pia.WriteRegister(uint8(addr), data)
		}
	case memorymap.RegionANTIC:
		if m.antic != nil {
			m.antic.WriteRegister(uint8(addr), data)
		}
	}

	return nil
}

// Poke implements bus.DebuggerBus. Unlike Write, it never triggers chip
// side effects; it always lands in RAM, for debugger/tooling use.
func (m *Memory) Poke(addr uint16, value uint8) error {
	m.ram[addr] = value
	return nil
}

// LoadAt copies data into RAM starting at addr, without any side effects.
// Used by the cartridge loader for XEX/binary loads.
func (m *Memory) LoadAt(addr uint16, data []byte) {
	copy(m.ram[int(addr):], data)
}
