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

// Package memorymap defines the address ranges of the machine's 64KiB
// address space and the region each one decodes to.
package memorymap

// Region identifies which part of the system a given address decodes to.
type Region int

const (
	RegionRAM Region = iota
	RegionSelfTest
	RegionBasic
	RegionOS
	RegionGTIA
	RegionOpenBus
	RegionPOKEY
	RegionPIA
	RegionANTIC
)

const (
	RAMTop        = 0x4fff
	SelfTestBase  = 0x5000
	SelfTestTop   = 0x57ff
	BasicBase     = 0xa000
	BasicTop      = 0xbfff
	OSLowBase     = 0xc000
	OSLowTop      = 0xcfff
	GTIABase      = 0xd000
	GTIATop       = 0xd0ff
	OpenBus1Base  = 0xd100
	OpenBus1Top   = 0xd1ff
	POKEYBase     = 0xd200
	POKEYTop      = 0xd2ff
	PIABase       = 0xd300
	PIATop        = 0xd3ff
	ANTICBase     = 0xd400
	ANTICTop      = 0xd4ff
	OpenBus2Base  = 0xd500
	OpenBus2Top   = 0xd7ff
	OSHighBase    = 0xd800
	OSHighTop     = 0xffff

	OSROMSize    = 0x4000 // 16KiB
	BasicROMSize = 0x2000 // 8KiB

	// SelfTestROMOffset is the offset into the OS ROM image that the
	// self-test window exposes ($D000, the address the chip registers
	// occupy once the register window takes priority over this part of
	// the ROM image).
	SelfTestROMOffset = 0x1000

	OpenBusValue = 0xff
)

// Decode returns the Region that addr falls in.
func Decode(addr uint16) Region {
	switch {
	case addr <= RAMTop:
		return RegionRAM
	case addr >= SelfTestBase && addr <= SelfTestTop:
		return RegionSelfTest
	case addr > SelfTestTop && addr < BasicBase:
		return RegionRAM
	case addr >= BasicBase && addr <= BasicTop:
		return RegionBasic
	case addr >= OSLowBase && addr <= OSLowTop:
		return RegionOS
	case addr >= GTIABase && addr <= GTIATop:
		return RegionGTIA
	case addr >= OpenBus1Base && addr <= OpenBus1Top:
		return RegionOpenBus
	case addr >= POKEYBase && addr <= POKEYTop:
		return RegionPOKEY
	case addr >= PIABase && addr <= PIATop:
		return RegionPIA
	case addr >= ANTICBase && addr <= ANTICTop:
		return RegionANTIC
	case addr >= OpenBus2Base && addr <= OpenBus2Top:
		return RegionOpenBus
	case addr >= OSHighBase:
		return RegionOS
	}
	return RegionRAM
}
