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

package instructions

import "fmt"

// Stability classifies how faithfully an undocumented opcode's behaviour is
// modelled. Stable opcodes (the ones listed in the "stable
// illegal subset") behave the same way on every NMOS 6502; everything else
// is emulated as a NOP, with the byte length and cycle count given in its
// table entry.
type Stability int

const (
	Stable Stability = iota
	Unstable
)

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Effect         Category
	Undocumented   bool
	Stability      Stability
	Valid          bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s effect=%s]", defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if the instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

func doc(op uint8, o Operator, bytes, cycles int, mode AddressingMode, effect Category) Definition {
	return Definition{OpCode: op, Operator: o, Bytes: bytes, Cycles: cycles, AddressingMode: mode, Effect: effect, Valid: true}
}

func illegal(op uint8, o Operator, bytes, cycles int, mode AddressingMode, effect Category) Definition {
	return Definition{OpCode: op, Operator: o, Bytes: bytes, Cycles: cycles, AddressingMode: mode, Effect: effect, Undocumented: true, Stability: Stable, Valid: true}
}

func nop(op uint8, bytes, cycles int, mode AddressingMode) Definition {
	return Definition{OpCode: op, Operator: NOP, Bytes: bytes, Cycles: cycles, AddressingMode: mode, Effect: Read, Undocumented: true, Stability: Unstable, Valid: true}
}

// Definitions is the full 256 entry opcode table, indexed by opcode value.
// Unstable undocumented opcodes (KIL, AHX, TAS, LAS, SHX, SHY, XAA and the
// various unstable NOPs) are folded into plain NOPs of the documented
// immediate/zero-page/absolute shape they mimic, rather than modelling their
// true chaotic behaviour. Any opcode slot this table leaves unpopulated has
// Valid == false and is treated by the CPU as an unknown instruction (halt).
var Definitions [256]Definition

func init() {
	table := []Definition{
		// ADC
		doc(0x69, ADC, 2, 2, Immediate, Read), doc(0x65, ADC, 2, 3, ZeroPage, Read),
		doc(0x75, ADC, 2, 4, ZeroPageX, Read), doc(0x6d, ADC, 3, 4, Absolute, Read),
		doc(0x7d, ADC, 3, 4, AbsoluteX, Read), doc(0x79, ADC, 3, 4, AbsoluteY, Read),
		doc(0x61, ADC, 2, 6, PreIndexed, Read), doc(0x71, ADC, 2, 5, PostIndexed, Read),

		// AND
		doc(0x29, AND, 2, 2, Immediate, Read), doc(0x25, AND, 2, 3, ZeroPage, Read),
		doc(0x35, AND, 2, 4, ZeroPageX, Read), doc(0x2d, AND, 3, 4, Absolute, Read),
		doc(0x3d, AND, 3, 4, AbsoluteX, Read), doc(0x39, AND, 3, 4, AbsoluteY, Read),
		doc(0x21, AND, 2, 6, PreIndexed, Read), doc(0x31, AND, 2, 5, PostIndexed, Read),

		// ASL
		doc(0x0a, ASL, 1, 2, Accumulator, Modify), doc(0x06, ASL, 2, 5, ZeroPage, Modify),
		doc(0x16, ASL, 2, 6, ZeroPageX, Modify), doc(0x0e, ASL, 3, 6, Absolute, Modify),
		doc(0x1e, ASL, 3, 7, AbsoluteX, Modify),

		// branches
		doc(0x90, BCC, 2, 2, Relative, Flow), doc(0xb0, BCS, 2, 2, Relative, Flow),
		doc(0xf0, BEQ, 2, 2, Relative, Flow), doc(0x30, BMI, 2, 2, Relative, Flow),
		doc(0xd0, BNE, 2, 2, Relative, Flow), doc(0x10, BPL, 2, 2, Relative, Flow),
		doc(0x50, BVC, 2, 2, Relative, Flow), doc(0x70, BVS, 2, 2, Relative, Flow),

		// BIT
		doc(0x24, BIT, 2, 3, ZeroPage, Read), doc(0x2c, BIT, 3, 4, Absolute, Read),

		// BRK
		doc(0x00, BRK, 1, 7, Implied, Interrupt),

		// clear/set flags
		doc(0x18, CLC, 1, 2, Implied, Read), doc(0xd8, CLD, 1, 2, Implied, Read),
		doc(0x58, CLI, 1, 2, Implied, Read), doc(0xb8, CLV, 1, 2, Implied, Read),
		doc(0x38, SEC, 1, 2, Implied, Read), doc(0xf8, SED, 1, 2, Implied, Read),
		doc(0x78, SEI, 1, 2, Implied, Read),

		// CMP
		doc(0xc9, CMP, 2, 2, Immediate, Read), doc(0xc5, CMP, 2, 3, ZeroPage, Read),
		doc(0xd5, CMP, 2, 4, ZeroPageX, Read), doc(0xcd, CMP, 3, 4, Absolute, Read),
		doc(0xdd, CMP, 3, 4, AbsoluteX, Read), doc(0xd9, CMP, 3, 4, AbsoluteY, Read),
		doc(0xc1, CMP, 2, 6, PreIndexed, Read), doc(0xd1, CMP, 2, 5, PostIndexed, Read),

		// CPX / CPY
		doc(0xe0, CPX, 2, 2, Immediate, Read), doc(0xe4, CPX, 2, 3, ZeroPage, Read),
		doc(0xec, CPX, 3, 4, Absolute, Read),
		doc(0xc0, CPY, 2, 2, Immediate, Read), doc(0xc4, CPY, 2, 3, ZeroPage, Read),
		doc(0xcc, CPY, 3, 4, Absolute, Read),

		// DEC / DEX / DEY
		doc(0xc6, DEC, 2, 5, ZeroPage, Modify), doc(0xd6, DEC, 2, 6, ZeroPageX, Modify),
		doc(0xce, DEC, 3, 6, Absolute, Modify), doc(0xde, DEC, 3, 7, AbsoluteX, Modify),
		doc(0xca, DEX, 1, 2, Implied, Read), doc(0x88, DEY, 1, 2, Implied, Read),

		// EOR
		doc(0x49, EOR, 2, 2, Immediate, Read), doc(0x45, EOR, 2, 3, ZeroPage, Read),
		doc(0x55, EOR, 2, 4, ZeroPageX, Read), doc(0x4d, EOR, 3, 4, Absolute, Read),
		doc(0x5d, EOR, 3, 4, AbsoluteX, Read), doc(0x59, EOR, 3, 4, AbsoluteY, Read),
		doc(0x41, EOR, 2, 6, PreIndexed, Read), doc(0x51, EOR, 2, 5, PostIndexed, Read),

		// INC / INX / INY
		doc(0xe6, INC, 2, 5, ZeroPage, Modify), doc(0xf6, INC, 2, 6, ZeroPageX, Modify),
		doc(0xee, INC, 3, 6, Absolute, Modify), doc(0xfe, INC, 3, 7, AbsoluteX, Modify),
		doc(0xe8, INX, 1, 2, Implied, Read), doc(0xc8, INY, 1, 2, Implied, Read),

		// JMP / JSR / RTS / RTI
		doc(0x4c, JMP, 3, 3, Absolute, Flow), doc(0x6c, JMP, 3, 5, Indirect, Flow),
		doc(0x20, JSR, 3, 6, Absolute, Subroutine), doc(0x60, RTS, 1, 6, Implied, Subroutine),
		doc(0x40, RTI, 1, 6, Implied, Interrupt),

		// LDA / LDX / LDY
		doc(0xa9, LDA, 2, 2, Immediate, Read), doc(0xa5, LDA, 2, 3, ZeroPage, Read),
		doc(0xb5, LDA, 2, 4, ZeroPageX, Read), doc(0xad, LDA, 3, 4, Absolute, Read),
		doc(0xbd, LDA, 3, 4, AbsoluteX, Read), doc(0xb9, LDA, 3, 4, AbsoluteY, Read),
		doc(0xa1, LDA, 2, 6, PreIndexed, Read), doc(0xb1, LDA, 2, 5, PostIndexed, Read),
		doc(0xa2, LDX, 2, 2, Immediate, Read), doc(0xa6, LDX, 2, 3, ZeroPage, Read),
		doc(0xb6, LDX, 2, 4, ZeroPageY, Read), doc(0xae, LDX, 3, 4, Absolute, Read),
		doc(0xbe, LDX, 3, 4, AbsoluteY, Read),
		doc(0xa0, LDY, 2, 2, Immediate, Read), doc(0xa4, LDY, 2, 3, ZeroPage, Read),
		doc(0xb4, LDY, 2, 4, ZeroPageX, Read), doc(0xac, LDY, 3, 4, Absolute, Read),
		doc(0xbc, LDY, 3, 4, AbsoluteX, Read),

		// LSR
		doc(0x4a, LSR, 1, 2, Accumulator, Modify), doc(0x46, LSR, 2, 5, ZeroPage, Modify),
		doc(0x56, LSR, 2, 6, ZeroPageX, Modify), doc(0x4e, LSR, 3, 6, Absolute, Modify),
		doc(0x5e, LSR, 3, 7, AbsoluteX, Modify),

		// NOP
		doc(0xea, NOP, 1, 2, Implied, Read),

		// ORA
		doc(0x09, ORA, 2, 2, Immediate, Read), doc(0x05, ORA, 2, 3, ZeroPage, Read),
		doc(0x15, ORA, 2, 4, ZeroPageX, Read), doc(0x0d, ORA, 3, 4, Absolute, Read),
		doc(0x1d, ORA, 3, 4, AbsoluteX, Read), doc(0x19, ORA, 3, 4, AbsoluteY, Read),
		doc(0x01, ORA, 2, 6, PreIndexed, Read), doc(0x11, ORA, 2, 5, PostIndexed, Read),

		// stack
		doc(0x48, PHA, 1, 3, Implied, Write), doc(0x08, PHP, 1, 3, Implied, Write),
		doc(0x68, PLA, 1, 4, Implied, Read), doc(0x28, PLP, 1, 4, Implied, Read),

		// ROL / ROR
		doc(0x2a, ROL, 1, 2, Accumulator, Modify), doc(0x26, ROL, 2, 5, ZeroPage, Modify),
		doc(0x36, ROL, 2, 6, ZeroPageX, Modify), doc(0x2e, ROL, 3, 6, Absolute, Modify),
		doc(0x3e, ROL, 3, 7, AbsoluteX, Modify),
		doc(0x6a, ROR, 1, 2, Accumulator, Modify), doc(0x66, ROR, 2, 5, ZeroPage, Modify),
		doc(0x76, ROR, 2, 6, ZeroPageX, Modify), doc(0x6e, ROR, 3, 6, Absolute, Modify),
		doc(0x7e, ROR, 3, 7, AbsoluteX, Modify),

		// SBC
		doc(0xe9, SBC, 2, 2, Immediate, Read), doc(0xe5, SBC, 2, 3, ZeroPage, Read),
		doc(0xf5, SBC, 2, 4, ZeroPageX, Read), doc(0xed, SBC, 3, 4, Absolute, Read),
		doc(0xfd, SBC, 3, 4, AbsoluteX, Read), doc(0xf9, SBC, 3, 4, AbsoluteY, Read),
		doc(0xe1, SBC, 2, 6, PreIndexed, Read), doc(0xf1, SBC, 2, 5, PostIndexed, Read),

		// STA / STX / STY
		doc(0x85, STA, 2, 3, ZeroPage, Write), doc(0x95, STA, 2, 4, ZeroPageX, Write),
		doc(0x8d, STA, 3, 4, Absolute, Write), doc(0x9d, STA, 3, 5, AbsoluteX, Write),
		doc(0x99, STA, 3, 5, AbsoluteY, Write), doc(0x81, STA, 2, 6, PreIndexed, Write),
		doc(0x91, STA, 2, 6, PostIndexed, Write),
		doc(0x86, STX, 2, 3, ZeroPage, Write), doc(0x96, STX, 2, 4, ZeroPageY, Write),
		doc(0x8e, STX, 3, 4, Absolute, Write),
		doc(0x84, STY, 2, 3, ZeroPage, Write), doc(0x94, STY, 2, 4, ZeroPageX, Write),
		doc(0x8c, STY, 3, 4, Absolute, Write),

		// transfers
		doc(0xaa, TAX, 1, 2, Implied, Read), doc(0xa8, TAY, 1, 2, Implied, Read),
		doc(0xba, TSX, 1, 2, Implied, Read), doc(0x8a, TXA, 1, 2, Implied, Read),
		doc(0x9a, TXS, 1, 2, Implied, Read), doc(0x98, TYA, 1, 2, Implied, Read),

		// stable illegal subset
		illegal(0xa7, LAX, 2, 3, ZeroPage, Read), illegal(0xb7, LAX, 2, 4, ZeroPageY, Read),
		illegal(0xaf, LAX, 3, 4, Absolute, Read), illegal(0xbf, LAX, 3, 4, AbsoluteY, Read),
		illegal(0xa3, LAX, 2, 6, PreIndexed, Read), illegal(0xb3, LAX, 2, 5, PostIndexed, Read),

		illegal(0x87, SAX, 2, 3, ZeroPage, Write), illegal(0x97, SAX, 2, 4, ZeroPageY, Write),
		illegal(0x8f, SAX, 3, 4, Absolute, Write), illegal(0x83, SAX, 2, 6, PreIndexed, Write),

		illegal(0xc7, DCP, 2, 5, ZeroPage, Modify), illegal(0xd7, DCP, 2, 6, ZeroPageX, Modify),
		illegal(0xcf, DCP, 3, 6, Absolute, Modify), illegal(0xdf, DCP, 3, 7, AbsoluteX, Modify),
		illegal(0xdb, DCP, 3, 7, AbsoluteY, Modify), illegal(0xc3, DCP, 2, 8, PreIndexed, Modify),
		illegal(0xd3, DCP, 2, 8, PostIndexed, Modify),

		illegal(0xe7, ISC, 2, 5, ZeroPage, Modify), illegal(0xf7, ISC, 2, 6, ZeroPageX, Modify),
		illegal(0xef, ISC, 3, 6, Absolute, Modify), illegal(0xff, ISC, 3, 7, AbsoluteX, Modify),
		illegal(0xfb, ISC, 3, 7, AbsoluteY, Modify), illegal(0xe3, ISC, 2, 8, PreIndexed, Modify),
		illegal(0xf3, ISC, 2, 8, PostIndexed, Modify),

		illegal(0x07, SLO, 2, 5, ZeroPage, Modify), illegal(0x17, SLO, 2, 6, ZeroPageX, Modify),
		illegal(0x0f, SLO, 3, 6, Absolute, Modify), illegal(0x1f, SLO, 3, 7, AbsoluteX, Modify),
		illegal(0x1b, SLO, 3, 7, AbsoluteY, Modify), illegal(0x03, SLO, 2, 8, PreIndexed, Modify),
		illegal(0x13, SLO, 2, 8, PostIndexed, Modify),

		illegal(0x27, RLA, 2, 5, ZeroPage, Modify), illegal(0x37, RLA, 2, 6, ZeroPageX, Modify),
		illegal(0x2f, RLA, 3, 6, Absolute, Modify), illegal(0x3f, RLA, 3, 7, AbsoluteX, Modify),
		illegal(0x3b, RLA, 3, 7, AbsoluteY, Modify), illegal(0x23, RLA, 2, 8, PreIndexed, Modify),
		illegal(0x33, RLA, 2, 8, PostIndexed, Modify),

		illegal(0x47, SRE, 2, 5, ZeroPage, Modify), illegal(0x57, SRE, 2, 6, ZeroPageX, Modify),
		illegal(0x4f, SRE, 3, 6, Absolute, Modify), illegal(0x5f, SRE, 3, 7, AbsoluteX, Modify),
		illegal(0x5b, SRE, 3, 7, AbsoluteY, Modify), illegal(0x43, SRE, 2, 8, PreIndexed, Modify),
		illegal(0x53, SRE, 2, 8, PostIndexed, Modify),

		illegal(0x67, RRA, 2, 5, ZeroPage, Modify), illegal(0x77, RRA, 2, 6, ZeroPageX, Modify),
		illegal(0x6f, RRA, 3, 6, Absolute, Modify), illegal(0x7f, RRA, 3, 7, AbsoluteX, Modify),
		illegal(0x7b, RRA, 3, 7, AbsoluteY, Modify), illegal(0x63, RRA, 2, 8, PreIndexed, Modify),
		illegal(0x73, RRA, 2, 8, PostIndexed, Modify),

		illegal(0x0b, ANC, 2, 2, Immediate, Read), illegal(0x2b, ANC, 2, 2, Immediate, Read),
		illegal(0x4b, ASR, 2, 2, Immediate, Read), illegal(0x6b, ARR, 2, 2, Immediate, Read),
		illegal(0xcb, AXS, 2, 2, Immediate, Read),
		illegal(0xeb, SBC, 2, 2, Immediate, Read),

		// unstable/undocumented opcodes reduced to NOPs of plausible shape
		nop(0x1a, 1, 2, Implied), nop(0x3a, 1, 2, Implied), nop(0x5a, 1, 2, Implied),
		nop(0x7a, 1, 2, Implied), nop(0xda, 1, 2, Implied), nop(0xfa, 1, 2, Implied),
		nop(0x80, 2, 2, Immediate), nop(0x82, 2, 2, Immediate), nop(0x89, 2, 2, Immediate),
		nop(0xc2, 2, 2, Immediate), nop(0xe2, 2, 2, Immediate),
		nop(0x04, 2, 3, ZeroPage), nop(0x44, 2, 3, ZeroPage), nop(0x64, 2, 3, ZeroPage),
		nop(0x14, 2, 4, ZeroPageX), nop(0x34, 2, 4, ZeroPageX), nop(0x54, 2, 4, ZeroPageX),
		nop(0x74, 2, 4, ZeroPageX), nop(0xd4, 2, 4, ZeroPageX), nop(0xf4, 2, 4, ZeroPageX),
		nop(0x0c, 3, 4, Absolute),
		nop(0x1c, 3, 4, AbsoluteX), nop(0x3c, 3, 4, AbsoluteX), nop(0x5c, 3, 4, AbsoluteX),
		nop(0x7c, 3, 4, AbsoluteX), nop(0xdc, 3, 4, AbsoluteX), nop(0xfc, 3, 4, AbsoluteX),
		nop(0x02, 1, 2, Implied), nop(0x12, 1, 2, Implied), nop(0x22, 1, 2, Implied),
		nop(0x32, 1, 2, Implied), nop(0x42, 1, 2, Implied), nop(0x52, 1, 2, Implied),
		nop(0x62, 1, 2, Implied), nop(0x72, 1, 2, Implied), nop(0x92, 1, 2, Implied),
		nop(0xb2, 1, 2, Implied), nop(0xd2, 1, 2, Implied), nop(0xf2, 1, 2, Implied),
		nop(0x9b, 1, 2, Implied), nop(0x9c, 1, 2, Implied), nop(0x9e, 1, 2, Implied),
		nop(0x9f, 1, 2, Implied), nop(0xab, 2, 2, Immediate), nop(0xbb, 1, 2, Implied),
		nop(0x8b, 2, 2, Immediate), nop(0x93, 1, 2, Implied),
	}

	for _, d := range table {
		Definitions[d.OpCode] = d
	}
}

// Lookup returns the definition for opcode. The Valid field reports whether
// the slot was populated by this table.
func Lookup(opcode uint8) Definition {
	return Definitions[opcode]
}
