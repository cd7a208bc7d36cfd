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

// Package cpu implements the 6502 instruction set: decode and execution,
// the interrupt inputs (NMI/IRQ) and the narrow CPUBus contract the system
// bus must satisfy.
package cpu

import (
	"github.com/atari800core/emu/hardware/cpu/execution"
	"github.com/atari800core/emu/hardware/cpu/instructions"
	"github.com/atari800core/emu/hardware/memory/bus"
)

const (
	vectorNMI   = 0xfffa
	vectorReset = 0xfffc
	vectorIRQ   = 0xfffe

	stackBase = 0x0100
)

// CPU is the 6502 core. All memory access goes through the Mem field, which
// must be supplied at construction.
type CPU struct {
	Registers

	Mem bus.CPUBus

	halted bool

	nmiPending bool
	irqLine    bool

	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem bus.CPUBus) *CPU {
	return &CPU{Mem: mem}
}

// IsHalted reports whether the CPU has executed an unrecognised opcode and
// stopped.
func (c *CPU) IsHalted() bool {
	return c.halted
}

// Reset fetches the reset vector and sets the CPU to its post-reset state.
func (c *CPU) Reset() error {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xfd
	c.SR = FlagU | FlagI
	c.halted = false
	c.nmiPending = false
	c.irqLine = false

	lo, err := c.Mem.Read(vectorReset)
	if err != nil {
		return err
	}
	hi, err := c.Mem.Read(vectorReset + 1)
	if err != nil {
		return err
	}
	c.PC = uint16(hi)<<8 | uint16(lo)
	return nil
}

// RaiseNMI latches an edge-triggered non-maskable interrupt request, to be
// serviced at the next instruction boundary.
func (c *CPU) RaiseNMI() {
	c.nmiPending = true
}

// RaiseIRQ asserts the level-triggered interrupt request line. The caller
// (POKEY, via the system bus) is responsible for releasing it once its
// interrupt sources are acknowledged.
func (c *CPU) RaiseIRQ(asserted bool) {
	c.irqLine = asserted
}

func (c *CPU) read(addr uint16) uint8 {
	v, err := c.Mem.Read(addr)
	if err != nil {
		return 0xff
	}
	return v
}

func (c *CPU) write(addr uint16, v uint8) {
	_ = c.Mem.Write(addr, v)
}

func (c *CPU) push(v uint8) {
	c.write(stackBase+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pull() uint8 {
	c.SP++
	return c.read(stackBase + uint16(c.SP))
}

func (c *CPU) push16(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v))
}

func (c *CPU) pull16() uint16 {
	lo := c.pull()
	hi := c.pull()
	return uint16(hi)<<8 | uint16(lo)
}

// Step decodes and executes one instruction, or services a pending
// interrupt, and returns the number of cycles consumed. If the CPU is
// halted, Step is a no-op returning zero.
func (c *CPU) Step() int {
	if c.halted {
		return 0
	}

	if c.nmiPending {
		c.nmiPending = false
		return c.interrupt(vectorNMI, false)
	}

	if c.irqLine && !c.flag(FlagI) {
		return c.interrupt(vectorIRQ, false)
	}

	return c.execute()
}

func (c *CPU) interrupt(vector uint16, brk bool) int {
	c.push16(c.PC)

	sr := c.SR | FlagU
	if brk {
		sr |= FlagB
	} else {
		sr &^= FlagB
	}
	c.push(sr)

	c.setFlag(FlagI, true)

	lo := c.read(vector)
	hi := c.read(vector + 1)
	c.PC = uint16(hi)<<8 | uint16(lo)

	return 7
}

// callSubroutineHaltVector is the synthetic return address CallSubroutine
// watches for; it is never a valid code address a loaded program would jump
// to on its own, so seeing PC land here unambiguously means the subroutine's
// RTS has fired.
const callSubroutineHaltVector = 0x0000

// callSubroutineStepLimit bounds CallSubroutine against a subroutine that
// never returns (a malformed XEX's INITAD, say); real hardware would simply
// hang, but a host embedding this core should get control back.
const callSubroutineStepLimit = 1 << 20

// CallSubroutine runs the routine at addr to completion, as if by JSR,
// returning once its RTS executes. Used by the XEX loader to run a loaded
// segment's INITAD routine before continuing to load further segments.
func (c *CPU) CallSubroutine(addr uint16) {
	ret := uint16(callSubroutineHaltVector)
	c.push16(ret - 1)
	c.PC = addr

	for i := 0; i < callSubroutineStepLimit && c.PC != callSubroutineHaltVector && !c.halted; i++ {
		c.Step()
	}
}

func (c *CPU) execute() int {
	var res execution.Result
	res.Address = c.PC

	opcode := c.read(c.PC)
	defn := instructions.Lookup(opcode)
	res.Defn = &defn
	res.ByteCount = 1

	if !defn.Valid {
		c.halted = true
		res.Final = true
		c.LastResult = res
		return 0
	}

	c.PC++

	operand, pageFault := c.resolveOperand(&defn, &res)
	pageFault = pageFault && defn.Effect == instructions.Read
	res.PageFault = pageFault

	cycles := defn.Cycles
	if defn.AddressingMode.PageSensitive() && pageFault {
		cycles++
	}

	extra := c.dispatch(&defn, operand, &res)
	cycles += extra

	res.Cycles = cycles
	res.Final = true
	c.LastResult = res

	return cycles
}

// operand bundles the addressing result handed to the instruction body: an
// effective address (valid unless the mode is implied/accumulator/
// immediate) and, for immediate/accumulator/implied modes, the value
// itself.
type operand struct {
	address   uint16
	value     uint8
	immediate bool
	accum     bool
}

func (c *CPU) fetch() uint8 {
	v := c.read(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) resolveOperand(defn *instructions.Definition, res *execution.Result) (operand, bool) {
	switch defn.AddressingMode {
	case instructions.Implied:
		return operand{}, false

	case instructions.Accumulator:
		return operand{accum: true, value: c.A}, false

	case instructions.Immediate:
		v := c.fetch()
		res.ByteCount++
		res.InstructionData = uint16(v)
		return operand{immediate: true, value: v}, false

	case instructions.Relative:
		offset := c.fetch()
		res.ByteCount++
		res.InstructionData = uint16(offset)
		target := c.PC + uint16(int8(offset))
		pageCross := (c.PC & 0xff00) != (target & 0xff00)
		return operand{address: target}, pageCross

	case instructions.ZeroPage:
		addr := uint16(c.fetch())
		res.ByteCount++
		res.InstructionData = addr
		return operand{address: addr}, false

	case instructions.ZeroPageX:
		base := c.fetch()
		res.ByteCount++
		addr := uint16(base + c.X)
		res.InstructionData = addr
		return operand{address: addr}, false

	case instructions.ZeroPageY:
		base := c.fetch()
		res.ByteCount++
		addr := uint16(base + c.Y)
		res.InstructionData = addr
		return operand{address: addr}, false

	case instructions.Absolute:
		addr := c.fetch16()
		res.ByteCount += 2
		res.InstructionData = addr
		return operand{address: addr}, false

	case instructions.AbsoluteX:
		base := c.fetch16()
		res.ByteCount += 2
		addr := base + uint16(c.X)
		res.InstructionData = base
		pageCross := (base & 0xff00) != (addr & 0xff00)
		return operand{address: addr}, pageCross

	case instructions.AbsoluteY:
		base := c.fetch16()
		res.ByteCount += 2
		addr := base + uint16(c.Y)
		res.InstructionData = base
		pageCross := (base & 0xff00) != (addr & 0xff00)
		return operand{address: addr}, pageCross

	case instructions.Indirect:
		ptr := c.fetch16()
		res.ByteCount += 2
		res.InstructionData = ptr
		// the famous page-wrap bug: if the low byte of ptr is 0xff, the
		// high byte is fetched from the start of the same page, not the
		// next page.
		var addr uint16
		if ptr&0x00ff == 0x00ff {
			lo := c.read(ptr)
			hi := c.read(ptr & 0xff00)
			addr = uint16(hi)<<8 | uint16(lo)
			res.CPUBug = string(execution.JmpIndirectAddressingBug)
		} else {
			lo := c.read(ptr)
			hi := c.read(ptr + 1)
			addr = uint16(hi)<<8 | uint16(lo)
		}
		return operand{address: addr}, false

	case instructions.PreIndexed:
		base := c.fetch()
		res.ByteCount++
		ptr := uint16(base + c.X)
		lo := c.read(ptr)
		hi := c.read(uint16(uint8(ptr) + 1))
		addr := uint16(hi)<<8 | uint16(lo)
		res.InstructionData = addr
		return operand{address: addr}, false

	case instructions.PostIndexed:
		base := c.fetch()
		res.ByteCount++
		lo := c.read(uint16(base))
		hi := c.read(uint16(base + 1))
		ptr := uint16(hi)<<8 | uint16(lo)
		addr := ptr + uint16(c.Y)
		res.InstructionData = ptr
		pageCross := (ptr & 0xff00) != (addr & 0xff00)
		return operand{address: addr}, pageCross
	}

	return operand{}, false
}
