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

// Package antic implements the ANTIC display-list coprocessor: the
// scanline/mode-row state machine, the display-list interpreter, DMA cycle
// accounting, WSYNC halting and DLI/VBI NMI generation.
package antic

import "github.com/atari800core/emu/hardware/gtia"

// register offsets, after masking the chip-select address with 0x0f.
const (
	regDMACTL = 0x00
	regCHACTL = 0x01
	regDLISTL = 0x02
	regDLISTH = 0x03
	regHSCROL = 0x04
	regVSCROL = 0x05
	regPMBASE = 0x07
	regCHBASE = 0x09
	regWSYNC  = 0x0a
	regVCOUNT = 0x0b
	regPENH   = 0x0c
	regPENV   = 0x0d
	regNMIEN  = 0x0e
	regNMIRES = 0x0f

	regNMIST = 0x0f
)

// NMIST bits.
const (
	NMIDLI = 0x80
	NMIVBI = 0x40
)

// DMACTL bits.
const (
	dmactlWidthMask  = 0x03
	dmactlMissileDMA = 0x04
	dmactlPlayerDMA  = 0x08
	dmactlDLDMA      = 0x20
)

const (
	// PALScanlines and NTSCScanlines are the total scanlines per frame.
	PALScanlines  = 312
	NTSCScanlines = 262

	visibleTop    = 8
	visibleBottom = 248

	scanlineCycleBudget = 114
	typicalPlayfieldDMA = 40
)

// modeInfo describes the scanline count and byte width of one ANTIC text
// or graphics mode.
type modeInfo struct {
	scanlines    int
	bytesPerRow  int
	charMode     bool
}

var modeTable = map[int]modeInfo{
	0x2: {8, 40, true},
	0x3: {10, 40, true},
	0x4: {8, 40, true},
	0x5: {16, 40, true},
	0x6: {8, 20, true},
	0x7: {16, 20, true},
	0x8: {8, 10, false},
	0x9: {4, 10, false},
	0xa: {4, 20, false},
	0xb: {2, 20, false},
	0xc: {1, 20, false},
	0xd: {2, 40, false},
	0xe: {1, 40, false},
	0xf: {1, 40, false},
}

// RAM is the narrow, non-mutating view of system memory ANTIC performs DMA
// reads through.
type RAM interface {
	Peek(addr uint16) uint8
}

// ANTIC is the display-list coprocessor.
type ANTIC struct {
	DMACTL uint8
	CHACTL uint8
	DLIST  uint16
	HSCROL uint8
	VSCROL uint8
	PMBASE uint8
	CHBASE uint8
	NMIEN  uint8
	NMIST  uint8

	scanline           int
	dlPC               uint16
	memscan            uint16
	modeLinesRemaining int
	currentMode        int
	bytesPerRow        int
	dliArmed           bool
	lmsNext            bool
	inDisplayList      bool
	wsyncHalted        bool

	// nmiEdgePending is the edge the CPU's NMI input latches onto: set the
	// instant a DLI or VBI newly becomes pending, consumed by the next
	// CheckPendingNMI call. NMIST itself stays asserted until NMIRES is
	// written, same as real hardware, but the CPU must only see one rising
	// edge per assertion.
	nmiEdgePending bool

	frameScanlines int

	dmaCyclesThisScanline int

	ram  RAM
	gtia *gtia.GTIA

	// Scanline holds one palette-index byte per pixel of the most
	// recently rasterised scanline, width fixed at 320.
	Scanline [320]uint8

	frameCounter int
}

// NewANTIC is the preferred method of initialisation for the ANTIC type.
// pal selects 312 vs 262 scanlines per frame.
func NewANTIC(ram RAM, g *gtia.GTIA, pal bool) *ANTIC {
	a := &ANTIC{ram: ram, gtia: g}
	if pal {
		a.frameScanlines = PALScanlines
	} else {
		a.frameScanlines = NTSCScanlines
	}
	return a
}

// Reset returns the chip to its power-on state.
func (a *ANTIC) Reset() {
	ram, g, frameScanlines := a.ram, a.gtia, a.frameScanlines
	*a = ANTIC{ram: ram, gtia: g, frameScanlines: frameScanlines}
}

// ReadRegister implements bus.ChipRegisters.
func (a *ANTIC) ReadRegister(addr uint8) uint8 {
	switch addr & 0x0f {
	case regVCOUNT:
		return uint8(a.scanline / 2)
	case regPENH, regPENV:
		return 0
	case regNMIST:
		return a.NMIST
	}
	return 0xff
}

// WriteRegister implements bus.ChipRegisters.
func (a *ANTIC) WriteRegister(addr uint8, data uint8) {
	switch addr & 0x0f {
	case regDMACTL:
		a.DMACTL = data
	case regCHACTL:
		a.CHACTL = data
	case regDLISTL:
		a.DLIST = (a.DLIST & 0xff00) | uint16(data)
	case regDLISTH:
		a.DLIST = (a.DLIST & 0x00ff) | uint16(data)<<8
	case regHSCROL:
		a.HSCROL = data & 0x0f
	case regVSCROL:
		a.VSCROL = data & 0x0f
	case regPMBASE:
		a.PMBASE = data
	case regCHBASE:
		a.CHBASE = data
	case regWSYNC:
		a.wsyncHalted = true
	case regNMIEN:
		a.NMIEN = data
	case regNMIRES:
		a.NMIST = 0x1f
	}
}

// WSYNCHalted reports whether the CPU should stop consuming cycles until
// the end of the current scanline.
func (a *ANTIC) WSYNCHalted() bool {
	return a.wsyncHalted
}

// DMACyclesForNextScanline returns the number of cycles to charge against
// the CPU's budget for display-list and playfield DMA during the upcoming
// scanline.
func (a *ANTIC) DMACyclesForNextScanline() int {
	if !a.displayListEnabled() || a.inVBlank() {
		return 0
	}

	cycles := 0
	if a.modeLinesRemaining == 0 {
		// a new mode row is about to be fetched: charge for the
		// instruction byte plus any LMS/jump operand bytes. The exact
		// count isn't known until the row is fetched, so a conservative
		// typical charge of 3 bytes is used.
		cycles += 3
	}
	if a.currentMode != 0 {
		cycles += typicalPlayfieldDMA
	}
	return cycles
}

func (a *ANTIC) displayListEnabled() bool {
	return a.DMACTL&dmactlDLDMA != 0
}

func (a *ANTIC) inVBlank() bool {
	return a.scanline < visibleTop || a.scanline >= visibleBottom
}

// VisibleRowIndex maps the current scanline to a 0-based output row for a
// full-frame bitmap of FrameRows rows, or reports ok=false when the current
// scanline lies outside that window (vertical blank, or the visible
// scanlines past the first FrameRows).
func (a *ANTIC) VisibleRowIndex() (row int, ok bool) {
	if a.inVBlank() {
		return 0, false
	}
	row = a.scanline - visibleTop
	if row >= FrameRows {
		return 0, false
	}
	return row, true
}

// FrameRows is the number of visible scanlines copied into a presented
// bitmap; matches television.FrameHeight.
const FrameRows = 192

// Budget returns the CPU cycle budget for the upcoming scanline.
func (a *ANTIC) Budget() int {
	budget := scanlineCycleBudget - a.DMACyclesForNextScanline()
	if budget < 0 {
		budget = 0
	}
	return budget
}

// CheckPendingNMI reports whether a DLI or VBI is newly pending and, if so,
// clears the pending flag (one-shot, edge to the CPU).
func (a *ANTIC) CheckPendingNMI() bool {
	if a.nmiEdgePending {
		a.nmiEdgePending = false
		return true
	}
	return false
}

// ReleaseWSYNC clears the WSYNC halt at the end of a scanline.
func (a *ANTIC) ReleaseWSYNC() {
	a.wsyncHalted = false
}

// CurrentScanline returns the current scanline number, 0..frameScanlines-1.
func (a *ANTIC) CurrentScanline() int {
	return a.scanline
}

// FrameScanlines returns the total scanline count per frame.
func (a *ANTIC) FrameScanlines() int {
	return a.frameScanlines
}

// Frame returns the number of frames rendered since power-on/reset.
func (a *ANTIC) Frame() int {
	return a.frameCounter
}
