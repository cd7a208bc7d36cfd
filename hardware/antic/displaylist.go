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

package antic

const (
	dlOpBlank = 0x0
	dlOpJump  = 0x1

	dlModBitDLI  = 0x80
	dlModBitLMS  = 0x40
	dlModBitVScroll = 0x20
	dlModBitHScroll = 0x10
	dlModJVB     = 0x40
)

// fetchDL reads the next display-list byte and advances dlPC.
func (a *ANTIC) fetchDL() uint8 {
	v := a.ram.Peek(a.dlPC)
	a.dlPC++
	return v
}

func (a *ANTIC) fetchDL16() uint16 {
	lo := a.fetchDL()
	hi := a.fetchDL()
	return uint16(hi)<<8 | uint16(lo)
}

// startDisplayList (re)initialises the display-list fetch pointer from
// DLIST and arms the interpreter for a new frame.
func (a *ANTIC) startDisplayList() {
	a.dlPC = a.DLIST
	a.inDisplayList = true
	a.modeLinesRemaining = 0
	a.currentMode = 0
}

// fetchNextInstruction walks blank and jump instructions directly, leaving
// currentMode/modeLinesRemaining set up for a mode row, or currentMode == 0
// (background only) if the display list requests N blank lines.
func (a *ANTIC) fetchNextInstruction() {
	for {
		instr := a.fetchDL()
		low := instr & 0x0f

		switch {
		case low == dlOpBlank:
			lines := int(instr>>4) + 1
			a.currentMode = 0
			a.modeLinesRemaining = lines
			a.bytesPerRow = 0
			return

		case low == dlOpJump:
			target := a.fetchDL16()
			if instr&dlModJVB != 0 {
				a.dlPC = target
				if a.NMIEN&NMIVBI != 0 {
					a.NMIST |= NMIVBI
					a.nmiEdgePending = true
				}
				a.currentMode = 0
				a.modeLinesRemaining = 1
				a.bytesPerRow = 0
				a.inDisplayList = false
				return
			}
			a.dlPC = target

		default:
			mi, ok := modeTable[int(low)]
			if !ok {
				a.currentMode = 0
				a.modeLinesRemaining = 1
				a.bytesPerRow = 0
				return
			}

			if instr&dlModBitLMS != 0 {
				a.memscan = a.fetchDL16()
			}

			a.dliArmed = instr&dlModBitDLI != 0
			a.currentMode = int(low)
			a.modeLinesRemaining = mi.scanlines
			a.bytesPerRow = mi.bytesPerRow
			return
		}
	}
}

// RenderScanline rasterises the current scanline into a.Scanline, advancing
// the display-list state machine as needed. It must be called once per
// scanline, after the CPU has consumed its budget for that line.
func (a *ANTIC) RenderScanline() {
	if a.inVBlank() || !a.displayListEnabled() {
		a.fillBackground()
		return
	}

	if a.scanline == visibleTop && !a.inDisplayList {
		a.startDisplayList()
	}

	if a.modeLinesRemaining == 0 {
		a.fetchNextInstruction()
	}

	if a.currentMode == 0 {
		a.fillBackground()
	} else {
		a.rasteriseModeLine(a.currentMode)
	}

	a.modeLinesRemaining--

	mi := modeTable[a.currentMode]
	if a.currentMode != 0 {
		if mi.charMode {
			if a.modeLinesRemaining == 0 {
				a.memscan += uint16(a.bytesPerRow)
			}
		} else {
			a.memscan += uint16(a.bytesPerRow)
		}
	}

	if a.modeLinesRemaining == 0 && a.dliArmed && a.currentMode != 0 {
		if a.NMIEN&NMIDLI != 0 {
			a.NMIST |= NMIDLI
			a.nmiEdgePending = true
		}
		a.dliArmed = false
	}
}

func (a *ANTIC) fillBackground() {
	bg := a.gtia.ColorForPlayfield(0)
	for i := range a.Scanline {
		a.Scanline[i] = bg
	}
}

// rasteriseModeLine paints one scanline of a character or bitmap mode row,
// fetching screen-data bytes from memscan and looking up colours through
// GTIA. This is a simplified rasteriser: character modes are drawn as solid
// blocks of the byte's high bits rather than shaped by a font, since no
// font-generator ROM is modelled by this core.
func (a *ANTIC) rasteriseModeLine(mode int) {
	mi := modeTable[mode]
	bg := a.gtia.ColorForPlayfield(0)

	for i := range a.Scanline {
		a.Scanline[i] = bg
	}

	if mi.bytesPerRow == 0 {
		return
	}

	pixelsPerByte := 320 / mi.bytesPerRow
	for col := 0; col < mi.bytesPerRow; col++ {
		b := a.ram.Peek(a.memscan + uint16(col))

		pfIndex := 0
		if mi.charMode {
			if b&0x80 != 0 {
				pfIndex = 2
			} else {
				pfIndex = 1
			}
		} else {
			if b != 0 {
				pfIndex = 1
			}
		}

		color := a.gtia.ColorForPlayfield(pfIndex)
		start := col * pixelsPerByte
		for p := 0; p < pixelsPerByte && start+p < len(a.Scanline); p++ {
			a.Scanline[start+p] = color
		}
	}
}

// AdvanceScanline moves to the next scanline, wrapping to a new frame (and
// restarting the display list / raising VBI) when the frame total is
// reached.
func (a *ANTIC) AdvanceScanline() {
	a.scanline++
	if a.scanline >= a.frameScanlines {
		a.scanline = 0
		a.frameCounter++
		a.inDisplayList = false
		if a.NMIEN&NMIVBI != 0 {
			a.NMIST |= NMIVBI
			a.nmiEdgePending = true
		}
	}
}
