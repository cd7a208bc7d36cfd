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

// Package clocks defines the constant values that define the speed of the
// main CPU/ANTIC clock in the Atari 800 XL, for both television standards.
package clocks

// CPUMHz is the 6502's clock frequency, in MHz, derived from dividing the
// colour clock by two. NTSC and PAL differ because the colour subcarrier
// itself differs between the two standards.
const (
	NTSCCPUMHz = 1.7897725
	PALCPUMHz  = 1.7734470
)

// ColorClocksPerScanline is the number of colour clocks in one scanline,
// fixed by the television standard's horizontal sync timing and identical
// between NTSC and PAL.
const ColorClocksPerScanline = 228

// CyclesPerScanline is the number of CPU cycles available in one scanline
// before any are stolen by ANTIC DMA: half of ColorClocksPerScanline, since
// the CPU clock runs at half the colour clock rate on both standards.
const CyclesPerScanline = ColorClocksPerScanline / 2
