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

package cartridgeloader

import "github.com/atari800core/emu/curated"

// OS shadow variables the loader reads and writes as part of the XEX
// protocol, at their fixed zero-page-adjacent addresses.
const (
	initadLo = 0x02e2
	initadHi = 0x02e3
	runadLo  = 0x02e0
	runadHi  = 0x02e1
)

// ErrFileFormat is returned for a malformed XEX header, a truncated segment,
// or a segment whose data overruns the bytes available.
var ErrFileFormat = curated.Errorf("cartridgeloader: malformed file")

// LoadXEX parses an Atari relocatable executable (header `FF FF` followed by
// one or more `{start_lo, start_hi, end_lo, end_hi, data...}` segments, with
// optional repeated `FF FF` markers between them) and writes each segment
// into ram. After each segment, if INITAD ($02E2-$02E3) is non-zero, run
// executes it as a subroutine and INITAD is cleared, exactly as the OS's own
// loader does. run may be nil, in which case no INITAD routine is executed,
// but INITAD is still cleared after each segment. The final RUNAD
// ($02E0-$02E1) value is returned as the address a host should set PC to.
func LoadXEX(data []byte, ram RAM, run Runner) (runAddr uint16, err error) {
	if len(data) < 2 || data[0] != 0xff || data[1] != 0xff {
		return 0, curated.Errorf("%v: missing FF FF header", ErrFileFormat)
	}

	pos := 2
	for pos < len(data) {
		for pos+1 < len(data) && data[pos] == 0xff && data[pos+1] == 0xff {
			pos += 2
		}
		if pos >= len(data) {
			break
		}
		if pos+4 > len(data) {
			return 0, curated.Errorf("%v: truncated segment header", ErrFileFormat)
		}

		start := uint16(data[pos+1])<<8 | uint16(data[pos])
		end := uint16(data[pos+3])<<8 | uint16(data[pos+2])
		pos += 4

		if end < start {
			return 0, curated.Errorf("%v: segment end before start", ErrFileFormat)
		}

		segLen := int(end-start) + 1
		if pos+segLen > len(data) {
			return 0, curated.Errorf("%v: segment data runs past end of file", ErrFileFormat)
		}

		ram.LoadAt(start, data[pos:pos+segLen])
		pos += segLen

		if initAddr := readWord(ram, initadLo, initadHi); initAddr != 0 {
			if run != nil {
				run.CallSubroutine(initAddr)
			}
			ram.LoadAt(initadLo, []byte{0, 0})
		}
	}

	return readWord(ram, runadLo, runadHi), nil
}

func readWord(ram RAM, lo, hi uint16) uint16 {
	return uint16(ram.Peek(hi))<<8 | uint16(ram.Peek(lo))
}
