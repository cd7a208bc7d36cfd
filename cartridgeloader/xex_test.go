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

package cartridgeloader_test

import (
	"testing"

	"github.com/atari800core/emu/cartridgeloader"
	"github.com/atari800core/emu/curated"
	"github.com/atari800core/emu/test"
)

type fakeRAM struct {
	mem [0x10000]byte
}

func (r *fakeRAM) LoadAt(addr uint16, data []byte) { copy(r.mem[addr:], data) }
func (r *fakeRAM) Peek(addr uint16) uint8          { return r.mem[addr] }

type fakeRunner struct {
	calledWith []uint16
}

func (r *fakeRunner) CallSubroutine(addr uint16) {
	r.calledWith = append(r.calledWith, addr)
}

func TestLoadXEXRejectsMissingHeader(t *testing.T) {
	ram := &fakeRAM{}
	_, err := cartridgeloader.LoadXEX([]byte{0x00, 0x06, 0x01, 0x06, 0xaa}, ram, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, "cartridgeloader: malformed file"))
}

func TestLoadXEXRejectsTruncatedSegmentHeader(t *testing.T) {
	ram := &fakeRAM{}
	_, err := cartridgeloader.LoadXEX([]byte{0xff, 0xff, 0x00, 0x06}, ram, nil)
	test.ExpectFailure(t, err)
}

func TestLoadXEXRejectsOverrunningSegment(t *testing.T) {
	ram := &fakeRAM{}
	data := []byte{0xff, 0xff, 0x00, 0x06, 0x02, 0x06, 0xaa}
	_, err := cartridgeloader.LoadXEX(data, ram, nil)
	test.ExpectFailure(t, err)
}

// A single segment lands exactly the bytes given at exactly the range
// named, and leaves every other byte in RAM untouched.
func TestLoadXEXSingleSegmentRoundTrip(t *testing.T) {
	ram := &fakeRAM{}
	ram.mem[0x0700] = 0x55 // sentinel outside the segment, must survive

	data := []byte{
		0xff, 0xff, // header
		0x00, 0x06, 0x02, 0x06, // segment $0600-$0602
		0x11, 0x22, 0x33,
	}
	runAddr, err := cartridgeloader.LoadXEX(data, ram, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, runAddr, uint16(0))

	test.ExpectEquality(t, ram.mem[0x0600], uint8(0x11))
	test.ExpectEquality(t, ram.mem[0x0601], uint8(0x22))
	test.ExpectEquality(t, ram.mem[0x0602], uint8(0x33))
	test.ExpectEquality(t, ram.mem[0x0700], uint8(0x55))
}

// Multiple segments, separated by an extra FF FF marker, both land; RUNAD is
// picked up from wherever the segment data happened to leave it.
func TestLoadXEXMultipleSegmentsAndRunAddr(t *testing.T) {
	ram := &fakeRAM{}

	data := []byte{
		0xff, 0xff,
		0x00, 0x06, 0x01, 0x06, // segment $0600-$0601
		0xaa, 0xbb,
		0xff, 0xff, // extra marker between segments
		0xe0, 0x02, 0xe1, 0x02, // segment $02e0-$02e1: RUNAD
		0x34, 0x12,
	}
	runAddr, err := cartridgeloader.LoadXEX(data, ram, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ram.mem[0x0600], uint8(0xaa))
	test.ExpectEquality(t, ram.mem[0x0601], uint8(0xbb))
	test.ExpectEquality(t, runAddr, uint16(0x1234))
}

// A segment that leaves INITAD non-zero triggers a call to it, and INITAD is
// cleared afterwards so a later segment doesn't re-trigger it.
func TestLoadXEXInvokesAndClearsInitad(t *testing.T) {
	ram := &fakeRAM{}
	runner := &fakeRunner{}

	data := []byte{
		0xff, 0xff,
		0xe2, 0x02, 0xe3, 0x02, // segment $02e2-$02e3: INITAD
		0x00, 0x07, // INITAD = $0700
	}
	_, err := cartridgeloader.LoadXEX(data, ram, runner)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, len(runner.calledWith), 1)
	test.ExpectEquality(t, runner.calledWith[0], uint16(0x0700))
	test.ExpectEquality(t, ram.mem[0x02e2], uint8(0))
	test.ExpectEquality(t, ram.mem[0x02e3], uint8(0))
}

// A nil Runner is tolerated: the INITAD request is simply left unexecuted,
// but still cleared so a re-run of the same routine isn't implied.
func TestLoadXEXToleratesNilRunner(t *testing.T) {
	ram := &fakeRAM{}

	data := []byte{
		0xff, 0xff,
		0xe2, 0x02, 0xe3, 0x02,
		0x00, 0x07,
	}
	_, err := cartridgeloader.LoadXEX(data, ram, nil)
	test.ExpectSuccess(t, err)
}
