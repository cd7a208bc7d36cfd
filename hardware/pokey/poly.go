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

package pokey

// poly is a maximal-length Galois linear-feedback shift register of a fixed
// bit width, used by POKEY to produce the pseudo-random noise distortions
// and the RANDOM register.
type poly struct {
	width uint
	tap   uint32
	value uint32
}

// newPoly builds a poly register of the given width and Galois feedback tap,
// initialised to all-ones (the value never reaches all-zero in a maximal
// length sequence, so this is a safe non-degenerate seed).
func newPoly(width uint, tap uint32) *poly {
	return &poly{
		width: width,
		tap:   tap,
		value: (1 << width) - 1,
	}
}

// poly4, poly5, poly9 and poly17 reproduce POKEY's four LFSRs. The periods
// are 15, 31, 511 and 131071 respectively -- one short of 2^width because
// the all-zero state is excluded from a maximal-length cycle.
func newPoly4() *poly  { return newPoly(4, 0x9) }
func newPoly5() *poly  { return newPoly(5, 0x12) }
func newPoly9() *poly  { return newPoly(9, 0x108) }
func newPoly17() *poly { return newPoly(17, 0x10004) }

// Step advances the register by one bit and returns the new output bit (the
// LSB of the shifted value).
func (p *poly) Step() uint8 {
	lsb := p.value & 1
	p.value >>= 1
	if lsb != 0 {
		p.value ^= p.tap
	}
	p.value &= (1 << p.width) - 1
	return uint8(p.value & 1)
}

// Output returns the current output bit without advancing the register.
func (p *poly) Output() uint8 {
	return uint8(p.value & 1)
}
