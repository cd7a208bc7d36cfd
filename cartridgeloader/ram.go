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

// RAM is the narrow view of system memory a loader pokes into. Satisfied
// directly by *memory.Memory.
type RAM interface {
	LoadAt(addr uint16, data []byte)
	Peek(addr uint16) uint8
}

// Runner executes a subroutine synchronously, as if by JSR, returning once
// it has run to completion. Satisfied directly by *cpu.CPU. Used by the XEX
// loader's INITAD mechanism.
type Runner interface {
	CallSubroutine(addr uint16)
}
