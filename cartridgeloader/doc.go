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

// Package cartridgeloader implements the RAM-poking contract for getting
// guest software into a running machine: XEX relocatable executables,
// plain binary loads at an explicit address, and ATR disk image mounting.
// Everything beyond landing bytes in RAM and handing back a run address --
// where the bytes came from, a host's "insert disk" UI -- is the caller's
// concern.
package cartridgeloader
