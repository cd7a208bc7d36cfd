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

// LoadBinary copies data into ram starting at loadAddr, the simplest of the
// three load operations. It returns loadAddr as the address a host
// should set PC to.
func LoadBinary(data []byte, loadAddr uint16, ram RAM) uint16 {
	ram.LoadAt(loadAddr, data)
	return loadAddr
}
