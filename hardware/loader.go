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

package hardware

import "github.com/atari800core/emu/cartridgeloader"

// LoadXEX loads a relocatable executable into the machine's RAM, running
// any segment's INITAD routine on the live CPU as it goes, and sets PC to
// the executable's RUNAD.
func (at *Atari) LoadXEX(data []byte) error {
	runAddr, err := cartridgeloader.LoadXEX(data, at.Mem, at.CPU)
	if err != nil {
		return err
	}
	at.CPU.PC = runAddr
	return nil
}

// LoadBinary copies data into RAM at loadAddr and sets PC there.
func (at *Atari) LoadBinary(data []byte, loadAddr uint16) {
	at.CPU.PC = cartridgeloader.LoadBinary(data, loadAddr, at.Mem)
}

// MountDisk parses an ATR disk image for later sector access. The machine
// itself has no SIO controller; a host wanting to serve sector reads over a
// serial bus attaches the returned image to whatever transport it provides.
func (at *Atari) MountDisk(data []byte) (*cartridgeloader.ATRImage, error) {
	return cartridgeloader.MountATR(data)
}
