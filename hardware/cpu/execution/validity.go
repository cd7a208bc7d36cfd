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

package execution

import "fmt"

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if r.Defn == nil {
		return fmt.Errorf("cpu: execution result has no instruction definition")
	}

	if !r.Final {
		return fmt.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if !r.Defn.AddressingMode.PageSensitive() && r.PageFault {
		return fmt.Errorf("cpu: unexpected page fault")
	}

	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	if r.CPUBug != "" {
		return nil
	}

	if r.Defn.IsBranch() {
		if r.Cycles != r.Defn.Cycles && r.Cycles != r.Defn.Cycles+1 && r.Cycles != r.Defn.Cycles+2 {
			return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d, %d or %d)",
				r.Defn.OpCode, r.Defn.Operator, r.Cycles, r.Defn.Cycles, r.Defn.Cycles+1, r.Defn.Cycles+2)
		}
		return nil
	}

	if r.Defn.AddressingMode.PageSensitive() {
		if r.PageFault && r.Cycles != r.Defn.Cycles+1 {
			return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn.Operator, r.Cycles, r.Defn.Cycles+1)
		}
		if !r.PageFault && r.Cycles != r.Defn.Cycles {
			return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn.Operator, r.Cycles, r.Defn.Cycles)
		}
		return nil
	}

	if r.Cycles != r.Defn.Cycles {
		return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Operator, r.Cycles, r.Defn.Cycles)
	}

	return nil
}
