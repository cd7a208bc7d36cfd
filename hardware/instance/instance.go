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

// Package instance defines those parts of the emulation that might change
// from instance to instance of the machine type, but are not actually the
// machine itself.
//
// Particularly useful when running more than one instance of the emulation
// in parallel.
package instance

import (
	"github.com/atari800core/emu/random"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the machine type, but are not actually the
// machine itself.
type Instance struct {
	Random *random.Random
}

// NewInstance is the preferred method of initialisation for the Instance
// type.
func NewInstance(tv random.TelevisionCoords) (*Instance, error) {
	return &Instance{
		Random: random.NewRandom(tv),
	}, nil
}

// Normalise ensures the instance is in a known default state. Useful for
// regression testing where the initial state must be the same for every run
// of the test.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
}
