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

// Package coords describes a single point in the television signal, in terms
// of frame number, scanline number and colour clock, as produced by ANTIC.
package coords

import "fmt"

// TelevisionCoords identifies a point in time in the television signal.
type TelevisionCoords struct {
	Frame    int
	Scanline int
	Clock    int
}

// FrameIsUndefined is used in place of a frame number when the frame value
// is not important to a comparison (eg. when a rewindable state was
// generated at an unknown frame).
const FrameIsUndefined = -1

// Equal compares two instances of TelevisionCoords for equality. The frame
// field of either argument may be FrameIsUndefined, in which case the frame
// numbers are not compared.
func Equal(a, b TelevisionCoords) bool {
	if a.Scanline != b.Scanline || a.Clock != b.Clock {
		return false
	}
	if a.Frame == FrameIsUndefined || b.Frame == FrameIsUndefined {
		return true
	}
	return a.Frame == b.Frame
}

// String returns a human readable representation of the coordinates.
func (c TelevisionCoords) String() string {
	return fmt.Sprintf("fr=%d sl=%d cl=%d", c.Frame, c.Scanline, c.Clock)
}
