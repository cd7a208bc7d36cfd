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

package input

// Kind distinguishes the four event shapes a host can push.
type Kind int

const (
	KindKey Kind = iota
	KindBreakKey
	KindConsole
	KindJoystick
)

// Event is the single wire shape for every input source: a keyboard
// key, the dedicated BREAK key, the three console switches, or one
// joystick's directions. Only the fields relevant to Kind are meaningful.
type Event struct {
	Kind Kind

	// KindKey
	Keycode uint8
	Pressed bool

	// KindConsole
	Start, Select, Option bool

	// KindJoystick
	Port                         int
	Up, Down, Left, Right, Fire bool
}
