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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// a frame is a single parsed "key::value;key::value" group, as pushed onto
// the command line stack by PushCommandLineStack.
type clFrame struct {
	keys  []string
	pairs map[string]string
}

func parseCommandLineGroup(s string) clFrame {
	f := clFrame{pairs: make(map[string]string)}

	for _, seg := range strings.Split(s, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		parts := strings.SplitN(seg, "::", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if key == "" {
			continue
		}

		if _, ok := f.pairs[key]; !ok {
			f.keys = append(f.keys, key)
		}
		f.pairs[key] = val
	}

	sort.Strings(f.keys)

	return f
}

func (f clFrame) String() string {
	parts := make([]string, len(f.keys))
	for i, k := range f.keys {
		parts[i] = fmt.Sprintf("%s::%s", k, f.pairs[k])
	}
	return strings.Join(parts, "; ")
}

var commandLineStack []clFrame

// PushCommandLineStack parses a "key::value;key::value" style string and
// pushes it onto the command line preferences stack. Segments that are not
// valid key::value pairs are silently dropped.
func PushCommandLineStack(s string) {
	commandLineStack = append(commandLineStack, parseCommandLineGroup(s))
}

// PopCommandLineStack removes and returns the top of the command line
// preferences stack, normalised and sorted by key. Returns the empty string
// if the stack is empty.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	f := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	return f.String()
}

// GetCommandLinePref looks up key in the frame currently on top of the
// command line preferences stack, without popping it.
func GetCommandLinePref(key string) (bool, string) {
	if len(commandLineStack) == 0 {
		return false, ""
	}

	f := commandLineStack[len(commandLineStack)-1]
	v, ok := f.pairs[key]
	return ok, v
}
