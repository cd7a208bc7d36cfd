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

// Package prefs implements a simple key/value preferences system, with
// values backed by a flat text file on disk. Individual preference values
// (Bool, String, Int, Float, or a user-supplied Generic) are registered
// against a Disk instance under a dotted key, and are written out together
// whenever Save is called.
package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// WarningBoilerPlate is written as the first line of every saved
// preferences file.
const WarningBoilerPlate = "; this file is generated by the emulator. editing it by hand is not recommended"

// Value is the underlying representation of a preference: usually a string,
// bool, int or float64, but a Generic preference may use anything.
type Value interface{}

// PrefValue is the interface required of anything that can be registered
// with a Disk instance.
type PrefValue interface {
	// Set changes the underlying value from the given representation,
	// usually a string (as read from disk) or the value's native type.
	Set(Value) error

	// String returns the value formatted for writing to disk.
	String() string
}

// Disk associates preference Values with a key and persists them to a flat
// file.
type Disk struct {
	filename string
	keys     []string
	values   map[string]PrefValue
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file need not already exist; it is created on the first Save.
func NewDisk(filename string) (*Disk, error) {
	return &Disk{
		filename: filename,
		values:   make(map[string]PrefValue),
	}, nil
}

// Add registers a Value under key. Returns an error if the key is already
// registered.
func (d *Disk) Add(key string, v PrefValue) error {
	if _, ok := d.values[key]; ok {
		return fmt.Errorf("prefs: key %q already registered", key)
	}
	d.keys = append(d.keys, key)
	d.values[key] = v
	return nil
}

// Save writes every registered Value to the backing file, merging with any
// values already on disk from other Disk instances sharing the same file.
func (d *Disk) Save() error {
	existing, _ := d.readFile()

	for _, k := range d.keys {
		existing[k] = d.values[k].String()
	}

	keys := make([]string, 0, len(existing))
	for k := range existing {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(d.filename)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n", WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s :: %s\n", k, existing[k])
	}

	return w.Flush()
}

// Load reads the backing file and applies any registered keys found in it
// to their corresponding Value.
func (d *Disk) Load() error {
	existing, err := d.readFile()
	if err != nil {
		return err
	}

	for k, v := range existing {
		if val, ok := d.values[k]; ok {
			if err := val.Set(v); err != nil {
				return fmt.Errorf("prefs: loading %q: %w", k, err)
			}
		}
	}

	return nil
}

func (d *Disk) readFile() (map[string]string, error) {
	out := make(map[string]string)

	f, err := os.Open(d.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return out, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ";") {
			continue
		}
		parts := strings.SplitN(line, "::", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}

	return out, scanner.Err()
}
