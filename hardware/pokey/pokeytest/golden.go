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

// Package pokeytest provides a WAV golden-file helper for POKEY audio
// tests: write a channel's rendered samples out once to inspect or commit
// as a fixture, then compare future runs against the committed file byte
// for byte.
package pokeytest

import (
	"bytes"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/atari800core/emu/curated"
)

// ErrMismatch is returned by Compare when the rendered samples don't match
// the golden file's contents.
var ErrMismatch = curated.Errorf("pokeytest: rendered audio does not match golden file")

// WriteGolden encodes samples as a mono 16-bit PCM WAV file at sampleRate
// and writes it to path, overwriting any existing file. Intended to be run
// once, by hand, to commit a new fixture -- not called from a normal test
// run.
func WriteGolden(path string, samples []int16, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := toIntBuffer(samples, sampleRate)
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

// Compare renders samples to an in-memory WAV encoding and checks it
// against the golden file at path byte for byte.
func Compare(path string, samples []int16, sampleRate int) error {
	golden, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var rendered bytes.Buffer
	enc := wav.NewEncoder(&rendered, sampleRate, 16, 1, 1)
	if err := enc.Write(toIntBuffer(samples, sampleRate)); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if !bytes.Equal(golden, rendered.Bytes()) {
		return ErrMismatch
	}
	return nil
}

func toIntBuffer(samples []int16, sampleRate int) *audio.IntBuffer {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
}
