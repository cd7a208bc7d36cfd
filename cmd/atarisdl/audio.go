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

package main

import (
	"github.com/veandco/go-sdl2/sdl"
)

const audioSampleFreq = 44100

// sdlAudio implements television.AudioMixer over an SDL audio device,
// queuing rather than blocking so a backlogged device never stalls the
// machine loop.
type sdlAudio struct {
	id sdl.AudioDeviceID
}

func newSDLAudio() (*sdlAudio, error) {
	spec := &sdl.AudioSpec{
		Freq:     audioSampleFreq,
		Format:   sdl.AUDIO_S16SYS,
		Channels: 1,
		Samples:  1024,
	}

	id, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return nil, err
	}
	sdl.PauseAudioDevice(id, false)
	return &sdlAudio{id: id}, nil
}

func (a *sdlAudio) close() {
	sdl.CloseAudioDevice(a.id)
}

// PushSamples satisfies television.AudioMixer.
func (a *sdlAudio) PushSamples(samples []int16) error {
	if len(samples) == 0 {
		return nil
	}
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		buf[i*2] = byte(s)
		buf[i*2+1] = byte(s >> 8)
	}
	return sdl.QueueAudio(a.id, buf)
}
