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

// Package television owns the two external sink contracts the core emits
// through (PixelRenderer, AudioMixer), the PAL/NTSC/AUTO
// specification a machine is built with, and frame pacing via the limiter
// subpackage.
package television

import (
	"strings"

	"github.com/atari800core/emu/curated"
	"github.com/atari800core/emu/hardware/television/coords"
	"github.com/atari800core/emu/hardware/television/limiter"
)

// FrameWidth and FrameHeight are the fixed dimensions of a presented bitmap.
const (
	FrameWidth  = 320
	FrameHeight = 192
)

// ErrUnknownSpec is returned by NewTelevision for a spec string that is
// neither "PAL", "NTSC" nor "AUTO".
var ErrUnknownSpec = curated.Errorf("television: unknown tv spec")

// Spec describes the timing of one television standard.
type Spec struct {
	ID        string
	Scanlines int
	RefreshHz float32
}

// SpecPAL and SpecNTSC are the two concrete television specifications a
// machine can be built against. "AUTO" resolves to SpecPAL, the conventional
// default for an undetected cartridge region.
var (
	SpecPAL  = Spec{ID: "PAL", Scanlines: 312, RefreshHz: 50}
	SpecNTSC = Spec{ID: "NTSC", Scanlines: 262, RefreshHz: 60}
)

// PixelRenderer is the display sink contract. PresentBitmap receives
// one full frame of FrameWidth*FrameHeight palette-indexed bytes;
// PresentBorder optionally receives the current border colour.
type PixelRenderer interface {
	PresentBitmap(pixels []uint8) error
	PresentBorder(paletteIndex uint8) error
}

// AudioMixer is the audio sink contract. PushSamples receives a
// frame-aligned burst of mono int16 PCM. Implementations must drop on
// overflow rather than block.
type AudioMixer interface {
	PushSamples(samples []int16) error
}

// Television tracks playback position, paces frame delivery, and forwards
// completed frames/audio bursts to whatever sinks have been attached.
type Television struct {
	Spec Spec

	coords coords.TelevisionCoords
	pacer  *limiter.Limiter

	renderer PixelRenderer
	mixer    AudioMixer

	droppedFrames int
	droppedAudio  int
}

// NewTelevision is the preferred method of initialisation for the
// Television type. spec must be "PAL", "NTSC" or "AUTO" (case-insensitive).
func NewTelevision(spec string) (*Television, error) {
	var s Spec
	switch strings.ToUpper(spec) {
	case "PAL", "AUTO":
		s = SpecPAL
	case "NTSC":
		s = SpecNTSC
	default:
		return nil, curated.Errorf("%v: %s", ErrUnknownSpec, spec)
	}

	tv := &Television{
		Spec:   s,
		coords: coords.TelevisionCoords{Frame: 0, Scanline: 0, Clock: 0},
		pacer:  limiter.NewLimiter(),
	}
	tv.pacer.SetRefreshRate(s.RefreshHz)
	return tv, nil
}

// SetPixelRenderer attaches (or detaches, with nil) the display sink.
func (tv *Television) SetPixelRenderer(r PixelRenderer) {
	tv.renderer = r
}

// SetAudioMixer attaches (or detaches, with nil) the audio sink.
func (tv *Television) SetAudioMixer(m AudioMixer) {
	tv.mixer = m
}

// GetCoords satisfies random.TelevisionCoords: the current
// playback position.
func (tv *Television) GetCoords() coords.TelevisionCoords {
	return tv.coords
}

// SetCoords updates the current playback position. Called by the machine
// loop once per scanline.
func (tv *Television) SetCoords(c coords.TelevisionCoords) {
	tv.coords = c
}

// PresentFrame forwards a completed bitmap to the attached renderer, if
// any. A nil renderer, or a renderer returning an error, drops the frame:
// the counter increments and the next frame starts fresh.
func (tv *Television) PresentFrame(pixels []uint8) {
	if tv.renderer == nil {
		return
	}
	if err := tv.renderer.PresentBitmap(pixels); err != nil {
		tv.droppedFrames++
	}
}

// PresentBorder forwards the current border colour to the attached
// renderer, if any.
func (tv *Television) PresentBorder(paletteIndex uint8) {
	if tv.renderer == nil {
		return
	}
	_ = tv.renderer.PresentBorder(paletteIndex)
}

// EmitAudio forwards a frame-aligned burst of samples to the attached
// mixer, if any. Overflow (a sink overflow) drops the burst rather
// than blocking the machine loop.
func (tv *Television) EmitAudio(samples []int16) {
	if tv.mixer == nil {
		return
	}
	if err := tv.mixer.PushSamples(samples); err != nil {
		tv.droppedAudio++
	}
}

// DroppedFrames and DroppedAudioBursts report the running overflow counters.
func (tv *Television) DroppedFrames() int      { return tv.droppedFrames }
func (tv *Television) DroppedAudioBursts() int { return tv.droppedAudio }

// PaceFrame blocks until the next frame tick is due, pacing emulation to
// the television spec's refresh rate (50Hz PAL / 60Hz NTSC).
func (tv *Television) PaceFrame() {
	tv.pacer.CheckFrame()
}
