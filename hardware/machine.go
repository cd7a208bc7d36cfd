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

import (
	"github.com/atari800core/emu/hardware/antic"
	"github.com/atari800core/emu/hardware/clocks"
	"github.com/atari800core/emu/hardware/cpu"
	"github.com/atari800core/emu/hardware/gtia"
	"github.com/atari800core/emu/hardware/input"
	"github.com/atari800core/emu/hardware/instance"
	"github.com/atari800core/emu/hardware/memory"
	"github.com/atari800core/emu/hardware/pia"
	"github.com/atari800core/emu/hardware/pokey"
	"github.com/atari800core/emu/hardware/television"
	"github.com/atari800core/emu/hardware/television/coords"
	"github.com/atari800core/emu/logger"
)

// scanlineCycleBudget is the full, un-stolen CPU cycle allowance for one
// scanline.
const scanlineCycleBudget = clocks.CyclesPerScanline

// audioSampleRate is the output audio sample rate. The number of samples
// produced per scanline is derived from it; the fractional remainder
// accumulates in sampleAccum so long-run sample counts stay correct.
const audioSampleRate = 44100.0

// logSize is the number of diagnostic entries retained by Atari.Log.
const logSize = 256

// Atari is the root of the emulation: the system bus plus one instance of
// every chip, wired together so chips never point at each other directly --
// cross-chip effects go through the bus or through the Atari type's own
// wiring.
type Atari struct {
	Instance *instance.Instance

	Mem   *memory.Memory
	CPU   *cpu.CPU
	ANTIC *antic.ANTIC
	GTIA  *gtia.GTIA
	POKEY *pokey.POKEY
	PIA   *pia.PIA

	TV    *television.Television
	Input *input.Input

	// Log records diagnostics useful to a host but not actionable by the
	// core itself -- DMA overruns, a halted CPU, dropped frames.
	Log *logger.Logger

	sampleAccum float64
	audioBuf    []int16
	frameBuf    [television.FrameWidth * television.FrameHeight]uint8

	// Stop is a cooperative shutdown flag, checked at each scanline
	// boundary. Partial audio buffers are
	// discarded when it is set mid-frame.
	Stop bool
}

// NewAtari is the preferred method of initialisation for the Atari type.
// osROM must be 16KiB, basicROM 8KiB. tvSpec is "PAL", "NTSC" or "AUTO".
func NewAtari(osROM, basicROM []byte, tvSpec string) (*Atari, error) {
	tv, err := television.NewTelevision(tvSpec)
	if err != nil {
		return nil, err
	}

	mem, err := memory.NewMemory(osROM, basicROM)
	if err != nil {
		return nil, err
	}

	ins, err := instance.NewInstance(tv)
	if err != nil {
		return nil, err
	}

	pal := tv.Spec.ID == "PAL"

	g := gtia.NewGTIA(pal)
	pk := pokey.NewPOKEY(audioSampleRate)
	p := pia.NewPIA()
	an := antic.NewANTIC(mem, g, pal)
	mem.AttachChips(g, pk, p, an)

	c := cpu.NewCPU(mem)

	at := &Atari{
		Instance: ins,
		Mem:      mem,
		CPU:      c,
		ANTIC:    an,
		GTIA:     g,
		POKEY:    pk,
		PIA:      p,
		TV:       tv,
		Log:      logger.NewLogger(logSize),
	}

	p.OnPortBWrite = func(uint8) {
		mem.SetBanking(p.OSVisible(), p.BasicVisible(), p.SelfTestVisible())
	}
	at.Input = input.NewInput(pk, g, p)

	if err := c.Reset(); err != nil {
		return nil, err
	}

	return at, nil
}

// RunScanline executes one full scanline: the CPU consumes its DMA-reduced
// cycle budget (servicing NMI/IRQ at instruction boundaries and honouring
// WSYNC), ANTIC rasterises the line, POKEY accumulates its share of this
// frame's audio samples, and the scanline counter advances.
func (at *Atari) RunScanline() {
	budget := scanlineCycleBudget - at.ANTIC.DMACyclesForNextScanline()

	cyclesThisScanline := 0
	for cyclesThisScanline < budget && !at.ANTIC.WSYNCHalted() {
		if at.ANTIC.CheckPendingNMI() {
			at.CPU.RaiseNMI()
		}
		at.CPU.RaiseIRQ(at.POKEY.IRQPending())

		stepCycles := at.CPU.Step()
		for i := 0; i < stepCycles; i++ {
			at.POKEY.Tick()
		}
		cyclesThisScanline += stepCycles

		if at.CPU.IsHalted() {
			at.Log.Logf(logger.Allow, "cpu", "halted at pc %#04x", at.CPU.PC)
			break
		}
	}

	at.ANTIC.ReleaseWSYNC()
	at.ANTIC.RenderScanline()
	if row, ok := at.ANTIC.VisibleRowIndex(); ok {
		copy(at.frameBuf[row*television.FrameWidth:(row+1)*television.FrameWidth], at.ANTIC.Scanline[:])
	}
	at.appendScanlineAudio()

	at.TV.SetCoords(coords.TelevisionCoords{
		Frame:    at.ANTIC.Frame(),
		Scanline: at.ANTIC.CurrentScanline(),
		Clock:    cyclesThisScanline,
	})

	priorFrame := at.ANTIC.Frame()
	at.ANTIC.AdvanceScanline()

	if at.ANTIC.Frame() != priorFrame {
		at.endFrame()
	}
}

// appendScanlineAudio renders this scanline's share of the current frame's
// samples into audioBuf, tracking fractional sample counts in sampleAccum
// so successive scanlines don't round the same remainder away repeatedly.
func (at *Atari) appendScanlineAudio() {
	at.sampleAccum += audioSampleRate / (float64(at.TV.Spec.RefreshHz) * float64(at.ANTIC.FrameScanlines()))
	n := int(at.sampleAccum)
	at.sampleAccum -= float64(n)
	if n == 0 {
		return
	}
	at.audioBuf = at.POKEY.AppendSamples(at.audioBuf, n)
}

// endFrame presents the completed bitmap and audio burst, paces the
// emulation to the television's refresh rate, and drains any input queued
// by a host since the last frame.
func (at *Atari) endFrame() {
	if at.Stop {
		at.audioBuf = at.audioBuf[:0]
		return
	}

	at.TV.PresentFrame(at.frameBuf[:])
	at.TV.EmitAudio(at.audioBuf)
	at.audioBuf = at.audioBuf[:0]

	at.Input.Service()

	at.TV.PaceFrame()
}

// RunFrame runs scanlines until a new frame begins or Stop is set.
func (at *Atari) RunFrame() {
	startFrame := at.ANTIC.Frame()
	for !at.Stop && at.ANTIC.Frame() == startFrame {
		at.RunScanline()
	}
}
