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

// Package pokey implements the POKEY audio/keyboard/timer chip: four square
// wave channels with polynomial-noise distortion, a keyboard code latch, and
// the active-low IRQ enable/status registers shared with the CPU.
package pokey

// register offsets, after masking the chip-select address with 0x0f.
const (
	regAUDF1  = 0x00
	regAUDC1  = 0x01
	regAUDF2  = 0x02
	regAUDC2  = 0x03
	regAUDF3  = 0x04
	regAUDC3  = 0x05
	regAUDF4  = 0x06
	regAUDC4  = 0x07
	regAUDCTL = 0x08
	regSTIMER = 0x09
	regSKRES  = 0x0a
	regPOTGO  = 0x0b
	regSEROUT = 0x0d
	regIRQEN  = 0x0e
	regSKCTL  = 0x0f

	regALLPOT = 0x08
	regKBCODE = 0x09
	regRANDOM = 0x0a
	regSERIN  = 0x0d
	regIRQST  = 0x0e
	regSKSTAT = 0x0f
)

// IRQ source bits within IRQEN/IRQST (active-low: a clear bit asserts).
const (
	IRQBreak    = 0x80
	IRQKeyboard = 0x40
	IRQSerOut   = 0x10
	IRQSerOutF  = 0x08
	IRQSerIn    = 0x20
	IRQTimer4   = 0x04
	IRQTimer2   = 0x02
	IRQTimer1   = 0x01
)

// AUDCTL bits.
const (
	audctlPoly9       = 0x80
	audctlCh1Fast     = 0x40
	audctlCh3Fast     = 0x20
	audctlCh1Ch2Join  = 0x10
	audctlCh3Ch4Join  = 0x08
	audctlCh1HighPass = 0x04
	audctlCh2HighPass = 0x02
	audctlSlowClock   = 0x01
)

const (
	fastClockDivisor = 1
	baseClockHz      = 64000.0
	slowClockHz      = 15000.0
	mainClockHz      = 1789790.0
)

// Channel is one of POKEY's four audio generators.
type Channel struct {
	AUDF uint8
	AUDC uint8

	period   int
	counter  int
	output   uint8
	hpLatch  uint8
}

func (c *Channel) volume() int {
	return int(c.AUDC & 0x0f)
}

func (c *Channel) distortion() uint8 {
	return (c.AUDC >> 5) & 0x07
}

func (c *Channel) volumeOnly() bool {
	return c.AUDC&0x10 != 0
}

// POKEY is the audio/keyboard/timer chip.
type POKEY struct {
	Channels [4]Channel
	AUDCTL   uint8

	IRQEN  uint8
	IRQST  uint8
	SKCTL  uint8
	SKSTAT uint8
	KBCODE uint8

	Pot [8]uint8

	poly4  *poly
	poly5  *poly
	poly9  *poly
	poly17 *poly

	sampleRate float64
	accum      [4]float64
}

// NewPOKEY is the preferred method of initialisation for the POKEY type.
// sampleRate is the audio sink's output sample rate, typically 44100.
func NewPOKEY(sampleRate float64) *POKEY {
	p := &POKEY{
		IRQEN:      0x00,
		IRQST:      0xff,
		SKSTAT:     0xff,
		sampleRate: sampleRate,
		poly4:      newPoly4(),
		poly5:      newPoly5(),
		poly9:      newPoly9(),
		poly17:     newPoly17(),
	}
	for i := range p.Pot {
		p.Pot[i] = 0xe0
	}
	p.recalcPeriods()
	return p
}

// Reset returns the chip to its power-on state.
func (p *POKEY) Reset() {
	rate := p.sampleRate
	*p = *NewPOKEY(rate)
}

// ReadRegister implements bus.ChipRegisters.
func (p *POKEY) ReadRegister(addr uint8) uint8 {
	a := addr & 0x0f
	switch {
	case a <= 0x07:
		return p.Pot[a]
	case a == regALLPOT:
		return 0x00
	case a == regKBCODE:
		return p.KBCODE
	case a == regRANDOM:
		return p.randomRegister()
	case a == regSERIN:
		return 0x00
	case a == regIRQST:
		return p.IRQST
	case a == regSKSTAT:
		return p.SKSTAT
	}
	return 0xff
}

// WriteRegister implements bus.ChipRegisters.
func (p *POKEY) WriteRegister(addr uint8, data uint8) {
	a := addr & 0x0f
	switch a {
	case regAUDF1:
		p.Channels[0].AUDF = data
	case regAUDC1:
		p.Channels[0].AUDC = data
	case regAUDF2:
		p.Channels[1].AUDF = data
	case regAUDC2:
		p.Channels[1].AUDC = data
	case regAUDF3:
		p.Channels[2].AUDF = data
	case regAUDC3:
		p.Channels[2].AUDC = data
	case regAUDF4:
		p.Channels[3].AUDF = data
	case regAUDC4:
		p.Channels[3].AUDC = data
	case regAUDCTL:
		p.AUDCTL = data
	case regSTIMER:
		for i := range p.Channels {
			p.Channels[i].counter = 0
		}
	case regSKRES:
		p.SKSTAT = 0xff
	case regPOTGO:
		// pot scanning is not time-accurate; values are read back directly
	case regSEROUT:
		// serial I/O is out of scope; writes are accepted and ignored
	case regIRQEN:
		// acknowledge any source whose enable bit has been newly cleared
		p.IRQST |= p.IRQEN &^ data
		p.IRQEN = data
	case regSKCTL:
		p.SKCTL = data
	}
	p.recalcPeriods()
}

func (p *POKEY) recalcPeriods() {
	for i := range p.Channels {
		p.Channels[i].period = p.channelPeriod(i)
	}
}

// joined reports whether channel idx (0-based) is the low half of a 16-bit
// joined pair.
func (p *POKEY) joined(idx int) bool {
	switch idx {
	case 0:
		return p.AUDCTL&audctlCh1Ch2Join != 0
	case 2:
		return p.AUDCTL&audctlCh3Ch4Join != 0
	}
	return false
}

func (p *POKEY) fastClock(idx int) bool {
	switch idx {
	case 0:
		return p.AUDCTL&audctlCh1Fast != 0
	case 2:
		return p.AUDCTL&audctlCh3Fast != 0
	}
	return false
}

func (p *POKEY) channelPeriod(idx int) int {
	if p.fastClock(idx) {
		return int(p.Channels[idx].AUDF) + 4
	}

	if p.joined(idx) {
		lo := p.Channels[idx].AUDF
		hi := p.Channels[idx+1].AUDF
		freq := uint16(hi)<<8 | uint16(lo)
		return int(freq) + 7
	}

	// the upper half of a joined pair free-runs at its own divider; POKEY
	// hardware disables it from independently toggling, but we still need a
	// sane period so its own distortion/volume logic has something to gate
	if idx == 1 && p.joined(0) {
		return int(p.Channels[idx].AUDF) + 1
	}
	if idx == 3 && p.joined(2) {
		return int(p.Channels[idx].AUDF) + 1
	}

	return int(p.Channels[idx].AUDF) + 1
}

func (p *POKEY) baseClockHz() float64 {
	if p.AUDCTL&audctlSlowClock != 0 {
		return slowClockHz
	}
	return baseClockHz
}

// stepPolys advances the continuously-running polynomial counters by one
// tick; they run independently of channel dividers.
func (p *POKEY) stepPolys() {
	p.poly4.Step()
	p.poly5.Step()
	p.poly9.Step()
	p.poly17.Step()
}

func (p *POKEY) longPoly() uint8 {
	if p.AUDCTL&audctlPoly9 != 0 {
		return p.poly9.Output()
	}
	return uint8(p.poly17.Output())
}

func (p *POKEY) randomRegister() uint8 {
	// RANDOM exposes the current state of the active long poly counter,
	// masked to a byte; a real unit XORs several taps together but the
	// exact bit-spread is not specified and is not required for the
	// keyboard/timer behaviour this core models.
	if p.AUDCTL&audctlPoly9 != 0 {
		return uint8(p.poly9.value)
	}
	return uint8(p.poly17.value)
}

func distortionPasses(distortion uint8, p4, p5, plong uint8) bool {
	switch distortion {
	case 0:
		return p5 != 0 && plong != 0
	case 1:
		return p5 != 0
	case 2:
		return p5 != 0 && p4 != 0
	case 3:
		return p5 != 0
	case 4:
		return plong != 0
	case 5:
		return true
	case 6:
		return p4 != 0
	case 7:
		return true
	}
	return true
}

// stepChannel advances one channel's divider by one base-clock tick,
// toggling its square output on underflow.
func (c *Channel) stepChannel() {
	c.counter--
	if c.counter <= 0 {
		c.counter = c.period
		if c.counter <= 0 {
			c.counter = 1
		}
		if c.output == 0 {
			c.output = 1
		} else {
			c.output = 0
		}
	}
}

// Tick advances the chip by one main-clock cycle. Called once per CPU cycle
// from the scanline loop so that the polynomial counters run at full speed
// regardless of the host's audio sample rate.
func (p *POKEY) Tick() {
	p.stepPolys()

	for i := range p.Channels {
		if p.fastClock(i) {
			p.Channels[i].stepChannel()
		}
	}
}

// AppendSamples synthesises n audio samples at the configured sample rate
// and appends them to out, returning the extended slice.
// This models the non-fast-clocked channels at sample-rate granularity,
// which is accurate enough for the 64kHz/15kHz base clock rates relative to
// 44.1kHz output.
func (p *POKEY) AppendSamples(out []int16, n int) []int16 {
	p4 := p.poly4.Output()
	p5 := p.poly5.Output()
	plong := p.longPoly()

	for s := 0; s < n; s++ {
		var mix int32

		for i := range p.Channels {
			ch := &p.Channels[i]

			if !p.fastClock(i) {
				rate := p.baseClockHz()
				step := rate / p.sampleRate
				ch.counter -= int(step * 256)
				if ch.counter <= 0 {
					ch.counter += ch.period * 256
					if ch.output == 0 {
						ch.output = 1
					} else {
						ch.output = 0
					}
				}
			}

			var level int32
			if ch.volumeOnly() {
				level = int32(ch.volume())
			} else if ch.output != 0 && distortionPasses(ch.distortion(), p4, p5, plong) {
				level = int32(ch.volume())
			}

			sample := level * 2048

			if (i == 0 && p.AUDCTL&audctlCh1HighPass != 0) || (i == 1 && p.AUDCTL&audctlCh2HighPass != 0) {
				filtered := sample - int32(ch.hpLatch)
				ch.hpLatch = uint8(sample >> 8)
				sample = filtered
			}

			mix += sample
		}

		if mix > 32767 {
			mix = 32767
		} else if mix < -32768 {
			mix = -32768
		}

		out = append(out, int16(mix))
	}

	return out
}

// SetKey latches a keycode into KBCODE and asserts the keyboard IRQ if
// enabled. pressed == false sets the active-low "key down" bit in SKSTAT
// again, marking the key as released, and leaves IRQST untouched (a real
// release does not interrupt).
func (p *POKEY) SetKey(keycode uint8, pressed bool) {
	if pressed {
		p.KBCODE = keycode
		p.SKSTAT &^= 0x04
		if p.IRQEN&IRQKeyboard != 0 {
			p.IRQST &^= IRQKeyboard
		}
	} else {
		p.SKSTAT |= 0x04
	}
}

// SetBreakKey asserts or releases the BREAK key IRQ source.
func (p *POKEY) SetBreakKey(pressed bool) {
	if pressed && p.IRQEN&IRQBreak != 0 {
		p.IRQST &^= IRQBreak
	} else {
		p.IRQST |= IRQBreak
	}
}

// IRQPending reports whether any enabled IRQ source is currently asserting.
// IRQST is active low, so a source is asserting when its bit is clear;
// IRQPending is true iff (IRQST & IRQEN) != IRQEN.
func (p *POKEY) IRQPending() bool {
	return p.IRQST&p.IRQEN != p.IRQEN
}
