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

// Package limiter paces frame production to a target refresh rate and
// measures the rate actually being achieved.
package limiter

import (
	"sync/atomic"
	"time"
)

// Limiter blocks CheckFrame() until enough time has passed for a frame to be
// produced at the configured refresh rate, and tracks the rate that is
// actually being achieved via MeasureActual().
type Limiter struct {
	rate float32

	ticker *time.Ticker

	// Measured holds the most recently measured frame rate, as a float32.
	// Safe for concurrent access.
	Measured atomic.Value

	frameCount int
	periodStart time.Time
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The refresh rate defaults to 60Hz until SetRefreshRate() is called.
func NewLimiter() *Limiter {
	lmtr := &Limiter{}
	lmtr.Measured.Store(float32(0.0))
	lmtr.SetRefreshRate(60.0)
	return lmtr
}

// SetRefreshRate changes the target refresh rate, restarting the
// measurement window.
func (lmtr *Limiter) SetRefreshRate(hz float32) {
	lmtr.rate = hz

	if lmtr.ticker != nil {
		lmtr.ticker.Stop()
	}

	period := time.Duration(float64(time.Second) / float64(hz))
	lmtr.ticker = time.NewTicker(period)

	lmtr.frameCount = 0
	lmtr.periodStart = time.Now()
}

// CheckFrame blocks until the next frame is due, according to the configured
// refresh rate.
func (lmtr *Limiter) CheckFrame() {
	if lmtr.ticker == nil {
		return
	}
	<-lmtr.ticker.C
}

// MeasureActual updates the Measured field with the frame rate actually
// being achieved, averaged over a rolling one-second window.
func (lmtr *Limiter) MeasureActual() {
	lmtr.frameCount++

	elapsed := time.Since(lmtr.periodStart)
	if elapsed < time.Second {
		return
	}

	rate := float32(lmtr.frameCount) / float32(elapsed.Seconds())
	lmtr.Measured.Store(rate)

	lmtr.frameCount = 0
	lmtr.periodStart = time.Now()
}
