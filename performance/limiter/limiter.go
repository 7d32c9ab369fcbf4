// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package limiter triggers events at a fixed rate. It is used by the
// scheduler to pace the machine, the interrupt generator and the display.
//
// A new FpsLimiter is created with a context and a rate in hertz:
//
//	lim := limiter.NewFPSLimiter(ctx, 60)
//
// Operations can then be paced with the Wait() function. Wait() returns false
// once the context has been cancelled:
//
//	for lim.Wait() {
//		renderImage()
//	}
package limiter

import (
	"context"
	"time"
)

// FpsLimiter will trigger at the requested number of times per second.
type FpsLimiter struct {
	rate   float64
	period time.Duration

	tick chan time.Time
}

// Period returns the duration of a single tick for the given rate.
func Period(rate float64) time.Duration {
	return time.Duration(float64(time.Second) / rate)
}

// NewFPSLimiter is the preferred method of initialisation for the FpsLimiter
// type. The ticker goroutine ends when the context is cancelled.
func NewFPSLimiter(ctx context.Context, rate float64) *FpsLimiter {
	lim := &FpsLimiter{
		rate:   rate,
		period: Period(rate),
		tick:   make(chan time.Time),
	}

	go func() {
		defer close(lim.tick)

		// the sleep duration is adjusted every tick to account for drift
		adjusted := lim.period
		t := time.Now()

		for {
			select {
			case lim.tick <- t:
			case <-ctx.Done():
				return
			}

			select {
			case <-time.After(adjusted):
			case <-ctx.Done():
				return
			}

			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.period
			if adjusted < 0 {
				adjusted = 0
			}
			t = nt
		}
	}()

	return lim
}

// Rate returns the rate of the limiter in hertz.
func (lim *FpsLimiter) Rate() float64 {
	return lim.rate
}

// Wait blocks until the next tick. Returns false if the limiter has stopped
// because its context has been cancelled.
func (lim *FpsLimiter) Wait() bool {
	_, ok := <-lim.tick
	return ok
}

// Tick returns the channel on which ticks are sent, for use in a select
// statement alongside other channels. The value sent is the time at which the
// tick was scheduled. The channel is closed when the limiter stops.
func (lim *FpsLimiter) Tick() <-chan time.Time {
	return lim.tick
}
