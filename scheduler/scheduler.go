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

// Package scheduler runs the two background activities of the emulation. The
// state-advance activity steps the machine in proportion to the wall-clock
// time that has passed and the interrupt activity raises the video
// interrupts. The third activity, rendering, is the responsibility of the GUI
// driver.
//
// Both activities tick at a fixed rate and end when their context is
// cancelled:
//
//	ints := make(chan [3]uint8)
//	inv, _ := hardware.NewInvaders(image, mixer, ints)
//	shared := hardware.NewShared(inv)
//
//	go scheduler.GenerateInterrupts(ctx, ints, clocks.InterruptRate)
//	go func() {
//		errs <- scheduler.StateAdvance(ctx, shared, clocks.InterruptRate, nil)
//	}()
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/clocks"
	"github.com/jetsetilly/gopher8080/performance/limiter"
)

// Machine is the view of the emulation needed by StateAdvance(). It is
// satisfied by hardware.Shared.
type Machine interface {
	Update() (int, error)
}

// Clock returns the current time. A nil Clock is the same as time.Now.
type Clock func() time.Time

// the maximum number of states that can be owed to the machine. if the
// state-advance goroutine is starved for a long time (the process has been
// suspended for example) the machine should not try to catch up all at once
const maxBudget = clocks.ClockRate / 10

// StateAdvance steps the machine rate times per second. On every tick the
// time elapsed since the previous tick is converted into a number of states
// and the machine is updated until that budget is spent.
//
// The machine is updated one instruction at a time so that the lock in
// hardware.Shared is released between instructions.
//
// Returns nil when the context is cancelled. Any error from the machine ends
// the activity and is returned.
func StateAdvance(ctx context.Context, m Machine, rate float64, clock Clock) error {
	if clock == nil {
		clock = time.Now
	}

	lim := limiter.NewFPSLimiter(ctx, rate)

	last := clock()
	budget := 0

	for lim.Wait() {
		now := clock()
		elapsed := now.Sub(last)
		last = now

		if elapsed > time.Second {
			elapsed = time.Second
		}
		budget += int(elapsed * clocks.ClockRate / time.Second)

		if budget > maxBudget {
			budget = maxBudget
		}

		for budget > 0 {
			cycles, err := m.Update()
			if err != nil {
				return fmt.Errorf("scheduler: %w", err)
			}
			budget -= cycles
		}
	}

	return nil
}

// GenerateInterrupts sends the video interrupts on the channel rate times per
// second. The first interrupt sent is RST 1 and then RST 2, alternately.
//
// The channel should be unbuffered. The send blocks until the machine takes
// the interrupt or the context is cancelled.
func GenerateInterrupts(ctx context.Context, out chan<- [3]uint8, rate float64) {
	lim := limiter.NewFPSLimiter(ctx, rate)

	next := hardware.RST1
	for lim.Wait() {
		select {
		case out <- next:
		case <-ctx.Done():
			return
		}
		next = hardware.NextInterrupt(next)
	}
}
