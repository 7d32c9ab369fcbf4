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

package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8080/performance/limiter"
	"github.com/jetsetilly/gopher8080/test"
)

func TestPeriod(t *testing.T) {
	test.ExpectEquality(t, limiter.Period(120), time.Second/120)
	test.ExpectEquality(t, limiter.Period(60), time.Second/60)
}

func TestRate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lim := limiter.NewFPSLimiter(ctx, 120)
	test.ExpectEquality(t, lim.Rate(), 120.0)

	// a quarter of a second at 120Hz should give roughly 30 ticks. the
	// tolerance is generous because the test machine may be busy
	start := time.Now()
	ticks := 0
	for time.Since(start) < 250*time.Millisecond {
		if !lim.Wait() {
			break
		}
		ticks++
	}
	test.ExpectSuccess(t, ticks > 10)
	test.ExpectSuccess(t, ticks < 60)
}

func TestCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	lim := limiter.NewFPSLimiter(ctx, 1)

	// first tick is immediate
	test.ExpectSuccess(t, lim.Wait())

	cancel()

	done := make(chan bool)
	go func() {
		for lim.Wait() {
		}
		done <- true
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("limiter did not stop after context cancellation")
	}
}

func TestTickChannel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	lim := limiter.NewFPSLimiter(ctx, 1000)

	tick, ok := <-lim.Tick()
	test.ExpectSuccess(t, ok)
	test.ExpectFailure(t, tick.IsZero())
	test.ExpectFailure(t, tick.After(time.Now()))

	cancel()

	// the channel is closed once the limiter has stopped. ticks already
	// waiting to be sent may still be received
	timeout := time.After(time.Second)
	for {
		select {
		case _, ok := <-lim.Tick():
			if !ok {
				return
			}
		case <-timeout:
			t.Fatalf("tick channel was not closed after context cancellation")
		}
	}
}
