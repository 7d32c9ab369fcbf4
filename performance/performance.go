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

package performance

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash"

	"github.com/jetsetilly/gopher8080/govern"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/clocks"
)

// the maximum number of interrupts recorded in Results.States. one minute of
// emulated time
const maxStates = clocks.InterruptRate * 60

// Results of a call to Measure().
type Results struct {
	// wall clock time of the measurement
	Elapsed time.Duration

	// number of states executed by the CPU
	States uint64

	// number of interrupts requested and the number of frames those
	// interrupts represent
	Interrupts int
	Frames     int

	// the number of states between each interrupt request, up to a maximum
	// of one minute of emulated time
	StatesPerInterrupt []int

	// xxhash of the framebuffer at the end of the run
	Digest uint64
}

func (r *Results) String() string {
	mhz, accuracy := CalcMHz(r.States, r.Elapsed.Seconds())
	fps, _ := CalcFPS(r.Frames, r.Elapsed.Seconds())
	return fmt.Sprintf("%.2f MHz (%d states in %.2f seconds) %.1f%%, %.2f fps",
		mhz, r.States, r.Elapsed.Seconds(), accuracy, fps)
}

// Measure runs a new machine with the ROM image for the duration. The machine
// is returned along with the results so that it can be inspected.
func Measure(image []uint8, duration time.Duration) (*Results, *hardware.Invaders, error) {
	inv, err := hardware.NewInvaders(image, nil, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("performance: %w", err)
	}

	res := &Results{
		StatesPerInterrupt: make([]int, 0, maxStates),
	}

	start := time.Now()

	timedOut := make(chan struct{})
	timer := time.AfterFunc(duration, func() {
		close(timedOut)
	})
	defer timer.Stop()

	// only check for end of measurement period every PerformanceBrake CPU
	// instructions
	performanceBrake := 0

	continueCheck := func() (govern.State, error) {
		performanceBrake++
		if performanceBrake >= hardware.PerformanceBrake {
			performanceBrake = 0
			select {
			case <-timedOut:
				return govern.Ending, nil
			default:
			}
		}
		return govern.Running, nil
	}

	onInterrupt := func(states int) {
		res.Interrupts++
		if len(res.StatesPerInterrupt) < maxStates {
			res.StatesPerInterrupt = append(res.StatesPerInterrupt, states)
		}
	}

	err = inv.Run(continueCheck, onInterrupt)
	res.Elapsed = time.Since(start)
	if err != nil {
		return nil, nil, fmt.Errorf("performance: %w", err)
	}

	res.States = inv.CPU.Cycles
	res.Frames = res.Interrupts * clocks.FrameRate / clocks.InterruptRate
	res.Digest = xxhash.Sum64(inv.Framebuffer())

	return res, inv, nil
}
