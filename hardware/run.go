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

package hardware

import (
	"github.com/jetsetilly/gopher8080/govern"
	"github.com/jetsetilly/gopher8080/hardware/clocks"
)

// While the continueCheck() function only runs at the end of a CPU
// instruction it can still be expensive to do a full continue check every
// time.
//
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run the emulation as quickly as possible, without reference to wall clock
// time. Interrupts are raised every clocks.StatesPerInterrupt states. The
// continueCheck function is called after every instruction and the run ends
// when it returns a state other than govern.Running.
//
// The onInterrupt function, if not nil, is called after every interrupt
// request with the number of states since the previous request.
func (inv *Invaders) Run(continueCheck func() (govern.State, error), onInterrupt func(states int)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	next := RST1
	budget := 0

	state := govern.Running
	for state == govern.Running {
		cycles, err := inv.Step()
		if err != nil {
			return err
		}
		budget += cycles

		if budget >= clocks.StatesPerInterrupt {
			if onInterrupt != nil {
				onInterrupt(budget)
			}
			budget -= clocks.StatesPerInterrupt

			cycles, err := inv.Interrupt(next)
			if err != nil {
				return err
			}
			budget += cycles
			next = NextInterrupt(next)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
