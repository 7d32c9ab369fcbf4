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

// Package govern defines the condition of the emulation as seen by the main
// loop and the GUI drivers.
package govern

import "sync/atomic"

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// EmulatorStart is the default state and should never be entered once the
// emulator has begun. Initialising covers ROM loading and the creation of
// the GUI. Ending is entered when the window has been closed or when the
// machine has stopped with an error.
const (
	EmulatorStart State = iota
	Initialising
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "EmulatorStart"
	case Initialising:
		return "Initialising"
	case Running:
		return "Running"
	case Ending:
		return "Ending"
	}

	return ""
}

// Governor holds the current state. It can be shared between goroutines.
type Governor struct {
	state atomic.Int32
}

// State returns the current state.
func (g *Governor) State() State {
	return State(g.state.Load())
}

// SetState changes the current state. The Ending state is final and once
// entered any request to change to another state is ignored. Returns true if
// the state has been changed.
func (g *Governor) SetState(s State) bool {
	for {
		cur := g.state.Load()
		if State(cur) == Ending {
			return s == Ending
		}
		if g.state.CompareAndSwap(cur, int32(s)) {
			return true
		}
	}
}
