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

// Package clocks defines the constant values that define the speed of the
// Space Invaders cabinet.
//
// The 8080 runs at 2MHz. The video hardware raises an interrupt at the middle
// of the screen and another at the start of vertical blank, giving two
// interrupts per 60Hz frame.
package clocks

const (
	// number of CPU states per second
	ClockRate = 2000000

	// number of interrupts per second. RST 1 and RST 2 alternate
	InterruptRate = 120

	// number of frames per second
	FrameRate = 60
)

// StatesPerInterrupt is the number of states between interrupts.
const StatesPerInterrupt = ClockRate / InterruptRate
