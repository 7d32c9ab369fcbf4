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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
)

// Result records the outcome of a single call to ExecuteInstruction() or
// Interrupt().
type Result struct {
	// the address the instruction was fetched from. for an interrupt this is
	// the address of the instruction that would have been executed
	Address uint16

	// the instruction definition
	Defn *instructions.Definition

	// the instruction frame. bytes beyond the length of the instruction are
	// zero
	Instruction [3]uint8

	// number of states taken by the instruction
	Cycles int

	// the instruction was injected by an interrupt
	FromInterrupt bool

	// the CPU was halted and no instruction was executed
	Halted bool
}

func (r Result) String() string {
	if r.Halted {
		return fmt.Sprintf("%04x halted", r.Address)
	}
	if r.Defn == nil {
		return fmt.Sprintf("%04x undecoded", r.Address)
	}
	s := fmt.Sprintf("%04x %s (%d)", r.Address, r.Defn.Format(r.Instruction), r.Cycles)
	if r.FromInterrupt {
		s = fmt.Sprintf("%s interrupt", s)
	}
	return s
}
