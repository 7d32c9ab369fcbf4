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

// Package instructions defines the instruction set of the Intel 8080. The
// definitions are used by the CPU to decode and time instructions and by the
// disassembly package to format them.
package instructions

import (
	"fmt"
	"strings"
)

// Category of an instruction describes its effect.
type Category int

// List of instruction categories.
const (
	Move Category = iota
	Arithmetic
	Logical
	Branch
	Stack
	IO
	Control
)

func (c Category) String() string {
	switch c {
	case Move:
		return "Move"
	case Arithmetic:
		return "Arithmetic"
	case Logical:
		return "Logical"
	case Branch:
		return "Branch"
	case Stack:
		return "Stack"
	case IO:
		return "IO"
	case Control:
		return "Control"
	}
	return "unknown category"
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode   uint8
	Operator Operator

	// the printed form of the instruction. placeholders in the operands
	// string (d8, d16 and a16) are replaced by the operand bytes by the
	// Format() function
	Mnemonic string
	Operands string

	Bytes int

	// number of states taken by the instruction. for conditional calls and
	// returns the Cycles field is the cost when the condition is not met and
	// CyclesTaken is the cost when it is. for all other instructions the two
	// fields are the same
	Cycles      int
	CyclesTaken int

	Category Category

	// undocumented opcodes are aliases of documented instructions
	Undocumented bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	s := strings.TrimSpace(fmt.Sprintf("%s %s", defn.Mnemonic, defn.Operands))
	if defn.Cycles != defn.CyclesTaken {
		return fmt.Sprintf("%02x %s +%dbytes (%d/%d cycles) [%s]", defn.OpCode, s, defn.Bytes, defn.CyclesTaken, defn.Cycles, defn.Category)
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [%s]", defn.OpCode, s, defn.Bytes, defn.Cycles, defn.Category)
}

// Format returns the instruction in assembly form. Operand bytes are taken
// from the instruction frame, which should have been fetched with the number
// of bytes indicated by the definition.
func (defn Definition) Format(instruction [3]uint8) string {
	ops := defn.Operands
	switch defn.Bytes {
	case 2:
		ops = strings.Replace(ops, "d8", fmt.Sprintf("$%02x", instruction[1]), 1)
	case 3:
		v := fmt.Sprintf("$%04x", uint16(instruction[2])<<8|uint16(instruction[1]))
		ops = strings.Replace(ops, "d16", v, 1)
		ops = strings.Replace(ops, "a16", v, 1)
	}
	if ops == "" {
		return defn.Mnemonic
	}
	return fmt.Sprintf("%s %s", defn.Mnemonic, ops)
}

// IsConditional returns true if the cost of the instruction depends on the
// condition being met.
func (defn Definition) IsConditional() bool {
	return defn.Cycles != defn.CyclesTaken
}
