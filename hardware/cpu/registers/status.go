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

// Package registers implements the flags register of the Intel 8080.
package registers

import (
	"math/bits"
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU. When pushed to the stack with PUSH PSW the flags are packed as:
//
//	bit 7 6 5 4  3 2 1 0
//	    S Z 0 AC 0 P 1 CY
type StatusRegister struct {
	Sign     bool
	Zero     bool
	AuxCarry bool
	Parity   bool
	Carry    bool
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "F"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}
	flag := func(set bool, on rune, off rune) {
		if set {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}
	flag(sr.Sign, 'S', 's')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.AuxCarry, 'A', 'a')
	flag(sr.Parity, 'P', 'p')
	flag(sr.Carry, 'C', 'c')
	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// Value packs the StatusRegister into a value suitable for pushing onto the
// stack.
func (sr StatusRegister) Value() uint8 {
	// bit 1 is always set
	v := uint8(0x02)

	if sr.Sign {
		v |= 0x80
	}
	if sr.Zero {
		v |= 0x40
	}
	if sr.AuxCarry {
		v |= 0x10
	}
	if sr.Parity {
		v |= 0x04
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromValue unpacks an 8 bit value (taken from the stack, for example) into
// the StatusRegister.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Zero = v&0x40 == 0x40
	sr.AuxCarry = v&0x10 == 0x10
	sr.Parity = v&0x04 == 0x04
	sr.Carry = v&0x01 == 0x01
}

// SetSZP sets the sign, zero and parity flags according to the result of an
// operation.
func (sr *StatusRegister) SetSZP(result uint8) {
	sr.Sign = result&0x80 == 0x80
	sr.Zero = result == 0
	sr.Parity = bits.OnesCount8(result)%2 == 0
}
