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

// Package shifter implements the external shift register of the Space Invaders
// cabinet. The 8080 has no barrel shifter and the game uses this device to
// draw sprites at arbitrary pixel offsets.
//
// Writing to port 4 pushes a byte into the top of the 16 bit register.
// Writing to port 2 selects the offset. Reading from port 3 returns the eight
// bits that start offset bits below the top of the register.
package shifter

import "fmt"

// Shifter is the video shift register.
type Shifter struct {
	register uint16
	offset   uint8
}

// SetOffset sets the read offset. Only the lower three bits of the value are
// used.
func (sh *Shifter) SetOffset(v uint8) {
	sh.offset = v & 0x07
}

// Shift pushes the fill byte into the top of the register. The previous top
// byte moves to the bottom and the previous bottom byte is lost.
func (sh *Shifter) Shift(fill uint8) {
	sh.register = uint16(fill)<<8 | sh.register>>8
}

// Read returns the eight bits of the register starting at the offset. An
// offset of zero returns the top byte.
func (sh *Shifter) Read() uint8 {
	return uint8(sh.register >> (8 - sh.offset))
}

func (sh *Shifter) String() string {
	return fmt.Sprintf("shifter: %#04x offset=%d", sh.register, sh.offset)
}
