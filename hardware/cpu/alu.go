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

func (mc *CPU) add(a uint8, b uint8, carry bool) uint8 {
	var c uint8
	if carry {
		c = 1
	}
	r := uint16(a) + uint16(b) + uint16(c)
	mc.Status.Carry = r > 0xff
	mc.Status.AuxCarry = (a&0x0f)+(b&0x0f)+c > 0x0f
	mc.Status.SetSZP(uint8(r))
	return uint8(r)
}

// subtraction is addition of the complement. the carry flag indicates a
// borrow and so is the inverse of the carry out of the addition. the auxiliary
// carry is not inverted
func (mc *CPU) sub(a uint8, b uint8, borrow bool) uint8 {
	r := mc.add(a, ^b, !borrow)
	mc.Status.Carry = !mc.Status.Carry
	return r
}

func (mc *CPU) inr(v uint8) uint8 {
	v++
	mc.Status.AuxCarry = v&0x0f == 0x00
	mc.Status.SetSZP(v)
	return v
}

func (mc *CPU) dcr(v uint8) uint8 {
	v--
	mc.Status.AuxCarry = v&0x0f != 0x0f
	mc.Status.SetSZP(v)
	return v
}

// the auxiliary carry of ANA is the OR of bit 3 of the operands
func (mc *CPU) ana(a uint8, b uint8) uint8 {
	r := a & b
	mc.Status.Carry = false
	mc.Status.AuxCarry = (a|b)&0x08 == 0x08
	mc.Status.SetSZP(r)
	return r
}

func (mc *CPU) xra(a uint8, b uint8) uint8 {
	r := a ^ b
	mc.Status.Carry = false
	mc.Status.AuxCarry = false
	mc.Status.SetSZP(r)
	return r
}

func (mc *CPU) ora(a uint8, b uint8) uint8 {
	r := a | b
	mc.Status.Carry = false
	mc.Status.AuxCarry = false
	mc.Status.SetSZP(r)
	return r
}

func (mc *CPU) dad(v uint16) {
	r := uint32(mc.HL()) + uint32(v)
	mc.Status.Carry = r > 0xffff
	mc.setHL(uint16(r))
}

func (mc *CPU) daa() {
	carry := mc.Status.Carry
	var correction uint8

	lsb := mc.A & 0x0f
	msb := mc.A >> 4

	if mc.Status.AuxCarry || lsb > 9 {
		correction += 0x06
	}
	if carry || msb > 9 || (msb >= 9 && lsb > 9) {
		correction += 0x60
		carry = true
	}

	mc.A = mc.add(mc.A, correction, false)
	mc.Status.Carry = carry
}
