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

package ports

import "strings"

// Bits of Port 1.
const (
	Port1Coin    uint8 = 0x01
	Port1P2Start uint8 = 0x02
	Port1P1Start uint8 = 0x04
	Port1Always  uint8 = 0x08
	Port1P1Fire  uint8 = 0x10
	Port1P1Left  uint8 = 0x20
	Port1P1Right uint8 = 0x40
)

// mask of bits that can be changed with Set() and Clear()
const port1Mask = Port1Coin | Port1P2Start | Port1P1Start | Port1P1Fire | Port1P1Left | Port1P1Right

// Port1 is read by the CPU with IN 1. The bit 0x08 is tied high in the
// cabinet and is never stored. It is added to the value on every Read() so
// that it can not be cleared. Bit 0x80 is not connected and always reads as
// zero.
type Port1 struct {
	value uint8
}

// Read returns the value of the port as seen by the CPU.
func (p *Port1) Read() uint8 {
	return p.value | Port1Always
}

// Set the specified bits.
func (p *Port1) Set(bits uint8) {
	p.value |= bits & port1Mask
}

// Clear the specified bits.
func (p *Port1) Clear(bits uint8) {
	p.value &^= bits
}

func (p *Port1) String() string {
	s := strings.Builder{}
	s.WriteString("p1:")
	names := []struct {
		bit  uint8
		name string
	}{
		{Port1Coin, " coin"},
		{Port1P1Start, " 1up"},
		{Port1P2Start, " 2up"},
		{Port1P1Fire, " fire"},
		{Port1P1Left, " left"},
		{Port1P1Right, " right"},
	}
	for _, n := range names {
		if p.value&n.bit == n.bit {
			s.WriteString(n.name)
		}
	}
	return s.String()
}
