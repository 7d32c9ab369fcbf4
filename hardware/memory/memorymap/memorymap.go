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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package memorymap describes the address space of the Space Invaders
// cabinet as seen by the 8080.
package memorymap

// Area represents the different areas of memory.
type Area int

// The different memory areas in the cabinet.
const (
	Undefined Area = iota
	ROM
	RAM
	VRAM
)

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case RAM:
		return "RAM"
	case VRAM:
		return "VRAM"
	}

	return "undefined"
}

// The origin and memory top for each area of memory. VRAM is part of RAM but
// it is useful to treat it as a distinct area.
const (
	OriginROM  = uint16(0x0000)
	MemtopROM  = uint16(0x1fff)
	OriginRAM  = uint16(0x2000)
	MemtopRAM  = uint16(0x23ff)
	OriginVRAM = uint16(0x2400)
	MemtopVRAM = uint16(0x3fff)
)

// Memtop is the top most address of memory. Only 14 address lines are
// decoded so memory above Memtop is a mirror of the memory below it.
const Memtop = uint16(0x3fff)

// Mask keeps only the decoded address lines.
const Mask = Memtop

// MapAddress translates the address argument from mirror space to primary
// space and returns the area it belongs to.
func MapAddress(address uint16) (uint16, Area) {
	address &= Mask

	if address <= MemtopROM {
		return address, ROM
	}
	if address <= MemtopRAM {
		return address, RAM
	}
	return address, VRAM
}
