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

// Package memory implements the 16K address space of the Space Invaders
// cabinet. The lower 8K is ROM and the upper 8K is RAM, most of which is
// video memory.
package memory

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/hardware/memory/memorymap"
)

// FramebufferLen is the number of bytes of video memory.
const FramebufferLen = int(memorymap.MemtopVRAM-memorymap.OriginVRAM) + 1

// Memory is the entire address space. It implements the cpubus.Memory
// interface.
type Memory struct {
	data [int(memorymap.Memtop) + 1]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

// LoadROM copies the ROM image into memory starting at address zero. The
// image must fit in the ROM area.
func (mem *Memory) LoadROM(image []uint8) error {
	if len(image) > int(memorymap.MemtopROM)+1 {
		return fmt.Errorf("memory: ROM image too large (%d bytes)", len(image))
	}
	copy(mem.data[memorymap.OriginROM:], image)
	return nil
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address&memorymap.Mask]
}

// Write implements the cpubus.Memory interface. Writes to ROM are ignored.
func (mem *Memory) Write(address uint16, data uint8) {
	address, area := memorymap.MapAddress(address)
	if area == memorymap.ROM {
		return
	}
	mem.data[address] = data
}

// Peek returns the value at the address without any side effects.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.Read(address)
}

// Poke writes the value to the address. Unlike Write() the value is written
// even if the address is in ROM.
func (mem *Memory) Poke(address uint16, data uint8) {
	mem.data[address&memorymap.Mask] = data
}

// Framebuffer returns the video memory. The returned slice refers to the
// memory itself and so should not be retained outside of the critical
// section protecting the machine.
func (mem *Memory) Framebuffer() []uint8 {
	return mem.data[memorymap.OriginVRAM : int(memorymap.MemtopVRAM)+1]
}
