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

// Package cpubus defines the view of memory from the CPU.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Implementations should map the address to its primary mirror and
// silently discard writes to read-only areas, as the hardware does.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}
