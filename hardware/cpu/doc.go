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

// Package cpu emulates the Intel 8080 CPU. The whole of the documented
// instruction set is implemented, along with the undocumented opcodes, which
// are aliases of documented instructions.
//
// Timing is only as accurate as the number of states taken by each
// instruction. The states are accumulated in the Cycles field of the CPU
// type and returned with the Result of each instruction.
//
// The IN and OUT instructions do not access any device. The CPU returns the
// instruction frame with the Result and it is the responsibility of the
// caller to decode the port number and to read or write the accumulator.
//
// Interrupts are requested with the Interrupt() function. The instruction
// given to the function is executed in place of the next instruction if
// interrupts are enabled. Only RST instructions are accepted.
package cpu
