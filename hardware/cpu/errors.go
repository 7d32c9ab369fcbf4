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

import "errors"

// Sentinel errors returned by the CPU. Returned errors wrap these values and
// can be tested with errors.Is().
var (
	// the opcode has no definition
	DecodeError = errors.New("cannot decode instruction")

	// the instruction given to Interrupt() is not an RST instruction
	InterruptError = errors.New("interrupt instruction must be RST")
)
