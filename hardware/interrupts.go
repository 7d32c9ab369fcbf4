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

package hardware

// The two interrupts raised by the video hardware. RST 1 is raised when the
// beam is at the middle of the screen and RST 2 at the start of vertical
// blank.
var (
	RST1 = [3]uint8{0xcf, 0x00, 0x00}
	RST2 = [3]uint8{0xd7, 0x00, 0x00}
)

// NextInterrupt returns the interrupt that follows the one given.
func NextInterrupt(last [3]uint8) [3]uint8 {
	if last == RST1 {
		return RST2
	}
	return RST1
}
