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

// Package ports implements the two input ports of the Space Invaders cabinet.
// Port 1 carries the coin slot, the start buttons and the controls of the
// first player. Port 2 carries the DIP switches, the tilt switch and the
// controls of the second player.
//
// The CPU reads the ports with the IN instruction. The user changes the value
// of the ports through the HandleEvent() function of the Ports type.
package ports
