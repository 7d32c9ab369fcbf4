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

// Package userinput handles input from the real hardware used by the player
// of the emulator to control the emulated cabinet.
//
// It can be thought of as a translation layer between the GUI implementation
// and the hardware/ports package. The GUI drivers produce Event values which
// are given to Controllers.HandleUserInput(), which in turn forwards port
// events to the machine.
//
// The GUI implementation in use during development was SDL and so key names
// follow the names given by SDL: "Left", "Right", "Space", "F1", etc.
package userinput
