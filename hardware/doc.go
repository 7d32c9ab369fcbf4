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

// Package hardware is the base package for the Space Invaders emulation. It
// and its sub-packages contain everything required for a headless emulation.
//
// The Invaders type is the root of the emulation and contains references to
// all the sub-systems. The Update() function advances the emulation by one
// instruction, servicing any pending interrupt first.
//
// The Shared type guards an instance of Invaders with a mutex so that it can
// be used by more than one goroutine. The state-advance goroutine steps the
// machine while the display goroutine copies the framebuffer and the input
// handler changes the ports.
package hardware
