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

import (
	"errors"
	"fmt"
)

// UnsupportedPort is returned when the CPU accesses a port that is not
// connected to anything. The ROM never does this and so it indicates a fault
// in the emulation. It is fatal to the run.
var UnsupportedPort = errors.New("unsupported port")

const (
	opOUT = 0xd3
	opIN  = 0xdb
)

// dispatch services port access for the instruction. instructions other than
// IN and OUT are ignored
func (inv *Invaders) dispatch(instruction [3]uint8) error {
	port := instruction[1]

	switch instruction[0] {
	case opOUT:
		a := inv.CPU.A
		switch port {
		case 2:
			inv.Shifter.SetOffset(a)
		case 3:
			inv.forward(inv.BankA.Write(a))
		case 4:
			inv.Shifter.Shift(a)
		case 5:
			inv.forward(inv.BankB.Write(a))
		case 6:
			// watchdog
		default:
			return fmt.Errorf("hardware: %w: OUT %d at %#04x", UnsupportedPort, port, inv.CPU.LastResult.Address)
		}

	case opIN:
		switch port {
		case 1:
			inv.CPU.A = inv.Ports.Port1.Read()
		case 2:
			inv.CPU.A = inv.Ports.Port2.Read()
		case 3:
			inv.CPU.A = inv.Shifter.Read()
		default:
			return fmt.Errorf("hardware: %w: IN %d at %#04x", UnsupportedPort, port, inv.CPU.LastResult.Address)
		}
	}

	return nil
}
