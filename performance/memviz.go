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

package performance

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopher8080/hardware"
)

// number of stack entries included in the machine state
const stackDepth = 8

type registers struct {
	PC, SP  uint16
	A       uint8
	BC      uint16
	DE      uint16
	HL      uint16
	Status  string
	Enabled bool
	Halted  bool
	Cycles  uint64
}

type dipSwitches struct {
	Lives          int
	ExtraLifeAt    int
	PricingDisplay bool
}

type ioState struct {
	Port1   uint8
	Port2   uint8
	DIP     dipSwitches
	Shifter uint8
	BankA   uint8
	BankB   uint8
}

// machineState is a copy of the parts of the machine that are interesting to
// look at in a graph. the memory and the instruction table are left out
// because they are too large to be useful
type machineState struct {
	CPU   registers
	Stack []uint16
	IO    ioState
}

func newMachineState(inv *hardware.Invaders) machineState {
	ms := machineState{
		CPU: registers{
			PC:      inv.CPU.PC,
			SP:      inv.CPU.SP,
			A:       inv.CPU.A,
			BC:      inv.CPU.BC(),
			DE:      inv.CPU.DE(),
			HL:      inv.CPU.HL(),
			Status:  inv.CPU.Status.String(),
			Enabled: inv.CPU.InterruptsEnabled,
			Halted:  inv.CPU.Halted,
			Cycles:  inv.CPU.Cycles,
		},
		IO: ioState{
			Port1: inv.Ports.Port1.Read(),
			Port2: inv.Ports.Port2.Read(),
			DIP: dipSwitches{
				Lives:          inv.Ports.Port2.Lives(),
				ExtraLifeAt:    inv.Ports.Port2.ExtraLifeAt(),
				PricingDisplay: inv.Ports.Port2.PricingDisplay(),
			},
			Shifter: inv.Shifter.Read(),
			BankA:   inv.BankA.Value(),
			BankB:   inv.BankB.Value(),
		},
	}

	sp := inv.CPU.SP
	for range stackDepth {
		lo := uint16(inv.Mem.Peek(sp))
		hi := uint16(inv.Mem.Peek(sp + 1))
		ms.Stack = append(ms.Stack, hi<<8|lo)
		sp += 2
	}

	return ms
}

// Map writes the machine state as a graphviz dot file.
func (ms *machineState) Map(w io.Writer) {
	memviz.Map(w, ms)
}
