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
	"fmt"

	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/hardware/shifter"
	"github.com/jetsetilly/gopher8080/hardware/sound"
)

// AudioSink implementations receive the sound events produced by the machine.
// SoundEvent() is called while the machine is locked and so should not
// block.
type AudioSink interface {
	SoundEvent(sound.Event)
}

// Invaders is the main container for the emulated components of the Space
// Invaders cabinet.
type Invaders struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	Ports   ports.Ports
	Shifter shifter.Shifter
	BankA   sound.Latch
	BankB   sound.Latch

	audio AudioSink

	// interrupts are received on this channel. a nil channel means that
	// interrupts must be requested directly with the Interrupt() function
	interrupts <-chan [3]uint8
}

// NewInvaders creates a new machine with the ROM image loaded at address
// zero. The audio sink and the interrupt channel can both be nil.
func NewInvaders(image []uint8, audio AudioSink, interrupts <-chan [3]uint8) (*Invaders, error) {
	inv := &Invaders{
		Mem:        memory.NewMemory(),
		BankA:      sound.NewLatch(sound.BankA),
		BankB:      sound.NewLatch(sound.BankB),
		audio:      audio,
		interrupts: interrupts,
	}

	if err := inv.Mem.LoadROM(image); err != nil {
		return nil, fmt.Errorf("hardware: %w", err)
	}

	inv.CPU = cpu.NewCPU(inv.Mem)
	inv.CPU.Reset()

	return inv, nil
}

func (inv *Invaders) String() string {
	return fmt.Sprintf("%s\n%s\n%s\n%s", inv.CPU, &inv.Ports.Port1, &inv.Ports.Port2, &inv.Shifter)
}

// Framebuffer returns the video memory. The returned slice refers to the
// memory itself. Use Shared.Framebuffer() to take a copy that can be used
// outside of the critical section.
func (inv *Invaders) Framebuffer() []uint8 {
	return inv.Mem.Framebuffer()
}

// Update services a pending interrupt if there is one. Otherwise it executes
// the next instruction. Returns the number of states taken.
func (inv *Invaders) Update() (int, error) {
	select {
	case instruction := <-inv.interrupts:
		return inv.Interrupt(instruction)
	default:
	}
	return inv.Step()
}

// Step executes the next instruction and services any port access. Returns
// the number of states taken.
func (inv *Invaders) Step() (int, error) {
	r, err := inv.CPU.ExecuteInstruction()
	if err != nil {
		return 0, fmt.Errorf("hardware: %w", err)
	}
	if err := inv.dispatch(r.Instruction); err != nil {
		return r.Cycles, err
	}
	return r.Cycles, nil
}

// Interrupt requests that the CPU execute the instruction. If interrupts are
// disabled the request is dropped and the number of states returned is zero.
func (inv *Invaders) Interrupt(instruction [3]uint8) (int, error) {
	cycles, err := inv.CPU.Interrupt(instruction)
	if err != nil {
		return 0, fmt.Errorf("hardware: %w", err)
	}
	return cycles, nil
}

// HandleEvent forwards the input event to the ports.
func (inv *Invaders) HandleEvent(ev ports.Event, d ports.EventData) (bool, error) {
	return inv.Ports.HandleEvent(ev, d)
}

func (inv *Invaders) forward(events []sound.Event) {
	if inv.audio == nil {
		return
	}
	for _, e := range events {
		inv.audio.SoundEvent(e)
	}
}
