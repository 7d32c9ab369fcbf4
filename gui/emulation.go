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

package gui

import (
	"github.com/jetsetilly/gopher8080/govern"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/clocks"
	"github.com/jetsetilly/gopher8080/userinput"
	"github.com/jetsetilly/gopher8080/video"
)

// FrameRate is the rate at which the GUI drivers update the display.
const FrameRate = clocks.FrameRate

// Emulation is the running machine as seen by the GUI drivers.
type Emulation struct {
	Shared *hardware.Shared
	State  *govern.Governor

	// errors from the state-advance goroutine. a value on this channel ends
	// the emulation
	Errors <-chan error

	controllers userinput.Controllers

	fb     []uint8
	pixels []uint8
}

// NewEmulation is the preferred method of initialisation for the Emulation
// type.
func NewEmulation(shared *hardware.Shared, state *govern.Governor, errors <-chan error) *Emulation {
	return &Emulation{
		Shared: shared,
		State:  state,
		Errors: errors,
		fb:     make([]uint8, video.FramebufferLen),
		pixels: make([]uint8, video.PixelsLen),
	}
}

// Check returns any error sent by the state-advance goroutine. It does not
// block. If there is an error the state is changed to govern.Ending.
func (emu *Emulation) Check() error {
	select {
	case err := <-emu.Errors:
		if err != nil {
			emu.State.SetState(govern.Ending)
			return err
		}
	default:
	}
	return nil
}

// Pixels takes a snapshot of the framebuffer and unpacks it. The lock is held
// only for the duration of the copy. The returned slice is reused by the next
// call to Pixels().
func (emu *Emulation) Pixels() []uint8 {
	emu.Shared.Framebuffer(emu.fb)
	video.Unpack(emu.fb, emu.pixels)
	return emu.pixels
}

// UserInput forwards the event to the machine. A quit event changes the state
// to govern.Ending.
func (emu *Emulation) UserInput(ev userinput.Event) error {
	quit, err := emu.controllers.HandleUserInput(ev, emu.Shared)
	if quit {
		emu.State.SetState(govern.Ending)
	}
	return err
}

// Running returns true if the emulation has not ended.
func (emu *Emulation) Running() bool {
	return emu.State.State() != govern.Ending
}
