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
	"sync"

	"github.com/jetsetilly/gopher8080/hardware/ports"
)

// Shared guards an instance of Invaders with a mutex. The machine is only
// accessible through the functions of this type, each of which holds the
// lock for the duration of the call.
type Shared struct {
	crit sync.Mutex
	inv  *Invaders
}

// NewShared is the preferred method of initialisation for the Shared type.
func NewShared(inv *Invaders) *Shared {
	return &Shared{inv: inv}
}

// Update the machine by one step. See Invaders.Update().
func (s *Shared) Update() (int, error) {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.inv.Update()
}

// Framebuffer copies the video memory to dst, which should be at least
// memory.FramebufferLen bytes long. Returns the number of bytes copied.
func (s *Shared) Framebuffer(dst []uint8) int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return copy(dst, s.inv.Framebuffer())
}

// HandleEvent forwards the input event to the machine's ports.
func (s *Shared) HandleEvent(ev ports.Event, d ports.EventData) (bool, error) {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.inv.HandleEvent(ev, d)
}

// Borrow gives the provided function the critical section and access to the
// machine. The machine should not be retained outside of the function.
func (s *Shared) Borrow(f func(*Invaders) error) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	return f(s.inv)
}
