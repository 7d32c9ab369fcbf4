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

package userinput

import (
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/logger"
)

// keys that control a button on the cabinet. the movement and fire keys
// control both players because the cabinet only uses the player two
// controls in cocktail mode
var buttons = map[string][]ports.Event{
	"Left":  {ports.P1Left, ports.P2Left},
	"Right": {ports.P1Right, ports.P2Right},
	"Space": {ports.P1Fire, ports.P2Fire},
	"C":     {ports.Coin},
	"T":     {ports.Tilt},
	"1":     {ports.P1Start},
	"2":     {ports.P2Start},
}

// keys that change a DIP switch. these only act when the key is pressed
var switches = map[string]ports.Event{
	"F1": ports.CycleLives,
	"F2": ports.ToggleExtraLife,
	"F3": ports.TogglePricing,
}

// Controllers keeps track of userinput state.
type Controllers struct {
	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the emulation
	LastKeyHandled bool

	// is true if last event was a quit emulation event
	Quit bool
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) error {
	if ev.Repeat {
		c.LastKeyHandled = false
		return nil
	}

	if ev.Mod != KeyModNone && ev.Down {
		c.LastKeyHandled = false
		return nil
	}

	if sw, ok := switches[ev.Key]; ok {
		c.LastKeyHandled = true
		if !ev.Down {
			return nil
		}
		_, err := handle.HandleEvent(sw, nil)
		return err
	}

	events, ok := buttons[ev.Key]
	if !ok {
		c.LastKeyHandled = false
		return nil
	}

	c.LastKeyHandled = true
	for _, e := range events {
		if _, err := handle.HandleEvent(e, ev.Down); err != nil {
			return err
		}
	}

	return nil
}

// HandleUserInput deciphers the Event and forwards the input to the
// cabinet's ports. Returns true if the event is a quit event.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) (bool, error) {
	var err error

	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
		return true, nil
	case EventKeyboard:
		err = c.keyboard(ev, handle)
	default:
		logger.Logf(logger.Allow, "userinput", "unknown event type (%T)", ev)
	}

	return false, err
}
