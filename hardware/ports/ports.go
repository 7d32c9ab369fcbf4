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

package ports

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/gopher8080/logger"
)

// UnhandledEvent is returned by HandleEvent() if the event is not known or
// if the event data is of the wrong type.
var UnhandledEvent = errors.New("unhandled event")

// Ports groups the two input ports of the cabinet.
type Ports struct {
	Port1 Port1
	Port2 Port2
}

// the bit affected by each of the button events
var buttons = map[Event]struct {
	port2 bool
	bit   uint8
}{
	Coin:    {bit: Port1Coin},
	P1Start: {bit: Port1P1Start},
	P2Start: {bit: Port1P2Start},
	P1Fire:  {bit: Port1P1Fire},
	P1Left:  {bit: Port1P1Left},
	P1Right: {bit: Port1P1Right},
	Tilt:    {port2: true, bit: Port2Tilt},
	P2Fire:  {port2: true, bit: Port2P2Fire},
	P2Left:  {port2: true, bit: Port2P2Left},
	P2Right: {port2: true, bit: Port2P2Right},
}

// HandleEvent changes the state of the ports according to the event. Returns
// true if the event caused a change.
func (p *Ports) HandleEvent(ev Event, d EventData) (bool, error) {
	switch ev {
	case NoEvent:
		return false, nil

	case CycleLives:
		p.Port2.CycleLives()
		logger.Logf(logger.Allow, "ports", "num of lives: %d", p.Port2.Lives())
		return true, nil

	case ToggleExtraLife:
		p.Port2.ToggleExtraLife()
		logger.Logf(logger.Allow, "ports", "extra life at: %d points", p.Port2.ExtraLifeAt())
		return true, nil

	case TogglePricing:
		p.Port2.TogglePricing()
		if p.Port2.PricingDisplay() {
			logger.Log(logger.Allow, "ports", "pricing display: on")
		} else {
			logger.Log(logger.Allow, "ports", "pricing display: off")
		}
		return true, nil
	}

	b, ok := buttons[ev]
	if !ok {
		return false, fmt.Errorf("ports: %w: %s", UnhandledEvent, ev)
	}

	down, ok := d.(bool)
	if !ok {
		return false, fmt.Errorf("ports: %w: %s expects bool data not %T", UnhandledEvent, ev, d)
	}

	switch {
	case b.port2 && down:
		p.Port2.Set(b.bit)
	case b.port2:
		p.Port2.Clear(b.bit)
	case down:
		p.Port1.Set(b.bit)
	default:
		p.Port1.Clear(b.bit)
	}

	return true, nil
}
