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

// Event represents the actions that can be performed on the cabinet's
// controls and DIP switches.
type Event string

// List of defined events. The comment indicates the type of EventData
// expected by the event.
const (
	NoEvent Event = "NoEvent" // nil

	// coin slot and cabinet.
	Coin Event = "Coin" // bool
	Tilt Event = "Tilt" // bool

	// start buttons.
	P1Start Event = "P1Start" // bool
	P2Start Event = "P2Start" // bool

	// player controls.
	P1Fire  Event = "P1Fire"  // bool
	P1Left  Event = "P1Left"  // bool
	P1Right Event = "P1Right" // bool
	P2Fire  Event = "P2Fire"  // bool
	P2Left  Event = "P2Left"  // bool
	P2Right Event = "P2Right" // bool

	// DIP switches.
	CycleLives      Event = "CycleLives"      // nil
	ToggleExtraLife Event = "ToggleExtraLife" // nil
	TogglePricing   Event = "TogglePricing"   // nil
)

// EventData is the value associated with the event. The underlying type
// should be bool for the button events and nil for the DIP switch events.
type EventData any
