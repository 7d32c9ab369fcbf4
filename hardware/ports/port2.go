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

import "fmt"

// Bits of Port 2.
const (
	Port2Lives     uint8 = 0x03
	Port2Tilt      uint8 = 0x04
	Port2ExtraLife uint8 = 0x08
	Port2P2Fire    uint8 = 0x10
	Port2P2Left    uint8 = 0x20
	Port2P2Right   uint8 = 0x40
	Port2Pricing   uint8 = 0x80
)

// the number of lives indicated by the lowest value of the lives field
const minLives = 3

// Port2 is read by the CPU with IN 2. The lower two bits are DIP switches
// that select the number of lives. Bits 0x08 and 0x80 are also DIP switches.
type Port2 struct {
	value uint8
}

// Read returns the value of the port as seen by the CPU.
func (p *Port2) Read() uint8 {
	return p.value
}

// Set the specified bits.
func (p *Port2) Set(bits uint8) {
	p.value |= bits
}

// Clear the specified bits.
func (p *Port2) Clear(bits uint8) {
	p.value &^= bits
}

// Lives returns the number of lives selected by the DIP switches.
func (p *Port2) Lives() int {
	return int(p.value&Port2Lives) + minLives
}

// CycleLives advances the lives field. Six lives wraps around to three. No
// other bit is affected.
func (p *Port2) CycleLives() {
	p.value = (p.value &^ Port2Lives) | ((p.value + 1) & Port2Lives)
}

// ExtraLifeAt returns the score at which a bonus life is awarded.
func (p *Port2) ExtraLifeAt() int {
	if p.value&Port2ExtraLife == Port2ExtraLife {
		return 1000
	}
	return 1500
}

// ToggleExtraLife flips the bonus life threshold between 1000 and 1500.
func (p *Port2) ToggleExtraLife() {
	p.value ^= Port2ExtraLife
}

// PricingDisplay returns true if coin information is shown in the demo.
func (p *Port2) PricingDisplay() bool {
	return p.value&Port2Pricing == 0
}

// TogglePricing flips the pricing display DIP switch.
func (p *Port2) TogglePricing() {
	p.value ^= Port2Pricing
}

func (p *Port2) String() string {
	pricing := "on"
	if !p.PricingDisplay() {
		pricing = "off"
	}
	return fmt.Sprintf("p2: lives=%d extra=%d pricing=%s tilt=%v", p.Lives(), p.ExtraLifeAt(), pricing, p.value&Port2Tilt == Port2Tilt)
}
