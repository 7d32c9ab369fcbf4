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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/test"
)

func TestStatusRegister(t *testing.T) {
	var sr registers.StatusRegister
	test.ExpectEquality(t, sr.String(), "szapc")
	test.ExpectEquality(t, sr.Value(), 0x02)

	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.String(), "SZAPC")
	test.ExpectEquality(t, sr.Value(), 0xd7)

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), 0x02)
}

func TestSZP(t *testing.T) {
	var sr registers.StatusRegister

	sr.SetSZP(0x00)
	test.ExpectEquality(t, sr.String(), "sZaPc")

	sr.SetSZP(0x80)
	test.ExpectEquality(t, sr.String(), "Szapc")

	sr.SetSZP(0x03)
	test.ExpectEquality(t, sr.String(), "szaPc")
}
