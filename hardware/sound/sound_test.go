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

package sound_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/sound"
	"github.com/jetsetilly/gopher8080/test"
)

func expectEvents(t *testing.T, got []sound.Event, expected ...sound.Event) {
	t.Helper()
	test.DemandEquality(t, len(got), len(expected))
	for i := range got {
		test.ExpectEquality(t, got[i], expected[i], i)
	}
}

func TestRisingEdge(t *testing.T) {
	expectEvents(t, sound.Triggers(sound.BankA, 0x00, 0x02),
		sound.Event{Kind: sound.FireOnce, Sample: sound.Shot})

	// bit held high is not a new trigger
	expectEvents(t, sound.Triggers(sound.BankA, 0x02, 0x02))

	// falling edge of a one-shot produces nothing
	expectEvents(t, sound.Triggers(sound.BankA, 0x02, 0x00))
}

func TestUFOLoop(t *testing.T) {
	expectEvents(t, sound.Triggers(sound.BankA, 0x00, 0x01),
		sound.Event{Kind: sound.StartLoop, Sample: sound.UFO})
	expectEvents(t, sound.Triggers(sound.BankA, 0x01, 0x01))
	expectEvents(t, sound.Triggers(sound.BankA, 0x01, 0x00),
		sound.Event{Kind: sound.StopLoop, Sample: sound.UFO})
}

func TestBankB(t *testing.T) {
	expectEvents(t, sound.Triggers(sound.BankB, 0x00, 0x11),
		sound.Event{Kind: sound.FireOnce, Sample: sound.Fleet1},
		sound.Event{Kind: sound.FireOnce, Sample: sound.UFOHit})

	// UFO hit on bank B does not loop
	expectEvents(t, sound.Triggers(sound.BankB, 0x10, 0x00))
}

func TestUnknownBits(t *testing.T) {
	expectEvents(t, sound.Triggers(sound.BankA, 0x00, 0xf0))
	expectEvents(t, sound.Triggers(sound.BankB, 0x00, 0xe0))

	l := sound.NewLatch(sound.BankB)
	expectEvents(t, l.Write(0xe4),
		sound.Event{Kind: sound.FireOnce, Sample: sound.Fleet3})
	test.ExpectEquality(t, l.Value(), 0xe4)

	expectEvents(t, l.Write(0xe4))
}

func TestSampleNames(t *testing.T) {
	test.ExpectEquality(t, sound.Fleet3.String(), "fleet 3")
	test.ExpectEquality(t, sound.Event{Kind: sound.StartLoop, Sample: sound.UFO}.String(), "start loop: ufo")
}
