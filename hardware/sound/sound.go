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

// Package sound decodes the sound latches of the Space Invaders cabinet. The
// CPU writes to ports 3 and 5 and each bit of the written value controls one
// sound. A sound is triggered on the rising edge of its bit. The UFO sound is
// an exception and plays for as long as its bit is set.
//
// The package does not play sounds. It produces Events that are forwarded to
// the audio backend.
package sound

import "fmt"

// Bank identifies one of the two sound latches.
type Bank int

// List of sound banks.
const (
	BankA Bank = 3 // port 3
	BankB Bank = 5 // port 5
)

// SampleID is the index of an audio sample. The sample files are numbered
// with these values.
type SampleID int

// List of samples.
const (
	UFOHit        SampleID = 0
	Shot          SampleID = 1
	PlayerDeath   SampleID = 2
	InvaderKilled SampleID = 3
	Fleet1        SampleID = 4
	Fleet2        SampleID = 5
	Fleet3        SampleID = 6
	Fleet4        SampleID = 7
	UFO           SampleID = 8

	NumSamples = 9
)

func (id SampleID) String() string {
	switch id {
	case UFOHit:
		return "ufo hit"
	case Shot:
		return "shot"
	case PlayerDeath:
		return "player death"
	case InvaderKilled:
		return "invader killed"
	case Fleet1, Fleet2, Fleet3, Fleet4:
		return fmt.Sprintf("fleet %d", id-Fleet1+1)
	case UFO:
		return "ufo"
	}
	return fmt.Sprintf("sample %d", int(id))
}

// Kind of sound event.
type Kind int

// List of event kinds.
const (
	FireOnce Kind = iota
	StartLoop
	StopLoop
)

func (k Kind) String() string {
	switch k {
	case FireOnce:
		return "fire once"
	case StartLoop:
		return "start loop"
	case StopLoop:
		return "stop loop"
	}
	return ""
}

// Event is produced by Triggers() for every change to a sound.
type Event struct {
	Kind   Kind
	Sample SampleID
}

func (e Event) String() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Sample)
}

// assignment of bits to samples. the loop field is true for sounds that play
// for as long as the bit is set
type trigger struct {
	bit    uint8
	sample SampleID
	loop   bool
}

var bankA = []trigger{
	{bit: 0x01, sample: UFO, loop: true},
	{bit: 0x02, sample: Shot},
	{bit: 0x04, sample: PlayerDeath},
	{bit: 0x08, sample: InvaderKilled},
}

var bankB = []trigger{
	{bit: 0x01, sample: Fleet1},
	{bit: 0x02, sample: Fleet2},
	{bit: 0x04, sample: Fleet3},
	{bit: 0x08, sample: Fleet4},
	{bit: 0x10, sample: UFOHit},
}

// Triggers returns the events caused by a change of the bank's latch from
// prev to next. Bits that are not assigned to a sound are ignored. Events are
// returned in bit order, lowest first.
func Triggers(bank Bank, prev uint8, next uint8) []Event {
	var triggers []trigger
	switch bank {
	case BankA:
		triggers = bankA
	case BankB:
		triggers = bankB
	default:
		return nil
	}

	var events []Event
	for _, t := range triggers {
		was := prev&t.bit == t.bit
		is := next&t.bit == t.bit
		switch {
		case is && !was && t.loop:
			events = append(events, Event{Kind: StartLoop, Sample: t.sample})
		case !is && was && t.loop:
			events = append(events, Event{Kind: StopLoop, Sample: t.sample})
		case is && !was:
			events = append(events, Event{Kind: FireOnce, Sample: t.sample})
		}
	}
	return events
}

// Latch stores the most recent value written to a sound port.
type Latch struct {
	bank  Bank
	value uint8
}

// NewLatch is the preferred method of initialisation for the Latch type.
func NewLatch(bank Bank) Latch {
	return Latch{bank: bank}
}

// Write a new value to the latch. The value is stored in full, including any
// bits not assigned to a sound. Returns the events caused by the write.
func (l *Latch) Write(v uint8) []Event {
	events := Triggers(l.bank, l.value, v)
	l.value = v
	return events
}

// Value returns the most recent value written to the latch.
func (l *Latch) Value() uint8 {
	return l.value
}
