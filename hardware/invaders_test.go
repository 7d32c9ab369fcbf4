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

package hardware_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/jetsetilly/gopher8080/govern"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/hardware/sound"
	"github.com/jetsetilly/gopher8080/test"
)

type mockAudio struct {
	events []sound.Event
}

func (a *mockAudio) SoundEvent(e sound.Event) {
	a.events = append(a.events, e)
}

// rom returns an 8K image with the program at address zero
func rom(program ...uint8) []uint8 {
	image := make([]uint8, 0x2000)
	copy(image, program)
	return image
}

func newInvaders(t *testing.T, interrupts <-chan [3]uint8, program ...uint8) (*hardware.Invaders, *mockAudio) {
	t.Helper()
	audio := &mockAudio{}
	inv, err := hardware.NewInvaders(rom(program...), audio, interrupts)
	test.DemandSuccess(t, err)
	return inv, audio
}

func steps(t *testing.T, inv *hardware.Invaders, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := inv.Update()
		test.DemandSuccess(t, err)
	}
}

func TestShifterPorts(t *testing.T) {
	inv, _ := newInvaders(t, nil,
		0x3e, 0xaa, // MVI A,$aa
		0xd3, 0x04, // OUT 4
		0x3e, 0xff, // MVI A,$ff
		0xd3, 0x04, // OUT 4
		0x3e, 0x00, // MVI A,$00
		0xd3, 0x02, // OUT 2
		0xdb, 0x03, // IN 3
		0x3e, 0x0c, // MVI A,$0c
		0xd3, 0x02, // OUT 2
		0xdb, 0x03, // IN 3
	)

	steps(t, inv, 7)
	test.ExpectEquality(t, inv.CPU.A, 0xff)

	// offset is masked to 4
	steps(t, inv, 3)
	test.ExpectEquality(t, inv.CPU.A, 0xfa)
}

func TestInputPorts(t *testing.T) {
	inv, _ := newInvaders(t, nil,
		0xdb, 0x01, // IN 1
		0x47,       // MOV B,A
		0xdb, 0x02, // IN 2
	)

	_, err := inv.HandleEvent(ports.P1Fire, true)
	test.ExpectSuccess(t, err)
	_, err = inv.HandleEvent(ports.CycleLives, nil)
	test.ExpectSuccess(t, err)

	cycles, err := inv.Update()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 10)
	test.ExpectEquality(t, inv.CPU.A, 0x18)

	steps(t, inv, 2)
	test.ExpectEquality(t, inv.CPU.B, 0x18)
	test.ExpectEquality(t, inv.CPU.A, 0x01)
}

func TestSoundPorts(t *testing.T) {
	inv, audio := newInvaders(t, nil,
		0x3e, 0x02, // MVI A,$02
		0xd3, 0x03, // OUT 3
		0xd3, 0x03, // OUT 3
		0x3e, 0x01, // MVI A,$01
		0xd3, 0x03, // OUT 3
		0x3e, 0x00, // MVI A,$00
		0xd3, 0x03, // OUT 3
		0x3e, 0xe1, // MVI A,$e1
		0xd3, 0x05, // OUT 5
		0xd3, 0x06, // OUT 6
	)

	steps(t, inv, 2)
	test.DemandEquality(t, len(audio.events), 1)
	test.ExpectEquality(t, audio.events[0], sound.Event{Kind: sound.FireOnce, Sample: sound.Shot})

	// bit held high is not retriggered
	steps(t, inv, 1)
	test.ExpectEquality(t, len(audio.events), 1)

	steps(t, inv, 4)
	test.DemandEquality(t, len(audio.events), 3)
	test.ExpectEquality(t, audio.events[1], sound.Event{Kind: sound.StartLoop, Sample: sound.UFO})
	test.ExpectEquality(t, audio.events[2], sound.Event{Kind: sound.StopLoop, Sample: sound.UFO})

	// unknown bits on port 5 are kept and are not an error
	steps(t, inv, 2)
	test.DemandEquality(t, len(audio.events), 4)
	test.ExpectEquality(t, audio.events[3], sound.Event{Kind: sound.FireOnce, Sample: sound.Fleet1})
	test.ExpectEquality(t, inv.BankB.Value(), 0xe1)

	// watchdog
	steps(t, inv, 1)
	test.ExpectEquality(t, len(audio.events), 4)
}

func TestUnsupportedPort(t *testing.T) {
	inv, _ := newInvaders(t, nil,
		0xd3, 0x07, // OUT 7
	)
	_, err := inv.Update()
	test.ExpectSuccess(t, errors.Is(err, hardware.UnsupportedPort))

	inv, _ = newInvaders(t, nil,
		0xdb, 0x00, // IN 0
	)
	_, err = inv.Update()
	test.ExpectSuccess(t, errors.Is(err, hardware.UnsupportedPort))
}

func TestInterruptChannel(t *testing.T) {
	interrupts := make(chan [3]uint8, 1)
	inv, _ := newInvaders(t, interrupts,
		0x31, 0x00, 0x24, // LXI SP,$2400
		0x00,             // NOP
		0xfb,             // EI
		0x00,             // NOP
	)

	// interrupts are disabled so the request is dropped
	steps(t, inv, 1)
	interrupts <- hardware.RST1
	cycles, err := inv.Update()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 0)
	test.ExpectEquality(t, inv.CPU.PC, 0x0003)

	// the NOP after EI completes before the interrupt is accepted
	steps(t, inv, 3)
	interrupts <- hardware.RST2
	cycles, err = inv.Update()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 11)
	test.ExpectEquality(t, inv.CPU.PC, 0x0010)
	test.ExpectFailure(t, inv.CPU.InterruptsEnabled)
}

func TestCycleTotal(t *testing.T) {
	interrupts := make(chan [3]uint8, 1)
	inv, _ := newInvaders(t, interrupts,
		0x31, 0x00, 0x24, // LXI SP,$2400
		0x00,             // NOP
		0xfb,             // EI
		0x76,             // HLT
		0x00,             // NOP
		0x00,             // NOP
		0x04,             // $0008: INR B
		0xfb,             // EI
		0xc9,             // RET
	)

	var none [3]uint8

	// each update is optionally preceded by an interrupt request
	sequence := []struct {
		request [3]uint8
		cycles  int
	}{
		{none, 10},          // LXI
		{hardware.RST1, 0},  // dropped, interrupts are disabled
		{none, 4},           // NOP
		{none, 4},           // EI
		{none, 7},           // HLT
		{none, 4},           // halted
		{none, 4},           // halted
		{hardware.RST1, 11}, // accepted
		{none, 5},           // INR B
		{none, 4},           // EI
		{hardware.RST2, 0},  // dropped, instruction after EI has not run
		{none, 10},          // RET
		{none, 4},           // NOP
	}

	var total uint64
	last := inv.CPU.Cycles
	test.ExpectEquality(t, last, 0)

	for i, s := range sequence {
		if s.request != none {
			interrupts <- s.request
		}

		cycles, err := inv.Update()
		test.DemandSuccess(t, err, i)
		test.ExpectEquality(t, cycles, s.cycles, i)

		total += uint64(cycles)
		test.ExpectSuccess(t, inv.CPU.Cycles >= last, i)
		test.ExpectEquality(t, inv.CPU.Cycles, total, i)
		last = inv.CPU.Cycles
	}

	test.ExpectEquality(t, inv.CPU.B, 1)
	test.ExpectEquality(t, inv.CPU.PC, 0x0007)
}

func TestNextInterrupt(t *testing.T) {
	test.ExpectEquality(t, hardware.NextInterrupt(hardware.RST1), hardware.RST2)
	test.ExpectEquality(t, hardware.NextInterrupt(hardware.RST2), hardware.RST1)
}

func TestFramebuffer(t *testing.T) {
	inv, _ := newInvaders(t, nil,
		0x3e, 0x81,       // MVI A,$81
		0x32, 0x00, 0x24, // STA $2400
		0x32, 0xff, 0x3f, // STA $3fff
	)
	steps(t, inv, 3)

	fb := make([]uint8, memory.FramebufferLen)
	shared := hardware.NewShared(inv)
	n := shared.Framebuffer(fb)
	test.ExpectEquality(t, n, 7168)
	test.ExpectEquality(t, fb[0], 0x81)
	test.ExpectEquality(t, fb[7167], 0x81)
}

func TestImageTooLarge(t *testing.T) {
	_, err := hardware.NewInvaders(make([]uint8, 0x2001), nil, nil)
	test.ExpectFailure(t, err)
}

func TestRun(t *testing.T) {
	inv, _ := newInvaders(t, nil,
		0x31, 0x00, 0x24, // LXI SP,$2400
		0xfb,             // EI
		0xc3, 0x04, 0x00, // JMP $0004
	)

	// interrupt handlers at $0008 and $0010 count the interrupts in B and C
	// and return with interrupts enabled
	for addr, b := range map[uint16]uint8{
		0x0008: 0x04, // INR B
		0x0009: 0xfb, // EI
		0x000a: 0xc9, // RET
		0x0010: 0x0c, // INR C
		0x0011: 0xfb, // EI
		0x0012: 0xc9, // RET
	} {
		inv.Mem.Poke(addr, b)
	}

	var requests int
	var instructions int
	err := inv.Run(func() (govern.State, error) {
		instructions++
		if requests >= 10 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	}, func(states int) {
		requests++
		test.ExpectSuccess(t, states >= 16666 && states < 16666+20)
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, requests, 10)
	test.ExpectEquality(t, inv.CPU.B, 5)

	// the handler for the final RST 2 has not run
	test.ExpectEquality(t, inv.CPU.C, 4)
	test.ExpectEquality(t, inv.CPU.PC, 0x0010)
}

func TestSharedConcurrency(t *testing.T) {
	inv, _ := newInvaders(t, nil,
		0x3c,             // INR A
		0x32, 0x00, 0x24, // STA $2400
		0xc3, 0x00, 0x00, // JMP $0000
	)
	shared := hardware.NewShared(inv)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 3000; i++ {
			_, err := shared.Update()
			if err != nil {
				t.Error(err)
				return
			}
		}
	}()

	go func() {
		defer wg.Done()
		fb := make([]uint8, memory.FramebufferLen)
		for i := 0; i < 100; i++ {
			shared.Framebuffer(fb)
			shared.HandleEvent(ports.Coin, i%2 == 0)
		}
	}()

	wg.Wait()

	err := shared.Borrow(func(inv *hardware.Invaders) error {
		// one thousand increments of A
		test.ExpectEquality(t, inv.CPU.A, 232)
		return nil
	})
	test.ExpectSuccess(t, err)
}
