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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/test"
)

func TestArithmetic(t *testing.T) {
	mc, mem := newCPU()

	// MVI B,$05; MVI A,$03; ADD B; SUI $09; ACI $00
	mem.putInstructions(0, 0x06, 0x05, 0x3e, 0x03, 0x80, 0xd6, 0x09, 0xce, 0x00)
	step(t, mc)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, mc.A, 0x08)
	test.ExpectEquality(t, mc.Status.String(), "szapc")
	test.ExpectEquality(t, r.Cycles, 4)

	r = step(t, mc)
	test.ExpectEquality(t, mc.A, 0xff)
	test.ExpectEquality(t, mc.Status.String(), "SzaPC")
	test.ExpectEquality(t, r.Cycles, 7)

	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x00)
	test.ExpectEquality(t, mc.Status.String(), "sZAPC")
}

func TestLogical(t *testing.T) {
	mc, mem := newCPU()

	// MVI A,$f0; ANI $0f; MVI A,$00; ORI $81; XRA A; CMA
	mem.putInstructions(0, 0x3e, 0xf0, 0xe6, 0x0f, 0x3e, 0x00, 0xf6, 0x81, 0xaf, 0x2f)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x00)
	test.ExpectEquality(t, mc.Status.String(), "sZAPc")

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x81)
	test.ExpectEquality(t, mc.Status.String(), "SzaPc")

	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x00)
	test.ExpectEquality(t, mc.Status.String(), "sZaPc")

	step(t, mc)
	test.ExpectEquality(t, mc.A, 0xff)
}

func TestCompare(t *testing.T) {
	mc, mem := newCPU()

	// MVI A,$10; CPI $20; CPI $10
	mem.putInstructions(0, 0x3e, 0x10, 0xfe, 0x20, 0xfe, 0x10)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x10)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Zero)

	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x10)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)
}

func TestDAA(t *testing.T) {
	mc, mem := newCPU()

	// MVI A,$9b; DAA
	origin := mem.putInstructions(0, 0x3e, 0x9b, 0x27)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x01)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.AuxCarry)

	// BCD addition 38 + 45 = 83
	// MVI A,$38; ADI $45; DAA
	mem.putInstructions(origin, 0x3e, 0x38, 0xc6, 0x45, 0x27)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x7d)
	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x83)
	test.ExpectFailure(t, mc.Status.Carry)
}

func TestIncrementDecrement(t *testing.T) {
	mc, mem := newCPU()

	// STC; MVI A,$0f; INR A; DCR A; MVI A,$00; DCR A
	mem.putInstructions(0, 0x37, 0x3e, 0x0f, 0x3c, 0x3d, 0x3e, 0x00, 0x3d)
	step(t, mc)
	step(t, mc)

	r := step(t, mc)
	test.ExpectEquality(t, mc.A, 0x10)
	test.ExpectSuccess(t, mc.Status.AuxCarry)
	test.ExpectEquality(t, r.Cycles, 5)

	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x0f)
	test.ExpectFailure(t, mc.Status.AuxCarry)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, 0xff)
	test.ExpectSuccess(t, mc.Status.Sign)

	// carry is unaffected by INR and DCR
	test.ExpectSuccess(t, mc.Status.Carry)
}

func TestRotate(t *testing.T) {
	mc, mem := newCPU()

	// MVI A,$81; RLC; RRC; XRA A; MVI A,$81; RAL; RAR
	mem.putInstructions(0, 0x3e, 0x81, 0x07, 0x0f, 0xaf, 0x3e, 0x81, 0x17, 0x1f)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x03)
	test.ExpectSuccess(t, mc.Status.Carry)

	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x81)
	test.ExpectSuccess(t, mc.Status.Carry)

	// clear carry
	step(t, mc)
	step(t, mc)

	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x02)
	test.ExpectSuccess(t, mc.Status.Carry)

	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x81)
	test.ExpectFailure(t, mc.Status.Carry)
}

func TestStack(t *testing.T) {
	mc, mem := newCPU()

	// LXI SP,$2400; LXI B,$1234; PUSH B; POP D
	origin := mem.putInstructions(0, 0x31, 0x00, 0x24, 0x01, 0x34, 0x12, 0xc5, 0xd1)
	step(t, mc)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 11)
	test.ExpectEquality(t, mc.SP, 0x23fe)
	mem.assert(t, 0x23fe, 0x34)
	mem.assert(t, 0x23ff, 0x12)

	step(t, mc)
	test.ExpectEquality(t, mc.DE(), 0x1234)
	test.ExpectEquality(t, mc.SP, 0x2400)

	// MVI A,$42; STC; PUSH PSW; XRA A; POP PSW
	mem.putInstructions(origin, 0x3e, 0x42, 0x37, 0xf5, 0xaf, 0xf1)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x23ff, 0x42)
	mem.assert(t, 0x23fe, 0x03)

	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x00)
	test.ExpectFailure(t, mc.Status.Carry)

	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x42)
	test.ExpectEquality(t, mc.Status.String(), "szapC")
}

func TestConditionalTiming(t *testing.T) {
	mc, mem := newCPU()

	// LXI SP,$2400; XRA A; CNZ $0020; CZ $0020
	mem.putInstructions(0, 0x31, 0x00, 0x24, 0xaf, 0xc4, 0x20, 0x00, 0xcc, 0x20, 0x00)

	// RNZ; RZ
	mem.putInstructions(0x20, 0xc0, 0xc8)

	step(t, mc)
	step(t, mc)

	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 11)
	test.ExpectEquality(t, mc.PC, 0x0007)

	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 17)
	test.ExpectEquality(t, mc.PC, 0x0020)

	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.PC, 0x0021)

	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 11)
	test.ExpectEquality(t, mc.PC, 0x000a)
	test.ExpectEquality(t, mc.SP, 0x2400)
}

func TestCallReturn(t *testing.T) {
	mc, mem := newCPU()

	// LXI SP,$2400; CALL $0010
	mem.putInstructions(0, 0x31, 0x00, 0x24, 0xcd, 0x10, 0x00)

	// RET
	mem.putInstructions(0x10, 0xc9)

	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 17)
	test.ExpectEquality(t, mc.PC, 0x0010)
	mem.assert(t, 0x23fe, 0x06)
	mem.assert(t, 0x23ff, 0x00)

	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 10)
	test.ExpectEquality(t, mc.PC, 0x0006)
}

func TestUndocumented(t *testing.T) {
	mc, mem := newCPU()

	// LXI SP,$2400; *JMP $0100
	mem.putInstructions(0, 0x31, 0x00, 0x24, 0xcb, 0x00, 0x01)

	// *CALL $0200
	mem.putInstructions(0x0100, 0xdd, 0x00, 0x02)

	// *RET
	mem.putInstructions(0x0200, 0xd9)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x0100)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x0200)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, 0x0103)
}

func TestLoadStore(t *testing.T) {
	mc, mem := newCPU()

	// LXI H,$2010; MVI M,$99; MOV A,M; STA $2020; LXI D,$2020; LDAX D
	origin := mem.putInstructions(0, 0x21, 0x10, 0x20, 0x36, 0x99, 0x7e, 0x32, 0x20, 0x20, 0x11, 0x20, 0x20, 0x1a)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 10)
	mem.assert(t, 0x2010, 0x99)

	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.A, 0x99)

	step(t, mc)
	mem.assert(t, 0x2020, 0x99)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A, 0x99)

	// SHLD $2030; XCHG; LHLD $2030
	mem.putInstructions(origin, 0x22, 0x30, 0x20, 0xeb, 0x2a, 0x30, 0x20)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 16)
	mem.assert(t, 0x2030, 0x10)
	mem.assert(t, 0x2031, 0x20)

	step(t, mc)
	test.ExpectEquality(t, mc.HL(), 0x2020)
	test.ExpectEquality(t, mc.DE(), 0x2010)

	step(t, mc)
	test.ExpectEquality(t, mc.HL(), 0x2010)
}

func TestDAD(t *testing.T) {
	mc, mem := newCPU()

	// LXI H,$ffff; LXI B,$0001; DAD B
	mem.putInstructions(0, 0x21, 0xff, 0xff, 0x01, 0x01, 0x00, 0x09)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.HL(), 0x0000)
	test.ExpectSuccess(t, mc.Status.Carry)
}

func TestInstructionFrame(t *testing.T) {
	mc, mem := newCPU()

	// NOP followed by unrelated bytes; OUT $03; IN $01
	mem.putInstructions(0, 0x00, 0xd3, 0x03, 0xdb, 0x01)

	r := step(t, mc)
	test.ExpectEquality(t, r.Instruction, [3]uint8{0x00, 0x00, 0x00})

	r = step(t, mc)
	test.ExpectEquality(t, r.Instruction, [3]uint8{0xd3, 0x03, 0x00})
	test.ExpectEquality(t, r.Cycles, 10)

	r = step(t, mc)
	test.ExpectEquality(t, r.Instruction, [3]uint8{0xdb, 0x01, 0x00})
	test.ExpectEquality(t, r.String(), "0003 IN $01 (10)")
}

func TestHaltAndInterrupt(t *testing.T) {
	mc, mem := newCPU()

	// LXI SP,$2400; EI; HLT
	mem.putInstructions(0, 0x31, 0x00, 0x24, 0xfb, 0x76)
	step(t, mc)
	step(t, mc)
	test.ExpectSuccess(t, mc.InterruptsEnabled)

	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectSuccess(t, mc.Halted)
	test.ExpectEquality(t, mc.PC, 0x0005)

	// halted steps cost four states and do not move the PC
	for i := 0; i < 3; i++ {
		r = step(t, mc)
		test.ExpectEquality(t, r.Cycles, 4)
		test.ExpectSuccess(t, r.Halted)
		test.ExpectEquality(t, mc.PC, 0x0005)
	}

	// RST 1
	cycles, err := mc.Interrupt([3]uint8{0xcf, 0, 0})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 11)
	test.ExpectEquality(t, mc.PC, 0x0008)
	test.ExpectFailure(t, mc.Halted)
	test.ExpectFailure(t, mc.InterruptsEnabled)
	mem.assert(t, 0x23fe, 0x05)
	mem.assert(t, 0x23ff, 0x00)

	// interrupts are now disabled so the request is dropped
	cycles, err = mc.Interrupt([3]uint8{0xd7, 0, 0})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 0)
	test.ExpectEquality(t, mc.PC, 0x0008)
}

func TestInterruptAfterEI(t *testing.T) {
	mc, mem := newCPU()

	// LXI SP,$2400; EI; NOP; EI; DI
	mem.putInstructions(0, 0x31, 0x00, 0x24, 0xfb, 0x00, 0xfb, 0xf3)
	step(t, mc)
	step(t, mc)
	test.ExpectSuccess(t, mc.InterruptsEnabled)

	// the instruction after EI must complete before an interrupt is taken
	cycles, err := mc.Interrupt([3]uint8{0xcf, 0, 0})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 0)
	test.ExpectEquality(t, mc.PC, 0x0004)

	step(t, mc)
	c := mc.Cycles
	cycles, err = mc.Interrupt([3]uint8{0xcf, 0, 0})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 11)
	test.ExpectEquality(t, mc.PC, 0x0008)
	test.ExpectEquality(t, mc.Cycles, c+11)

	// a DI straight after EI leaves interrupts disabled
	mc.PC = 0x0005
	step(t, mc)
	step(t, mc)
	test.ExpectFailure(t, mc.InterruptsEnabled)
	cycles, err = mc.Interrupt([3]uint8{0xd7, 0, 0})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 0)
	test.ExpectEquality(t, mc.PC, 0x0007)
}

func TestInterruptNotRST(t *testing.T) {
	mc, _ := newCPU()
	mc.InterruptsEnabled = true

	_, err := mc.Interrupt([3]uint8{0x00, 0, 0})
	test.ExpectSuccess(t, errors.Is(err, cpu.InterruptError))
}

func TestDecodeError(t *testing.T) {
	var mc cpu.CPU
	mc.Plumb(newMockMem())
	_, err := mc.ExecuteInstruction()
	test.ExpectSuccess(t, errors.Is(err, cpu.DecodeError))
}

func TestCycleTotal(t *testing.T) {
	mc, mem := newCPU()

	// NOP; MVI A,$01; LXI H,$0000; JMP $0000
	mem.putInstructions(0, 0x00, 0x3e, 0x01, 0x21, 0x00, 0x00, 0xc3, 0x00, 0x00)

	total := 0
	for i := 0; i < 8; i++ {
		total += step(t, mc).Cycles
	}
	test.ExpectEquality(t, total, 2*(4+7+10+10))
	test.ExpectEquality(t, mc.Cycles, uint64(total))
}
