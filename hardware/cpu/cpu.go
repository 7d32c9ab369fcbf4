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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
)

// number of states taken by each step while the CPU is halted
const haltedCycles = 4

// the register encoded in an opcode that means the memory location pointed
// to by HL
const regM = 6

// CPU implements the Intel 8080.
type CPU struct {
	PC uint16
	SP uint16

	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8

	Status registers.StatusRegister

	// the interrupt enable flip-flop
	InterruptsEnabled bool

	// EI does not take effect until the instruction after it has completed
	eiDelay bool

	// the CPU has executed HLT and will do nothing until an interrupt
	Halted bool

	// running total of states
	Cycles uint64

	// the most recent result
	LastResult Result

	mem          cpubus.Memory
	instructions []instructions.Definition
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:          mem,
		instructions: instructions.GetDefinitions(),
	}
}

// Plumb a new memory into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x SP=%04x A=%02x BC=%04x DE=%04x HL=%04x %s=%s",
		mc.PC, mc.SP, mc.A, mc.BC(), mc.DE(), mc.HL(), mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers. Execution will begin at address zero.
func (mc *CPU) Reset() {
	mc.PC = 0
	mc.SP = 0
	mc.A = 0
	mc.B = 0
	mc.C = 0
	mc.D = 0
	mc.E = 0
	mc.H = 0
	mc.L = 0
	mc.Status.Reset()
	mc.InterruptsEnabled = false
	mc.eiDelay = false
	mc.Halted = false
	mc.Cycles = 0
	mc.LastResult = Result{}
}

// BC returns the BC register pair.
func (mc *CPU) BC() uint16 {
	return uint16(mc.B)<<8 | uint16(mc.C)
}

// DE returns the DE register pair.
func (mc *CPU) DE() uint16 {
	return uint16(mc.D)<<8 | uint16(mc.E)
}

// HL returns the HL register pair.
func (mc *CPU) HL() uint16 {
	return uint16(mc.H)<<8 | uint16(mc.L)
}

func (mc *CPU) setHL(v uint16) {
	mc.H = uint8(v >> 8)
	mc.L = uint8(v)
}

// register as encoded in bits of the opcode
func (mc *CPU) reg(n uint8) uint8 {
	switch n {
	case 0:
		return mc.B
	case 1:
		return mc.C
	case 2:
		return mc.D
	case 3:
		return mc.E
	case 4:
		return mc.H
	case 5:
		return mc.L
	case regM:
		return mc.mem.Read(mc.HL())
	}
	return mc.A
}

func (mc *CPU) setReg(n uint8, v uint8) {
	switch n {
	case 0:
		mc.B = v
	case 1:
		mc.C = v
	case 2:
		mc.D = v
	case 3:
		mc.E = v
	case 4:
		mc.H = v
	case 5:
		mc.L = v
	case regM:
		mc.mem.Write(mc.HL(), v)
	default:
		mc.A = v
	}
}

// register pair as encoded in bits 4 and 5 of the opcode
func (mc *CPU) pair(n uint8) uint16 {
	switch n {
	case 0:
		return mc.BC()
	case 1:
		return mc.DE()
	case 2:
		return mc.HL()
	}
	return mc.SP
}

func (mc *CPU) setPair(n uint8, v uint16) {
	switch n {
	case 0:
		mc.B = uint8(v >> 8)
		mc.C = uint8(v)
	case 1:
		mc.D = uint8(v >> 8)
		mc.E = uint8(v)
	case 2:
		mc.setHL(v)
	default:
		mc.SP = v
	}
}

// condition as encoded in bits 3 to 5 of the opcode
func (mc *CPU) condition(n uint8) bool {
	switch n {
	case 0:
		return !mc.Status.Zero
	case 1:
		return mc.Status.Zero
	case 2:
		return !mc.Status.Carry
	case 3:
		return mc.Status.Carry
	case 4:
		return !mc.Status.Parity
	case 5:
		return mc.Status.Parity
	case 6:
		return !mc.Status.Sign
	}
	return mc.Status.Sign
}

func (mc *CPU) read16(address uint16) uint16 {
	return uint16(mc.mem.Read(address+1))<<8 | uint16(mc.mem.Read(address))
}

func (mc *CPU) write16(address uint16, v uint16) {
	mc.mem.Write(address, uint8(v))
	mc.mem.Write(address+1, uint8(v>>8))
}

func (mc *CPU) push(v uint16) {
	mc.SP -= 2
	mc.write16(mc.SP, v)
}

func (mc *CPU) pop() uint16 {
	v := mc.read16(mc.SP)
	mc.SP += 2
	return v
}

// ExecuteInstruction fetches and executes the instruction at the program
// counter. If the CPU is halted no instruction is fetched and the program
// counter does not change.
func (mc *CPU) ExecuteInstruction() (Result, error) {
	if mc.Halted {
		mc.Cycles += haltedCycles
		mc.LastResult = Result{
			Address:     mc.PC,
			Instruction: [3]uint8{0x76, 0, 0},
			Cycles:      haltedCycles,
			Halted:      true,
		}
		return mc.LastResult, nil
	}

	address := mc.PC
	opcode := mc.mem.Read(address)
	if int(opcode) >= len(mc.instructions) {
		return Result{Address: address}, fmt.Errorf("cpu: %w: %#02x at %#04x", DecodeError, opcode, address)
	}
	defn := &mc.instructions[opcode]

	r := Result{
		Address: address,
		Defn:    defn,
	}
	r.Instruction[0] = opcode
	for i := 1; i < defn.Bytes; i++ {
		r.Instruction[i] = mc.mem.Read(address + uint16(i))
	}

	mc.PC += uint16(defn.Bytes)
	mc.eiDelay = false
	r.Cycles = mc.execute(defn, r.Instruction)
	mc.Cycles += uint64(r.Cycles)
	mc.LastResult = r

	return r, nil
}

// Interrupt executes the instruction in place of the next instruction. If
// interrupts are disabled the request is ignored and the returned number of
// states is zero. Otherwise interrupts are disabled and the CPU leaves the
// halted state.
//
// Interrupts are not accepted between an EI and the instruction that follows
// it, so an interrupt handler ending with EI and RET returns before the next
// interrupt is taken.
//
// Only the single byte RST instructions are accepted.
func (mc *CPU) Interrupt(instruction [3]uint8) (int, error) {
	if !mc.InterruptsEnabled || mc.eiDelay {
		return 0, nil
	}

	opcode := instruction[0]
	if int(opcode) >= len(mc.instructions) {
		return 0, fmt.Errorf("cpu: %w: %#02x", DecodeError, opcode)
	}
	defn := &mc.instructions[opcode]
	if defn.Operator != instructions.Rst {
		return 0, fmt.Errorf("cpu: %w: %s", InterruptError, defn.Format(instruction))
	}

	mc.InterruptsEnabled = false
	mc.Halted = false

	r := Result{
		Address:       mc.PC,
		Defn:          defn,
		Instruction:   [3]uint8{opcode, 0, 0},
		FromInterrupt: true,
	}
	r.Cycles = mc.execute(defn, r.Instruction)
	mc.Cycles += uint64(r.Cycles)
	mc.LastResult = r

	return r.Cycles, nil
}

// execute the decoded instruction. the program counter has already been
// advanced past the instruction. returns the number of states taken
func (mc *CPU) execute(defn *instructions.Definition, instruction [3]uint8) int {
	opcode := instruction[0]
	dst := (opcode >> 3) & 0x07
	src := opcode & 0x07
	rp := (opcode >> 4) & 0x03
	d8 := instruction[1]
	d16 := uint16(instruction[2])<<8 | uint16(instruction[1])

	switch defn.Operator {
	case instructions.Nop:

	case instructions.Hlt:
		mc.Halted = true

	// move, load and store
	case instructions.Mov:
		mc.setReg(dst, mc.reg(src))
	case instructions.Mvi:
		mc.setReg(dst, d8)
	case instructions.Lxi:
		mc.setPair(rp, d16)
	case instructions.Lda:
		mc.A = mc.mem.Read(d16)
	case instructions.Sta:
		mc.mem.Write(d16, mc.A)
	case instructions.Lhld:
		mc.setHL(mc.read16(d16))
	case instructions.Shld:
		mc.write16(d16, mc.HL())
	case instructions.Ldax:
		mc.A = mc.mem.Read(mc.pair(rp))
	case instructions.Stax:
		mc.mem.Write(mc.pair(rp), mc.A)
	case instructions.Xchg:
		mc.H, mc.D = mc.D, mc.H
		mc.L, mc.E = mc.E, mc.L

	// arithmetic
	case instructions.Add:
		mc.A = mc.add(mc.A, mc.reg(src), false)
	case instructions.Adc:
		mc.A = mc.add(mc.A, mc.reg(src), mc.Status.Carry)
	case instructions.Sub:
		mc.A = mc.sub(mc.A, mc.reg(src), false)
	case instructions.Sbb:
		mc.A = mc.sub(mc.A, mc.reg(src), mc.Status.Carry)
	case instructions.Adi:
		mc.A = mc.add(mc.A, d8, false)
	case instructions.Aci:
		mc.A = mc.add(mc.A, d8, mc.Status.Carry)
	case instructions.Sui:
		mc.A = mc.sub(mc.A, d8, false)
	case instructions.Sbi:
		mc.A = mc.sub(mc.A, d8, mc.Status.Carry)
	case instructions.Inr:
		mc.setReg(dst, mc.inr(mc.reg(dst)))
	case instructions.Dcr:
		mc.setReg(dst, mc.dcr(mc.reg(dst)))
	case instructions.Inx:
		mc.setPair(rp, mc.pair(rp)+1)
	case instructions.Dcx:
		mc.setPair(rp, mc.pair(rp)-1)
	case instructions.Dad:
		mc.dad(mc.pair(rp))
	case instructions.Daa:
		mc.daa()

	// logical
	case instructions.Ana:
		mc.A = mc.ana(mc.A, mc.reg(src))
	case instructions.Xra:
		mc.A = mc.xra(mc.A, mc.reg(src))
	case instructions.Ora:
		mc.A = mc.ora(mc.A, mc.reg(src))
	case instructions.Cmp:
		mc.sub(mc.A, mc.reg(src), false)
	case instructions.Ani:
		mc.A = mc.ana(mc.A, d8)
	case instructions.Xri:
		mc.A = mc.xra(mc.A, d8)
	case instructions.Ori:
		mc.A = mc.ora(mc.A, d8)
	case instructions.Cpi:
		mc.sub(mc.A, d8, false)
	case instructions.Rlc:
		mc.Status.Carry = mc.A&0x80 == 0x80
		mc.A = mc.A<<1 | mc.A>>7
	case instructions.Rrc:
		mc.Status.Carry = mc.A&0x01 == 0x01
		mc.A = mc.A>>1 | mc.A<<7
	case instructions.Ral:
		c := mc.A&0x80 == 0x80
		mc.A <<= 1
		if mc.Status.Carry {
			mc.A |= 0x01
		}
		mc.Status.Carry = c
	case instructions.Rar:
		c := mc.A&0x01 == 0x01
		mc.A >>= 1
		if mc.Status.Carry {
			mc.A |= 0x80
		}
		mc.Status.Carry = c
	case instructions.Cma:
		mc.A = ^mc.A
	case instructions.Cmc:
		mc.Status.Carry = !mc.Status.Carry
	case instructions.Stc:
		mc.Status.Carry = true

	// branch
	case instructions.Jmp:
		mc.PC = d16
	case instructions.Jcc:
		if mc.condition(dst) {
			mc.PC = d16
		}
	case instructions.Call:
		mc.push(mc.PC)
		mc.PC = d16
	case instructions.Ccc:
		if mc.condition(dst) {
			mc.push(mc.PC)
			mc.PC = d16
			return defn.CyclesTaken
		}
	case instructions.Ret:
		mc.PC = mc.pop()
	case instructions.Rcc:
		if mc.condition(dst) {
			mc.PC = mc.pop()
			return defn.CyclesTaken
		}
	case instructions.Rst:
		mc.push(mc.PC)
		mc.PC = uint16(dst) << 3
	case instructions.Pchl:
		mc.PC = mc.HL()

	// stack
	case instructions.Push:
		if rp == 3 {
			mc.push(uint16(mc.A)<<8 | uint16(mc.Status.Value()))
		} else {
			mc.push(mc.pair(rp))
		}
	case instructions.Pop:
		v := mc.pop()
		if rp == 3 {
			mc.A = uint8(v >> 8)
			mc.Status.FromValue(uint8(v))
		} else {
			mc.setPair(rp, v)
		}
	case instructions.Xthl:
		v := mc.read16(mc.SP)
		mc.write16(mc.SP, mc.HL())
		mc.setHL(v)
	case instructions.Sphl:
		mc.SP = mc.HL()

	// the port is serviced by the caller using the instruction frame
	case instructions.In:
	case instructions.Out:

	case instructions.Ei:
		mc.InterruptsEnabled = true
		mc.eiDelay = true
	case instructions.Di:
		mc.InterruptsEnabled = false
	}

	return defn.Cycles
}
