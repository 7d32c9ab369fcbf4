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

package instructions

import "fmt"

// names of the registers as encoded in the opcode. M is the memory location
// pointed to by the HL register pair
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

// names of the register pairs as encoded in the opcode. PUSH and POP use PSW
// instead of SP
var pairNames = [4]string{"B", "D", "H", "SP"}

// names of the conditions as encoded in the opcode
var conditionNames = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

// the eight operations of the arithmetic/logic group, in opcode order
var aluRegister = [8]struct {
	operator Operator
	mnemonic string
	category Category
}{
	{Add, "ADD", Arithmetic},
	{Adc, "ADC", Arithmetic},
	{Sub, "SUB", Arithmetic},
	{Sbb, "SBB", Arithmetic},
	{Ana, "ANA", Logical},
	{Xra, "XRA", Logical},
	{Ora, "ORA", Logical},
	{Cmp, "CMP", Logical},
}

var aluImmediate = [8]struct {
	operator Operator
	mnemonic string
	category Category
}{
	{Adi, "ADI", Arithmetic},
	{Aci, "ACI", Arithmetic},
	{Sui, "SUI", Arithmetic},
	{Sbi, "SBI", Arithmetic},
	{Ani, "ANI", Logical},
	{Xri, "XRI", Logical},
	{Ori, "ORI", Logical},
	{Cpi, "CPI", Logical},
}

// the accumulator and flag operations found at opcodes 0x07 to 0x3f in steps
// of 8
var accumulatorOps = [8]struct {
	operator Operator
	mnemonic string
	category Category
}{
	{Rlc, "RLC", Logical},
	{Rrc, "RRC", Logical},
	{Ral, "RAL", Logical},
	{Rar, "RAR", Logical},
	{Daa, "DAA", Arithmetic},
	{Cma, "CMA", Logical},
	{Stc, "STC", Logical},
	{Cmc, "CMC", Logical},
}

var definitions []Definition

func init() {
	definitions = make([]Definition, 256)
	for i := range definitions {
		definitions[i] = define(uint8(i))
		if definitions[i].CyclesTaken == 0 {
			definitions[i].CyclesTaken = definitions[i].Cycles
		}
	}
}

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode. The table should be treated as read only.
func GetDefinitions() []Definition {
	return definitions
}

func def(op uint8, operator Operator, mnemonic string, operands string, bytes int, cycles int, category Category) Definition {
	return Definition{
		OpCode:   op,
		Operator: operator,
		Mnemonic: mnemonic,
		Operands: operands,
		Bytes:    bytes,
		Cycles:   cycles,
		Category: category,
	}
}

func undocumented(d Definition) Definition {
	d.Undocumented = true
	d.Mnemonic = fmt.Sprintf("*%s", d.Mnemonic)
	return d
}

// memory operands take longer than register operands
func regCycles(reg uint8, register int, memory int) int {
	if reg == 6 {
		return memory
	}
	return register
}

func define(op uint8) Definition {
	dst := (op >> 3) & 0x07
	src := op & 0x07
	rp := (op >> 4) & 0x03

	switch {
	case op == 0x76:
		return def(op, Hlt, "HLT", "", 1, 7, Control)

	case op&0xc0 == 0x40:
		cycles := 5
		if dst == 6 || src == 6 {
			cycles = 7
		}
		return def(op, Mov, "MOV", fmt.Sprintf("%s,%s", registerNames[dst], registerNames[src]), 1, cycles, Move)

	case op&0xc0 == 0x80:
		a := aluRegister[dst]
		return def(op, a.operator, a.mnemonic, registerNames[src], 1, regCycles(src, 4, 7), a.category)

	case op&0xc0 == 0x00:
		return defineLow(op, dst, rp)
	}

	return defineHigh(op, dst, rp)
}

// opcodes 0x00 to 0x3f
func defineLow(op uint8, dst uint8, rp uint8) Definition {
	switch op & 0x07 {
	case 0:
		if op == 0x00 {
			return def(op, Nop, "NOP", "", 1, 4, Control)
		}
		return undocumented(def(op, Nop, "NOP", "", 1, 4, Control))

	case 1:
		if op&0x08 == 0 {
			return def(op, Lxi, "LXI", fmt.Sprintf("%s,d16", pairNames[rp]), 3, 10, Move)
		}
		return def(op, Dad, "DAD", pairNames[rp], 1, 10, Arithmetic)

	case 2:
		switch op {
		case 0x02, 0x12:
			return def(op, Stax, "STAX", pairNames[rp], 1, 7, Move)
		case 0x0a, 0x1a:
			return def(op, Ldax, "LDAX", pairNames[rp], 1, 7, Move)
		case 0x22:
			return def(op, Shld, "SHLD", "a16", 3, 16, Move)
		case 0x2a:
			return def(op, Lhld, "LHLD", "a16", 3, 16, Move)
		case 0x32:
			return def(op, Sta, "STA", "a16", 3, 13, Move)
		}
		return def(op, Lda, "LDA", "a16", 3, 13, Move)

	case 3:
		if op&0x08 == 0 {
			return def(op, Inx, "INX", pairNames[rp], 1, 5, Arithmetic)
		}
		return def(op, Dcx, "DCX", pairNames[rp], 1, 5, Arithmetic)

	case 4:
		return def(op, Inr, "INR", registerNames[dst], 1, regCycles(dst, 5, 10), Arithmetic)

	case 5:
		return def(op, Dcr, "DCR", registerNames[dst], 1, regCycles(dst, 5, 10), Arithmetic)

	case 6:
		return def(op, Mvi, "MVI", fmt.Sprintf("%s,d8", registerNames[dst]), 2, regCycles(dst, 7, 10), Move)
	}

	a := accumulatorOps[dst]
	return def(op, a.operator, a.mnemonic, "", 1, 4, a.category)
}

// opcodes 0xc0 to 0xff
func defineHigh(op uint8, dst uint8, rp uint8) Definition {
	switch op & 0x07 {
	case 0:
		d := def(op, Rcc, fmt.Sprintf("R%s", conditionNames[dst]), "", 1, 5, Branch)
		d.CyclesTaken = 11
		return d

	case 1:
		switch op {
		case 0xc9:
			return def(op, Ret, "RET", "", 1, 10, Branch)
		case 0xd9:
			return undocumented(def(op, Ret, "RET", "", 1, 10, Branch))
		case 0xe9:
			return def(op, Pchl, "PCHL", "", 1, 5, Branch)
		case 0xf9:
			return def(op, Sphl, "SPHL", "", 1, 5, Stack)
		}
		if rp == 3 {
			return def(op, Pop, "POP", "PSW", 1, 10, Stack)
		}
		return def(op, Pop, "POP", pairNames[rp], 1, 10, Stack)

	case 2:
		return def(op, Jcc, fmt.Sprintf("J%s", conditionNames[dst]), "a16", 3, 10, Branch)

	case 3:
		switch op {
		case 0xc3:
			return def(op, Jmp, "JMP", "a16", 3, 10, Branch)
		case 0xcb:
			return undocumented(def(op, Jmp, "JMP", "a16", 3, 10, Branch))
		case 0xd3:
			return def(op, Out, "OUT", "d8", 2, 10, IO)
		case 0xdb:
			return def(op, In, "IN", "d8", 2, 10, IO)
		case 0xe3:
			return def(op, Xthl, "XTHL", "", 1, 18, Stack)
		case 0xeb:
			return def(op, Xchg, "XCHG", "", 1, 4, Move)
		case 0xf3:
			return def(op, Di, "DI", "", 1, 4, Control)
		}
		return def(op, Ei, "EI", "", 1, 4, Control)

	case 4:
		d := def(op, Ccc, fmt.Sprintf("C%s", conditionNames[dst]), "a16", 3, 11, Branch)
		d.CyclesTaken = 17
		return d

	case 5:
		switch op {
		case 0xcd:
			return def(op, Call, "CALL", "a16", 3, 17, Branch)
		case 0xdd, 0xed, 0xfd:
			return undocumented(def(op, Call, "CALL", "a16", 3, 17, Branch))
		}
		if rp == 3 {
			return def(op, Push, "PUSH", "PSW", 1, 11, Stack)
		}
		return def(op, Push, "PUSH", pairNames[rp], 1, 11, Stack)

	case 6:
		a := aluImmediate[dst]
		return def(op, a.operator, a.mnemonic, "d8", 2, 7, a.category)
	}

	return def(op, Rst, "RST", fmt.Sprintf("%d", dst), 1, 11, Branch)
}
