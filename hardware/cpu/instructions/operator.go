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

// Operator identifies the operation performed by an instruction. Many opcodes
// share an operator, the registers involved being encoded in the opcode.
type Operator int

// List of operators.
const (
	Nop Operator = iota
	Hlt

	// move, load and store
	Mov
	Mvi
	Lxi
	Lda
	Sta
	Lhld
	Shld
	Ldax
	Stax
	Xchg

	// arithmetic
	Add
	Adc
	Sub
	Sbb
	Inr
	Dcr
	Inx
	Dcx
	Dad
	Daa
	Adi
	Aci
	Sui
	Sbi

	// logical
	Ana
	Xra
	Ora
	Cmp
	Ani
	Xri
	Ori
	Cpi
	Rlc
	Rrc
	Ral
	Rar
	Cma
	Cmc
	Stc

	// branch
	Jmp
	Jcc
	Call
	Ccc
	Ret
	Rcc
	Rst
	Pchl

	// stack
	Push
	Pop
	Xthl
	Sphl

	// io and control
	In
	Out
	Ei
	Di
)
