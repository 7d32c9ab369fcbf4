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

// Package disassembly produces a linear disassembly of a ROM image. Every
// byte is assumed to be the start of an instruction in turn, so data tables
// in the ROM will be disassembled as if they were code.
package disassembly

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address     uint16
	Defn        *instructions.Definition
	Instruction [3]uint8
}

// Bytecode returns the bytes of the instruction as a string of hex values.
func (e Entry) Bytecode() string {
	s := strings.Builder{}
	for i := 0; i < e.Defn.Bytes; i++ {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", e.Instruction[i]))
	}
	return s.String()
}

func (e Entry) String() string {
	return fmt.Sprintf("%04x  %-8s  %s", e.Address, e.Bytecode(), e.Defn.Format(e.Instruction))
}

// Disassembly is the result of a call to FromROM().
type Disassembly struct {
	Entries []Entry
}

// FromROM disassembles the image, which is assumed to be loaded at the origin
// address. A truncated instruction at the end of the image results in an
// error wrapping cpu.DecodeError, the entries decoded until that point are
// still returned.
func FromROM(image []uint8, origin uint16) (*Disassembly, error) {
	defns := instructions.GetDefinitions()
	dsm := &Disassembly{}

	for i := 0; i < len(image); {
		defn := &defns[image[i]]
		if i+defn.Bytes > len(image) {
			return dsm, fmt.Errorf("disassembly: %w: truncated %s at %#04x", cpu.DecodeError, defn.Mnemonic, origin+uint16(i))
		}

		e := Entry{
			Address: origin + uint16(i),
			Defn:    defn,
		}
		copy(e.Instruction[:], image[i:i+defn.Bytes])
		dsm.Entries = append(dsm.Entries, e)

		i += defn.Bytes
	}

	return dsm, nil
}

// Write the disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := io.WriteString(output, e.String()); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
		if _, err := io.WriteString(output, "\n"); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}
	return nil
}
