// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Level describes the certainty that an Entry is an instruction.
type Level int

// List of valid Level values.
const (
	// a single byte at the end of the program that cannot be an instruction
	Data Level = iota

	// a word that has been decoded but which is not reached by the flow of
	// the program. it may be data
	Decoded

	// a word that is reached by the flow of the program
	Blessed
)

func (l Level) String() string {
	switch l {
	case Data:
		return "data"
	case Decoded:
		return "decoded"
	case Blessed:
		return "blessed"
	}
	return "unknown level"
}

// Entry is a single line of a disassembly.
type Entry struct {
	Level    Level
	Address  uint16
	Bytes    []uint8
	Operator instructions.Operator
	Mnemonic string
	Operands string
}

func newEntry(address uint16, hi uint8, lo uint8) Entry {
	ins := instructions.Decode(hi, lo)
	mnemonic, operands := decode(ins)
	return Entry{
		Level:    Decoded,
		Address:  address,
		Bytes:    []uint8{hi, lo},
		Operator: ins.Operator(),
		Mnemonic: mnemonic,
		Operands: operands,
	}
}

func newDataEntry(address uint16, b uint8) Entry {
	return Entry{
		Level:    Data,
		Address:  address,
		Bytes:    []uint8{b},
		Operator: instructions.Unrecognised,
		Mnemonic: dataByte,
		Operands: fmt.Sprintf("$%02X", b),
	}
}

// Word returns the instruction word of the entry. Data entries return the
// single byte.
func (e Entry) Word() uint16 {
	if len(e.Bytes) == 2 {
		return uint16(e.Bytes[0])<<8 | uint16(e.Bytes[1])
	}
	if len(e.Bytes) == 1 {
		return uint16(e.Bytes[0])
	}
	return 0
}

func (e Entry) String() string {
	if e.Operands == "" {
		return e.Mnemonic
	}
	return fmt.Sprintf("%s %s", e.Mnemonic, e.Operands)
}

func (e Entry) bytes() string {
	s := strings.Builder{}
	for _, b := range e.Bytes {
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	return s.String()
}
