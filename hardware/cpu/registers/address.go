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

package registers

import "fmt"

// ProgramCounter is the 16-bit program counter. The value is always even.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter is the preferred method of initialisation for the
// ProgramCounter type.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{value: val &^ 1}
}

// Label returns the name of the register.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%s=%03x", pc.Label(), pc.value)
}

// Address returns the current value of the PC.
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// Load a value into the PC. The lowest bit of the value is dropped.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val &^ 1
}

// Add a value to the PC. The lowest bit of the result is dropped.
func (pc *ProgramCounter) Add(val uint16) {
	pc.value = (pc.value + val) &^ 1
}

// Index is the 16-bit index register. Addresses in CHIP-8 are twelve bits but
// the index register can advance beyond 0xfff.
type Index struct {
	value uint16
}

// NewIndex is the preferred method of initialisation for the Index type.
func NewIndex(val uint16) Index {
	return Index{value: val}
}

// Label returns the name of the register.
func (i Index) Label() string {
	return "I"
}

func (i Index) String() string {
	return fmt.Sprintf("%s=%03x", i.Label(), i.value)
}

// Address returns the current value of the index register.
func (i Index) Address() uint16 {
	return i.value
}

// Load a value into the index register.
func (i *Index) Load(val uint16) {
	i.value = val
}

// Add a value to the index register. Returns true if the result is beyond
// the twelve bit address space.
func (i *Index) Add(val uint8) (beyond bool) {
	i.value += uint16(val)
	return i.value > 0x0fff
}
