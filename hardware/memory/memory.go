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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Size of the address space.
const Size = 4096

// Layout of the address space.
const (
	FontOrigin    = 0x050
	ProgramOrigin = 0x200

	// the largest program that will fit in memory
	MaxProgramSize = Size - ProgramOrigin
)

// Font dimensions.
const (
	NumGlyphs = 16
	GlyphSize = 5
)

// Sentinal error patterns.
const (
	AddressFault    = "memory: address fault: %#04x"
	ProgramTooLarge = "memory: program too large: %d bytes (maximum %d)"
)

// Memory is the address space of the CHIP-8.
type Memory struct {
	data [Size]uint8

	// the most recently loaded program. it is copied into memory again on
	// every Reset()
	program []uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("memory: %d bytes, program %d bytes", Size, len(mem.program))
}

// Reset zeroes memory, writes the font and copies the loaded program (if
// any) to the program origin.
func (mem *Memory) Reset() {
	clear(mem.data[:])
	copy(mem.data[FontOrigin:], font[:])
	copy(mem.data[ProgramOrigin:], mem.program)
}

// LoadProgram copies the data to the program origin. Memory is reset before
// the program is copied. A program that is too large for the address space
// is rejected with a ProgramTooLarge error and memory is not changed.
func (mem *Memory) LoadProgram(data []uint8) error {
	if len(data) > MaxProgramSize {
		return curated.Errorf(ProgramTooLarge, len(data), MaxProgramSize)
	}
	mem.program = append(mem.program[:0], data...)
	mem.Reset()
	return nil
}

// Program returns a copy of the most recently loaded program.
func (mem *Memory) Program() []uint8 {
	return append([]uint8(nil), mem.program...)
}

// Read the byte at address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= Size {
		return 0, curated.Errorf(AddressFault, address)
	}
	return mem.data[address], nil
}

// Write the byte to address.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= Size {
		return curated.Errorf(AddressFault, address)
	}
	mem.data[address] = data
	return nil
}

// Dump writes a hex listing of the memory between the origin and memtop
// addresses inclusive. Rows are sixteen bytes wide.
func (mem *Memory) Dump(origin uint16, memtop uint16) (string, error) {
	if int(origin) >= Size {
		return "", curated.Errorf(AddressFault, origin)
	}
	if int(memtop) >= Size {
		return "", curated.Errorf(AddressFault, memtop)
	}

	s := strings.Builder{}
	for a := origin &^ 0x0f; a <= memtop; a += 16 {
		s.WriteString(fmt.Sprintf("%03x:", a))
		for i := uint16(0); i < 16; i++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[a+i]))
		}
		s.WriteString("\n")
	}

	return s.String(), nil
}
