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

package instructions

import "fmt"

// Instruction is a decoded instruction word.
type Instruction struct {
	Word    uint16
	Nibbles [4]uint8

	NNN uint16
	NN  uint8
	N   uint8
	X   uint8
	Y   uint8
}

// Decode an instruction from the high and low bytes.
func Decode(hi uint8, lo uint8) Instruction {
	return Instruction{
		Word:    uint16(hi)<<8 | uint16(lo),
		Nibbles: [4]uint8{hi >> 4, hi & 0x0f, lo >> 4, lo & 0x0f},
		NNN:     uint16(hi&0x0f)<<8 | uint16(lo),
		NN:      lo,
		N:       lo & 0x0f,
		X:       hi & 0x0f,
		Y:       lo >> 4,
	}
}

func (ins Instruction) String() string {
	return fmt.Sprintf("%04x", ins.Word)
}

// Operator classifies the instruction.
func (ins Instruction) Operator() Operator {
	switch ins.Nibbles[0] {
	case 0x0:
		switch ins.Word {
		case 0x00e0:
			return ClearScreen
		case 0x00ee:
			return Return
		}
	case 0x1:
		return Jump
	case 0x2:
		return Call
	case 0x3:
		return SkipEqualImmediate
	case 0x4:
		return SkipNotEqualImmediate
	case 0x5:
		if ins.N == 0x0 {
			return SkipEqualRegister
		}
	case 0x6:
		return LoadImmediate
	case 0x7:
		return AddImmediate
	case 0x8:
		switch ins.N {
		case 0x0:
			return Copy
		case 0x1:
			return OR
		case 0x2:
			return AND
		case 0x3:
			return XOR
		case 0x4:
			return AddRegister
		case 0x5:
			return Subtract
		case 0x6:
			return ShiftRight
		case 0x7:
			return SubtractFrom
		case 0xe:
			return ShiftLeft
		}
	case 0x9:
		if ins.N == 0x0 {
			return SkipNotEqualRegister
		}
	case 0xa:
		return LoadIndex
	case 0xb:
		return JumpOffset
	case 0xc:
		return Random
	case 0xd:
		return Draw
	case 0xe:
		switch ins.NN {
		case 0x9e:
			return SkipKeyDown
		case 0xa1:
			return SkipKeyUp
		}
	case 0xf:
		switch ins.NN {
		case 0x07:
			return GetDelay
		case 0x0a:
			return WaitForKey
		case 0x15:
			return SetDelay
		case 0x18:
			return SetSound
		case 0x1e:
			return AddIndex
		case 0x29:
			return Glyph
		case 0x33:
			return BCD
		case 0x55:
			return StoreRegisters
		case 0x65:
			return LoadRegisters
		}
	}

	return Unrecognised
}
