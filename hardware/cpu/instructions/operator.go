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

// Operator identifies the operation of an instruction.
type Operator int

// List of operators. The comment for each shows the pattern of the
// instruction word.
const (
	Unrecognised          Operator = iota
	ClearScreen                    // 00E0
	Return                         // 00EE
	Jump                           // 1NNN
	Call                           // 2NNN
	SkipEqualImmediate             // 3XNN
	SkipNotEqualImmediate          // 4XNN
	SkipEqualRegister              // 5XY0
	LoadImmediate                  // 6XNN
	AddImmediate                   // 7XNN
	Copy                           // 8XY0
	OR                             // 8XY1
	AND                            // 8XY2
	XOR                            // 8XY3
	AddRegister                    // 8XY4
	Subtract                       // 8XY5
	ShiftRight                     // 8XY6
	SubtractFrom                   // 8XY7
	ShiftLeft                      // 8XYE
	SkipNotEqualRegister           // 9XY0
	LoadIndex                      // ANNN
	JumpOffset                     // BNNN
	Random                         // CXNN
	Draw                           // DXYN
	SkipKeyDown                    // EX9E
	SkipKeyUp                      // EXA1
	GetDelay                       // FX07
	WaitForKey                     // FX0A
	SetDelay                       // FX15
	SetSound                       // FX18
	AddIndex                       // FX1E
	Glyph                          // FX29
	BCD                            // FX33
	StoreRegisters                 // FX55
	LoadRegisters                  // FX65
)

// NumOperators is the number of recognised operators.
const NumOperators = int(LoadRegisters)

func (op Operator) String() string {
	switch op {
	case Unrecognised:
		return "unrecognised"
	case ClearScreen:
		return "clear screen"
	case Return:
		return "return"
	case Jump:
		return "jump"
	case Call:
		return "call"
	case SkipEqualImmediate:
		return "skip if equal (immediate)"
	case SkipNotEqualImmediate:
		return "skip if not equal (immediate)"
	case SkipEqualRegister:
		return "skip if equal (register)"
	case LoadImmediate:
		return "load (immediate)"
	case AddImmediate:
		return "add (immediate)"
	case Copy:
		return "copy"
	case OR:
		return "or"
	case AND:
		return "and"
	case XOR:
		return "xor"
	case AddRegister:
		return "add (register)"
	case Subtract:
		return "subtract"
	case ShiftRight:
		return "shift right"
	case SubtractFrom:
		return "subtract from"
	case ShiftLeft:
		return "shift left"
	case SkipNotEqualRegister:
		return "skip if not equal (register)"
	case LoadIndex:
		return "load index"
	case JumpOffset:
		return "jump with offset"
	case Random:
		return "random"
	case Draw:
		return "draw"
	case SkipKeyDown:
		return "skip if key down"
	case SkipKeyUp:
		return "skip if key up"
	case GetDelay:
		return "get delay timer"
	case WaitForKey:
		return "wait for key"
	case SetDelay:
		return "set delay timer"
	case SetSound:
		return "set sound timer"
	case AddIndex:
		return "add to index"
	case Glyph:
		return "glyph address"
	case BCD:
		return "binary coded decimal"
	case StoreRegisters:
		return "store registers"
	case LoadRegisters:
		return "load registers"
	}
	return ""
}

// Effect categorises an operator by the effect it has on the program counter.
type Effect int

// List of effect categories.
const (
	// the program counter advances to the next instruction
	Sequential Effect = iota

	// the program counter may advance by an additional instruction
	Skip

	// the program counter is loaded with a new address
	Flow

	// the program counter is loaded with a new address and the stack changes
	Subroutine

	// the program counter may not advance at all
	Blocking
)

// Effect returns the effect category of the operator.
func (op Operator) Effect() Effect {
	switch op {
	case SkipEqualImmediate, SkipNotEqualImmediate, SkipEqualRegister,
		SkipNotEqualRegister, SkipKeyDown, SkipKeyUp:
		return Skip
	case Jump, JumpOffset:
		return Flow
	case Call, Return:
		return Subroutine
	case WaitForKey:
		return Blocking
	}
	return Sequential
}
