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

// Package disassembly produces listings of CHIP-8 programs.
//
// Instruction names come from the CHIP-8 instruction set definitions of the
// retrogolib package. Operands are formatted in the same manner as the
// retrodisasm tool:
//
//	200 6005   ld   V0, $05
//	202 a22a   ld   I, $22A
//	204 d015   drw  V0, V1, $5
//
// Disassemble() follows the flow of the program from the origin. Words that
// are reached by the flow of the program are Blessed. Words that are not
// reached are Decoded but may be data. Odd bytes that cannot be decoded as
// an instruction are Data.
//
// The Format() function formats a single instruction word and is useful for
// tracing the execution of a program.
package disassembly
