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

// Package instructions decodes CHIP-8 instruction words.
//
// An instruction word is two bytes, the first byte in memory being the high
// byte. Decode() splits the word into its nibbles and the operand fields that
// are derived from them. The naming of the fields is conventional:
//
//	NNN    the low twelve bits, an address
//	NN     the low byte, an immediate value
//	N      the low nibble, an immediate value
//	X      the second nibble, a register index
//	Y      the third nibble, a register index
//
// Every word decodes. The Operator() function classifies the instruction and
// returns Unrecognised for words that do not belong to any instruction. What
// to do with an unrecognised instruction is for the execution engine to
// decide.
package instructions
