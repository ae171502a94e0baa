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

// Package registers implements the registers of the CHIP-8: the sixteen 8-bit
// general purpose registers, the 16-bit index register, the program counter
// and the call stack.
//
// Arithmetic functions return the information that the caller needs to set
// the flag register. They do not set the flag register themselves. For
// example:
//
//	carry := vx.Add(vy.Value())
//	vf.Load(boolToFlag(carry))
//
// Register VF is an ordinary register as far as this package is concerned.
package registers
