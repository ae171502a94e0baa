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

// Package memory implements the 4096 byte address space of the CHIP-8.
//
// The memory map is simple:
//
//	0x000 - 0x04f    unused
//	0x050 - 0x09f    font glyphs, 16 glyphs of 5 bytes each
//	0x0a0 - 0x1ff    unused
//	0x200 - 0xfff    program
//
// The font is written when memory is reset and before any program is
// loaded. Every access is checked against the size of memory and an address
// outside of memory results in an AddressFault error. An AddressFault is a
// fatal condition for the emulation.
package memory
