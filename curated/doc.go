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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, in the same way as fmt.Errorf().
// The pattern is remembered and can be tested for with the Is() function:
//
//	e := curated.Errorf(memory.AddressFault, 0x1000)
//
//	if curated.Is(e, memory.AddressFault) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in
// the error chain. An error chain is formed when a curated error is used as
// a placeholder value of another curated error:
//
//	f := curated.Errorf(cpu.ExecutionFault, pc, opcode, e)
//
//	curated.Has(f, memory.AddressFault) // true
//	curated.Is(f, memory.AddressFault)  // false
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented, in the package that produces the error.
//
// The Error() function normalises the error chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": ". This means that
// functions can prefix an error with their package name without worrying
// whether the wrapped error already has the same prefix.
//
// Curated errors also implement Unwrap(). The first placeholder value that is
// an error is returned, which allows the errors package in the standard
// library to look through a curated error.
package curated
