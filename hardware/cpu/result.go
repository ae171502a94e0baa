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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Result records the most recently executed instruction.
type Result struct {
	// the address the instruction was read from
	Address uint16

	Instruction instructions.Instruction
	Operator    instructions.Operator

	// the instruction was a skip and the skip was taken
	Skipped bool

	// the instruction was the wait-for-key instruction and no key has yet
	// been pressed
	Waiting bool
}

func (r Result) String() string {
	s := fmt.Sprintf("%03x %s %s", r.Address, r.Instruction, r.Operator)
	if r.Skipped {
		s = fmt.Sprintf("%s (skipped)", s)
	}
	if r.Waiting {
		s = fmt.Sprintf("%s (waiting)", s)
	}
	return s
}
