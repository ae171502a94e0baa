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

import (
	"fmt"
	"strings"
)

// initial capacity of the stack. the stack grows beyond this if required
const stackCapacity = 16

// Stack holds subroutine return addresses.
type Stack struct {
	entries []uint16
}

// NewStack is the preferred method of initialisation for the Stack type.
func NewStack() Stack {
	return Stack{
		entries: make([]uint16, 0, stackCapacity),
	}
}

// Label returns the name of the stack.
func (s Stack) Label() string {
	return "SP"
}

func (s Stack) String() string {
	e := make([]string, len(s.entries))
	for i, a := range s.entries {
		e[i] = fmt.Sprintf("%03x", a)
	}
	return fmt.Sprintf("%s=%d [%s]", s.Label(), len(s.entries), strings.Join(e, " "))
}

// Len returns the number of return addresses on the stack.
func (s Stack) Len() int {
	return len(s.entries)
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.entries = s.entries[:0]
}

// Push address onto the stack. There is no limit to the depth of the stack.
func (s *Stack) Push(address uint16) {
	s.entries = append(s.entries, address)
}

// Pop the most recently pushed address from the stack. Returns false if the
// stack is empty.
func (s *Stack) Pop() (uint16, bool) {
	if len(s.entries) == 0 {
		return 0, false
	}
	a := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return a, true
}
