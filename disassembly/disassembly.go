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

package disassembly

import (
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Disassemble the program data, which is loaded at the origin address. There
// is one Entry for every two bytes of data. If the length of the data is odd
// then the final Entry is a Data entry.
func Disassemble(data []uint8, origin uint16) []Entry {
	entries := make([]Entry, 0, (len(data)+1)/2)

	i := 0
	for ; i+1 < len(data); i += 2 {
		entries = append(entries, newEntry(origin+uint16(i), data[i], data[i+1]))
	}
	if i < len(data) {
		entries = append(entries, newDataEntry(origin+uint16(i), data[i]))
	}

	bless(entries, origin)

	return entries
}

// bless follows the flow of the program from the origin and promotes every
// reached entry to the Blessed level. targets that are not aligned with the
// origin are not followed.
func bless(entries []Entry, origin uint16) {
	idx := func(address uint16) (int, bool) {
		if address < origin || (address-origin)%2 != 0 {
			return 0, false
		}
		i := int(address-origin) / 2
		if i >= len(entries) || entries[i].Level == Data {
			return 0, false
		}
		return i, true
	}

	pending := []uint16{origin}
	for len(pending) > 0 {
		address := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		i, ok := idx(address)
		if !ok || entries[i].Level == Blessed {
			continue
		}

		e := &entries[i]
		if e.Operator == instructions.Unrecognised {
			continue
		}
		e.Level = Blessed

		ins := instructions.Decode(e.Bytes[0], e.Bytes[1])
		next := address + 2

		switch e.Operator.Effect() {
		case instructions.Skip:
			pending = append(pending, next, next+2)
		case instructions.Flow:
			// the destination of a JumpOffset instruction is not known until
			// the program runs
			if e.Operator == instructions.Jump {
				pending = append(pending, ins.NNN)
			}
		case instructions.Subroutine:
			if e.Operator == instructions.Call {
				pending = append(pending, ins.NNN, next)
			}
		default:
			pending = append(pending, next)
		}
	}
}
