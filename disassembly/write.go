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
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8/curated"
)

// Write the entries to the io.Writer as a listing. Entries that have not
// been reached by the flow of the program are marked with an asterisk.
func Write(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if err := WriteEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single line of a listing to the io.Writer.
func WriteEntry(w io.Writer, e Entry) error {
	var mark string
	if e.Level != Blessed {
		mark = "*"
	}

	var err error
	if e.Operands == "" {
		_, err = fmt.Fprintf(w, "%03x %-4s %1s %s\n", e.Address, e.bytes(), mark, e.Mnemonic)
	} else {
		_, err = fmt.Fprintf(w, "%03x %-4s %1s %-4s %s\n", e.Address, e.bytes(), mark, e.Mnemonic, e.Operands)
	}
	if err != nil {
		return curated.Errorf("disassembly: %v", err)
	}
	return nil
}
