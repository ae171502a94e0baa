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

package easyterm_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopher8/terminal/easyterm"
	"github.com/jetsetilly/gopher8/test"
)

func TestInitialiseWithoutFiles(t *testing.T) {
	var term easyterm.Terminal
	test.ExpectFailure(t, term.Initialise(nil, os.Stdout))
	test.ExpectFailure(t, term.Initialise(os.Stdin, nil))
}

func TestInitialiseNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notterm")
	test.DemandSuccess(t, err)
	defer f.Close()

	// a regular file has no terminal attributes
	var term easyterm.Terminal
	test.ExpectFailure(t, term.Initialise(f, f))
}
