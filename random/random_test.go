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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed = true
	b.ZeroSeed = true
	a.Reset()
	b.Reset()

	for range 256 {
		test.ExpectEquality(t, a.Byte(), b.Byte())
	}
}

func TestReset(t *testing.T) {
	a := random.NewRandom()
	a.ZeroSeed = true
	a.Reset()

	var seq [16]uint8
	for i := range seq {
		seq[i] = a.Byte()
	}

	a.Reset()
	for i := range seq {
		test.ExpectEquality(t, a.Byte(), seq[i])
	}
}
