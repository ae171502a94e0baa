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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

// initialise base seed
func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// Random is the random number generator used by the emulation.
type Random struct {
	rnd *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for testing where random numbers must be predictable. the
	// generator must be Reset() for a change to take effect
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	rnd := &Random{}
	rnd.Reset()
	return rnd
}

// Reset the generator. The sequence will begin again from the seed.
func (rnd *Random) Reset() {
	if rnd.ZeroSeed {
		rnd.rnd = rand.New(rand.NewPCG(0, 0))
		return
	}
	rnd.rnd = rand.New(rand.NewPCG(baseSeed, baseSeed>>1))
}

// Byte returns a random value between 0 and 255 inclusive.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rnd.UintN(256))
}
