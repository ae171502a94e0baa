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

package input

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gopher8/curated"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Sentinal error patterns.
const (
	InvalidKey = "input: invalid key: %#02x"
)

// Keypad is the state of the sixteen keys.
type Keypad struct {
	keys [NumKeys]atomic.Bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

func (kp *Keypad) String() string {
	s := strings.Builder{}
	for k := range kp.keys {
		if kp.keys[k].Load() {
			s.WriteString(fmt.Sprintf("%X", k))
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}

// KeyDown indicates that the key has been pressed.
func (kp *Keypad) KeyDown(key uint8) error {
	if int(key) >= NumKeys {
		return curated.Errorf(InvalidKey, key)
	}
	kp.keys[key].Store(true)
	return nil
}

// KeyUp indicates that the key has been released.
func (kp *Keypad) KeyUp(key uint8) error {
	if int(key) >= NumKeys {
		return curated.Errorf(InvalidKey, key)
	}
	kp.keys[key].Store(false)
	return nil
}

// IsDown returns true if the key is currently pressed. Invalid keys are
// never pressed.
func (kp *Keypad) IsDown(key uint8) bool {
	if int(key) >= NumKeys {
		return false
	}
	return kp.keys[key].Load()
}

// State returns the state of all keys as a bit mask. Bit zero is key zero.
func (kp *Keypad) State() uint16 {
	var s uint16
	for k := range kp.keys {
		if kp.keys[k].Load() {
			s |= 1 << k
		}
	}
	return s
}

// Reset releases every key.
func (kp *Keypad) Reset() {
	for k := range kp.keys {
		kp.keys[k].Store(false)
	}
}
