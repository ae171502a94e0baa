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

package userinput

import (
	"strings"
)

// HandleInput conceptualises the keypad of the emulated hardware.
type HandleInput interface {
	KeyDown(key uint8) error
	KeyUp(key uint8) error

	// release every key
	Reset()
}

func keyboard(ev EventKeyboard, handle HandleInput) (bool, error) {
	if ev.Repeat {
		return false, nil
	}

	if ev.Down && strings.EqualFold(ev.Key, QuitKey) {
		return true, nil
	}

	// keys pressed with a modifier are left for the GUI
	if ev.Mod != KeyModNone && ev.Down {
		return false, nil
	}

	k, ok := KeypadKey(ev.Key)
	if !ok {
		return false, nil
	}

	if ev.Down {
		return false, handle.KeyDown(k)
	}
	return false, handle.KeyUp(k)
}

// HandleEvent deciphers the Event and forwards the input to the keypad.
// Returns true if the event is a quit event and false otherwise.
func HandleEvent(handle HandleInput, ev Event) (bool, error) {
	switch ev := ev.(type) {
	case EventQuit:
		return true, nil
	case EventKeyboard:
		return keyboard(ev, handle)
	case EventFocusLost:
		// key up events will not be seen once focus has been lost
		handle.Reset()
	}
	return false, nil
}
