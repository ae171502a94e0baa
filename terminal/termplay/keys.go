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

package termplay

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/terminal/easyterm"
	"github.com/jetsetilly/gopher8/userinput"
)

// DefaultHold is the length of time a key is held down after it has been
// pressed.
const DefaultHold = 150 * time.Millisecond

// Keys translates terminal input into keypad events.
type Keys struct {
	handle userinput.HandleInput
	hold   time.Duration

	crit sync.Mutex
	held map[uint8]time.Time
}

// NewKeys is the preferred method of initialisation for the Keys type.
func NewKeys(handle userinput.HandleInput, hold time.Duration) *Keys {
	return &Keys{
		handle: handle,
		hold:   hold,
		held:   make(map[uint8]time.Time),
	}
}

// Input handles a chunk of terminal input that was read at the specified
// time. Returns true if the input contains a quit request.
func (k *Keys) Input(b []uint8, now time.Time) (bool, error) {
	// escape sequences for cursor keys and the like are ignored. a single
	// escape character is the escape key
	if len(b) > 1 && b[0] == easyterm.KeyEsc {
		return false, nil
	}

	for _, c := range b {
		var name string
		switch c {
		case easyterm.KeyInterrupt, easyterm.KeyEsc:
			name = userinput.QuitKey
		default:
			name = string(rune(c))
		}

		quit, err := userinput.HandleEvent(k.handle, userinput.EventKeyboard{Key: name, Down: true})
		if err != nil {
			return false, err
		}
		if quit {
			return true, nil
		}

		if key, ok := userinput.KeypadKey(name); ok {
			k.crit.Lock()
			k.held[key] = now
			k.crit.Unlock()
		}
	}

	return false, nil
}

// Release keys that have been held for longer than the hold period.
func (k *Keys) Release(now time.Time) error {
	k.crit.Lock()
	defer k.crit.Unlock()

	for key, t := range k.held {
		if now.Sub(t) >= k.hold {
			delete(k.held, key)
			if err := k.handle.KeyUp(key); err != nil {
				return err
			}
		}
	}

	return nil
}

// Read input from the io.Reader until a quit request is found, the reader is
// exhausted or closed, or the context is cancelled. The context is checked
// each time the reader returns. Input read after the context has been
// cancelled is discarded.
func (k *Keys) Read(ctx context.Context, r io.Reader) error {
	b := make([]uint8, 16)
	for {
		n, err := r.Read(b)
		if ctx.Err() != nil {
			return nil
		}
		if n > 0 {
			quit, err := k.Input(b[:n], time.Now())
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return err
		}
	}
}
