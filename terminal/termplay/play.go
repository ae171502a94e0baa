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
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/terminal/easyterm"
	"github.com/jetsetilly/gopher8/terminal/easyterm/ansi"
)

// Play runs the VM in the terminal until the user quits or the context is
// cancelled.
func Play(ctx context.Context, term *easyterm.Terminal, vm *hardware.VM, freq int) error {
	term.CBreakMode()
	term.Print("%s%s%s", ansi.HideCursor, ansi.ClearScreen, ansi.CursorHome)
	defer term.Print("%s%s", ansi.NormalPen, ansi.ShowCursor)

	keys := NewKeys(vm.Keypad, DefaultHold)

	var quit atomic.Bool
	var keysErr atomic.Value

	// reading from the terminal blocks. the reader stops the next time a
	// read returns after Play() has finished
	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := keys.Read(readCtx, term); err != nil {
			keysErr.Store(err)
		}
		quit.Store(true)
	}()

	renderer := NewRenderer(term)

	err := vm.Run(ctx, freq, renderer, func() (govern.State, error) {
		if err, ok := keysErr.Load().(error); ok {
			return govern.Ending, err
		}
		if quit.Load() {
			return govern.Ending, nil
		}
		if err := keys.Release(time.Now()); err != nil {
			return govern.Ending, err
		}
		return govern.Running, nil
	})

	logger.Log(logger.Allow, "termplay", "ended")

	return err
}
