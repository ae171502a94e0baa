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

package termplay_test

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/terminal/easyterm/ansi"
	"github.com/jetsetilly/gopher8/terminal/termplay"
	"github.com/jetsetilly/gopher8/test"
)

func TestRenderer(t *testing.T) {
	dsp := display.NewDisplay()

	// a two row sprite at the origin and a single row sprite on the second
	// line of the display
	dsp.Draw(0, 0, []uint8{0xc0, 0x80})
	dsp.Draw(0, 3, []uint8{0x80})
	frame, _ := dsp.Sync()

	w := &test.Writer{}
	r := termplay.NewRenderer(w)
	test.DemandSuccess(t, r.Render(frame))

	s := w.String()
	test.DemandSuccess(t, strings.HasPrefix(s, ansi.CursorHome))

	lines := strings.Split(strings.TrimPrefix(s, ansi.CursorHome), "\r\n")

	// trailing empty string after the final line ending
	test.DemandEquality(t, len(lines), display.Height/2+1)

	test.ExpectEquality(t, []rune(lines[0])[0], '█')
	test.ExpectEquality(t, []rune(lines[0])[1], '▀')
	test.ExpectEquality(t, []rune(lines[0])[2], ' ')
	test.ExpectEquality(t, []rune(lines[1])[0], '▄')
	test.ExpectEquality(t, len([]rune(lines[0])), display.Width)
}

func TestKeys(t *testing.T) {
	kp := input.NewKeypad()
	keys := termplay.NewKeys(kp, 100*time.Millisecond)

	now := time.Now()
	quit, err := keys.Input([]uint8("w"), now)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, quit)
	test.ExpectSuccess(t, kp.IsDown(0x5))

	// key is not released before the hold period
	test.ExpectSuccess(t, keys.Release(now.Add(50*time.Millisecond)))
	test.ExpectSuccess(t, kp.IsDown(0x5))

	// key repeat extends the hold period
	_, err = keys.Input([]uint8("w"), now.Add(80*time.Millisecond))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, keys.Release(now.Add(150*time.Millisecond)))
	test.ExpectSuccess(t, kp.IsDown(0x5))

	test.ExpectSuccess(t, keys.Release(now.Add(200*time.Millisecond)))
	test.ExpectFailure(t, kp.IsDown(0x5))
}

func TestKeysQuit(t *testing.T) {
	kp := input.NewKeypad()
	keys := termplay.NewKeys(kp, termplay.DefaultHold)

	// cursor key escape sequence
	quit, err := keys.Input([]uint8{27, '[', 'A'}, time.Now())
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, quit)

	quit, err = keys.Input([]uint8{27}, time.Now())
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)

	quit, err = keys.Input([]uint8{3}, time.Now())
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)
}

func TestRead(t *testing.T) {
	kp := input.NewKeypad()
	keys := termplay.NewKeys(kp, time.Hour)

	// reading stops at the quit key
	err := keys.Read(context.Background(), strings.NewReader("1v\x1bq"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, kp.IsDown(0x1))
	test.ExpectFailure(t, kp.IsDown(0x4))

	// reading stops at the end of input
	err = keys.Read(context.Background(), strings.NewReader("x"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, kp.IsDown(0x0))
}

func TestReadClosed(t *testing.T) {
	kp := input.NewKeypad()
	keys := termplay.NewKeys(kp, time.Hour)

	pr, pw := io.Pipe()
	done := make(chan error)
	go func() {
		done <- keys.Read(context.Background(), pr)
	}()

	_, err := pw.Write([]byte("q"))
	test.DemandSuccess(t, err)
	pw.CloseWithError(os.ErrClosed)

	test.ExpectSuccess(t, <-done)
	test.ExpectSuccess(t, kp.IsDown(0x4))
}

func TestReadCancelled(t *testing.T) {
	kp := input.NewKeypad()
	keys := termplay.NewKeys(kp, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())

	pr, pw := io.Pipe()
	done := make(chan error)
	go func() {
		done <- keys.Read(ctx, pr)
	}()

	_, err := pw.Write([]byte("w"))
	test.DemandSuccess(t, err)

	// wait for the key to reach the keypad before cancelling
	deadline := time.Now().Add(time.Second)
	for !kp.IsDown(0x5) && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	test.DemandSuccess(t, kp.IsDown(0x5))

	// input that arrives after the context is cancelled ends the reader and
	// is not forwarded to the keypad
	cancel()
	_, err = pw.Write([]byte("e"))
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, <-done)
	test.ExpectFailure(t, kp.IsDown(0x6))
}
