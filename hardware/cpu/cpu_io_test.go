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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestClearScreen(t *testing.T) {
	// draw the glyph for zero and then clear the screen
	m := newMachine(t, 0x6000, 0xf029, 0xd005, 0x00e0)
	m.step(t, 3)
	test.ExpectSuccess(t, m.dsp.Pixel(0, 0))

	m.step(t, 1)
	for y := range display.Height {
		for x := range display.Width {
			test.DemandEquality(t, m.dsp.Pixel(x, y), false)
		}
	}
}

func TestDrawDoubleXOR(t *testing.T) {
	// draw the glyph for eight at 10, 12 twice
	m := newMachine(t, 0x6008, 0xf029, 0x610a, 0x620c, 0xd125, 0xd125)
	m.step(t, 5)
	test.ExpectEquality(t, m.v(0xf), 0)
	test.ExpectSuccess(t, m.dsp.Pixel(10, 12))
	test.ExpectSuccess(t, m.dsp.Pixel(13, 16))

	// the second draw collides with the first and restores the frame
	m.step(t, 1)
	test.ExpectEquality(t, m.v(0xf), 1)
	for y := range display.Height {
		for x := range display.Width {
			test.DemandEquality(t, m.dsp.Pixel(x, y), false)
		}
	}
}

func TestDrawCollisionFlagReset(t *testing.T) {
	// the flag register is set before the draw but the draw causes no
	// collision
	m := newMachine(t, 0x6fff, 0x6000, 0xf029, 0xd005)
	m.step(t, 4)
	test.ExpectEquality(t, m.v(0xf), 0)
}

func TestDrawZeroRows(t *testing.T) {
	m := newMachine(t, 0x6f01, 0xd000)
	m.step(t, 2)
	test.ExpectEquality(t, m.v(0xf), 0)
	test.ExpectFailure(t, m.dsp.Pixel(0, 0))
}

func TestDrawWrapsOrigin(t *testing.T) {
	// 66 mod 64 is 2 and 35 mod 32 is 3
	m := newMachine(t, 0x6042, 0x6123, 0xa20a, 0xd011, 0x1208, 0x8000)
	m.step(t, 4)
	test.ExpectSuccess(t, m.dsp.Pixel(2, 3))
	test.ExpectFailure(t, m.dsp.Pixel(3, 3))
}

func TestDrawClipped(t *testing.T) {
	// a full row at 60, 31 is clipped after four pixels
	m := newMachine(t, 0x603c, 0x611f, 0xa20a, 0xd012, 0x1208, 0xffff)
	m.step(t, 4)
	test.ExpectSuccess(t, m.dsp.Pixel(63, 31))
	test.ExpectFailure(t, m.dsp.Pixel(0, 31))
	test.ExpectFailure(t, m.dsp.Pixel(60, 0))
}

func TestSkipKeys(t *testing.T) {
	m := newMachine(t, 0x6a05, 0xea9e, 0xeaa1)

	// key up. no skip for 9E, skip for A1
	m.step(t, 2)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x204)
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x208)

	// key down. skip for 9E, no skip for A1
	m.keypad.KeyDown(0x5)
	m.mc.PC.Load(0x202)
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x206)
	m.mc.PC.Load(0x204)
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x206)
}

func TestKeyFault(t *testing.T) {
	m := newMachine(t, 0x6a10, 0xea9e)
	m.step(t, 1)
	err := m.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, cpu.KeyFault))

	m = newMachine(t, 0x6aff, 0xeaa1)
	m.step(t, 1)
	err = m.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, cpu.KeyFault))
}

func TestWaitForKey(t *testing.T) {
	m := newMachine(t, 0xf30a, 0x6001)

	// no key pressed. the CPU stalls on the instruction
	for range 10 {
		m.step(t, 1)
		test.DemandEquality(t, m.mc.PC.Address(), 0x200)
		test.DemandSuccess(t, m.mc.WaitingForKey())
		test.DemandSuccess(t, m.mc.LastResult.Waiting)
	}

	m.keypad.KeyDown(0xc)
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x202)
	test.ExpectFailure(t, m.mc.WaitingForKey())
	test.ExpectEquality(t, m.v(3), 0xc)

	m.step(t, 1)
	test.ExpectEquality(t, m.v(0), 1)
}

// a key that is held down when the instruction is first executed must be
// released and pressed again
func TestWaitForKeyHeld(t *testing.T) {
	m := newMachine(t, 0xf30a)
	m.keypad.KeyDown(0x7)

	m.step(t, 3)
	test.ExpectSuccess(t, m.mc.WaitingForKey())

	m.keypad.KeyUp(0x7)
	m.step(t, 1)
	test.ExpectSuccess(t, m.mc.WaitingForKey())

	m.keypad.KeyDown(0x7)
	m.step(t, 1)
	test.ExpectFailure(t, m.mc.WaitingForKey())
	test.ExpectEquality(t, m.v(3), 0x7)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x202)
}

// a held key does not prevent a different key from being detected
func TestWaitForKeyOtherKey(t *testing.T) {
	m := newMachine(t, 0xf30a)
	m.keypad.KeyDown(0x1)
	m.step(t, 1)

	m.keypad.KeyDown(0xa)
	m.step(t, 1)
	test.ExpectFailure(t, m.mc.WaitingForKey())
	test.ExpectEquality(t, m.v(3), 0xa)
}

func TestWaitForKeyReset(t *testing.T) {
	m := newMachine(t, 0xf30a)
	m.step(t, 1)
	test.ExpectSuccess(t, m.mc.WaitingForKey())

	m.mc.Reset()
	test.ExpectFailure(t, m.mc.WaitingForKey())
}
