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
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestReset(t *testing.T) {
	m := newMachine(t, 0x6a10, 0xa123)
	m.step(t, 2)
	test.ExpectEquality(t, m.v(0xa), 0x10)
	test.ExpectEquality(t, m.mc.I.Address(), 0x123)

	m.mc.Reset()
	test.ExpectEquality(t, m.mc.PC.Address(), memory.ProgramOrigin)
	test.ExpectEquality(t, m.mc.I.Address(), 0)
	test.ExpectEquality(t, m.v(0xa), 0)
	test.ExpectEquality(t, m.mc.V[0xa].Label(), "VA")
}

func TestLoadImmediate(t *testing.T) {
	for x := range uint16(16) {
		for _, nn := range []uint16{0x00, 0x01, 0x7f, 0x80, 0xff} {
			m := newMachine(t, 0x6000|x<<8|nn)
			m.step(t, 1)
			test.ExpectEquality(t, m.v(int(x)), uint8(nn))
			test.ExpectEquality(t, m.mc.PC.Address(), 0x202)
		}
	}
}

func TestAddImmediate(t *testing.T) {
	m := newMachine(t, 0x6005, 0x7003, 0x6f07, 0x60ff, 0x7002)
	m.step(t, 2)
	test.ExpectEquality(t, m.v(0), 8)

	// wraps without affecting the flag
	m.step(t, 3)
	test.ExpectEquality(t, m.v(0), 1)
	test.ExpectEquality(t, m.v(0xf), 7)
}

func TestAddWithCarry(t *testing.T) {
	values := []uint8{0, 1, 2, 0x7f, 0x80, 0xfe, 0xff}
	for _, a := range values {
		for _, b := range values {
			m := newMachine(t, 0x6000|uint16(a), 0x6100|uint16(b), 0x8014)
			m.step(t, 3)
			test.ExpectEquality(t, m.v(0), a+b)
			if int(a)+int(b) > 255 {
				test.ExpectEquality(t, m.v(0xf), 1)
			} else {
				test.ExpectEquality(t, m.v(0xf), 0)
			}
		}
	}
}

func TestSubtract(t *testing.T) {
	values := []uint8{0, 1, 2, 0x7f, 0x80, 0xfe, 0xff}
	for _, a := range values {
		for _, b := range values {
			// 8XY5
			m := newMachine(t, 0x6000|uint16(a), 0x6100|uint16(b), 0x8015)
			m.step(t, 3)
			test.ExpectEquality(t, m.v(0), a-b)
			if a >= b {
				test.ExpectEquality(t, m.v(0xf), 1)
			} else {
				test.ExpectEquality(t, m.v(0xf), 0)
			}

			// 8XY7
			m = newMachine(t, 0x6000|uint16(a), 0x6100|uint16(b), 0x8017)
			m.step(t, 3)
			test.ExpectEquality(t, m.v(0), b-a)
			if b >= a {
				test.ExpectEquality(t, m.v(0xf), 1)
			} else {
				test.ExpectEquality(t, m.v(0xf), 0)
			}
		}
	}
}

func TestLogical(t *testing.T) {
	m := newMachine(t, 0x60f0, 0x613c, 0x8011, 0x62f0, 0x8212, 0x63f0, 0x8313, 0x6400, 0x8410)
	m.step(t, 9)
	test.ExpectEquality(t, m.v(0), 0xfc)
	test.ExpectEquality(t, m.v(2), 0x30)
	test.ExpectEquality(t, m.v(3), 0xcc)
	test.ExpectEquality(t, m.v(4), 0x3c)
}

func TestShifts(t *testing.T) {
	// shift right. VY is ignored
	m := newMachine(t, 0x6005, 0x61ff, 0x8016)
	m.step(t, 3)
	test.ExpectEquality(t, m.v(0), 0x02)
	test.ExpectEquality(t, m.v(1), 0xff)
	test.ExpectEquality(t, m.v(0xf), 1)

	m = newMachine(t, 0x6004, 0x8016)
	m.step(t, 2)
	test.ExpectEquality(t, m.v(0), 0x02)
	test.ExpectEquality(t, m.v(0xf), 0)

	// shift left. VY is ignored
	m = newMachine(t, 0x6081, 0x6100, 0x801e)
	m.step(t, 3)
	test.ExpectEquality(t, m.v(0), 0x02)
	test.ExpectEquality(t, m.v(0xf), 1)

	m = newMachine(t, 0x6041, 0x801e)
	m.step(t, 2)
	test.ExpectEquality(t, m.v(0), 0x82)
	test.ExpectEquality(t, m.v(0xf), 0)
}

// when the destination register is the flag register, the flag value is the
// value that remains
func TestFlagDestination(t *testing.T) {
	// 0xff + 0x02 = 0x01 with carry
	m := newMachine(t, 0x6fff, 0x6102, 0x8f14)
	m.step(t, 3)
	test.ExpectEquality(t, m.v(0xf), 1)

	// 0x10 - 0x01 with no borrow
	m = newMachine(t, 0x6f10, 0x6101, 0x8f15)
	m.step(t, 3)
	test.ExpectEquality(t, m.v(0xf), 1)

	// 0x01 - 0x10 with borrow
	m = newMachine(t, 0x6f01, 0x6110, 0x8f15)
	m.step(t, 3)
	test.ExpectEquality(t, m.v(0xf), 0)

	// shifting 0x02 right produces a flag of zero
	m = newMachine(t, 0x6f02, 0x8f06)
	m.step(t, 2)
	test.ExpectEquality(t, m.v(0xf), 0)

	// the flag register as the source operand is read before it changes
	m = newMachine(t, 0x6005, 0x6f03, 0x80f5)
	m.step(t, 3)
	test.ExpectEquality(t, m.v(0), 2)
	test.ExpectEquality(t, m.v(0xf), 1)
}

func TestSkips(t *testing.T) {
	cases := []struct {
		program []uint16
		skipped bool
	}{
		{[]uint16{0x6a10, 0x3a10}, true},
		{[]uint16{0x6a10, 0x3a11}, false},
		{[]uint16{0x6a10, 0x4a11}, true},
		{[]uint16{0x6a10, 0x4a10}, false},
		{[]uint16{0x6a10, 0x6b10, 0x5ab0}, true},
		{[]uint16{0x6a10, 0x6b11, 0x5ab0}, false},
		{[]uint16{0x6a10, 0x6b11, 0x9ab0}, true},
		{[]uint16{0x6a10, 0x6b10, 0x9ab0}, false},
	}

	for _, c := range cases {
		m := newMachine(t, c.program...)
		m.step(t, len(c.program))

		expected := uint16(memory.ProgramOrigin + len(c.program)*2)
		if c.skipped {
			expected += 2
		}
		test.ExpectEquality(t, m.mc.PC.Address(), expected, c.program)
		test.ExpectEquality(t, m.mc.LastResult.Skipped, c.skipped, c.program)
	}
}

func TestJumps(t *testing.T) {
	m := newMachine(t, 0x1208)
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x208)

	// jump with offset
	m = newMachine(t, 0x6010, 0xb300)
	m.step(t, 2)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x310)

	// jump targets are aligned to an even address
	m = newMachine(t, 0x1209)
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x208)

	m = newMachine(t, 0x6001, 0xb300)
	m.step(t, 2)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x300)

	m = newMachine(t, 0x2305)
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x304)
}

// a program that jumps to itself loops forever without faulting
func TestInfiniteLoop(t *testing.T) {
	m := newMachine(t, 0x1200)
	for range 1000 {
		test.DemandSuccess(t, m.mc.ExecuteInstruction())
		test.DemandEquality(t, m.mc.PC.Address(), memory.ProgramOrigin)
	}
}

func TestCallReturn(t *testing.T) {
	// 200: call 206
	// 202: V0 = 1
	// 204: jump 204
	// 206: call 20c
	// 208: return
	// 20a: (unused)
	// 20c: return
	m := newMachine(t, 0x2206, 0x6001, 0x1204, 0x220c, 0x00ee, 0x0000, 0x00ee)

	m.step(t, 1)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x206)
	test.ExpectEquality(t, m.mc.Stack.Len(), 1)

	m.step(t, 1)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x20c)
	test.ExpectEquality(t, m.mc.Stack.Len(), 2)

	// two returns bring the PC back to the instruction after the first call
	m.step(t, 2)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x202)
	test.ExpectEquality(t, m.mc.Stack.Len(), 0)

	m.step(t, 1)
	test.ExpectEquality(t, m.v(0), 1)
}

// nestedCalls runs a chain of calls followed by a chain of returns. each
// subroutine calls the next until the last which returns
func nestedCalls(t *testing.T, depth int) {
	t.Helper()

	program := make([]uint16, 0, depth*2+1)
	for i := range depth {
		// call the next pair of instructions. the instruction following the
		// call is a return
		next := uint16(memory.ProgramOrigin + (i+1)*4)
		program = append(program, 0x2000|next, 0x00ee)
	}
	program = append(program, 0x00ee)

	// replace the first return with a halt so that the final PC can be
	// checked
	program[1] = 0x1202

	m := newMachine(t, program...)
	m.step(t, depth)
	test.ExpectEquality(t, m.mc.Stack.Len(), depth)

	m.step(t, depth)
	test.ExpectEquality(t, m.mc.Stack.Len(), 0)
	test.ExpectEquality(t, m.mc.PC.Address(), memory.ProgramOrigin+2)
}

func TestNestedCalls(t *testing.T) {
	nestedCalls(t, 1)
	nestedCalls(t, 8)
}

func TestDeepNestedCalls(t *testing.T) {
	nestedCalls(t, 17)
	nestedCalls(t, 64)
}

func TestStackUnderflow(t *testing.T) {
	m := newMachine(t, 0x00ee)
	err := m.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.ExecutionFault))
	test.ExpectSuccess(t, curated.Has(err, cpu.StackUnderflow))
	test.ExpectEquality(t, err.Error(), "cpu: execution fault at 0x200 (00ee): cpu: stack underflow")
}

func TestRecursion(t *testing.T) {
	// calls itself many times without returning
	m := newMachine(t, 0x2200)
	m.step(t, 1000)
	test.ExpectEquality(t, m.mc.Stack.Len(), 1000)
	test.ExpectEquality(t, m.mc.PC.Address(), memory.ProgramOrigin)
}

func TestUnrecognised(t *testing.T) {
	for _, w := range []uint16{0x0000, 0x0123, 0x5121, 0x8128, 0x9121, 0xe100, 0xf1ff} {
		m := newMachine(t, 0x6a42, w)
		m.step(t, 2)
		test.ExpectEquality(t, m.mc.PC.Address(), 0x204)
		test.ExpectEquality(t, m.mc.LastResult.Operator, instructions.Unrecognised)
		test.ExpectEquality(t, m.v(0xa), 0x42)
		test.ExpectEquality(t, m.v(0xf), 0)
	}
}

func TestIndex(t *testing.T) {
	m := newMachine(t, 0xa123)
	m.step(t, 1)
	test.ExpectEquality(t, m.mc.I.Address(), 0x123)

	// add to index within range leaves the flag untouched
	m = newMachine(t, 0x6f05, 0xaff0, 0x6a0f, 0xfa1e)
	m.step(t, 4)
	test.ExpectEquality(t, m.mc.I.Address(), 0xfff)
	test.ExpectEquality(t, m.v(0xf), 5)

	// beyond 0xfff sets the flag
	m = newMachine(t, 0x6f00, 0xaff0, 0x6a10, 0xfa1e)
	m.step(t, 4)
	test.ExpectEquality(t, m.mc.I.Address(), 0x1000)
	test.ExpectEquality(t, m.v(0xf), 1)
}

func TestGlyph(t *testing.T) {
	m := newMachine(t, 0x6a0b, 0xfa29, 0x6a1c, 0xfa29)
	m.step(t, 2)
	test.ExpectEquality(t, m.mc.I.Address(), memory.GlyphAddress(0xb))

	// only the low nibble is used
	m.step(t, 2)
	test.ExpectEquality(t, m.mc.I.Address(), memory.GlyphAddress(0xc))
}

func TestBCD(t *testing.T) {
	m := newMachine(t, 0xa300, 0x609c, 0xf033)
	m.step(t, 3)
	test.ExpectEquality(t, m.read(t, 0x300), 1)
	test.ExpectEquality(t, m.read(t, 0x301), 5)
	test.ExpectEquality(t, m.read(t, 0x302), 6)
	test.ExpectEquality(t, m.mc.I.Address(), 0x300)

	m = newMachine(t, 0xa300, 0x6009, 0xf033)
	m.step(t, 3)
	test.ExpectEquality(t, m.read(t, 0x300), 0)
	test.ExpectEquality(t, m.read(t, 0x301), 0)
	test.ExpectEquality(t, m.read(t, 0x302), 9)

	m = newMachine(t, 0xa300, 0x60ff, 0xf033)
	m.step(t, 3)
	test.ExpectEquality(t, m.read(t, 0x300), 2)
	test.ExpectEquality(t, m.read(t, 0x301), 5)
	test.ExpectEquality(t, m.read(t, 0x302), 5)
}

func TestStoreLoad(t *testing.T) {
	program := make([]uint16, 0, 24)
	for x := range uint16(16) {
		program = append(program, 0x6000|x<<8|(x*17))
	}
	program = append(program,
		0xa400, // I = 400
		0xfe55, // store V0 to VE
	)
	for x := range uint16(16) {
		program = append(program, 0x6000|x<<8)
	}
	program = append(program,
		0xfe65, // load V0 to VE
	)

	m := newMachine(t, program...)
	m.step(t, len(program))

	for x := range 15 {
		test.ExpectEquality(t, m.v(x), uint8(x*17))
		test.ExpectEquality(t, m.read(t, 0x400+uint16(x)), uint8(x*17))
	}

	// VF was not included in the store and so it was not reloaded
	test.ExpectEquality(t, m.v(0xf), 0)
	test.ExpectEquality(t, m.read(t, 0x40f), 0)

	// the index register is unchanged
	test.ExpectEquality(t, m.mc.I.Address(), 0x400)
}

func TestMemoryFaults(t *testing.T) {
	// store beyond the end of memory
	m := newMachine(t, 0xaffe, 0xf255)
	m.step(t, 1)
	err := m.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.ExecutionFault))
	test.ExpectSuccess(t, curated.Has(err, memory.AddressFault))

	// BCD beyond the end of memory
	m = newMachine(t, 0xafff, 0xf033)
	m.step(t, 1)
	err = m.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, memory.AddressFault))

	// sprite data beyond the end of memory
	m = newMachine(t, 0xaffc, 0xd005)
	m.step(t, 1)
	err = m.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, memory.AddressFault))

	// fetching from beyond the end of memory. the instruction at 0xffe is
	// executed and the fetch after it faults
	m = newMachine(t, 0x1ffe)
	m.step(t, 2)
	test.ExpectEquality(t, m.mc.PC.Address(), 0x1000)
	err = m.mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, memory.AddressFault))

	// the stdlib errors package can see the wrapped error
	test.ExpectSuccess(t, errors.Unwrap(err) != nil)
}

func TestRandom(t *testing.T) {
	m := newMachine(t, 0xc00f, 0xc100)
	m.step(t, 2)
	test.ExpectEquality(t, m.v(0)&0xf0, 0)
	test.ExpectEquality(t, m.v(1), 0)
}

func TestTimers(t *testing.T) {
	m := newMachine(t, 0x6a3c, 0xfa15, 0xfa18, 0xfb07)
	m.step(t, 4)
	test.ExpectEquality(t, m.timers.Delay(), 0x3c)
	test.ExpectEquality(t, m.timers.Sound(), 0x3c)
	test.ExpectEquality(t, m.v(0xb), 0x3c)

	m.timers.Tick()
	m.mc.PC.Load(0x206)
	m.step(t, 1)
	test.ExpectEquality(t, m.v(0xb), 0x3b)
}

func TestString(t *testing.T) {
	m := newMachine(t)
	test.ExpectEquality(t, m.mc.String(), "PC=200 I=000 V0=00 V1=00 V2=00 V3=00 V4=00 V5=00 V6=00 V7=00 V8=00 V9=00 VA=00 VB=00 VC=00 VD=00 VE=00 VF=00 SP=0 []")
}
