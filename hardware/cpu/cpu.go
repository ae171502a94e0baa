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

package cpu

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Sentinal error patterns.
const (
	// the pattern values are the address of the instruction, the instruction
	// and the wrapped error
	ExecutionFault = "cpu: execution fault at %#03x (%s): %v"

	StackUnderflow = "cpu: stack underflow"
	KeyFault       = "cpu: invalid key: %#02x"
)

// Flag is the index of the flag register.
const Flag = 0xf

// CPU implements the CHIP-8 execution engine.
type CPU struct {
	PC    registers.ProgramCounter
	I     registers.Index
	V     [registers.NumRegisters]registers.Register
	Stack registers.Stack

	mem    Memory
	dsp    Display
	keypad Keypad
	timers Timers
	rnd    Random

	// the wait-for-key mode and the keypad as it was at the previous check
	waiting      bool
	waitSnapshot uint16

	// sprite data is read into this buffer before it is sent to the display
	sprite [0x10]uint8

	// LastResult is the result of the most recent call to
	// ExecuteInstruction()
	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem Memory, dsp Display, keypad Keypad, timers Timers, rnd Random) *CPU {
	mc := &CPU{
		mem:    mem,
		dsp:    dsp,
		keypad: keypad,
		timers: timers,
		rnd:    rnd,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s", mc.PC, mc.I))
	for _, r := range mc.V {
		s.WriteString(fmt.Sprintf(" %s", r))
	}
	s.WriteString(fmt.Sprintf(" %s", mc.Stack))
	return s.String()
}

// Reset the CPU. The program counter is set to the program origin and every
// other register is zeroed.
func (mc *CPU) Reset() {
	mc.PC = registers.NewProgramCounter(memory.ProgramOrigin)
	mc.I = registers.NewIndex(0)
	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%X", i))
	}
	mc.Stack = registers.NewStack()
	mc.waiting = false
	mc.waitSnapshot = 0
	mc.LastResult = Result{}
}

// WaitingForKey returns true if the CPU is executing the wait-for-key
// instruction and no key has been pressed yet.
func (mc *CPU) WaitingForKey() bool {
	return mc.waiting
}

// read from memory at base plus offset. the address is checked against the
// 16-bit range so that it doesn't wrap
func (mc *CPU) read(base uint16, offset int) (uint8, error) {
	address := int(base) + offset
	if address > 0xffff {
		return 0, curated.Errorf(memory.AddressFault, address)
	}
	return mc.mem.Read(uint16(address))
}

func (mc *CPU) write(base uint16, offset int, data uint8) error {
	address := int(base) + offset
	if address > 0xffff {
		return curated.Errorf(memory.AddressFault, address)
	}
	return mc.mem.Write(uint16(address), data)
}

// setFlag sets the flag register to one or zero.
func (mc *CPU) setFlag(f bool) {
	if f {
		mc.V[Flag].Load(1)
	} else {
		mc.V[Flag].Load(0)
	}
}

// skip over the next instruction if the condition is true.
func (mc *CPU) skip(condition bool) {
	if condition {
		mc.PC.Add(2)
		mc.LastResult.Skipped = true
	}
}

// key returns the value of the register as a key index. values that are not
// valid keys are a KeyFault.
func (mc *CPU) key(x uint8) (uint8, error) {
	k := mc.V[x].Value()
	if k > 0x0f {
		return 0, curated.Errorf(KeyFault, k)
	}
	return k, nil
}

// ExecuteInstruction reads the instruction at the program counter and
// executes it.
func (mc *CPU) ExecuteInstruction() error {
	address := mc.PC.Address()

	hi, err := mc.read(address, 0)
	if err != nil {
		return curated.Errorf(ExecutionFault, address, "fetch", err)
	}
	lo, err := mc.read(address, 1)
	if err != nil {
		return curated.Errorf(ExecutionFault, address, "fetch", err)
	}

	ins := instructions.Decode(hi, lo)
	mc.LastResult = Result{
		Address:     address,
		Instruction: ins,
		Operator:    ins.Operator(),
	}

	mc.PC.Add(2)

	if err := mc.execute(ins); err != nil {
		return curated.Errorf(ExecutionFault, address, ins, err)
	}

	return nil
}

func (mc *CPU) execute(ins instructions.Instruction) error {
	vx := &mc.V[ins.X]
	vy := mc.V[ins.Y].Value()

	switch mc.LastResult.Operator {
	case instructions.Unrecognised:
		// ignored

	case instructions.ClearScreen:
		mc.dsp.Clear()

	case instructions.Return:
		a, ok := mc.Stack.Pop()
		if !ok {
			return curated.Errorf(StackUnderflow)
		}
		mc.PC.Load(a)

	case instructions.Jump:
		mc.PC.Load(ins.NNN)

	case instructions.Call:
		mc.Stack.Push(mc.PC.Address())
		mc.PC.Load(ins.NNN)

	case instructions.SkipEqualImmediate:
		mc.skip(vx.Value() == ins.NN)

	case instructions.SkipNotEqualImmediate:
		mc.skip(vx.Value() != ins.NN)

	case instructions.SkipEqualRegister:
		mc.skip(vx.Value() == vy)

	case instructions.SkipNotEqualRegister:
		mc.skip(vx.Value() != vy)

	case instructions.LoadImmediate:
		vx.Load(ins.NN)

	case instructions.AddImmediate:
		_ = vx.Add(ins.NN)

	case instructions.Copy:
		vx.Load(vy)

	case instructions.OR:
		vx.OR(vy)

	case instructions.AND:
		vx.AND(vy)

	case instructions.XOR:
		vx.XOR(vy)

	case instructions.AddRegister:
		mc.setFlag(vx.Add(vy))

	case instructions.Subtract:
		mc.setFlag(vx.Subtract(vy))

	case instructions.SubtractFrom:
		mc.setFlag(vx.SubtractFrom(vy))

	case instructions.ShiftRight:
		mc.setFlag(vx.ShiftRight())

	case instructions.ShiftLeft:
		mc.setFlag(vx.ShiftLeft())

	case instructions.LoadIndex:
		mc.I.Load(ins.NNN)

	case instructions.JumpOffset:
		mc.PC.Load(ins.NNN + uint16(mc.V[0].Value()))

	case instructions.Random:
		vx.Load(mc.rnd.Byte() & ins.NN)

	case instructions.Draw:
		return mc.draw(vx.Value(), vy, int(ins.N))

	case instructions.SkipKeyDown:
		k, err := mc.key(ins.X)
		if err != nil {
			return err
		}
		mc.skip(mc.keypad.IsDown(k))

	case instructions.SkipKeyUp:
		k, err := mc.key(ins.X)
		if err != nil {
			return err
		}
		mc.skip(!mc.keypad.IsDown(k))

	case instructions.GetDelay:
		vx.Load(mc.timers.Delay())

	case instructions.WaitForKey:
		mc.waitForKey(vx)

	case instructions.SetDelay:
		mc.timers.SetDelay(vx.Value())

	case instructions.SetSound:
		mc.timers.SetSound(vx.Value())

	case instructions.AddIndex:
		// the flag is only ever set. it is not cleared if the index is still
		// in range
		if mc.I.Add(vx.Value()) {
			mc.V[Flag].Load(1)
		}

	case instructions.Glyph:
		mc.I.Load(memory.GlyphAddress(vx.Value()))

	case instructions.BCD:
		v := vx.Value()
		for i, d := range []uint8{v / 100, (v / 10) % 10, v % 10} {
			if err := mc.write(mc.I.Address(), i, d); err != nil {
				return err
			}
		}

	case instructions.StoreRegisters:
		for i := 0; i <= int(ins.X); i++ {
			if err := mc.write(mc.I.Address(), i, mc.V[i].Value()); err != nil {
				return err
			}
		}

	case instructions.LoadRegisters:
		for i := 0; i <= int(ins.X); i++ {
			v, err := mc.read(mc.I.Address(), i)
			if err != nil {
				return err
			}
			mc.V[i].Load(v)
		}
	}

	return nil
}

func (mc *CPU) draw(x uint8, y uint8, n int) error {
	for row := range n {
		v, err := mc.read(mc.I.Address(), row)
		if err != nil {
			return err
		}
		mc.sprite[row] = v
	}

	mc.setFlag(mc.dsp.Draw(x%display.Width, y%display.Height, mc.sprite[:n]))

	return nil
}

// the first time the instruction is executed the keypad is noted and the CPU
// enters the waiting mode. on subsequent executions the keypad is compared
// with the keypad as it was on the previous execution
func (mc *CPU) waitForKey(vx *registers.Register) {
	state := mc.keypad.State()

	if mc.waiting {
		if pressed := state &^ mc.waitSnapshot; pressed != 0 {
			vx.Load(uint8(bits.TrailingZeros16(pressed)))
			mc.waiting = false
			return
		}
	}

	mc.waiting = true
	mc.waitSnapshot = state
	mc.LastResult.Waiting = true

	// stay on the instruction
	mc.PC.Load(mc.LastResult.Address)
}
