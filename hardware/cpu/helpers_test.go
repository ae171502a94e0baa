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

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

// machine collects the components used by the CPU in tests.
type machine struct {
	mc     *cpu.CPU
	mem    *memory.Memory
	dsp    *display.Display
	keypad *input.Keypad
	timers *timers.Timers
	rnd    *random.Random
}

// newMachine creates a CPU with the instruction words loaded at the program
// origin.
func newMachine(t *testing.T, program ...uint16) *machine {
	t.Helper()

	m := &machine{
		mem:    memory.NewMemory(),
		dsp:    display.NewDisplay(),
		keypad: input.NewKeypad(),
		timers: timers.NewTimers(),
		rnd:    random.NewRandom(),
	}
	m.rnd.ZeroSeed = true
	m.rnd.Reset()

	data := make([]uint8, 0, len(program)*2)
	for _, w := range program {
		data = append(data, uint8(w>>8), uint8(w))
	}
	test.DemandSuccess(t, m.mem.LoadProgram(data))

	m.mc = cpu.NewCPU(m.mem, m.dsp, m.keypad, m.timers, m.rnd)

	return m
}

// step executes n instructions. any error is a test fatality.
func (m *machine) step(t *testing.T, n int) {
	t.Helper()
	for range n {
		test.DemandSuccess(t, m.mc.ExecuteInstruction())
	}
}

func (m *machine) v(x int) uint8 {
	return m.mc.V[x].Value()
}

func (m *machine) read(t *testing.T, address uint16) uint8 {
	t.Helper()
	v, err := m.mem.Read(address)
	test.DemandSuccess(t, err)
	return v
}
