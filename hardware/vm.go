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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
)

// Renderer implementations receive the state of the display.
type Renderer interface {
	Render(display.Frame) error
}

// VM is the root of the emulated hardware.
type VM struct {
	Prefs *Preferences

	Mem     *memory.Memory
	CPU     *cpu.CPU
	Display *display.Display
	Keypad  *input.Keypad
	Timers  *timers.Timers
	Random  *random.Random

	// the number of instructions executed since the last reset
	instructionCount int
}

// NewVM is the preferred method of initialisation for the VM type. If the
// prefs argument is nil then a new Preferences instance is created.
func NewVM(prefs *Preferences) (*VM, error) {
	if prefs == nil {
		var err error
		prefs, err = NewPreferences()
		if err != nil {
			return nil, curated.Errorf("vm: %v", err)
		}
	}

	vm := &VM{
		Prefs:   prefs,
		Mem:     memory.NewMemory(),
		Display: display.NewDisplay(),
		Keypad:  input.NewKeypad(),
		Timers:  timers.NewTimers(),
		Random:  random.NewRandom(),
	}
	vm.CPU = cpu.NewCPU(vm.Mem, vm.Display, vm.Keypad, vm.Timers, vm.Random)

	return vm, nil
}

func (vm *VM) String() string {
	return fmt.Sprintf("%s %s", vm.CPU, vm.Timers)
}

// AttachROM loads the program data into memory and resets the VM. Programs
// that are too large for memory are rejected and the VM is unchanged.
func (vm *VM) AttachROM(data []uint8) error {
	err := vm.Mem.LoadProgram(data)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "vm", "attached program (%d bytes)", len(data))
	vm.Reset()
	return nil
}

// Reset the VM. Every component is returned to its initial state and the
// attached program is copied into memory again. The keypad is not reset
// because it reflects the state of the host.
func (vm *VM) Reset() {
	vm.Mem.Reset()
	vm.CPU.Reset()
	vm.Display.Clear()
	vm.Timers.Reset()
	vm.Random.Reset()
	vm.instructionCount = 0
	logger.Log(logger.Allow, "vm", "reset")
}

// Step executes a single instruction.
func (vm *VM) Step() error {
	err := vm.CPU.ExecuteInstruction()
	if err != nil {
		logger.Log(logger.Allow, "vm", err)
		return err
	}

	vm.instructionCount++

	if vm.Prefs.Trace.Get().(bool) {
		r := vm.CPU.LastResult
		logger.Logf(logger.Allow, "trace", "%03x %s %s", r.Address, r.Instruction,
			disassembly.Format(r.Instruction.Word))
	}

	return nil
}

// Tick advances the timers by one tick.
func (vm *VM) Tick() {
	vm.Timers.Tick()
}

// InstructionCount returns the number of instructions executed since the
// last reset.
func (vm *VM) InstructionCount() int {
	return vm.instructionCount
}

// render sends the state of the display to the renderer if it has changed.
func (vm *VM) render(renderer Renderer) error {
	if renderer == nil {
		return nil
	}
	frame, dirty := vm.Display.Sync()
	if !dirty {
		return nil
	}
	return renderer.Render(frame)
}
