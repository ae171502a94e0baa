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

// Package cpu is the execution engine of the CHIP-8. Instructions are read
// from memory at the program counter, decoded by the instructions package and
// applied to the registers, memory, display, keypad and timers.
//
// The CPU type is created with NewCPU(). The other components of the machine
// are given as interfaces, which means the CPU can be tested in isolation:
//
//	mc := cpu.NewCPU(mem, dsp, keypad, tmrs, rnd)
//	for {
//		if err := mc.ExecuteInstruction(); err != nil {
//			return err
//		}
//	}
//
// The program counter advances past the instruction before the instruction
// is executed. Branches load the program counter with an absolute address.
//
// Instruction words that do not belong to any instruction are ignored. The
// program counter advances past them and nothing else happens.
//
// Arithmetic instructions that set the flag register (VF) calculate the flag
// from the register values as they were before the instruction. The flag is
// written after the destination register and so when the destination is VF
// the flag value is the value that remains.
//
// The wait-for-key instruction (FX0A) puts the CPU into a waiting mode. The
// program counter stays on the instruction and each call to
// ExecuteInstruction() compares the keypad with the keypad as it was on the
// previous call. When a key is found to have been freshly pressed the key is
// stored in VX, the waiting mode ends and the program counter advances. The
// WaitingForKey() function reports whether the CPU is in the waiting mode.
//
// Errors returned by ExecuteInstruction() are fatal. They are curated errors
// with the ExecutionFault pattern, wrapping a more specific error.
package cpu
