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

package disassembly

import (
	"fmt"
	"math/bits"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// the instruction definition for each operator
var definitions = map[instructions.Operator]*chip8.Instruction{
	instructions.ClearScreen:           chip8.ClsInst,
	instructions.Return:                chip8.RetInst,
	instructions.Jump:                  chip8.JpInst,
	instructions.JumpOffset:            chip8.JpInst,
	instructions.Call:                  chip8.CallInst,
	instructions.SkipEqualImmediate:    chip8.SeInst,
	instructions.SkipEqualRegister:     chip8.SeInst,
	instructions.SkipNotEqualImmediate: chip8.SneInst,
	instructions.SkipNotEqualRegister:  chip8.SneInst,
	instructions.LoadImmediate:         chip8.LdInst,
	instructions.Copy:                  chip8.LdInst,
	instructions.LoadIndex:             chip8.LdInst,
	instructions.GetDelay:              chip8.LdInst,
	instructions.WaitForKey:            chip8.LdInst,
	instructions.SetDelay:              chip8.LdInst,
	instructions.SetSound:              chip8.LdInst,
	instructions.Glyph:                 chip8.LdInst,
	instructions.BCD:                   chip8.LdInst,
	instructions.StoreRegisters:        chip8.LdInst,
	instructions.LoadRegisters:         chip8.LdInst,
	instructions.AddImmediate:          chip8.AddInst,
	instructions.AddRegister:           chip8.AddInst,
	instructions.AddIndex:              chip8.AddInst,
	instructions.OR:                    chip8.OrInst,
	instructions.AND:                   chip8.AndInst,
	instructions.XOR:                   chip8.XorInst,
	instructions.Subtract:              chip8.SubInst,
	instructions.SubtractFrom:          chip8.SubnInst,
	instructions.ShiftRight:            chip8.ShrInst,
	instructions.ShiftLeft:             chip8.ShlInst,
	instructions.Random:                chip8.RndInst,
	instructions.Draw:                  chip8.DrwInst,
	instructions.SkipKeyDown:           chip8.SkpInst,
	instructions.SkipKeyUp:             chip8.SknpInst,
}

// lookup the word in the opcode table. where more than one opcode matches the
// opcode with the most specific mask is used
func lookup(word uint16) *chip8.Instruction {
	var ins *chip8.Instruction
	specificity := -1
	for _, op := range chip8.Opcodes[int(word>>12)] {
		if op.Instruction == nil || op.Info.Mask&word != op.Info.Value {
			continue
		}
		if n := bits.OnesCount16(op.Info.Mask); n > specificity {
			specificity = n
			ins = op.Instruction
		}
	}
	return ins
}

// decode returns the mnemonic and operands of the instruction. words that
// are not instructions are formatted as a data word.
func decode(ins instructions.Instruction) (string, string) {
	op := ins.Operator()

	defn, ok := definitions[op]
	if !ok {
		// some words that are ignored by the emulation are still known to
		// the opcode table (the SYS instruction for example)
		if defn := lookup(ins.Word); defn != nil {
			return defn.Name, fmt.Sprintf("$%03X", ins.NNN)
		}
		return dataWord, fmt.Sprintf("$%04X", ins.Word)
	}

	return defn.Name, operands(op, ins)
}

// mnemonics for data
const (
	dataWord = "dw"
	dataByte = "db"
)

func operands(op instructions.Operator, ins instructions.Instruction) string {
	switch op {
	case instructions.ClearScreen, instructions.Return:
		return ""
	case instructions.Jump, instructions.Call:
		return fmt.Sprintf("$%03X", ins.NNN)
	case instructions.JumpOffset:
		return fmt.Sprintf("V0, $%03X", ins.NNN)
	case instructions.LoadIndex:
		return fmt.Sprintf("I, $%03X", ins.NNN)
	case instructions.SkipEqualImmediate, instructions.SkipNotEqualImmediate,
		instructions.LoadImmediate, instructions.AddImmediate, instructions.Random:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.NN)
	case instructions.SkipEqualRegister, instructions.SkipNotEqualRegister,
		instructions.Copy, instructions.OR, instructions.AND, instructions.XOR,
		instructions.AddRegister, instructions.Subtract, instructions.SubtractFrom:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case instructions.ShiftRight, instructions.ShiftLeft,
		instructions.SkipKeyDown, instructions.SkipKeyUp:
		return fmt.Sprintf("V%X", ins.X)
	case instructions.Draw:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)
	case instructions.GetDelay:
		return fmt.Sprintf("V%X, DT", ins.X)
	case instructions.WaitForKey:
		return fmt.Sprintf("V%X, K", ins.X)
	case instructions.SetDelay:
		return fmt.Sprintf("DT, V%X", ins.X)
	case instructions.SetSound:
		return fmt.Sprintf("ST, V%X", ins.X)
	case instructions.AddIndex:
		return fmt.Sprintf("I, V%X", ins.X)
	case instructions.Glyph:
		return fmt.Sprintf("F, V%X", ins.X)
	case instructions.BCD:
		return fmt.Sprintf("B, V%X", ins.X)
	case instructions.StoreRegisters:
		return fmt.Sprintf("[I], V%X", ins.X)
	case instructions.LoadRegisters:
		return fmt.Sprintf("V%X, [I]", ins.X)
	}
	return ""
}

// Format a single instruction word.
func Format(word uint16) string {
	mnemonic, operands := decode(instructions.Decode(uint8(word>>8), uint8(word)))
	if operands == "" {
		return mnemonic
	}
	return fmt.Sprintf("%s %s", mnemonic, operands)
}
