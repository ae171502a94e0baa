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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows different flags for each mode.
//
// Arguments are given once with NewArgs(). Parse() is then called for each
// layer of modes:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "TERM", "DISASM")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		freq := md.AddInt("freq", 500, "instructions per second")
//		p, err := md.Parse()
//		...
//	}
//
// The first sub-mode added is the default. If the first argument is not a
// sub-mode, or if the flags are not recognised at the current layer, the
// default sub-mode is selected and the arguments are left for the next call
// to Parse(). This means that flags for the default mode can be given without
// naming the mode.
//
// Sub-mode comparisons are case insensitive. Modes are reported in upper
// case.
//
// Help is printed to the Output writer when the -help flag is given. The help
// includes the flags for the current layer and the list of sub-modes.
package modalflag
