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

// Package userinput handles input from the real hardware that the user of the
// emulator is using to control the emulated CHIP-8.
//
// It is a translation layer between the GUI implementation and the keypad of
// the emulated hardware. GUI implementations convert their native events to
// the Event types of this package and forward them with the HandleEvent()
// function.
//
// Keys on the host keyboard are mapped to the CHIP-8 keypad in the
// conventional manner:
//
//	1 2 3 4        1 2 3 C
//	Q W E R        4 5 6 D
//	A S D F   ->   7 8 9 E
//	Z X C V        A 0 B F
//
// Key names are not case sensitive. The Escape key is a quit event.
package userinput
