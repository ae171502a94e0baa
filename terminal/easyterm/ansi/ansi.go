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

// Package ansi defines the ANSI control sequences used to draw to the
// terminal.
package ansi

import "fmt"

// Control sequences.
const (
	ClearScreen = "\033[2J"
	CursorHome  = "\033[H"
	HideCursor  = "\033[?25l"
	ShowCursor  = "\033[?25h"
	NormalPen   = "\033[0m"
)

// CursorMove returns the sequence that moves the cursor to the row and
// column. The top-left of the terminal is row 1, column 1.
func CursorMove(row int, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}

// Pen returns the sequence for the foreground and background colours. The
// colours are indexes into the standard eight colour palette.
func Pen(fg int, bg int) string {
	return fmt.Sprintf("\033[%d;%dm", 30+fg%8, 40+bg%8)
}
