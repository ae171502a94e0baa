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

package termplay

import (
	"io"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/terminal/easyterm/ansi"
)

// characters for each combination of upper and lower pixel
const (
	blockNone  = ' '
	blockUpper = '▀'
	blockLower = '▄'
	blockFull  = '█'
)

// Renderer draws the display to an io.Writer. It implements the
// hardware.Renderer interface.
type Renderer struct {
	output io.Writer
	s      strings.Builder
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type.
func NewRenderer(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// Render implements the hardware.Renderer interface.
func (r *Renderer) Render(frame display.Frame) error {
	r.s.Reset()
	r.s.WriteString(ansi.CursorHome)

	for y := 0; y < display.Height; y += 2 {
		for x := range display.Width {
			upper := frame.Pixel(x, y)
			lower := frame.Pixel(x, y+1)
			switch {
			case upper && lower:
				r.s.WriteRune(blockFull)
			case upper:
				r.s.WriteRune(blockUpper)
			case lower:
				r.s.WriteRune(blockLower)
			default:
				r.s.WriteRune(blockNone)
			}
		}
		r.s.WriteString("\r\n")
	}

	if _, err := io.WriteString(r.output, r.s.String()); err != nil {
		return curated.Errorf("termplay: %v", err)
	}
	return nil
}
