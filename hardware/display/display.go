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

package display

import (
	"strings"
)

// Dimensions of the display in pixels.
const (
	Width  = 64
	Height = 32
)

// SpriteWidth is the width of every sprite in pixels. Each row of a sprite is
// one byte, the most significant bit being the left most pixel.
const SpriteWidth = 8

// Frame is the state of every pixel on the display. Indexed by row and then
// column.
type Frame [Height][Width]bool

// Pixel returns the state of the pixel at x, y. Coordinates outside the frame
// are always off.
func (f *Frame) Pixel(x int, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return f[y][x]
}

// String returns the frame as text. One line per row with on pixels drawn as
// a hash and off pixels drawn as a period.
func (f *Frame) String() string {
	s := strings.Builder{}
	s.Grow((Width + 1) * Height)
	for y := range Height {
		for x := range Width {
			if f[y][x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// Display is the framebuffer of the CHIP-8.
type Display struct {
	frame Frame

	// the frame has changed since the last call to Sync()
	dirty bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{dirty: true}
}

func (dsp *Display) String() string {
	return dsp.frame.String()
}

// Clear turns every pixel off.
func (dsp *Display) Clear() {
	dsp.frame = Frame{}
	dsp.dirty = true
}

// Pixel returns the state of the pixel at x, y. Coordinates outside the
// display are always off.
func (dsp *Display) Pixel(x int, y int) bool {
	return dsp.frame.Pixel(x, y)
}

// Draw the sprite with the top-left corner at x, y. The coordinates wrap
// but the sprite itself is clipped at the edges of the display. Returns true
// if any pixel that was on has been turned off.
func (dsp *Display) Draw(x uint8, y uint8, sprite []uint8) (collision bool) {
	ox := int(x) % Width
	oy := int(y) % Height

	for row, data := range sprite {
		py := oy + row
		if py >= Height {
			break
		}

		for col := range SpriteWidth {
			if data&(0x80>>col) == 0 {
				continue
			}

			px := ox + col
			if px >= Width {
				break
			}

			if dsp.frame[py][px] {
				collision = true
			}
			dsp.frame[py][px] = !dsp.frame[py][px]
		}
	}

	if len(sprite) > 0 {
		dsp.dirty = true
	}

	return collision
}

// Sync returns a copy of the frame and whether the frame has changed since
// the previous call to Sync().
func (dsp *Display) Sync() (Frame, bool) {
	dirty := dsp.dirty
	dsp.dirty = false
	return dsp.frame, dirty
}
