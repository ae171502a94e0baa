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

package sdlplay

import (
	"io"
	"sync/atomic"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// DefaultScale is the size of each pixel in the window.
const DefaultScale = 10

// colours of pixels that are on and off
var (
	pen   = sdl.Color{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	paper = sdl.Color{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
)

// SdlPlay is a simple SDL implementation of the hardware.Renderer interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32

	// keyboard events are forwarded to the keypad
	keypad userinput.HandleInput

	// the most recent frame from the emulation. older frames are discarded
	// if the main thread has not yet drawn them
	frames chan display.Frame

	// pixel rectangles reused every frame
	rects []sdl.Rect

	quit atomic.Bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(keypad userinput.HandleInput, scale int) (*SdlPlay, error) {
	if scale <= 0 {
		scale = DefaultScale
	}

	scr := &SdlPlay{
		keypad: keypad,
		scale:  int32(scale),
		frames: make(chan display.Frame, 1),
		rects:  make([]sdl.Rect, 0, display.Width*display.Height),
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow("Gopher8",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		display.Width*scr.scale, display.Height*scr.scale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	logger.Logf(logger.Allow, "sdlplay", "window created (scale %d)", scale)

	return scr, nil
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy(output io.Writer) {
	if err := scr.renderer.Destroy(); err != nil {
		output.Write([]byte(err.Error()))
	}
	if err := scr.window.Destroy(); err != nil {
		output.Write([]byte(err.Error()))
	}
	sdl.Quit()
}

// Quit returns true if the user has asked for the emulation to end.
func (scr *SdlPlay) Quit() bool {
	return scr.quit.Load()
}

// Render implements the hardware.Renderer interface.
func (scr *SdlPlay) Render(frame display.Frame) error {
	// discard the frame waiting to be drawn
	select {
	case <-scr.frames:
	default:
	}

	select {
	case scr.frames <- frame:
	default:
	}

	return nil
}

// draw the frame to the window.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) draw(frame display.Frame) error {
	if err := scr.renderer.SetDrawColor(paper.R, paper.G, paper.B, paper.A); err != nil {
		return err
	}
	if err := scr.renderer.Clear(); err != nil {
		return err
	}

	scr.rects = scr.rects[:0]
	for y := range display.Height {
		for x := range display.Width {
			if frame.Pixel(x, y) {
				scr.rects = append(scr.rects, sdl.Rect{
					X: int32(x) * scr.scale,
					Y: int32(y) * scr.scale,
					W: scr.scale,
					H: scr.scale,
				})
			}
		}
	}

	if len(scr.rects) > 0 {
		if err := scr.renderer.SetDrawColor(pen.R, pen.G, pen.B, pen.A); err != nil {
			return err
		}
		if err := scr.renderer.FillRects(scr.rects); err != nil {
			return err
		}
	}

	scr.renderer.Present()

	return nil
}
