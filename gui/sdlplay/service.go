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
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

func keyMod() userinput.KeyMod {
	mod := sdl.GetModState()
	if mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT {
		return userinput.KeyModAlt
	}
	if mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		return userinput.KeyModShift
	}
	if mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}

// convert SDL event to a userinput event. returns nil if the event is of no
// interest
func convert(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_FOCUS_LOST {
			return userinput.EventFocusLost{}
		}

	case *sdl.KeyboardEvent:
		return userinput.EventKeyboard{
			Key:    sdl.GetKeyName(ev.Keysym.Sym),
			Down:   ev.Type == sdl.KEYDOWN,
			Mod:    keyMod(),
			Repeat: ev.Repeat != 0,
		}
	}
	return nil
}

// Service implements the GuiCreator interface. Pending SDL events are
// handled and the most recent frame is drawn.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	// wait for a short time for the first event. this stops the main thread
	// from spinning
	ev := sdl.WaitEventTimeout(1)
	for ev != nil {
		if uev := convert(ev); uev != nil {
			quit, err := userinput.HandleEvent(scr.keypad, uev)
			if err != nil {
				logger.Log(logger.Allow, "sdlplay", err)
			}
			if quit {
				scr.quit.Store(true)
			}
		}
		ev = sdl.PollEvent()
	}

	select {
	case frame := <-scr.frames:
		if err := scr.draw(frame); err != nil {
			logger.Log(logger.Allow, "sdlplay", err)
		}
	default:
	}
}
