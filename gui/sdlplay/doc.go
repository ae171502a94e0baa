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

// Package sdlplay is a simple SDL implementation of the hardware.Renderer
// interface. The display is drawn as a grid of scaled pixels in two colours.
//
// SDL requires that window events are handled on the main thread. The
// NewSdlPlay(), Service() and Destroy() functions MUST ONLY be called from the
// main thread. The Render() function can be called from any goroutine.
//
// Keyboard events are forwarded to the emulated keypad through the
// userinput package. Closing the window or pressing the Escape key is a quit
// request, which can be tested for with the Quit() function.
package sdlplay
