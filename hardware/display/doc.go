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

// Package display implements the 64x32 monochrome framebuffer of the CHIP-8.
//
// The framebuffer is changed only by Clear() and Draw(). Draw() combines a
// sprite with the framebuffer using exclusive-or and reports whether any
// pixel was turned off as a result. Sprites are clipped at the right and
// bottom edges of the screen. They do not wrap.
//
// The display has no knowledge of how it will be presented. A host collects
// a copy of the framebuffer with Sync(), normally once per video frame.
package display
