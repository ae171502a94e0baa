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

// Package termplay runs the emulation in a terminal. The display is drawn
// with ANSI control sequences and Unicode half-block characters, two rows of
// pixels to each line of text.
//
// Terminals do not report when a key has been released so keys are released
// automatically once they have been held for a short period. Holding a key
// down will normally cause the terminal to repeat the key, which keeps the
// key held.
package termplay
