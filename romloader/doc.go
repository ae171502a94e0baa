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

// Package romloader is used to specify the program that is to be attached to
// the emulated CHIP-8.
//
// The Load() function reads the program data from a local file or, if the
// filename is a URL, over HTTP:
//
//	ld := romloader.NewLoader("roms/PONG.ch8")
//	err := ld.Load()
//
// The SHA1 hash of the data is recorded in the Hash field. If the Hash field
// is set before the call to Load() then the loaded data must match it.
package romloader
