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

// Package prefs facilitates the setting of preference values. Preference
// values are typed (Bool and Int) and can have callback hooks that run before
// and after a value is set. A pre-hook that returns an error prevents the
// value from changing, which is how a preference value is validated.
//
// Preference values are collected in a Registry under a key name. The values
// in a registry can be set from the command line stack:
//
//	prefs.PushCommandLineStack("vm.frequency::700; vm.trace::true")
//	defer prefs.PopCommandLineStack()
//
//	reg := prefs.NewRegistry()
//	reg.Add("vm.frequency", &frequency)
//	reg.Add("vm.trace", &trace)
//	err := reg.ApplyCommandLine()
//
// Values are stored atomically and so a preference can be read from a
// different goroutine to the one that set it.
package prefs
