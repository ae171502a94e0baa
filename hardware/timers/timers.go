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

package timers

import "fmt"

// Frequency is the rate at which Tick() should be called.
const Frequency = 60

// Timers contains the delay and sound timers.
type Timers struct {
	delay uint8
	sound uint8
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{}
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("DT=%02x ST=%02x", tmr.delay, tmr.sound)
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	tmr.delay = 0
	tmr.sound = 0
}

// Delay returns the current value of the delay timer.
func (tmr *Timers) Delay() uint8 {
	return tmr.delay
}

// Sound returns the current value of the sound timer.
func (tmr *Timers) Sound() uint8 {
	return tmr.sound
}

// SetDelay sets the delay timer.
func (tmr *Timers) SetDelay(v uint8) {
	tmr.delay = v
}

// SetSound sets the sound timer.
func (tmr *Timers) SetSound(v uint8) {
	tmr.sound = v
}

// SoundActive returns true while the sound timer is counting down.
func (tmr *Timers) SoundActive() bool {
	return tmr.sound > 0
}

// Tick decreases both timers by one, unless they are already at zero.
func (tmr *Timers) Tick() {
	if tmr.delay > 0 {
		tmr.delay--
	}
	if tmr.sound > 0 {
		tmr.sound--
	}
}
