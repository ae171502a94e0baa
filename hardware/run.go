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

package hardware

import (
	"context"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
)

// It can be expensive to call the continueCheck() function after every
// instruction. RunUnlimited() calls it once every PerformanceBrake
// instructions.
const PerformanceBrake = 100

// the shortest period of the instruction ticker. higher frequencies are
// achieved by executing more than one instruction per tick
const minimumPeriod = time.Millisecond

// the largest number of instructions that will be executed on a single tick
// of the instruction ticker, as a fraction of a second. if the run loop falls
// further behind than this the lost instructions are dropped
const maximumCatchUp = time.Second / 10

// the period of the timers
const timerPeriod = time.Second / timers.Frequency

func continueAlways() (govern.State, error) {
	return govern.Running, nil
}

// Run the emulation at freq instructions per second until the continueCheck()
// function returns the Ending state or the context is cancelled. The timers
// are ticked at 60Hz and on every tick the display is sent to the renderer
// (if it has changed) and the continueCheck() function is called.
//
// The renderer and continueCheck arguments can be nil.
//
// Errors from the emulation, the renderer or the continueCheck() function
// end the run and are returned.
func (vm *VM) Run(ctx context.Context, freq int, renderer Renderer, continueCheck func() (govern.State, error)) error {
	if freq <= 0 {
		return curated.Errorf(InvalidFrequency, freq)
	}
	if continueCheck == nil {
		continueCheck = continueAlways
	}

	period := max(time.Second/time.Duration(freq), minimumPeriod)
	instructions := time.NewTicker(period)
	defer instructions.Stop()

	ticks := time.NewTicker(timerPeriod)
	defer ticks.Stop()

	maxBudget := max(float64(freq)*maximumCatchUp.Seconds(), 1)
	var budget float64
	last := time.Now()

	logger.Logf(logger.Allow, "vm", "running at %d instructions per second", freq)

	state := govern.Running

	for {
		select {
		case <-ctx.Done():
			return nil

		case now := <-instructions.C:
			elapsed := now.Sub(last)
			last = now

			if state == govern.Paused {
				budget = 0
				continue
			}

			budget = min(budget+elapsed.Seconds()*float64(freq), maxBudget)
			for budget >= 1 {
				budget--
				if err := vm.Step(); err != nil {
					return err
				}
			}

		case <-ticks.C:
			if state != govern.Paused {
				vm.Tick()
			}

			if err := vm.render(renderer); err != nil {
				return curated.Errorf("vm: %v", err)
			}

			var err error
			state, err = continueCheck()
			if err != nil {
				return err
			}
			if state == govern.Ending {
				return nil
			}
		}
	}
}

// RunUnlimited runs the emulation as quickly as possible until the
// continueCheck() function returns the Ending state or the context is
// cancelled. The timers are ticked at 60Hz of real time.
//
// The continueCheck() function is called once every PerformanceBrake
// instructions.
func (vm *VM) RunUnlimited(ctx context.Context, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = continueAlways
	}

	lastTick := time.Now()
	state := govern.Running

	for {
		switch state {
		case govern.Running:
			for range PerformanceBrake {
				if err := vm.Step(); err != nil {
					return err
				}
			}
		case govern.Paused:
			time.Sleep(timerPeriod)
		}

		if time.Since(lastTick) >= timerPeriod {
			lastTick = time.Now()
			if state != govern.Paused {
				vm.Tick()
			}
		}

		if ctx.Err() != nil {
			return nil
		}

		var err error
		state, err = continueCheck()
		if err != nil {
			return err
		}
		if state == govern.Ending {
			return nil
		}
	}
}
