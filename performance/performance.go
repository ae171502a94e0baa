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

package performance

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// Result of a performance measurement.
type Result struct {
	Instructions int
	Duration     time.Duration

	// the frequency the program would normally run at
	Target int
}

func (r Result) String() string {
	rate, accuracy := CalcRate(r.Instructions, r.Duration.Seconds(), r.Target)
	return fmt.Sprintf("%.0f instructions per second (%d instructions in %.2f seconds) %.1f%% of %dHz",
		rate, r.Instructions, r.Duration.Seconds(), accuracy, r.Target)
}

// Measure runs the VM as quickly as possible for the duration.
func Measure(ctx context.Context, vm *hardware.VM, duration time.Duration) (Result, error) {
	start := vm.InstructionCount()
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	err := vm.RunUnlimited(ctx, func() (govern.State, error) {
		return govern.Running, nil
	})

	r := Result{
		Instructions: vm.InstructionCount() - start,
		Duration:     time.Since(startTime),
		Target:       vm.Prefs.Frequency.Get().(int),
	}

	return r, err
}

// Check the performance of the emulator by running the VM for the duration.
// The VM must already have a program attached.
//
// The optional memvizFile argument names a file to which a graph of the VM is
// written once the measurement has finished.
func Check(output io.Writer, profile Profile, vm *hardware.VM, duration string, memvizFile string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var r Result
	err = RunProfiler(profile, "performance", func() error {
		var err error
		r, err = Measure(context.Background(), vm, dur)
		return err
	})
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	logger.Logf(logger.Allow, "performance", "%d instructions", r.Instructions)
	fmt.Fprintln(output, r.String())

	// fingerprint of the display at the end of the run
	dig := digest.NewVideo()
	frame, _ := vm.Display.Sync()
	if err := dig.Render(frame); err != nil {
		return curated.Errorf("performance: %v", err)
	}
	fmt.Fprintf(output, "screen digest: %s\n", dig.Hash())

	if memvizFile != "" {
		f, err := os.Create(memvizFile)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()
		Memviz(f, vm)
	}

	return nil
}

// Memviz writes a graph of the VM's CPU and memory in the Graphviz dot
// format.
func Memviz(output io.Writer, vm *hardware.VM) {
	memviz.Map(output, vm.CPU, vm.Timers)
}

// Dump writes a hex listing of the memory occupied by the program.
func Dump(output io.Writer, vm *hardware.VM) error {
	n := len(vm.Mem.Program())
	if n == 0 {
		return nil
	}

	s, err := vm.Mem.Dump(memory.ProgramOrigin, uint16(memory.ProgramOrigin+n-1))
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	_, err = io.WriteString(output, s)
	return err
}
