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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/terminal/easyterm"
	"github.com/jetsetilly/gopher8/terminal/termplay"
	"github.com/jetsetilly/gopher8/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the TERM mode restores the terminal
	// before quitting.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this
// is required because SDL requires window event handling (including
// creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// a nil *SdlPlay in the interface is not a nil interface
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "TERM", "DISASM", "PERFORMANCE")
	md.AdditionalHelp(version.Banner())
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *showVersion {
		fmt.Println(version.Banner())
		sync.state <- stateRequest{req: reqQuit}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md, sync)

	case "TERM":
		err = term(md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to every mode that runs the emulation.
type vmFlags struct {
	freq  *int
	prefs *string
	log   *bool
}

func addVMFlags(md *modalflag.Modes) vmFlags {
	return vmFlags{
		freq:  md.AddInt("freq", 0, fmt.Sprintf("instructions per second (default %d)", hardware.DefaultFrequency)),
		prefs: md.AddString("prefs", "", "preferences to apply (key::value; key::value)"),
		log:   md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// newVM creates a VM with the preferences given on the command line and
// attaches the program named by the first remaining argument.
func newVM(md *modalflag.Modes, fl vmFlags) (*hardware.VM, error) {
	if *fl.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, curated.Errorf("program file required for %s mode", md)
	case 1:
	default:
		return nil, curated.Errorf("too many arguments for %s mode", md)
	}

	prefs.PushCommandLineStack(*fl.prefs)
	p, err := hardware.NewPreferences()
	unused := prefs.PopCommandLineStack()
	if err != nil {
		return nil, err
	}
	if unused != "" {
		return nil, curated.Errorf("unknown preferences: %s", unused)
	}

	if *fl.freq != 0 {
		if err := p.Frequency.Set(*fl.freq); err != nil {
			return nil, err
		}
	}

	vm, err := hardware.NewVM(p)
	if err != nil {
		return nil, err
	}

	ld := romloader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return nil, err
	}
	if err := vm.AttachROM(ld.Data); err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "gopher8", "%s (%s)", ld.ShortName(), ld.Hash)

	return vm, nil
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	fl := addVMFlags(md)
	scale := md.AddInt("scale", sdlplay.DefaultScale, "size of each pixel in the window")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vm, err := newVM(md, fl)
	if err != nil {
		return err
	}

	sync.creator <- func() (GuiCreator, error) {
		return sdlplay.NewSdlPlay(vm.Keypad, *scale)
	}

	var scr *sdlplay.SdlPlay
	select {
	case g := <-sync.creation:
		scr = g.(*sdlplay.SdlPlay)
	case err := <-sync.creationError:
		return err
	}

	return vm.Run(context.Background(), vm.Prefs.Frequency.Get().(int), scr, func() (govern.State, error) {
		if scr.Quit() {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
}

func term(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	fl := addVMFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	vm, err := newVM(md, fl)
	if err != nil {
		return err
	}

	t := &easyterm.Terminal{}
	if err := t.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer t.CleanUp()

	// the terminal must be restored before the program ends so the default
	// interrupt handler is replaced by the context
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return termplay.Play(ctx, t, vm, vm.Prefs.Frequency.Get().(int))
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()
	unreached := md.AddBool("unreached", true, "include words not reached by the flow of the program")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("program file required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	ld := romloader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return err
	}

	if len(ld.Data) > memory.MaxProgramSize {
		return curated.Errorf(memory.ProgramTooLarge, len(ld.Data), memory.MaxProgramSize)
	}

	entries := disassembly.Disassemble(ld.Data, memory.ProgramOrigin)
	if !*unreached {
		var blessed []disassembly.Entry
		for _, e := range entries {
			if e.Level == disassembly.Blessed {
				blessed = append(blessed, e)
			}
		}
		entries = blessed
	}

	return disassembly.Write(md.Output, entries)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	fl := addVMFlags(md)
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")
	memviz := md.AddString("memviz", "", "write graph of emulation structures to file (dot format)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	dump := md.AddBool("dump", false, "print the memory holding the program once the run has finished")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return curated.Errorf("statsview not available in this build")
		}
		statsview.Launch(md.Output)
	}

	vm, err := newVM(md, fl)
	if err != nil {
		return err
	}

	err = performance.Check(md.Output, prf, vm, *duration, strings.TrimSpace(*memviz))

	// the dump is printed even if the run ended with a fault
	if *dump {
		if derr := performance.Dump(md.Output, vm); err == nil {
			err = derr
		}
	}

	return err
}
