// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/sqweek/dialog"

	"github.com/jetsetilly/gopher8080/audio/mixer"
	"github.com/jetsetilly/gopher8080/audio/samples"
	"github.com/jetsetilly/gopher8080/govern"
	"github.com/jetsetilly/gopher8080/gui"
	"github.com/jetsetilly/gopher8080/gui/ebitenplay"
	"github.com/jetsetilly/gopher8080/gui/sdlplay"
	"github.com/jetsetilly/gopher8080/gui/termplay"
	"github.com/jetsetilly/gopher8080/hardware"
	"github.com/jetsetilly/gopher8080/hardware/clocks"
	"github.com/jetsetilly/gopher8080/hardware/cpu/disassembly"
	"github.com/jetsetilly/gopher8080/hardware/romset"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/modalflag"
	"github.com/jetsetilly/gopher8080/performance"
	"github.com/jetsetilly/gopher8080/scheduler"
	"github.com/jetsetilly/gopher8080/statsview"
	"github.com/jetsetilly/gopher8080/version"
	"github.com/jetsetilly/gopher8080/wavwriter"
)

// exit values
const (
	exitArguments = 10
	exitRun       = 20
)

// wrapped by errors caused by the command line rather than by the emulation
var argumentError = errors.New("argument error")

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state chan stateRequest

	// functions that must be run on the main thread
	thread chan func()
}

// run the function on the main thread and wait for it to complete
func (sync *mainSync) onMainThread(f func()) {
	done := make(chan struct{})
	sync.thread <- func() {
		defer close(done)
		f()
	}
	<-done
}

func init() {
	// the main thread must stay on the same OS thread for SDL and OpenGL
	runtime.LockOSThread()
}

// #mainthread
func main() {
	sync := &mainSync{
		state:  make(chan stateRequest),
		thread: make(chan func()),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// ctrl-c cancels the context given to the emulation, which then ends in
	// the normal way
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(ctx, sync, os.Args[1:])

	done := false
	for !done {
		select {
		case f := <-sync.thread:
			f()

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}
		}
	}

	stop()
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// run functions on the main thread and to quit.
func launch(ctx context.Context, sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PLAY", "PERFORMANCE", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: exitArguments}
		return
	}

	switch md.Mode() {
	case "PLAY":
		err = play(ctx, md, sync)

	case "PERFORMANCE":
		err = perform(md)

	case "DISASM":
		err = disasm(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		if errors.Is(err, argumentError) {
			sync.state <- stateRequest{req: reqQuit, args: exitArguments}
		} else {
			sync.state <- stateRequest{req: reqQuit, args: exitRun}
		}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// samplesPath returns the default location of the samples for the ROM set.
// that's the samples directory inside the ROM directory or, for archives, the
// samples directory alongside the archive
func samplesPath(romPath string) string {
	if info, err := os.Stat(romPath); err == nil && info.IsDir() {
		return filepath.Join(romPath, "samples")
	}
	return filepath.Join(filepath.Dir(romPath), "samples")
}

// the ROM and samples paths from the remaining arguments. the chooser is used
// if there are no arguments
func paths(md *modalflag.Modes, chooser func() (string, error)) (string, string, error) {
	var romPath, smpPath string

	switch len(md.RemainingArgs()) {
	case 0:
		if chooser == nil {
			return "", "", fmt.Errorf("%w: ROM set required for %s mode", argumentError, md)
		}
		var err error
		romPath, err = chooser()
		if err != nil {
			return "", "", fmt.Errorf("%w: %w", argumentError, err)
		}
	case 1:
		romPath = md.GetArg(0)
	case 2:
		romPath = md.GetArg(0)
		smpPath = md.GetArg(1)
	default:
		return "", "", fmt.Errorf("%w: too many arguments for %s mode", argumentError, md)
	}

	if smpPath == "" {
		smpPath = samplesPath(romPath)
	}

	return romPath, smpPath, nil
}

func play(ctx context.Context, md *modalflag.Modes, ms *mainSync) error {
	md.NewMode()

	driver := md.AddString("driver", "sdl", "gui driver: sdl, ebiten, terminal")
	scale := md.AddFloat64("scale", 2.0, "display scaling")
	overlay := md.AddBool("overlay", true, "colour the screen with the cabinet's film overlay")
	vsync := md.AddBool("vsync", true, "sync with the monitor refresh rate")
	rate := md.AddInt("rate", 44100, "audio sample rate")
	wav := md.AddString("wav", "", "record audio to wav file")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", statsview.Available(), "run stats server")

	md.AdditionalHelp("arguments: [ROM set] [samples directory]")

	p, err := md.Parse()
	if err != nil {
		return fmt.Errorf("%w: %w", argumentError, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	// a directory chooser is only shown when there is a window system
	var chooser func() (string, error)
	if *driver != "terminal" {
		chooser = func() (string, error) {
			var path string
			var err error
			ms.onMainThread(func() {
				path, err = dialog.Directory().Title("Space Invaders ROM set").Browse()
			})
			return path, err
		}
	}

	romPath, smpPath, err := paths(md, chooser)
	if err != nil {
		return err
	}

	set, err := romset.Load(romPath)
	if err != nil {
		return err
	}

	smp := samples.Load(smpPath)
	mx := mixer.NewMixer(smp, *rate)

	// add wavwriter to the mixer if wav argument has been specified
	if *wav != "" {
		aw, err := wavwriter.New(*wav, mx.Rate())
		if err != nil {
			return fmt.Errorf("%w: %w", argumentError, err)
		}
		mx.AddTap(aw)
		defer func() {
			if err := aw.End(); err != nil {
				logger.Log(logger.Allow, "gopher8080", err)
			}
		}()
	}

	interrupts := make(chan [3]uint8)
	inv, err := hardware.NewInvaders(set.Image, mx, interrupts)
	if err != nil {
		return err
	}
	shared := hardware.NewShared(inv)

	if *stats {
		statsview.Launch(os.Stdout)
	}

	// create gui
	var scr gui.GUI
	ms.onMainThread(func() {
		switch strings.ToLower(*driver) {
		case "sdl":
			scr, err = sdlplay.NewSdlPlay(mx)
		case "ebiten":
			scr, err = ebitenplay.NewEbitenPlay(mx)
		case "terminal":
			scr, err = termplay.NewTermPlay(mx)
		default:
			err = fmt.Errorf("%w: unknown gui driver (%s)", argumentError, *driver)
		}
		if err != nil {
			return
		}

		setFeatures(scr, []featureRequest{
			{gui.ReqSetScale, float32(*scale)},
			{gui.ReqOverlay, *overlay},
			{gui.ReqMonitorSync, *vsync},
		})
	})
	if err != nil {
		return err
	}

	var state govern.Governor
	state.SetState(govern.Running)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// the error channel is buffered so that the state-advance goroutine
	// never blocks on its way out
	errs := make(chan error, 1)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		scheduler.GenerateInterrupts(ctx, interrupts, clocks.InterruptRate)
	}()

	go func() {
		defer wg.Done()
		if err := scheduler.StateAdvance(ctx, shared, clocks.InterruptRate, nil); err != nil {
			errs <- err
		}
	}()

	emu := gui.NewEmulation(shared, &state, errs)

	start := time.Now()
	ms.onMainThread(func() {
		err = scr.Run(ctx, emu)
		scr.Destroy()
	})

	cancel()
	wg.Wait()

	// an error may have arrived after the gui stopped looking
	if err == nil {
		err = emu.Check()
	}

	logger.Logf(logger.Allow, "gopher8080", "ran for %s: %s", time.Since(start).Round(time.Millisecond), inv.CPU)

	return err
}

type featureRequest struct {
	req gui.FeatureReq
	arg gui.FeatureReqData
}

// setFeatures sends the requests to the gui in order. a gui that can't
// satisfy a request is not a reason to stop
func setFeatures(scr gui.GUI, requests []featureRequest) {
	for _, r := range requests {
		if err := scr.SetFeature(r.req, r.arg); err != nil {
			logger.Log(logger.Allow, "gopher8080", err)
		}
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")
	plot := md.AddString("plot", "", "plot states per interrupt to file (png or svg)")
	memviz := md.AddString("memviz", "", "write graph of machine state to a dot file")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil {
		return fmt.Errorf("%w: %w", argumentError, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	if *log {
		logger.SetEcho(md.Output)
	} else {
		logger.SetEcho(nil)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return fmt.Errorf("%w: %w", argumentError, err)
	}

	romPath, _, err := paths(md, nil)
	if err != nil {
		return err
	}

	set, err := romset.Load(romPath)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, set, performance.Options{
		Duration: *duration,
		Profile:  prf,
		Plot:     *plot,
		Memviz:   *memviz,
	})
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil {
		return fmt.Errorf("%w: %w", argumentError, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	romPath, _, err := paths(md, nil)
	if err != nil {
		return err
	}

	set, err := romset.Load(romPath)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromROM(set.Image, 0)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil {
		return fmt.Errorf("%w: %w", argumentError, err)
	}
	if p != modalflag.ParseContinue {
		return nil
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
