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

// Package termplay is a GUI driver that draws the screen in a terminal,
// using coloured half block characters so that every character cell shows
// two pixels. Audio is played with the otoplay package.
//
// A terminal does not report key releases. A key is held for a short time
// after it is pressed and kept held by the terminal's keyboard repeat.
//
// The 'q' key ends the emulation.
package termplay

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/cespare/xxhash"
	"github.com/pkg/term"
	xterm "golang.org/x/term"

	"github.com/jetsetilly/gopher8080/audio/mixer"
	"github.com/jetsetilly/gopher8080/audio/otoplay"
	"github.com/jetsetilly/gopher8080/gui"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/performance/limiter"
	"github.com/jetsetilly/gopher8080/userinput"
	"github.com/jetsetilly/gopher8080/version"
	"github.com/jetsetilly/gopher8080/video"
)

// NoTerminal is returned by NewTermPlay() if the output is not a terminal.
var NoTerminal = errors.New("output is not a terminal")

const (
	// number of frames a key is held after it is last seen
	holdFrames = 15

	// how often the size of the terminal is checked, in frames
	resizeFrequency = 30

	// the reading goroutine checks for the end of the emulation at least
	// this often
	readTimeout = 100 * time.Millisecond
)

var status = " " + version.Title() + "   arrows: move  space: fire  c: coin  1/2: start  q: quit"

// TermPlay implements the gui.GUI interface.
type TermPlay struct {
	tty *term.Term
	out *os.File

	player *otoplay.Player

	overlay bool

	keys  *holder
	input chan []byte

	// width of the terminal in characters
	cols int

	img    *image.RGBA
	scaled *image.RGBA
	buf    bytes.Buffer

	// digest of the last frame written to the terminal
	digest uint64
	redraw bool
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. The mixer can be nil in which case there will be no audio.
func NewTermPlay(mx *mixer.Mixer) (*TermPlay, error) {
	tp := &TermPlay{
		out:   os.Stdout,
		keys:  newHolder(holdFrames),
		input: make(chan []byte, 16),
		img:   image.NewRGBA(image.Rect(0, 0, video.Width, video.Height)),
	}

	if !xterm.IsTerminal(int(tp.out.Fd())) {
		return nil, fmt.Errorf("termplay: %w", NoTerminal)
	}

	var err error
	tp.tty, err = term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, fmt.Errorf("termplay: %w", err)
	}

	err = tp.tty.SetReadTimeout(readTimeout)
	if err != nil {
		tp.Destroy()
		return nil, fmt.Errorf("termplay: %w", err)
	}

	// absence of an audio device is not fatal
	if mx != nil {
		tp.player, err = otoplay.NewPlayer(mx, mx.Rate())
		if err != nil {
			logger.Log(logger.Allow, "termplay", err)
		}
	}

	// hide cursor and clear screen
	tp.out.WriteString("\x1b[?25l\x1b[2J")

	return tp, nil
}

// SetFeature implements the gui.GUI interface.
func (tp *TermPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (err error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("termplay: %v: %v", request, r)
		}
	}()

	switch request {
	case gui.ReqOverlay:
		tp.overlay = args[0].(bool)
		tp.redraw = true
	default:
		return fmt.Errorf("termplay: %w: %v", gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// Destroy implements the gui.GUI interface.
func (tp *TermPlay) Destroy() {
	if tp.player != nil {
		if err := tp.player.Close(); err != nil {
			logger.Log(logger.Allow, "termplay", err)
		}
		tp.player = nil
	}

	if tp.tty != nil {
		// reset colours, show cursor and clear screen
		tp.out.WriteString("\x1b[0m\x1b[?25h\x1b[2J\x1b[H")

		if err := tp.tty.Restore(); err != nil {
			logger.Log(logger.Allow, "termplay", err)
		}
		_ = tp.tty.Close()
		tp.tty = nil
	}
}

// Run implements the gui.GUI interface.
func (tp *TermPlay) Run(ctx context.Context, emu *gui.Emulation) error {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	defer func() {
		cancel()
		<-done
	}()

	go func() {
		defer close(done)
		tp.read(ctx)
	}()

	lmtr := limiter.NewFPSLimiter(ctx, gui.FrameRate)
	ticks := lmtr.Tick()

	var frame int

loop:
	for emu.Running() {
		select {
		case _, ok := <-ticks:
			if !ok {
				break loop
			}

			if err := tp.service(emu); err != nil {
				return err
			}

			if err := emu.Check(); err != nil {
				return err
			}

			if frame%resizeFrequency == 0 {
				tp.resize()
			}
			frame++

			if err := tp.draw(emu.Pixels()); err != nil {
				return err
			}

		// key presses reach the machine as soon as they arrive rather than on
		// the next frame
		case in := <-tp.input:
			if err := tp.keyboard(emu, in); err != nil {
				return err
			}
		}
	}

	// make sure the machine doesn't see a key as being held forever
	for _, k := range tp.keys.releaseAll() {
		_ = emu.UserInput(userinput.EventKeyboard{Key: k, Down: false})
	}

	return nil
}

// read the terminal until the context is cancelled
func (tp *TermPlay) read(ctx context.Context) {
	b := make([]byte, 64)
	for {
		n, err := tp.tty.Read(b)
		if n > 0 {
			in := make([]byte, n)
			copy(in, b[:n])
			select {
			case tp.input <- in:
			case <-ctx.Done():
				return
			}
		}

		// a read timeout is not an error
		if err != nil && !errors.Is(err, io.EOF) {
			logger.Log(logger.Allow, "termplay", err)
			return
		}

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// keyboard forwards the decoded terminal input to the emulation
func (tp *TermPlay) keyboard(emu *gui.Emulation, in []byte) error {
	keys, quit := decode(in)
	if quit {
		return emu.UserInput(userinput.EventQuit{})
	}
	for _, k := range keys {
		if tp.keys.press(k) {
			if err := emu.UserInput(userinput.EventKeyboard{Key: k, Down: true}); err != nil {
				return err
			}
		}
	}
	return nil
}

// service any pending input from the terminal and the release of held keys
func (tp *TermPlay) service(emu *gui.Emulation) error {
	for {
		select {
		case in := <-tp.input:
			if err := tp.keyboard(emu, in); err != nil {
				return err
			}
		default:
			for _, k := range tp.keys.tick() {
				if err := emu.UserInput(userinput.EventKeyboard{Key: k, Down: false}); err != nil {
					return err
				}
			}
			return nil
		}
	}
}

// resize the scaled image to fit the terminal
func (tp *TermPlay) resize() {
	cols, rows, err := xterm.GetSize(int(tp.out.Fd()))
	if err != nil {
		logger.Log(logger.Allow, "termplay", err)
		return
	}

	tp.cols = cols

	w, h := fit(cols, rows)
	if tp.scaled != nil && tp.scaled.Bounds().Dx() == w && tp.scaled.Bounds().Dy() == h {
		return
	}

	tp.scaled = image.NewRGBA(image.Rect(0, 0, w, h))
	tp.redraw = true
	tp.out.WriteString("\x1b[2J")

	logger.Logf(logger.Allow, "termplay", "terminal size: %dx%d (image %dx%d)", cols, rows, w, h)
}

// draw the pixels to the terminal. nothing is written if the pixels have not
// changed since the last call
func (tp *TermPlay) draw(pixels []uint8) error {
	if tp.scaled == nil || tp.scaled.Bounds().Empty() {
		return nil
	}

	digest := xxhash.Sum64(pixels)
	if digest == tp.digest && !tp.redraw {
		return nil
	}
	tp.digest = digest
	tp.redraw = false

	scale(tp.scaled, source(pixels, tp.img, tp.overlay))

	tp.buf.Reset()
	render(&tp.buf, tp.scaled)
	tp.buf.WriteString("\r\n")
	if len(status) > tp.cols {
		tp.buf.WriteString(status[:tp.cols])
	} else {
		tp.buf.WriteString(status)
	}

	if _, err := tp.out.Write(tp.buf.Bytes()); err != nil {
		return fmt.Errorf("termplay: %w", err)
	}
	return nil
}
