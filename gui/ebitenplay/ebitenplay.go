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

// Package ebitenplay is a GUI driver using the ebiten game library. Audio is
// played with the otoplay package.
package ebitenplay

import (
	"context"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/jetsetilly/gopher8080/audio/mixer"
	"github.com/jetsetilly/gopher8080/audio/otoplay"
	"github.com/jetsetilly/gopher8080/gui"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/userinput"
	"github.com/jetsetilly/gopher8080/version"
	"github.com/jetsetilly/gopher8080/video"
)

// ebiten keys and the name of the key as used by the userinput package
var keys = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  "Left",
	ebiten.KeyArrowRight: "Right",
	ebiten.KeySpace:      "Space",
	ebiten.KeyC:          "C",
	ebiten.KeyT:          "T",
	ebiten.KeyDigit1:     "1",
	ebiten.KeyDigit2:     "2",
	ebiten.KeyF1:         "F1",
	ebiten.KeyF2:         "F2",
	ebiten.KeyF3:         "F3",
}

const defaultScale = 2.0

// EbitenPlay implements the gui.GUI interface.
type EbitenPlay struct {
	ctx context.Context
	emu *gui.Emulation

	// the error that ended the emulation
	err error

	player *otoplay.Player

	scale   float32
	overlay bool

	screen *ebiten.Image
	img    *image.RGBA
}

// NewEbitenPlay is the preferred method of initialisation for the EbitenPlay
// type. The mixer can be nil in which case there will be no audio. The window
// size can be changed with the ReqSetScale feature request.
func NewEbitenPlay(mx *mixer.Mixer) (*EbitenPlay, error) {
	eb := &EbitenPlay{
		scale: defaultScale,
		img:   image.NewRGBA(image.Rect(0, 0, video.Width, video.Height)),
	}

	// absence of an audio device is not fatal
	if mx != nil {
		var err error
		eb.player, err = otoplay.NewPlayer(mx, mx.Rate())
		if err != nil {
			logger.Log(logger.Allow, "ebitenplay", err)
		}
	}

	ebiten.SetWindowTitle(version.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(eb.width(), eb.height())
	ebiten.SetTPS(gui.FrameRate)
	ebiten.SetWindowClosingHandled(true)

	return eb, nil
}

func (eb *EbitenPlay) width() int {
	return int(float32(video.Width) * eb.scale)
}

func (eb *EbitenPlay) height() int {
	return int(float32(video.Height) * eb.scale)
}

// SetFeature implements the gui.GUI interface.
func (eb *EbitenPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (err error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ebitenplay: %v: %v", request, r)
		}
	}()

	switch request {
	case gui.ReqSetScale:
		eb.scale = args[0].(float32)
		ebiten.SetWindowSize(eb.width(), eb.height())
	case gui.ReqOverlay:
		eb.overlay = args[0].(bool)
	case gui.ReqMonitorSync:
		ebiten.SetVsyncEnabled(args[0].(bool))
	default:
		return fmt.Errorf("ebitenplay: %w: %v", gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// Destroy implements the gui.GUI interface.
func (eb *EbitenPlay) Destroy() {
	if eb.player != nil {
		if err := eb.player.Close(); err != nil {
			logger.Log(logger.Allow, "ebitenplay", err)
		}
		eb.player = nil
	}
}

// Run implements the gui.GUI interface.
func (eb *EbitenPlay) Run(ctx context.Context, emu *gui.Emulation) error {
	eb.ctx = ctx
	eb.emu = emu

	if err := ebiten.RunGame(eb); err != nil {
		return fmt.Errorf("ebitenplay: %w", err)
	}

	return eb.err
}

// Update implements the ebiten.Game interface.
func (eb *EbitenPlay) Update() error {
	if ebiten.IsWindowBeingClosed() {
		eb.err = eb.emu.UserInput(userinput.EventQuit{})
		return ebiten.Termination
	}

	select {
	case <-eb.ctx.Done():
		return ebiten.Termination
	default:
	}

	for k, name := range keys {
		var err error
		if inpututil.IsKeyJustPressed(k) {
			err = eb.emu.UserInput(userinput.EventKeyboard{Key: name, Down: true})
		} else if inpututil.IsKeyJustReleased(k) {
			err = eb.emu.UserInput(userinput.EventKeyboard{Key: name, Down: false})
		}
		if err != nil {
			eb.err = err
			return ebiten.Termination
		}
	}

	if err := eb.emu.Check(); err != nil {
		eb.err = err
		return ebiten.Termination
	}

	if !eb.emu.Running() {
		return ebiten.Termination
	}

	return nil
}

// Draw implements the ebiten.Game interface.
func (eb *EbitenPlay) Draw(screen *ebiten.Image) {
	if eb.screen == nil {
		eb.screen = ebiten.NewImage(video.Width, video.Height)
	}

	video.RGBA(eb.emu.Pixels(), eb.img, eb.overlay)
	eb.screen.WritePixels(eb.img.Pix)
	screen.DrawImage(eb.screen, nil)
}

// Layout implements the ebiten.Game interface. The screen is always the size
// of the cabinet's display and ebiten scales it to fit the window.
func (eb *EbitenPlay) Layout(_, _ int) (int, int) {
	return video.Width, video.Height
}
