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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package sdlplay is a GUI driver using SDL for the window, keyboard and
// audio and OpenGL for drawing the screen.
package sdlplay

import (
	"context"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher8080/audio/mixer"
	"github.com/jetsetilly/gopher8080/gui"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/performance/limiter"
	"github.com/jetsetilly/gopher8080/version"
	"github.com/jetsetilly/gopher8080/video"
)

const defaultScale = 2.0

// SdlPlay is a simple SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	window    *sdl.Window
	glContext sdl.GLContext

	rnd *renderer
	aud *audio

	// the amount of scaling applied to each pixel when the window is first
	// created or when the scale is changed
	scale float32

	// size of the drawable area of the window. updated whenever the window
	// is resized
	drawableW int32
	drawableH int32
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The mixer
// can be nil in which case there will be no audio. The window is created at
// the default scale, use the ReqSetScale feature request to change it.
//
// MUST ONLY be called from the main thread.
func NewSdlPlay(mx *mixer.Mixer) (*SdlPlay, error) {
	scr := &SdlPlay{scale: defaultScale}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %w", err)
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	scr.window, err = sdl.CreateWindow(version.Title(),
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		scr.width(), scr.height(),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlplay: failed to create window: %w", err)
	}

	scr.glContext, err = scr.window.GLCreateContext()
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlplay: failed to create OpenGL context: %w", err)
	}

	err = scr.window.GLMakeCurrent(scr.glContext)
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlplay: failed to set current OpenGL context: %w", err)
	}

	_ = sdl.GLSetSwapInterval(1)

	scr.rnd, err = newRenderer()
	if err != nil {
		scr.Destroy()
		return nil, fmt.Errorf("sdlplay: %w", err)
	}
	scr.resize()

	// absence of an audio device is not fatal
	if mx != nil {
		scr.aud, err = newAudio(mx)
		if err != nil {
			logger.Log(logger.Allow, "sdlplay", err)
		}
	}

	return scr, nil
}

// Destroy implements the gui.GUI interface.
func (scr *SdlPlay) Destroy() {
	if scr.aud != nil {
		scr.aud.destroy()
		scr.aud = nil
	}
	if scr.rnd != nil {
		scr.rnd.destroy()
		scr.rnd = nil
	}
	if scr.glContext != nil {
		sdl.GLDeleteContext(scr.glContext)
		scr.glContext = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}

func (scr *SdlPlay) width() int32 {
	return int32(float32(video.Width) * scr.scale)
}

func (scr *SdlPlay) height() int32 {
	return int32(float32(video.Height) * scr.scale)
}

// resize must be called whenever the size of the window has changed.
func (scr *SdlPlay) resize() {
	scr.drawableW, scr.drawableH = scr.window.GLGetDrawableSize()
	scr.rnd.viewport(scr.drawableW, scr.drawableH)
	logger.Logf(logger.Allow, "sdlplay", "drawable size: %dx%d", scr.drawableW, scr.drawableH)
}

// Run implements the gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlPlay) Run(ctx context.Context, emu *gui.Emulation) error {
	lmtr := limiter.NewFPSLimiter(ctx, gui.FrameRate)

	for emu.Running() && lmtr.Wait() {
		if err := scr.service(emu); err != nil {
			return err
		}

		if err := emu.Check(); err != nil {
			return err
		}

		if scr.aud != nil {
			if err := scr.aud.fill(); err != nil {
				logger.Log(logger.Allow, "sdlplay", err)
			}
		}

		scr.rnd.render(emu.Pixels())
		scr.window.GLSwap()
	}

	return nil
}
