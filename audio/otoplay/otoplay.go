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

// Package otoplay outputs audio with the oto library. The audio is pulled
// from an io.Reader, which will normally be an instance of mixer.Mixer.
//
// Only one Player should be created during the lifetime of the program.
package otoplay

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// the size of the device buffer. a short buffer means less delay between a
// sound event and the sound being heard
const bufferSize = 40 * time.Millisecond

// Player of mono signed 16 bit audio.
type Player struct {
	crit   sync.Mutex
	ctx    *oto.Context
	player *oto.Player
}

// NewPlayer is the preferred method of initialisation for the Player type.
// Playback begins immediately. The reader should never block for long and
// should fill the buffer with silence when it has nothing to play.
func NewPlayer(src io.Reader, rate int) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   bufferSize,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("otoplay: %w", err)
	}
	<-ready

	p := &Player{
		ctx:    ctx,
		player: ctx.NewPlayer(src),
	}
	p.player.Play()

	return p, nil
}

// Close stops playback.
func (p *Player) Close() error {
	p.crit.Lock()
	defer p.crit.Unlock()

	if p.player == nil {
		return nil
	}

	err := p.player.Close()
	p.player = nil
	if err != nil {
		return fmt.Errorf("otoplay: %w", err)
	}
	return nil
}
