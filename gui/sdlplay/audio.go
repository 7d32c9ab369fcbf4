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

package sdlplay

import (
	"encoding/binary"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher8080/audio/mixer"
	"github.com/jetsetilly/gopher8080/gui"
	"github.com/jetsetilly/gopher8080/logger"
)

// the number of frames of audio to keep queued. a short queue means less lag
// between a sound event and the sound being heard but the queue must be long
// enough to survive an occasional late frame
const queuedFrames = 3

// audio outputs sound using the SDL audio queue.
type audio struct {
	id    sdl.AudioDeviceID
	mixer *mixer.Mixer

	// the number of bytes that should be queued
	target uint32

	samples []int16
	bytes   []uint8
}

func newAudio(mx *mixer.Mixer) (*audio, error) {
	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}

	// allowed changes of zero means SDL will convert the audio if the device
	// does not support the format
	spec := &sdl.AudioSpec{
		Freq:     int32(mx.Rate()),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  512,
	}

	aud := &audio{
		mixer: mx,
	}

	var obtained sdl.AudioSpec
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &obtained, 0)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}

	// two bytes per sample
	perFrame := mx.Rate() / gui.FrameRate
	aud.target = uint32(perFrame * queuedFrames * 2)
	aud.samples = make([]int16, perFrame*queuedFrames)
	aud.bytes = make([]uint8, len(aud.samples)*2)

	logger.Logf(logger.Allow, "sdlplay", "audio: %dHz", mx.Rate())

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

func (aud *audio) destroy() {
	sdl.CloseAudioDevice(aud.id)
}

// fill the audio queue up to the target length.
func (aud *audio) fill() error {
	queued := sdl.GetQueuedAudioSize(aud.id)
	if queued >= aud.target {
		return nil
	}

	n := int(aud.target-queued) / 2
	samples := aud.samples[:n]
	aud.mixer.Fill(samples)

	bytes := aud.bytes[:n*2]
	for i, v := range samples {
		binary.LittleEndian.PutUint16(bytes[i*2:], uint16(v))
	}

	err := sdl.QueueAudio(aud.id, bytes)
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	return nil
}
