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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when End() is called. It is therefore probably only suitable for short
// recordings.
package wavwriter

import (
	"fmt"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher8080/logger"
)

// WavWriter implements the mixer.Tap interface.
type WavWriter struct {
	crit sync.Mutex

	filename string
	rate     int
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type. The
// rate should be the output rate of the mixer the WavWriter is attached to.
func New(filename string, rate int) (*WavWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("wavwriter: no filename")
	}
	if rate <= 0 {
		return nil, fmt.Errorf("wavwriter: bad sample rate (%d)", rate)
	}

	return &WavWriter{
		filename: filename,
		rate:     rate,
	}, nil
}

// Samples implements the mixer.Tap interface.
func (aw *WavWriter) Samples(buf []int16) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	for _, v := range buf {
		aw.buffer = append(aw.buffer, int(v))
	}
}

// End writes the buffered audio to the file.
func (aw *WavWriter) End() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.rate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.rate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
