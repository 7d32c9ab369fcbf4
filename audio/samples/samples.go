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

// Package samples loads the recorded sounds of the Space Invaders cabinet.
// The cabinet produced its sounds with discrete analogue circuits and so the
// emulation plays recordings instead.
//
// Samples are numbered to match sound.SampleID. For each number the file
// N.wav is tried first and then N.mp3. A sample that cannot be found or that
// cannot be decoded is logged and left absent.
package samples

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/jetsetilly/gopher8080/hardware/sound"
	"github.com/jetsetilly/gopher8080/logger"
)

// DecodeError is wrapped by errors returned when a sample file is not
// usable.
var DecodeError = errors.New("cannot decode sample")

// Sample is mono PCM data.
type Sample struct {
	ID   sound.SampleID
	Rate int
	Data []int16

	// the file the sample was loaded from
	Source string
}

func (s *Sample) String() string {
	return fmt.Sprintf("%s: %d samples at %dHz (%s)", s.ID, len(s.Data), s.Rate, filepath.Base(s.Source))
}

// Set of samples indexed by sound.SampleID. Absent samples are nil.
type Set [sound.NumSamples]*Sample

// Count returns the number of samples present in the set.
func (set *Set) Count() int {
	n := 0
	for _, s := range set {
		if s != nil {
			n++
		}
	}
	return n
}

// Load all samples from the directory.
func Load(dir string) Set {
	var set Set

	for i := range set {
		id := sound.SampleID(i)

		s, err := loadID(dir, id)
		if err != nil {
			logger.Logf(logger.Allow, "samples", "%s: %v", id, err)
			continue
		}

		set[i] = s
		logger.Log(logger.Allow, "samples", s)
	}

	return set
}

func loadID(dir string, id sound.SampleID) (*Sample, error) {
	wavPath := filepath.Join(dir, fmt.Sprintf("%d.wav", int(id)))
	if _, err := os.Stat(wavPath); err == nil {
		return LoadFile(id, wavPath)
	}

	mp3Path := filepath.Join(dir, fmt.Sprintf("%d.mp3", int(id)))
	if _, err := os.Stat(mp3Path); err == nil {
		return LoadFile(id, mp3Path)
	}

	return nil, fmt.Errorf("no wav or mp3 file")
}

// LoadFile decodes a single sample file. The type of the file is decided by
// its extension.
func LoadFile(id sound.SampleID, path string) (*Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("samples: %w", err)
	}
	defer f.Close()

	s := &Sample{
		ID:     id,
		Source: path,
	}

	switch filepath.Ext(path) {
	case ".wav":
		s.Rate, s.Data, err = decodeWAV(f)
	case ".mp3":
		s.Rate, s.Data, err = decodeMP3(f)
	default:
		err = fmt.Errorf("unsupported file type (%s)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("samples: %w: %w", DecodeError, err)
	}

	if len(s.Data) == 0 {
		return nil, fmt.Errorf("samples: %w: no sample data", DecodeError)
	}

	return s, nil
}

func decodeWAV(r io.ReadSeeker) (int, []int16, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return 0, nil, fmt.Errorf("wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return 0, nil, fmt.Errorf("wav: %w", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		return 0, nil, fmt.Errorf("wav: no channels")
	}

	// copy first channel only of the data stream, scaled to 16 bits
	data := make([]int16, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		v := buf.Data[i]
		switch dec.BitDepth {
		case 8:
			// eight bit wav data is unsigned
			v = (v - 128) << 8
		case 24:
			v >>= 8
		case 32:
			v >>= 16
		}
		data = append(data, int16(v))
	}

	return int(dec.SampleRate), data, nil
}

func decodeMP3(r io.Reader) (int, []int16, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return 0, nil, fmt.Errorf("mp3: %w", err)
	}

	// the decoded stream is always 16bit little endian with two channels. a
	// sample is therefore four bytes and we only want the left channel
	var data []int16
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			data = append(data, int16(uint16(chunk[i])|uint16(chunk[i+1])<<8))
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return 0, nil, fmt.Errorf("mp3: %w", err)
		}
	}

	return dec.SampleRate(), data, nil
}
