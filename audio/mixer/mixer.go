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

// Package mixer plays the sound samples in response to the sound events
// produced by the emulation. There is one voice for every sample and any
// number of voices can be playing at once.
//
// The Mixer type implements hardware.AudioSink. Output is signed 16 bit mono
// at the rate given to NewMixer(). The Read() function makes the mixer an
// io.Reader suitable for pull-model audio devices and Fill() is for queue
// based audio devices.
package mixer

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/jetsetilly/gopher8080/audio/samples"
	"github.com/jetsetilly/gopher8080/hardware/sound"
)

type voice struct {
	sample *samples.Sample

	// position in the sample data and the amount to advance the position by
	// for every output sample
	pos  float64
	step float64

	playing bool
	loop    bool
}

func (v *voice) start(loop bool) {
	v.pos = 0
	v.playing = true
	v.loop = loop
}

// next returns the sample at the current position and advances the position.
// the value is interpolated between the two nearest sample values
func (v *voice) next() int32 {
	data := v.sample.Data

	idx := int(v.pos)
	if idx >= len(data) {
		if !v.loop {
			v.playing = false
			return 0
		}
		v.pos = math.Mod(v.pos, float64(len(data)))
		idx = int(v.pos)
	}

	a := float64(data[idx])
	b := a
	if idx+1 < len(data) {
		b = float64(data[idx+1])
	} else if v.loop {
		b = float64(data[0])
	}

	frac := v.pos - float64(idx)
	v.pos += v.step

	return int32(math.Round(a + (b-a)*frac))
}

// Tap implementations receive a copy of everything the mixer outputs.
// Samples() is called while the mixer is locked and so should not block.
type Tap interface {
	Samples(buf []int16)
}

// Mixer of sound samples.
type Mixer struct {
	crit sync.Mutex

	rate   int
	voices [sound.NumSamples]voice
	taps   []Tap

	// conversion buffer used by Read()
	buf []int16
}

// NewMixer is the preferred method of initialisation for the Mixer type.
// Absent samples in the set are allowed, events for those samples are
// ignored.
func NewMixer(set samples.Set, rate int) *Mixer {
	mx := &Mixer{
		rate: rate,
	}

	for i, s := range set {
		if s == nil || s.Rate <= 0 || len(s.Data) == 0 {
			continue
		}
		mx.voices[i].sample = s
		mx.voices[i].step = float64(s.Rate) / float64(rate)
	}

	return mx
}

// Rate returns the output sample rate.
func (mx *Mixer) Rate() int {
	return mx.rate
}

// AddTap adds a receiver of the mixed output.
func (mx *Mixer) AddTap(t Tap) {
	mx.crit.Lock()
	defer mx.crit.Unlock()
	mx.taps = append(mx.taps, t)
}

// SoundEvent implements the hardware.AudioSink interface.
func (mx *Mixer) SoundEvent(e sound.Event) {
	if e.Sample < 0 || int(e.Sample) >= len(mx.voices) {
		return
	}

	mx.crit.Lock()
	defer mx.crit.Unlock()

	v := &mx.voices[e.Sample]
	if v.sample == nil {
		return
	}

	switch e.Kind {
	case sound.FireOnce:
		v.start(false)
	case sound.StartLoop:
		if !v.playing {
			v.start(true)
		}
		v.loop = true
	case sound.StopLoop:
		v.playing = false
		v.loop = false
	}
}

// Playing returns true if the sample is currently playing.
func (mx *Mixer) Playing(id sound.SampleID) bool {
	if id < 0 || int(id) >= len(mx.voices) {
		return false
	}

	mx.crit.Lock()
	defer mx.crit.Unlock()
	return mx.voices[id].playing
}

// Fill the buffer with the mix of all playing voices. Values are clipped to
// the range of int16.
func (mx *Mixer) Fill(buf []int16) {
	mx.crit.Lock()
	defer mx.crit.Unlock()

	for i := range buf {
		var mix int32
		for j := range mx.voices {
			v := &mx.voices[j]
			if v.playing {
				mix += v.next()
			}
		}

		if mix > math.MaxInt16 {
			mix = math.MaxInt16
		} else if mix < math.MinInt16 {
			mix = math.MinInt16
		}
		buf[i] = int16(mix)
	}

	for _, t := range mx.taps {
		t.Samples(buf)
	}
}

// Read implements the io.Reader interface. The mixed output is written to p
// as signed 16 bit little endian values. Read never returns an error and
// always fills p with an even number of bytes.
//
// Read should only be called from one goroutine at a time.
func (mx *Mixer) Read(p []byte) (int, error) {
	n := len(p) / 2
	if cap(mx.buf) < n {
		mx.buf = make([]int16, n)
	}
	buf := mx.buf[:n]

	mx.Fill(buf)

	for i, v := range buf {
		binary.LittleEndian.PutUint16(p[i*2:], uint16(v))
	}

	return n * 2, nil
}
