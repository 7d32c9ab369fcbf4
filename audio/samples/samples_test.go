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

package samples_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher8080/audio/samples"
	"github.com/jetsetilly/gopher8080/hardware/sound"
	"github.com/jetsetilly/gopher8080/test"
)

func writeWAV(t *testing.T, path string, rate int, chans int, data []int) {
	t.Helper()

	f, err := os.Create(path)
	test.DemandSuccess(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, rate, 16, chans, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: chans, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
}

func TestLoadWAV(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, "1.wav"), 22050, 1, []int{0, 1000, -1000, 32767})

	s, err := samples.LoadFile(sound.Shot, filepath.Join(dir, "1.wav"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.ID, sound.Shot)
	test.ExpectEquality(t, s.Rate, 22050)
	test.DemandEquality(t, len(s.Data), 4)
	test.ExpectEquality(t, s.Data[0], 0)
	test.ExpectEquality(t, s.Data[1], 1000)
	test.ExpectEquality(t, s.Data[2], -1000)
	test.ExpectEquality(t, s.Data[3], 32767)
}

func TestLoadStereoWAV(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, "8.wav"), 11025, 2, []int{100, 200, 300, 400, 500, 600})

	s, err := samples.LoadFile(sound.UFO, filepath.Join(dir, "8.wav"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Rate, 11025)

	// left channel only
	test.DemandEquality(t, len(s.Data), 3)
	test.ExpectEquality(t, s.Data[0], 100)
	test.ExpectEquality(t, s.Data[1], 300)
	test.ExpectEquality(t, s.Data[2], 500)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2.wav")
	test.DemandSuccess(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	_, err := samples.LoadFile(sound.PlayerDeath, path)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, samples.DecodeError))

	_, err = samples.LoadFile(sound.PlayerDeath, filepath.Join(dir, "2.ogg"))
	test.ExpectFailure(t, err)
}

func TestLoadSet(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, "0.wav"), 22050, 1, []int{1, 2, 3})
	writeWAV(t, filepath.Join(dir, "4.wav"), 22050, 1, []int{4, 5, 6})
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "3.wav"), []byte("bad"), 0o644))

	set := samples.Load(dir)
	test.ExpectEquality(t, set.Count(), 2)
	test.ExpectInequality(t, set[sound.UFOHit], nil)
	test.ExpectInequality(t, set[sound.Fleet1], nil)

	// the bad file is skipped
	test.ExpectEquality(t, set[sound.InvaderKilled], nil)
	test.ExpectEquality(t, set[sound.UFO], nil)
}

func TestLoadEmptyDirectory(t *testing.T) {
	set := samples.Load(t.TempDir())
	test.ExpectEquality(t, set.Count(), 0)
}
