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

package termplay

import "sort"

// escape sequences sent by the terminal for the keys we're interested in.
// both the xterm and the rxvt forms of the function keys are recognised
var sequences = map[string]string{
	"\x1b[D":   "Left",
	"\x1b[C":   "Right",
	"\x1bOD":   "Left",
	"\x1bOC":   "Right",
	"\x1bOP":   "F1",
	"\x1bOQ":   "F2",
	"\x1bOR":   "F3",
	"\x1b[11~": "F1",
	"\x1b[12~": "F2",
	"\x1b[13~": "F3",
}

// single byte keys
var characters = map[byte]string{
	' ': "Space",
	'c': "C",
	'C': "C",
	't': "T",
	'T': "T",
	'1': "1",
	'2': "2",
}

// bytes that end the emulation. 0x03 is ctrl-c, which arrives as a byte
// because the terminal is in cbreak mode
var quitters = map[byte]bool{
	'q':  true,
	'Q':  true,
	0x03: true,
}

// decode the bytes read from the terminal into a list of key names. unknown
// bytes and escape sequences are skipped
func decode(b []byte) (keys []string, quit bool) {
	for i := 0; i < len(b); i++ {
		if b[i] != 0x1b {
			if quitters[b[i]] {
				quit = true
			} else if k, ok := characters[b[i]]; ok {
				keys = append(keys, k)
			}
			continue
		}

		// lone escape
		if i+1 >= len(b) {
			continue
		}

		end := i + 1
		switch b[i+1] {
		case 'O':
			end = i + 2
		case '[':
			// parameter bytes followed by a single final byte
			end = i + 2
			for end < len(b) && b[end] >= 0x30 && b[end] <= 0x3f {
				end++
			}
		default:
			continue
		}

		if end >= len(b) {
			return keys, quit
		}

		if k, ok := sequences[string(b[i:end+1])]; ok {
			keys = append(keys, k)
		}
		i = end
	}

	return keys, quit
}

// the terminal sends no key release events so a key is considered held for
// a number of frames after the last time it was seen. the keyboard repeat of
// the terminal keeps the key held for as long as it is pressed
type holder struct {
	frames int
	held   map[string]int
}

func newHolder(frames int) *holder {
	return &holder{
		frames: frames,
		held:   make(map[string]int),
	}
}

// press returns true if the key was not already held.
func (h *holder) press(key string) bool {
	_, ok := h.held[key]
	h.held[key] = h.frames
	return !ok
}

// tick advances one frame and returns the keys that are no longer held, in
// alphabetical order.
func (h *holder) tick() []string {
	var released []string
	for k, n := range h.held {
		n--
		if n <= 0 {
			delete(h.held, k)
			released = append(released, k)
		} else {
			h.held[k] = n
		}
	}
	sort.Strings(released)
	return released
}

// releaseAll returns every held key, in alphabetical order.
func (h *holder) releaseAll() []string {
	var released []string
	for k := range h.held {
		released = append(released, k)
	}
	clear(h.held)
	sort.Strings(released)
	return released
}
