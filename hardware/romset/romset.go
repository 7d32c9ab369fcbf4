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

// Package romset loads the four ROM chips of the Space Invaders cabinet. The
// ROMs can be loaded from a directory or from a zip or 7z archive.
package romset

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/cespare/xxhash"

	"github.com/jetsetilly/gopher8080/logger"
)

// Names of the ROM files in the order they appear in memory, starting at
// address zero.
var Names = [...]string{"invaders.h", "invaders.g", "invaders.f", "invaders.e"}

// ChipSize is the required size of each ROM file.
const ChipSize = 2048

// LoadError is wrapped by all errors returned by Load().
var LoadError = errors.New("cannot load ROM set")

// ROMSet is the result of a successful call to Load().
type ROMSet struct {
	// the path the ROMs were loaded from
	Source string

	// the contents of the ROMs concatenated in the correct order
	Image []uint8

	// xxhash of the image
	Digest uint64
}

func (set *ROMSet) String() string {
	return fmt.Sprintf("%s (%016x)", filepath.Base(set.Source), set.Digest)
}

// Load the ROM set from the path. The path can be a directory or an archive
// with the extension .zip or .7z.
func Load(path string) (*ROMSet, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("romset: %w: %w", LoadError, err)
	}

	var files map[string][]uint8

	if info.IsDir() {
		files, err = fromDirectory(path)
	} else {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".zip":
			files, err = fromZip(path)
		case ".7z":
			files, err = from7z(path)
		default:
			err = fmt.Errorf("unsupported archive type (%s)", filepath.Ext(path))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("romset: %w: %w", LoadError, err)
	}

	set := &ROMSet{
		Source: path,
		Image:  make([]uint8, 0, len(Names)*ChipSize),
	}

	for _, n := range Names {
		d, ok := files[n]
		if !ok {
			return nil, fmt.Errorf("romset: %w: %s not found", LoadError, n)
		}
		if len(d) != ChipSize {
			return nil, fmt.Errorf("romset: %w: %s is %d bytes and should be %d bytes", LoadError, n, len(d), ChipSize)
		}
		set.Image = append(set.Image, d...)
	}

	set.Digest = xxhash.Sum64(set.Image)
	logger.Logf(logger.Allow, "romset", "loaded %s", set)

	return set, nil
}

// the file name used to index the map of files. archives may store the files
// in a sub-directory and with upper case names
func key(name string) string {
	return strings.ToLower(filepath.Base(name))
}

func wanted(name string) bool {
	k := key(name)
	for _, n := range Names {
		if n == k {
			return true
		}
	}
	return false
}

func fromDirectory(path string) (map[string][]uint8, error) {
	files := make(map[string][]uint8)
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.IsDir() || !wanted(e.Name()) {
			continue
		}
		d, err := os.ReadFile(filepath.Join(path, e.Name()))
		if err != nil {
			return nil, err
		}
		files[key(e.Name())] = d
	}
	return files, nil
}

func fromZip(path string) (map[string][]uint8, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	files := make(map[string][]uint8)
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !wanted(f.Name) {
			continue
		}
		d, err := readArchived(f.Open)
		if err != nil {
			return nil, err
		}
		files[key(f.Name)] = d
	}
	return files, nil
}

func from7z(path string) (map[string][]uint8, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	files := make(map[string][]uint8)
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !wanted(f.Name) {
			continue
		}
		d, err := readArchived(f.Open)
		if err != nil {
			return nil, err
		}
		files[key(f.Name)] = d
	}
	return files, nil
}

// read no more than one byte more than the expected size. any excess is
// enough to report the size error
func readArchived(open func() (io.ReadCloser, error)) ([]uint8, error) {
	rc, err := open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(io.LimitReader(rc, ChipSize+1))
}
