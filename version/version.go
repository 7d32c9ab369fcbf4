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

// Package version reports the version of the program. The information is
// taken from the build information embedded by the Go toolchain, unless a
// number has been set by the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher8080/version.number=v0.1.0"
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher8080"

// set by the linker for release builds
var number string

var version string
var revision string

func init() {
	info, _ := debug.ReadBuildInfo()
	version, revision = fromBuildInfo(number, info)
}

// fromBuildInfo decides the version and revision strings. the version is
// "unreleased" if there is vcs information but no number and "local" if there
// is neither. a revision with uncommitted changes is suffixed with "+dirty"
func fromBuildInfo(number string, info *debug.BuildInfo) (string, string) {
	var vcs bool
	var rev string
	var modified bool

	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if rev == "" {
		rev = "no revision information"
	} else if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}

// Version returns the version string, the revision string and whether this is a
// numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns the application name and version, suitable for a window
// title.
func Title() string {
	return fmt.Sprintf("%s %s", ApplicationName, version)
}
