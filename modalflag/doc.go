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

// Package modalflag wraps the flag package of the standard library, adding
// program modes. Each mode has its own set of flags.
//
// Arguments are registered with NewArgs() and then processed one mode at a
// time with Parse(). Between calls to Parse() the NewMode() function clears
// the flag set so that the next mode can register its own flags.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "PERFORMANCE", "DISASM")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		scale := md.AddFloat64("scale", 3.0, "window scaling")
//		...
//	}
//
// The first sub-mode in the list is the default and is chosen when the first
// non-flag argument does not name one of the sub-modes. Sub-mode comparisons
// are case insensitive.
package modalflag
