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

// Package logger is the central log for the application. Log entries are
// made up of a tag and a detail. The tag is usually the name of the package
// making the entry.
//
//	logger.Log(logger.Allow, "romset", "loaded invaders.h")
//	logger.Logf(logger.Allow, "romset", "digest %016x", digest)
//
// The detail argument to Log() can be a string, an error or a fmt.Stringer.
// Any other type is formatted with the %v verb.
//
// Consecutive entries that are identical are collapsed into a single entry
// with a repeat count. The central log holds a maximum number of entries, the
// oldest entries being dropped first.
//
// Entries are not printed unless SetEcho() has been called with a non-nil
// io.Writer. The Write() and Tail() functions can be used to print the log on
// demand.
//
// The Permission interface controls whether an entry is made at all. The
// Allow value is a good default.
package logger
