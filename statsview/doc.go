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

// Package statsview is an optional package that will built only when the
// statsview build constraint is present.
//
// It provides a HTTP server running locally offering runtime statistics. The
// underlying functionality is provided by "github.com/go-echarts/statsview".
// Useful for watching the garbage collector while the emulation is running.
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:18080/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:18080/debug/pprof/
package statsview
