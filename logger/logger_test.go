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

package logger_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/test"
)

type prohibit struct{}

func (_ prohibit) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	tw := &test.CompareWriter{}
	log := logger.NewLogger(100)

	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the test.CompareWriter buffer before continuing, makes
	// comparisons easier to manage
	tw.Clear()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	log.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for exactly the correct number of entries is okay
	tw.Clear()
	log.Tail(tw, 2)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	tw.Clear()
	log.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))

	// and no entries
	tw.Clear()
	log.Tail(tw, 0)
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestRepeatAndPermission(t *testing.T) {
	tw := &test.CompareWriter{}
	log := logger.NewLogger(100)

	log.Log(logger.Allow, "cpu", errors.New("halted"))
	log.Log(logger.Allow, "cpu", errors.New("halted"))
	log.Log(logger.Allow, "cpu", errors.New("halted"))
	log.Log(prohibit{}, "cpu", "not logged")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "cpu: halted (repeat x3)\n")

	tw.Clear()
	log.Clear()
	log.Logf(logger.Allow, "scheduler", "interrupt %#02x", 0xcf)
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "scheduler: interrupt 0xcf\n")
}

func TestMaximumEntries(t *testing.T) {
	tw := &test.CompareWriter{}
	log := logger.NewLogger(2)

	log.Log(logger.Allow, "a", 1)
	log.Log(logger.Allow, "b", 2)
	log.Log(logger.Allow, "c", 3)
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "b: 2\nc: 3\n")
}

func TestEcho(t *testing.T) {
	tw := &test.CompareWriter{}
	log := logger.NewLogger(10)
	log.SetEcho(tw)
	log.Log(logger.Allow, "echo", "on")
	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "off")
	test.ExpectEquality(t, tw.String(), "echo: on\n")
}
