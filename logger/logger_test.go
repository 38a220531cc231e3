// This file is part of Gopher3DS.
//
// Gopher3DS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher3DS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher3DS.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher3ds/logger"
	"github.com/jetsetilly/gopher3ds/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "")

	logger.Log("test", "this is a test")
	logger.Write(s)
	test.Equate(t, s.String(), "test: this is a test\n")

	s.Reset()
	logger.Log("test2", "this is another test")
	logger.Tail(s, 1)
	test.Equate(t, s.String(), "test2: this is another test\n")
}

func TestRepeatedEntries(t *testing.T) {
	logger.Clear()

	logger.Log("test", "repeated detail")
	logger.Log("test", "repeated detail")

	n := 0
	logger.BorrowLog(func(entries []logger.Entry) {
		n = len(entries)
	})
	test.Equate(t, n, 1)

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "test: repeated detail (repeat x2)\n")
}
