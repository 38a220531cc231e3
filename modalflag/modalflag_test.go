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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gopher3ds/modalflag"
	"github.com/jetsetilly/gopher3ds/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p, modalflag.ParseContinue)
	test.Equate(t, md.Mode(), "")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})
	md.AddSubModes("RUN", "PERFORMANCE")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p, modalflag.ParseContinue)
	test.Equate(t, md.Mode(), "RUN")
}

func TestSubModeWithFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"performance", "-duration", "10s"})
	md.AddSubModes("RUN", "PERFORMANCE")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p, modalflag.ParseContinue)
	test.Equate(t, md.Mode(), "PERFORMANCE")

	md.NewMode()
	duration := md.AddString("duration", "5s", "run duration")

	p, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p, modalflag.ParseContinue)
	test.Equate(t, *duration, "10s")
}

func TestUnrecognisedFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unrecognised"})

	p, err := md.Parse()
	test.ExpectedFailure(t, err)
	test.Equate(t, p, modalflag.ParseError)
}
