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

package main

import (
	"fmt"
	"os"

	"github.com/jetsetilly/gopher3ds/gui/sdlscreen"
	"github.com/jetsetilly/gopher3ds/hardware"
	"github.com/jetsetilly/gopher3ds/logger"
	"github.com/jetsetilly/gopher3ds/modalflag"
	"github.com/jetsetilly/gopher3ds/performance"
	"github.com/jetsetilly/gopher3ds/statsview"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	refresh := md.AddInt("refresh", 60, "refresh rate of the emulated display")
	scale := md.AddFloat64("scale", 0.0, "display scaling")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	ds, err := hardware.NewDS(uint32(*refresh))
	if err != nil {
		return err
	}
	defer ds.End()

	scr, err := sdlscreen.NewScreen(ds.GPU, ds.Mem, float32(*scale))
	if err != nil {
		return err
	}
	defer scr.Destroy()

	return demo(ds, scr)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	refresh := md.AddInt("refresh", 60, "refresh rate of the emulated display")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "write cpu profile")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	return performance.Check(md.Output, *profile, uint32(*refresh), *duration)
}
