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
	"github.com/jetsetilly/gopher3ds/gui/sdlscreen"
	"github.com/jetsetilly/gopher3ds/hardware"
	"github.com/jetsetilly/gopher3ds/hardware/gpu"
	"github.com/jetsetilly/gopher3ds/hardware/memory"
)

// physical register addresses used by the demo.
const (
	demoFill0Start = 0x1ef00010
	demoFill0End   = 0x1ef00014
	demoFill0Value = 0x1ef0001c

	demoTransferInput     = 0x1ef00c00
	demoTransferOutput    = 0x1ef00c04
	demoTransferOutputDim = 0x1ef00c08
	demoTransferInputDim  = 0x1ef00c0c
	demoTransferFlags     = 0x1ef00c10
	demoTransferTrigger   = 0x1ef00c18
)

// where the demo builds its RGBA8 test card.
const demoCardAddress = memory.FCRAMOrigin

// dimensions of the test card. the card occupies the top band of the
// framebuffer after the transfer.
const (
	demoCardWidth  = 240
	demoCardHeight = 120
)

// teeRenderer forwards buffer swaps to the screen while counting frames for
// the demo loop.
type teeRenderer struct {
	scr    *sdlscreen.Screen
	frames int
}

func (tee *teeRenderer) SwapBuffers() {
	tee.frames++
	tee.scr.SwapBuffers()
}

// demo drives the hardware the way a guest OS would: everything below
// happens through register writes, with the demo code reading only the
// addresses it placed there itself.
//
// There is no CPU emulation yet so this loop stands in for it, advancing the
// clock one scanline period at a time.
func demo(ds *hardware.DS, scr *sdlscreen.Screen) error {
	tee := &teeRenderer{scr: scr}
	ds.GPU.AddRenderer(tee)

	fb := ds.GPU.Framebuffer(gpu.DisplayTop)
	fbSize := fb.Width * fb.Height * 3

	_, frameTicks := ds.GPU.FramePeriod()
	lineTicks := frameTicks / uint64(fb.Height)

	err := buildTestCard(ds)
	if err != nil {
		return err
	}

	// program the transfer of the test card into the top of the framebuffer.
	// the registers keep their values between triggers; only the trigger
	// register is written again in the loop
	for _, reg := range [][2]uint32{
		{demoTransferInput, demoCardAddress >> 3},
		{demoTransferOutput, fb.AddressLeft1 >> 3},
		{demoTransferInputDim, demoCardHeight<<16 | demoCardWidth},
		{demoTransferOutputDim, demoCardHeight<<16 | demoCardWidth},
		{demoTransferFlags, uint32(gpu.RGBA8)<<8 | uint32(gpu.RGB8)<<12},
		{demoFill0Start, fb.AddressLeft1 >> 3},
		{demoFill0End, (fb.AddressLeft1 + fbSize) >> 3},
	} {
		err = ds.GPU.Write(reg[0], gpu.Access32, reg[1])
		if err != nil {
			return err
		}
	}

	lastFrame := -1
	for scr.Service() {
		ds.Step(lineTicks, true)

		if tee.frames == lastFrame {
			continue
		}
		lastFrame = tee.frames

		// paint the framebuffer with a slowly cycling colour. writing the
		// fill value register is what triggers the fill
		colour := uint32(tee.frames)*0x00010203 | 0xff
		err = ds.GPU.Write(demoFill0Value, gpu.Access32, colour)
		if err != nil {
			return err
		}

		// lay the test card over the top band
		err = ds.GPU.Write(demoTransferTrigger, gpu.Access32, 0x1)
		if err != nil {
			return err
		}
	}

	return nil
}

// buildTestCard writes an RGBA8 gradient image to the demo's staging area in
// main memory.
func buildTestCard(ds *hardware.DS) error {
	buf, err := ds.Mem.Resolve(demoCardAddress)
	if err != nil {
		return err
	}

	for y := 0; y < demoCardHeight; y++ {
		for x := 0; x < demoCardWidth; x++ {
			o := x*4 + y*demoCardWidth*4
			buf[o] = uint8(x)
			buf[o+1] = uint8(y * 2)
			buf[o+2] = uint8(x ^ (y * 2))
			buf[o+3] = 0xff
		}
	}

	return nil
}
