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

package gpu_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher3ds/hardware/gpu"
	"github.com/jetsetilly/gopher3ds/hardware/memory"
	"github.com/jetsetilly/gopher3ds/logger"
	"github.com/jetsetilly/gopher3ds/test"
)

const (
	transferSrc = memory.FCRAMOrigin
	transferDst = memory.VRAMOrigin
)

// prepareTransfer seeds an RGBA8 source image of the specified dimensions
// and programs the transfer registers, leaving only the trigger.
func prepareTransfer(t *testing.T, g *gpu.GPU, mem *memory.Memory, width uint32, height uint32, outputFormat gpu.PixelFormat) []byte {
	t.Helper()

	src, err := mem.Resolve(transferSrc)
	test.ExpectedSuccess(t, err)

	// each pixel's bytes are derived from its position so every pixel is
	// distinguishable
	for i := uint32(0); i < width*height; i++ {
		src[i*4] = uint8(i)
		src[i*4+1] = uint8(i >> 2)
		src[i*4+2] = uint8(255 - i)
		src[i*4+3] = 0xff
	}

	poke32(t, g, addrTransferInput, transferSrc>>3)
	poke32(t, g, addrTransferOutput, transferDst>>3)
	poke32(t, g, addrTransferInputDim, height<<16|width)
	poke32(t, g, addrTransferOutputDim, height<<16|width)
	poke32(t, g, addrTransferFlags, uint32(gpu.RGBA8)<<8|uint32(outputFormat)<<12)

	return src
}

func TestDisplayTransfer(t *testing.T) {
	g, mem := newTestGPU(t)

	const width = 8
	const height = 4

	src := prepareTransfer(t, g, mem, width, height, gpu.RGB8)

	poke32(t, g, addrTransferTrigger, 0x1)

	dst, err := mem.Resolve(transferDst)
	test.ExpectedSuccess(t, err)

	// every destination pixel's three bytes equal the source pixel's first
	// three channel slots. the alpha slot is dropped
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			so := x*4 + y*width*4
			do := x*3 + y*width*3
			test.Equate(t, dst[do], src[so])
			test.Equate(t, dst[do+1], src[so+1])
			test.Equate(t, dst[do+2], src[so+2])
		}
	}

	// the byte after the last destination pixel is untouched
	test.Equate(t, dst[width*height*3], uint8(0))
}

func TestDisplayTransferNotTriggered(t *testing.T) {
	g, mem := newTestGPU(t)

	prepareTransfer(t, g, mem, 4, 4, gpu.RGB8)

	// bit 0 of the trigger register clear: no transfer
	poke32(t, g, addrTransferTrigger, 0x2)

	dst, err := mem.Resolve(transferDst)
	test.ExpectedSuccess(t, err)

	for i := 0; i < 4*4*3; i++ {
		test.Equate(t, dst[i], uint8(0))
	}
}

func TestDisplayTransferUnsupportedOutputFormat(t *testing.T) {
	g, mem := newTestGPU(t)

	prepareTransfer(t, g, mem, 4, 4, gpu.RGBA4)

	logger.Clear()
	poke32(t, g, addrTransferTrigger, 0x1)

	// destination buffer is unmodified
	dst, err := mem.Resolve(transferDst)
	test.ExpectedSuccess(t, err)

	for i := 0; i < 4*4*3; i++ {
		test.Equate(t, dst[i], uint8(0))
	}

	// the condition is reported once per transfer
	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, strings.Count(s.String(), "unsupported pixel format: output RGBA4"), 1)
}

func TestDisplayTransferUnsupportedInputFormat(t *testing.T) {
	g, mem := newTestGPU(t)

	prepareTransfer(t, g, mem, 4, 4, gpu.RGB8)

	// replace the input format with an unimplemented one
	poke32(t, g, addrTransferFlags, uint32(gpu.RGB565)<<8|uint32(gpu.RGB8)<<12)

	// make the destination dirty so the degraded pixels are observable
	dst, err := mem.Resolve(transferDst)
	test.ExpectedSuccess(t, err)
	for i := 0; i < 4*4*3; i++ {
		dst[i] = 0xee
	}

	logger.Clear()
	poke32(t, g, addrTransferTrigger, 0x1)

	// unsupported input pixels read as transparent black and are written as
	// such
	for i := 0; i < 4*4*3; i++ {
		test.Equate(t, dst[i], uint8(0))
	}

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, strings.Count(s.String(), "unsupported pixel format: input RGB565"), 1)
}

func TestDisplayTransferUnresolvableAddress(t *testing.T) {
	g, mem := newTestGPU(t)

	prepareTransfer(t, g, mem, 4, 4, gpu.RGB8)

	// an unmapped output address degrades to a no-op
	poke32(t, g, addrTransferOutput, 0x10000000>>3)
	poke32(t, g, addrTransferTrigger, 0x1)
}
