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
	"testing"

	"github.com/jetsetilly/gopher3ds/curated"
	"github.com/jetsetilly/gopher3ds/hardware/gpu"
	"github.com/jetsetilly/gopher3ds/hardware/memory"
	"github.com/jetsetilly/gopher3ds/test"
)

// physical register addresses, as documented for the real hardware. the
// tests deliberately use the raw addresses rather than anything exported
// from the gpu package - the register file is being tested from the guest's
// point of view.
const (
	addrFill0Start = 0x1ef00010
	addrFill0End   = 0x1ef00014
	addrFill0Value = 0x1ef0001c
	addrFill1Start = 0x1ef00020
	addrFill1End   = 0x1ef00024
	addrFill1Value = 0x1ef0002c

	addrTransferInput     = 0x1ef00c00
	addrTransferOutput    = 0x1ef00c04
	addrTransferOutputDim = 0x1ef00c08
	addrTransferInputDim  = 0x1ef00c0c
	addrTransferFlags     = 0x1ef00c10
	addrTransferTrigger   = 0x1ef00c18

	addrCommandListSize    = 0x1ef018e0
	addrCommandListAddress = 0x1ef018e8
	addrCommandListTrigger = 0x1ef018f0
)

type stubClock struct {
	ticks uint64
}

func (clk *stubClock) Ticks() uint64 {
	return clk.ticks
}

func newTestGPU(t *testing.T) (*gpu.GPU, *memory.Memory) {
	t.Helper()

	mem := memory.NewMemory()
	g, err := gpu.NewGPU(mem, &stubClock{}, 60)
	if err != nil {
		t.Fatalf("GPU creation failed: %v", err)
	}

	return g, mem
}

// poke32 writes a 32bit register, failing the test on error.
func poke32(t *testing.T, g *gpu.GPU, address uint32, value uint32) {
	t.Helper()

	err := g.Write(address, gpu.Access32, value)
	test.ExpectedSuccess(t, err)
}

func TestNewGPU(t *testing.T) {
	mem := memory.NewMemory()

	g, err := gpu.NewGPU(mem, &stubClock{}, 60)
	test.ExpectedSuccess(t, err)
	if g == nil {
		t.Fatalf("GPU creation returned nil")
	}

	// a zero refresh rate is rejected
	g, err = gpu.NewGPU(mem, &stubClock{}, 0)
	test.ExpectedFailure(t, err)
	if g != nil {
		t.Fatalf("GPU creation unexpectedly succeeded")
	}

	// a nil address resolver is rejected
	g, err = gpu.NewGPU(nil, &stubClock{}, 60)
	test.ExpectedFailure(t, err)
	if g != nil {
		t.Fatalf("GPU creation unexpectedly succeeded")
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	g, _ := newTestGPU(t)

	// a register with no side effect bound to it
	const addr = gpu.RegisterBase + 0x0040

	poke32(t, g, addr, 0xcafe1234)

	v, err := g.Read(addr, gpu.Access32)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint32(0xcafe1234))

	// last register in the file
	const last = gpu.RegisterBase + (gpu.NumRegisters-1)*4

	poke32(t, g, last, 0xffffffff)

	v, err = g.Read(last, gpu.Access32)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint32(0xffffffff))
}

func TestUnsupportedAccessWidth(t *testing.T) {
	g, _ := newTestGPU(t)

	const addr = gpu.RegisterBase + 0x0040
	poke32(t, g, addr, 0x11111111)

	for _, width := range []gpu.AccessWidth{gpu.Access8, gpu.Access16, gpu.Access64} {
		err := g.Write(addr, width, 0x22222222)
		test.ExpectedFailure(t, err)
		test.Equate(t, curated.Is(err, gpu.UnsupportedAccess), true)

		_, err = g.Read(addr, width)
		test.ExpectedFailure(t, err)
		test.Equate(t, curated.Is(err, gpu.UnsupportedAccess), true)
	}

	// the failed writes must not have mutated the register
	v, err := g.Read(addr, gpu.Access32)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint32(0x11111111))
}

func TestOutOfRangeAccess(t *testing.T) {
	g, _ := newTestGPU(t)

	outside := []uint32{
		gpu.RegisterBase + gpu.NumRegisters*4,
		gpu.RegisterBase - 4,
		0x00000000,
		0xffffffff,
	}

	for _, addr := range outside {
		err := g.Write(addr, gpu.Access32, 0x1)
		test.ExpectedFailure(t, err)
		test.Equate(t, curated.Is(err, gpu.UnsupportedAccess), true)

		_, err = g.Read(addr, gpu.Access32)
		test.ExpectedFailure(t, err)
	}
}

func TestFramebufferDefaults(t *testing.T) {
	g, _ := newTestGPU(t)

	top := g.Framebuffer(gpu.DisplayTop)
	test.Equate(t, top.Width, uint32(240))
	test.Equate(t, top.Height, uint32(400))
	test.Equate(t, top.Stride, uint32(3*240))
	test.Equate(t, top.Format, gpu.RGB8)
	test.Equate(t, top.ActiveBuffer, uint32(0))
	test.Equate(t, top.AddressLeft1, uint32(0x181e6000))
	test.Equate(t, top.AddressLeft2, uint32(0x1822c800))
	test.Equate(t, top.AddressRight1, uint32(0x18273000))
	test.Equate(t, top.AddressRight2, uint32(0x182b9800))

	bottom := g.Framebuffer(gpu.DisplayBottom)
	test.Equate(t, bottom.Width, uint32(240))
	test.Equate(t, bottom.Height, uint32(320))
	test.Equate(t, bottom.AddressLeft1, uint32(0x1848f000))
	test.Equate(t, bottom.AddressRight1, uint32(0x184c7800))
}
