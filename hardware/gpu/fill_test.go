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

	"github.com/jetsetilly/gopher3ds/hardware/memory"
	"github.com/jetsetilly/gopher3ds/test"
)

func TestMemoryFill(t *testing.T) {
	g, mem := newTestGPU(t)

	const start = memory.VRAMOrigin
	const end = start + 32

	// the address registers store the physical address shifted right by
	// three places
	poke32(t, g, addrFill0Start, start>>3)
	poke32(t, g, addrFill0End, end>>3)

	// writing the value register triggers the fill
	poke32(t, g, addrFill0Value, 0x11223344)

	// every word in [start, end) holds the byte-reversed fill value
	for addr := uint32(start); addr < end; addr += 4 {
		v, err := mem.Peek(addr)
		test.ExpectedSuccess(t, err)
		test.Equate(t, v, uint32(0x44332211))
	}

	// the word at the end address is outside the fill
	v, err := mem.Peek(end)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint32(0))
}

func TestMemoryFillSecondUnit(t *testing.T) {
	g, mem := newTestGPU(t)

	const start = memory.VRAMOrigin + 0x1000

	poke32(t, g, addrFill1Start, start>>3)
	poke32(t, g, addrFill1End, (start+8)>>3)
	poke32(t, g, addrFill1Value, 0xaabbccdd)

	v, err := mem.Peek(start)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint32(0xddccbbaa))

	v, err = mem.Peek(start + 4)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint32(0xddccbbaa))
}

func TestMemoryFillDisabledUnit(t *testing.T) {
	g, mem := newTestGPU(t)

	// a zero start address disables the unit: writing the value register
	// performs no fill
	poke32(t, g, addrFill0Start, 0)
	poke32(t, g, addrFill0End, (memory.VRAMOrigin+32)>>3)
	poke32(t, g, addrFill0Value, 0x11223344)

	v, err := mem.Peek(memory.VRAMOrigin)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint32(0))
}

func TestMemoryFillEndBeforeStart(t *testing.T) {
	g, mem := newTestGPU(t)

	// an end address at or before the start address fills nothing
	poke32(t, g, addrFill0Start, (memory.VRAMOrigin+32)>>3)
	poke32(t, g, addrFill0End, memory.VRAMOrigin>>3)
	poke32(t, g, addrFill0Value, 0x11223344)

	for addr := uint32(memory.VRAMOrigin); addr <= memory.VRAMOrigin+32; addr += 4 {
		v, err := mem.Peek(addr)
		test.ExpectedSuccess(t, err)
		test.Equate(t, v, uint32(0))
	}
}

func TestMemoryFillUnresolvableAddress(t *testing.T) {
	g, _ := newTestGPU(t)

	// an address in no known region degrades to a no-op, not a fault
	poke32(t, g, addrFill0Start, 0x10000000>>3)
	poke32(t, g, addrFill0End, 0x10000020>>3)
	poke32(t, g, addrFill0Value, 0x11223344)
}

func TestMemoryFillClampedToRegion(t *testing.T) {
	g, mem := newTestGPU(t)

	// an end address beyond the end of the region must not run the fill
	// outside the region
	const start = memory.VRAMOrigin + memory.VRAMSize - 8

	poke32(t, g, addrFill0Start, start>>3)
	poke32(t, g, addrFill0End, (memory.VRAMOrigin+memory.VRAMSize+0x1000)>>3)
	poke32(t, g, addrFill0Value, 0x01020304)

	v, err := mem.Peek(start)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint32(0x04030201))

	v, err = mem.Peek(start + 4)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, uint32(0x04030201))
}
