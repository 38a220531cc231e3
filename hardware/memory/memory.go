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

// Package memory implements the physical memory map of the console, or at
// least the parts of it the graphics hardware works against: main memory
// (FCRAM) and video memory (VRAM).
//
// Physical addresses are translated to host byte slices with the Resolve()
// function. The returned slice carries the length of the remainder of the
// enclosing region, so a caller iterating over the slice can never leave the
// region however inconsistent its own idea of the buffer's size is.
package memory

import (
	"encoding/binary"

	"github.com/jetsetilly/gopher3ds/curated"
)

// curated error patterns for conditions raised by the memory package.
const (
	// AddressResolutionFailure is raised when a physical address falls in no
	// known memory region.
	AddressResolutionFailure = "memory: no region for physical address %#08x"
)

// origins and sizes of the physical memory regions.
const (
	VRAMOrigin = 0x18000000
	VRAMSize   = 0x00600000

	FCRAMOrigin = 0x20000000
	FCRAMSize   = 0x08000000
)

// region is a contiguous range of physical addresses with host backing.
type region struct {
	label  string
	origin uint32
	memtop uint32
	data   []byte
}

func (r *region) contains(address uint32) bool {
	return address >= r.origin && address <= r.memtop
}

// Memory is the physical memory map. Regions are allocated once at creation
// and live for the whole of the emulation session.
type Memory struct {
	vram  region
	fcram region

	regions [2]*region
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{
		vram: region{
			label:  "VRAM",
			origin: VRAMOrigin,
			memtop: VRAMOrigin + VRAMSize - 1,
			data:   make([]byte, VRAMSize),
		},
		fcram: region{
			label:  "FCRAM",
			origin: FCRAMOrigin,
			memtop: FCRAMOrigin + FCRAMSize - 1,
			data:   make([]byte, FCRAMSize),
		},
	}
	mem.regions = [2]*region{&mem.vram, &mem.fcram}
	return mem
}

// Resolve a physical address to a host byte slice. The slice extends from
// the resolved address to the end of the enclosing region.
func (mem *Memory) Resolve(address uint32) ([]byte, error) {
	for _, r := range mem.regions {
		if r.contains(address) {
			return r.data[address-r.origin:], nil
		}
	}
	return nil, curated.Errorf(AddressResolutionFailure, address)
}

// Peek the 32bit word at the physical address. Useful for tests and
// debugging tools; the emulation itself works with Resolve().
func (mem *Memory) Peek(address uint32) (uint32, error) {
	buf, err := mem.Resolve(address)
	if err != nil {
		return 0, err
	}
	if len(buf) < 4 {
		return 0, curated.Errorf(AddressResolutionFailure, address)
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// Poke the 32bit word at the physical address. The counterpart of Peek().
func (mem *Memory) Poke(address uint32, value uint32) error {
	buf, err := mem.Resolve(address)
	if err != nil {
		return err
	}
	if len(buf) < 4 {
		return curated.Errorf(AddressResolutionFailure, address)
	}
	binary.LittleEndian.PutUint32(buf, value)
	return nil
}
