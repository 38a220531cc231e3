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

package gpu

import (
	"encoding/binary"
	"math/bits"

	"github.com/jetsetilly/gopher3ds/logger"
)

// memoryFill runs one of the two memory fill units. The fill is modelled as
// instantaneous: the unit keeps no "in progress" state between calls.
//
// A unit with a zero start address register is disabled and the call is a
// no-op. Note that the size register plays no part in the fill - only the
// start and end addresses do. Whether the real hardware consults it is
// unverified and the behaviour is kept as observed.
func (g *GPU) memoryFill(unit int) {
	config := g.fillConfig(unit)

	if config.start == 0 {
		return
	}

	buf, err := g.mem.Resolve(config.startAddress())
	if err != nil {
		logger.Logf("gpu", "memory fill: %v", err)
		return
	}

	// length of the fill, clamped to the resolved region so that an
	// inconsistent end address cannot push the fill past the region
	length := 0
	if config.endAddress() > config.startAddress() {
		length = int(config.endAddress() - config.startAddress())
	}
	if length > len(buf) {
		length = len(buf)
	}

	// the fill value is stored with its bytes reversed. the framebuffer byte
	// order differs from the natural order of the register value
	value := bits.ReverseBytes32(config.value)

	for i := 0; i+4 <= length; i += 4 {
		binary.LittleEndian.PutUint32(buf[i:], value)
	}

	logger.Logf("gpu", "memory fill from %#08x to %#08x", config.startAddress(), config.endAddress())
}
