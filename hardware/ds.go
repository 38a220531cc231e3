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

package hardware

import (
	"github.com/jetsetilly/gopher3ds/hardware/gpu"
	"github.com/jetsetilly/gopher3ds/hardware/memory"
)

// DS is the main container for the emulated components of the console.
type DS struct {
	Mem *memory.Memory
	GPU *gpu.GPU

	// the clock stands in for the CPU cores, which are not emulated yet. it
	// is the GPU's tick source
	clock *clock
}

// clock is a synthetic tick counter implementing gpu.TickSource.
type clock struct {
	ticks uint64
}

func (clk *clock) Ticks() uint64 {
	return clk.ticks
}

// NewDS creates a new DS and everything associated with the hardware. The
// refresh rate is in frames per second.
func NewDS(refreshRate uint32) (*DS, error) {
	ds := &DS{
		Mem:   memory.NewMemory(),
		clock: &clock{},
	}

	var err error
	ds.GPU, err = gpu.NewGPU(ds.Mem, ds.clock, refreshRate)
	if err != nil {
		return nil, err
	}

	return ds, nil
}

// Step advances the synthetic clock by the specified number of ticks and
// synchronises the GPU. The reschedule argument is passed through to
// gpu.Advance().
func (ds *DS) Step(ticks uint64, reschedule bool) {
	ds.clock.ticks += ticks
	ds.GPU.Advance(reschedule)
}

// End the emulation gently. The DS should be considered unusable after End()
// has been called.
func (ds *DS) End() {
	ds.GPU.End()
}
