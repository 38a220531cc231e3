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

// Advance the GPU's idea of time. It should be called once per emulated time
// step. The reschedule argument says whether the guest scheduler performed a
// thread reschedule since the last call.
//
// The frame is swapped after a frame's worth of CPU ticks has elapsed. This
// assumes the active framebuffer in memory is always complete and ready to
// render.
//
// A vertical blank cannot be predicted accurately from emulated CPU
// execution alone, so the scanline and vblank interrupts are instead
// signalled at thread reschedule points. Testing shows that guest software,
// both commercial and homebrew, synchronises acceptably this way. It is an
// approximation, not a hardware accurate timer.
func (g *GPU) Advance(reschedule bool) {
	ticks := g.tick.Ticks()

	// update the frame
	if ticks-g.lastFrameTicks > g.frameTicks {
		g.rend.SwapBuffers()
		g.lastFrameTicks = ticks
	}

	if !reschedule {
		return
	}

	height := uint64(g.Framebuffer(DisplayTop).Height)
	if height == 0 {
		// the guest has zeroed the framebuffer dimensions. no scanline
		// period can be derived so no interrupts are signalled
		return
	}

	// synchronise scanline
	if ticks-g.lastLineTicks >= g.frameTicks/height {
		g.irq.SignalInterrupt(IntPDC0)
		g.currentLine++
		g.lastLineTicks = ticks
	}

	// synchronise frame
	if uint64(g.currentLine) >= height {
		g.currentLine = 0
		g.irq.SignalInterrupt(IntPDC1)
	}
}
