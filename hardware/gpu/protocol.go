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

// Interrupt identifies one of the interrupts raised by the display
// controller as the raster progresses.
type Interrupt int

// List of valid Interrupt values.
const (
	// PDC0 is raised at the end of every scanline.
	IntPDC0 Interrupt = iota

	// PDC1 is raised at the vertical blank, once per frame.
	IntPDC1
)

func (i Interrupt) String() string {
	switch i {
	case IntPDC0:
		return "PDC0"
	case IntPDC1:
		return "PDC1"
	}
	return "unknown"
}

// AddressResolver translates a physical address to a host byte slice. The
// returned slice extends from the resolved address to the end of the
// enclosing memory region - engines must never access memory beyond the
// length of the slice, whatever the guest's register values suggest.
type AddressResolver interface {
	Resolve(address uint32) ([]byte, error)
}

// Renderer implementations present the completed frame to the user, or
// otherwise work with it. The active framebuffer is always assumed to be
// complete and ready to render.
type Renderer interface {
	SwapBuffers()
}

// InterruptReceiver implementations deliver raster interrupts to the guest.
// Delivery is fire-and-forget: the GPU does not wait for, or get to know
// about, the outcome.
type InterruptReceiver interface {
	SignalInterrupt(Interrupt)
}

// CommandListExecutor implementations consume a command list that the guest
// has dispatched through the register file. The GPU performs no
// interpretation of the buffer contents and failures are handled entirely by
// the executor.
type CommandListExecutor interface {
	ProcessCommandList(buffer []byte)
}

// TickSource implementations report the progress of the emulated CPU. The
// returned value must be monotonically non-decreasing.
type TickSource interface {
	Ticks() uint64
}
