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
	"fmt"

	"github.com/jetsetilly/gopher3ds/curated"
	"github.com/jetsetilly/gopher3ds/logger"
)

// curated error patterns for conditions raised by the GPU. none of these is
// ever fatal - the register file tolerates malformed guest behaviour rather
// than bringing down the emulation.
const (
	// UnsupportedAccess is raised by a register access outside the register
	// range or with a width other than 32 bits.
	UnsupportedAccess = "gpu: unsupported access: %s of address %#08x"
)

// AccessWidth describes the width of a register access.
type AccessWidth int

// List of valid AccessWidth values. Only Access32 accesses succeed: the
// narrower and wider widths exist so that a bus implementation can express
// what the guest asked for and have it rejected uniformly.
const (
	Access8 AccessWidth = iota
	Access16
	Access32
	Access64
)

// Bits returns the number of bits in the access width.
func (w AccessWidth) Bits() int {
	switch w {
	case Access8:
		return 8
	case Access16:
		return 16
	case Access32:
		return 32
	case Access64:
		return 64
	}
	return 0
}

func (w AccessWidth) String() string {
	return fmt.Sprintf("%dbit access", w.Bits())
}

// GPU is the register file and the hardware engines behind it. All register
// and timing state is owned by the GPU instance - the lifetime of the
// instance is the lifetime of the emulation session.
//
// The GPU expects to be accessed from a single goroutine, serialised with
// the rest of guest execution. None of its functions block or span multiple
// time steps.
type GPU struct {
	mem  AddressResolver
	tick TickSource

	rend Renderer
	irq  InterruptReceiver
	cmds CommandListExecutor

	// the register file. the structured views in registers.go alias index
	// ranges of this array
	regs [NumRegisters]uint32

	// which engine, if any, a write to a register triggers
	effects [NumRegisters]effectID

	// raster state. see sync.go
	currentLine    uint32
	lastLineTicks  uint64
	lastFrameTicks uint64

	// derived once from the refresh rate at construction
	frameCycles uint64
	frameTicks  uint64
}

// base clock of the CPU in Hz. the refresh rate divides into this to give
// the length of a frame in cycles.
const baseClockRate = 268123480

// number of cycles per tick of the CPU's tick counter.
const ticksDivisor = 3

// NewGPU is the preferred method of initialisation of the GPU type. The
// refresh rate is in frames per second, with 60 being the value used by the
// real hardware.
//
// The mem and tick collaborators are required. The remaining collaborators
// are optional and are attached with the Add...() functions.
func NewGPU(mem AddressResolver, tick TickSource, refreshRate uint32) (*GPU, error) {
	if mem == nil {
		return nil, curated.Errorf("gpu: no address resolver supplied")
	}
	if tick == nil {
		tick = dummyTickSource{}
	}
	if refreshRate == 0 {
		return nil, curated.Errorf("gpu: refresh rate must not be zero")
	}

	g := &GPU{
		mem:         mem,
		tick:        tick,
		rend:        dummyRenderer{},
		irq:         dummyInterruptReceiver{},
		cmds:        dummyCommandListExecutor{},
		effects:     buildEffectsTable(),
		frameCycles: baseClockRate / uint64(refreshRate),
	}
	g.frameTicks = g.frameCycles / ticksDivisor

	g.Reset()

	return g, nil
}

// AddRenderer attaches an implementation of the Renderer interface,
// replacing any previous renderer.
func (g *GPU) AddRenderer(rend Renderer) {
	g.rend = rend
}

// AddInterruptReceiver attaches an implementation of the InterruptReceiver
// interface, replacing any previous receiver.
func (g *GPU) AddInterruptReceiver(irq InterruptReceiver) {
	g.irq = irq
}

// AddCommandListExecutor attaches an implementation of the
// CommandListExecutor interface, replacing any previous executor.
func (g *GPU) AddCommandListExecutor(cmds CommandListExecutor) {
	g.cmds = cmds
}

// Reset the register file and raster state to power-on values.
func (g *GPU) Reset() {
	for i := range g.regs {
		g.regs[i] = 0
	}

	g.currentLine = 0
	now := g.tick.Ticks()
	g.lastLineTicks = now
	g.lastFrameTicks = now

	// default framebuffer addresses (located in VRAM). these are the
	// addresses used by the system applets. a guest OS will almost certainly
	// replace them through the register file
	g.regs[regFramebufferTop+regFramebufferLeft1] = 0x181e6000
	g.regs[regFramebufferTop+regFramebufferLeft2] = 0x1822c800
	g.regs[regFramebufferTop+regFramebufferRight1] = 0x18273000
	g.regs[regFramebufferTop+regFramebufferRight2] = 0x182b9800
	g.regs[regFramebufferBottom+regFramebufferLeft1] = 0x1848f000
	g.regs[regFramebufferBottom+regFramebufferRight1] = 0x184c7800

	g.regs[regFramebufferTop+regFramebufferDim] = 400<<16 | 240
	g.regs[regFramebufferTop+regFramebufferStride] = 3 * 240
	g.regs[regFramebufferTop+regFramebufferFormat] = uint32(RGB8)
	g.regs[regFramebufferTop+regFramebufferSelect] = 0

	g.regs[regFramebufferBottom+regFramebufferDim] = 320<<16 | 240
	g.regs[regFramebufferBottom+regFramebufferStride] = 3 * 240
	g.regs[regFramebufferBottom+regFramebufferFormat] = uint32(RGB8)
	g.regs[regFramebufferBottom+regFramebufferSelect] = 0

	logger.Log("gpu", "reset OK")
}

// End the GPU emulation. The GPU should be considered unusable after End()
// has been called.
func (g *GPU) End() {
	logger.Log("gpu", "shutdown OK")
}

// FramePeriod returns the length of one frame, in CPU cycles and in ticks of
// the CPU's tick counter.
func (g *GPU) FramePeriod() (cycles uint64, ticks uint64) {
	return g.frameCycles, g.frameTicks
}

// Read the register at the physical address. Only 32bit reads of addresses
// inside the register range succeed. Any other access fails with the
// UnsupportedAccess pattern - the failure is logged and the returned value
// is meaningless.
func (g *GPU) Read(address uint32, width AccessWidth) (uint32, error) {
	idx := (address - RegisterBase) / 4

	if idx >= NumRegisters || width != Access32 {
		logger.Logf("gpu", "unknown read%d @ %#08x", width.Bits(), address)
		return 0, curated.Errorf(UnsupportedAccess, width, address)
	}

	return g.regs[idx], nil
}

// Write the register at the physical address. Only 32bit writes of addresses
// inside the register range succeed; anything else fails with the
// UnsupportedAccess pattern, is logged, and changes nothing.
//
// On success the value is stored and then, if the register is bound to a
// hardware engine and the engine's trigger condition holds, the engine runs
// to completion before Write() returns. An engine may read many sibling
// registers but it never rewrites the register that triggered it.
func (g *GPU) Write(address uint32, width AccessWidth, value uint32) error {
	idx := (address - RegisterBase) / 4

	if idx >= NumRegisters || width != Access32 {
		logger.Logf("gpu", "unknown write%d %#08x @ %#08x", width.Bits(), value, address)
		return curated.Errorf(UnsupportedAccess, width, address)
	}

	g.regs[idx] = value

	switch g.effects[idx] {
	case effectFill0:
		g.memoryFill(0)

	case effectFill1:
		g.memoryFill(1)

	case effectTransfer:
		if value&0x1 == 0x1 {
			g.displayTransfer()
		}

	case effectCommandList:
		if value&0x1 == 0x1 {
			g.processCommandList()
		}
	}

	return nil
}
