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

// RegisterBase is the physical address of the first GPU register.
const RegisterBase = 0x1ef00000

// NumRegisters is the number of 32bit words in the register file. The file
// covers the physical addresses from RegisterBase to
// RegisterBase+(NumRegisters*4).
const NumRegisters = 0x1000

// word offsets into the register file. the named registers are the ones the
// emulation works with; the gaps between them are plain storage.
const (
	// the two memory fill units (PSC0 and PSC1). a write to the value
	// register is what triggers the fill
	regFill0Start = 0x0004
	regFill0End   = 0x0005
	regFill0Size  = 0x0006
	regFill0Value = 0x0007
	regFill1Start = 0x0008
	regFill1End   = 0x0009
	regFill1Size  = 0x000a
	regFill1Value = 0x000b

	// the two framebuffer blocks (PDC0 and PDC1)
	regFramebufferTop    = 0x0117
	regFramebufferBottom = 0x0157

	// register offsets relative to a framebuffer block
	regFramebufferDim    = 0x0000
	regFramebufferLeft1  = 0x0003
	regFramebufferLeft2  = 0x0004
	regFramebufferFormat = 0x0005
	regFramebufferSelect = 0x0007
	regFramebufferStride = 0x000d
	regFramebufferRight1 = 0x000e
	regFramebufferRight2 = 0x000f

	// the display transfer engine
	regTransferInput     = 0x0300
	regTransferOutput    = 0x0301
	regTransferOutputDim = 0x0302
	regTransferInputDim  = 0x0303
	regTransferFlags     = 0x0304
	regTransferTrigger   = 0x0306

	// the command processor
	regCommandListSize    = 0x0638
	regCommandListAddress = 0x063a
	regCommandListTrigger = 0x063c
)

// decodeAddress converts the stored form of a physical address register to
// the real physical address. the fill, transfer and command list registers
// all store addresses right-shifted by three places. the framebuffer
// addresses are stored in full and do not need decoding.
func decodeAddress(register uint32) uint32 {
	return register << 3
}

// PixelFormat describes the layout of a pixel in a framebuffer or transfer
// buffer. The values correspond to the register encoding used by the
// hardware.
type PixelFormat uint32

// List of valid PixelFormat values. Only RGBA8 (as transfer input) and RGB8
// (as transfer output and framebuffer format) have implemented conversions.
const (
	RGBA8 PixelFormat = iota
	RGB8
	RGB565
	RGB5A1
	RGBA4
)

func (f PixelFormat) String() string {
	switch f {
	case RGBA8:
		return "RGBA8"
	case RGB8:
		return "RGB8"
	case RGB565:
		return "RGB565"
	case RGB5A1:
		return "RGB5A1"
	case RGBA4:
		return "RGBA4"
	}
	return "unknown"
}

// Display identifies one of the console's two screens.
type Display int

// List of valid Display values.
const (
	DisplayTop Display = iota
	DisplayBottom
)

// FramebufferConfig is a structured view of one of the two framebuffer
// register blocks. It is a copy of the register contents at the time of the
// call, with the dimension and format fields decoded.
type FramebufferConfig struct {
	Width  uint32
	Height uint32

	// two pairs of stereo left/right buffer addresses. which pair is in use
	// is selected by ActiveBuffer
	AddressLeft1  uint32
	AddressLeft2  uint32
	AddressRight1 uint32
	AddressRight2 uint32

	Format       PixelFormat
	ActiveBuffer uint32
	Stride       uint32
}

// Framebuffer returns a structured view of the framebuffer registers for the
// specified display.
func (g *GPU) Framebuffer(display Display) FramebufferConfig {
	base := uint32(regFramebufferTop)
	if display == DisplayBottom {
		base = regFramebufferBottom
	}

	dim := g.regs[base+regFramebufferDim]

	return FramebufferConfig{
		Width:         dim & 0xffff,
		Height:        dim >> 16,
		AddressLeft1:  g.regs[base+regFramebufferLeft1],
		AddressLeft2:  g.regs[base+regFramebufferLeft2],
		AddressRight1: g.regs[base+regFramebufferRight1],
		AddressRight2: g.regs[base+regFramebufferRight2],
		Format:        PixelFormat(g.regs[base+regFramebufferFormat] & 0x7),
		ActiveBuffer:  g.regs[base+regFramebufferSelect] & 0x1,
		Stride:        g.regs[base+regFramebufferStride],
	}
}

// fillConfig is a structured view of one of the two memory fill units.
type fillConfig struct {
	start uint32
	end   uint32
	size  uint32
	value uint32
}

func (g *GPU) fillConfig(unit int) fillConfig {
	base := uint32(regFill0Start)
	if unit == 1 {
		base = regFill1Start
	}

	return fillConfig{
		start: g.regs[base],
		end:   g.regs[base+1],
		size:  g.regs[base+2],
		value: g.regs[base+3],
	}
}

func (c fillConfig) startAddress() uint32 {
	return decodeAddress(c.start)
}

func (c fillConfig) endAddress() uint32 {
	return decodeAddress(c.end)
}

// transferConfig is a structured view of the display transfer engine's
// registers, with addresses, dimensions and formats decoded.
type transferConfig struct {
	inputAddress  uint32
	outputAddress uint32
	inputWidth    uint32
	inputHeight   uint32
	outputWidth   uint32
	outputHeight  uint32
	inputFormat   PixelFormat
	outputFormat  PixelFormat
}

func (g *GPU) transferConfig() transferConfig {
	inputDim := g.regs[regTransferInputDim]
	outputDim := g.regs[regTransferOutputDim]
	flags := g.regs[regTransferFlags]

	return transferConfig{
		inputAddress:  decodeAddress(g.regs[regTransferInput]),
		outputAddress: decodeAddress(g.regs[regTransferOutput]),
		inputWidth:    inputDim & 0xffff,
		inputHeight:   inputDim >> 16,
		outputWidth:   outputDim & 0xffff,
		outputHeight:  outputDim >> 16,
		inputFormat:   PixelFormat((flags >> 8) & 0x7),
		outputFormat:  PixelFormat((flags >> 12) & 0x7),
	}
}

// commandListConfig is a structured view of the command processor registers.
type commandListConfig struct {
	address uint32
	size    uint32
}

func (g *GPU) commandListConfig() commandListConfig {
	return commandListConfig{
		address: decodeAddress(g.regs[regCommandListAddress]),
		size:    g.regs[regCommandListSize],
	}
}

// effectID tags a register index with the engine that a write to the
// register triggers.
type effectID uint8

const (
	effectNone effectID = iota
	effectFill0
	effectFill1
	effectTransfer
	effectCommandList
)

// buildEffectsTable returns the table mapping register index to triggered
// engine. built once at construction time.
func buildEffectsTable() [NumRegisters]effectID {
	var effects [NumRegisters]effectID
	effects[regFill0Value] = effectFill0
	effects[regFill1Value] = effectFill1
	effects[regTransferTrigger] = effectTransfer
	effects[regCommandListTrigger] = effectCommandList
	return effects
}
