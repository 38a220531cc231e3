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
	"github.com/jetsetilly/gopher3ds/curated"
	"github.com/jetsetilly/gopher3ds/logger"
)

// curated error pattern for the display transfer engine.
const (
	// UnsupportedPixelFormat is raised when a display transfer names an
	// input or output pixel format with no implemented conversion.
	UnsupportedPixelFormat = "gpu: unsupported pixel format: %s %s"
)

// displayTransfer converts and copies a rectangular pixel buffer between two
// physical memory regions, changing pixel format on the way. Like the memory
// fill, the transfer is modelled as instantaneous.
//
// Only RGBA8 input and RGB8 output are implemented. A pixel with an
// unsupported input format reads as transparent black; a pixel with an
// unsupported output format is skipped, leaving the destination bytes
// unmodified. Either condition is logged once per transfer, not once per
// pixel, and the transfer continues for the remaining pixels.
func (g *GPU) displayTransfer() {
	config := g.transferConfig()

	src, err := g.mem.Resolve(config.inputAddress)
	if err != nil {
		logger.Logf("gpu", "display transfer: %v", err)
		return
	}

	dst, err := g.mem.Resolve(config.outputAddress)
	if err != nil {
		logger.Logf("gpu", "display transfer: %v", err)
		return
	}

	badInput := false
	badOutput := false

	for y := uint32(0); y < config.outputHeight; y++ {
		for x := uint32(0); x < config.outputWidth; x++ {
			var r, gr, b, a uint8

			switch config.inputFormat {
			case RGBA8:
				// the channel-to-slot assignment below looks reversed but it
				// reproduces the wiring of the real hardware as observed.
				// see also the RGB8 encode below
				offset := x*4 + y*config.inputWidth*4
				if int(offset)+4 <= len(src) {
					r = src[offset]    // blue
					gr = src[offset+1] // green
					b = src[offset+2]  // red
					a = src[offset+3]  // alpha
				}

			default:
				badInput = true
			}

			// the alpha slot is decoded but no output format uses it yet
			_ = a

			switch config.outputFormat {
			case RGB8:
				offset := x*3 + y*config.outputWidth*3
				if int(offset)+3 <= len(dst) {
					dst[offset] = r    // blue
					dst[offset+1] = gr // green
					dst[offset+2] = b  // red
				}

			default:
				badOutput = true
			}
		}
	}

	if badInput {
		logger.Log("gpu", curated.Errorf(UnsupportedPixelFormat, "input", config.inputFormat).Error())
	}
	if badOutput {
		logger.Log("gpu", curated.Errorf(UnsupportedPixelFormat, "output", config.outputFormat).Error())
	}

	logger.Logf("gpu", "display transfer: %d bytes from %#08x (%dx%d) to %#08x (%dx%d), output format %s",
		config.outputHeight*config.outputWidth*4,
		config.inputAddress, config.inputWidth, config.inputHeight,
		config.outputAddress, config.outputWidth, config.outputHeight,
		config.outputFormat)
}
