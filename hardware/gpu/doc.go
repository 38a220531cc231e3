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

// Package gpu implements the memory mapped register interface of the
// console's graphics hardware. The register file covers the physical
// addresses from RegisterBase for NumRegisters 32bit words.
//
// Registers are accessed with the Read() and Write() functions. A write is
// not always plain storage: some registers are bound to a hardware engine
// and writing them triggers a side effect - a bulk memory fill, a pixel
// format conversion between two physical buffers, or the dispatch of a
// command list to the external command processor. The engine reads its
// operands (addresses, dimensions, formats) from sibling registers at the
// moment of the trigger.
//
// The package does not execute command lists and it does not present
// anything to the user. Those responsibilities belong to the
// CommandListExecutor and Renderer implementations attached to the GPU type.
// Similarly, raw memory is reached through an AddressResolver and interrupts
// are delivered through an InterruptReceiver.
//
// The progress of the raster is approximated by the Advance() function,
// which should be called once per emulated time step. See the commentary for
// Advance() for a discussion of the accuracy of the approximation.
package gpu
