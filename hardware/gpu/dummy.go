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

// the dummy collaborators are used in place of any collaborator that has not
// been attached. they allow the rest of the package to call collaborators
// without checking for nil.

type dummyRenderer struct{}

func (dummyRenderer) SwapBuffers() {}

type dummyInterruptReceiver struct{}

func (dummyInterruptReceiver) SignalInterrupt(_ Interrupt) {}

type dummyCommandListExecutor struct{}

func (dummyCommandListExecutor) ProcessCommandList(_ []byte) {}

type dummyTickSource struct{}

func (dummyTickSource) Ticks() uint64 { return 0 }
