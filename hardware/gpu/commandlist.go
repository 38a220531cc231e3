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
	"github.com/jetsetilly/gopher3ds/logger"
)

// processCommandList resolves the configured command buffer and hands it to
// the attached CommandListExecutor. The size register counts in units of
// eight bytes. Interpretation of the buffer contents is entirely the
// executor's responsibility.
func (g *GPU) processCommandList() {
	config := g.commandListConfig()

	buf, err := g.mem.Resolve(config.address)
	if err != nil {
		logger.Logf("gpu", "command list: %v", err)
		return
	}

	size := int(config.size) << 3
	if size > len(buf) {
		size = len(buf)
	}

	g.cmds.ProcessCommandList(buf[:size])
}
