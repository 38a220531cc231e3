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

// Package performance measures the performance of the emulation core. The
// hardware is run headless, as fast as possible, for a set duration and the
// achieved frame rate is reported.
package performance

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	"github.com/jetsetilly/gopher3ds/curated"
	"github.com/jetsetilly/gopher3ds/hardware"
	"github.com/jetsetilly/gopher3ds/hardware/gpu"
)

// name of the file the CPU profile is written to.
const profileName = "performance_cpu.profile"

// counters is a headless renderer/interrupt receiver that only counts the
// events it receives.
type counters struct {
	swaps int
	pdc0  int
	pdc1  int
}

func (ct *counters) SwapBuffers() {
	ct.swaps++
}

func (ct *counters) SignalInterrupt(irq gpu.Interrupt) {
	switch irq {
	case gpu.IntPDC0:
		ct.pdc0++
	case gpu.IntPDC1:
		ct.pdc1++
	}
}

// Check the performance of the emulation core. The core is advanced one
// scanline period per step, every step counting as a guest reschedule, for
// the specified duration (parsed with time.ParseDuration()).
func Check(output io.Writer, profile bool, refreshRate uint32, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	ds, err := hardware.NewDS(refreshRate)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer ds.End()

	ct := &counters{}
	ds.GPU.AddRenderer(ct)
	ds.GPU.AddInterruptReceiver(ct)

	if profile {
		f, err := os.Create(profileName)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	_, frameTicks := ds.GPU.FramePeriod()
	lineTicks := frameTicks / uint64(ds.GPU.Framebuffer(gpu.DisplayTop).Height)

	steps := 0
	start := time.Now()
	end := start.Add(dur)

	for {
		ds.Step(lineTicks, true)
		steps++

		// only consult the wall clock occasionally
		if steps%1024 == 0 && time.Now().After(end) {
			break // for loop
		}
	}

	elapsed := time.Since(start).Seconds()
	if elapsed <= 0 {
		return curated.Errorf("performance: duration too short to measure")
	}

	fmt.Fprintf(output, "%d steps in %.2fs\n", steps, elapsed)
	fmt.Fprintf(output, "%.2f fps (%d frames, %d scanline interrupts)\n",
		float64(ct.pdc1)/elapsed, ct.pdc1, ct.pdc0)

	return nil
}
