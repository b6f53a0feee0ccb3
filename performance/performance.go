// This file is part of GopherSMS.
//
// GopherSMS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherSMS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherSMS.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware"
	"github.com/jetsetilly/gophersms/performance/limiter"
)

// Check the performance of the emulator. The console should have a cartridge
// attached.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument. If capped is true the emulation is limited to the nominal frame
// rate of the console region.
func Check(output io.Writer, profile Profile, con *hardware.Console, capped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var lim *limiter.Limiter
	if capped {
		lim = limiter.NewLimiter(con.VDP.Region().FramesPerSecond())
		defer lim.Stop()
	}

	var timesUp atomic.Bool
	var startFrame int
	var start time.Time

	runner := func() error {
		t := time.AfterFunc(dur, func() {
			timesUp.Store(true)
		})
		defer t.Stop()

		startFrame = con.VDP.Frame()
		start = time.Now()

		for !timesUp.Load() {
			if err := con.RunFrame(); err != nil {
				return err
			}
			if lim != nil {
				lim.Wait()
			}
		}

		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	elapsed := time.Since(start).Seconds()
	numFrames := con.VDP.Frame() - startFrame
	fps, accuracy := CalcFPS(con.VDP.Region(), numFrames, elapsed)
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, elapsed, accuracy)

	return nil
}
