// This file is part of Spindle.
//
// Spindle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Spindle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Spindle.  If not, see <https://www.gnu.org/licenses/>.

// Package performance measures how fast the emulation can run relative to
// the 10MHz of the real silicon, optionally collecting CPU and memory
// profiles while it does so.
package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spindlesim/spindle/controller"
	"github.com/spindlesim/spindle/hardware"
)

// sentinal error returned by the Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator. the supplied script, if any, is
// queued as bus traffic so the measurement covers the receiver as well as
// the free-running parts of the chip.
//
// Emulation will run for the specified duration, after a short lead time,
// and will create a cpu and/or memory profile as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, script string, halfPeriod int, duration string) error {
	per := hardware.NewPeripheral()
	drv := controller.NewDriver(halfPeriod)

	if script != "" {
		if err := drv.QueueScript(script); err != nil {
			return fmt.Errorf("performance: %w", err)
		}
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	var startTick uint64

	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals
		// false when the lead time has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool)

		// force a one second leadtime to let the runtime settle down and
		// then restart the timer for the specified duration
		go func() {
			time.AfterFunc(1*time.Second, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// only check the timer channel every PerformanceBrake ticks.
		// checking is relatively expensive
		performanceBrake := 0

		// drive the peripheral directly rather than through per.Run().
		// the driver steps the peripheral itself, putting the idle levels
		// on the lines once the queue is exhausted
		for {
			drv.Tick(per)

			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0

				select {
				case v := <-timerChan:
					if v {
						return timedOut
					}

					// lead time has concluded. the measurement starts here
					startTick = per.TickCount
				default:
				}
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	numTicks := per.TickCount - startTick
	rate, speedup := CalcRate(numTicks, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.0f ticks/sec (%d ticks in %.2f seconds) %.1fx real time\n",
		rate, numTicks, dur.Seconds(), speedup)))

	return nil
}
