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

package pwm_test

import (
	"testing"

	"github.com/spindlesim/spindle/hardware/clocks"
	"github.com/spindlesim/spindle/hardware/pwm"
	"github.com/spindlesim/spindle/test"
)

// one full carrier period in system clocks.
const period = clocks.PWMPrescale * clocks.PWMSteps

func TestCarrierFrequency(t *testing.T) {
	// the bench that exercised the original silicon required the carrier to
	// be within 1% of 3kHz
	test.Equate(t, clocks.PWMCarrier >= 2970, true)
	test.Equate(t, clocks.PWMCarrier <= 3030, true)

	pw := pwm.NewPWM()

	// distance between the first two rising edges of the carrier is one full
	// period
	var edges []int
	prev := pw.Output()
	for i := 0; i < 3*period; i++ {
		pw.Step(0x80)
		if pw.Output() && !prev {
			edges = append(edges, i)
		}
		prev = pw.Output()
	}
	test.Equate(t, len(edges) >= 2, true)
	test.Equate(t, edges[1]-edges[0], period)
}

func TestDutyCycle(t *testing.T) {
	measure := func(duty uint8) int {
		pw := pwm.NewPWM()
		high := 0
		for i := 0; i < period; i++ {
			pw.Step(duty)
			if pw.Output() {
				high++
			}
		}
		return high
	}

	// 0x00 is always low and 0xff always high, not 0/256 and 255/256
	test.Equate(t, measure(0x00), 0)
	test.Equate(t, measure(0xff), period)

	// 50% duty
	test.Equate(t, measure(0x80), period/2)

	// minimum non-zero duty is one counter step
	test.Equate(t, measure(0x01), clocks.PWMPrescale)
}

func TestDutyChangeTakesEffectImmediately(t *testing.T) {
	pw := pwm.NewPWM()

	// counter is at zero so any non-zero duty drives the output high
	pw.Step(0x01)
	test.Equate(t, pw.Output(), true)

	// and dropping the duty to zero kills the output mid-period
	pw.Step(0x00)
	test.Equate(t, pw.Output(), false)
}

func TestReset(t *testing.T) {
	pw := pwm.NewPWM()
	for i := 0; i < 100; i++ {
		pw.Step(0xff)
	}
	test.Equate(t, pw.Output(), true)

	pw.Reset()
	test.Equate(t, pw.Counter, 0)
	test.Equate(t, pw.Output(), false)
}
