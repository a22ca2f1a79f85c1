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

// Package pwm implements the carrier generator for the output pins. a fixed
// prescaler divides the 10MHz system clock and feeds an 8-bit counter,
// giving a carrier of a little over 3kHz (see the clocks package).
package pwm

import (
	"fmt"

	"github.com/spindlesim/spindle/hardware/clocks"
)

// PWM is the carrier generator. one instance serves every pin; the per-pin
// decision about whether to use the carrier belongs to the pins package.
type PWM struct {
	// TicksRemaining is the number of system clocks before the counter next
	// increments. reloaded from clocks.PWMPrescale
	TicksRemaining int

	// Counter is the 8-bit ramp the duty cycle is compared against. wraps
	// naturally at 256
	Counter uint8

	out bool
}

// NewPWM is the preferred method of initialisation for the PWM type.
func NewPWM() *PWM {
	pw := &PWM{}
	pw.Reset()
	return pw
}

func (pw *PWM) String() string {
	return fmt.Sprintf("pwm: counter=%#02x remn=%d out=%v", pw.Counter, pw.TicksRemaining, pw.out)
}

// Step advances the generator by one system clock. duty is the current value
// of the duty cycle register and takes effect immediately, not at the end of
// the carrier period.
//
// duty values 0x00 and 0xff pin the output low and high respectively. the
// comparison alone would give 0xff a duty of 255/256 so it is special-cased,
// matching the silicon.
func (pw *PWM) Step(duty uint8) {
	if pw.TicksRemaining <= 0 {
		pw.TicksRemaining = clocks.PWMPrescale
		pw.Counter++
	}
	pw.TicksRemaining--

	pw.out = duty == 0xff || pw.Counter < duty
}

// Output is the current level of the carrier.
func (pw *PWM) Output() bool {
	return pw.out
}

// Reset returns the generator to the top of its period with the output low.
func (pw *PWM) Reset() {
	pw.TicksRemaining = clocks.PWMPrescale
	pw.Counter = 0
	pw.out = false
}
