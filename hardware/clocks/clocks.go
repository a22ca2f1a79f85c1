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

// Package clocks defines the constant values that describe the clock tree of
// the emulated peripheral.
//
// The peripheral is driven by a single 10MHz system clock. The SPI clock is
// not part of the clock tree at all; it arrives on an input pin and is
// resampled, which is the entire reason for the synchroniser in the spi
// package.
package clocks

// Master is the frequency of the system clock in Hz. every call to the
// peripheral's Step() function represents one cycle of this clock.
const Master = 10000000

// The PWM carrier is produced by dividing the master clock with a fixed
// prescaler and an 8-bit counter.
const (
	PWMPrescale = 13
	PWMSteps    = 256
)

// PWMCarrier is the resulting carrier frequency in Hz. the original silicon
// was benched against a 3kHz target with a ±1% tolerance.
const PWMCarrier = Master / (PWMPrescale * PWMSteps)
