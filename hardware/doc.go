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

// Package hardware is the root of the emulated chip: an SPI-controlled PWM
// peripheral. the Peripheral type gathers the receiver, the register file,
// the carrier generator and the output pins, and steps them in lockstep with
// the 10MHz system clock. one call to Step() is one clock cycle; everything
// the chip does happens inside that call, in a fixed order, with a bounded
// amount of work.
//
// The three SPI lines are the only externally mutated state. they are set
// with SetLines() and may change at any point relative to the clock; the
// synchroniser in the spi package is what makes that safe.
package hardware
