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

// Package pins derives the levels of the two output banks from the register
// file and the PWM carrier. a pin drives low when its enable bit is clear;
// high when enabled; and follows the carrier when its PWM-enable bit is also
// set.
package pins

import (
	"fmt"

	"github.com/spindlesim/spindle/hardware/registers"
)

// Pins holds the levels of the sixteen output pins, eight per bank. the
// names UO and UIO are from the pad ring of the original silicon: the
// dedicated output bank and the bidirectional bank (permanently configured
// as outputs in this design).
type Pins struct {
	UO  uint8
	UIO uint8
}

// NewPins is the preferred method of initialisation for the Pins type.
func NewPins() *Pins {
	return &Pins{}
}

func (pn *Pins) String() string {
	return fmt.Sprintf("uo=%#02x uio=%#02x", pn.UO, pn.UIO)
}

// gate an eight pin bank. with the carrier high every enabled pin is high,
// whether it is PWM-gated or not. with the carrier low the PWM-gated pins
// drop out of the enable mask.
func gate(enable, pwmEnable uint8, carrier bool) uint8 {
	if carrier {
		return enable
	}
	return enable &^ pwmEnable
}

// Step recomputes both banks. the pins are purely combinational on the
// register file and the carrier; Step exists so the update point in the tick
// sequence is explicit.
func (pn *Pins) Step(fl *registers.File, carrier bool) {
	pn.UO = gate(fl.EnableLo, fl.PWMEnableLo, carrier)
	pn.UIO = gate(fl.EnableHi, fl.PWMEnableHi, carrier)
}

// Reset drives every pin low.
func (pn *Pins) Reset() {
	pn.UO = 0
	pn.UIO = 0
}
