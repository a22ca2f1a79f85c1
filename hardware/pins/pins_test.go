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

package pins_test

import (
	"testing"

	"github.com/spindlesim/spindle/hardware/pins"
	"github.com/spindlesim/spindle/hardware/registers"
	"github.com/spindlesim/spindle/test"
)

func TestGating(t *testing.T) {
	fl := registers.NewFile()
	pn := pins.NewPins()

	// nothing enabled: everything low, carrier or not
	pn.Step(fl, true)
	test.Equate(t, pn.UO, 0x00)
	test.Equate(t, pn.UIO, 0x00)

	// enabled pins with PWM disabled drive a steady high
	fl.Write(registers.EnableLo, 0xf0)
	pn.Step(fl, false)
	test.Equate(t, pn.UO, 0xf0)
	pn.Step(fl, true)
	test.Equate(t, pn.UO, 0xf0)

	// a PWM-gated pin follows the carrier; its neighbours don't
	fl.Write(registers.EnableLo, 0xf1)
	fl.Write(registers.PWMEnableLo, 0x01)
	pn.Step(fl, true)
	test.Equate(t, pn.UO, 0xf1)
	pn.Step(fl, false)
	test.Equate(t, pn.UO, 0xf0)

	// PWM-enable without enable is still silent
	fl.Write(registers.PWMEnableHi, 0xff)
	pn.Step(fl, true)
	test.Equate(t, pn.UIO, 0x00)

	// the banks are independent
	fl.Write(registers.EnableHi, 0x0c)
	fl.Write(registers.PWMEnableHi, 0x08)
	pn.Step(fl, false)
	test.Equate(t, pn.UIO, 0x04)
	test.Equate(t, pn.UO, 0xf0)
}

func TestReset(t *testing.T) {
	fl := registers.NewFile()
	pn := pins.NewPins()

	fl.Write(registers.EnableLo, 0xff)
	pn.Step(fl, true)
	test.Equate(t, pn.UO, 0xff)

	pn.Reset()
	test.Equate(t, pn.UO, 0x00)
	test.Equate(t, pn.UIO, 0x00)
}
