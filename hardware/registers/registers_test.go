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

package registers_test

import (
	"testing"

	"github.com/spindlesim/spindle/hardware/registers"
	"github.com/spindlesim/spindle/test"
)

func TestAddressDecode(t *testing.T) {
	fl := registers.NewFile()

	test.ExpectedSuccess(t, fl.Write(registers.EnableLo, 0x11))
	test.ExpectedSuccess(t, fl.Write(registers.EnableHi, 0x22))
	test.ExpectedSuccess(t, fl.Write(registers.PWMEnableLo, 0x33))
	test.ExpectedSuccess(t, fl.Write(registers.PWMEnableHi, 0x44))
	test.ExpectedSuccess(t, fl.Write(registers.PWMDuty, 0x55))

	test.Equate(t, fl.EnableLo, 0x11)
	test.Equate(t, fl.EnableHi, 0x22)
	test.Equate(t, fl.PWMEnableLo, 0x33)
	test.Equate(t, fl.PWMEnableHi, 0x44)
	test.Equate(t, fl.PWMDuty, 0x55)

	// a write touches exactly one register
	fl.Write(registers.PWMDuty, 0xaa)
	test.Equate(t, fl.EnableLo, 0x11)
	test.Equate(t, fl.PWMDuty, 0xaa)
}

func TestUnmappedAddresses(t *testing.T) {
	fl := registers.NewFile()

	// the decode is exhaustive over the mapped addresses; everything else
	// in the seven bit space is a no-op
	for addr := 0x05; addr <= 0x7f; addr++ {
		test.ExpectedFailure(t, fl.Write(registers.Address(addr), 0xff))
	}
	test.Equate(t, *fl == (registers.File{}), true)
}

func TestRead(t *testing.T) {
	fl := registers.NewFile()
	fl.Write(registers.PWMDuty, 0x99)

	v, ok := fl.Read(registers.PWMDuty)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, v, 0x99)

	_, ok = fl.Read(registers.Address(0x30))
	test.ExpectedFailure(t, ok)
}

func TestReset(t *testing.T) {
	fl := registers.NewFile()
	fl.Write(registers.EnableLo, 0xff)
	fl.Write(registers.PWMDuty, 0xff)

	fl.Reset()
	test.Equate(t, *fl == (registers.File{}), true)
}

func TestAddressStrings(t *testing.T) {
	test.Equate(t, registers.PWMDuty.String(), "PWM_DUTY")
	test.Equate(t, registers.Address(0x30).String(), "unmapped (0x30)")
}
