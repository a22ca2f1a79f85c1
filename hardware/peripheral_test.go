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

package hardware_test

import (
	"testing"

	"github.com/spindlesim/spindle/controller"
	"github.com/spindlesim/spindle/hardware"
	"github.com/spindlesim/spindle/hardware/clocks"
	"github.com/spindlesim/spindle/hardware/registers"
	"github.com/spindlesim/spindle/test"
)

// the bus timing used by the tests. shorter than the bench's half period of
// 50 but still comfortably slower than the synchroniser.
const halfPeriod = 4

func TestBenchTransactions(t *testing.T) {
	per := hardware.NewPeripheral()
	drv := controller.NewDriver(halfPeriod)

	// the sequence from the bench that exercised the original silicon
	drv.QueueWrite(registers.EnableLo, 0xf0)
	drv.Drive(per)
	test.Equate(t, per.Pins.UO, 0xf0)

	drv.QueueWrite(registers.EnableHi, 0xcc)
	drv.Drive(per)
	test.Equate(t, per.Pins.UIO, 0xcc)

	// invalid address: no register or pin changes
	drv.QueueWrite(registers.Address(0x30), 0xaa)
	drv.Drive(per)
	test.Equate(t, per.Regs.EnableLo, 0xf0)
	test.Equate(t, per.Regs.EnableHi, 0xcc)
	test.Equate(t, per.Pins.UO, 0xf0)

	// read transactions are no-ops
	drv.QueueRead(registers.EnableLo, 0xbe)
	drv.Drive(per)
	test.Equate(t, per.Pins.UO, 0xf0)
}

func TestPWMDutyOnPin(t *testing.T) {
	per := hardware.NewPeripheral()
	drv := controller.NewDriver(halfPeriod)

	// enable pin 0 and gate it with the carrier
	drv.QueueWrite(registers.EnableLo, 0x01)
	drv.QueueWrite(registers.PWMEnableLo, 0x01)
	drv.QueueWrite(registers.PWMDuty, 0x00)
	drv.Drive(per)

	period := clocks.PWMPrescale * clocks.PWMSteps

	// 0% duty: pin stays low for a full carrier period
	high := 0
	for i := 0; i < period; i++ {
		per.Step()
		if per.Pins.UO&0x01 == 0x01 {
			high++
		}
	}
	test.Equate(t, high, 0)

	// 100% duty: pin stays high
	drv.QueueWrite(registers.PWMDuty, 0xff)
	drv.Drive(per)
	high = 0
	for i := 0; i < period; i++ {
		per.Step()
		if per.Pins.UO&0x01 == 0x01 {
			high++
		}
	}
	test.Equate(t, high, period)

	// 50% duty, measured over a full period between rising edges
	drv.QueueWrite(registers.PWMDuty, 0x80)
	drv.Drive(per)

	// wait for a rising edge on the pin
	prev := per.Pins.UO&0x01 == 0x01
	for i := 0; i < 2*period; i++ {
		per.Step()
		now := per.Pins.UO&0x01 == 0x01
		if now && !prev {
			break
		}
		prev = now
	}

	high = 0
	for i := 0; i < period; i++ {
		if per.Pins.UO&0x01 == 0x01 {
			high++
		}
		per.Step()
	}
	test.Equate(t, high, period/2)

	// the un-gated enabled pins were solid high throughout
	test.Equate(t, per.Regs.EnableLo, 0x01)
}

func TestRegisterPersistence(t *testing.T) {
	per := hardware.NewPeripheral()
	drv := controller.NewDriver(halfPeriod)

	drv.QueueWrite(registers.PWMDuty, 0xa5)
	drv.Drive(per)
	test.Equate(t, per.Regs.PWMDuty, 0xa5)

	// values persist indefinitely between writes
	per.RunForTicks(100000)
	test.Equate(t, per.Regs.PWMDuty, 0xa5)

	// back to back frames targeting different registers both take effect,
	// the second not disturbing the first
	drv.QueueWrite(registers.EnableLo, 0x12)
	drv.QueueWrite(registers.EnableHi, 0x34)
	drv.Drive(per)
	test.Equate(t, per.Regs.EnableLo, 0x12)
	test.Equate(t, per.Regs.EnableHi, 0x34)
	test.Equate(t, per.Regs.PWMDuty, 0xa5)
}

func TestMalformedFrames(t *testing.T) {
	per := hardware.NewPeripheral()
	drv := controller.NewDriver(halfPeriod)

	// under-long and over-long frames are discarded at deassertion
	drv.QueueFrame(0b1_0000100_1010, 12)
	drv.QueueFrame(0b1_0000100_10100101_1111, 20)
	drv.Drive(per)
	test.Equate(t, *per.Regs == (registers.File{}), true)

	// and a well-formed frame straight after is unaffected
	drv.QueueWrite(registers.PWMDuty, 0x42)
	drv.Drive(per)
	test.Equate(t, per.Regs.PWMDuty, 0x42)
}

func TestReset(t *testing.T) {
	per := hardware.NewPeripheral()
	drv := controller.NewDriver(halfPeriod)

	drv.QueueWrite(registers.EnableLo, 0xff)
	drv.QueueWrite(registers.PWMDuty, 0x80)
	drv.Drive(per)
	test.Equate(t, per.Regs.EnableLo, 0xff)

	// reset in the middle of a transaction: drive half a frame then stop
	drv.QueueWrite(registers.PWMEnableLo, 0xff)
	for i := 0; i < halfPeriod*16; i++ {
		drv.Tick(per)
	}
	per.Reset()

	// drain the rest of the aborted transaction. nothing must commit, not
	// the aborted frame and not the earlier writes
	drv.Drive(per)
	test.Equate(t, *per.Regs == (registers.File{}), true)
	test.Equate(t, per.Pins.UO, 0x00)

	// a valid frame after reset behaves as on a fresh system
	drv.QueueWrite(registers.PWMDuty, 0xa5)
	drv.Drive(per)
	test.Equate(t, per.Regs.PWMDuty, 0xa5)
}

func TestRun(t *testing.T) {
	per := hardware.NewPeripheral()

	ct := 0
	err := per.Run(func() (bool, error) {
		ct++
		return ct < 1000, nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, per.TickCount, 1000)
}
