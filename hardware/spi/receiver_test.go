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

package spi_test

import (
	"testing"

	"github.com/spindlesim/spindle/hardware/registers"
	"github.com/spindlesim/spindle/hardware/spi"
	"github.com/spindlesim/spindle/test"
)

// clock the low numBits of bits into the receiver, most significant first,
// with a half period of two ticks. the chip select is asserted for the
// duration and released at the end, followed by enough idle for the
// synchroniser to see it.
func clockFrame(rx *spi.Receiver, bits uint32, numBits int) {
	rx.Step(false, false, false)
	rx.Step(false, false, false)

	for i := numBits - 1; i >= 0; i-- {
		b := (bits>>uint(i))&0x01 == 0x01
		rx.Step(false, false, b)
		rx.Step(false, false, b)
		rx.Step(true, false, b)
		rx.Step(true, false, b)
	}

	rx.Step(false, false, false)
	for i := 0; i < 4; i++ {
		rx.Step(false, true, false)
	}
}

func TestValidWriteFrame(t *testing.T) {
	regs := registers.NewFile()
	rx := spi.NewReceiver(regs)

	// the worked example from the bench: flag=1, address=0x04, payload=0xa5
	clockFrame(rx, 0b1_0000100_10100101, 16)

	test.Equate(t, regs.PWMDuty, 0xa5)
	test.Equate(t, regs.EnableLo, 0x00)
	test.Equate(t, regs.EnableHi, 0x00)
	test.Equate(t, regs.PWMEnableLo, 0x00)
	test.Equate(t, regs.PWMEnableHi, 0x00)

	// frame state cleared for the next transaction
	test.Equate(t, rx.Frame, 0)
	test.Equate(t, rx.BitCt, 0)
}

func TestReadFrameIsNoOp(t *testing.T) {
	regs := registers.NewFile()
	rx := spi.NewReceiver(regs)

	// flag=0, address=0x02, payload=0xff. reads are unimplemented in the
	// silicon so nothing must change
	clockFrame(rx, 0b0_0000010_11111111, 16)
	test.Equate(t, regs.PWMEnableLo, 0x00)
	test.Equate(t, *regs == (registers.File{}), true)
}

func TestUnmappedAddress(t *testing.T) {
	regs := registers.NewFile()
	rx := spi.NewReceiver(regs)

	clockFrame(rx, 0b1_0110000_10101010, 16)
	test.Equate(t, *regs == (registers.File{}), true)
}

func TestShortFrame(t *testing.T) {
	regs := registers.NewFile()
	rx := spi.NewReceiver(regs)

	// chip select released after only twelve bits
	clockFrame(rx, 0b1000_0100_1010, 12)
	test.Equate(t, *regs == (registers.File{}), true)
	test.Equate(t, rx.BitCt, 0)
}

func TestOverlongFrame(t *testing.T) {
	regs := registers.NewFile()
	rx := spi.NewReceiver(regs)

	// chip select held for twenty edges. the counter must not wrap into
	// validity
	clockFrame(rx, 0b1_0000100_10100101_0000, 20)
	test.Equate(t, *regs == (registers.File{}), true)
}

func TestBackToBackFrames(t *testing.T) {
	regs := registers.NewFile()
	rx := spi.NewReceiver(regs)

	clockFrame(rx, 0b1_0000000_00010010, 16)
	clockFrame(rx, 0b1_0000001_00110100, 16)

	// both writes take effect, each exactly once
	test.Equate(t, regs.EnableLo, 0x12)
	test.Equate(t, regs.EnableHi, 0x34)
	test.Equate(t, regs.PWMEnableLo, 0x00)
}

func TestCommitTiming(t *testing.T) {
	regs := registers.NewFile()
	rx := spi.NewReceiver(regs)

	// a full frame but with the chip select still asserted
	rx.Step(false, false, false)
	rx.Step(false, false, false)
	for i := 15; i >= 0; i-- {
		b := (uint32(0b1_0000100_10100101)>>uint(i))&0x01 == 0x01
		rx.Step(false, false, b)
		rx.Step(false, false, b)
		rx.Step(true, false, b)
		rx.Step(true, false, b)
	}
	rx.Step(false, false, false)
	test.Equate(t, rx.BitCt, 16)
	test.Equate(t, regs.PWMDuty, 0x00)

	// the commit fires on the tick the synchroniser first sees the chip
	// select high and the write is observable from the next tick
	rx.Step(false, true, false)
	test.Equate(t, regs.PWMDuty, 0xa5)
	test.Equate(t, rx.BitCt, 0)
}

func TestResetMidFrame(t *testing.T) {
	regs := registers.NewFile()
	rx := spi.NewReceiver(regs)

	// half a frame of all-ones and then a reset
	rx.Step(false, false, false)
	for i := 0; i < 8; i++ {
		rx.Step(false, false, true)
		rx.Step(false, false, true)
		rx.Step(true, false, true)
		rx.Step(true, false, true)
	}
	rx.Reset()
	test.Equate(t, rx.Frame, 0)
	test.Equate(t, rx.BitCt, 0)

	// releasing the chip select after the reset must not commit anything.
	// the reset returned the synchronised chip select to its idle (high)
	// level so there is no deassertion edge to see
	for i := 0; i < 4; i++ {
		rx.Step(false, true, false)
	}
	test.Equate(t, *regs == (registers.File{}), true)

	// a subsequent valid frame behaves as if sent to a fresh system
	clockFrame(rx, 0b1_0000011_01010101, 16)
	test.Equate(t, regs.PWMEnableHi, 0x55)
}

func TestIdleClockEdges(t *testing.T) {
	regs := registers.NewFile()
	rx := spi.NewReceiver(regs)

	// SCLK edges with the chip select released must not accumulate bits
	for i := 0; i < 8; i++ {
		rx.Step(false, true, true)
		rx.Step(true, true, true)
	}
	test.Equate(t, rx.BitCt, 0)
	test.Equate(t, rx.Frame, 0)
}
