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

// Package controller is the other end of the SPI bus: it plays the part of
// the external bus controller, turning queued transactions into tick-by-tick
// levels on the three bus lines. it is used by the run mode, the debugger
// and the test suite.
//
// Timing follows the bench that exercised the original silicon: the chip
// select is asserted, each bit is driven on COPI for a half period with SCLK
// low and held for a half period with SCLK high, and the chip select is
// released with SCLK back at idle. the half period is measured in system
// clock ticks and must be long enough for the two-stage synchroniser on the
// far side to settle; anything greater than two ticks is workable, real
// benches are far slower.
package controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spindlesim/spindle/hardware"
	"github.com/spindlesim/spindle/hardware/registers"
)

// Levels is the state of the three bus lines for one system clock tick.
type Levels struct {
	SCLK bool
	NCS  bool
	COPI bool
}

// the bus at rest: chip select released, clock and data low.
var idle = Levels{SCLK: false, NCS: true, COPI: false}

// DefaultHalfPeriod is the half period, in system clock ticks, used by the
// original cocotb bench (5us against a 10MHz clock).
const DefaultHalfPeriod = 50

// Driver produces per-tick line levels for queued SPI transactions.
type Driver struct {
	// HalfPeriod is the number of ticks SCLK spends in each of its two
	// states per bit
	HalfPeriod int

	pending []Levels
}

// NewDriver is the preferred method of initialisation for the Driver type.
// a halfPeriod of zero or less selects DefaultHalfPeriod.
func NewDriver(halfPeriod int) *Driver {
	if halfPeriod <= 0 {
		halfPeriod = DefaultHalfPeriod
	}
	return &Driver{
		HalfPeriod: halfPeriod,
		pending:    make([]Levels, 0, 64),
	}
}

func (drv *Driver) push(numTicks int, lv Levels) {
	for i := 0; i < numTicks; i++ {
		drv.pending = append(drv.pending, lv)
	}
}

// QueueIdle holds the bus at rest for the specified number of ticks.
func (drv *Driver) QueueIdle(numTicks int) {
	drv.push(numTicks, idle)
}

// QueueFrame clocks out the low numBits bits of the supplied value, most
// significant of those bits first, inside a single chip select assertion.
// sixteen bits is a well-formed frame; anything else is deliberately
// malformed.
func (drv *Driver) QueueFrame(bits uint32, numBits int) {
	// assert chip select ahead of the first clock, as the bench does
	drv.push(2, Levels{NCS: false})

	for i := numBits - 1; i >= 0; i-- {
		b := (bits>>uint(i))&0x01 == 0x01
		drv.push(drv.HalfPeriod, Levels{SCLK: false, NCS: false, COPI: b})
		drv.push(drv.HalfPeriod, Levels{SCLK: true, NCS: false, COPI: b})
	}

	// SCLK back to idle before the chip select is released. the release is
	// followed by enough idle time for the synchroniser to observe it
	drv.push(1, Levels{NCS: false})
	drv.QueueIdle(2 * drv.HalfPeriod)
}

// QueueWrite queues a well-formed write transaction.
func (drv *Driver) QueueWrite(addr registers.Address, data uint8) {
	drv.QueueFrame(0x8000|uint32(addr)<<8|uint32(data), 16)
}

// QueueRead queues a read transaction. the peripheral has no read path so a
// read is expected to have no effect whatsoever; it exists for exercising
// exactly that.
func (drv *Driver) QueueRead(addr registers.Address, data uint8) {
	drv.QueueFrame(uint32(addr)<<8|uint32(data), 16)
}

// Pending returns the number of ticks of bus activity still queued.
func (drv *Driver) Pending() int {
	return len(drv.pending)
}

// Next pops the levels for the next tick. when the queue is empty the idle
// levels are returned, along with false.
func (drv *Driver) Next() (Levels, bool) {
	if len(drv.pending) == 0 {
		return idle, false
	}
	lv := drv.pending[0]
	drv.pending = drv.pending[1:]
	return lv, true
}

// Tick drives the peripheral for one system clock: the next queued levels
// (or the idle levels) are placed on the lines and the peripheral is
// stepped. returns false once the queue is exhausted.
func (drv *Driver) Tick(per *hardware.Peripheral) bool {
	lv, ok := drv.Next()
	per.SetLines(lv.SCLK, lv.NCS, lv.COPI)
	per.Step()
	return ok
}

// Drive runs the peripheral until the queue is exhausted.
func (drv *Driver) Drive(per *hardware.Peripheral) {
	for drv.Tick(per) {
	}
}

// QueueScript parses and queues a list of transactions. entries are
// separated by semicolons or newlines:
//
//	w ADDR DATA    write transaction
//	r ADDR DATA    read transaction (a no-op on the peripheral)
//	raw BITS N     N bit frame, taken from the low bits of BITS
//	idle N         N ticks of bus idle
//
// numbers are parsed with a leading 0x for hexadecimal, 0b for binary, etc.
func (drv *Driver) QueueScript(script string) error {
	for _, stmt := range strings.FieldsFunc(script, func(r rune) bool {
		return r == ';' || r == '\n'
	}) {
		flds := strings.Fields(stmt)
		if len(flds) == 0 {
			continue
		}

		op := strings.ToLower(flds[0])

		// comments are allowed in script files
		if strings.HasPrefix(op, "#") {
			continue
		}

		switch op {
		case "w", "r":
			if len(flds) != 3 {
				return fmt.Errorf("script: %s requires an address and a data byte", op)
			}
			addr, err := strconv.ParseUint(flds[1], 0, 8)
			if err != nil || addr > 0x7f {
				return fmt.Errorf("script: bad address %q", flds[1])
			}
			data, err := strconv.ParseUint(flds[2], 0, 8)
			if err != nil {
				return fmt.Errorf("script: bad data byte %q", flds[2])
			}
			if op == "w" {
				drv.QueueWrite(registers.Address(addr), uint8(data))
			} else {
				drv.QueueRead(registers.Address(addr), uint8(data))
			}

		case "raw":
			if len(flds) != 3 {
				return fmt.Errorf("script: raw requires a bit pattern and a count")
			}
			bits, err := strconv.ParseUint(flds[1], 0, 32)
			if err != nil {
				return fmt.Errorf("script: bad bit pattern %q", flds[1])
			}
			numBits, err := strconv.ParseUint(flds[2], 10, 6)
			if err != nil || numBits == 0 || numBits > 32 {
				return fmt.Errorf("script: bad bit count %q", flds[2])
			}
			drv.QueueFrame(uint32(bits), int(numBits))

		case "idle":
			if len(flds) != 2 {
				return fmt.Errorf("script: idle requires a tick count")
			}
			numTicks, err := strconv.ParseUint(flds[1], 10, 32)
			if err != nil {
				return fmt.Errorf("script: bad idle count %q", flds[1])
			}
			drv.QueueIdle(int(numTicks))

		default:
			return fmt.Errorf("script: unrecognised statement %q", stmt)
		}
	}

	return nil
}
