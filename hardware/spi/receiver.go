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

package spi

import (
	"fmt"

	"github.com/spindlesim/spindle/hardware/registers"
	"github.com/spindlesim/spindle/logger"
)

const logTag = "spi"

// layout of a sixteen bit frame. bit 15 is the write flag, bits 14 to 8 are
// the register address and the low byte is the payload.
const (
	maskWriteFlag = 0x8000
	maskAddress   = 0x7f00
	maskPayload   = 0x00ff
	frameLength   = 16
)

// Receiver accepts an externally clocked SPI write transaction and applies
// the decoded payload to the register file. it is the receiving half of a
// three wire bus: SCLK, an active-low chip select and COPI.
//
// The receiver is entirely passive between transactions. a transaction is
// whatever happens between the chip select being asserted and deasserted;
// the frame is committed, or silently discarded, at the moment of
// deassertion.
type Receiver struct {
	regs *registers.File

	// the three bus lines, as seen through the two-stage synchroniser
	SCLK Trace
	NCS  Trace
	COPI Trace

	// Frame is the shift register. bits arrive most-significant first so the
	// oldest bit is pushed towards bit 15
	Frame uint16

	// BitCt is the number of bits accepted since the chip select was
	// asserted. deliberately not clamped: a value over sixteen at commit
	// time marks the frame as over-long and therefore invalid
	BitCt int
}

// NewReceiver is the preferred method of initialisation for the Receiver
// type. writes from committed frames are applied to the supplied register
// file.
func NewReceiver(regs *registers.File) *Receiver {
	rx := &Receiver{
		regs: regs,
		SCLK: NewTrace("SCLK", false),
		NCS:  NewTrace("nCS", true),
		COPI: NewTrace("COPI", false),
	}
	return rx
}

func (rx *Receiver) String() string {
	if rx.NCS.Hi() {
		return "spi: idle"
	}
	return fmt.Sprintf("spi: receiving (%d bits, frame %#04x)", rx.BitCt, rx.Frame)
}

// Step advances the receiver by one system clock. the three arguments are
// the raw, asynchronous levels on the bus lines.
func (rx *Receiver) Step(sclk, ncs, copi bool) {
	rx.SCLK.Tick(sclk)
	rx.NCS.Tick(ncs)
	rx.COPI.Tick(copi)

	// chip select returning inactive ends the transaction. committing and
	// shifting are mutually exclusive because nothing is shifted on this
	// tick and the frame state is cleared before the chip select can be
	// observed low again
	if rx.NCS.Rising() {
		rx.commit()
		rx.Frame = 0
		rx.BitCt = 0
		return
	}

	// SCLK edges with the chip select inactive belong to some other device
	// on the bus
	if rx.NCS.Hi() {
		return
	}

	if rx.SCLK.Rising() {
		rx.Frame <<= 1
		if rx.COPI.Stable() {
			rx.Frame |= 0x01
		}
		rx.BitCt++
	}
}

// commit decodes the accumulated frame and applies it to the register file.
// every malformed frame is dropped without any observable effect; the
// silicon has no error channel so neither do we.
func (rx *Receiver) commit() {
	if rx.BitCt != frameLength {
		logger.Logf(logTag, "discarding frame of %d bits", rx.BitCt)
		return
	}

	if rx.Frame&maskWriteFlag != maskWriteFlag {
		logger.Log(logTag, "discarding read transaction (not implemented)")
		return
	}

	addr := registers.Address((rx.Frame & maskAddress) >> 8)
	data := uint8(rx.Frame & maskPayload)

	if !rx.regs.Write(addr, data) {
		logger.Logf(logTag, "write to unmapped address %#02x", uint8(addr))
		return
	}

	logger.Logf(logTag, "%s <- %#02x", addr, data)
}

// Reset abandons any partial frame and returns the bus lines to their idle
// levels. it can be called at any point in the tick sequence, including in
// the middle of a transaction.
func (rx *Receiver) Reset() {
	rx.Frame = 0
	rx.BitCt = 0
	rx.SCLK.Reset()
	rx.NCS.Reset()
	rx.COPI.Reset()
}
