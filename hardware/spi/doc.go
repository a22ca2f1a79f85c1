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

// Package spi implements the receiving side of the peripheral's SPI bus.
//
// The three bus lines are asynchronous to the system clock and are brought
// into the clock domain by the Trace type, an explicit model of a two-stage
// flip-flop synchroniser. the Receiver type shifts a bit on every rising
// edge of the synchronised SPI clock, while the chip select is asserted,
// and commits (or discards) the frame when the chip select is released.
//
// The wire format is sixteen bits, most significant first: a write flag, a
// seven bit register address and an eight bit payload. only write frames of
// exactly sixteen bits have any effect. there is no read path and no error
// reporting; a frame is either committed in full or it never happened.
package spi
