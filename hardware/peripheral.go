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

package hardware

import (
	"strings"

	"github.com/spindlesim/spindle/hardware/pins"
	"github.com/spindlesim/spindle/hardware/pwm"
	"github.com/spindlesim/spindle/hardware/registers"
	"github.com/spindlesim/spindle/hardware/spi"
)

// Peripheral is the main container for the emulated components of the chip.
// it is used for all aspects of emulation: debugging sessions, capture
// replay and regular runs.
type Peripheral struct {
	Regs *registers.File
	RX   *spi.Receiver
	PWM  *pwm.PWM
	Pins *pins.Pins

	// the raw levels on the three input pins, as most recently driven by
	// the external bus controller. they may change at any point between
	// ticks, which is why nothing downstream of the synchroniser ever sees
	// them directly
	sclk bool
	ncs  bool
	copi bool

	// number of system clocks since the last reset
	TickCount uint64
}

// NewPeripheral creates a new Peripheral and everything associated with the
// hardware. the chip comes out of reset with the bus idle.
func NewPeripheral() *Peripheral {
	regs := registers.NewFile()

	per := &Peripheral{
		Regs: regs,
		RX:   spi.NewReceiver(regs),
		PWM:  pwm.NewPWM(),
		Pins: pins.NewPins(),
	}
	per.Reset()

	return per
}

func (per *Peripheral) String() string {
	s := strings.Builder{}
	s.WriteString(per.Regs.String())
	s.WriteString("\n")
	s.WriteString(per.Pins.String())
	s.WriteString("\n")
	s.WriteString(per.RX.String())
	return s.String()
}

// SetLines drives the raw input pins. the levels persist until the next call
// and are sampled by every intervening Step().
func (per *Peripheral) SetLines(sclk, ncs, copi bool) {
	per.sclk = sclk
	per.ncs = ncs
	per.copi = copi
}

// Lines returns the raw levels currently driven on the input pins.
func (per *Peripheral) Lines() (sclk, ncs, copi bool) {
	return per.sclk, per.ncs, per.copi
}

// Step advances the emulation by one cycle of the 10MHz system clock. the
// order of evaluation mirrors the silicon: the receiver first (it may commit
// a register write), then the carrier generator, then the output pins. a
// register write is therefore observable on the pins from the following
// tick.
func (per *Peripheral) Step() {
	per.RX.Step(per.sclk, per.ncs, per.copi)
	per.PWM.Step(per.Regs.PWMDuty)
	per.Pins.Step(per.Regs, per.PWM.Output())
	per.TickCount++
}

// Reset emulates the reset pin. all registers and all in-flight receiver
// state are zeroed; a partial SPI frame is discarded and will never commit.
// the raw line levels are left alone because the external controller, not
// the chip, owns them.
func (per *Peripheral) Reset() {
	per.Regs.Reset()
	per.RX.Reset()
	per.PWM.Reset()
	per.Pins.Reset()
	per.TickCount = 0
}
