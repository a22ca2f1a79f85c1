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

// Package registers implements the five byte-wide control registers that are
// the externally visible state of the peripheral. the registers have no
// structural relationship beyond the address map; they are written one at a
// time by a committed SPI transaction and hold their value until the next
// write or a reset.
package registers

import "fmt"

// Address of a register in the seven bit SPI address space.
type Address uint8

// The address map. the enable and PWM-enable registers are each one half of
// a conceptual sixteen bit register, split over the two output banks.
const (
	EnableLo    Address = 0x00
	EnableHi    Address = 0x01
	PWMEnableLo Address = 0x02
	PWMEnableHi Address = 0x03
	PWMDuty     Address = 0x04
)

func (addr Address) String() string {
	switch addr {
	case EnableLo:
		return "EN_LO"
	case EnableHi:
		return "EN_HI"
	case PWMEnableLo:
		return "PWM_EN_LO"
	case PWMEnableHi:
		return "PWM_EN_HI"
	case PWMDuty:
		return "PWM_DUTY"
	}
	return fmt.Sprintf("unmapped (%#02x)", uint8(addr))
}

// File is the register file. fields are exported for the benefit of the
// debugger and the front panel; emulated writes must go through Write() so
// that the address decode stays in one place.
type File struct {
	EnableLo    uint8
	EnableHi    uint8
	PWMEnableLo uint8
	PWMEnableHi uint8
	PWMDuty     uint8
}

// NewFile is the preferred method of initialisation for the File type.
func NewFile() *File {
	return &File{}
}

func (fl *File) String() string {
	return fmt.Sprintf("en=%02x%02x pwm_en=%02x%02x duty=%02x",
		fl.EnableHi, fl.EnableLo,
		fl.PWMEnableHi, fl.PWMEnableLo,
		fl.PWMDuty,
	)
}

// Write the data byte to the addressed register. returns false if the
// address is unmapped, in which case no register has changed. the decode is
// exhaustive: there is no default register.
func (fl *File) Write(addr Address, data uint8) bool {
	switch addr {
	case EnableLo:
		fl.EnableLo = data
	case EnableHi:
		fl.EnableHi = data
	case PWMEnableLo:
		fl.PWMEnableLo = data
	case PWMEnableHi:
		fl.PWMEnableHi = data
	case PWMDuty:
		fl.PWMDuty = data
	default:
		return false
	}
	return true
}

// Read the addressed register. the emulated bus has no read path; this is
// for the benefit of the debugger.
func (fl *File) Read(addr Address) (uint8, bool) {
	switch addr {
	case EnableLo:
		return fl.EnableLo, true
	case EnableHi:
		return fl.EnableHi, true
	case PWMEnableLo:
		return fl.PWMEnableLo, true
	case PWMEnableHi:
		return fl.PWMEnableHi, true
	case PWMDuty:
		return fl.PWMDuty, true
	}
	return 0, false
}

// Reset zeroes every register.
func (fl *File) Reset() {
	*fl = File{}
}
