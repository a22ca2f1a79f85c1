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

// The continueCheck function passed to Run() is called on every tick and so
// can be expensive in aggregate. PerformanceBrake is a standard value that
// can be used to filter out expensive code paths within a continueCheck
// implementation. For example:
//
//	brake++
//	if brake >= hardware.PerformanceBrake {
//		brake = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 10000

// Run sets the emulation running as quickly as possible, until continueCheck
// returns false or an error. a nil continueCheck means run forever.
func (per *Peripheral) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		per.Step()

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForTicks advances the emulation by the specified number of system
// clocks. useful for tests and for the debugger's STEP command.
func (per *Peripheral) RunForTicks(numTicks int) {
	for i := 0; i < numTicks; i++ {
		per.Step()
	}
}
