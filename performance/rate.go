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

package performance

import "github.com/spindlesim/spindle/hardware/clocks"

// CalcRate takes a number of emulated ticks and a duration (in seconds) and
// returns the tick rate and that rate as a multiple of the 10MHz the real
// silicon runs at.
func CalcRate(numTicks uint64, duration float64) (rate float64, speedup float64) {
	rate = float64(numTicks) / duration
	speedup = rate / float64(clocks.Master)
	return rate, speedup
}
