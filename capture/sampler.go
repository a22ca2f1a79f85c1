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

package capture

// lineSampler converts a list of transition times into a level that can be
// sampled at arbitrary, monotonically increasing times. this is how a
// capture, which only records edges, is turned back into the per-tick levels
// the emulation wants.
type lineSampler struct {
	level       bool
	transitions []float64
	idx         int
}

func newLineSampler(initial bool, transitions []float64) *lineSampler {
	return &lineSampler{
		level:       initial,
		transitions: transitions,
	}
}

// sample the level of the line at time t. the level toggles on every
// recorded transition at or before t. sample times must not go backwards.
func (ls *lineSampler) sample(t float64) bool {
	for ls.idx < len(ls.transitions) && t >= ls.transitions[ls.idx] {
		ls.level = !ls.level
		ls.idx++
	}
	return ls.level
}

// done returns true once every recorded transition has been consumed.
func (ls *lineSampler) done() bool {
	return ls.idx >= len(ls.transitions)
}
