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

// Trace records the state of an electrical line as seen from inside the
// system clock domain. the line is sampled with Tick(bool), once per system
// clock, and the two most recent samples are kept. the pair of samples model
// the two-stage flip-flop synchroniser in the silicon: the rest of the
// emulation must only ever look at a line through a Trace.
//
// Stable() is the second-stage value and lags the raw line by exactly two
// calls to Tick(). edge detection compares the two stages, meaning an edge on
// the raw line is reported one tick after the first stage has seen it.
//
// Deriving conditions from two traces is convenient. for example, given two
// traces A and B, a condition for event E might be:
//
//	if A.Hi() && B.Rising() {
//		E()
//	}
type Trace struct {
	Label string

	// new values are added to the end of the array
	Activity []bool

	// stage[0] is the first synchroniser stage (the newer sample) and
	// stage[1] is the second (the older sample)
	stage [2]bool

	// the value the line settles to when nothing is driving it. also the
	// value the synchroniser is filled with on reset
	idle bool
}

const activityLength = 64

// NewTrace is the preferred method of initialisation for the Trace type. the
// idle argument is the quiescent level of the line: true for lines that idle
// high (an active-low chip select) and false for lines that idle low.
func NewTrace(label string, idle bool) Trace {
	tr := Trace{
		Label:    label,
		Activity: make([]bool, activityLength),
		idle:     idle,
	}
	tr.Reset()
	return tr
}

// Reset fills the synchroniser and the activity record with the line's idle
// level.
func (tr *Trace) Reset() {
	tr.stage[0] = tr.idle
	tr.stage[1] = tr.idle
	for i := range tr.Activity {
		tr.Activity[i] = tr.idle
	}
}

// Tick advances the synchroniser by one system clock, sampling the raw line.
func (tr *Trace) Tick(v bool) {
	tr.stage[1] = tr.stage[0]
	tr.stage[0] = v
	tr.Activity = append(tr.Activity[1:], v)
}

// Rising returns true for exactly one tick when the line has moved from a low
// to a high state.
func (tr *Trace) Rising() bool {
	return tr.stage[0] && !tr.stage[1]
}

// Falling returns true for exactly one tick when the line has moved from a
// high to a low state.
func (tr *Trace) Falling() bool {
	return !tr.stage[0] && tr.stage[1]
}

// Hi returns the first-stage value of the line.
func (tr *Trace) Hi() bool {
	return tr.stage[0]
}

// Lo is the complement of Hi.
func (tr *Trace) Lo() bool {
	return !tr.stage[0]
}

// Stable is the second-stage value of the line. this is the value that
// anything sampling the line as data must use.
func (tr *Trace) Stable() bool {
	return tr.stage[1]
}

// Copy returns a copy of the recent activity on the line. useful for
// visualisation.
func (tr *Trace) Copy() []bool {
	c := make([]bool, len(tr.Activity))
	copy(c, tr.Activity)
	return c
}
