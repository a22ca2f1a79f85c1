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

package test

import (
	"errors"
	"testing"
)

func TestOutcome(t *testing.T) {
	if !outcome(t, true) || outcome(t, false) {
		t.Errorf("bool outcomes misjudged")
	}

	// a nil error arrives through the empty interface as plain nil
	if !outcome(t, nil) {
		t.Errorf("nil should count as success")
	}
	if outcome(t, errors.New("fail")) {
		t.Errorf("a non-nil error should count as failure")
	}
}
