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

import "testing"

// outcome reduces an expectation argument to a pass/fail bool. the test suite
// only ever checks bools and errors this way; note that a nil error loses its
// type when passed through the empty interface and so arrives as nil.
func outcome(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	}

	t.Fatalf("cannot test a value of type %T for success or failure", v)
	return false
}

// ExpectedFailure fails the test unless v indicates failure: a false bool or
// a non-nil error.
func ExpectedFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	if outcome(t, v) {
		t.Errorf("success when a failure was expected")
		return false
	}
	return true
}

// ExpectedSuccess fails the test unless v indicates success: a true bool or
// a nil error.
func ExpectedSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	if !outcome(t, v) {
		if err, isErr := v.(error); isErr {
			t.Errorf("failure when a success was expected: %v", err)
		} else {
			t.Errorf("failure when a success was expected")
		}
		return false
	}
	return true
}
