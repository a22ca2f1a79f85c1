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

// Package terminal defines the operations required by the debugger's command
// line interface. two implementations are provided: plainterm, which works
// with whatever mode the terminal is already in (and so also with pipes and
// files), and colorterm, which takes the terminal into cbreak mode for line
// editing, history and colour.
package terminal

import "errors"

// UserInterrupt is returned by TermRead() when the user has interrupted
// input (with ctrl-c for example). the end of the input stream is reported
// with io.EOF, as normal.
var UserInterrupt = errors.New("user interrupt")

// Style is used to hint at how a line of output should be presented.
type Style int

// List of valid Style values.
const (
	// input that is being echoed back to the user
	StyleEcho Style = iota

	// information from the debugger about the emulation
	StyleFeedback

	// information about the state of the emulated machine
	StyleMachineInfo

	// help text
	StyleHelp

	// error messages. these are printed even when the terminal would
	// otherwise be quiet
	StyleError
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns one line of input. the prompt may or may not be
	// displayed, depending on the implementation and on whether input is
	// coming from an interactive user
	TermRead(prompt string) (string, error)

	// IsInteractive() should return true for implementations that expect
	// user interaction
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(style Style, s string, a ...interface{})
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need
	// to do anything
	Initialise() error

	// Restore the terminal to its original state, if possible
	CleanUp()
}
