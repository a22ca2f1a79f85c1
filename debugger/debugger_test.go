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

package debugger_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/spindlesim/spindle/debugger"
	"github.com/spindlesim/spindle/debugger/terminal"
	"github.com/spindlesim/spindle/test"
)

// scriptTerm feeds a prepared list of commands to the debugger and records
// everything printed back.
type scriptTerm struct {
	input  []string
	output []string
}

func (mt *scriptTerm) Initialise() error {
	return nil
}

func (mt *scriptTerm) CleanUp() {
}

func (mt *scriptTerm) IsInteractive() bool {
	return false
}

func (mt *scriptTerm) TermRead(prompt string) (string, error) {
	if len(mt.input) == 0 {
		return "", io.EOF
	}
	s := mt.input[0]
	mt.input = mt.input[1:]
	return s, nil
}

func (mt *scriptTerm) TermPrintLine(style terminal.Style, s string, a ...interface{}) {
	mt.output = append(mt.output, fmt.Sprintf(s, a...))
}

func (mt *scriptTerm) printed(sub string) bool {
	for _, s := range mt.output {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func TestCommands(t *testing.T) {
	mt := &scriptTerm{
		input: []string{
			"SPI w 0x04 0xa5",
			"REGISTERS",
			"STEP 10",
			"PINS",
			"QUIT",
		},
	}

	dbg := debugger.New(mt, 4)
	err := dbg.Start("")
	test.ExpectedSuccess(t, err)

	test.Equate(t, mt.printed("duty=a5"), true)
	test.Equate(t, mt.printed("uo: 00000000"), true)
}

func TestUnknownCommand(t *testing.T) {
	mt := &scriptTerm{
		input: []string{"XYZZY"},
	}

	dbg := debugger.New(mt, 4)
	err := dbg.Start("")
	test.ExpectedSuccess(t, err)

	// errors are reported through the terminal, not returned
	test.Equate(t, mt.printed("not a debugging command"), true)
}

func TestInitScript(t *testing.T) {
	mt := &scriptTerm{
		input: []string{"REGISTERS", "QUIT"},
	}

	dbg := debugger.New(mt, 4)
	err := dbg.Start("w 0x00 0x12")
	test.ExpectedSuccess(t, err)

	test.Equate(t, mt.printed("en=0012"), true)
}

func TestBadInitScript(t *testing.T) {
	mt := &scriptTerm{}

	dbg := debugger.New(mt, 4)
	test.ExpectedFailure(t, dbg.Start("w 0x00"))
}
