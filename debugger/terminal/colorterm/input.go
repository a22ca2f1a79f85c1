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

package colorterm

import (
	"io"
	"unicode"

	"github.com/spindlesim/spindle/debugger/terminal"
	"github.com/spindlesim/spindle/debugger/terminal/colorterm/easyterm"
	"github.com/spindlesim/spindle/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt string) (string, error) {
	ct.RawMode()
	defer ct.CanonicalMode()

	input := make([]rune, 0, 64)
	history := len(ct.commandHistory)

	// latest input is stashed when scrolling through history so the user can
	// resume where they left off
	var stash []rune

	for {
		// the cursor stays at the end of the input so a full redraw of the
		// line on every iteration is good enough
		ct.TermPrint("\r%s", ansi.ClearLine)
		ct.TermPrint("%s%s%s", ansi.PenStyles["bold"], prompt, ansi.NormalPen)
		ct.TermPrint("%s", string(input))

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\n")
			return "", terminal.UserInterrupt

		case easyterm.KeyEndOfText:
			// only treat ctrl-d as end of input when the line is empty
			if len(input) == 0 {
				ct.TermPrint("\n")
				return "", io.EOF
			}

		case easyterm.KeyCarriageReturn:
			ct.TermPrint("\n")

			s := string(input)

			// append a new history entry unless the input is empty or the
			// same as the most recent entry
			if len(s) > 0 {
				if len(ct.commandHistory) == 0 || ct.commandHistory[len(ct.commandHistory)-1] != s {
					ct.commandHistory = append(ct.commandHistory, s)
				}
			}

			return s, nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						stash = input
					}
					history--
					input = []rune(ct.commandHistory[history])
				}
			case easyterm.CursorDown:
				if history < len(ct.commandHistory) {
					history++
					if history == len(ct.commandHistory) {
						input = stash
						if input == nil {
							input = make([]rune, 0, 64)
						}
					} else {
						input = []rune(ct.commandHistory[history])
					}
				}
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input, r)
			}
		}
	}
}
