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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import "fmt"

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// Pens is the table of colors to be used for text.
var Pens = map[string]string{
	"red":     "\033[31;1m",
	"green":   "\033[32;1m",
	"yellow":  "\033[33;1m",
	"blue":    "\033[34;1m",
	"magenta": "\033[35;1m",
	"cyan":    "\033[36;1m",
	"white":   "\033[37;1m",
}

// DimPens is the table of non-bright colors to be used for text.
var DimPens = map[string]string{
	"red":     "\033[31m",
	"green":   "\033[32m",
	"yellow":  "\033[33m",
	"blue":    "\033[34m",
	"magenta": "\033[35m",
	"cyan":    "\033[36m",
	"white":   "\033[37m",
}

// PenStyles is the table of styles to be used for text.
var PenStyles = map[string]string{
	"bold":      "\033[1m",
	"underline": "\033[4m",
}

// CursorMove is the CSI sequence to move the cursor n characters to the
// right (positive) or left (negative).
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
