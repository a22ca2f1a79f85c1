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

package gui

import "github.com/gdamore/tcell"

func drawString(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, c := range str {
		s.SetContent(x, y, c, nil, style)
		x++
	}
}

// box draws the outline of a panel with a label embedded in the top edge.
func box(s tcell.Screen, x, y, w, h int, label string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)

	s.SetContent(x, y, tcell.RuneULCorner, nil, style)
	s.SetContent(x+w, y, tcell.RuneURCorner, nil, style)
	s.SetContent(x, y+h, tcell.RuneLLCorner, nil, style)
	s.SetContent(x+w, y+h, tcell.RuneLRCorner, nil, style)

	for col := x + 1; col < x+w; col++ {
		s.SetContent(col, y, tcell.RuneHLine, nil, style)
		s.SetContent(col, y+h, tcell.RuneHLine, nil, style)
	}
	for row := y + 1; row < y+h; row++ {
		s.SetContent(x, row, tcell.RuneVLine, nil, style)
		s.SetContent(x+w, row, tcell.RuneVLine, nil, style)
	}

	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	drawString(s, x+2, y, labelStyle, " "+label+" ")
}

func clear(s tcell.Screen, x, y, w, h int) {
	for col := x; col <= x+w; col++ {
		for row := y; row <= y+h; row++ {
			s.SetContent(col, row, ' ', nil, tcell.StyleDefault)
		}
	}
}
