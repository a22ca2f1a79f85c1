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

// Package gui implements a terminal front panel for the running emulation.
// it shows the register file, the output pin banks, recent activity on the
// bus lines and the tail of the central log. the panel is passive: it never
// drives the bus and never blocks the emulation loop.
package gui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell"
	"github.com/spindlesim/spindle/hardware"
	"github.com/spindlesim/spindle/logger"
)

// refresh rate of the front panel. the emulation runs far faster than any
// terminal can redraw so Service() skips most calls.
const refreshRate = 33 * time.Millisecond

// FrontPanel is a live view of the peripheral, drawn with tcell.
type FrontPanel struct {
	screen tcell.Screen
	per    *hardware.Peripheral

	lastDraw time.Time

	// closed by the event loop when the user has asked to quit
	quit chan struct{}
}

// NewFrontPanel is the preferred method of initialisation for the FrontPanel
// type.
func NewFrontPanel(per *hardware.Peripheral) (*FrontPanel, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("gui: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("gui: %w", err)
	}
	screen.HideCursor()

	fp := &FrontPanel{
		screen: screen,
		per:    per,
		quit:   make(chan struct{}),
	}

	// keyboard handling runs alongside the emulation loop. tcell requires
	// PollEvent to be called from a single goroutine
	go func() {
		for {
			ev := fp.screen.PollEvent()
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					close(fp.quit)
					return
				case tcell.KeyRune:
					if ev.Rune() == 'q' {
						close(fp.quit)
						return
					}
				}
			case *tcell.EventResize:
				fp.screen.Sync()
			}
		}
	}()

	return fp, nil
}

// Service redraws the front panel if enough time has passed since the last
// redraw. it returns false when the user has asked for the emulation to
// stop.
func (fp *FrontPanel) Service() bool {
	select {
	case <-fp.quit:
		return false
	default:
	}

	if time.Since(fp.lastDraw) < refreshRate {
		return true
	}
	fp.lastDraw = time.Now()

	fp.draw()
	fp.screen.Show()

	return true
}

// End restores the terminal. the FrontPanel cannot be used after End() has
// been called.
func (fp *FrontPanel) End() {
	fp.screen.Fini()
}

func (fp *FrontPanel) draw() {
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	hiStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)

	// registers
	box(fp.screen, 0, 0, 30, 7, "registers")
	clear(fp.screen, 1, 1, 28, 5)
	drawString(fp.screen, 2, 1, infoStyle, fmt.Sprintf("EN_LO      %02x", fp.per.Regs.EnableLo))
	drawString(fp.screen, 2, 2, infoStyle, fmt.Sprintf("EN_HI      %02x", fp.per.Regs.EnableHi))
	drawString(fp.screen, 2, 3, infoStyle, fmt.Sprintf("PWM_EN_LO  %02x", fp.per.Regs.PWMEnableLo))
	drawString(fp.screen, 2, 4, infoStyle, fmt.Sprintf("PWM_EN_HI  %02x", fp.per.Regs.PWMEnableHi))
	drawString(fp.screen, 2, 5, infoStyle, fmt.Sprintf("PWM_DUTY   %02x", fp.per.Regs.PWMDuty))

	// output pins. a filled circle is a high pin
	box(fp.screen, 32, 0, 30, 7, "pins")
	clear(fp.screen, 33, 1, 28, 5)
	drawString(fp.screen, 34, 1, infoStyle, "uo  "+pinString(fp.per.Pins.UO))
	drawString(fp.screen, 34, 2, infoStyle, "uio "+pinString(fp.per.Pins.UIO))
	duty := int(fp.per.Regs.PWMDuty) * 20 / 255
	bar := ""
	for i := 0; i < 20; i++ {
		if i < duty {
			bar += "="
		} else {
			bar += " "
		}
	}
	drawString(fp.screen, 34, 4, infoStyle, fmt.Sprintf("duty [%s]", bar))

	// bus lines, most recent sample on the right
	box(fp.screen, 0, 8, 70, 5, "bus")
	clear(fp.screen, 1, 9, 68, 3)
	for i, tr := range []struct {
		label    string
		activity []bool
	}{
		{"sclk", fp.per.RX.SCLK.Copy()},
		{"ncs ", fp.per.RX.NCS.Copy()},
		{"copi", fp.per.RX.COPI.Copy()},
	} {
		drawString(fp.screen, 2, 9+i, dimStyle, tr.label)
		for j, v := range tr.activity {
			if v {
				fp.screen.SetContent(7+j, 9+i, '▔', nil, hiStyle)
			} else {
				fp.screen.SetContent(7+j, 9+i, '▁', nil, dimStyle)
			}
		}
	}

	// the tail of the central log
	box(fp.screen, 0, 14, 70, 7, "log")
	clear(fp.screen, 1, 15, 68, 5)
	logger.BorrowLog(func(entries []logger.Entry) {
		n := len(entries)
		if n > 5 {
			entries = entries[n-5:]
		}
		for i, e := range entries {
			s := strings.TrimRight(e.String(), "\n")
			if len(s) > 66 {
				s = s[:66]
			}
			drawString(fp.screen, 2, 15+i, dimStyle, s)
		}
	})

	drawString(fp.screen, 0, 22, dimStyle,
		fmt.Sprintf("tick %d  (q to quit)", fp.per.TickCount))
}

func pinString(v uint8) string {
	s := ""
	for b := 7; b >= 0; b-- {
		if v>>uint(b)&0x01 == 0x01 {
			s += "●"
		} else {
			s += "○"
		}
	}
	return s
}
