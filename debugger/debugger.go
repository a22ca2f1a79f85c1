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

// Package debugger implements an interactive command-line inspection of the
// peripheral. commands queue bus transactions, step the system clock and
// print the state of the internal hardware.
package debugger

import (
	"errors"
	"fmt"
	"io"

	"github.com/spindlesim/spindle/controller"
	"github.com/spindlesim/spindle/debugger/terminal"
	"github.com/spindlesim/spindle/hardware"
	"github.com/spindlesim/spindle/logger"
	"github.com/spindlesim/spindle/version"
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	per *hardware.Peripheral
	drv *controller.Driver

	term terminal.Terminal

	// whether the debugging loop is to continue
	running bool
}

// New is the preferred method of initialisation for the Debugger type.
func New(term terminal.Terminal, halfPeriod int) *Debugger {
	dbg := &Debugger{
		per:  hardware.NewPeripheral(),
		drv:  controller.NewDriver(halfPeriod),
		term: term,
	}
	return dbg
}

// Start the main debugger sequence.
func (dbg *Debugger) Start(initScript string) error {
	err := dbg.term.Initialise()
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	defer dbg.term.CleanUp()

	// echo log entries to the terminal as they happen
	logger.SetEcho(&logWriter{term: dbg.term})
	defer logger.SetEcho(nil)

	ver, rev := version.Version()
	dbg.printLine(terminal.StyleFeedback, "%s (%s, %s)", version.ApplicationName, ver, rev)

	if initScript != "" {
		if err := dbg.drv.QueueScript(initScript); err != nil {
			return fmt.Errorf("debugger: %w", err)
		}
		dbg.drain()
	}

	dbg.running = true
	for dbg.running {
		input, err := dbg.term.TermRead(dbg.buildPrompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return fmt.Errorf("debugger: %w", err)
		}

		if err := dbg.parseInput(input); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

func (dbg *Debugger) buildPrompt() string {
	return fmt.Sprintf("[%d] ", dbg.per.TickCount)
}

func (dbg *Debugger) printLine(style terminal.Style, s string, a ...interface{}) {
	dbg.term.TermPrintLine(style, s, a...)
}

// step the system clock, driving any pending bus transaction.
func (dbg *Debugger) step(numTicks int) {
	for i := 0; i < numTicks; i++ {
		dbg.drv.Tick(dbg.per)
	}
}

// drain runs the system clock until the transaction queue is exhausted.
func (dbg *Debugger) drain() {
	ct := 0
	for dbg.drv.Tick(dbg.per) {
		ct++
	}
	if ct > 0 {
		dbg.printLine(terminal.StyleFeedback, "ran for %d ticks", ct)
	}
}

// logWriter echoes central log entries through the terminal.
type logWriter struct {
	term terminal.Terminal
}

func (lw *logWriter) Write(p []byte) (n int, err error) {
	s := string(p)
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	lw.term.TermPrintLine(terminal.StyleFeedback, "%s", s)
	return len(p), nil
}
