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

package debugger

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/spindlesim/spindle/debugger/terminal"
	"github.com/spindlesim/spindle/logger"
)

// summary of the commands accepted by the debugger, keyed by command name.
var helpSummary = map[string]string{
	"HELP":       "Lists commands and provides help for individual commands",
	"QUIT":       "Exits the debugger",
	"RESET":      "Resets the peripheral to its initial state",
	"STEP":       "Steps the system clock by one tick, or by the given number of ticks",
	"DRAIN":      "Runs the system clock until the transaction queue is empty",
	"SPI":        "Queues a bus transaction (SPI W <addr> <data>, SPI R <addr> <data>, SPI RAW <bits> <numbits>) and runs it to completion",
	"PERIPHERAL": "Prints a summary of the whole peripheral",
	"REGISTERS":  "Prints the register file",
	"RX":         "Prints the state of the bus receiver",
	"PWM":        "Prints the state of the PWM generator",
	"PINS":       "Prints the state of the output pin banks",
	"LOG":        "Prints the last entries of the central log (LOG ALL for everything)",
	"DUMP":       "Writes a graphviz visualisation of the peripheral to a file",
}

func (dbg *Debugger) parseInput(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	// input may consist of many commands separated by semi-colons
	for _, cmd := range strings.Split(input, ";") {
		if err := dbg.parseCommand(strings.Fields(cmd)); err != nil {
			return err
		}
	}

	return nil
}

func (dbg *Debugger) parseCommand(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	command := strings.ToUpper(tokens[0])
	args := tokens[1:]

	switch command {
	default:
		return fmt.Errorf("%s is not a debugging command", command)

	case "HELP":
		dbg.help(args)

	case "QUIT", "EXIT":
		dbg.running = false

	case "RESET":
		dbg.per.Reset()
		dbg.printLine(terminal.StyleFeedback, "peripheral reset")

	case "STEP":
		numTicks := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("STEP requires a positive number of ticks")
			}
			numTicks = n
		}
		dbg.step(numTicks)

	case "DRAIN":
		dbg.drain()

	case "SPI":
		if err := dbg.drv.QueueScript(strings.Join(args, " ")); err != nil {
			return err
		}
		dbg.drain()

	case "PERIPHERAL":
		dbg.printLine(terminal.StyleMachineInfo, "%s", dbg.per.String())

	case "REGISTERS", "REGS":
		dbg.printLine(terminal.StyleMachineInfo, "%s", dbg.per.Regs.String())

	case "RX":
		dbg.printLine(terminal.StyleMachineInfo, "%s", dbg.per.RX.String())

	case "PWM":
		dbg.printLine(terminal.StyleMachineInfo, "duty: %02x carrier: %v",
			dbg.per.Regs.PWMDuty, dbg.per.PWM.Output())

	case "PINS":
		dbg.printLine(terminal.StyleMachineInfo, "uo: %08b uio: %08b",
			dbg.per.Pins.UO, dbg.per.Pins.UIO)

	case "LOG":
		s := &strings.Builder{}
		if len(args) > 0 && strings.ToUpper(args[0]) == "ALL" {
			logger.Write(s)
		} else {
			logger.Tail(s, 10)
		}
		if s.Len() > 0 {
			dbg.printLine(terminal.StyleFeedback, "%s", strings.TrimRight(s.String(), "\n"))
		} else {
			dbg.printLine(terminal.StyleFeedback, "log is empty")
		}

	case "DUMP":
		fn := "spindle.dot"
		if len(args) > 0 {
			fn = args[0]
		}
		f, err := os.Create(fn)
		if err != nil {
			return fmt.Errorf("DUMP: %w", err)
		}
		defer f.Close()
		memviz.Map(f, dbg.per)
		dbg.printLine(terminal.StyleFeedback, "peripheral graph written to %s", fn)
	}

	return nil
}

func (dbg *Debugger) help(args []string) {
	if len(args) > 0 {
		command := strings.ToUpper(args[0])
		if s, ok := helpSummary[command]; ok {
			dbg.printLine(terminal.StyleHelp, "%s: %s", command, s)
		} else {
			dbg.printLine(terminal.StyleHelp, "no help for %s", command)
		}
		return
	}

	commands := make([]string, 0, len(helpSummary))
	for command := range helpSummary {
		commands = append(commands, command)
	}
	sort.Strings(commands)
	dbg.printLine(terminal.StyleHelp, "%s", strings.Join(commands, "  "))
}
