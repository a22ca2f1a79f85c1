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

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spindlesim/spindle/capture"
	"github.com/spindlesim/spindle/controller"
	"github.com/spindlesim/spindle/debugger"
	"github.com/spindlesim/spindle/debugger/terminal"
	"github.com/spindlesim/spindle/debugger/terminal/colorterm"
	"github.com/spindlesim/spindle/debugger/terminal/plainterm"
	"github.com/spindlesim/spindle/gui"
	"github.com/spindlesim/spindle/hardware"
	"github.com/spindlesim/spindle/hardware/clocks"
	"github.com/spindlesim/spindle/logger"
	"github.com/spindlesim/spindle/modalflag"
	"github.com/spindlesim/spindle/performance"
	"github.com/spindlesim/spindle/statsview"
	"github.com/spindlesim/spindle/version"
	"github.com/spindlesim/spindle/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG", "PERF", "ANALYZE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DEBUG":
		err = debug(md)
	case "PERF":
		err = perform(md)
	case "ANALYZE":
		err = analyze(md)
	case "VERSION":
		ver, rev := version.Version()
		fmt.Printf("%s (%s, %s)\n", version.ApplicationName, ver, rev)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	script := md.AddString("spi", "", "bus transaction script to drive into the peripheral")
	halfPeriod := md.AddInt("halfperiod", controller.DefaultHalfPeriod, "SCLK half period in system clocks")
	duration := md.AddDuration("duration", 100*time.Millisecond, "emulated time to run for after the script has drained")
	wav := md.AddString("wav", "", "record the level of a pin to a wav file")
	wavPin := md.AddInt("wavpin", 0, "pin recorded by -wav (0 to 15)")
	decimate := md.AddInt("decimate", wavwriter.DefaultDecimation, "system clocks per wav sample")
	tui := md.AddBool("tui", false, "show the front panel while running, paced to real time")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("stats", false, "launch statistics server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}
	if *stats {
		statsview.Launch(os.Stdout)
	}

	per := hardware.NewPeripheral()
	drv := controller.NewDriver(*halfPeriod)

	if *script != "" {
		if err := drv.QueueScript(*script); err != nil {
			return err
		}
	}

	var aw *wavwriter.WavWriter
	if *wav != "" {
		if *wavPin < 0 || *wavPin > 15 {
			return fmt.Errorf("wavpin must be between 0 and 15")
		}
		aw = wavwriter.New(*wav, *decimate)
	}

	var fp *gui.FrontPanel
	if *tui {
		fp, err = gui.NewFrontPanel(per)
		if err != nil {
			return err
		}

		// silence stdout echo while the front panel owns the terminal
		logger.SetEcho(nil)
	}

	// the scripted traffic first, then idle for the requested duration
	remaining := int(duration.Seconds() * float64(clocks.Master))
	pacing := 0
	for {
		more := drv.Tick(per)
		if !more {
			remaining--
		}

		if aw != nil {
			aw.Tick(pinLevel(per, *wavPin))
		}

		if fp != nil {
			if !fp.Service() {
				break
			}

			// pace the emulation to roughly real time so the panel shows
			// the chip as a user of the real silicon would see it
			pacing++
			if pacing >= hardware.PerformanceBrake {
				pacing = 0
				time.Sleep(time.Millisecond)
			}
		}

		if !more && remaining <= 0 {
			break
		}
	}

	if fp != nil {
		fp.End()
	}

	fmt.Println(per.String())

	if aw != nil {
		return aw.End()
	}

	return nil
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	script := md.AddString("spi", "", "bus transaction script queued before the first prompt")
	halfPeriod := md.AddInt("halfperiod", controller.DefaultHalfPeriod, "SCLK half period in system clocks")
	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	case "COLOR":
		term = colorterm.NewColorTerminal()
	case "PLAIN":
		term = plainterm.NewPlainTerminal()
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	dbg := debugger.New(term, *halfPeriod)
	return dbg.Start(*script)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	script := md.AddString("spi", "", "bus transaction script, requeued for the whole measurement")
	halfPeriod := md.AddInt("halfperiod", controller.DefaultHalfPeriod, "SCLK half period in system clocks")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 1s overhead)")
	profile := md.AddString("profile", "none", "run through a profiler: cpu, mem, all, none")
	stats := md.AddBool("stats", false, "launch statistics server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	return performance.Check(os.Stdout, prof, *script, *halfPeriod, *duration)
}

func analyze(md *modalflag.Modes) error {
	md.NewMode()

	clkFile := md.AddString("f-clk", "digital_0.bin", "input filename: SCLK data")
	ncsFile := md.AddString("f-cs", "digital_1.bin", "input filename: chip select data")
	copiFile := md.AddString("f-copi", "digital_2.bin", "input filename: COPI data")
	replay := md.AddBool("replay", false, "replay the capture against the emulation")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	md.AdditionalHelp("input files are binary digital exports from the Saleae software, one file per line")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	cp, err := capture.Load(*clkFile, *ncsFile, *copiFile)
	if err != nil {
		return err
	}

	if err := cp.List(os.Stdout); err != nil {
		return err
	}

	if *replay {
		per := hardware.NewPeripheral()
		cp.Replay(per)
		fmt.Println(per.String())
	}

	return nil
}

// pinLevel returns the level of one of the sixteen output pins. pins 0 to 7
// are the uo bank and pins 8 to 15 are the uio bank.
func pinLevel(per *hardware.Peripheral, pin int) bool {
	if pin < 8 {
		return per.Pins.UO>>uint(pin)&0x01 == 0x01
	}
	return per.Pins.UIO>>uint(pin-8)&0x01 == 0x01
}
