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

// Package capture replays logic-analyser recordings of a real bus against
// the emulated peripheral. recordings are binary digital exports from the
// Saleae software, one file per line. the capture can also be decoded
// off-line, without involving the emulation, to list the transactions it
// contains.
package capture

import (
	"fmt"
	"io"
	"os"

	"github.com/soypat/saleae"
	"github.com/soypat/saleae/analyzers"
	"github.com/spindlesim/spindle/hardware"
	"github.com/spindlesim/spindle/hardware/clocks"
	"github.com/spindlesim/spindle/hardware/registers"
	"github.com/spindlesim/spindle/logger"
)

// Capture is a logic-analyser recording of the three bus lines.
type Capture struct {
	clk  *saleae.DigitalFile
	ncs  *saleae.DigitalFile
	copi *saleae.DigitalFile
}

// number of system clocks the replay keeps running after the last recorded
// transition. allows the synchroniser to settle and a final frame to commit.
const replayTail = 100

// Load a capture from the three digital export files.
func Load(clkFile, ncsFile, copiFile string) (*Capture, error) {
	cp := &Capture{}

	var err error
	cp.clk, err = loadDigital(clkFile)
	if err != nil {
		return nil, err
	}
	cp.ncs, err = loadDigital(ncsFile)
	if err != nil {
		return nil, err
	}
	cp.copi, err = loadDigital(copiFile)
	if err != nil {
		return nil, err
	}

	return cp, nil
}

func loadDigital(filename string) (*saleae.DigitalFile, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}
	defer f.Close()

	df, err := saleae.ReadDigitalFile(f)
	if err != nil {
		return nil, fmt.Errorf("capture: %s: %w", filename, err)
	}

	return df, nil
}

// Replay the capture against the peripheral, resampling the recorded edges
// at the 10MHz system clock. returns the number of ticks the replay took.
func (cp *Capture) Replay(per *hardware.Peripheral) int {
	clk := newLineSampler(cp.clk.Header.InitialState != 0, cp.clk.Data)
	ncs := newLineSampler(cp.ncs.Header.InitialState != 0, cp.ncs.Data)
	copi := newLineSampler(cp.copi.Header.InitialState != 0, cp.copi.Data)

	// the recording does not necessarily start at time zero
	t := cp.clk.Header.Begin
	if cp.ncs.Header.Begin < t {
		t = cp.ncs.Header.Begin
	}
	if cp.copi.Header.Begin < t {
		t = cp.copi.Header.Begin
	}

	const tickDuration = 1.0 / float64(clocks.Master)

	numTicks := 0
	tail := replayTail
	for tail > 0 {
		per.SetLines(clk.sample(t), ncs.sample(t), copi.sample(t))
		per.Step()
		t += tickDuration
		numTicks++

		if clk.done() && ncs.done() && copi.done() {
			tail--
		}
	}

	logger.Logf("capture", "replayed %d ticks", numTicks)

	return numTicks
}

// Transaction is a single chip-select window decoded from the capture.
type Transaction struct {
	// the raw bytes shifted while the chip select was asserted
	Bytes []byte

	// decode of a well formed 16 bit frame. Valid is false for anything
	// else, mirroring what the receiver would do with the frame
	Valid bool
	Write bool
	Addr  registers.Address
	Data  uint8

	// time of the first clock edge, in seconds from the start of the
	// recording
	Start float64
}

func (tx Transaction) String() string {
	if !tx.Valid {
		return fmt.Sprintf("t=%f discarded (% 02x)", tx.Start, tx.Bytes)
	}
	if !tx.Write {
		return fmt.Sprintf("t=%f read %s (no-op)", tx.Start, tx.Addr)
	}
	return fmt.Sprintf("t=%f write %s <- %02x", tx.Start, tx.Addr, tx.Data)
}

// Transactions decodes the capture into chip-select windows.
func (cp *Capture) Transactions() ([]Transaction, error) {
	spi := analyzers.SPI{}
	txs, err := spi.Scan(cp.clk, cp.ncs, cp.copi, cp.copi)
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}

	transactions := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		dtx := Transaction{
			Bytes: tx.SDO,
			Start: tx.StartTime(),
		}

		// anything other than exactly sixteen bits is discarded by the
		// receiver and is not decoded here either
		if len(tx.SDO) == 2 {
			frame := uint16(tx.SDO[0])<<8 | uint16(tx.SDO[1])
			dtx.Valid = true
			dtx.Write = frame&0x8000 == 0x8000
			dtx.Addr = registers.Address(frame >> 8 & 0x7f)
			dtx.Data = uint8(frame)
		}

		transactions = append(transactions, dtx)
	}

	return transactions, nil
}

// List the decoded transactions, one per line.
func (cp *Capture) List(output io.Writer) error {
	txs, err := cp.Transactions()
	if err != nil {
		return err
	}

	for _, tx := range txs {
		fmt.Fprintln(output, tx.String())
	}
	fmt.Fprintf(output, "%d transactions\n", len(txs))

	return nil
}
