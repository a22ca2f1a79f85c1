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

package capture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/saleae"
	"github.com/spindlesim/spindle/controller"
	"github.com/spindlesim/spindle/hardware"
	"github.com/spindlesim/spindle/hardware/clocks"
	"github.com/spindlesim/spindle/hardware/registers"
	"github.com/spindlesim/spindle/test"
)

// digitalFile converts a per-tick level sequence into a digital export, one
// transition timestamp per level change.
func digitalFile(levels []bool, tick float64) *saleae.DigitalFile {
	df := &saleae.DigitalFile{}
	if levels[0] {
		df.Header.InitialState = 1
	}

	cur := levels[0]
	for i, v := range levels {
		if v != cur {
			df.Data = append(df.Data, float64(i)*tick)
			cur = v
		}
	}

	df.Header.End = float64(len(levels)) * tick
	df.Header.NumTransitions = uint64(len(df.Data))

	return df
}

func writeDigital(t *testing.T, filename string, df *saleae.DigitalFile) {
	t.Helper()

	f, err := os.Create(filename)
	test.ExpectedSuccess(t, err)
	_, err = df.WriteTo(f)
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, f.Close())
}

// encode a recording of a duty register write, read it back through Load()
// and check that both the replay and the off-line decode agree on it.
func TestReplayRoundTrip(t *testing.T) {
	drv := controller.NewDriver(20)
	drv.QueueIdle(10)
	drv.QueueWrite(registers.PWMDuty, 0xa5)

	var sclk, ncs, copi []bool
	for {
		lv, ok := drv.Next()
		if !ok {
			break
		}
		sclk = append(sclk, lv.SCLK)
		ncs = append(ncs, lv.NCS)
		copi = append(copi, lv.COPI)
	}

	const tick = 1.0 / float64(clocks.Master)

	dir := t.TempDir()
	clkFile := filepath.Join(dir, "digital_0.bin")
	ncsFile := filepath.Join(dir, "digital_1.bin")
	copiFile := filepath.Join(dir, "digital_2.bin")
	writeDigital(t, clkFile, digitalFile(sclk, tick))
	writeDigital(t, ncsFile, digitalFile(ncs, tick))
	writeDigital(t, copiFile, digitalFile(copi, tick))

	cp, err := Load(clkFile, ncsFile, copiFile)
	test.ExpectedSuccess(t, err)

	per := hardware.NewPeripheral()
	cp.Replay(per)
	test.Equate(t, per.Regs.PWMDuty, 0xa5)

	txs, err := cp.Transactions()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(txs), 1)
	test.Equate(t, txs[0].Valid, true)
	test.Equate(t, txs[0].Write, true)
	test.Equate(t, txs[0].Addr == registers.PWMDuty, true)
	test.Equate(t, txs[0].Data, 0xa5)
}
