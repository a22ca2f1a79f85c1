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

// Package wavwriter allows writing the level of an output pin to disk as a
// WAV file. a pin carrying a PWM tone becomes audible this way. Note that
// sample data is buffered in memory in its entirety, and written to disk on
// program end. It is therefore probably only suitable for testing purposes.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spindlesim/spindle/hardware/clocks"
	"github.com/spindlesim/spindle/logger"
)

// DefaultDecimation takes the system clock down to a 40kHz sample rate.
const DefaultDecimation = 250

// WavWriter records the level of a single output pin.
type WavWriter struct {
	filename string

	// the system clock is far too fast for an audio file. one sample is kept
	// for every decimation ticks
	decimation int
	phase      int

	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type. a
// decimation value of zero selects DefaultDecimation.
func New(filename string, decimation int) *WavWriter {
	if decimation <= 0 {
		decimation = DefaultDecimation
	}

	return &WavWriter{
		filename:   filename,
		decimation: decimation,
		buffer:     make([]int, 0),
	}
}

// Tick samples the level of the pin. to be called once per system clock.
func (aw *WavWriter) Tick(level bool) {
	aw.phase++
	if aw.phase < aw.decimation {
		return
	}
	aw.phase = 0

	if level {
		aw.buffer = append(aw.buffer, 255)
	} else {
		aw.buffer = append(aw.buffer, 0)
	}
}

// End writes the buffered samples to disk.
func (aw *WavWriter) End() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	sampleRate := clocks.Master / aw.decimation

	enc := wav.NewEncoder(f, sampleRate, 8, 1, 1)
	defer func() {
		err := enc.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	logger.Logf("wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
