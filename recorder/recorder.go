// This file is part of GopherSMS.
//
// GopherSMS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherSMS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherSMS.  If not, see <https://www.gnu.org/licenses/>.

package recorder

import (
	"bufio"
	"fmt"
	"os"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware"
	"github.com/jetsetilly/gophersms/hardware/ports"
	"github.com/jetsetilly/gophersms/logger"
)

// Recorder writes the changes in console input to a file.
type Recorder struct {
	con *hardware.Console

	f *os.File
	w *bufio.Writer

	last      ports.Input
	lastFrame int

	// the first error encountered while recording. no more input is
	// recorded once an error has occurred
	err error
}

// NewRecorder creates a new recording file for the console. The console must
// have a cartridge attached. The console is reset so that the recording
// starts from power on.
func NewRecorder(filename string, con *hardware.Console) (*Recorder, error) {
	cart := con.Cartridge()
	if cart == nil {
		return nil, curated.Errorf("recorder: no cartridge attached")
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	con.Reset()

	rec := &Recorder{
		con:       con,
		f:         f,
		w:         bufio.NewWriter(f),
		lastFrame: -1,
	}

	fmt.Fprintln(rec.w, magicLine)
	fmt.Fprintf(rec.w, "cartridge%s%08x\n", fieldSep, cart.CRC())
	fmt.Fprintf(rec.w, "region%s%s\n", fieldSep, con.VDP.Region())

	logger.Logf(logger.Allow, "recorder", "recording to %s", filename)

	return rec, nil
}

// Record the input for the frame about to be run. Nothing is written unless
// the input has changed.
func (rec *Recorder) Record(in ports.Input) error {
	if rec.err != nil {
		return rec.err
	}

	frame := rec.con.VDP.Frame()
	if frame < rec.lastFrame {
		rec.err = curated.Errorf("recorder: emulation has gone backwards (frame %d)", frame)
		return rec.err
	}
	rec.lastFrame = frame

	if in == rec.last {
		return nil
	}
	rec.last = in

	hash, err := stateHash(rec.con)
	if err != nil {
		rec.err = curated.Errorf("recorder: %v", err)
		return rec.err
	}

	_, err = fmt.Fprintf(rec.w, "%d%s%04x%s%s\n", frame, fieldSep, in.Pack(), fieldSep, hash)
	if err != nil {
		rec.err = curated.Errorf("recorder: %v", err)
	}

	return rec.err
}

// Wrap returns an input function that records the input returned by the
// wrapped function. Recording errors are logged and recording stops.
func (rec *Recorder) Wrap(input func() ports.Input) func() ports.Input {
	return func() ports.Input {
		in := input()
		if rec.err == nil {
			if err := rec.Record(in); err != nil {
				logger.Log(logger.Allow, "recorder", err)
			}
		}
		return in
	}
}

// End the recording and close the file. An end marker is written so that
// playback continues until the frame at which recording ended.
func (rec *Recorder) End() error {
	defer rec.f.Close()

	if rec.err == nil && rec.lastFrame >= 0 {
		hash, err := stateHash(rec.con)
		if err != nil {
			return curated.Errorf("recorder: %v", err)
		}
		fmt.Fprintf(rec.w, "%d%s%04x%s%s\n", rec.con.VDP.Frame(), fieldSep, rec.last.Pack(), fieldSep, hash)
	}

	if err := rec.w.Flush(); err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	return rec.err
}
