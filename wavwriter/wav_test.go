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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gophersms/hardware/psg"
	"github.com/jetsetilly/gophersms/test"
	"github.com/jetsetilly/gophersms/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.NewWavWriter(fn)
	test.DemandSuccess(t, err)
	test.DemandImplements[psg.AudioSink](t, aw)

	for i := 0; i < 1000; i++ {
		aw.PushSample(int16(i * 10))
	}
	test.ExpectEquality(t, aw.NumSamples(), 1000)
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, int(dec.SampleRate), psg.SampleFreq)
	test.ExpectEquality(t, int(dec.NumChans), 1)
	test.ExpectEquality(t, int(dec.BitDepth), 16)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), 1000)
	test.ExpectEquality(t, buf.Data[100], 1000)

	aw.Reset()
	test.ExpectEquality(t, aw.NumSamples(), 0)
}
