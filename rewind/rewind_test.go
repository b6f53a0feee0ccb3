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

package rewind_test

import (
	"testing"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware"
	"github.com/jetsetilly/gophersms/hardware/vdp"
	"github.com/jetsetilly/gophersms/rewind"
	"github.com/jetsetilly/gophersms/test"
)

func newConsole(t *testing.T) *hardware.Console {
	t.Helper()
	con := hardware.NewConsole(nil, nil, vdp.NTSC)

	// INC A; LD (c000),A; JR 0000
	data := make([]uint8, 0x8000)
	copy(data, []uint8{0x3c, 0x32, 0x00, 0xc0, 0x18, 0xfa})
	test.DemandSuccess(t, con.AttachCartridge(data))

	return con
}

func run(t *testing.T, con *hardware.Console, r *rewind.Rewind, frames int) {
	t.Helper()
	for i := 0; i < frames; i++ {
		test.DemandSuccess(t, con.RunFrame())
		r.RecordFrame()
	}
}

func TestEmpty(t *testing.T) {
	con := newConsole(t)
	r := rewind.NewRewind(con, nil)

	_, err := r.GotoLast()
	test.ExpectSuccess(t, curated.Is(err, rewind.NoEntries))
	_, err = r.Back()
	test.ExpectSuccess(t, curated.Is(err, rewind.NoEntries))
	_, err = r.GotoFrame(10)
	test.ExpectSuccess(t, curated.Is(err, rewind.NoEntries))
	test.ExpectEquality(t, r.GetFrames(), rewind.Frames{})
}

func TestRecord(t *testing.T) {
	con := newConsole(t)
	r := rewind.NewRewind(con, nil)
	r.Reset()

	run(t, con, r, 10)
	test.ExpectEquality(t, r.GetFrames(), rewind.Frames{Start: 0, End: 10, Entries: 11})
}

func TestCapacity(t *testing.T) {
	con := newConsole(t)
	r := rewind.NewRewind(con, nil)
	test.DemandSuccess(t, r.Prefs.MaxEntries.Set(5))
	r.Reset()

	run(t, con, r, 10)
	test.ExpectEquality(t, r.GetFrames(), rewind.Frames{Start: 6, End: 10, Entries: 5})

	// changing the capacity clears the history
	test.DemandSuccess(t, r.Prefs.MaxEntries.Set(20))
	test.ExpectEquality(t, r.GetFrames().Entries, 0)
}

func TestFrequency(t *testing.T) {
	con := newConsole(t)
	r := rewind.NewRewind(con, nil)
	test.DemandSuccess(t, r.Prefs.Freq.Set(3))
	r.Reset()

	run(t, con, r, 10)
	test.ExpectEquality(t, r.GetFrames(), rewind.Frames{Start: 0, End: 9, Entries: 4})
}

func TestGotoFrame(t *testing.T) {
	con := newConsole(t)
	r := rewind.NewRewind(con, nil)
	test.DemandSuccess(t, r.Prefs.Freq.Set(2))
	r.Reset()

	run(t, con, r, 10)
	test.ExpectEquality(t, r.GetFrames(), rewind.Frames{Start: 0, End: 10, Entries: 6})

	// the state of the emulation at frame 4
	fn, err := r.GotoFrame(4)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 4)
	test.ExpectEquality(t, con.VDP.Frame(), 4)
	a := con.SaveState()

	// nearest earlier frame and later entries are forgotten
	run(t, con, r, 4)
	fn, err = r.GotoFrame(5)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 4)
	test.ExpectSuccess(t, con.SaveState().Equals(a))
	test.ExpectEquality(t, r.GetFrames(), rewind.Frames{Start: 0, End: 4, Entries: 3})

	// out of range requests
	fn, err = r.GotoFrame(-1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 0)

	run(t, con, r, 4)
	fn, err = r.GotoFrame(1000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 4)
}

func TestBack(t *testing.T) {
	con := newConsole(t)
	r := rewind.NewRewind(con, nil)
	r.Reset()
	run(t, con, r, 5)

	fn, err := r.Back()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 4)
	fn, err = r.Back()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 3)

	fn, err = r.GotoLast()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fn, 3)
	test.ExpectEquality(t, con.VDP.Frame(), 3)
}

func TestDeterministicReplay(t *testing.T) {
	con := newConsole(t)
	r := rewind.NewRewind(con, nil)
	r.Reset()
	run(t, con, r, 5)
	a := con.SaveState()

	_, err := r.GotoFrame(2)
	test.DemandSuccess(t, err)
	run(t, con, r, 3)
	test.ExpectSuccess(t, con.SaveState().Equals(a))
}
