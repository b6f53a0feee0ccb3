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

package recorder_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware"
	"github.com/jetsetilly/gophersms/hardware/memory/cartridge"
	"github.com/jetsetilly/gophersms/hardware/ports"
	"github.com/jetsetilly/gophersms/hardware/vdp"
	"github.com/jetsetilly/gophersms/recorder"
	"github.com/jetsetilly/gophersms/test"
)

// a program that counts frame interrupts at c000, pause presses at c001 and
// copies the joypad port to c002 every frame
func program() []uint8 {
	data := make([]uint8, cartridge.BankSize*2)
	copy(data[0x0000:], []uint8{
		0xf3,             // DI
		0xed, 0x56,       // IM 1
		0x31, 0xf0, 0xdf, // LD SP,dff0
		0x3e, 0x04,       // LD A,04
		0xd3, 0xbf,       // OUT (bf),A
		0x3e, 0x80,       // LD A,80
		0xd3, 0xbf,       // OUT (bf),A
		0x3e, 0x60,       // LD A,60
		0xd3, 0xbf,       // OUT (bf),A
		0x3e, 0x81,       // LD A,81
		0xd3, 0xbf,       // OUT (bf),A
		0xfb,             // EI
		0x76,             // HALT
		0x18, 0xfd,       // JR 0017
	})
	copy(data[0x0038:], []uint8{
		0xdb, 0xbf,       // IN A,(bf)
		0x21, 0x00, 0xc0, // LD HL,c000
		0x34,             // INC (HL)
		0xdb, 0xdc,       // IN A,(dc)
		0x32, 0x02, 0xc0, // LD (c002),A
		0xfb,             // EI
		0xed, 0x4d,       // RETI
	})
	copy(data[0x0066:], []uint8{
		0x21, 0x01, 0xc0, // LD HL,c001
		0x34,             // INC (HL)
		0xed, 0x45,       // RETN
	})
	return data
}

func newConsole(t *testing.T) *hardware.Console {
	t.Helper()
	con := hardware.NewConsole(nil, nil, vdp.NTSC)
	test.DemandSuccess(t, con.AttachCartridge(program()))
	return con
}

// the input for each frame of the recording
func script(frame int) ports.Input {
	var in ports.Input
	switch {
	case frame >= 2 && frame < 5:
		in.Player[0].Button1 = true
	case frame == 6:
		in.Pause = true
	case frame >= 8:
		in.Player[0].Left = true
	}
	return in
}

func record(t *testing.T, filename string, frames int) *hardware.Console {
	t.Helper()

	con := newConsole(t)
	rec, err := recorder.NewRecorder(filename, con)
	test.DemandSuccess(t, err)

	for i := 0; i < frames; i++ {
		in := script(con.VDP.Frame())
		test.DemandSuccess(t, rec.Record(in))
		con.SetInput(in)
		test.DemandSuccess(t, con.RunFrame())
	}

	test.DemandSuccess(t, rec.End())
	return con
}

func TestRecordAndPlayback(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "recording")
	recorded := record(t, fn, 12)

	// the input affected the emulation
	test.ExpectEquality(t, recorded.Mem.Read(0xc001), uint8(1))
	test.ExpectEquality(t, recorded.Mem.Read(0xc002), uint8(0xfb))

	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.Region, vdp.NTSC)
	test.ExpectEquality(t, plb.EndFrame(), 12)

	con := newConsole(t)

	// console is reset when playback is attached
	test.DemandSuccess(t, con.RunFrame())
	test.DemandSuccess(t, plb.AttachToConsole(con))
	test.ExpectEquality(t, con.VDP.Frame(), 0)

	test.DemandSuccess(t, plb.Run())
	test.ExpectEquality(t, con.VDP.Frame(), 12)
	test.ExpectEquality(t, con.SaveState().Equals(recorded.SaveState()), true)
}

func TestPlaybackDivergence(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "recording")
	record(t, fn, 12)

	// corrupt the hash of the pause entry
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	lines := strings.Split(string(data), "\n")
	for i, l := range lines {
		if strings.HasPrefix(l, "6, ") {
			lines[i] = l[:len(l)-8] + "00000000"
		}
	}
	test.DemandSuccess(t, os.WriteFile(fn, []byte(strings.Join(lines, "\n")), 0o644))

	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)

	con := newConsole(t)
	test.DemandSuccess(t, plb.AttachToConsole(con))

	err = plb.Run()
	test.ExpectSuccess(t, curated.Is(err, recorder.PlaybackHashError))
	test.ExpectEquality(t, con.VDP.Frame(), 6)
}

func TestPlaybackWrongConsole(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "recording")
	record(t, fn, 3)

	plb, err := recorder.NewPlayback(fn)
	test.DemandSuccess(t, err)

	con := hardware.NewConsole(nil, nil, vdp.PAL)
	test.DemandSuccess(t, con.AttachCartridge(program()))
	test.ExpectFailure(t, plb.AttachToConsole(con))

	data := program()
	data[0x1000] = 0xff
	con = hardware.NewConsole(nil, nil, vdp.NTSC)
	test.DemandSuccess(t, con.AttachCartridge(data))
	test.ExpectFailure(t, plb.AttachToConsole(con))

	_, err = plb.Input()
	test.ExpectFailure(t, err)
}

func TestRecorderBackwards(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "recording")

	con := newConsole(t)
	rec, err := recorder.NewRecorder(fn, con)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, rec.Record(ports.Input{}))
	test.DemandSuccess(t, con.RunFrame())
	test.DemandSuccess(t, con.RunFrame())
	test.DemandSuccess(t, rec.Record(ports.Input{}))

	con.Reset()
	test.ExpectFailure(t, rec.Record(ports.Input{}))
	test.ExpectFailure(t, rec.End())
}

func TestNotARecording(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "recording")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("hello\n"), 0o644))
	_, err := recorder.NewPlayback(fn)
	test.ExpectFailure(t, err)
}
