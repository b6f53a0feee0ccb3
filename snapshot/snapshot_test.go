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

package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/snapshot"
	"github.com/jetsetilly/gophersms/test"
)

func exampleSnapshot() *snapshot.Snapshot {
	s := &snapshot.Snapshot{}
	s.Cartridge = 0xdeadbeef
	s.CPU.AF = 0x1234
	s.CPU.PC = 0x0038
	s.CPU.IFF2 = true
	s.CPU.IM = 1
	s.Mapper.Slots = [3]uint8{0, 1, 2}
	s.Mapper.WorkRAM[0x1fff] = 0xaa
	s.Mapper.SaveRAM[0x4000] = 0x55
	s.VDP.Registers[10] = 0xff
	s.VDP.VRAM[0x3fff] = 0x01
	s.VDP.CRAM[0x1f] = 0x3f
	s.VDP.Scanline = 261
	s.PSG.Tone = [3]uint16{320, 320, 320}
	s.PSG.LFSR = 0x8000
	s.Ports.Pause = true
	return s
}

func TestEquals(t *testing.T) {
	a := exampleSnapshot()
	b := exampleSnapshot()
	test.ExpectSuccess(t, a.Equals(b))

	b.VDP.VRAM[100] = 1
	test.ExpectFailure(t, a.Equals(b))

	// copy by assignment is a complete copy
	c := *a
	test.ExpectSuccess(t, a.Equals(&c))
	c.Mapper.WorkRAM[0] = 1
	test.ExpectEquality(t, a.Mapper.WorkRAM[0], 0)

	var n *snapshot.Snapshot
	test.ExpectFailure(t, a.Equals(n))
	test.ExpectSuccess(t, n.Equals(nil))
}

func TestBinary(t *testing.T) {
	a := exampleSnapshot()

	data, err := a.MarshalBinary()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(data), snapshot.Size)
	test.ExpectEquality(t, string(data[:4]), "GSMS")

	// little-endian version number
	test.ExpectEquality(t, data[4], snapshot.Version)
	test.ExpectEquality(t, data[5], 0)

	var b snapshot.Snapshot
	test.DemandSuccess(t, b.UnmarshalBinary(data))
	test.ExpectSuccess(t, a.Equals(&b))
}

func TestCorruption(t *testing.T) {
	a := exampleSnapshot()
	data, err := a.MarshalBinary()
	test.DemandSuccess(t, err)

	var b snapshot.Snapshot

	err = b.UnmarshalBinary(data[:len(data)-1])
	test.ExpectSuccess(t, curated.Is(err, snapshot.WrongSize))

	c := append([]byte{}, data...)
	c[0] = 'X'
	err = b.UnmarshalBinary(c)
	test.ExpectSuccess(t, curated.Is(err, snapshot.WrongMagic))

	c = append([]byte{}, data...)
	c[4] = snapshot.Version + 1
	err = b.UnmarshalBinary(c)
	test.ExpectSuccess(t, curated.Is(err, snapshot.WrongVersion))

	c = append([]byte{}, data...)
	c[100] ^= 0xff
	err = b.UnmarshalBinary(c)
	test.ExpectSuccess(t, curated.Is(err, snapshot.WrongCRC))

	// receiver is unchanged after failure
	test.ExpectSuccess(t, b.Equals(&snapshot.Snapshot{}))
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "state")

	a := exampleSnapshot()
	test.DemandSuccess(t, snapshot.Save(fn, a))

	b, ok := snapshot.Load(fn)
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, a.Equals(b))

	// missing file is not an error. it is an absent snapshot
	b, ok = snapshot.Load(filepath.Join(dir, "missing"))
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, b == nil)

	// as is a malformed file
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a snapshot"), 0644))
	b, ok = snapshot.Load(fn)
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, b == nil)
}
