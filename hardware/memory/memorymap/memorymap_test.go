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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gophersms/hardware/memory/memorymap"
	"github.com/jetsetilly/gophersms/test"
)

const validMemMap = `0000 -> 03ff	Fixed
0400 -> 3fff	Slot 0
4000 -> 7fff	Slot 1
8000 -> bfff	Slot 2
c000 -> ffff	Work RAM
`

const validPortMap = `in  00 -> 3f	undefined / undefined
in  40 -> 7f	V Counter / H Counter
in  80 -> bf	VDP Data / VDP Control
in  c0 -> ff	Port A / Port B
out 00 -> 3f	Memory Control / I/O Control
out 40 -> 7f	PSG / PSG
out 80 -> bf	VDP Data / VDP Control
out c0 -> ff	undefined / undefined
`

func TestMemory(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestPorts(t *testing.T) {
	test.ExpectEquality(t, memorymap.PortSummary(), validPortMap)
}

func TestMirror(t *testing.T) {
	a, area := memorymap.MapAddress(0xe123)
	test.ExpectEquality(t, a, uint16(0xc123))
	test.ExpectEquality(t, area, memorymap.WorkRAM)

	a, area = memorymap.MapAddress(0xffff)
	test.ExpectEquality(t, a, uint16(0xdfff))
	test.ExpectEquality(t, area, memorymap.WorkRAM)

	a, area = memorymap.MapAddress(0x8000)
	test.ExpectEquality(t, a, uint16(0x8000))
	test.ExpectEquality(t, area, memorymap.Slot2)
}

func TestPortDecode(t *testing.T) {
	// only the lower byte and only three bits of it are decoded
	test.ExpectEquality(t, memorymap.MapPort(0x12be, false), memorymap.VDPData)
	test.ExpectEquality(t, memorymap.MapPort(0x00bf, true), memorymap.VDPControl)
	test.ExpectEquality(t, memorymap.MapPort(0x007f, true), memorymap.PSG)
	test.ExpectEquality(t, memorymap.MapPort(0x00dc, false), memorymap.PortA)
	test.ExpectEquality(t, memorymap.MapPort(0x00dd, false), memorymap.PortB)
	test.ExpectEquality(t, memorymap.MapPort(0x003e, true), memorymap.MemoryControl)
	test.ExpectEquality(t, memorymap.MapPort(0x003f, true), memorymap.IOControl)
	test.ExpectEquality(t, memorymap.MapPort(0x003f, false), memorymap.NoPort)
}
