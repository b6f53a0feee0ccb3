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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophersms/disassembly"
	"github.com/jetsetilly/gophersms/test"
)

type memory []uint8

func (m memory) Peek(address uint16) uint8 {
	if int(address) >= len(m) {
		return 0
	}
	return m[address]
}

func TestDecode(t *testing.T) {
	mem := memory{
		0x3e, 0x80,             // LD A,$80
		0xd3, 0xbf,             // OUT ($bf),A
		0x21, 0x00, 0xc0,       // LD HL,$c000
		0x32, 0x34, 0x12,       // LD ($1234),A
		0x18, 0xfe,             // JR $000a
		0xdd, 0x36, 0xfe, 0x42, // LD (IX-$02),$42
		0xfd, 0xcb, 0x05, 0x46, // BIT 0,(IY+$05)
		0xed, 0xb0,             // LDIR
		0xcb, 0x11,             // RL C
	}

	var lines []string
	for _, e := range disassembly.Linear(mem, 0, uint16(len(mem)-1)) {
		lines = append(lines, e.Mnemonic())
	}

	test.ExpectEquality(t, strings.Join(lines, "; "),
		"LD A,$80; OUT ($bf),A; LD HL,$c000; LD ($1234),A; JR $000a; "+
			"LD (IX-$02),$42; BIT 0,(IY+$05); LDIR; RL C")
}

func TestEntryString(t *testing.T) {
	mem := memory{0x00, 0x00, 0xc3, 0x34, 0x12}

	e := disassembly.Decode(mem, 2)
	test.ExpectEquality(t, len(e.Bytes), 3)
	test.ExpectEquality(t, e.Bytecode(), "c3 34 12")
	test.ExpectEquality(t, e.String(), "0002  c3 34 12     JP $1234")

	w := &strings.Builder{}
	test.ExpectSuccess(t, disassembly.Write(w, disassembly.Linear(mem, 0, 1)))
	test.ExpectEquality(t, w.String(), "0000  00           NOP\n0001  00           NOP\n")
}

func TestRelativeBackwards(t *testing.T) {
	mem := make(memory, 0x20)
	mem[0x10] = 0x20 // JR NZ,e
	mem[0x11] = 0xf0

	e := disassembly.Decode(mem, 0x10)
	test.ExpectEquality(t, e.Mnemonic(), "JR NZ,$0002")
}
