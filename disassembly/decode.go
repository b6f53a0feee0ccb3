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

package disassembly

import (
	"github.com/jetsetilly/gophersms/hardware/cpu/instructions"
)

// Memory is the memory being disassembled. Reading must have no side
// effects. The bus.DebuggerBus interface satisfies Memory.
type Memory interface {
	Peek(address uint16) uint8
}

// the decoder reads bytes from memory and keeps a copy
type decoder struct {
	mem     Memory
	address uint16
	bytes   []uint8
}

func (d *decoder) next() uint8 {
	v := d.mem.Peek(d.address)
	d.bytes = append(d.bytes, v)
	d.address++
	return v
}

func (d *decoder) peek() uint8 {
	return d.mem.Peek(d.address)
}

// Decode the instruction at the address.
func Decode(mem Memory, address uint16) Entry {
	d := &decoder{mem: mem, address: address}

	e := Entry{Address: address}

	var disp uint8
	var dispRead bool

	op := d.next()

	switch op {
	case 0xcb:
		e.Defn = instructions.Lookup(instructions.CB, d.next())
	case 0xed:
		e.Defn = instructions.Lookup(instructions.ED, d.next())
	case 0xdd, 0xfd:
		prefix := instructions.DD
		if op == 0xfd {
			prefix = instructions.FD
		}

		switch d.peek() {
		case 0xdd, 0xed, 0xfd:
			// the next prefix supersedes this one
			e.Defn = instructions.Lookup(prefix, 0xdd)
		case 0xcb:
			d.next()
			disp = d.next()
			dispRead = true
			if prefix == instructions.DD {
				prefix = instructions.DDCB
			} else {
				prefix = instructions.FDCB
			}
			e.Defn = instructions.Lookup(prefix, d.next())
		default:
			e.Defn = instructions.Lookup(prefix, d.next())
		}
	default:
		e.Defn = instructions.Lookup(instructions.Unprefixed, op)
	}

	// the displacement of an indexed operand comes before any immediate
	// value
	if !dispRead && (e.Defn.Dest.IsIndexed() || e.Defn.Src.IsIndexed()) {
		disp = d.next()
	}

	var imm8 uint8
	var imm16 uint16
	for _, o := range []instructions.Operand{e.Defn.Dest, e.Defn.Src} {
		switch o {
		case instructions.Imm8, instructions.PortImm, instructions.Rel8:
			imm8 = d.next()
		case instructions.Imm16, instructions.IndImm:
			lo := d.next()
			hi := d.next()
			imm16 = uint16(hi)<<8 | uint16(lo)
		}
	}

	e.Bytes = d.bytes

	for _, o := range e.Defn.Operands() {
		e.Operands = append(e.Operands, operand(o, e.Address, len(e.Bytes), disp, imm8, imm16))
	}

	return e
}
