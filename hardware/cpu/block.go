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

package cpu

import (
	"github.com/jetsetilly/gophersms/hardware/cpu/instructions"
)

// block executes a single iteration of the block transfer, search and I/O
// instructions. the repeating forms move PC back to the start of the
// instruction so that the next call to Step() executes it again. interrupts
// can therefore be serviced between iterations
//
// returns true if the instruction is to repeat
func (mc *CPU) block(op instructions.Operation) bool {
	r := &mc.Reg

	// direction of the HL and DE adjustment
	step := uint16(1)
	switch op {
	case instructions.LDD, instructions.LDDR, instructions.CPD, instructions.CPDR,
		instructions.IND, instructions.INDR, instructions.OUTD, instructions.OTDR:
		step = 0xffff
	}

	var again bool

	switch op {
	case instructions.LDI, instructions.LDD, instructions.LDIR, instructions.LDDR:
		v := mc.mem.Read(r.HL())
		mc.mem.Write(r.DE(), v)
		r.SetHL(r.HL() + step)
		r.SetDE(r.DE() + step)
		r.SetBC(r.BC() - 1)

		n := v + r.A
		f := r.F&(flagS|flagZ|flagC) | n&flagX | boolFlag(n&0x02 != 0, flagY)
		f |= boolFlag(r.BC() != 0, flagPV)
		r.F = f

		again = op.Repeats() && r.BC() != 0

	case instructions.CPI, instructions.CPD, instructions.CPIR, instructions.CPDR:
		v := mc.mem.Read(r.HL())
		res := r.A - v
		r.SetHL(r.HL() + step)
		r.SetBC(r.BC() - 1)
		r.MEMPTR += step

		h := (r.A ^ v ^ res) & flagH
		n := res
		if h != 0 {
			n--
		}
		f := mc.carry() | flagN | sz53[res]&^flagXY | h
		f |= n&flagX | boolFlag(n&0x02 != 0, flagY)
		f |= boolFlag(r.BC() != 0, flagPV)
		r.F = f

		again = op.Repeats() && r.BC() != 0 && res != 0

	case instructions.INI, instructions.IND, instructions.INIR, instructions.INDR:
		v := mc.mem.In(r.BC())
		r.MEMPTR = r.BC() + step
		mc.mem.Write(r.HL(), v)
		r.B--
		r.SetHL(r.HL() + step)

		mc.blockIOFlags(v, uint16(uint8(r.C+uint8(step))))
		again = op.Repeats() && r.B != 0

	case instructions.OUTI, instructions.OUTD, instructions.OTIR, instructions.OTDR:
		v := mc.mem.Read(r.HL())
		r.B--
		mc.mem.Out(r.BC(), v)
		r.MEMPTR = r.BC() + step
		r.SetHL(r.HL() + step)

		mc.blockIOFlags(v, uint16(r.L))
		again = op.Repeats() && r.B != 0
	}

	if again {
		r.PC -= 2
		r.MEMPTR = r.PC + 1
	}

	return again
}

// the flags of the block I/O instructions depend on the value transferred and
// on one of the registers. the k argument is the register value
func (mc *CPU) blockIOFlags(v uint8, k uint16) {
	r := &mc.Reg

	k += uint16(v)

	f := sz53[r.B]
	f |= boolFlag(v&0x80 != 0, flagN)
	f |= boolFlag(k > 0xff, flagH|flagC)
	f |= parity(uint8(k)&0x07 ^ r.B)
	r.F = f
}
