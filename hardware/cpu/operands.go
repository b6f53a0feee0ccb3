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
	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware/cpu/instructions"
	"github.com/jetsetilly/gophersms/hardware/cpu/registers"
)

// resolveIndex fetches the displacement byte and computes the address of the
// indexed operand. subsequent references to the operand during the same
// instruction use the same address
func (mc *CPU) resolveIndex(o instructions.Operand) {
	if mc.indexResolved {
		return
	}

	d := int8(mc.fetch8())
	base := mc.Reg.IX
	if o == instructions.IndIY {
		base = mc.Reg.IY
	}

	mc.indexAddress = base + uint16(int16(d))
	mc.indexResolved = true
	mc.Reg.MEMPTR = mc.indexAddress
}

func (mc *CPU) unreachable(o instructions.Operand) {
	if mc.err == nil {
		mc.err = curated.Errorf(UnreachableOperand, o, mc.LastResult.Defn)
	}
}

// readOperand returns the 8-bit value of the operand
func (mc *CPU) readOperand(o instructions.Operand) uint8 {
	r := &mc.Reg

	switch o {
	case instructions.RegA:
		return r.A
	case instructions.RegB:
		return r.B
	case instructions.RegC:
		return r.C
	case instructions.RegD:
		return r.D
	case instructions.RegE:
		return r.E
	case instructions.RegH:
		return r.H
	case instructions.RegL:
		return r.L
	case instructions.RegI:
		return r.I
	case instructions.RegR:
		return r.R
	case instructions.RegIXH:
		return r.IXH()
	case instructions.RegIXL:
		return r.IXL()
	case instructions.RegIYH:
		return r.IYH()
	case instructions.RegIYL:
		return r.IYL()
	case instructions.IndBC:
		r.MEMPTR = r.BC() + 1
		return mc.mem.Read(r.BC())
	case instructions.IndDE:
		r.MEMPTR = r.DE() + 1
		return mc.mem.Read(r.DE())
	case instructions.IndHL:
		return mc.mem.Read(r.HL())
	case instructions.IndIX, instructions.IndIY:
		mc.resolveIndex(o)
		return mc.mem.Read(mc.indexAddress)
	case instructions.IndImm:
		address := mc.fetch16()
		r.MEMPTR = address + 1
		return mc.mem.Read(address)
	case instructions.Imm8:
		return mc.fetch8()
	case instructions.PortImm:
		port := uint16(r.A)<<8 | uint16(mc.fetch8())
		r.MEMPTR = port + 1
		return mc.mem.In(port)
	case instructions.PortC:
		r.MEMPTR = r.BC() + 1
		return mc.mem.In(r.BC())
	case instructions.Zero:
		return 0
	}

	mc.unreachable(o)
	return 0
}

// writeOperand sets the 8-bit value of the operand
func (mc *CPU) writeOperand(o instructions.Operand, v uint8) {
	r := &mc.Reg

	switch o {
	case instructions.None:
		// the value is discarded
	case instructions.RegA:
		r.A = v
	case instructions.RegB:
		r.B = v
	case instructions.RegC:
		r.C = v
	case instructions.RegD:
		r.D = v
	case instructions.RegE:
		r.E = v
	case instructions.RegH:
		r.H = v
	case instructions.RegL:
		r.L = v
	case instructions.RegI:
		r.I = v
	case instructions.RegR:
		r.R = v
	case instructions.RegIXH:
		r.SetIXH(v)
	case instructions.RegIXL:
		r.SetIXL(v)
	case instructions.RegIYH:
		r.SetIYH(v)
	case instructions.RegIYL:
		r.SetIYL(v)
	case instructions.IndBC:
		mc.mem.Write(r.BC(), v)
		r.MEMPTR = uint16(r.A)<<8 | (r.BC()+1)&0x00ff
	case instructions.IndDE:
		mc.mem.Write(r.DE(), v)
		r.MEMPTR = uint16(r.A)<<8 | (r.DE()+1)&0x00ff
	case instructions.IndHL:
		mc.mem.Write(r.HL(), v)
	case instructions.IndIX, instructions.IndIY:
		mc.resolveIndex(o)
		mc.mem.Write(mc.indexAddress, v)
	case instructions.IndImm:
		address := mc.fetch16()
		mc.mem.Write(address, v)
		r.MEMPTR = uint16(r.A)<<8 | (address+1)&0x00ff
	case instructions.PortImm:
		n := mc.fetch8()
		mc.mem.Out(uint16(r.A)<<8|uint16(n), v)
		r.MEMPTR = uint16(r.A)<<8 | uint16(n+1)
	case instructions.PortC:
		mc.mem.Out(r.BC(), v)
		r.MEMPTR = r.BC() + 1
	default:
		mc.unreachable(o)
	}
}

// readOperand16 returns the 16-bit value of the operand
func (mc *CPU) readOperand16(o instructions.Operand) uint16 {
	r := &mc.Reg

	switch o {
	case instructions.RegAF:
		return r.AF()
	case instructions.RegBC:
		return r.BC()
	case instructions.RegDE:
		return r.DE()
	case instructions.RegHL:
		return r.HL()
	case instructions.RegSP:
		return r.SP
	case instructions.RegIX:
		return r.IX
	case instructions.RegIY:
		return r.IY
	case instructions.Imm16:
		return mc.fetch16()
	case instructions.IndImm:
		address := mc.fetch16()
		r.MEMPTR = address + 1
		return mc.read16(address)
	case instructions.IndSP:
		return mc.read16(r.SP)
	}

	mc.unreachable(o)
	return 0
}

// writeOperand16 sets the 16-bit value of the operand
func (mc *CPU) writeOperand16(o instructions.Operand, v uint16) {
	r := &mc.Reg

	switch o {
	case instructions.RegAF:
		r.SetAF(v)
	case instructions.RegBC:
		r.SetBC(v)
	case instructions.RegDE:
		r.SetDE(v)
	case instructions.RegHL:
		r.SetHL(v)
	case instructions.RegSP:
		r.SP = v
	case instructions.RegIX:
		r.IX = v
	case instructions.RegIY:
		r.IY = v
	case instructions.IndImm:
		address := mc.fetch16()
		r.MEMPTR = address + 1
		mc.write16(address, v)
	case instructions.IndSP:
		mc.write16(r.SP, v)
	default:
		mc.unreachable(o)
	}
}

// condition returns true if the branch condition is met. the None operand is
// the unconditional branch
func (mc *CPU) condition(o instructions.Operand) bool {
	f := mc.Reg.F

	switch o {
	case instructions.None:
		return true
	case instructions.CondNZ:
		return f&registers.Zero == 0
	case instructions.CondZ:
		return f&registers.Zero != 0
	case instructions.CondNC:
		return f&registers.Carry == 0
	case instructions.CondC:
		return f&registers.Carry != 0
	case instructions.CondPO:
		return f&registers.Parity == 0
	case instructions.CondPE:
		return f&registers.Parity != 0
	case instructions.CondP:
		return f&registers.Sign == 0
	case instructions.CondM:
		return f&registers.Sign != 0
	}

	mc.unreachable(o)
	return false
}
