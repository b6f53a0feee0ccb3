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
)

// execute the instruction. returns true if a conditional branch was taken or
// a block instruction is to repeat
func (mc *CPU) execute(defn *instructions.Definition) bool {
	r := &mc.Reg

	switch defn.Operation {
	case instructions.NOP, instructions.PrefixNOP:

	case instructions.HALT:
		r.Halted = true

	case instructions.LD:
		v := mc.readOperand(defn.Src)
		mc.writeOperand(defn.Dest, v)

		// loading the accumulator from I or R affects the flags
		if defn.Src == instructions.RegI || defn.Src == instructions.RegR {
			r.F = mc.carry() | sz53[v] | boolFlag(r.IFF2, flagPV)
		}

	case instructions.LD16:
		mc.writeOperand16(defn.Dest, mc.readOperand16(defn.Src))

	case instructions.PUSH:
		mc.push(mc.readOperand16(defn.Dest))

	case instructions.POP:
		mc.writeOperand16(defn.Dest, mc.pop())

	case instructions.EX:
		switch defn.Dest {
		case instructions.RegAF:
			r.ExchangeAF()
		case instructions.RegDE:
			de := r.DE()
			r.SetDE(r.HL())
			r.SetHL(de)
		case instructions.IndSP:
			v := mc.readOperand16(instructions.IndSP)
			mc.writeOperand16(instructions.IndSP, mc.readOperand16(defn.Src))
			mc.writeOperand16(defn.Src, v)
			r.MEMPTR = v
		default:
			mc.unreachable(defn.Dest)
		}

	case instructions.EXX:
		r.Exchange()

	case instructions.ADD:
		mc.add8(mc.readOperand(defn.Src), false)
	case instructions.ADC:
		mc.add8(mc.readOperand(defn.Src), true)
	case instructions.SUB:
		mc.sub8(mc.readOperand(defn.Src), false, false)
	case instructions.SBC:
		mc.sub8(mc.readOperand(defn.Src), true, false)
	case instructions.AND:
		mc.and8(mc.readOperand(defn.Src))
	case instructions.XOR:
		mc.xor8(mc.readOperand(defn.Src))
	case instructions.OR:
		mc.or8(mc.readOperand(defn.Src))
	case instructions.CP:
		mc.sub8(mc.readOperand(defn.Src), false, true)

	case instructions.INC:
		mc.writeOperand(defn.Dest, mc.inc8(mc.readOperand(defn.Dest)))
	case instructions.DEC:
		mc.writeOperand(defn.Dest, mc.dec8(mc.readOperand(defn.Dest)))

	case instructions.ADD16:
		a := mc.readOperand16(defn.Dest)
		mc.writeOperand16(defn.Dest, mc.add16(a, mc.readOperand16(defn.Src)))
	case instructions.ADC16:
		a := mc.readOperand16(defn.Dest)
		mc.writeOperand16(defn.Dest, mc.adc16(a, mc.readOperand16(defn.Src)))
	case instructions.SBC16:
		a := mc.readOperand16(defn.Dest)
		mc.writeOperand16(defn.Dest, mc.sbc16(a, mc.readOperand16(defn.Src)))
	case instructions.INC16:
		mc.writeOperand16(defn.Dest, mc.readOperand16(defn.Dest)+1)
	case instructions.DEC16:
		mc.writeOperand16(defn.Dest, mc.readOperand16(defn.Dest)-1)

	case instructions.RLCA:
		mc.rotateAccumulator(r.A<<1|r.A>>7, r.A&0x80 != 0)
	case instructions.RRCA:
		mc.rotateAccumulator(r.A>>1|r.A<<7, r.A&0x01 != 0)
	case instructions.RLA:
		mc.rotateAccumulator(r.A<<1|mc.carry(), r.A&0x80 != 0)
	case instructions.RRA:
		mc.rotateAccumulator(r.A>>1|mc.carry()<<7, r.A&0x01 != 0)

	case instructions.DAA:
		mc.daa()

	case instructions.CPL:
		r.A ^= 0xff
		r.F = r.F&(flagS|flagZ|flagPV|flagC) | flagH | flagN | r.A&flagXY

	case instructions.SCF:
		r.F = r.F&(flagS|flagZ|flagPV) | r.A&flagXY | flagC

	case instructions.CCF:
		c := mc.carry()
		r.F = r.F&(flagS|flagZ|flagPV) | r.A&flagXY | boolFlag(c != 0, flagH) | (c ^ flagC)

	case instructions.NEG:
		v := r.A
		r.A = 0
		mc.sub8(v, false, false)

	case instructions.JP:
		if defn.Src == instructions.Imm16 {
			address := mc.fetch16()
			r.MEMPTR = address
			if mc.condition(defn.Dest) {
				r.PC = address
				return true
			}
			return false
		}

		// JP (HL) and the index register equivalents
		r.PC = mc.readOperand16(defn.Src)

	case instructions.JR:
		d := int8(mc.fetch8())
		if mc.condition(defn.Dest) {
			r.PC += uint16(int16(d))
			r.MEMPTR = r.PC
			return true
		}
		return false

	case instructions.DJNZ:
		r.B--
		d := int8(mc.fetch8())
		if r.B != 0 {
			r.PC += uint16(int16(d))
			r.MEMPTR = r.PC
			return true
		}
		return false

	case instructions.CALL:
		address := mc.fetch16()
		r.MEMPTR = address
		if mc.condition(defn.Dest) {
			mc.push(r.PC)
			r.PC = address
			return true
		}
		return false

	case instructions.RET:
		if mc.condition(defn.Dest) {
			r.PC = mc.pop()
			r.MEMPTR = r.PC
			return true
		}
		return false

	case instructions.RETI, instructions.RETN:
		r.PC = mc.pop()
		r.MEMPTR = r.PC
		r.IFF1 = r.IFF2

	case instructions.RST:
		mc.push(r.PC)
		r.PC = defn.Src.Vector()
		r.MEMPTR = r.PC

	case instructions.DI:
		r.IFF1 = false
		r.IFF2 = false

	case instructions.EI:
		r.IFF1 = true
		r.IFF2 = true
		mc.eiPending = true

	case instructions.IM:
		mode := defn.Src.Mode()
		if mode == 2 {
			mc.err = curated.Errorf(UnsupportedInterruptMode, mode, mc.LastResult.Address)
			return false
		}
		r.IM = mode

	case instructions.IN:
		v := mc.readOperand(defn.Src)
		if defn.Src == instructions.PortC {
			r.F = mc.carry() | sz53p[v]
		}
		mc.writeOperand(defn.Dest, v)

	case instructions.OUT:
		mc.writeOperand(defn.Dest, mc.readOperand(defn.Src))

	case instructions.RLC, instructions.RRC, instructions.RL, instructions.RR,
		instructions.SLA, instructions.SRA, instructions.SLL, instructions.SRL:
		var f uint8
		v := mc.readOperand(defn.Dest)
		v, f = rotate(int(defn.Operation-instructions.RLC), v, mc.carry())
		r.F = f
		mc.writeOperand(defn.Dest, v)
		mc.writeOperand(defn.Copy, v)

	case instructions.BIT:
		v := mc.readOperand(defn.Dest)
		xy := v
		switch {
		case defn.Dest == instructions.IndHL:
			xy = uint8(r.MEMPTR >> 8)
		case defn.Dest.IsIndexed():
			xy = uint8(mc.indexAddress >> 8)
		}
		mc.bit(defn.Src.BitNumber(), v, xy)

	case instructions.RES:
		v := mc.readOperand(defn.Dest) &^ (1 << defn.Src.BitNumber())
		mc.writeOperand(defn.Dest, v)
		mc.writeOperand(defn.Copy, v)

	case instructions.SET:
		v := mc.readOperand(defn.Dest) | 1<<defn.Src.BitNumber()
		mc.writeOperand(defn.Dest, v)
		mc.writeOperand(defn.Copy, v)

	case instructions.RRD:
		v := mc.mem.Read(r.HL())
		mc.mem.Write(r.HL(), r.A<<4|v>>4)
		r.A = r.A&0xf0 | v&0x0f
		r.F = mc.carry() | sz53p[r.A]
		r.MEMPTR = r.HL() + 1

	case instructions.RLD:
		v := mc.mem.Read(r.HL())
		mc.mem.Write(r.HL(), v<<4|r.A&0x0f)
		r.A = r.A&0xf0 | v>>4
		r.F = mc.carry() | sz53p[r.A]
		r.MEMPTR = r.HL() + 1

	default:
		if defn.Operation.IsBlock() {
			return mc.block(defn.Operation)
		}
		mc.unreachable(defn.Src)
	}

	return false
}
