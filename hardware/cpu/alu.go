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
	"math/bits"

	"github.com/jetsetilly/gophersms/hardware/cpu/registers"
)

const (
	flagC  = registers.Carry
	flagN  = registers.Subtract
	flagPV = registers.Parity
	flagX  = registers.Bit3
	flagH  = registers.HalfCarry
	flagY  = registers.Bit5
	flagZ  = registers.Zero
	flagS  = registers.Sign
	flagXY = registers.Undocumented
)

// sign, zero and the undocumented bits for every 8-bit value
var sz53 [256]uint8

// as above with the addition of the parity flag
var sz53p [256]uint8

func init() {
	for i := range 256 {
		v := uint8(i)
		sz53[i] = v & (flagS | flagXY)
		if v == 0 {
			sz53[i] |= flagZ
		}
		sz53p[i] = sz53[i]
		if bits.OnesCount8(v)%2 == 0 {
			sz53p[i] |= flagPV
		}
	}
}

func parity(v uint8) uint8 {
	return sz53p[v] & flagPV
}

func boolFlag(b bool, flag uint8) uint8 {
	if b {
		return flag
	}
	return 0
}

func (mc *CPU) carry() uint8 {
	return mc.Reg.F & flagC
}

// add8 adds v to the accumulator, with the carry flag if requested
func (mc *CPU) add8(v uint8, withCarry bool) {
	a := mc.Reg.A
	c := uint16(0)
	if withCarry {
		c = uint16(mc.carry())
	}

	sum := uint16(a) + uint16(v) + c
	res := uint8(sum)

	f := sz53[res]
	f |= boolFlag(sum > 0xff, flagC)
	f |= (a ^ v ^ res) & flagH
	f |= boolFlag((a^v^0x80)&(a^res)&0x80 != 0, flagPV)

	mc.Reg.A = res
	mc.Reg.F = f
}

// sub8 subtracts v from the accumulator, with the carry flag if requested.
// the result is discarded for compare operations, in which case the
// undocumented flags come from the operand and not the result
func (mc *CPU) sub8(v uint8, withCarry bool, compare bool) {
	a := mc.Reg.A
	c := uint16(0)
	if withCarry {
		c = uint16(mc.carry())
	}

	diff := uint16(a) - uint16(v) - c
	res := uint8(diff)

	f := sz53[res] | flagN
	f |= boolFlag(diff > 0xff, flagC)
	f |= (a ^ v ^ res) & flagH
	f |= boolFlag((a^v)&(a^res)&0x80 != 0, flagPV)

	if compare {
		f = f&^flagXY | v&flagXY
	} else {
		mc.Reg.A = res
	}

	mc.Reg.F = f
}

func (mc *CPU) and8(v uint8) {
	mc.Reg.A &= v
	mc.Reg.F = sz53p[mc.Reg.A] | flagH
}

func (mc *CPU) xor8(v uint8) {
	mc.Reg.A ^= v
	mc.Reg.F = sz53p[mc.Reg.A]
}

func (mc *CPU) or8(v uint8) {
	mc.Reg.A |= v
	mc.Reg.F = sz53p[mc.Reg.A]
}

func (mc *CPU) inc8(v uint8) uint8 {
	res := v + 1
	f := mc.carry() | sz53[res]
	f |= boolFlag(res&0x0f == 0, flagH)
	f |= boolFlag(v == 0x7f, flagPV)
	mc.Reg.F = f
	return res
}

func (mc *CPU) dec8(v uint8) uint8 {
	res := v - 1
	f := mc.carry() | sz53[res] | flagN
	f |= boolFlag(v&0x0f == 0, flagH)
	f |= boolFlag(v == 0x80, flagPV)
	mc.Reg.F = f
	return res
}

// add16 is the 16-bit ADD. sign, zero and parity are unaffected
func (mc *CPU) add16(a, v uint16) uint16 {
	sum := uint32(a) + uint32(v)
	res := uint16(sum)

	f := mc.Reg.F & (flagS | flagZ | flagPV)
	f |= uint8(res>>8) & flagXY
	f |= boolFlag((uint32(a)^uint32(v)^sum)&0x1000 != 0, flagH)
	f |= boolFlag(sum > 0xffff, flagC)

	mc.Reg.F = f
	mc.Reg.MEMPTR = a + 1
	return res
}

func (mc *CPU) adc16(a, v uint16) uint16 {
	sum := uint32(a) + uint32(v) + uint32(mc.carry())
	res := uint16(sum)

	f := uint8(res>>8) & (flagS | flagXY)
	f |= boolFlag(res == 0, flagZ)
	f |= boolFlag((uint32(a)^uint32(v)^sum)&0x1000 != 0, flagH)
	f |= boolFlag((a^v^0x8000)&(a^res)&0x8000 != 0, flagPV)
	f |= boolFlag(sum > 0xffff, flagC)

	mc.Reg.F = f
	mc.Reg.MEMPTR = a + 1
	return res
}

func (mc *CPU) sbc16(a, v uint16) uint16 {
	diff := uint32(a) - uint32(v) - uint32(mc.carry())
	res := uint16(diff)

	f := uint8(res>>8)&(flagS|flagXY) | flagN
	f |= boolFlag(res == 0, flagZ)
	f |= boolFlag((uint32(a)^uint32(v)^diff)&0x1000 != 0, flagH)
	f |= boolFlag((a^v)&(a^res)&0x8000 != 0, flagPV)
	f |= boolFlag(diff > 0xffff, flagC)

	mc.Reg.F = f
	mc.Reg.MEMPTR = a + 1
	return res
}

// daa adjusts the accumulator after a BCD addition or subtraction
func (mc *CPU) daa() {
	a := mc.Reg.A
	f := mc.Reg.F

	var correction uint8
	carry := f & flagC

	if f&flagH != 0 || a&0x0f > 9 {
		correction |= 0x06
	}
	if carry != 0 || a > 0x99 {
		correction |= 0x60
		carry = flagC
	}

	var half uint8
	if f&flagN != 0 {
		half = boolFlag(f&flagH != 0 && a&0x0f < 6, flagH)
		a -= correction
	} else {
		half = boolFlag(a&0x0f > 9, flagH)
		a += correction
	}

	mc.Reg.A = a
	mc.Reg.F = sz53p[a] | carry | f&flagN | half
}

// the accumulator rotates. sign, zero and parity are unaffected

func (mc *CPU) rotateAccumulator(res uint8, carry bool) {
	mc.Reg.A = res
	mc.Reg.F = mc.Reg.F&(flagS|flagZ|flagPV) | res&flagXY | boolFlag(carry, flagC)
}

// rotate performs the CB prefixed rotate and shift operations. the carry
// argument is the current carry flag for the operations that rotate through
// carry
func rotate(op int, v uint8, carry uint8) (uint8, uint8) {
	var res, c uint8
	switch op {
	case 0: // RLC
		c = v >> 7
		res = v<<1 | c
	case 1: // RRC
		c = v & 0x01
		res = v>>1 | c<<7
	case 2: // RL
		c = v >> 7
		res = v<<1 | carry
	case 3: // RR
		c = v & 0x01
		res = v>>1 | carry<<7
	case 4: // SLA
		c = v >> 7
		res = v << 1
	case 5: // SRA
		c = v & 0x01
		res = v>>1 | v&0x80
	case 6: // SLL
		c = v >> 7
		res = v<<1 | 0x01
	case 7: // SRL
		c = v & 0x01
		res = v >> 1
	}
	return res, sz53p[res] | c
}

// bit sets the flags for the BIT instruction. the undocumented bits come from
// the xy argument, the source of which depends on the addressing mode
func (mc *CPU) bit(n uint8, v uint8, xy uint8) {
	f := mc.carry() | flagH | xy&flagXY
	if v&(1<<n) == 0 {
		f |= flagZ | flagPV
	} else if n == 7 {
		f |= flagS
	}
	mc.Reg.F = f
}
