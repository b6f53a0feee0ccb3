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

package registers

import (
	"fmt"
	"strings"
)

// Registers is the complete register file of the Z80.
type Registers struct {
	A, F, B, C, D, E, H, L uint8

	// the alternate register set. swapped with the main set with EX AF,AF'
	// and EXX
	A_, F_, B_, C_, D_, E_, H_, L_ uint8

	I uint8
	R uint8

	IX uint16
	IY uint16
	SP uint16
	PC uint16

	// internal address latch. not visible to the programmer except through
	// the undocumented flag bits of some instructions
	MEMPTR uint16

	IFF1   bool
	IFF2   bool
	IM     uint8
	Halted bool
}

// Reset the registers to the power-on state.
func (r *Registers) Reset() {
	*r = Registers{
		A:  0xff,
		F:  0xff,
		SP: 0xffff,
	}
}

func (r Registers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("AF=%04x BC=%04x DE=%04x HL=%04x ", r.AF(), r.BC(), r.DE(), r.HL()))
	s.WriteString(fmt.Sprintf("IX=%04x IY=%04x SP=%04x PC=%04x ", r.IX, r.IY, r.SP, r.PC))
	s.WriteString(fmt.Sprintf("I=%02x R=%02x IM%d %s", r.I, r.R, r.IM, FlagString(r.F)))
	if r.IFF1 {
		s.WriteString(" EI")
	} else {
		s.WriteString(" DI")
	}
	if r.Halted {
		s.WriteString(" HALT")
	}
	return s.String()
}

func join(hi, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

func split(v uint16) (uint8, uint8) {
	return uint8(v >> 8), uint8(v)
}

func (r *Registers) AF() uint16 { return join(r.A, r.F) }
func (r *Registers) BC() uint16 { return join(r.B, r.C) }
func (r *Registers) DE() uint16 { return join(r.D, r.E) }
func (r *Registers) HL() uint16 { return join(r.H, r.L) }

func (r *Registers) SetAF(v uint16) { r.A, r.F = split(v) }
func (r *Registers) SetBC(v uint16) { r.B, r.C = split(v) }
func (r *Registers) SetDE(v uint16) { r.D, r.E = split(v) }
func (r *Registers) SetHL(v uint16) { r.H, r.L = split(v) }

// the alternate register pairs

func (r *Registers) AF_() uint16 { return join(r.A_, r.F_) }
func (r *Registers) BC_() uint16 { return join(r.B_, r.C_) }
func (r *Registers) DE_() uint16 { return join(r.D_, r.E_) }
func (r *Registers) HL_() uint16 { return join(r.H_, r.L_) }

func (r *Registers) SetAF_(v uint16) { r.A_, r.F_ = split(v) }
func (r *Registers) SetBC_(v uint16) { r.B_, r.C_ = split(v) }
func (r *Registers) SetDE_(v uint16) { r.D_, r.E_ = split(v) }
func (r *Registers) SetHL_(v uint16) { r.H_, r.L_ = split(v) }

// index register halves

func (r *Registers) IXH() uint8 { return uint8(r.IX >> 8) }
func (r *Registers) IXL() uint8 { return uint8(r.IX) }
func (r *Registers) IYH() uint8 { return uint8(r.IY >> 8) }
func (r *Registers) IYL() uint8 { return uint8(r.IY) }

func (r *Registers) SetIXH(v uint8) { r.IX = r.IX&0x00ff | uint16(v)<<8 }
func (r *Registers) SetIXL(v uint8) { r.IX = r.IX&0xff00 | uint16(v) }
func (r *Registers) SetIYH(v uint8) { r.IY = r.IY&0x00ff | uint16(v)<<8 }
func (r *Registers) SetIYL(v uint8) { r.IY = r.IY&0xff00 | uint16(v) }

// ExchangeAF swaps AF with the alternate AF'.
func (r *Registers) ExchangeAF() {
	r.A, r.A_ = r.A_, r.A
	r.F, r.F_ = r.F_, r.F
}

// Exchange swaps BC, DE and HL with their alternates.
func (r *Registers) Exchange() {
	r.B, r.B_ = r.B_, r.B
	r.C, r.C_ = r.C_, r.C
	r.D, r.D_ = r.D_, r.D
	r.E, r.E_ = r.E_, r.E
	r.H, r.H_ = r.H_, r.H
	r.L, r.L_ = r.L_, r.L
}

// Flag returns true if all bits in the mask are set in the F register.
func (r *Registers) Flag(mask uint8) bool {
	return r.F&mask == mask
}

// SetFlag sets or clears the bits in the mask.
func (r *Registers) SetFlag(mask uint8, set bool) {
	if set {
		r.F |= mask
	} else {
		r.F &^= mask
	}
}

// IncrementR advances the memory refresh register. Only the lower seven bits
// count. Bit 7 is whatever was last loaded with LD R,A.
func (r *Registers) IncrementR() {
	r.R = r.R&0x80 | (r.R+1)&0x7f
}
