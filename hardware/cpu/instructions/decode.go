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

package instructions

// operand substitution for the index prefixes
type substitution struct {
	hl  Operand
	h   Operand
	l   Operand
	ind Operand
}

func substitute(prefix Prefix) substitution {
	switch prefix {
	case DD, DDCB:
		return substitution{hl: RegIX, h: RegIXH, l: RegIXL, ind: IndIX}
	case FD, FDCB:
		return substitution{hl: RegIY, h: RegIYH, l: RegIYL, ind: IndIY}
	}
	return substitution{hl: RegHL, h: RegH, l: RegL, ind: IndHL}
}

// the 8-bit register operands in encoding order without substitution
var r8 = [8]Operand{RegB, RegC, RegD, RegE, RegH, RegL, IndHL, RegA}

func (s substitution) r(i uint8) Operand {
	switch i {
	case 4:
		return s.h
	case 5:
		return s.l
	case 6:
		return s.ind
	}
	return r8[i]
}

// register pairs for most 16-bit instructions
func (s substitution) rp(p uint8) Operand {
	return [4]Operand{RegBC, RegDE, s.hl, RegSP}[p]
}

// register pairs for PUSH and POP
func (s substitution) rp2(p uint8) Operand {
	return [4]Operand{RegBC, RegDE, s.hl, RegAF}[p]
}

var alu = [8]Operation{ADD, ADC, SUB, SBC, AND, XOR, OR, CP}
var rot = [8]Operation{RLC, RRC, RL, RR, SLA, SRA, SLL, SRL}
var accumulatorOps = [8]Operation{RLCA, RRCA, RLA, RRA, DAA, CPL, SCF, CCF}

func condition(y uint8) Operand {
	return CondNZ + Operand(y)
}

func fields(op uint8) (x, y, z, p, q uint8) {
	x = op >> 6
	y = (op >> 3) & 0x07
	z = op & 0x07
	p = y >> 1
	q = y & 0x01
	return
}

// decodeMain decodes the unprefixed table and the DD and FD tables
func decodeMain(prefix Prefix, op uint8) Definition {
	x, y, z, p, q := fields(op)
	s := substitute(prefix)
	indexed := prefix != Unprefixed

	defn := Definition{Prefix: prefix, OpCode: op}

	switch x {
	case 0:
		switch z {
		case 0:
			switch y {
			case 0:
				defn.Operation, defn.Cycles = NOP, 4
			case 1:
				defn.Operation, defn.Dest, defn.Src, defn.Cycles = EX, RegAF, RegAF_, 4
			case 2:
				defn.Operation, defn.Src, defn.Cycles, defn.CyclesTaken = DJNZ, Rel8, 8, 13
			case 3:
				defn.Operation, defn.Src, defn.Cycles = JR, Rel8, 12
			default:
				defn.Operation, defn.Dest, defn.Src, defn.Cycles, defn.CyclesTaken = JR, condition(y-4), Rel8, 7, 12
			}
		case 1:
			if q == 0 {
				defn.Operation, defn.Dest, defn.Src, defn.Cycles = LD16, s.rp(p), Imm16, 10
			} else {
				defn.Operation, defn.Dest, defn.Src, defn.Cycles = ADD16, s.hl, s.rp(p), 11
			}
		case 2:
			defn.Operation = LD
			switch p {
			case 0:
				defn.Dest, defn.Src, defn.Cycles = IndBC, RegA, 7
			case 1:
				defn.Dest, defn.Src, defn.Cycles = IndDE, RegA, 7
			case 2:
				defn.Operation, defn.Dest, defn.Src, defn.Cycles = LD16, IndImm, s.hl, 16
			case 3:
				defn.Dest, defn.Src, defn.Cycles = IndImm, RegA, 13
			}
			if q == 1 {
				defn.Dest, defn.Src = defn.Src, defn.Dest
			}
		case 3:
			if q == 0 {
				defn.Operation = INC16
			} else {
				defn.Operation = DEC16
			}
			defn.Dest, defn.Cycles = s.rp(p), 6
		case 4, 5:
			if z == 4 {
				defn.Operation = INC
			} else {
				defn.Operation = DEC
			}
			defn.Dest, defn.Cycles = s.r(y), 4
			if y == 6 {
				defn.Cycles = 11
				if indexed {
					defn.Cycles = 23
				}
			}
		case 6:
			defn.Operation, defn.Dest, defn.Src, defn.Cycles = LD, s.r(y), Imm8, 7
			if y == 6 {
				defn.Cycles = 10
				if indexed {
					defn.Cycles = 19
				}
			}
		case 7:
			defn.Operation, defn.Cycles = accumulatorOps[y], 4
		}

	case 1:
		if y == 6 && z == 6 {
			defn.Operation, defn.Cycles = HALT, 4
			break
		}

		defn.Operation, defn.Cycles = LD, 4

		// when one operand is the indexed memory the other operand is never
		// substituted
		if y == 6 {
			defn.Dest, defn.Src, defn.Cycles = s.ind, r8[z], 7
		} else if z == 6 {
			defn.Dest, defn.Src, defn.Cycles = r8[y], s.ind, 7
		} else {
			defn.Dest, defn.Src = s.r(y), s.r(z)
		}
		if indexed && (y == 6 || z == 6) {
			defn.Cycles = 19
		}

	case 2:
		defn.Operation, defn.Dest, defn.Src, defn.Cycles = alu[y], RegA, s.r(z), 4
		if z == 6 {
			defn.Cycles = 7
			if indexed {
				defn.Cycles = 19
			}
		}

	case 3:
		switch z {
		case 0:
			defn.Operation, defn.Dest, defn.Cycles, defn.CyclesTaken = RET, condition(y), 5, 11
		case 1:
			if q == 0 {
				defn.Operation, defn.Dest, defn.Cycles = POP, s.rp2(p), 10
				break
			}
			switch p {
			case 0:
				defn.Operation, defn.Cycles = RET, 10
			case 1:
				defn.Operation, defn.Cycles = EXX, 4
			case 2:
				defn.Operation, defn.Src, defn.Cycles = JP, s.hl, 4
			case 3:
				defn.Operation, defn.Dest, defn.Src, defn.Cycles = LD16, RegSP, s.hl, 6
			}
		case 2:
			defn.Operation, defn.Dest, defn.Src, defn.Cycles = JP, condition(y), Imm16, 10
		case 3:
			switch y {
			case 0:
				defn.Operation, defn.Src, defn.Cycles = JP, Imm16, 10
			case 1:
				defn.Operation, defn.Cycles = PrefixOp, 4
			case 2:
				defn.Operation, defn.Dest, defn.Src, defn.Cycles = OUT, PortImm, RegA, 11
			case 3:
				defn.Operation, defn.Dest, defn.Src, defn.Cycles = IN, RegA, PortImm, 11
			case 4:
				defn.Operation, defn.Dest, defn.Src, defn.Cycles = EX, IndSP, s.hl, 19
			case 5:
				// EX DE,HL is never substituted
				defn.Operation, defn.Dest, defn.Src, defn.Cycles = EX, RegDE, RegHL, 4
			case 6:
				defn.Operation, defn.Cycles = DI, 4
			case 7:
				defn.Operation, defn.Cycles = EI, 4
			}
		case 4:
			defn.Operation, defn.Dest, defn.Src, defn.Cycles, defn.CyclesTaken = CALL, condition(y), Imm16, 10, 17
		case 5:
			if q == 0 {
				defn.Operation, defn.Dest, defn.Cycles = PUSH, s.rp2(p), 11
				break
			}
			if p == 0 {
				defn.Operation, defn.Src, defn.Cycles = CALL, Imm16, 17
			} else {
				defn.Operation, defn.Cycles = PrefixOp, 4
			}
		case 6:
			defn.Operation, defn.Dest, defn.Src, defn.Cycles = alu[y], RegA, Imm8, 7
		case 7:
			defn.Operation, defn.Src, defn.Cycles = RST, Rst00+Operand(y), 11
		}
	}

	if indexed {
		switch op {
		case 0xdd, 0xed, 0xfd:
			// the index prefix is superseded by the following prefix
			return Definition{Prefix: prefix, OpCode: op, Operation: PrefixNOP, Cycles: 4, Undocumented: true}
		case 0xcb:
			return defn
		}

		// the (IX+d) forms have already had their cycles set. everything else
		// costs an extra four cycles for the prefix
		if !usesOperand(defn, s.ind) {
			defn.Cycles += 4
			if defn.CyclesTaken > 0 {
				defn.CyclesTaken += 4
			}
		}

		// the prefix has no effect on instructions that do not refer to HL
		// or its halves. those instructions and the ones that refer to the
		// halves are undocumented
		defn.Undocumented = !usesOperand(defn, s.hl) && !usesOperand(defn, s.ind)
	}

	return defn
}

func usesOperand(defn Definition, o Operand) bool {
	return defn.Dest == o || defn.Src == o
}

// decodeED decodes the ED table
func decodeED(op uint8) Definition {
	x, y, z, p, q := fields(op)
	s := substitute(Unprefixed)

	// most of the table is unused and acts as an eight cycle no-op
	defn := Definition{Prefix: ED, OpCode: op, Operation: NOP, Cycles: 8, Undocumented: true}

	switch x {
	case 1:
		defn.Undocumented = false
		switch z {
		case 0:
			defn.Operation, defn.Dest, defn.Src, defn.Cycles = IN, s.r(y), PortC, 12
			if y == 6 {
				// IN (C) sets the flags but discards the value
				defn.Dest = None
				defn.Undocumented = true
			}
		case 1:
			defn.Operation, defn.Dest, defn.Src, defn.Cycles = OUT, PortC, s.r(y), 12
			if y == 6 {
				defn.Src = Zero
				defn.Undocumented = true
			}
		case 2:
			if q == 0 {
				defn.Operation = SBC16
			} else {
				defn.Operation = ADC16
			}
			defn.Dest, defn.Src, defn.Cycles = RegHL, s.rp(p), 15
		case 3:
			defn.Operation, defn.Cycles = LD16, 20
			if q == 0 {
				defn.Dest, defn.Src = IndImm, s.rp(p)
			} else {
				defn.Dest, defn.Src = s.rp(p), IndImm
			}
		case 4:
			defn.Operation, defn.Cycles = NEG, 8
			defn.Undocumented = y != 0
		case 5:
			defn.Operation, defn.Cycles = RETN, 14
			if y == 1 {
				defn.Operation = RETI
			}
			defn.Undocumented = y > 1
		case 6:
			// the 0/1 modes at y == 1 and y == 5 are treated as mode 0
			defn.Operation, defn.Src, defn.Cycles = IM, [8]Operand{Mode0, Mode0, Mode1, Mode2, Mode0, Mode0, Mode1, Mode2}[y], 8
			defn.Undocumented = y > 3 || y == 1
		case 7:
			switch y {
			case 0:
				defn.Operation, defn.Dest, defn.Src, defn.Cycles = LD, RegI, RegA, 9
			case 1:
				defn.Operation, defn.Dest, defn.Src, defn.Cycles = LD, RegR, RegA, 9
			case 2:
				defn.Operation, defn.Dest, defn.Src, defn.Cycles = LD, RegA, RegI, 9
			case 3:
				defn.Operation, defn.Dest, defn.Src, defn.Cycles = LD, RegA, RegR, 9
			case 4:
				defn.Operation, defn.Cycles = RRD, 18
			case 5:
				defn.Operation, defn.Cycles = RLD, 18
			default:
				defn.Undocumented = true
			}
		}

	case 2:
		if z <= 3 && y >= 4 {
			block := [4][4]Operation{
				{LDI, CPI, INI, OUTI},
				{LDD, CPD, IND, OUTD},
				{LDIR, CPIR, INIR, OTIR},
				{LDDR, CPDR, INDR, OTDR},
			}
			defn.Operation = block[y-4][z]
			defn.Cycles = 16
			if defn.Operation.Repeats() {
				defn.CyclesTaken = 21
			}
			defn.Undocumented = false
		}
	}

	return defn
}

// decodeCB decodes the CB, DDCB and FDCB tables
func decodeCB(prefix Prefix, op uint8) Definition {
	x, y, z, _, _ := fields(op)
	s := substitute(prefix)
	indexed := prefix != CB

	defn := Definition{Prefix: prefix, OpCode: op}

	// the target of the indexed instructions is always the indexed memory
	// location. any register named by the opcode receives a copy of the
	// result
	target := r8[z]
	if indexed {
		target = s.ind
		if z != 6 && x != 1 {
			defn.Copy = r8[z]
		}
		defn.Undocumented = z != 6
	}

	switch x {
	case 0:
		defn.Operation, defn.Dest = rot[y], target
		defn.Undocumented = defn.Undocumented || rot[y] == SLL
	case 1:
		defn.Operation, defn.Dest, defn.Src = BIT, target, Bit0+Operand(y)
	case 2:
		defn.Operation, defn.Dest, defn.Src = RES, target, Bit0+Operand(y)
	case 3:
		defn.Operation, defn.Dest, defn.Src = SET, target, Bit0+Operand(y)
	}

	switch {
	case indexed && x == 1:
		defn.Cycles = 20
	case indexed:
		defn.Cycles = 23
	case z == 6 && x == 1:
		defn.Cycles = 12
	case z == 6:
		defn.Cycles = 15
	default:
		defn.Cycles = 8
	}

	return defn
}
