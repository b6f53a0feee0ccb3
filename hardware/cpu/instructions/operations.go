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

// Operation is the action performed by an instruction.
type Operation int

// List of valid Operation values. The zero value is not valid and indicates
// an unpopulated table entry.
const (
	Invalid Operation = iota

	// PrefixOp entries are never executed. The opcode introduces the next
	// table in the prefix chain
	PrefixOp

	// a DD or FD prefix followed by another prefix. the first prefix is
	// consumed as a four cycle no-op and the second prefix starts a new
	// instruction
	PrefixNOP

	NOP
	HALT

	LD
	LD16
	PUSH
	POP
	EX
	EXX

	ADD
	ADC
	SUB
	SBC
	AND
	XOR
	OR
	CP
	INC
	DEC

	ADD16
	ADC16
	SBC16
	INC16
	DEC16

	RLCA
	RRCA
	RLA
	RRA
	DAA
	CPL
	SCF
	CCF
	NEG

	JP
	JR
	DJNZ
	CALL
	RET
	RETI
	RETN
	RST

	DI
	EI
	IM

	IN
	OUT

	RLC
	RRC
	RL
	RR
	SLA
	SRA
	SLL
	SRL
	BIT
	RES
	SET
	RRD
	RLD

	LDI
	LDD
	LDIR
	LDDR
	CPI
	CPD
	CPIR
	CPDR
	INI
	IND
	INIR
	INDR
	OUTI
	OUTD
	OTIR
	OTDR

	numOperations
)

var operationNames = [numOperations]string{
	"invalid", "prefix", "nop*", "NOP", "HALT",
	"LD", "LD", "PUSH", "POP", "EX", "EXX",
	"ADD", "ADC", "SUB", "SBC", "AND", "XOR", "OR", "CP", "INC", "DEC",
	"ADD", "ADC", "SBC", "INC", "DEC",
	"RLCA", "RRCA", "RLA", "RRA", "DAA", "CPL", "SCF", "CCF", "NEG",
	"JP", "JR", "DJNZ", "CALL", "RET", "RETI", "RETN", "RST",
	"DI", "EI", "IM",
	"IN", "OUT",
	"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SLL", "SRL", "BIT", "RES", "SET", "RRD", "RLD",
	"LDI", "LDD", "LDIR", "LDDR", "CPI", "CPD", "CPIR", "CPDR",
	"INI", "IND", "INIR", "INDR", "OUTI", "OUTD", "OTIR", "OTDR",
}

func (o Operation) String() string {
	if o < 0 || o >= numOperations {
		return "unknown"
	}
	return operationNames[o]
}

// IsBlock returns true if the operation is one of the block transfer, search
// or I/O instructions.
func (o Operation) IsBlock() bool {
	return o >= LDI && o <= OTDR
}

// Repeats returns true if the operation is a repeating block instruction.
func (o Operation) Repeats() bool {
	switch o {
	case LDIR, LDDR, CPIR, CPDR, INIR, INDR, OTIR, OTDR:
		return true
	}
	return false
}
