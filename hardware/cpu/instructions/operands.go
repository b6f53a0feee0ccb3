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

import "fmt"

// Operand identifies where an instruction's data comes from or goes to. The
// list of operands is closed. The CPU resolves each operand to a value or an
// address at the time the instruction is executed.
type Operand int

// List of valid Operand values.
const (
	None Operand = iota

	// 8-bit registers
	RegA
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
	RegI
	RegR
	RegIXH
	RegIXL
	RegIYH
	RegIYL

	// 16-bit registers
	RegAF
	RegAF_
	RegBC
	RegDE
	RegHL
	RegSP
	RegIX
	RegIY

	// memory addressed by register or register plus displacement
	IndBC
	IndDE
	IndHL
	IndSP
	IndIX
	IndIY

	// memory addressed by the 16-bit immediate value
	IndImm

	// immediate values and relative displacement
	Imm8
	Imm16
	Rel8

	// I/O ports
	PortImm
	PortC

	// literal zero. used only by the undocumented OUT (C),0
	Zero

	// branch conditions. in encoding order
	CondNZ
	CondZ
	CondNC
	CondC
	CondPO
	CondPE
	CondP
	CondM

	// bit numbers for BIT, RES and SET. Bit0 + n
	Bit0
	Bit1
	Bit2
	Bit3
	Bit4
	Bit5
	Bit6
	Bit7

	// restart vectors. Rst00 + n is the vector n * 8
	Rst00
	Rst08
	Rst10
	Rst18
	Rst20
	Rst28
	Rst30
	Rst38

	// interrupt modes
	Mode0
	Mode1
	Mode2

	numOperands
)

var operandNames = [numOperands]string{
	"",
	"A", "B", "C", "D", "E", "H", "L", "I", "R", "IXH", "IXL", "IYH", "IYL",
	"AF", "AF'", "BC", "DE", "HL", "SP", "IX", "IY",
	"(BC)", "(DE)", "(HL)", "(SP)", "(IX+d)", "(IY+d)",
	"(nn)",
	"n", "nn", "e",
	"(n)", "(C)",
	"0",
	"NZ", "Z", "NC", "C", "PO", "PE", "P", "M",
	"0", "1", "2", "3", "4", "5", "6", "7",
	"00H", "08H", "10H", "18H", "20H", "28H", "30H", "38H",
	"0", "1", "2",
}

func (o Operand) String() string {
	if o < 0 || o >= numOperands {
		return fmt.Sprintf("operand(%d)", int(o))
	}
	return operandNames[o]
}

// IsIndexed returns true if the operand is memory addressed by an index
// register plus displacement.
func (o Operand) IsIndexed() bool {
	return o == IndIX || o == IndIY
}

// BitNumber returns the bit number for a bit operand.
func (o Operand) BitNumber() uint8 {
	return uint8(o - Bit0)
}

// Vector returns the restart address for a restart operand.
func (o Operand) Vector() uint16 {
	return uint16(o-Rst00) * 8
}

// Mode returns the interrupt mode for a mode operand.
func (o Operand) Mode() uint8 {
	return uint8(o - Mode0)
}
