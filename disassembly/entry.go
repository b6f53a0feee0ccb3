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
	"fmt"
	"strings"

	"github.com/jetsetilly/gophersms/hardware/cpu/instructions"
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint16
	Bytes   []uint8
	Defn    *instructions.Definition

	// operands with the placeholders replaced by the values in memory
	Operands []string
}

// Mnemonic returns the instruction with resolved operands.
func (e Entry) Mnemonic() string {
	if len(e.Operands) == 0 {
		return e.Defn.Operation.String()
	}
	return fmt.Sprintf("%s %s", e.Defn.Operation, strings.Join(e.Operands, ","))
}

// Bytecode returns the bytes of the instruction as a string.
func (e Entry) Bytecode() string {
	s := make([]string, len(e.Bytes))
	for i, b := range e.Bytes {
		s[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(s, " ")
}

func (e Entry) String() string {
	return fmt.Sprintf("%04x  %-12s %s", e.Address, e.Bytecode(), e.Mnemonic())
}

func operand(o instructions.Operand, address uint16, length int, disp uint8, imm8 uint8, imm16 uint16) string {
	switch o {
	case instructions.Imm8:
		return fmt.Sprintf("$%02x", imm8)
	case instructions.PortImm:
		return fmt.Sprintf("($%02x)", imm8)
	case instructions.Rel8:
		return fmt.Sprintf("$%04x", address+uint16(length)+uint16(int8(imm8)))
	case instructions.Imm16:
		return fmt.Sprintf("$%04x", imm16)
	case instructions.IndImm:
		return fmt.Sprintf("($%04x)", imm16)
	case instructions.IndIX, instructions.IndIY:
		reg := "IX"
		if o == instructions.IndIY {
			reg = "IY"
		}
		d := int8(disp)
		if d < 0 {
			return fmt.Sprintf("(%s-$%02x)", reg, -int(d))
		}
		return fmt.Sprintf("(%s+$%02x)", reg, d)
	}
	return o.String()
}
