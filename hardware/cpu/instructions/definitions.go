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

import (
	"fmt"
	"strings"
)

// Prefix identifies the table an opcode is decoded with.
type Prefix int

// List of valid Prefix values.
const (
	Unprefixed Prefix = iota
	CB
	DD
	ED
	FD
	DDCB
	FDCB
	NumPrefixes
)

func (p Prefix) String() string {
	switch p {
	case Unprefixed:
		return ""
	case CB:
		return "CB"
	case DD:
		return "DD"
	case ED:
		return "ED"
	case FD:
		return "FD"
	case DDCB:
		return "DDCB"
	case FDCB:
		return "FDCB"
	}
	return "??"
}

// Definition describes a single instruction.
type Definition struct {
	Prefix    Prefix
	OpCode    uint8
	Operation Operation

	// the destination and source operands. for BIT, RES and SET the source
	// operand is the bit number
	Dest Operand
	Src  Operand

	// the register that receives a copy of the result of the undocumented
	// DDCB and FDCB instructions
	Copy Operand

	// the number of cycles taken by the instruction
	Cycles int

	// cycles taken if a conditional branch is taken or if a block
	// instruction repeats. zero if the instruction has no such variation
	CyclesTaken int

	// the instruction is not part of the documented instruction set
	Undocumented bool
}

// Operands returns the operands of the instruction in the order they are
// written in the mnemonic.
func (defn Definition) Operands() []Operand {
	var operands []Operand

	add := func(o Operand) {
		if o != None {
			operands = append(operands, o)
		}
	}

	switch defn.Operation {
	case BIT, RES, SET:
		add(defn.Src)
		add(defn.Dest)
	default:
		add(defn.Dest)
		add(defn.Src)
	}
	add(defn.Copy)

	return operands
}

// String returns the mnemonic for the instruction with operand placeholders.
func (defn Definition) String() string {
	operands := defn.Operands()
	if len(operands) == 0 {
		return defn.Operation.String()
	}

	s := make([]string, len(operands))
	for i, o := range operands {
		s[i] = o.String()
	}
	return fmt.Sprintf("%s %s", defn.Operation, strings.Join(s, ","))
}

// Bytes returns the opcode bytes of the instruction, including prefixes. For
// the indexed bit instructions the displacement byte sits between the
// prefixes and the opcode and is shown as "dd".
func (defn Definition) Bytes() string {
	switch defn.Prefix {
	case Unprefixed:
		return fmt.Sprintf("%02x", defn.OpCode)
	case DDCB:
		return fmt.Sprintf("dd cb dd %02x", defn.OpCode)
	case FDCB:
		return fmt.Sprintf("fd cb dd %02x", defn.OpCode)
	}
	return fmt.Sprintf("%s %02x", strings.ToLower(defn.Prefix.String()), defn.OpCode)
}

// the complete instruction table
var table [NumPrefixes][256]Definition

// Lookup returns the definition for the opcode in the table of the prefix.
//
// The returned pointer is to the shared instruction table, which is built
// once at program start. Callers must not write through the pointer; copy
// the Definition if a modified version is needed.
func Lookup(prefix Prefix, opcode uint8) *Definition {
	return &table[prefix][opcode]
}

func init() {
	for op := range 256 {
		table[Unprefixed][op] = decodeMain(Unprefixed, uint8(op))
		table[DD][op] = decodeMain(DD, uint8(op))
		table[FD][op] = decodeMain(FD, uint8(op))
		table[ED][op] = decodeED(uint8(op))
		table[CB][op] = decodeCB(CB, uint8(op))
		table[DDCB][op] = decodeCB(DDCB, uint8(op))
		table[FDCB][op] = decodeCB(FDCB, uint8(op))
	}
}
