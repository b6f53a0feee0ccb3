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

// Package instructions defines the instruction set of the Z80 CPU.
//
// Every instruction is described by a Definition. A Definition names the
// Operation to perform, the destination and source Operands, and the number
// of cycles the instruction takes. Definitions are held in a static table
// indexed by the Prefix chain that preceded the opcode and the opcode itself.
// The table is complete: every opcode in every prefix table has an entry,
// including the undocumented instructions and the opcodes that act as no-ops.
//
// The table is built from the bit pattern of the opcodes when the package is
// initialised. Z80 opcodes are regular enough that the x, y, z, p and q
// fields of the opcode byte select the operation and operands:
//
//	 7 6 5 4 3 2 1 0
//	[ x ][  y  ][ z ]
//	     [ p ][q]
//
// Index register variants (the DD and FD prefixes) are decoded from the same
// pattern with HL, H, L and (HL) replaced by the relevant index register
// operands.
package instructions
