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

// Package registers implements the register file of the Z80 CPU.
//
// The 8-bit registers are the canonical storage. The 16-bit register pairs
// (AF, BC, DE, HL) are composed from their halves on demand and are written
// by splitting the value back into the halves. There is no separate storage
// for a pair so the two views can never disagree.
//
// The index registers, the stack pointer and the program counter are
// naturally 16-bit and are stored as such. The IXH, IXL, IYH and IYL halves
// used by undocumented instructions are accessed with functions.
package registers
