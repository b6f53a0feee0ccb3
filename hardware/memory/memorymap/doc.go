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

// Package memorymap describes the address space and the I/O port space of the
// console. The functions are used by the bus to decode port numbers and by
// the tools that present memory to the user.
//
// The address space is divided into three 16k slots, each of which can be
// mapped to any bank of the cartridge, followed by 8k of work RAM which is
// mirrored once. The first 1k of the first slot is never paged out.
//
// The port space is decoded on only three bits: the two most significant
// bits choose the group and bit 0 chooses the register within the group.
package memorymap
