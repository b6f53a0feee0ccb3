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

// Package cartridge implements the memory mapper of the console. The mapper
// sits between the CPU address space and the cartridge ROM, dividing the
// address space into three switchable 16k slots followed by 16k of RAM.
//
// Two mapping schemes are supported. The Sega scheme is used by the majority
// of cartridges and is the default. The Codemasters scheme is detected by the
// presence of a checksum and its complement in the cartridge header.
//
// The Sega scheme:
//
//	$0000-$03ff	always bank 0 (the interrupt vectors never unmap)
//	$0400-$3fff	slot 0, selected by writing to $fffd
//	$4000-$7fff	slot 1, selected by writing to $fffe
//	$8000-$bfff	slot 2, selected by writing to $ffff, or save RAM
//	$c000-$dfff	work RAM
//	$e000-$ffff	work RAM mirror
//
// The RAM control register at $fffc enables save RAM with bit 3. Bit 2
// selects which of the two 16k save RAM banks is mapped into slot 2. Writes to
// the control registers also reach the underlying RAM.
//
// The Codemasters scheme has no fixed area at the start of memory. The slots
// are selected by writing to $0000, $4000 and $8000 respectively.
package cartridge
