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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case Fixed:
		return "Fixed"
	case Slot0:
		return "Slot 0"
	case Slot1:
		return "Slot 1"
	case Slot2:
		return "Slot 2"
	case WorkRAM:
		return "Work RAM"
	}

	return "undefined"
}

// The different memory areas of the console.
const (
	Undefined Area = iota
	Fixed
	Slot0
	Slot1
	Slot2
	WorkRAM
)

// The origin and memory top for each area of memory.
const (
	OriginFixed   = uint16(0x0000)
	MemtopFixed   = uint16(0x03ff)
	OriginSlot0   = uint16(0x0400)
	MemtopSlot0   = uint16(0x3fff)
	OriginSlot1   = uint16(0x4000)
	MemtopSlot1   = uint16(0x7fff)
	OriginSlot2   = uint16(0x8000)
	MemtopSlot2   = uint16(0xbfff)
	OriginWorkRAM = uint16(0xc000)
	MemtopWorkRAM = uint16(0xdfff)
)

// Work RAM is mirrored in the top 8k of the address space. The mapper control
// registers sit at the very top of the mirror.
const (
	OriginWorkRAMMirror = uint16(0xe000)
	MemtopWorkRAMMirror = uint16(0xffff)
)

// WorkRAMBits identifies the bits of an address that index work RAM.
const WorkRAMBits = OriginWorkRAM ^ MemtopWorkRAM

// MapAddress translates the address argument from mirror space to primary
// space and returns the area the address belongs to.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address >= OriginWorkRAM:
		return OriginWorkRAM | address&WorkRAMBits, WorkRAM
	case address >= OriginSlot2:
		return address, Slot2
	case address >= OriginSlot1:
		return address, Slot1
	case address >= OriginSlot0:
		return address, Slot0
	}
	return address, Fixed
}
