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

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	var area, current Area
	var sa uint16

	s := strings.Builder{}

	// look up area of first address in memory
	_, current = MapAddress(0)

	// a uint32 so that the loop can end after the very top of memory
	for a := uint32(1); a <= 0x10000; a++ {
		if a < 0x10000 {
			_, area = MapAddress(uint16(a))
			if area == current {
				continue
			}
		}

		s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", sa, a-1, current.String()))
		current = area
		sa = uint16(a)
	}

	return s.String()
}

// PortSummary returns a single multiline string detailing the port map for
// both reads and writes.
func PortSummary() string {
	s := strings.Builder{}

	for _, write := range []bool{false, true} {
		dir := "in"
		if write {
			dir = "out"
		}

		for g := 0x00; g <= 0xc0; g += 0x40 {
			even := MapPort(uint16(g), write)
			odd := MapPort(uint16(g+1), write)
			s.WriteString(fmt.Sprintf("%-3s %02x -> %02x\t%s / %s\n", dir, g, g+0x3f, even, odd))
		}
	}

	return s.String()
}
