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
	"io"
)

// Linear disassembles memory from the start address until the instruction
// containing the end address. The end address is inclusive.
func Linear(mem Memory, start uint16, end uint16) []Entry {
	var entries []Entry

	address := uint32(start)
	for address <= uint32(end) {
		e := Decode(mem, uint16(address))
		entries = append(entries, e)
		address += uint32(len(e.Bytes))
	}

	return entries
}

// Write entries to the io.Writer, one per line.
func Write(output io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(output, e); err != nil {
			return err
		}
	}
	return nil
}
