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

package registers

import "strings"

// Flag bits of the F register.
const (
	Carry     uint8 = 0x01
	Subtract  uint8 = 0x02
	Parity    uint8 = 0x04
	Overflow  uint8 = Parity
	Bit3      uint8 = 0x08
	HalfCarry uint8 = 0x10
	Bit5      uint8 = 0x20
	Zero      uint8 = 0x40
	Sign      uint8 = 0x80
)

// Undocumented is the mask of the two flag bits that mirror bits 3 and 5 of
// some result or other.
const Undocumented = Bit3 | Bit5

// FlagString returns the F register as a string. Set flags are upper case.
func FlagString(f uint8) string {
	s := strings.Builder{}
	for i, c := range "SZYHXPNC" {
		if f&(0x80>>i) != 0 {
			s.WriteRune(c)
		} else {
			s.WriteString(strings.ToLower(string(c)))
		}
	}
	return s.String()
}
