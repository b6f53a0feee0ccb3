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

package cartridge

// Variant is the mapping scheme used by the cartridge. The variant is chosen
// once, when the cartridge is created.
type Variant int

// List of valid Variant values.
const (
	Sega Variant = iota
	Codemasters
)

func (v Variant) String() string {
	switch v {
	case Sega:
		return "Sega"
	case Codemasters:
		return "Codemasters"
	}
	return "unknown"
}

// address of the checksum in the header of Codemasters cartridges. the
// complement of the checksum immediately follows
const codemastersChecksum = 0x7fe6

// fingerprint decides which mapping scheme to use for the cartridge data
func fingerprint(data []uint8) Variant {
	if fingerprintCodemasters(data) {
		return Codemasters
	}
	return Sega
}

func fingerprintCodemasters(data []uint8) bool {
	if len(data) < codemastersChecksum+4 {
		return false
	}

	checksum := uint32(data[codemastersChecksum]) | uint32(data[codemastersChecksum+1])<<8
	complement := uint32(data[codemastersChecksum+2]) | uint32(data[codemastersChecksum+3])<<8

	return checksum+complement == 0x10000
}
