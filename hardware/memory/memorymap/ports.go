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

// Port represents the different groups of I/O ports.
type Port int

func (p Port) String() string {
	switch p {
	case MemoryControl:
		return "Memory Control"
	case IOControl:
		return "I/O Control"
	case VCounter:
		return "V Counter"
	case HCounter:
		return "H Counter"
	case PSG:
		return "PSG"
	case VDPData:
		return "VDP Data"
	case VDPControl:
		return "VDP Control"
	case PortA:
		return "Port A"
	case PortB:
		return "Port B"
	}

	return "undefined"
}

// List of port registers. For the first two groups of ports, the register
// depends on the direction of the access.
const (
	NoPort Port = iota

	// writes to 0x00 to 0x3f
	MemoryControl
	IOControl

	// reads from 0x40 to 0x7f
	VCounter
	HCounter

	// writes to 0x40 to 0x7f
	PSG

	// 0x80 to 0xbf
	VDPData
	VDPControl

	// reads from 0xc0 to 0xff
	PortA
	PortB
)

// the two most significant bits of the port number select the group
const portGroup = 0xc0

// MapPort decodes the port number of a read (IN instruction) or write (OUT
// instruction). Only the lower byte of the port is decoded. Accesses that
// reach no register return NoPort.
func MapPort(port uint16, write bool) Port {
	odd := port&0x01 == 0x01

	switch uint8(port) & portGroup {
	case 0x00:
		if !write {
			return NoPort
		}
		if odd {
			return IOControl
		}
		return MemoryControl
	case 0x40:
		if write {
			return PSG
		}
		if odd {
			return HCounter
		}
		return VCounter
	case 0x80:
		if odd {
			return VDPControl
		}
		return VDPData
	}

	if write {
		return NoPort
	}
	if odd {
		return PortB
	}
	return PortA
}
