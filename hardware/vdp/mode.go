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

package vdp

// Mode is the video mode selected by the M1 to M4 register bits.
type Mode int

// List of valid Mode values.
const (
	Mode4 Mode = iota
	Mode4Tall
	GraphicsI
	GraphicsII
	Text
	Multicolor
)

func (m Mode) String() string {
	switch m {
	case Mode4:
		return "mode 4"
	case Mode4Tall:
		return "mode 4 (224 lines)"
	case GraphicsI:
		return "graphics I"
	case GraphicsII:
		return "graphics II"
	case Text:
		return "text"
	case Multicolor:
		return "multicolor"
	}
	return "unknown mode"
}

// ActiveHeight returns the number of scanlines in the active display.
func (m Mode) ActiveHeight() int {
	if m == Mode4Tall {
		return 224
	}
	return 192
}

// Legacy returns true for the modes of the earlier video chip.
func (m Mode) Legacy() bool {
	return m >= GraphicsI
}

// Mode returns the current video mode.
func (vdp *VDP) Mode() Mode {
	m1 := vdp.registers[1]&0x10 == 0x10
	m2 := vdp.registers[0]&0x02 == 0x02
	m3 := vdp.registers[1]&0x08 == 0x08
	m4 := vdp.registers[0]&0x04 == 0x04

	if m4 {
		// the 240 line mode is not available on the console and is
		// displayed as a 192 line mode
		if m2 && m1 && !m3 {
			return Mode4Tall
		}
		return Mode4
	}

	switch {
	case !m1 && !m2 && !m3:
		return GraphicsI
	case m2 && !m1 && !m3:
		return GraphicsII
	case m1 && !m2 && !m3:
		return Text
	case m3 && !m1 && !m2:
		return Multicolor
	}

	// combinations of the legacy mode bits are undefined
	return GraphicsI
}
