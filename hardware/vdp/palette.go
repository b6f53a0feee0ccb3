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

// the two bit colour components of a CRAM entry are scaled to eight bits
var componentScale = [4]uint8{0, 85, 170, 255}

// CRAMToRGB converts a CRAM entry to eight bit red, green and blue values.
// CRAM entries are in the form --BBGGRR.
func CRAMToRGB(v uint8) (uint8, uint8, uint8) {
	return componentScale[v&0x03], componentScale[(v>>2)&0x03], componentScale[(v>>4)&0x03]
}

func (vdp *VDP) mode4Palette() [][3]uint8 {
	for i, v := range vdp.cram {
		r, g, b := CRAMToRGB(v)
		vdp.palette[i] = [3]uint8{r, g, b}
	}
	return vdp.palette[:]
}

// the fixed palette of the legacy modes as displayed by the console. colour
// zero is transparent and is never output directly
var legacyPalette = [16][3]uint8{
	{0x00, 0x00, 0x00},
	{0x00, 0x00, 0x00},
	{0x00, 0xaa, 0x00},
	{0x00, 0xff, 0x00},
	{0x00, 0x00, 0x55},
	{0x00, 0x00, 0xff},
	{0x55, 0x00, 0x00},
	{0x00, 0xff, 0xff},
	{0xaa, 0x00, 0x00},
	{0xff, 0x00, 0x00},
	{0x55, 0x55, 0x00},
	{0xff, 0xff, 0x00},
	{0x00, 0x55, 0x00},
	{0xff, 0x00, 0xff},
	{0x55, 0x55, 0x55},
	{0xff, 0xff, 0xff},
}
