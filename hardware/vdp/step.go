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

import (
	"github.com/jetsetilly/gophersms/logger"
)

// Step advances the VDP by the number of CPU cycles.
func (vdp *VDP) Step(cycles int) {
	vdp.cycles += cycles
	for vdp.cycles >= CyclesPerLine {
		vdp.cycles -= CyclesPerLine
		vdp.newScanline()
	}
}

func (vdp *VDP) newScanline() {
	// the line being left is drawn with the register values in effect at
	// the end of the line
	if mode := vdp.Mode(); vdp.scanline < mode.ActiveHeight() {
		vdp.rasterize(mode, vdp.scanline)
	}

	vdp.scanline++
	if vdp.scanline >= vdp.region.LinesPerFrame() {
		vdp.scanline = 0
		vdp.frame++
		vdp.vscroll = vdp.registers[9]
		if vdp.sink != nil {
			vdp.sink.Present()
		}
	}

	mode := vdp.Mode()
	active := mode.ActiveHeight()

	// the line counter counts down on every line of the active display and
	// on the first line after it. the line interrupt is raised when the
	// counter underflows
	if vdp.scanline <= active {
		if vdp.lineCounter == 0 {
			vdp.lineCounter = vdp.registers[10]
			vdp.lineInterrupt = true
		} else {
			vdp.lineCounter--
		}
	} else {
		vdp.lineCounter = vdp.registers[10]
	}

	if vdp.scanline == active {
		vdp.status |= statusFrame
	}
}

func (vdp *VDP) rasterize(mode Mode, y int) {
	if mode != vdp.loggedMode {
		vdp.loggedMode = mode
		if mode.Legacy() {
			logger.Logf(logger.Allow, "vdp", "%s", mode)
		}
	}

	// the display is blanked to the backdrop colour when disabled
	if vdp.registers[1]&0x40 == 0 {
		backdrop := vdp.registers[7] & 0x0f
		if !mode.Legacy() {
			backdrop += 16
		}
		for x := range vdp.pixels {
			vdp.pixels[x] = backdrop
		}
	} else {
		switch mode {
		case Mode4, Mode4Tall:
			vdp.spritesMode4(y, mode.ActiveHeight())
			vdp.backgroundMode4(y, mode.ActiveHeight())
		case GraphicsI:
			vdp.spritesLegacy(y)
			vdp.backgroundGraphicsI(y)
		case GraphicsII:
			vdp.spritesLegacy(y)
			vdp.backgroundGraphicsII(y)
		case Text:
			vdp.backgroundText(y)
		case Multicolor:
			vdp.spritesLegacy(y)
			vdp.backgroundMulticolor(y)
		}
	}

	if mode.Legacy() {
		vdp.toRGBA(legacyPalette[:])
	} else {
		vdp.toRGBA(vdp.mode4Palette())
	}

	if vdp.sink != nil {
		vdp.sink.Blit(y, vdp.rgba[:])
	}
}

func (vdp *VDP) toRGBA(palette [][3]uint8) {
	for x, p := range vdp.pixels {
		c := palette[int(p)%len(palette)]
		vdp.rgba[x*4] = c[0]
		vdp.rgba[x*4+1] = c[1]
		vdp.rgba[x*4+2] = c[2]
		vdp.rgba[x*4+3] = 0xff
	}
}
