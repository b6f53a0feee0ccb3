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

// maximum number of sprites on a single scanline in the legacy modes
const maxSpritesLegacy = 4

func (vdp *VDP) backdropLegacy() uint8 {
	return vdp.registers[7] & 0x0f
}

// composite writes the pixel to the scanline. transparent pixels show the
// backdrop and sprites are always in front of the background
func (vdp *VDP) compositeLegacy(x int, c uint8) {
	if s := vdp.sprites[x]; s != 0 {
		vdp.pixels[x] = s
		return
	}
	if c == 0 {
		c = vdp.backdropLegacy()
	}
	vdp.pixels[x] = c
}

func (vdp *VDP) spritesLegacy(y int) {
	clear(vdp.sprites[:])
	clear(vdp.spriteMask[:])

	sat := uint16(vdp.registers[5]&0x7f) << 7
	patterns := uint16(vdp.registers[6]&0x07) << 11

	size := 8
	if vdp.registers[1]&0x02 == 0x02 {
		size = 16
	}

	zoom := 1
	if vdp.registers[1]&0x01 == 0x01 {
		zoom = 2
	}

	count := 0
	for i := range uint16(32) {
		entry := sat + i*4

		sy := int(vdp.vram[entry&vramMask])
		if sy == spriteTerminator {
			break
		}
		if sy > 0xe0 {
			sy -= 0x100
		}
		sy++

		line := y - sy
		if line < 0 || line >= size*zoom {
			continue
		}

		count++
		if count > maxSpritesLegacy {
			if !vdp.fifthFrozen {
				vdp.status = vdp.status&^statusFifth | uint8(i) | statusOverflow
				vdp.fifthFrozen = true
			}
			break
		}
		line /= zoom

		sx := int(vdp.vram[(entry+1)&vramMask])
		pattern := uint16(vdp.vram[(entry+2)&vramMask])
		attr := vdp.vram[(entry+3)&vramMask]
		if attr&0x80 == 0x80 {
			sx -= 32
		}
		colour := attr & 0x0f

		if size == 16 {
			pattern &= 0xfc
		}

		for px := range size * zoom {
			x := sx + px
			if x < 0 || x >= Width {
				continue
			}

			p := px / zoom

			// 16x16 sprites are four patterns. the right half of the
			// sprite is sixteen bytes after the left half
			address := patterns + pattern*8 + uint16(line) + uint16(p/8)*16
			if vdp.vram[address&vramMask]&(0x80>>(p%8)) == 0 {
				continue
			}

			if vdp.spriteMask[x] {
				vdp.status |= statusCollision
				continue
			}
			vdp.spriteMask[x] = true

			if colour != 0 {
				vdp.sprites[x] = colour
			}
		}
	}
}

func (vdp *VDP) backgroundGraphicsI(y int) {
	names := uint16(vdp.registers[2]&0x0f) << 10
	colours := uint16(vdp.registers[3]) << 6
	patterns := uint16(vdp.registers[4]&0x07) << 11

	row := uint16(y / 8)
	for col := range uint16(32) {
		name := uint16(vdp.vram[(names+row*32+col)&vramMask])
		pattern := vdp.vram[(patterns+name*8+uint16(y&7))&vramMask]
		colour := vdp.vram[(colours+name/8)&vramMask]
		vdp.drawPatternLegacy(int(col)*8, pattern, colour)
	}
}

func (vdp *VDP) backgroundGraphicsII(y int) {
	names := uint16(vdp.registers[2]&0x0f) << 10
	colours := uint16(vdp.registers[3]&0x80) << 6
	patterns := uint16(vdp.registers[4]&0x04) << 11

	// the low bits of registers 3 and 4 mask the pattern and colour table
	// indexes
	patternMask := uint16(vdp.registers[4]&0x03)<<8 | 0xff
	colourMask := uint16(vdp.registers[3]&0x7f)<<3 | 0x07

	row := uint16(y / 8)
	third := uint16(y/64) * 256

	for col := range uint16(32) {
		name := uint16(vdp.vram[(names+row*32+col)&vramMask]) + third
		pattern := vdp.vram[(patterns+(name&patternMask)*8+uint16(y&7))&vramMask]
		colour := vdp.vram[(colours+(name&colourMask)*8+uint16(y&7))&vramMask]
		vdp.drawPatternLegacy(int(col)*8, pattern, colour)
	}
}

// drawPatternLegacy draws eight pixels. set bits in the pattern use the
// foreground colour in the top nibble of the colour byte
func (vdp *VDP) drawPatternLegacy(x int, pattern uint8, colour uint8) {
	fg := colour >> 4
	bg := colour & 0x0f
	for px := range 8 {
		c := bg
		if pattern&(0x80>>px) != 0 {
			c = fg
		}
		vdp.compositeLegacy(x+px, c)
	}
}

func (vdp *VDP) backgroundText(y int) {
	names := uint16(vdp.registers[2]&0x0f) << 10
	patterns := uint16(vdp.registers[4]&0x07) << 11

	fg := vdp.registers[7] >> 4
	bg := vdp.backdropLegacy()

	// forty columns of six pixels with a border either side
	const border = (Width - 40*6) / 2

	for x := range Width {
		vdp.pixels[x] = bg
	}

	row := uint16(y / 8)
	for col := range uint16(40) {
		name := uint16(vdp.vram[(names+row*40+col)&vramMask])
		pattern := vdp.vram[(patterns+name*8+uint16(y&7))&vramMask]
		for px := range 6 {
			if pattern&(0x80>>px) != 0 && fg != 0 {
				vdp.pixels[border+int(col)*6+px] = fg
			}
		}
	}
}

func (vdp *VDP) backgroundMulticolor(y int) {
	names := uint16(vdp.registers[2]&0x0f) << 10
	patterns := uint16(vdp.registers[4]&0x07) << 11

	row := uint16(y / 8)
	for col := range uint16(32) {
		name := uint16(vdp.vram[(names+row*32+col)&vramMask])
		colours := vdp.vram[(patterns+name*8+(row&3)*2+uint16(y/4)&1)&vramMask]
		for px := range 8 {
			c := colours >> 4
			if px >= 4 {
				c = colours & 0x0f
			}
			vdp.compositeLegacy(int(col)*8+px, c)
		}
	}
}
