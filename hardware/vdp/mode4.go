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

// maximum number of sprites on a single scanline in mode 4
const maxSpritesMode4 = 8

// the sprite Y table is terminated by this value in the 192 line mode
const spriteTerminator = 0xd0

// planar returns the colour of a pixel in a mode 4 pattern row. the row is
// made up of four bytes, one for each bit plane. bit is the bit number in
// each byte (7 is the leftmost pixel)
func (vdp *VDP) planar(address uint16, bit uint8) uint8 {
	var c uint8
	for p := range uint16(4) {
		c |= ((vdp.vram[(address+p)&vramMask] >> bit) & 0x01) << p
	}
	return c
}

func (vdp *VDP) spritesMode4(y int, activeHeight int) {
	clear(vdp.sprites[:])

	sat := uint16(vdp.registers[5]&0x7e) << 7
	patterns := uint16(vdp.registers[6]&0x04) << 11

	height := 8
	if vdp.registers[1]&0x02 == 0x02 {
		height = 16
	}

	zoom := 1
	if vdp.registers[1]&0x01 == 0x01 {
		zoom = 2
	}

	shift := 0
	if vdp.registers[0]&0x08 == 0x08 {
		shift = 8
	}

	count := 0
	for i := range uint16(64) {
		sy := int(vdp.vram[sat+i])
		if sy == spriteTerminator && activeHeight == 192 {
			break
		}

		// sprites are drawn on the line after their Y position. positions
		// near the bottom of the range wrap to the top of the screen
		sy++
		if sy > 0xf0 {
			sy -= 0x100
		}

		line := y - sy
		if line < 0 || line >= height*zoom {
			continue
		}

		count++
		if count > maxSpritesMode4 {
			vdp.status |= statusOverflow
			break
		}
		line /= zoom

		sx := int(vdp.vram[sat+0x80+i*2]) - shift
		pattern := uint16(vdp.vram[sat+0x81+i*2])
		if height == 16 {
			pattern &= 0xfe
		}
		row := patterns + pattern*32 + uint16(line)*4

		for px := range 8 * zoom {
			x := sx + px
			if x < 0 || x >= Width {
				continue
			}

			c := vdp.planar(row, uint8(7-px/zoom))
			if c == 0 {
				continue
			}

			// the first sprite in the table has priority
			if vdp.sprites[x] != 0 {
				vdp.status |= statusCollision
				continue
			}
			vdp.sprites[x] = 16 + c
		}
	}
}

func (vdp *VDP) backgroundMode4(y int, activeHeight int) {
	var names uint16
	var wrap int

	if activeHeight == 224 {
		names = uint16(vdp.registers[2]&0x0c)<<10 | 0x0700
		wrap = 256
	} else {
		names = uint16(vdp.registers[2]&0x0e) << 10
		wrap = 224
	}

	hscroll := int(vdp.registers[8])
	if vdp.registers[0]&0x40 == 0x40 && y < 16 {
		hscroll = 0
	}

	backdrop := 16 + vdp.registers[7]&0x0f
	blankLeft := vdp.registers[0]&0x20 == 0x20
	lockRight := vdp.registers[0]&0x80 == 0x80

	for x := range Width {
		if blankLeft && x < 8 {
			vdp.pixels[x] = backdrop
			continue
		}

		vscroll := int(vdp.vscroll)
		if lockRight && x >= 192 {
			vscroll = 0
		}

		bx := (x - hscroll) & 0xff
		by := (y + vscroll) % wrap

		entryAddress := names + uint16(by/8)*64 + uint16(bx/8)*2
		entry := uint16(vdp.vram[entryAddress&vramMask]) | uint16(vdp.vram[(entryAddress+1)&vramMask])<<8

		pattern := entry & 0x01ff
		hflip := entry&0x0200 == 0x0200
		vflip := entry&0x0400 == 0x0400
		priority := entry&0x1000 == 0x1000

		var palette uint8
		if entry&0x0800 == 0x0800 {
			palette = 16
		}

		row := uint16(by & 7)
		if vflip {
			row = 7 - row
		}

		bit := uint8(7 - bx&7)
		if hflip {
			bit = uint8(bx & 7)
		}

		c := vdp.planar(pattern*32+row*4, bit)

		// sprites are drawn over the background unless the background
		// claims priority with a non-transparent pixel
		if s := vdp.sprites[x]; s != 0 && !(priority && c != 0) {
			vdp.pixels[x] = s
		} else {
			vdp.pixels[x] = palette + c
		}
	}
}
