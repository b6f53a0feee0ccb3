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

package vdp_test

import (
	"testing"

	"github.com/jetsetilly/gophersms/hardware/vdp"
	"github.com/jetsetilly/gophersms/snapshot"
	"github.com/jetsetilly/gophersms/test"
)

type testSink struct {
	lines    [vdp.MaxHeight][]uint8
	blits    int
	presents int
}

func (sink *testSink) Blit(scanline int, rgba []uint8) {
	sink.lines[scanline] = append([]uint8(nil), rgba...)
	sink.blits++
}

func (sink *testSink) Present() {
	sink.presents++
}

func (sink *testSink) pixel(scanline int, x int) [4]uint8 {
	l := sink.lines[scanline]
	return [4]uint8{l[x*4], l[x*4+1], l[x*4+2], l[x*4+3]}
}

var (
	black = [4]uint8{0x00, 0x00, 0x00, 0xff}
	red   = [4]uint8{0xff, 0x00, 0x00, 0xff}
	green = [4]uint8{0x00, 0xff, 0x00, 0xff}
	blue  = [4]uint8{0x00, 0x00, 0xff, 0xff}
	white = [4]uint8{0xff, 0xff, 0xff, 0xff}

	darkBlue = [4]uint8{0x00, 0x00, 0x55, 0xff}
)

func setRegister(v *vdp.VDP, reg uint8, data uint8) {
	v.WriteControl(data)
	v.WriteControl(0x80 | reg)
}

func writeVRAM(v *vdp.VDP, address uint16, data ...uint8) {
	v.WriteControl(uint8(address))
	v.WriteControl(0x40 | uint8(address>>8))
	for _, d := range data {
		v.WriteData(d)
	}
}

func writeCRAM(v *vdp.VDP, address uint8, data ...uint8) {
	v.WriteControl(address)
	v.WriteControl(0xc0)
	for _, d := range data {
		v.WriteData(d)
	}
}

func runFrame(v *vdp.VDP) {
	v.Step(vdp.CyclesPerLine * v.Region().LinesPerFrame())
}

func TestRegisterWrite(t *testing.T) {
	v := vdp.NewVDP(nil, vdp.NTSC)
	setRegister(v, 7, 0xf3)
	test.ExpectEquality(t, v.Register(7), uint8(0xf3))

	// registers beyond the last are ignored
	setRegister(v, 12, 0x55)
	test.ExpectEquality(t, v.Register(7), uint8(0xf3))
	test.ExpectEquality(t, v.Register(12), uint8(0x00))
}

func TestDataPortResetsToggle(t *testing.T) {
	v := vdp.NewVDP(nil, vdp.NTSC)
	v.WriteControl(0x34)
	v.ReadData()
	setRegister(v, 1, 0x60)
	test.ExpectEquality(t, v.Register(1), uint8(0x60))
}

func TestReadBuffer(t *testing.T) {
	v := vdp.NewVDP(nil, vdp.NTSC)
	writeVRAM(v, 0x0100, 0xaa, 0xbb, 0xcc)
	test.ExpectEquality(t, v.PeekVRAM(0x0101), uint8(0xbb))

	// setting a read address fills the buffer
	v.WriteControl(0x00)
	v.WriteControl(0x01)
	test.ExpectEquality(t, v.ReadData(), uint8(0xaa))
	test.ExpectEquality(t, v.ReadData(), uint8(0xbb))

	// writing to the data port also updates the buffer
	v.WriteData(0x11)
	test.ExpectEquality(t, v.ReadData(), uint8(0x11))
}

func TestCRAM(t *testing.T) {
	v := vdp.NewVDP(nil, vdp.NTSC)
	writeCRAM(v, 0x05, 0x3f, 0x01)
	test.ExpectEquality(t, v.PeekCRAM(0x05), uint8(0x3f))
	test.ExpectEquality(t, v.PeekCRAM(0x06), uint8(0x01))

	// CRAM writes do not reach VRAM
	test.ExpectEquality(t, v.PeekVRAM(0x05), uint8(0x00))

	// the CRAM address wraps
	writeCRAM(v, 0x1f, 0x02, 0x03)
	test.ExpectEquality(t, v.PeekCRAM(0x00), uint8(0x03))
}

func TestCRAMToRGB(t *testing.T) {
	r, g, b := vdp.CRAMToRGB(0x39)
	test.ExpectEquality(t, r, uint8(85))
	test.ExpectEquality(t, g, uint8(170))
	test.ExpectEquality(t, b, uint8(255))
}

func TestFrameInterrupt(t *testing.T) {
	v := vdp.NewVDP(nil, vdp.NTSC)
	setRegister(v, 1, 0x20)

	v.Step(vdp.CyclesPerLine * 191)
	test.ExpectEquality(t, v.IRQ(), false)

	v.Step(vdp.CyclesPerLine)
	test.ExpectEquality(t, v.Scanline(), 192)
	test.ExpectEquality(t, v.IRQ(), true)

	status := v.ReadControl()
	test.ExpectEquality(t, status&0x80, uint8(0x80))
	test.ExpectEquality(t, v.IRQ(), false)
	test.ExpectEquality(t, v.ReadControl()&0x80, uint8(0x00))
}

func TestFrameInterruptDisabled(t *testing.T) {
	v := vdp.NewVDP(nil, vdp.NTSC)
	v.Step(vdp.CyclesPerLine * 192)
	test.ExpectEquality(t, v.IRQ(), false)

	// enabling the interrupt with the flag pending raises the line
	setRegister(v, 1, 0x20)
	test.ExpectEquality(t, v.IRQ(), true)
}

func TestLineInterrupt(t *testing.T) {
	v := vdp.NewVDP(nil, vdp.NTSC)
	setRegister(v, 0, 0x10)
	setRegister(v, 10, 2)

	runFrame(v)
	v.ReadControl()
	test.ExpectEquality(t, v.IRQ(), false)

	v.Step(vdp.CyclesPerLine)
	test.ExpectEquality(t, v.IRQ(), false)

	v.Step(vdp.CyclesPerLine)
	test.ExpectEquality(t, v.Scanline(), 2)
	test.ExpectEquality(t, v.IRQ(), true)

	v.ReadControl()
	test.ExpectEquality(t, v.IRQ(), false)
}

func TestVCounter(t *testing.T) {
	counter := func(v *vdp.VDP, scanline int) uint8 {
		for v.Scanline() != scanline {
			v.Step(vdp.CyclesPerLine)
		}
		return v.VCounter()
	}

	v := vdp.NewVDP(nil, vdp.NTSC)
	test.ExpectEquality(t, counter(v, 0xda), uint8(0xda))
	test.ExpectEquality(t, counter(v, 0xdb), uint8(0xd5))
	test.ExpectEquality(t, counter(v, 261), uint8(0xff))

	v = vdp.NewVDP(nil, vdp.NTSC)
	setRegister(v, 0, 0x06)
	setRegister(v, 1, 0x10)
	test.ExpectEquality(t, v.Mode(), vdp.Mode4Tall)
	test.ExpectEquality(t, counter(v, 0xea), uint8(0xea))
	test.ExpectEquality(t, counter(v, 0xeb), uint8(0xe5))
	test.ExpectEquality(t, counter(v, 261), uint8(0xff))

	v = vdp.NewVDP(nil, vdp.PAL)
	test.ExpectEquality(t, counter(v, 0xf2), uint8(0xf2))
	test.ExpectEquality(t, counter(v, 0xf3), uint8(0xba))
	test.ExpectEquality(t, counter(v, 312), uint8(0xff))

	v = vdp.NewVDP(nil, vdp.PAL)
	setRegister(v, 0, 0x06)
	setRegister(v, 1, 0x10)
	test.ExpectEquality(t, counter(v, 0xff), uint8(0xff))
	test.ExpectEquality(t, counter(v, 0x100), uint8(0x00))
	test.ExpectEquality(t, counter(v, 0x102), uint8(0x02))
	test.ExpectEquality(t, counter(v, 0x103), uint8(0xca))
	test.ExpectEquality(t, counter(v, 312), uint8(0xff))
}

func TestHCounter(t *testing.T) {
	v := vdp.NewVDP(nil, vdp.NTSC)
	test.ExpectEquality(t, v.HCounter(), uint8(0x00))
	v.Step(vdp.CyclesPerLine - 1)
	test.ExpectEquality(t, v.HCounter(), uint8(0xff))
}

func TestModes(t *testing.T) {
	v := vdp.NewVDP(nil, vdp.NTSC)
	test.ExpectEquality(t, v.Mode(), vdp.GraphicsI)
	setRegister(v, 0, 0x02)
	test.ExpectEquality(t, v.Mode(), vdp.GraphicsII)
	setRegister(v, 0, 0x00)
	setRegister(v, 1, 0x10)
	test.ExpectEquality(t, v.Mode(), vdp.Text)
	setRegister(v, 1, 0x08)
	test.ExpectEquality(t, v.Mode(), vdp.Multicolor)
	setRegister(v, 0, 0x04)
	test.ExpectEquality(t, v.Mode(), vdp.Mode4)
	test.ExpectEquality(t, v.Mode().ActiveHeight(), 192)
}

// a mode 4 display with a single red tile in the top left corner
func mode4Display(t *testing.T) (*vdp.VDP, *testSink) {
	t.Helper()

	sink := &testSink{}
	v := vdp.NewVDP(sink, vdp.NTSC)

	setRegister(v, 0, 0x04)
	setRegister(v, 1, 0x40)
	setRegister(v, 2, 0xff)
	setRegister(v, 5, 0xff)
	setRegister(v, 6, 0xfb)
	setRegister(v, 7, 0x00)

	writeCRAM(v, 0x00, 0x00, 0x03)
	writeCRAM(v, 0x10, 0x30, 0x00, 0x0c)

	// first row of pattern 1 is colour 1 and first row of pattern 2 is
	// colour 2
	writeVRAM(v, 0x0020, 0xff)
	writeVRAM(v, 0x0040, 0x00, 0xff)

	// name table and an empty sprite table
	writeVRAM(v, 0x3800, 0x01, 0x00)
	writeVRAM(v, 0x3f00, 0xd0)

	return v, sink
}

func TestMode4Background(t *testing.T) {
	v, sink := mode4Display(t)
	runFrame(v)
	test.ExpectEquality(t, sink.presents, 1)

	test.ExpectEquality(t, sink.pixel(0, 0), red)
	test.ExpectEquality(t, sink.pixel(0, 7), red)
	test.ExpectEquality(t, sink.pixel(0, 8), black)
	test.ExpectEquality(t, sink.pixel(1, 0), black)

	// horizontal scroll moves the background to the right
	setRegister(v, 8, 4)
	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 3), black)
	test.ExpectEquality(t, sink.pixel(0, 4), red)
	test.ExpectEquality(t, sink.pixel(0, 11), red)
	test.ExpectEquality(t, sink.pixel(0, 12), black)

	// the top two rows can be excluded from scrolling
	setRegister(v, 0, 0x44)
	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 0), red)

	// the left column shows the backdrop
	setRegister(v, 0, 0x64)
	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 0), blue)
	test.ExpectEquality(t, sink.pixel(0, 8), black)

	// disabled display shows the backdrop everywhere
	setRegister(v, 1, 0x00)
	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 100), blue)
}

func TestFirstFrame(t *testing.T) {
	v, sink := mode4Display(t)

	// every line of the active display is drawn before the first frame is
	// presented, including the line in progress at reset
	v.Step(vdp.CyclesPerLine * (v.Region().LinesPerFrame() - 1))
	test.ExpectEquality(t, sink.presents, 0)
	test.ExpectEquality(t, sink.blits, 192)
	test.DemandEquality(t, len(sink.lines[0]), vdp.Width*4)
	test.ExpectEquality(t, sink.pixel(0, 0), red)
	test.ExpectEquality(t, sink.pixel(191, 0), black)

	v.Step(vdp.CyclesPerLine)
	test.ExpectEquality(t, sink.presents, 1)
	test.ExpectEquality(t, sink.blits, 192)

	// a line is drawn when it ends
	v.Step(vdp.CyclesPerLine - 1)
	test.ExpectEquality(t, sink.blits, 192)
	v.Step(1)
	test.ExpectEquality(t, sink.blits, 193)
}

func TestMode4VerticalScroll(t *testing.T) {
	v, sink := mode4Display(t)

	// the scroll value is latched at the start of the frame. the frame in
	// progress is not affected
	setRegister(v, 9, 1)
	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 0), red)
	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 0), black)

	// the right side of the screen can be excluded from scrolling
	writeVRAM(v, 0x3800+24*2, 0x01, 0x00)
	setRegister(v, 0, 0x84)
	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 192), red)
}

func TestMode4Sprites(t *testing.T) {
	v, sink := mode4Display(t)

	// sprite at x=4 using pattern 2, drawn on scanline 0
	writeVRAM(v, 0x3f00, 0xff, 0xd0)
	writeVRAM(v, 0x3f80, 0x04, 0x02)
	runFrame(v)

	test.ExpectEquality(t, sink.pixel(0, 3), red)
	test.ExpectEquality(t, sink.pixel(0, 4), green)
	test.ExpectEquality(t, sink.pixel(0, 11), green)
	test.ExpectEquality(t, sink.pixel(0, 12), black)
	test.ExpectEquality(t, v.ReadControl()&0x60, uint8(0x00))

	// a high priority tile is drawn in front of the sprite
	writeVRAM(v, 0x3800, 0x01, 0x10)
	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 4), red)
	test.ExpectEquality(t, sink.pixel(0, 8), green)

	// sprites shifted left by eight pixels
	writeVRAM(v, 0x3800, 0x01, 0x00)
	setRegister(v, 0, 0x0c)
	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 0), green)
	test.ExpectEquality(t, sink.pixel(0, 3), green)
	test.ExpectEquality(t, sink.pixel(0, 4), red)
}

func TestMode4Collision(t *testing.T) {
	v, _ := mode4Display(t)
	writeVRAM(v, 0x3f00, 0xff, 0xff, 0xd0)
	writeVRAM(v, 0x3f80, 0x04, 0x02, 0x08, 0x02)
	runFrame(v)
	test.ExpectEquality(t, v.ReadControl()&0x60, uint8(0x20))
	test.ExpectEquality(t, v.ReadControl()&0x60, uint8(0x00))
}

func TestMode4Overflow(t *testing.T) {
	v, _ := mode4Display(t)

	// nine sprites on the same line with no overlap
	for i := range uint16(9) {
		writeVRAM(v, 0x3f00+i, 0x10)
		writeVRAM(v, 0x3f80+i*2, uint8(i*16), 0x00)
	}
	writeVRAM(v, 0x3f09, 0xd0)
	runFrame(v)
	test.ExpectEquality(t, v.ReadControl()&0x60, uint8(0x40))
}

func TestMode4Flip(t *testing.T) {
	v, sink := mode4Display(t)

	// pattern 3 has a single pixel in the top left corner. it is placed in
	// the second column
	writeVRAM(v, 0x0060, 0x80)
	writeVRAM(v, 0x3802, 0x03, 0x00)
	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 8), red)
	test.ExpectEquality(t, sink.pixel(0, 15), black)

	// horizontal flip
	writeVRAM(v, 0x3802, 0x03, 0x02)
	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 8), black)
	test.ExpectEquality(t, sink.pixel(0, 15), red)

	// vertical flip
	writeVRAM(v, 0x3802, 0x03, 0x04)
	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 8), black)
	test.ExpectEquality(t, sink.pixel(7, 8), red)
	test.ExpectEquality(t, sink.pixel(7, 15), black)

	// both
	writeVRAM(v, 0x3802, 0x03, 0x06)
	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 15), black)
	test.ExpectEquality(t, sink.pixel(7, 8), black)
	test.ExpectEquality(t, sink.pixel(7, 15), red)

	// the second palette applies to transparent pixels too
	writeVRAM(v, 0x3802, 0x03, 0x08)
	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 8), black)
	test.ExpectEquality(t, sink.pixel(0, 9), blue)
}

func TestMode4BlankLeftColumn(t *testing.T) {
	v, sink := mode4Display(t)

	// the blanked column is not scrolled
	setRegister(v, 0, 0x24)
	setRegister(v, 8, 4)
	runFrame(v)
	for x := range 8 {
		test.ExpectEquality(t, sink.pixel(0, x), blue, x)
	}
	test.ExpectEquality(t, sink.pixel(0, 8), red)
	test.ExpectEquality(t, sink.pixel(0, 11), red)
	test.ExpectEquality(t, sink.pixel(0, 12), black)
	test.ExpectEquality(t, sink.pixel(1, 0), blue)
}

func TestGraphicsI(t *testing.T) {
	sink := &testSink{}
	v := vdp.NewVDP(sink, vdp.NTSC)

	setRegister(v, 0, 0x00)
	setRegister(v, 1, 0x40)
	setRegister(v, 2, 0x0e)
	setRegister(v, 3, 0xff)
	setRegister(v, 4, 0x00)
	setRegister(v, 5, 0x7e)
	setRegister(v, 7, 0x05)

	writeVRAM(v, 0x0008, 0xf0)
	writeVRAM(v, 0x3800, 0x01)
	writeVRAM(v, 0x3fc0, 0xf0)
	writeVRAM(v, 0x3f00, 0xd0)

	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 0), white)
	test.ExpectEquality(t, sink.pixel(0, 3), white)
	test.ExpectEquality(t, sink.pixel(0, 4), blue)
	test.ExpectEquality(t, sink.pixel(0, 8), blue)

	// five sprites on the same line. the index of the fifth sprite is
	// recorded in the status register
	for i := range uint16(5) {
		writeVRAM(v, 0x3f00+i*4, 0xff, uint8(i*16), 0x01, 0x09)
	}
	writeVRAM(v, 0x3f14, 0xd0)
	runFrame(v)
	test.ExpectEquality(t, v.ReadControl()&0x5f, uint8(0x44))

	// sprite colour 9 is red
	test.ExpectEquality(t, sink.pixel(0, 0), red)
}

func TestGraphicsII(t *testing.T) {
	sink := &testSink{}
	v := vdp.NewVDP(sink, vdp.NTSC)

	setRegister(v, 0, 0x02)
	setRegister(v, 1, 0x40)
	setRegister(v, 2, 0x0e)
	setRegister(v, 3, 0xff)
	setRegister(v, 4, 0x03)
	setRegister(v, 5, 0x7e)
	setRegister(v, 7, 0x05)
	test.DemandEquality(t, v.Mode(), vdp.GraphicsII)

	writeVRAM(v, 0x3f00, 0xd0)

	// pattern 1 in the first third of the screen
	writeVRAM(v, 0x3800, 0x01)
	writeVRAM(v, 0x0008, 0xf0)
	writeVRAM(v, 0x2008, 0x9f)

	// pattern 1 in the second third of the screen is entry 257 of the
	// pattern and colour tables
	writeVRAM(v, 0x3900, 0x01)
	writeVRAM(v, 0x0808, 0x0f)
	writeVRAM(v, 0x2808, 0x30)

	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 0), red)
	test.ExpectEquality(t, sink.pixel(0, 3), red)
	test.ExpectEquality(t, sink.pixel(0, 4), white)
	test.ExpectEquality(t, sink.pixel(0, 8), blue)
	test.ExpectEquality(t, sink.pixel(64, 0), blue)
	test.ExpectEquality(t, sink.pixel(64, 4), green)

	// masking the pattern table index with register 4 makes every third
	// use the patterns of the first. the colour table is still split
	setRegister(v, 4, 0x00)
	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 0), red)
	test.ExpectEquality(t, sink.pixel(64, 0), green)
	test.ExpectEquality(t, sink.pixel(64, 4), blue)
}

func TestText(t *testing.T) {
	sink := &testSink{}
	v := vdp.NewVDP(sink, vdp.NTSC)

	setRegister(v, 0, 0x00)
	setRegister(v, 1, 0x50)
	setRegister(v, 2, 0x0e)
	setRegister(v, 4, 0x00)
	setRegister(v, 7, 0xf4)
	test.DemandEquality(t, v.Mode(), vdp.Text)

	// only the six leftmost bits of a pattern are displayed
	writeVRAM(v, 0x0008, 0xff)
	writeVRAM(v, 0x3800, 0x01)

	// the name table has forty entries per row
	writeVRAM(v, 0x3800+40, 0x01)

	runFrame(v)

	// an eight pixel border either side
	test.ExpectEquality(t, sink.pixel(0, 0), darkBlue)
	test.ExpectEquality(t, sink.pixel(0, 7), darkBlue)
	test.ExpectEquality(t, sink.pixel(0, 8), white)
	test.ExpectEquality(t, sink.pixel(0, 13), white)
	test.ExpectEquality(t, sink.pixel(0, 14), darkBlue)
	test.ExpectEquality(t, sink.pixel(0, 248), darkBlue)
	test.ExpectEquality(t, sink.pixel(8, 8), white)
	test.ExpectEquality(t, sink.pixel(8, 14), darkBlue)
}

func TestMulticolor(t *testing.T) {
	sink := &testSink{}
	v := vdp.NewVDP(sink, vdp.NTSC)

	setRegister(v, 0, 0x00)
	setRegister(v, 1, 0x48)
	setRegister(v, 2, 0x0e)
	setRegister(v, 4, 0x00)
	setRegister(v, 5, 0x7e)
	setRegister(v, 7, 0x05)
	test.DemandEquality(t, v.Mode(), vdp.Multicolor)

	writeVRAM(v, 0x3f00, 0xd0)

	// each pattern byte is two blocks of four by four pixels. the rows of
	// the name table use successive pairs of bytes
	writeVRAM(v, 0x3800, 0x01)
	writeVRAM(v, 0x3820, 0x01)
	writeVRAM(v, 0x0008, 0x9f, 0x30, 0xf3)

	runFrame(v)
	test.ExpectEquality(t, sink.pixel(0, 0), red)
	test.ExpectEquality(t, sink.pixel(3, 3), red)
	test.ExpectEquality(t, sink.pixel(0, 4), white)
	test.ExpectEquality(t, sink.pixel(4, 0), green)
	test.ExpectEquality(t, sink.pixel(4, 4), blue)
	test.ExpectEquality(t, sink.pixel(8, 0), white)
	test.ExpectEquality(t, sink.pixel(8, 4), green)
	test.ExpectEquality(t, sink.pixel(0, 8), blue)
}

func TestState(t *testing.T) {
	v, _ := mode4Display(t)
	v.Step(vdp.CyclesPerLine*10 + 5)
	v.WriteControl(0x12)

	var s snapshot.Snapshot
	v.SaveState(&s)

	runFrame(v)
	setRegister(v, 3, 0x44)
	writeVRAM(v, 0x0000, 0x99)

	v.LoadState(&s)

	var o snapshot.Snapshot
	v.SaveState(&o)
	test.ExpectSuccess(t, s.Equals(&o))
	test.ExpectEquality(t, v.Scanline(), 10)
	test.ExpectEquality(t, v.PeekVRAM(0x0000), uint8(0x00))

	// the second write of the control word pair is pending
	v.WriteControl(0x83)
	test.ExpectEquality(t, v.Register(3), uint8(0x12))
}
