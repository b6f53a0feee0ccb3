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
	"fmt"
	"strings"

	"github.com/jetsetilly/gophersms/snapshot"
)

// Width of a scanline in pixels.
const Width = 256

// MaxHeight is the maximum number of scanlines in the active display.
const MaxHeight = 224

// CyclesPerLine is the number of CPU cycles in a scanline.
const CyclesPerLine = 228

// NumRegisters is the number of writable VDP registers.
const NumRegisters = 11

const (
	vramSize = 0x4000
	vramMask = vramSize - 1
	cramSize = 0x20
)

// status register bits
const (
	statusFrame     = 0x80
	statusOverflow  = 0x40
	statusCollision = 0x20
	statusFifth     = 0x1f
)

// control port command codes. the code is the top two bits of the second
// control port write
const (
	codeReadVRAM  = 0
	codeWriteVRAM = 1
	codeRegister  = 2
	codeWriteCRAM = 3
)

// VDP is the video display processor.
type VDP struct {
	sink   VideoSink
	region Region

	registers [NumRegisters]uint8
	vram      [vramSize]uint8
	cram      [cramSize]uint8

	status     uint8
	readBuffer uint8

	// control port state. the first write of the pair is held in the latch
	address     uint16
	code        uint8
	latch       uint8
	secondWrite bool

	// the fifth sprite index of the legacy modes is not updated again until
	// the status register is read
	fifthFrozen bool

	lineCounter   uint8
	lineInterrupt bool

	// vertical scroll is latched at the start of each frame
	vscroll uint8

	scanline int
	cycles   int
	frame    int

	// the most recent mode that was logged as unsupported
	loggedMode Mode

	// rasterization buffers for the current scanline. pixels are palette
	// indexes: CRAM indexes in mode 4 and fixed palette indexes in the
	// legacy modes. a sprite value of zero means no sprite pixel
	pixels     [Width]uint8
	sprites    [Width]uint8
	spriteMask [Width]bool
	rgba       [Width * 4]uint8
	palette    [cramSize][3]uint8
}

// NewVDP is the preferred method of initialisation for the VDP type. The sink
// may be nil.
func NewVDP(sink VideoSink, region Region) *VDP {
	vdp := &VDP{
		sink:   sink,
		region: region,
	}
	vdp.Reset()
	return vdp
}

// ClearMemory zeroes VRAM and CRAM.
func (vdp *VDP) ClearMemory() {
	clear(vdp.vram[:])
	clear(vdp.cram[:])
}

// Reset the VDP to the power-on state. The contents of VRAM and CRAM are not
// affected.
func (vdp *VDP) Reset() {
	vdp.registers = [NumRegisters]uint8{}
	vdp.registers[10] = 0xff
	vdp.status = 0
	vdp.readBuffer = 0
	vdp.address = 0
	vdp.code = 0
	vdp.latch = 0
	vdp.secondWrite = false
	vdp.fifthFrozen = false
	vdp.lineCounter = 0xff
	vdp.lineInterrupt = false
	vdp.vscroll = 0
	vdp.scanline = 0
	vdp.cycles = 0
	vdp.frame = 0
	vdp.loggedMode = Mode4
}

func (vdp *VDP) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s line=%d (v=%#02x) status=%#02x", vdp.region, vdp.Mode(), vdp.scanline, vdp.VCounter(), vdp.status))
	for i, r := range vdp.registers {
		s.WriteString(fmt.Sprintf(" r%d=%02x", i, r))
	}
	return s.String()
}

// Region returns the region the VDP was created for.
func (vdp *VDP) Region() Region {
	return vdp.region
}

// Frame returns the number of frames completed since reset.
func (vdp *VDP) Frame() int {
	return vdp.frame
}

// Scanline returns the current scanline.
func (vdp *VDP) Scanline() int {
	return vdp.scanline
}

// Register returns the value of the register. Register numbers outside the
// range of writable registers return zero.
func (vdp *VDP) Register(reg int) uint8 {
	if reg < 0 || reg >= NumRegisters {
		return 0
	}
	return vdp.registers[reg]
}

// PeekVRAM returns the value in VRAM without side effects.
func (vdp *VDP) PeekVRAM(address uint16) uint8 {
	return vdp.vram[address&vramMask]
}

// PeekCRAM returns the value in CRAM without side effects.
func (vdp *VDP) PeekCRAM(address uint8) uint8 {
	return vdp.cram[address&(cramSize-1)]
}

// IRQ returns the state of the interrupt line. The line is asserted if the
// frame interrupt or the line interrupt is pending and enabled.
func (vdp *VDP) IRQ() bool {
	frame := vdp.status&statusFrame == statusFrame && vdp.registers[1]&0x20 == 0x20
	line := vdp.lineInterrupt && vdp.registers[0]&0x10 == 0x10
	return frame || line
}

// VCounter returns the value of the V counter for the current scanline.
func (vdp *VDP) VCounter() uint8 {
	return vdp.region.vcounter(vdp.scanline, vdp.Mode().ActiveHeight())
}

// HCounter returns the value of the H counter for the current position in the
// scanline. The counter counts pixels in pairs and jumps backwards part way
// through the horizontal blank.
func (vdp *VDP) HCounter() uint8 {
	h := vdp.cycles * 342 / CyclesPerLine / 2
	if h > 0x93 {
		h += 0xe9 - 0x94
	}
	return uint8(h)
}

// ReadData returns the value in the read buffer and refills the buffer from
// the current address.
func (vdp *VDP) ReadData() uint8 {
	vdp.secondWrite = false
	v := vdp.readBuffer
	vdp.readBuffer = vdp.vram[vdp.address]
	vdp.address = (vdp.address + 1) & vramMask
	return v
}

// WriteData writes to VRAM or CRAM at the current address, depending on the
// most recent command.
func (vdp *VDP) WriteData(data uint8) {
	vdp.secondWrite = false
	if vdp.code == codeWriteCRAM {
		vdp.cram[vdp.address&(cramSize-1)] = data
	} else {
		vdp.vram[vdp.address] = data
	}
	vdp.readBuffer = data
	vdp.address = (vdp.address + 1) & vramMask
}

// ReadControl returns the status register. Reading the status clears the
// interrupt, overflow and collision flags.
func (vdp *VDP) ReadControl() uint8 {
	v := vdp.status
	vdp.status &^= statusFrame | statusOverflow | statusCollision
	vdp.lineInterrupt = false
	vdp.secondWrite = false
	vdp.fifthFrozen = false
	return v
}

// WriteControl accepts the two bytes of a control word. The first byte is the
// low byte of the address. The second byte contains the high bits of the
// address and the command code.
func (vdp *VDP) WriteControl(data uint8) {
	if !vdp.secondWrite {
		vdp.latch = data
		vdp.address = vdp.address&0x3f00 | uint16(data)
		vdp.secondWrite = true
		return
	}

	vdp.secondWrite = false
	vdp.address = uint16(data&0x3f)<<8 | uint16(vdp.latch)
	vdp.code = data >> 6

	switch vdp.code {
	case codeReadVRAM:
		vdp.readBuffer = vdp.vram[vdp.address]
		vdp.address = (vdp.address + 1) & vramMask
	case codeRegister:
		reg := int(data & 0x0f)
		if reg < NumRegisters {
			vdp.registers[reg] = vdp.latch
		}
	}
}

// SaveState copies the VDP state into the snapshot.
func (vdp *VDP) SaveState(s *snapshot.Snapshot) {
	s.VDP = snapshot.VDP{
		Registers:         vdp.registers,
		VRAM:              vdp.vram,
		CRAM:              vdp.cram,
		Status:            vdp.status,
		ReadBuffer:        vdp.readBuffer,
		Address:           vdp.address,
		Code:              vdp.code,
		Latch:             vdp.latch,
		SecondWrite:       vdp.secondWrite,
		FifthSpriteFrozen: vdp.fifthFrozen,
		LineCounter:       vdp.lineCounter,
		LineInterrupt:     vdp.lineInterrupt,
		VScroll:           vdp.vscroll,
		Scanline:          uint16(vdp.scanline),
		Cycles:            uint16(vdp.cycles),
		Frame:             uint32(vdp.frame),
	}
}

// LoadState restores the VDP state from the snapshot.
func (vdp *VDP) LoadState(s *snapshot.Snapshot) {
	v := &s.VDP
	vdp.registers = v.Registers
	vdp.vram = v.VRAM
	vdp.cram = v.CRAM
	vdp.status = v.Status
	vdp.readBuffer = v.ReadBuffer
	vdp.address = v.Address & vramMask
	vdp.code = v.Code
	vdp.latch = v.Latch
	vdp.secondWrite = v.SecondWrite
	vdp.fifthFrozen = v.FifthSpriteFrozen
	vdp.lineCounter = v.LineCounter
	vdp.lineInterrupt = v.LineInterrupt
	vdp.vscroll = v.VScroll
	vdp.scanline = int(v.Scanline)
	vdp.cycles = int(v.Cycles)
	vdp.frame = int(v.Frame)
}
