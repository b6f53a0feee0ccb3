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

package snapshot

// CPU is the state of the Z80.
type CPU struct {
	AF, BC, DE, HL     uint16
	AF_, BC_, DE_, HL_ uint16
	IX, IY, SP, PC     uint16
	I, R               uint8
	MEMPTR             uint16
	IFF1, IFF2         bool
	IM                 uint8
	Halted             bool

	// an EI instruction has been executed and interrupts are not yet
	// accepted
	EIPending bool
}

// Mapper is the state of the cartridge mapper and the RAM attached to it.
type Mapper struct {
	// bank selected for each of the three slots
	Slots [3]uint8

	// last value written to the RAM control register
	Control uint8

	WorkRAM [0x2000]uint8
	SaveRAM [0x8000]uint8
}

// VDP is the state of the video display processor.
type VDP struct {
	Registers [11]uint8
	VRAM      [0x4000]uint8
	CRAM      [0x20]uint8

	Status     uint8
	ReadBuffer uint8

	// control port state
	Address     uint16
	Code        uint8
	Latch       uint8
	SecondWrite bool

	// the fifth sprite index in the status register is not updated until
	// the status is next read
	FifthSpriteFrozen bool

	LineCounter   uint8
	LineInterrupt bool

	// vertical scroll value latched at the start of the frame
	VScroll uint8

	Scanline uint16
	Cycles   uint16
	Frame    uint32
}

// PSG is the state of the sound generator.
type PSG struct {
	Tone    [3]uint16
	Noise   uint8
	Volume  [4]uint8
	Latch   uint8
	Counter [4]uint16
	Output  [4]bool
	LFSR    uint16

	// cycles accumulated towards the next tick and the next sample
	TickCycles   uint16
	SampleCycles uint16
}

// Ports is the state of the I/O port controller.
type Ports struct {
	MemoryControl uint8
	IOControl     uint8
	Pause         bool
	NMIPending    bool
}

// Snapshot is the state of the entire console.
type Snapshot struct {
	// CRC-32 of the cartridge data. a snapshot can only be restored to a
	// console with the same cartridge attached
	Cartridge uint32

	CPU    CPU
	Mapper Mapper
	VDP    VDP
	PSG    PSG
	Ports  Ports
}

// Equals returns true if the two snapshots are identical.
func (s *Snapshot) Equals(o *Snapshot) bool {
	if s == nil || o == nil {
		return s == o
	}
	return *s == *o
}
