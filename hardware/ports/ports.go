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

package ports

import (
	"github.com/jetsetilly/gophersms/snapshot"
)

// bits of the I/O control register
const (
	trADirection = 0x01
	thADirection = 0x02
	trBDirection = 0x04
	thBDirection = 0x08
	trALevel     = 0x10
	thALevel     = 0x20
	trBLevel     = 0x40
	thBLevel     = 0x80
)

// the I/O chip is disabled by setting this bit of the memory control register
const ioDisabled = 0x04

// Ports is the I/O port controller.
type Ports struct {
	input Input

	memoryControl uint8
	ioControl     uint8

	// the pause button was pressed in the previous input. the NMI is raised
	// on the edge
	pause      bool
	nmiPending bool
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts() *Ports {
	p := &Ports{}
	p.Reset()
	return p
}

// Reset the port controller to the power-on state. The current input is not
// changed.
func (p *Ports) Reset() {
	p.memoryControl = 0
	p.ioControl = 0xff
	p.pause = false
	p.nmiPending = false
}

func (p *Ports) String() string {
	return p.input.String()
}

// SetInput changes the state of the inputs. Pressing the pause button raises
// a non-maskable interrupt.
func (p *Ports) SetInput(in Input) {
	if in.Pause && !p.pause {
		p.nmiPending = true
	}
	p.pause = in.Pause
	p.input = in
}

// NMI returns true if a non-maskable interrupt is pending. The interrupt is
// acknowledged by the call.
func (p *Ports) NMI() bool {
	v := p.nmiPending
	p.nmiPending = false
	return v
}

// WriteMemoryControl sets the memory control register.
func (p *Ports) WriteMemoryControl(data uint8) {
	p.memoryControl = data
}

// WriteIOControl sets the I/O control register. The register sets the
// direction and output level of the TR and TH lines of both joypad ports.
func (p *Ports) WriteIOControl(data uint8) {
	p.ioControl = data
}

func activeLow(pressed bool, bit uint8) uint8 {
	if pressed {
		return 0
	}
	return bit
}

// the level of a line that can be configured as an output. inputs are pulled
// high
func (p *Ports) line(direction uint8, level uint8) bool {
	if p.ioControl&direction == 0 {
		return p.ioControl&level == level
	}
	return true
}

// a line configured as an output reads back the output level
func (p *Ports) output(direction uint8, level uint8, v uint8, bit uint8) uint8 {
	if p.ioControl&direction != 0 {
		return v
	}
	if p.ioControl&level == level {
		return v | bit
	}
	return v &^ bit
}

// ReadPortA returns the value of the first joypad port.
func (p *Ports) ReadPortA() uint8 {
	if p.memoryControl&ioDisabled == ioDisabled {
		return 0xff
	}

	p1 := p.input.Player[0]
	p2 := p.input.Player[1]

	v := activeLow(p1.Up, 0x01) |
		activeLow(p1.Down, 0x02) |
		activeLow(p1.Left, 0x04) |
		activeLow(p1.Right, 0x08) |
		activeLow(p1.Button1, 0x10) |
		activeLow(p1.Button2, 0x20) |
		activeLow(p2.Up, 0x40) |
		activeLow(p2.Down, 0x80)

	return p.output(trADirection, trALevel, v, 0x20)
}

// ReadPortB returns the value of the second joypad port.
func (p *Ports) ReadPortB() uint8 {
	if p.memoryControl&ioDisabled == ioDisabled {
		return 0xff
	}

	p2 := p.input.Player[1]

	v := activeLow(p2.Left, 0x01) |
		activeLow(p2.Right, 0x02) |
		activeLow(p2.Button1, 0x04) |
		activeLow(p2.Button2, 0x08) |
		activeLow(p.input.Reset, 0x10) |
		0x20

	v = p.output(trBDirection, trBLevel, v, 0x08)

	if p.line(thADirection, thALevel) {
		v |= 0x40
	}
	if p.line(thBDirection, thBLevel) {
		v |= 0x80
	}

	return v
}

// SaveState copies the port controller state into the snapshot.
func (p *Ports) SaveState(s *snapshot.Snapshot) {
	s.Ports = snapshot.Ports{
		MemoryControl: p.memoryControl,
		IOControl:     p.ioControl,
		Pause:         p.pause,
		NMIPending:    p.nmiPending,
	}
}

// LoadState restores the port controller state from the snapshot.
func (p *Ports) LoadState(s *snapshot.Snapshot) {
	p.memoryControl = s.Ports.MemoryControl
	p.ioControl = s.Ports.IOControl
	p.pause = s.Ports.Pause
	p.nmiPending = s.Ports.NMIPending
}
