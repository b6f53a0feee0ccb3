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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gophersms/hardware/memory/cartridge"
	"github.com/jetsetilly/gophersms/hardware/memory/memorymap"
	"github.com/jetsetilly/gophersms/hardware/ports"
	"github.com/jetsetilly/gophersms/hardware/psg"
	"github.com/jetsetilly/gophersms/hardware/vdp"
)

// the value read from the data bus when nothing drives it
const openBus = 0xff

// Bus connects the CPU to the rest of the console. It implements the
// bus.CPUBus, bus.InterruptBus and bus.DebuggerBus interfaces.
type Bus struct {
	// the cartridge can be nil. reads from an empty slot return 0xff
	Cart *cartridge.Cartridge

	VDP   *vdp.VDP
	PSG   *psg.PSG
	Ports *ports.Ports
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(cart *cartridge.Cartridge, vdp *vdp.VDP, psg *psg.PSG, ports *ports.Ports) *Bus {
	return &Bus{
		Cart:  cart,
		VDP:   vdp,
		PSG:   psg,
		Ports: ports,
	}
}

func (mem *Bus) String() string {
	if mem.Cart == nil {
		return "no cartridge"
	}
	return mem.Cart.String()
}

// Reset all devices attached to the bus.
func (mem *Bus) Reset() {
	if mem.Cart != nil {
		mem.Cart.Reset()
	}
	mem.VDP.Reset()
	mem.PSG.Reset()
	mem.Ports.Reset()
}

// Step advances the VDP and then the PSG by the number of cycles consumed by
// the most recent CPU instruction.
func (mem *Bus) Step(cycles int) {
	mem.VDP.Step(cycles)
	mem.PSG.Step(cycles)
}

// Read implements the bus.CPUBus interface.
func (mem *Bus) Read(address uint16) uint8 {
	if mem.Cart == nil {
		return openBus
	}
	return mem.Cart.ReadByte(address)
}

// Write implements the bus.CPUBus interface.
func (mem *Bus) Write(address uint16, data uint8) {
	if mem.Cart == nil {
		return
	}
	mem.Cart.WriteByte(address, data)
}

// ReadWord reads a little-endian word from memory.
func (mem *Bus) ReadWord(address uint16) uint16 {
	lo := mem.Read(address)
	hi := mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a little-endian word to memory.
func (mem *Bus) WriteWord(address uint16, data uint16) {
	mem.Write(address, uint8(data))
	mem.Write(address+1, uint8(data>>8))
}

// In implements the bus.CPUBus interface.
func (mem *Bus) In(port uint16) uint8 {
	switch memorymap.MapPort(port, false) {
	case memorymap.VCounter:
		return mem.VDP.VCounter()
	case memorymap.HCounter:
		return mem.VDP.HCounter()
	case memorymap.VDPData:
		return mem.VDP.ReadData()
	case memorymap.VDPControl:
		return mem.VDP.ReadControl()
	case memorymap.PortA:
		return mem.Ports.ReadPortA()
	case memorymap.PortB:
		return mem.Ports.ReadPortB()
	}
	return openBus
}

// Out implements the bus.CPUBus interface.
func (mem *Bus) Out(port uint16, data uint8) {
	switch memorymap.MapPort(port, true) {
	case memorymap.MemoryControl:
		mem.Ports.WriteMemoryControl(data)
	case memorymap.IOControl:
		mem.Ports.WriteIOControl(data)
	case memorymap.PSG:
		mem.PSG.WriteData(data)
	case memorymap.VDPData:
		mem.VDP.WriteData(data)
	case memorymap.VDPControl:
		mem.VDP.WriteControl(data)
	}
}

// IRQ implements the bus.InterruptBus interface. The VDP is the only source
// of maskable interrupts.
func (mem *Bus) IRQ() bool {
	return mem.VDP.IRQ()
}

// NMI implements the bus.InterruptBus interface. The pause button is the only
// source of non-maskable interrupts.
func (mem *Bus) NMI() bool {
	return mem.Ports.NMI()
}

// Peek implements the bus.DebuggerBus interface. Reading from the cartridge
// has no side-effects and so Peek() is the same as Read().
func (mem *Bus) Peek(address uint16) uint8 {
	return mem.Read(address)
}

// Poke implements the bus.DebuggerBus interface. ROM can be changed with
// Poke() and writes to the mapper control addresses do not change the banks.
func (mem *Bus) Poke(address uint16, value uint8) {
	if mem.Cart == nil {
		return
	}
	mem.Cart.PokeROM(address, value)
}

// Describe returns a description of the address for presentation to the user.
func (mem *Bus) Describe(address uint16) string {
	a, area := memorymap.MapAddress(address)
	if a != address {
		return fmt.Sprintf("%s (mirror of %04x)", area, a)
	}
	return area.String()
}
