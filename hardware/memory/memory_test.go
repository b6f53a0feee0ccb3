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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gophersms/hardware/memory"
	"github.com/jetsetilly/gophersms/hardware/memory/bus"
	"github.com/jetsetilly/gophersms/hardware/memory/cartridge"
	"github.com/jetsetilly/gophersms/hardware/ports"
	"github.com/jetsetilly/gophersms/hardware/psg"
	"github.com/jetsetilly/gophersms/hardware/vdp"
	"github.com/jetsetilly/gophersms/test"
)

func newBus(t *testing.T, banks int) *memory.Bus {
	t.Helper()

	var cart *cartridge.Cartridge

	if banks > 0 {
		data := make([]uint8, banks*cartridge.BankSize)
		for b := 0; b < banks; b++ {
			data[b*cartridge.BankSize+0x1000] = uint8(b)
		}

		var err error
		cart, err = cartridge.NewCartridge(data)
		test.DemandSuccess(t, err)
	}

	return memory.NewBus(cart, vdp.NewVDP(nil, vdp.NTSC), psg.NewPSG(nil), ports.NewPorts())
}

func TestInterfaces(t *testing.T) {
	mem := newBus(t, 0)
	test.DemandImplements[bus.CPUBus](t, mem)
	test.DemandImplements[bus.InterruptBus](t, mem)
	test.DemandImplements[bus.DebuggerBus](t, mem)
}

func TestNoCartridge(t *testing.T) {
	mem := newBus(t, 0)
	test.ExpectEquality(t, mem.Read(0x0000), uint8(0xff))
	test.ExpectEquality(t, mem.Read(0xc000), uint8(0xff))
	mem.Write(0xc000, 0x12)
	test.ExpectEquality(t, mem.Read(0xc000), uint8(0xff))
	test.ExpectEquality(t, mem.String(), "no cartridge")
}

func TestMemory(t *testing.T) {
	mem := newBus(t, 4)

	mem.WriteWord(0xc010, 0x1234)
	test.ExpectEquality(t, mem.Read(0xc010), uint8(0x34))
	test.ExpectEquality(t, mem.Read(0xc011), uint8(0x12))
	test.ExpectEquality(t, mem.ReadWord(0xe010), uint16(0x1234))

	// select bank 3 into slot 2
	test.ExpectEquality(t, mem.Read(0x9000), uint8(2))
	mem.Write(0xffff, 3)
	test.ExpectEquality(t, mem.Read(0x9000), uint8(3))

	test.ExpectEquality(t, mem.Describe(0x9000), "Slot 2")
	test.ExpectEquality(t, mem.Describe(0xffff), "Work RAM (mirror of dfff)")
}

func TestPokeHasNoSideEffects(t *testing.T) {
	mem := newBus(t, 4)

	mem.Poke(0xfffe, 0x03)
	test.ExpectEquality(t, mem.Read(0x5000), uint8(1))
	test.ExpectEquality(t, mem.Peek(0xfffe), uint8(0x03))

	// poking ROM changes the ROM
	mem.Poke(0x5000, 0x99)
	test.ExpectEquality(t, mem.Peek(0x5000), uint8(0x99))

	// writing ROM does not
	mem.Write(0x5000, 0x11)
	test.ExpectEquality(t, mem.Read(0x5000), uint8(0x99))
}

func TestPortDecode(t *testing.T) {
	mem := newBus(t, 1)

	// nothing responds to reads from the first group
	test.ExpectEquality(t, mem.In(0x0000), uint8(0xff))
	test.ExpectEquality(t, mem.In(0x003f), uint8(0xff))

	// VRAM write to address 0x0100 through a mirror of the control port
	mem.Out(0x00bd, 0x00)
	mem.Out(0x00bd, 0x41)
	mem.Out(0x00be, 0x55)
	test.ExpectEquality(t, mem.VDP.PeekVRAM(0x0100), uint8(0x55))

	// register write
	mem.Out(0x00bf, 0x20)
	mem.Out(0x00bf, 0x81)
	test.ExpectEquality(t, mem.VDP.Register(1), uint8(0x20))

	// PSG through any port in the second group
	mem.Out(0x007e, 0x9a)
	test.ExpectEquality(t, mem.PSG.Volume(0), uint8(0x0a))
	mem.Out(0x0041, 0x80)
	mem.Out(0x0041, 0x14)
	test.ExpectEquality(t, mem.PSG.Tone(0), uint16(320))

	// counters
	test.ExpectEquality(t, mem.In(0x007e), mem.VDP.VCounter())
	test.ExpectEquality(t, mem.In(0x007f), mem.VDP.HCounter())

	// writes to the last group are ignored
	mem.Out(0x00dc, 0x00)
	test.ExpectEquality(t, mem.In(0x00dc), uint8(0xff))
}

func TestJoypadPorts(t *testing.T) {
	mem := newBus(t, 1)

	var in ports.Input
	in.Player[0].Button1 = true
	mem.Ports.SetInput(in)
	test.ExpectEquality(t, mem.In(0x00dc), uint8(0xef))
	test.ExpectEquality(t, mem.In(0x00c0), uint8(0xef))

	// disable the I/O chip through the memory control port
	mem.Out(0x003e, 0x04)
	test.ExpectEquality(t, mem.In(0x00dc), uint8(0xff))

	// TH lines through the I/O control port
	mem.Out(0x003e, 0x00)
	mem.Out(0x003f, 0x55)
	test.ExpectEquality(t, mem.In(0x00dd)&0xc0, uint8(0x00))
}

func TestInterrupts(t *testing.T) {
	mem := newBus(t, 1)

	test.ExpectEquality(t, mem.NMI(), false)
	mem.Ports.SetInput(ports.Input{Pause: true})
	test.ExpectEquality(t, mem.NMI(), true)
	test.ExpectEquality(t, mem.NMI(), false)

	// enable the frame interrupt and run to the end of the active display
	mem.Out(0xbf, 0x60)
	mem.Out(0xbf, 0x81)
	test.ExpectEquality(t, mem.IRQ(), false)

	for mem.VDP.Scanline() != 192 {
		mem.Step(vdp.CyclesPerLine)
	}
	test.ExpectEquality(t, mem.IRQ(), true)

	// reading the status acknowledges the interrupt
	mem.In(0xbf)
	test.ExpectEquality(t, mem.IRQ(), false)
}
