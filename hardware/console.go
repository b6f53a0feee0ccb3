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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gophersms/hardware/cpu"
	"github.com/jetsetilly/gophersms/hardware/memory"
	"github.com/jetsetilly/gophersms/hardware/memory/cartridge"
	"github.com/jetsetilly/gophersms/hardware/ports"
	"github.com/jetsetilly/gophersms/hardware/psg"
	"github.com/jetsetilly/gophersms/hardware/vdp"
)

// Console is the main container for the emulated components of the console.
type Console struct {
	CPU   *cpu.CPU
	Mem   *memory.Bus
	VDP   *vdp.VDP
	PSG   *psg.PSG
	Ports *ports.Ports
}

// NewConsole creates a new console and everything associated with the
// hardware. Either of the sinks can be nil.
func NewConsole(video vdp.VideoSink, audio psg.AudioSink, region vdp.Region) *Console {
	con := &Console{
		VDP:   vdp.NewVDP(video, region),
		PSG:   psg.NewPSG(audio),
		Ports: ports.NewPorts(),
	}

	con.Mem = memory.NewBus(nil, con.VDP, con.PSG, con.Ports)
	con.CPU = cpu.NewCPU(con.Mem, con.Mem)

	return con
}

func (con *Console) String() string {
	return fmt.Sprintf("%s [%s] frame %d", con.Mem, con.VDP.Region(), con.VDP.Frame())
}

// AttachCartridge creates a cartridge from the data and inserts it into the
// console. The console is reset.
//
// If the data cannot be used the error is returned and the console is left
// unchanged.
func (con *Console) AttachCartridge(data []uint8) error {
	cart, err := cartridge.NewCartridge(data)
	if err != nil {
		return err
	}
	con.Mem.Cart = cart
	con.Reset()
	return nil
}

// Cartridge returns the inserted cartridge. Returns nil if there is no
// cartridge.
func (con *Console) Cartridge() *cartridge.Cartridge {
	return con.Mem.Cart
}

// Reset is equivalent to switching the console off and on again. Save RAM is
// preserved.
//
// The reset button on the console is not connected to the reset line of the
// CPU. The button is an input like any other and is set with SetInput().
func (con *Console) Reset() {
	con.Mem.Reset()
	con.VDP.ClearMemory()
	con.CPU.Reset()
}

// SetInput changes the state of the joypads and the console buttons.
func (con *Console) SetInput(in ports.Input) {
	con.Ports.SetInput(in)
}
