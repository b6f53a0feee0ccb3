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
	"github.com/jetsetilly/gophersms/logger"
	"github.com/jetsetilly/gophersms/snapshot"
)

// SaveState returns a copy of the entire state of the console.
func (con *Console) SaveState() *snapshot.Snapshot {
	s := &snapshot.Snapshot{}
	con.SaveStateInto(s)
	return s
}

// SaveStateInto copies the entire state of the console into an existing
// snapshot. Every field of the snapshot is overwritten.
func (con *Console) SaveStateInto(s *snapshot.Snapshot) {
	con.CPU.SaveState(s)
	if con.Mem.Cart != nil {
		con.Mem.Cart.SaveState(s)
	} else {
		s.Cartridge = 0
		s.Mapper = snapshot.Mapper{}
	}
	con.VDP.SaveState(s)
	con.PSG.SaveState(s)
	con.Ports.SaveState(s)
}

// LoadState restores the state of the console from a snapshot. The snapshot
// is ignored if it was taken with a different cartridge attached. Restoring a
// snapshot taken by SaveState() has no effect on the emulation.
func (con *Console) LoadState(s *snapshot.Snapshot) {
	if s == nil {
		return
	}

	var crc uint32
	if con.Mem.Cart != nil {
		crc = con.Mem.Cart.CRC()
	}
	if s.Cartridge != crc {
		logger.Logf(logger.Allow, "console", "snapshot is for a different cartridge (%08x)", s.Cartridge)
		return
	}

	con.CPU.LoadState(s)
	if con.Mem.Cart != nil {
		con.Mem.Cart.LoadState(s)
	}
	con.VDP.LoadState(s)
	con.PSG.LoadState(s)
	con.Ports.LoadState(s)
}
