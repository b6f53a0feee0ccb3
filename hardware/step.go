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
	"github.com/jetsetilly/gophersms/curated"
)

// BreakpointNotReached is returned by RunUntilPC() when the frame limit is
// reached before the program counter reaches the breakpoint.
const BreakpointNotReached = "breakpoint: PC %04x not reached after %d frames"

// Step the emulation by a single CPU instruction. The VDP and the PSG are
// advanced by the number of cycles consumed by the instruction.
//
// An error is returned if the CPU cannot continue. Errors are not recoverable
// and the console should be reset or restored from a snapshot.
func (con *Console) Step() (int, error) {
	cycles, err := con.CPU.Step()
	if err != nil {
		return 0, err
	}
	con.Mem.Step(cycles)
	return cycles, nil
}

// RunFrame steps the emulation until the VDP starts a new frame.
func (con *Console) RunFrame() error {
	frame := con.VDP.Frame()
	for frame == con.VDP.Frame() {
		if _, err := con.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunForFrameCount runs the emulation for the specified number of frames.
// The continueCheck function is called at the end of every frame and can be
// nil. The emulation stops early if continueCheck returns false or an error.
func (con *Console) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(_ int) (bool, error) { return true, nil }
	}

	for i := 0; i < numFrames; i++ {
		if err := con.RunFrame(); err != nil {
			return err
		}

		ok, err := continueCheck(con.VDP.Frame())
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}

	return nil
}

// RunUntilPC steps the emulation until the program counter equals the
// breakpoint address at an instruction boundary. At least one instruction is
// executed. Returns BreakpointNotReached if maxFrames frames complete first.
func (con *Console) RunUntilPC(pc uint16, maxFrames int) error {
	limit := con.VDP.Frame() + maxFrames
	for {
		if _, err := con.Step(); err != nil {
			return err
		}
		if con.CPU.Reg.PC == pc {
			return nil
		}
		if con.VDP.Frame() >= limit {
			return curated.Errorf(BreakpointNotReached, pc, maxFrames)
		}
	}
}
