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

package main

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware/memory/memorymap"
	"github.com/jetsetilly/gophersms/snapshot"

	"github.com/spf13/cobra"
)

func stateCmd(_ *common) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Inspect the memory map and saved console state",
	}

	memmapCmd := &cobra.Command{
		Use:   "memmap",
		Short: "Print the memory and port maps of the console",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, memorymap.Summary())
			fmt.Fprintln(out, memorymap.PortSummary())
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info [state file]",
		Short: "Print a summary of a saved console state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := snapshot.Load(args[0])
			if !ok {
				return curated.Errorf("state: cannot load %s (see log)", args[0])
			}
			stateInfo(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.AddCommand(memmapCmd, infoCmd)

	return cmd
}

func stateInfo(out io.Writer, s *snapshot.Snapshot) {
	fmt.Fprintf(out, "cartridge: %08x\n", s.Cartridge)
	fmt.Fprintf(out, "frame: %d  scanline: %d\n", s.VDP.Frame, s.VDP.Scanline)

	c := s.CPU
	fmt.Fprintf(out, "PC=%04x SP=%04x AF=%04x BC=%04x DE=%04x HL=%04x IX=%04x IY=%04x\n",
		c.PC, c.SP, c.AF, c.BC, c.DE, c.HL, c.IX, c.IY)
	fmt.Fprintf(out, "IM=%d IFF1=%v IFF2=%v halted=%v\n", c.IM, c.IFF1, c.IFF2, c.Halted)

	fmt.Fprintf(out, "slots: %02x %02x %02x  control: %02x\n",
		s.Mapper.Slots[0], s.Mapper.Slots[1], s.Mapper.Slots[2], s.Mapper.Control)

	fmt.Fprintf(out, "vdp registers:")
	for _, r := range s.VDP.Registers {
		fmt.Fprintf(out, " %02x", r)
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "psg tone: %d %d %d  noise: %02x  volume: %d %d %d %d\n",
		s.PSG.Tone[0], s.PSG.Tone[1], s.PSG.Tone[2], s.PSG.Noise,
		s.PSG.Volume[0], s.PSG.Volume[1], s.PSG.Volume[2], s.PSG.Volume[3])
}
