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
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gophersms/curated"

	"github.com/spf13/cobra"
)

func memvizCmd(c *common) *cobra.Command {
	var frames int
	var output string

	cmd := &cobra.Command{
		Use:   "memviz [cartridge]",
		Short: "Write a graphviz description of the console state after running",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			con, _, err := c.newConsole(args[0], nil, nil)
			if err != nil {
				return err
			}

			if err := con.RunForFrameCount(frames, nil); err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return curated.Errorf("memviz: %v", err)
			}
			defer f.Close()

			// the memory arrays of the snapshot produce graphs too large to
			// be useful so only the register state is mapped
			s := con.SaveState()
			memviz.Map(f, &s.CPU, &s.Mapper.Slots, &s.VDP.Registers, &s.PSG, &s.Ports)

			return nil
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 60, "number of frames to run before mapping")
	cmd.Flags().StringVar(&output, "output", "gophersms.dot", "graphviz output file")

	return cmd
}
