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
	"strconv"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/disassembly"

	"github.com/spf13/cobra"
)

func disasmCmd(c *common) *cobra.Command {
	var from string
	var to string

	cmd := &cobra.Command{
		Use:   "disasm [cartridge]",
		Short: "Disassemble cartridge memory as mapped at power on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := strconv.ParseUint(from, 16, 16)
			if err != nil {
				return curated.Errorf("disasm: invalid address (%s)", from)
			}
			end, err := strconv.ParseUint(to, 16, 16)
			if err != nil {
				return curated.Errorf("disasm: invalid address (%s)", to)
			}
			if end < start {
				return curated.Errorf("disasm: end address before start address")
			}

			con, _, err := c.newConsole(args[0], nil, nil)
			if err != nil {
				return err
			}

			return disassembly.Write(cmd.OutOrStdout(), disassembly.Linear(con.Mem, uint16(start), uint16(end)))
		},
	}

	cmd.Flags().StringVar(&from, "from", "0000", "start address (hex)")
	cmd.Flags().StringVar(&to, "to", "00ff", "end address (hex)")

	return cmd
}
