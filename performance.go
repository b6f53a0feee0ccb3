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
	"github.com/jetsetilly/gophersms/performance"
	"github.com/jetsetilly/gophersms/statsview"

	"github.com/spf13/cobra"
)

func performanceCmd(c *common) *cobra.Command {
	var duration string
	var profile string
	var capped bool
	var stats bool

	cmd := &cobra.Command{
		Use:   "performance [cartridge]",
		Short: "Measure the speed of the emulation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prf, err := performance.ParseProfile(profile)
			if err != nil {
				return err
			}

			con, _, err := c.newConsole(args[0], nil, nil)
			if err != nil {
				return err
			}

			if stats {
				stop, err := statsview.Launch(cmd.OutOrStdout())
				if err != nil {
					return err
				}
				defer stop()
			}

			return performance.Check(cmd.OutOrStdout(), prf, con, capped, duration)
		},
	}

	cmd.Flags().StringVar(&duration, "duration", "5s", "run duration")
	cmd.Flags().StringVar(&profile, "profile", "none", "create profiling reports: none, cpu, mem, trace, all")
	cmd.Flags().BoolVar(&capped, "capped", false, "limit emulation to the frame rate of the region")
	cmd.Flags().BoolVar(&stats, "statsview", false, "launch the statsview server (if available)")

	return cmd
}
