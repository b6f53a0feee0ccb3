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
	"io"
	"os"
	"strconv"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/regression"

	"github.com/spf13/cobra"
)

type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

func regressCmd(c *common) *cobra.Command {
	var db string

	dbPath := func() (string, error) {
		if db != "" {
			return db, nil
		}
		return regression.DefaultDatabase()
	}

	cmd := &cobra.Command{
		Use:   "regress",
		Short: "Record and check regression tests",
	}
	cmd.PersistentFlags().StringVar(&db, "db", "", "regression database (default in resource directory)")

	runCmd := &cobra.Command{
		Use:     "run [keys...]",
		Aliases: []string{"check"},
		Short:   "Check entries against their recorded artifacts (all entries if no keys)",
		RunE: func(cmd *cobra.Command, args []string) error {
			pth, err := dbPath()
			if err != nil {
				return err
			}
			fails, err := regression.RegressRun(cmd.OutOrStdout(), pth, args)
			if err != nil {
				return err
			}
			if fails > 0 {
				return curated.Errorf("regression: %d tests failed", fails)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List entries in the regression database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pth, err := dbPath()
			if err != nil {
				return err
			}
			return regression.RegressList(cmd.OutOrStdout(), pth)
		},
	}

	var answerYes bool

	deleteCmd := &cobra.Command{
		Use:   "delete [key]",
		Short: "Delete an entry from the regression database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pth, err := dbPath()
			if err != nil {
				return err
			}

			// use stdin for confirmation unless "yes" flag has been sent
			var confirmation io.Reader
			if answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			return regression.RegressDelete(cmd.OutOrStdout(), confirmation, pth, args[0])
		},
	}
	deleteCmd.Flags().BoolVar(&answerYes, "yes", false, "answer yes to confirmation")

	var breakpoint string
	var maxFrames int
	var notes string

	recordCmd := &cobra.Command{
		Use:   "record [cartridge]",
		Short: "Run a cartridge to a breakpoint and record the golden artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pth, err := dbPath()
			if err != nil {
				return err
			}

			region, _, err := c.tvRegion()
			if err != nil {
				return err
			}

			pc, err := strconv.ParseUint(breakpoint, 16, 16)
			if err != nil {
				return curated.Errorf("regression: invalid breakpoint (%s)", breakpoint)
			}

			ent := &regression.GoldenEntry{
				CartridgeFile: args[0],
				Region:        region,
				Breakpoint:    uint16(pc),
				MaxFrames:     maxFrames,
				Notes:         notes,
			}

			return regression.RegressAdd(cmd.OutOrStdout(), pth, ent)
		},
	}
	recordCmd.Flags().StringVar(&breakpoint, "breakpoint", "", "PC address at which to stop (hex)")
	recordCmd.Flags().IntVar(&maxFrames, "frames", 600, "maximum number of frames before the breakpoint is reached")
	recordCmd.Flags().StringVar(&notes, "notes", "", "additional annotation for the database")
	_ = recordCmd.MarkFlagRequired("breakpoint")

	cmd.AddCommand(recordCmd, runCmd, listCmd, deleteCmd)

	return cmd
}
