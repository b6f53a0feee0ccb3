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
	"time"

	"github.com/jetsetilly/gophersms/gui/sdlplay"
	"github.com/jetsetilly/gophersms/logger"
	"github.com/jetsetilly/gophersms/paths"
	"github.com/jetsetilly/gophersms/playmode"
	"github.com/jetsetilly/gophersms/recorder"
	"github.com/jetsetilly/gophersms/rewind"
	"github.com/jetsetilly/gophersms/statsview"
	"github.com/jetsetilly/gophersms/television"

	"github.com/spf13/cobra"
)

// the audio ring between the emulation and the SDL audio device
const (
	audioBlocks    = 8
	audioBlockSize = 1024
	audioWait      = 20 * time.Millisecond
)

func runCmd(c *common) *cobra.Command {
	var scale int
	var capped bool
	var stateFile string
	var stats bool
	var recordFile string

	cmd := &cobra.Command{
		Use:   "run [cartridge]",
		Short: "Play a cartridge in a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fb := television.NewFrameBuffer()
			ring := television.NewAudioRing(audioBlocks, audioBlockSize, audioWait)

			con, hw, err := c.newConsole(args[0], fb, ring)
			if err != nil {
				return err
			}

			// a recording starts from power-on with empty save RAM
			var saveDir string
			if hw.SaveRAM.Get().(bool) && recordFile == "" {
				saveDir, err = paths.ResourcePath("saveram", "")
				if err != nil {
					return err
				}
				if err := con.ReadSaveRAM(saveDir); err != nil {
					return err
				}
			}

			rp, err := rewind.NewPreferences()
			if err != nil {
				return err
			}

			if stats {
				stop, err := statsview.Launch(os.Stdout)
				if err != nil {
					return err
				}
				defer stop()
			}

			scr, err := sdlplay.NewSdlPlay(fb, ring, scale)
			if err != nil {
				return err
			}
			defer scr.Destroy()

			opts := playmode.Options{
				Capped:    capped,
				StateFile: stateFile,
				Rewind:    rewind.NewRewind(con, rp),
				Input:     scr.Input,
				Notify:    scr,
			}

			// state loading and rewind move the emulation backwards, which a
			// recording can't follow
			var rec *recorder.Recorder
			if recordFile != "" {
				rec, err = recorder.NewRecorder(recordFile, con)
				if err != nil {
					return err
				}
				opts.StateFile = ""
				opts.Rewind = nil
				opts.Input = rec.Wrap(scr.Input)
			}

			pl := playmode.NewPlaymode(con, opts)

			done := make(chan error, 1)
			go func() {
				done <- pl.Run()
				ring.Flush()
			}()

			err = scr.Service(pl, done)

			if rec != nil {
				if err := rec.End(); err != nil {
					logger.Log(logger.Allow, "gophersms", err)
				}
			}

			if err != nil {
				return err
			}

			if saveDir != "" {
				if err := con.WriteSaveRAM(saveDir); err != nil {
					logger.Log(logger.Allow, "gophersms", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&scale, "scale", 3, "window scale")
	cmd.Flags().BoolVar(&capped, "capped", true, "limit emulation to the frame rate of the region")
	cmd.Flags().StringVar(&stateFile, "state", "gophersms.state", "file used by the save and load state hotkeys")
	cmd.Flags().BoolVar(&stats, "statsview", false, "launch the statsview server (if available)")
	cmd.Flags().StringVar(&recordFile, "record", "", "record joypad input to file")

	return cmd
}
