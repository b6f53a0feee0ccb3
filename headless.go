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
	"strconv"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/digest"
	"github.com/jetsetilly/gophersms/hardware/psg"
	"github.com/jetsetilly/gophersms/recorder"
	"github.com/jetsetilly/gophersms/snapshot"
	"github.com/jetsetilly/gophersms/wavwriter"

	"github.com/spf13/cobra"
)

// multiAudio sends samples to more than one audio sink
type multiAudio []psg.AudioSink

func (m multiAudio) PushSample(sample int16) {
	for _, a := range m {
		a.PushSample(sample)
	}
}

func headlessCmd(c *common) *cobra.Command {
	var frames int
	var breakpoint string
	var wavFile string
	var stateFile string
	var playbackFile string

	cmd := &cobra.Command{
		Use:   "headless [cartridge]",
		Short: "Run a cartridge without a window and print digests of the output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vid := digest.NewVideo()
			ad := digest.NewAudio()
			aud := multiAudio{ad}

			var wav *wavwriter.WavWriter
			if wavFile != "" {
				var err error
				wav, err = wavwriter.NewWavWriter(wavFile)
				if err != nil {
					return err
				}
				aud = append(aud, wav)
			}

			con, _, err := c.newConsole(args[0], vid, aud)
			if err != nil {
				return err
			}

			if playbackFile != "" {
				plb, err := recorder.NewPlayback(playbackFile)
				if err != nil {
					return err
				}
				if err := plb.AttachToConsole(con); err != nil {
					return err
				}
				if err := plb.Run(); err != nil {
					return err
				}
			} else if breakpoint != "" {
				pc, err := strconv.ParseUint(breakpoint, 16, 16)
				if err != nil {
					return curated.Errorf("headless: invalid breakpoint (%s)", breakpoint)
				}
				err = con.RunUntilPC(uint16(pc), frames)
				if err != nil {
					return err
				}
			} else {
				err = con.RunForFrameCount(frames, nil)
				if err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, con)
			fmt.Fprintf(out, "video: %s\n", vid.Hash())
			fmt.Fprintf(out, "audio: %s\n", ad.Hash())

			if wav != nil {
				fmt.Fprintf(out, "wav: %d samples written to %s\n", wav.NumSamples(), wavFile)
				if err := wav.EndMixing(); err != nil {
					return err
				}
			}

			if stateFile != "" {
				if err := snapshot.Save(stateFile, con.SaveState()); err != nil {
					return err
				}
				fmt.Fprintf(out, "state: saved to %s\n", stateFile)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 60, "number of frames to run (or the frame limit with --breakpoint)")
	cmd.Flags().StringVar(&breakpoint, "breakpoint", "", "run until the PC reaches this address (hex)")
	cmd.Flags().StringVar(&wavFile, "wav", "", "write audio to WAV file")
	cmd.Flags().StringVar(&stateFile, "state", "", "save the console state to file when finished")
	cmd.Flags().StringVar(&playbackFile, "playback", "", "play back a recording made with 'run --record' (ignores --frames and --breakpoint)")

	return cmd
}
