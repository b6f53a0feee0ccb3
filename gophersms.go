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
	"os"
	"runtime"
	"strings"

	"github.com/jetsetilly/gophersms/cartridgeloader"
	"github.com/jetsetilly/gophersms/hardware"
	"github.com/jetsetilly/gophersms/hardware/preferences"
	"github.com/jetsetilly/gophersms/hardware/psg"
	"github.com/jetsetilly/gophersms/hardware/vdp"
	"github.com/jetsetilly/gophersms/logger"
	"github.com/jetsetilly/gophersms/prefs"
	"github.com/jetsetilly/gophersms/version"

	"github.com/spf13/cobra"
)

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
)

func init() {
	// SDL requires that window and event handling happens on the main
	// thread. cobra runs commands on the main goroutine so we lock it to the
	// main thread here
	runtime.LockOSThread()
}

// flags common to all commands
type common struct {
	region  string
	prefs   string
	echoLog bool
}

func main() {
	var c common

	rootCmd := &cobra.Command{
		Use:           "gophersms",
		Short:         fmt.Sprintf("%s: Sega Master System emulator", version.ApplicationName),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.echoLog {
				logger.SetEcho(os.Stdout)
			}
			if c.prefs != "" {
				prefs.PushCommandLineStack(c.prefs)
			}
			logger.Log(logger.Allow, "gophersms", version.Summary())
		},
	}

	v, rev, _ := version.Version()
	rootCmd.Version = fmt.Sprintf("%s (%s)", v, rev)

	rootCmd.PersistentFlags().StringVar(&c.region, "region", "", "television region: NTSC, PAL (default from preferences)")
	rootCmd.PersistentFlags().StringVar(&c.prefs, "prefs", "", "override preferences for this session (key::value; key::value)")
	rootCmd.PersistentFlags().BoolVar(&c.echoLog, "log", false, "echo log to stdout")

	rootCmd.AddCommand(runCmd(&c))
	rootCmd.AddCommand(headlessCmd(&c))
	rootCmd.AddCommand(performanceCmd(&c))
	rootCmd.AddCommand(regressCmd(&c))
	rootCmd.AddCommand(stateCmd(&c))
	rootCmd.AddCommand(memvizCmd(&c))
	rootCmd.AddCommand(disasmCmd(&c))

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", strings.ToUpper(cmd.Name()), err)
		if cmd == rootCmd || strings.Contains(err.Error(), "flag") {
			os.Exit(exitParseError)
		}
		os.Exit(exitModeError)
	}
}

// tvRegion returns the region specified on the command line or in the
// preferences file.
func (c *common) tvRegion() (vdp.Region, *preferences.Preferences, error) {
	p, err := preferences.NewPreferences()
	if err != nil {
		return vdp.NTSC, nil, err
	}

	if c.region != "" {
		r, err := vdp.ParseRegion(c.region)
		return r, p, err
	}

	return p.TVRegion(), p, nil
}

// newConsole creates a console with the cartridge in the named file.
func (c *common) newConsole(filename string, video vdp.VideoSink, audio psg.AudioSink) (*hardware.Console, *preferences.Preferences, error) {
	region, p, err := c.tvRegion()
	if err != nil {
		return nil, nil, err
	}

	cl := cartridgeloader.NewLoader(filename)
	if err := cl.Load(); err != nil {
		return nil, nil, err
	}

	con := hardware.NewConsole(video, audio, region)

	err = con.AttachCartridge(cl.Data)
	if err != nil {
		return nil, nil, err
	}

	logger.Logf(logger.Allow, "gophersms", "%s: %s", cl.ShortName(), con)

	return con, p, nil
}
