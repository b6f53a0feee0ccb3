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

// Package preferences holds the preference values for the hardware
// emulation. The values are stored on disk with the prefs package.
package preferences

import (
	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware/vdp"
	"github.com/jetsetilly/gophersms/logger"
	"github.com/jetsetilly/gophersms/paths"
	"github.com/jetsetilly/gophersms/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the television standard of the console. one of the values accepted by
	// vdp.ParseRegion()
	Region prefs.String

	// save RAM is written to disk when the emulation ends and loaded when a
	// cartridge is attached
	SaveRAM prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Region.RegisterCallback(func(v prefs.Value) error {
		_, err := vdp.ParseRegion(v.(string))
		return err
	})

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return p, p.load(pth)
}

func (p *Preferences) load(pth string) error {
	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return err
	}
	err = p.dsk.Add("hardware.region", &p.Region)
	if err != nil {
		return err
	}
	err = p.dsk.Add("hardware.saveram", &p.SaveRAM)
	if err != nil {
		return err
	}
	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return err
		}
	}

	return nil
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.Region.Set(vdp.NTSC.String())
	_ = p.SaveRAM.Set(true)
}

// TVRegion returns the Region preference as a vdp.Region. An invalid
// preference value is logged and the default region is returned.
func (p *Preferences) TVRegion() vdp.Region {
	r, err := vdp.ParseRegion(p.Region.String())
	if err != nil {
		logger.Log(logger.Allow, "preferences", err)
		return vdp.NTSC
	}
	return r
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
