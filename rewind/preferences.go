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

package rewind

import (
	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/paths"
	"github.com/jetsetilly/gophersms/prefs"
)

// Preferences for the rewind system.
type Preferences struct {
	dsk *prefs.Disk

	// the maximum number of snapshots to store before the earliest snapshot
	// is forgotten
	MaxEntries prefs.Int

	// how often a snapshot of the system is taken, in frames
	Freq prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// default preference values
const (
	maxEntries   = 100
	snapshotFreq = 1
)

// NewPreferences is the preferred method of initialisation for the Preferences
// type. The values are loaded from disk.
func NewPreferences() (*Preferences, error) {
	p := defaultPreferences()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("rewind.maxEntries", &p.MaxEntries)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rewind.snapshotFreq", &p.Freq)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// preferences with the default values and no disk backing
func defaultPreferences() *Preferences {
	p := &Preferences{}
	_ = p.MaxEntries.Set(maxEntries)
	_ = p.Freq.Set(snapshotFreq)
	return p
}

// Load rewind preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return curated.Errorf("rewind: preferences are not stored on disk")
	}
	return p.dsk.Load(false)
}

// Save current rewind preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf("rewind: preferences are not stored on disk")
	}
	return p.dsk.Save()
}
