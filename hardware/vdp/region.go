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

package vdp

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophersms/curated"
)

// Region of the console. The region decides the number of scanlines in a
// frame and the behaviour of the V counter.
type Region int

// List of valid Region values.
const (
	NTSC Region = iota
	PAL
)

func (r Region) String() string {
	switch r {
	case NTSC:
		return "NTSC"
	case PAL:
		return "PAL"
	}
	return fmt.Sprintf("region(%d)", int(r))
}

// UnknownRegion is the error pattern returned by ParseRegion().
const UnknownRegion = "vdp: unknown region (%s)"

// ParseRegion converts a string to a Region. The comparison is not case
// sensitive.
func ParseRegion(s string) (Region, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NTSC":
		return NTSC, nil
	case "PAL":
		return PAL, nil
	}
	return NTSC, curated.Errorf(UnknownRegion, s)
}

// LinesPerFrame returns the number of scanlines in a frame.
func (r Region) LinesPerFrame() int {
	if r == PAL {
		return 313
	}
	return 262
}

// FramesPerSecond returns the nominal refresh rate of the region.
func (r Region) FramesPerSecond() float64 {
	if r == PAL {
		return 50
	}
	return 60
}

// the V counter is a single byte and so cannot count all the scanlines in a
// frame. it counts upwards from zero and at a point near the bottom of the
// frame jumps backwards. the point of the jump depends on the region and on
// the number of lines in the active display
type vcounterJump struct {
	// the last value before the jump and the first value after it
	last  int
	first int
}

func (r Region) vcounterJumps(activeHeight int) []vcounterJump {
	switch r {
	case PAL:
		if activeHeight == 224 {
			return []vcounterJump{{last: 0xff, first: 0x00}, {last: 0x02, first: 0xca}}
		}
		return []vcounterJump{{last: 0xf2, first: 0xba}}
	}
	if activeHeight == 224 {
		return []vcounterJump{{last: 0xea, first: 0xe5}}
	}
	return []vcounterJump{{last: 0xda, first: 0xd5}}
}

// vcounter returns the V counter value for the scanline
func (r Region) vcounter(scanline int, activeHeight int) uint8 {
	v := 0
	for _, j := range r.vcounterJumps(activeHeight) {
		if scanline <= j.last-v {
			return uint8(v + scanline)
		}
		scanline -= j.last - v + 1
		v = j.first
	}
	return uint8(v + scanline)
}
