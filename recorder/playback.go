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

package recorder

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware"
	"github.com/jetsetilly/gophersms/hardware/ports"
	"github.com/jetsetilly/gophersms/hardware/vdp"
)

// PlaybackHashError is returned by Playback.Input() when the console state
// does not match the state at the time of recording.
const PlaybackHashError = "playback: unexpected state at line %d (frame %d)"

type playbackEntry struct {
	frame int
	input ports.Input
	hash  string

	// the line in the recording file the entry appears
	line int
}

// Playback reperforms the input in a previously recorded file.
type Playback struct {
	Cartridge uint32
	Region    vdp.Region

	sequence []playbackEntry
	seqCt    int

	con     *hardware.Console
	current ports.Input

	// the last frame where an entry occurs
	endFrame int
}

func (plb *Playback) String() string {
	if plb.con == nil || plb.endFrame == 0 {
		return "playback"
	}
	frame := plb.con.VDP.Frame()
	return fmt.Sprintf("%d/%d (%.1f%%)", frame, plb.endFrame, 100*float64(frame)/float64(plb.endFrame))
}

// NewPlayback reads the recording file.
func NewPlayback(filename string) (*Playback, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) < numHeaderLines || lines[lineMagic] != magicLine {
		return nil, curated.Errorf("playback: not a recording file (%s)", filename)
	}

	plb := &Playback{}

	header := func(line int, name string) (string, error) {
		toks := strings.Split(lines[line], fieldSep)
		if len(toks) != 2 || toks[0] != name {
			return "", curated.Errorf("playback: expected %s at line %d", name, line+1)
		}
		return toks[1], nil
	}

	s, err := header(lineCartridge, "cartridge")
	if err != nil {
		return nil, err
	}
	crc, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, curated.Errorf("playback: invalid cartridge checksum at line %d", lineCartridge+1)
	}
	plb.Cartridge = uint32(crc)

	s, err = header(lineRegion, "region")
	if err != nil {
		return nil, err
	}
	plb.Region, err = vdp.ParseRegion(s)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	for i := numHeaderLines; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		toks := strings.Split(lines[i], fieldSep)
		if len(toks) != numFields {
			return nil, curated.Errorf("playback: expected %d fields at line %d", numFields, i+1)
		}

		entry := playbackEntry{line: i + 1, hash: toks[fieldHash]}

		entry.frame, err = strconv.Atoi(toks[fieldFrame])
		if err != nil {
			return nil, curated.Errorf("playback: invalid frame at line %d", i+1)
		}
		if entry.frame < plb.endFrame {
			return nil, curated.Errorf("playback: frames out of order at line %d", i+1)
		}
		plb.endFrame = entry.frame

		v, err := strconv.ParseUint(toks[fieldInput], 16, 16)
		if err != nil {
			return nil, curated.Errorf("playback: invalid input at line %d", i+1)
		}
		entry.input = ports.UnpackInput(uint16(v))

		plb.sequence = append(plb.sequence, entry)
	}

	return plb, nil
}

// AttachToConsole prepares the console for playback. The cartridge and region
// of the console must match the recording. The console is reset.
func (plb *Playback) AttachToConsole(con *hardware.Console) error {
	cart := con.Cartridge()
	if cart == nil {
		return curated.Errorf("playback: no cartridge attached")
	}
	if cart.CRC() != plb.Cartridge {
		return curated.Errorf("playback: recording was made with a different cartridge (%08x)", plb.Cartridge)
	}
	if con.VDP.Region() != plb.Region {
		return curated.Errorf("playback: recording was made with the %s region", plb.Region)
	}

	con.Reset()

	plb.con = con
	plb.seqCt = 0
	plb.current = ports.Input{}

	return nil
}

// EndFrame returns the frame of the last entry in the recording.
func (plb *Playback) EndFrame() int {
	return plb.endFrame
}

// Input returns the input for the frame about to be run. An error is returned
// if the console state does not match the recording.
func (plb *Playback) Input() (ports.Input, error) {
	if plb.con == nil {
		return ports.Input{}, curated.Errorf("playback: not attached to a console")
	}

	frame := plb.con.VDP.Frame()

	for plb.seqCt < len(plb.sequence) && plb.sequence[plb.seqCt].frame <= frame {
		entry := plb.sequence[plb.seqCt]
		plb.seqCt++

		hash, err := stateHash(plb.con)
		if err != nil {
			return plb.current, curated.Errorf("playback: %v", err)
		}
		if entry.frame != frame || hash != entry.hash {
			return plb.current, curated.Errorf(PlaybackHashError, entry.line, frame)
		}

		plb.current = entry.input
	}

	return plb.current, nil
}

// Run the playback until the end of the recording.
func (plb *Playback) Run() error {
	if plb.con == nil {
		return curated.Errorf("playback: not attached to a console")
	}

	for plb.con.VDP.Frame() <= plb.endFrame {
		in, err := plb.Input()
		if err != nil {
			return err
		}
		if plb.con.VDP.Frame() == plb.endFrame {
			break
		}
		plb.con.SetInput(in)
		if err := plb.con.RunFrame(); err != nil {
			return err
		}
	}

	return nil
}
