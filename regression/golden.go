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

package regression

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophersms/cartridgeloader"
	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/database"
	"github.com/jetsetilly/gophersms/digest"
	"github.com/jetsetilly/gophersms/hardware"
	"github.com/jetsetilly/gophersms/hardware/vdp"
	"github.com/jetsetilly/gophersms/snapshot"
)

const goldenEntryID = "golden"

const (
	goldenFieldCartridge int = iota
	goldenFieldRegion
	goldenFieldBreakpoint
	goldenFieldMaxFrames
	goldenFieldState
	goldenFieldVideo
	goldenFieldAudio
	goldenFieldNotes
	numGoldenFields
)

// the extension of snapshot files stored by golden entries
const stateExtension = ".state"

// GoldenEntry is a regression entry that runs a cartridge until the program
// counter reaches a breakpoint.
type GoldenEntry struct {
	CartridgeFile string
	Region        vdp.Region
	Breakpoint    uint16
	MaxFrames     int

	// the snapshot file is created when the entry is first run
	StateFile string

	VideoDigest string
	AudioDigest string

	Notes string
}

func deserialiseGoldenEntry(fields []string) (database.Entry, error) {
	if len(fields) != numGoldenFields {
		return nil, curated.Errorf("golden: wrong number of fields (%d)", len(fields))
	}

	ent := &GoldenEntry{
		CartridgeFile: fields[goldenFieldCartridge],
		StateFile:     fields[goldenFieldState],
		VideoDigest:   fields[goldenFieldVideo],
		AudioDigest:   fields[goldenFieldAudio],
		Notes:         fields[goldenFieldNotes],
	}

	var err error

	ent.Region, err = vdp.ParseRegion(fields[goldenFieldRegion])
	if err != nil {
		return nil, curated.Errorf("golden: %v", err)
	}

	bp, err := strconv.ParseUint(fields[goldenFieldBreakpoint], 16, 16)
	if err != nil {
		return nil, curated.Errorf("golden: invalid breakpoint (%s)", fields[goldenFieldBreakpoint])
	}
	ent.Breakpoint = uint16(bp)

	ent.MaxFrames, err = strconv.Atoi(fields[goldenFieldMaxFrames])
	if err != nil {
		return nil, curated.Errorf("golden: invalid frame limit (%s)", fields[goldenFieldMaxFrames])
	}

	return ent, nil
}

// ID implements the database.Entry interface.
func (ent GoldenEntry) ID() string {
	return goldenEntryID
}

// String implements the database.Entry interface.
func (ent GoldenEntry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s [%s] pc=%04x", ent.ID(), filepath.Base(ent.CartridgeFile), ent.Region, ent.Breakpoint))
	if ent.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", ent.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (ent *GoldenEntry) Serialise() ([]string, error) {
	return []string{
		ent.CartridgeFile,
		ent.Region.String(),
		fmt.Sprintf("%04x", ent.Breakpoint),
		strconv.Itoa(ent.MaxFrames),
		ent.StateFile,
		ent.VideoDigest,
		ent.AudioDigest,
		ent.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (ent GoldenEntry) CleanUp() error {
	if ent.StateFile == "" {
		return nil
	}
	err := os.Remove(ent.StateFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// result of running a golden entry
type result struct {
	state *snapshot.Snapshot
	video string
	audio string
}

func (ent *GoldenEntry) run() (result, error) {
	cl := cartridgeloader.NewLoader(ent.CartridgeFile)
	if err := cl.Load(); err != nil {
		return result{}, curated.Errorf("golden: %v", err)
	}

	vid := digest.NewVideo()
	aud := digest.NewAudio()

	con := hardware.NewConsole(vid, aud, ent.Region)
	if err := con.AttachCartridge(cl.Data); err != nil {
		return result{}, curated.Errorf("golden: %v", err)
	}

	if err := con.RunUntilPC(ent.Breakpoint, ent.MaxFrames); err != nil {
		return result{}, curated.Errorf("golden: %v", err)
	}

	return result{
		state: con.SaveState(),
		video: vid.Hash(),
		audio: aud.Hash(),
	}, nil
}

// regress implements the Regressor interface.
func (ent *GoldenEntry) regress(newRegression bool, stateDir string) (bool, string, error) {
	res, err := ent.run()
	if err != nil {
		return false, "", err
	}

	if newRegression {
		ent.VideoDigest = res.video
		ent.AudioDigest = res.audio

		if err := os.MkdirAll(stateDir, 0o755); err != nil {
			return false, "", curated.Errorf("golden: %v", err)
		}

		ent.StateFile = filepath.Join(stateDir,
			fmt.Sprintf("%08x_%04x_%s%s", res.state.Cartridge, ent.Breakpoint, strings.ToLower(ent.Region.String()), stateExtension))

		if err := snapshot.Save(ent.StateFile, res.state); err != nil {
			return false, "", curated.Errorf("golden: %v", err)
		}

		return true, "", nil
	}

	if res.video != ent.VideoDigest {
		return false, "video digest mismatch", nil
	}

	if res.audio != ent.AudioDigest {
		return false, "audio digest mismatch", nil
	}

	golden, ok := snapshot.Load(ent.StateFile)
	if !ok {
		return false, "", curated.Errorf("golden: cannot load snapshot (%s)", ent.StateFile)
	}

	if diff := snapshotDiff(golden, res.state); diff != "" {
		return false, fmt.Sprintf("snapshot mismatch (%s)", diff), nil
	}

	return true, "", nil
}

// snapshotDiff returns a list of the parts of the snapshot that differ.
// returns the empty string if the snapshots are equal.
func snapshotDiff(a, b *snapshot.Snapshot) string {
	if a.Equals(b) {
		return ""
	}

	var d []string
	if a.Cartridge != b.Cartridge {
		d = append(d, "cartridge")
	}
	if a.CPU != b.CPU {
		d = append(d, "cpu")
	}
	if a.Mapper != b.Mapper {
		d = append(d, "mapper")
	}
	if a.VDP != b.VDP {
		d = append(d, "vdp")
	}
	if a.PSG != b.PSG {
		d = append(d, "psg")
	}
	if a.Ports != b.Ports {
		d = append(d, "ports")
	}
	return strings.Join(d, ", ")
}
