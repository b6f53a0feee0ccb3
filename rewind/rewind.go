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
	"fmt"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/logger"
	"github.com/jetsetilly/gophersms/prefs"
	"github.com/jetsetilly/gophersms/snapshot"
)

// Emulation defines the emulation operations required by the rewind system.
// The hardware.Console type satisfies the interface.
type Emulation interface {
	SaveStateInto(*snapshot.Snapshot)
	LoadState(*snapshot.Snapshot)
}

// NoEntries is returned when there is nothing in the history to restore.
const NoEntries = "rewind: no entries"

// the smallest usable capacity
const minEntries = 2

// Rewind contains a history of machine states for the emulation.
type Rewind struct {
	emu   Emulation
	Prefs *Preferences

	// circular array of snapshots. the array is allocated once and the
	// snapshots are copied into it
	entries []snapshot.Snapshot

	// index of the oldest entry and the number of entries in use. the most
	// recent entry is at start+count-1
	start int
	count int

	// number of calls to RecordFrame() since the last snapshot
	sinceLast int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The prefs argument can be nil, in which case default values are used.
func NewRewind(emu Emulation, p *Preferences) *Rewind {
	if p == nil {
		p = defaultPreferences()
	}

	r := &Rewind{
		emu:   emu,
		Prefs: p,
	}

	r.allocate()

	r.Prefs.MaxEntries.RegisterCallback(func(_ prefs.Value) error {
		r.allocate()
		return nil
	})

	return r
}

func (r *Rewind) String() string {
	f := r.GetFrames()
	return fmt.Sprintf("%d entries: frames %d to %d", r.count, f.Start, f.End)
}

func (r *Rewind) allocate() {
	n := max(r.Prefs.MaxEntries.Get().(int), minEntries)
	if len(r.entries) != n {
		r.entries = make([]snapshot.Snapshot, n)
		logger.Logf(logger.Allow, "rewind", "history allocated for %d entries", n)
	}
	r.start = 0
	r.count = 0
	r.sinceLast = 0
}

// Reset removes all entries and takes a snapshot of the current state. This
// should be called whenever a new cartridge is attached to the emulation.
func (r *Rewind) Reset() {
	r.start = 0
	r.count = 0
	r.sinceLast = 0
	r.append()
}

// index of the nth entry from the oldest
func (r *Rewind) index(n int) int {
	return (r.start + n) % len(r.entries)
}

func (r *Rewind) append() {
	var idx int
	if r.count < len(r.entries) {
		idx = r.index(r.count)
		r.count++
	} else {
		// ring is full. the oldest entry is overwritten
		idx = r.start
		r.start = r.index(1)
	}
	r.emu.SaveStateInto(&r.entries[idx])
}

// RecordFrame should be called by the run loop between frames. A snapshot is
// taken if enough frames have passed since the last snapshot.
func (r *Rewind) RecordFrame() {
	r.sinceLast++
	if r.sinceLast < max(r.Prefs.Freq.Get().(int), 1) {
		return
	}
	r.sinceLast = 0
	r.append()
}

// Frames of the current state of the rewind system.
type Frames struct {
	// the frame numbers of the oldest and most recent entries
	Start int
	End   int

	// number of entries in the history
	Entries int
}

// GetFrames returns the range of frames in the history.
func (r *Rewind) GetFrames() Frames {
	if r.count == 0 {
		return Frames{}
	}
	return Frames{
		Start:   r.frame(0),
		End:     r.frame(r.count - 1),
		Entries: r.count,
	}
}

func (r *Rewind) frame(n int) int {
	return int(r.entries[r.index(n)].VDP.Frame)
}

// restore the nth entry and forget every entry after it
func (r *Rewind) restore(n int) int {
	s := &r.entries[r.index(n)]
	r.emu.LoadState(s)
	r.count = n + 1
	r.sinceLast = 0
	return int(s.VDP.Frame)
}

// GotoLast restores the most recent entry. Returns the frame number of the
// entry.
func (r *Rewind) GotoLast() (int, error) {
	if r.count == 0 {
		return 0, curated.Errorf(NoEntries)
	}
	return r.restore(r.count - 1), nil
}

// Back restores the entry before the most recent entry and forgets the most
// recent entry. If there is only one entry then that entry is restored.
// Returns the frame number of the restored entry.
func (r *Rewind) Back() (int, error) {
	if r.count == 0 {
		return 0, curated.Errorf(NoEntries)
	}
	return r.restore(max(r.count-2, 0)), nil
}

// GotoFrame restores the most recent entry at or before the requested frame.
// If the frame is earlier than the oldest entry then the oldest entry is
// restored. Returns the frame number of the restored entry.
func (r *Rewind) GotoFrame(frame int) (int, error) {
	if r.count == 0 {
		return 0, curated.Errorf(NoEntries)
	}

	// binary search over the logical order of the ring. frame numbers are
	// increasing in that order
	lo := 0
	hi := r.count - 1
	for lo < hi {
		m := (lo + hi + 1) / 2
		if r.frame(m) <= frame {
			lo = m
		} else {
			hi = m - 1
		}
	}

	return r.restore(lo), nil
}
