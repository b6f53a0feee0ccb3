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

// Package rewind keeps a history of the emulation state so that the
// emulation can be wound back to an earlier frame.
//
// The history is a fixed-capacity ring of snapshots. The run loop calls
// RecordFrame() between frames and a snapshot is taken every Freq frames.
// When the ring is full the oldest snapshot is forgotten.
//
// Restoring a snapshot with GotoFrame(), GotoLast() or Back() forgets all the
// snapshots taken after it. The emulation continues from the restored state
// and new snapshots are recorded from that point.
//
// The capacity and the frequency are preference values and can be changed
// while the emulation is running. Changing the capacity clears the history.
package rewind
