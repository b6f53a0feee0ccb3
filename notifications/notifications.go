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

package notifications

// Notice describes events that somehow change the presentation of the
// emulation.
type Notice string

// List of defined notifications.
const (
	// the emulation has been paused or resumed
	NotifyPause Notice = "NotifyPause"
	NotifyRun   Notice = "NotifyRun"

	// the console has been switched off and on again
	NotifyReset Notice = "NotifyReset"

	// a state file has been written or read successfully
	NotifyStateSaved  Notice = "NotifyStateSaved"
	NotifyStateLoaded Notice = "NotifyStateLoaded"

	// the emulation has moved to an earlier point in the rewind history. sent
	// for every successful rewind request
	NotifyRewind Notice = "NotifyRewind"
)

// Notify is used for direct communication between the emulation and the
// front end.
type Notify interface {
	Notify(notice Notice) error
}
