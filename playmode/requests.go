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

package playmode

// Request is sent to the run loop by the frontend.
type Request int

// List of valid Request values.
const (
	ReqQuit Request = iota
	ReqTogglePause
	ReqReset
	ReqSaveState
	ReqLoadState
	ReqRewindBack
	ReqRewindLast
)

func (r Request) String() string {
	switch r {
	case ReqQuit:
		return "quit"
	case ReqTogglePause:
		return "toggle pause"
	case ReqReset:
		return "reset"
	case ReqSaveState:
		return "save state"
	case ReqLoadState:
		return "load state"
	case ReqRewindBack:
		return "rewind back"
	case ReqRewindLast:
		return "rewind last"
	}
	return "unknown request"
}
