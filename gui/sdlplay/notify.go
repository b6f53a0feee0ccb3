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

package sdlplay

import (
	"fmt"
	"time"

	"github.com/jetsetilly/gophersms/logger"
	"github.com/jetsetilly/gophersms/notifications"
)

// how long an event is shown in the window title
const eventDuration = 2 * time.Second

// the number of notices that can be waiting for the service loop
const noticeQueueLength = 16

// status is shown in the window title
type status struct {
	base   string
	paused bool

	event     string
	eventTime time.Time
}

func (st *status) update(notice notifications.Notice, now time.Time) {
	switch notice {
	case notifications.NotifyPause:
		st.paused = true
		return
	case notifications.NotifyRun:
		st.paused = false
		return
	case notifications.NotifyReset:
		st.event = "reset"
	case notifications.NotifyStateSaved:
		st.event = "state saved"
	case notifications.NotifyStateLoaded:
		st.event = "state loaded"
	case notifications.NotifyRewind:
		st.event = "rewind"
	default:
		return
	}
	st.eventTime = now
}

// expire clears the event if it has been shown for long enough. returns true
// if the title has changed.
func (st *status) expire(now time.Time) bool {
	if st.event == "" || now.Sub(st.eventTime) < eventDuration {
		return false
	}
	st.event = ""
	return true
}

func (st status) title() string {
	t := st.base
	if st.paused {
		t = fmt.Sprintf("%s [paused]", t)
	}
	if st.event != "" {
		t = fmt.Sprintf("%s (%s)", t, st.event)
	}
	return t
}

// Notify implements the notifications.Notify interface. The notice is passed
// to the service loop and the window title is changed there.
func (scr *SdlPlay) Notify(notice notifications.Notice) error {
	select {
	case scr.notices <- notice:
	default:
		logger.Logf(logger.Allow, "sdlplay", "notice dropped: %s", notice)
	}
	return nil
}

func (scr *SdlPlay) setTitle() {
	scr.window.SetTitle(scr.status.title())
}
