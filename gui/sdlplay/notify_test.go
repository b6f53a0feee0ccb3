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
	"testing"
	"time"

	"github.com/jetsetilly/gophersms/notifications"
	"github.com/jetsetilly/gophersms/test"
)

func TestStatusTitle(t *testing.T) {
	st := status{base: "GopherSMS"}
	test.ExpectEquality(t, st.title(), "GopherSMS")

	now := time.Now()

	st.update(notifications.NotifyPause, now)
	test.ExpectEquality(t, st.title(), "GopherSMS [paused]")

	st.update(notifications.NotifyStateSaved, now)
	test.ExpectEquality(t, st.title(), "GopherSMS [paused] (state saved)")

	// event is still shown
	test.ExpectSuccess(t, !st.expire(now.Add(eventDuration/2)))
	test.ExpectEquality(t, st.title(), "GopherSMS [paused] (state saved)")

	st.update(notifications.NotifyRun, now)
	test.ExpectEquality(t, st.title(), "GopherSMS (state saved)")

	test.ExpectSuccess(t, st.expire(now.Add(eventDuration)))
	test.ExpectEquality(t, st.title(), "GopherSMS")

	// nothing to expire
	test.ExpectSuccess(t, !st.expire(now.Add(eventDuration*2)))
}

func TestStatusEvents(t *testing.T) {
	st := status{base: "GopherSMS"}
	now := time.Now()

	st.update(notifications.NotifyReset, now)
	test.ExpectEquality(t, st.title(), "GopherSMS (reset)")
	st.update(notifications.NotifyRewind, now)
	test.ExpectEquality(t, st.title(), "GopherSMS (rewind)")
	st.update(notifications.NotifyStateLoaded, now)
	test.ExpectEquality(t, st.title(), "GopherSMS (state loaded)")

	// unknown notices are ignored
	st.update(notifications.Notice("NotifyUnknown"), now.Add(time.Hour))
	test.ExpectEquality(t, st.title(), "GopherSMS (state loaded)")
	test.ExpectSuccess(t, st.expire(now.Add(eventDuration)))
}

func TestNotifyDoesNotBlock(t *testing.T) {
	scr := &SdlPlay{notices: make(chan notifications.Notice, 1)}
	test.ExpectSuccess(t, scr.Notify(notifications.NotifyReset))
	test.ExpectSuccess(t, scr.Notify(notifications.NotifyRewind))
	test.ExpectEquality(t, <-scr.notices, notifications.NotifyReset)
}
