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

	"github.com/jetsetilly/gophersms/hardware/ports"
	"github.com/jetsetilly/gophersms/playmode"
	"github.com/jetsetilly/gophersms/test"
)

func TestJoypadKeys(t *testing.T) {
	kb := newKeyboard()

	_, ok := kb.key("Up", true)
	test.ExpectEquality(t, ok, false)
	kb.key("Z", true)
	kb.key("J", true)
	kb.key("M", true)

	inp := kb.state()
	test.ExpectEquality(t, inp.Player[0], ports.Joypad{Up: true, Button1: true})
	test.ExpectEquality(t, inp.Player[1], ports.Joypad{Left: true, Button2: true})

	kb.key("Up", false)
	test.ExpectEquality(t, kb.state().Player[0], ports.Joypad{Button1: true})

	kb.key("Space", true)
	kb.key("Return", true)
	inp = kb.state()
	test.ExpectEquality(t, inp.Pause, true)
	test.ExpectEquality(t, inp.Reset, true)

	kb.release()
	test.ExpectEquality(t, kb.state(), ports.Input{})
}

func TestHotkeys(t *testing.T) {
	kb := newKeyboard()

	req, ok := kb.key("Escape", true)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, req, playmode.ReqQuit)

	// requests are only sent on key down
	_, ok = kb.key("Escape", false)
	test.ExpectEquality(t, ok, false)

	req, ok = kb.key("F5", true)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, req, playmode.ReqSaveState)

	req, ok = kb.key("Backspace", true)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, req, playmode.ReqRewindBack)

	// hotkeys do not change the input state
	test.ExpectEquality(t, kb.state(), ports.Input{})

	// unknown keys are ignored
	_, ok = kb.key("Q", true)
	test.ExpectEquality(t, ok, false)
	test.ExpectEquality(t, kb.state(), ports.Input{})
}
