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
	"sync"

	"github.com/jetsetilly/gophersms/hardware/ports"
	"github.com/jetsetilly/gophersms/playmode"
)

// hotkeys send a request to the run loop on key down.
var hotkeys = map[string]playmode.Request{
	"Escape":    playmode.ReqQuit,
	"F2":        playmode.ReqTogglePause,
	"F3":        playmode.ReqReset,
	"F5":        playmode.ReqSaveState,
	"F9":        playmode.ReqLoadState,
	"Backspace": playmode.ReqRewindBack,
	"End":       playmode.ReqRewindLast,
}

// keyboard is the state of the emulated input devices as driven by the
// keyboard. key names are those returned by sdl.GetKeyName().
type keyboard struct {
	crit  sync.Mutex
	input ports.Input
}

func newKeyboard() *keyboard {
	return &keyboard{}
}

func (kb *keyboard) state() ports.Input {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	return kb.input
}

// key updates the input state for the named key. if the key is a hotkey the
// request is returned with a true value.
func (kb *keyboard) key(name string, down bool) (playmode.Request, bool) {
	if req, ok := hotkeys[name]; ok {
		return req, down
	}

	kb.crit.Lock()
	defer kb.crit.Unlock()

	p1 := &kb.input.Player[0]
	p2 := &kb.input.Player[1]

	switch name {
	case "Up":
		p1.Up = down
	case "Down":
		p1.Down = down
	case "Left":
		p1.Left = down
	case "Right":
		p1.Right = down
	case "Z":
		p1.Button1 = down
	case "X":
		p1.Button2 = down

	case "I":
		p2.Up = down
	case "K":
		p2.Down = down
	case "J":
		p2.Left = down
	case "L":
		p2.Right = down
	case "N":
		p2.Button1 = down
	case "M":
		p2.Button2 = down

	case "Space":
		kb.input.Pause = down
	case "Return":
		kb.input.Reset = down
	}

	return 0, false
}

// release all keys. used when the window loses focus.
func (kb *keyboard) release() {
	kb.crit.Lock()
	defer kb.crit.Unlock()
	kb.input = ports.Input{}
}
