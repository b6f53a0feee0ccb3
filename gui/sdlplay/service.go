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
	"time"

	"github.com/jetsetilly/gophersms/logger"
	"github.com/jetsetilly/gophersms/playmode"

	"github.com/veandco/go-sdl2/sdl"
)

// how often the event queue is polled when no frame is ready
const serviceTick = 5 * time.Millisecond

// Service handles SDL events, presents frames and queues audio until the run
// loop ends. The done channel receives the result of playmode.Run(), which
// is returned by Service().
//
// Must be called from the main thread.
func (scr *SdlPlay) Service(pl *playmode.Playmode, done <-chan error) error {
	tck := time.NewTicker(serviceTick)
	defer tck.Stop()

	var blocks <-chan []int16
	if scr.ring != nil {
		blocks = scr.ring.Blocks()
	}

	for {
		scr.events(pl)

		select {
		case err := <-done:
			return err

		case <-scr.fb.Ready():
			err := scr.present()
			if err != nil {
				pl.Stop()
				<-done
				return err
			}

		case block := <-blocks:
			if scr.aud != nil {
				ok, err := scr.aud.queue(block)
				if err != nil {
					logger.Log(logger.Allow, "sdlplay", err)
				} else if !ok {
					logger.Log(logger.Allow, "sdlplay", "audio block dropped")
				}
			}

		case notice := <-scr.notices:
			scr.status.update(notice, time.Now())
			scr.setTitle()

		case <-tck.C:
			if scr.status.expire(time.Now()) {
				scr.setTitle()
			}
		}
	}
}

func (scr *SdlPlay) events(pl *playmode.Playmode) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			pl.Request(playmode.ReqQuit)

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_FOCUS_LOST {
				scr.input.release()
			}

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			req, ok := scr.input.key(sdl.GetKeyName(ev.Keysym.Sym), ev.Type == sdl.KEYDOWN)
			if ok {
				pl.Request(req)
			}
		}
	}
}
