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

import (
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware"
	"github.com/jetsetilly/gophersms/hardware/ports"
	"github.com/jetsetilly/gophersms/logger"
	"github.com/jetsetilly/gophersms/notifications"
	"github.com/jetsetilly/gophersms/performance/limiter"
	"github.com/jetsetilly/gophersms/rewind"
	"github.com/jetsetilly/gophersms/snapshot"
)

// the number of requests that can be waiting for the run loop
const requestQueueLength = 16

// the time to sleep between checks for requests while paused
const pausedSleep = 20 * time.Millisecond

// Options for the run loop.
type Options struct {
	// limit the emulation to the nominal frame rate of the console region
	Capped bool

	// the file used by ReqSaveState and ReqLoadState. requests are ignored
	// if the field is empty
	StateFile string

	// rewind history. can be nil in which case rewind requests are ignored
	Rewind *rewind.Rewind

	// called once per frame to get the state of the input devices. can be
	// nil
	Input func() ports.Input

	// receives notifications of completed requests. can be nil
	Notify notifications.Notify
}

// Playmode is the run loop for the emulation.
type Playmode struct {
	con  *hardware.Console
	opts Options

	lim *limiter.Limiter

	requests chan Request
	stop     atomic.Bool
	paused   bool
}

// NewPlaymode is the preferred method of initialisation for the Playmode type.
func NewPlaymode(con *hardware.Console, opts Options) *Playmode {
	pl := &Playmode{
		con:      con,
		opts:     opts,
		requests: make(chan Request, requestQueueLength),
	}

	if opts.Capped {
		pl.lim = limiter.NewLimiter(con.VDP.Region().FramesPerSecond())
	}

	return pl
}

// Request sends a request to the run loop. The request is dropped if the
// queue is full. Safe to call from any goroutine.
func (pl *Playmode) Request(req Request) {
	select {
	case pl.requests <- req:
	default:
		logger.Logf(logger.Allow, "playmode", "request dropped: %s", req)
	}
}

// Stop the run loop at the end of the current frame. Safe to call from any
// goroutine.
func (pl *Playmode) Stop() {
	pl.stop.Store(true)
}

// Paused returns true if the emulation is paused. Should only be called
// from the run loop goroutine.
func (pl *Playmode) Paused() bool {
	return pl.paused
}

// Run the emulation until stopped. Errors from the emulation end the loop
// and are returned. A Playmode that has been stopped cannot be run again.
func (pl *Playmode) Run() error {
	if pl.lim != nil {
		defer pl.lim.Stop()
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	for {
		select {
		case <-intChan:
			logger.Log(logger.Allow, "playmode", "interrupted")
			pl.Stop()
		default:
		}

		pl.handleRequests()

		if pl.stop.Load() {
			return nil
		}

		if pl.paused {
			time.Sleep(pausedSleep)
			continue
		}

		if pl.opts.Input != nil {
			pl.con.SetInput(pl.opts.Input())
		}

		if err := pl.con.RunFrame(); err != nil {
			return curated.Errorf("playmode: %v", err)
		}

		if pl.opts.Rewind != nil {
			pl.opts.Rewind.RecordFrame()
		}

		if pl.lim != nil {
			pl.lim.Wait()
		}
	}
}

// handle all pending requests
func (pl *Playmode) handleRequests() {
	for {
		select {
		case req := <-pl.requests:
			pl.handle(req)
		default:
			return
		}
	}
}

func (pl *Playmode) handle(req Request) {
	switch req {
	case ReqQuit:
		pl.Stop()

	case ReqTogglePause:
		pl.paused = !pl.paused
		if pl.paused {
			pl.notify(notifications.NotifyPause)
		} else {
			pl.notify(notifications.NotifyRun)
		}

	case ReqReset:
		pl.con.Reset()
		if pl.opts.Rewind != nil {
			pl.opts.Rewind.Reset()
		}
		pl.notify(notifications.NotifyReset)

	case ReqSaveState:
		if pl.opts.StateFile == "" {
			return
		}
		if err := snapshot.Save(pl.opts.StateFile, pl.con.SaveState()); err != nil {
			logger.Log(logger.Allow, "playmode", err)
			return
		}
		logger.Logf(logger.Allow, "playmode", "state saved to %s", pl.opts.StateFile)
		pl.notify(notifications.NotifyStateSaved)

	case ReqLoadState:
		if pl.opts.StateFile == "" {
			return
		}
		s, ok := snapshot.Load(pl.opts.StateFile)
		if !ok {
			return
		}
		if cart := pl.con.Cartridge(); cart == nil || cart.CRC() != s.Cartridge {
			logger.Logf(logger.Allow, "playmode", "%s is for a different cartridge", pl.opts.StateFile)
			return
		}
		pl.con.LoadState(s)

		// the history no longer leads to the current state
		if pl.opts.Rewind != nil {
			pl.opts.Rewind.Reset()
		}
		pl.notify(notifications.NotifyStateLoaded)

	case ReqRewindBack:
		if pl.opts.Rewind == nil {
			return
		}
		if _, err := pl.opts.Rewind.Back(); err != nil {
			logger.Log(logger.Allow, "playmode", err)
			return
		}
		pl.notify(notifications.NotifyRewind)

	case ReqRewindLast:
		if pl.opts.Rewind == nil {
			return
		}
		if _, err := pl.opts.Rewind.GotoLast(); err != nil {
			logger.Log(logger.Allow, "playmode", err)
			return
		}
		pl.notify(notifications.NotifyRewind)
	}
}

func (pl *Playmode) notify(notice notifications.Notice) {
	if pl.opts.Notify == nil {
		return
	}
	if err := pl.opts.Notify.Notify(notice); err != nil {
		logger.Log(logger.Allow, "playmode", err)
	}
}
