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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		renderImage()
//	}
package limiter

import (
	"sync"
	"time"
)

// Limiter will trigger a number of times per second.
type Limiter struct {
	crit   sync.Mutex
	ticker *time.Ticker
	rate   float64
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(ratePerSecond float64) *Limiter {
	lim := &Limiter{}
	lim.ticker = time.NewTicker(period(ratePerSecond))
	lim.rate = ratePerSecond
	return lim
}

func period(ratePerSecond float64) time.Duration {
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	return time.Duration(float64(time.Second) / ratePerSecond)
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(ratePerSecond float64) {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	lim.rate = ratePerSecond
	lim.ticker.Reset(period(ratePerSecond))
}

// Rate returns the current rate.
func (lim *Limiter) Rate() float64 {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.rate
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.ticker.C
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
