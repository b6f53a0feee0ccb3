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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gophersms/performance/limiter"
	"github.com/jetsetilly/gophersms/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewLimiter(100)
	defer lim.Stop()

	start := time.Now()
	for i := 0; i < 10; i++ {
		lim.Wait()
	}

	// ten ticks at 100 per second should take at least 90ms
	test.ExpectSuccess(t, time.Since(start) >= 90*time.Millisecond)

	lim.SetLimit(50)
	test.ExpectEquality(t, lim.Rate(), 50.0)
}
