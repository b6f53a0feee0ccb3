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

// Package playmode runs the emulation without any debugging features. The
// run loop executes the emulation one frame at a time on the calling
// goroutine. Between frames it reads the input, records rewind history,
// handles requests from the frontend and waits for the frame limiter.
//
// Requests are sent from any goroutine with the Request() function. The loop
// ends when Stop() is called, when a quit request is received or when the
// process is interrupted.
package playmode
