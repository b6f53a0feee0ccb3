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

// Package sdlplay is a simple SDL frontend for the emulation. It shows the
// output of a television.FrameBuffer in a window, plays the samples queued in
// a television.AudioRing and translates keyboard events into joypad input and
// playmode requests.
//
// The SDL functions must be called from the main thread. The emulation is
// run in a separate goroutine by the playmode package and SdlPlay.Service()
// is run on the main thread until the emulation ends.
package sdlplay
