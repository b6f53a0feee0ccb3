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

// Package recorder handles the recording and playback of console input.
//
// A recording is started immediately after the console is powered on. The
// input is passed to the Recorder at the start of every frame and is written
// to the file whenever it changes, along with a hash of the console state at
// that moment.
//
// A Playback feeds the recorded input back to the console at the same
// frames. The state hash is checked at every recorded event so that a
// divergence between the recording and the emulation is caught at the first
// frame where it can be detected.
package recorder
