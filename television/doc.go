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

// Package television is the hand-off between the emulation and the frontend.
// The emulation runs on its own goroutine and the frontend reads the output
// from another.
//
// FrameBuffer implements the vdp.VideoSink interface. Scanlines are drawn
// into a back buffer which is swapped with the front buffer when the frame is
// complete. The frontend only ever sees the front buffer and so never sees a
// partially drawn frame.
//
// AudioRing implements the psg.AudioSink interface. Samples are collected
// into blocks which are queued for the frontend. If the queue is full the
// emulation waits for a short time before the block is dropped. The
// emulation is never blocked for longer than that.
package television
