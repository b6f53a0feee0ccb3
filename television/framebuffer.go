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

package television

import (
	"sync"

	"github.com/jetsetilly/gophersms/hardware/vdp"
)

// the number of bytes in a single pixel
const pixelDepth = 4

// Pitch is the number of bytes in a row of the frame buffer.
const Pitch = vdp.Width * pixelDepth

// FrameBuffer is a double buffered image of the VDP output. It implements
// the vdp.VideoSink interface.
type FrameBuffer struct {
	// the back buffer is only accessed by the emulation goroutine
	back []uint8

	crit  sync.Mutex
	front []uint8
	frame int

	// signals that a new frame is available
	ready chan bool
}

// NewFrameBuffer is the preferred method of initialisation for the
// FrameBuffer type.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		back:  make([]uint8, Pitch*vdp.MaxHeight),
		front: make([]uint8, Pitch*vdp.MaxHeight),
		ready: make(chan bool, 1),
	}
}

// Blit implements the vdp.VideoSink interface.
func (fb *FrameBuffer) Blit(scanline int, rgba []uint8) {
	if scanline < 0 || scanline >= vdp.MaxHeight {
		return
	}
	copy(fb.back[scanline*Pitch:(scanline+1)*Pitch], rgba)
}

// Present implements the vdp.VideoSink interface.
func (fb *FrameBuffer) Present() {
	fb.crit.Lock()
	fb.front, fb.back = fb.back, fb.front
	fb.frame++
	fb.crit.Unlock()

	// do not wait if the previous frame has not been collected
	select {
	case fb.ready <- true:
	default:
	}
}

// Ready returns a channel that receives a value when a new frame has been
// presented. Frames presented while a value is pending are not signalled
// separately.
func (fb *FrameBuffer) Ready() <-chan bool {
	return fb.ready
}

// Copy the most recently completed frame into dst. Returns the number of
// frames presented so far.
//
// The dst slice should be Pitch * vdp.MaxHeight bytes long. Shorter slices
// receive the first part of the frame.
func (fb *FrameBuffer) Copy(dst []uint8) int {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	copy(dst, fb.front)
	return fb.frame
}

// Frame returns the number of frames presented so far.
func (fb *FrameBuffer) Frame() int {
	fb.crit.Lock()
	defer fb.crit.Unlock()
	return fb.frame
}
