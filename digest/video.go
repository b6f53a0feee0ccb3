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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gophersms/hardware/vdp"
)

const pixelDepth = 4

// Video computes a digest of the video output. It implements the
// vdp.VideoSink interface.
type Video struct {
	digest [sha1.Size]byte

	// the first bytes of the pixels array hold the digest of the previous
	// frame
	pixels []byte

	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		pixels: make([]byte, sha1.Size+vdp.Width*vdp.MaxHeight*pixelDepth),
	}
}

func (dig *Video) String() string {
	return fmt.Sprintf("%s (%d frames)", dig.Hash(), dig.frames)
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	clear(dig.pixels)
	dig.frames = 0
}

// Blit implements the vdp.VideoSink interface.
func (dig *Video) Blit(scanline int, rgba []uint8) {
	if scanline < 0 || scanline >= vdp.MaxHeight {
		return
	}
	copy(dig.pixels[sha1.Size+scanline*vdp.Width*pixelDepth:], rgba)
}

// Present implements the vdp.VideoSink interface.
func (dig *Video) Present() {
	copy(dig.pixels, dig.digest[:])
	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}
