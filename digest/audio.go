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
	"encoding/binary"
	"fmt"
)

// the number of bytes of sample data hashed at once. the digest of the
// previous block is held at the start of the buffer
const audioBufferLength = sha1.Size + 8192

// Audio computes a digest of the audio output. It implements the
// psg.AudioSink interface.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: sha1.Size,
	}
}

func (dig *Audio) String() string {
	return dig.Hash()
}

// Hash implements the Digest interface. Samples that have not yet filled a
// block are included in the hash.
func (dig *Audio) Hash() string {
	if dig.bufferCt > sha1.Size {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.bufferCt = sha1.Size
}

// PushSample implements the psg.AudioSink interface.
func (dig *Audio) PushSample(sample int16) {
	binary.LittleEndian.PutUint16(dig.buffer[dig.bufferCt:], uint16(sample))
	dig.bufferCt += 2
	if dig.bufferCt >= audioBufferLength {
		dig.flush()
	}
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = sha1.Size
}
