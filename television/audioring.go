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
	"sync/atomic"
	"time"
)

// AudioRing queues blocks of audio samples for the frontend. It implements
// the psg.AudioSink interface.
type AudioRing struct {
	blocks    chan []int16
	current   []int16
	blockSize int

	// the longest time PushSample() will wait for space in the queue
	wait time.Duration

	dropped atomic.Int64
}

// NewAudioRing is the preferred method of initialisation for the AudioRing
// type. The queue holds numBlocks blocks of blockSize samples.
func NewAudioRing(numBlocks int, blockSize int, wait time.Duration) *AudioRing {
	return &AudioRing{
		blocks:    make(chan []int16, max(numBlocks, 1)),
		current:   make([]int16, 0, max(blockSize, 1)),
		blockSize: max(blockSize, 1),
		wait:      wait,
	}
}

// PushSample implements the psg.AudioSink interface.
func (ar *AudioRing) PushSample(sample int16) {
	ar.current = append(ar.current, sample)
	if len(ar.current) >= ar.blockSize {
		ar.Flush()
	}
}

// Flush queues the current block even if it is not full.
func (ar *AudioRing) Flush() {
	if len(ar.current) == 0 {
		return
	}

	block := ar.current
	ar.current = make([]int16, 0, ar.blockSize)

	select {
	case ar.blocks <- block:
		return
	default:
	}

	t := time.NewTimer(ar.wait)
	defer t.Stop()

	select {
	case ar.blocks <- block:
	case <-t.C:
		ar.dropped.Add(1)
	}
}

// Blocks returns the channel on which blocks of samples are queued.
func (ar *AudioRing) Blocks() <-chan []int16 {
	return ar.blocks
}

// Dropped returns the number of blocks that have been dropped because the
// queue was full.
func (ar *AudioRing) Dropped() int {
	return int(ar.dropped.Load())
}
