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

package sdlplay

import (
	"encoding/binary"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware/psg"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of samples requested by the audio device in one callback
const deviceSamples = 1024

// the maximum number of bytes waiting in the device queue. blocks are
// dropped rather than letting latency grow when the emulation is running
// faster than real time
const maxQueued = deviceSamples * 2 * 8

type audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// conversion buffer. reused for every block
	buffer []uint8
}

func newAudio() (*audio, error) {
	aud := &audio{}

	spec := &sdl.AudioSpec{
		Freq:     int32(psg.SampleFreq),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  deviceSamples,
	}

	var err error

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// queue a block of samples. returns false if the block was dropped.
func (aud *audio) queue(block []int16) (bool, error) {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueued {
		return false, nil
	}

	aud.buffer = aud.buffer[:0]
	for _, s := range block {
		aud.buffer = binary.LittleEndian.AppendUint16(aud.buffer, uint16(s))
	}

	err := sdl.QueueAudio(aud.id, aud.buffer)
	if err != nil {
		return false, curated.Errorf(SDL, err)
	}

	return true, nil
}

func (aud *audio) close() {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
}
