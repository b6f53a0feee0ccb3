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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// when EndMixing() is called. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware/psg"
	"github.com/jetsetilly/gophersms/logger"
)

// WavWriter implements the psg.AudioSink interface.
type WavWriter struct {
	filename string
	buffer   []int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, psg.SampleFreq),
	}

	return aw, nil
}

// PushSample implements the psg.AudioSink interface.
func (aw *WavWriter) PushSample(sample int16) {
	aw.buffer = append(aw.buffer, int(sample))
}

// NumSamples returns the number of samples buffered so far.
func (aw *WavWriter) NumSamples() int {
	return len(aw.buffer)
}

// EndMixing writes the buffered audio to the file.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	// a single channel of 16 bit PCM audio
	enc := wav.NewEncoder(f, psg.SampleFreq, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  psg.SampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// Reset discards all buffered audio.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}
