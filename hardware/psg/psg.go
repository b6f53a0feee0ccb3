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

package psg

import (
	"fmt"
	"math"

	"github.com/jetsetilly/gophersms/snapshot"
)

// AudioSink implementations receive the output of the PSG.
type AudioSink interface {
	PushSample(sample int16)
}

// Clock is the CPU clock frequency of an NTSC console.
const Clock = 3579545

// CyclesPerSample is the number of CPU cycles between each sample.
const CyclesPerSample = 81

// SampleFreq is the frequency at which samples are pushed to the AudioSink.
const SampleFreq = Clock / CyclesPerSample

// the channel counters are decremented once every 16 CPU cycles
const cyclesPerTick = 16

// NumChannels is the number of channels, including the noise channel.
const NumChannels = 4

// index of the noise channel
const noiseChannel = 3

// initial value of the noise shift register
const lfsrSeed = 0x8000

// a volume of 15 is silent. every other step is 2dB quieter than the
// previous step
var volumeTable [16]int16

func init() {
	const maxAmplitude = 8000
	for i := range 15 {
		volumeTable[i] = int16(maxAmplitude * math.Pow(10, -0.1*float64(i)))
	}
	volumeTable[15] = 0
}

// PSG is the programmable sound generator.
type PSG struct {
	sink AudioSink

	// ten bit tone periods
	tone [3]uint16

	// noise control register. bit 2 selects white noise, bits 0 and 1 the
	// shift rate
	noise uint8

	volume [NumChannels]uint8

	// the channel (bits 2 and 1) and register type (bit 0) selected by the
	// most recent latch byte
	latch uint8

	counter [NumChannels]uint16
	output  [NumChannels]bool
	lfsr    uint16

	tickCycles   int
	sampleCycles int
}

// NewPSG is the preferred method of initialisation for the PSG type. The sink
// may be nil.
func NewPSG(sink AudioSink) *PSG {
	p := &PSG{
		sink: sink,
	}
	p.Reset()
	return p
}

// Reset the PSG to the power-on state. All channels are silent.
func (p *PSG) Reset() {
	p.tone = [3]uint16{}
	p.noise = 0
	p.volume = [NumChannels]uint8{0x0f, 0x0f, 0x0f, 0x0f}
	p.latch = 0
	p.counter = [NumChannels]uint16{}
	p.output = [NumChannels]bool{}
	p.lfsr = lfsrSeed
	p.tickCycles = 0
	p.sampleCycles = 0
}

func (p *PSG) String() string {
	return fmt.Sprintf("tone=%03x/%03x/%03x noise=%x vol=%x/%x/%x/%x",
		p.tone[0], p.tone[1], p.tone[2], p.noise,
		p.volume[0], p.volume[1], p.volume[2], p.volume[3])
}

// Tone returns the tone period of the channel. The tone of the noise channel
// is the noise control register.
func (p *PSG) Tone(channel int) uint16 {
	if channel == noiseChannel {
		return uint16(p.noise)
	}
	return p.tone[channel]
}

// Volume returns the attenuation of the channel. Zero is the loudest and 15
// is silent.
func (p *PSG) Volume(channel int) uint8 {
	return p.volume[channel]
}

// WriteData writes a byte to the PSG.
func (p *PSG) WriteData(data uint8) {
	if data&0x80 == 0x80 {
		p.latch = (data >> 4) & 0x07
	}

	channel := int(p.latch >> 1)
	isVolume := p.latch&0x01 == 0x01

	if isVolume {
		p.volume[channel] = data & 0x0f
		return
	}

	if channel == noiseChannel {
		p.noise = data & 0x07
		p.lfsr = lfsrSeed
		return
	}

	if data&0x80 == 0x80 {
		p.tone[channel] = p.tone[channel]&0x3f0 | uint16(data&0x0f)
	} else {
		p.tone[channel] = p.tone[channel]&0x00f | uint16(data&0x3f)<<4
	}
}

// Step advances the PSG by the number of CPU cycles. A sample is pushed to
// the sink every CyclesPerSample cycles, so the result is the same however
// the cycles are divided between calls.
func (p *PSG) Step(cycles int) {
	for cycles > 0 {
		// advance to the next tick or sample, whichever is sooner
		n := max(min(cycles, cyclesPerTick-p.tickCycles, CyclesPerSample-p.sampleCycles), 1)
		cycles -= n

		p.tickCycles += n
		if p.tickCycles >= cyclesPerTick {
			p.tickCycles -= cyclesPerTick
			p.tick()
		}

		p.sampleCycles += n
		if p.sampleCycles >= CyclesPerSample {
			p.sampleCycles -= CyclesPerSample
			if p.sink != nil {
				p.sink.PushSample(p.Sample())
			}
		}
	}
}

func (p *PSG) tick() {
	for ch := range 3 {
		if p.counter[ch] > 0 {
			p.counter[ch]--
		}
		if p.counter[ch] == 0 {
			p.counter[ch] = p.tone[ch]
			p.output[ch] = !p.output[ch]
		}
	}

	if p.counter[noiseChannel] > 0 {
		p.counter[noiseChannel]--
	}
	if p.counter[noiseChannel] == 0 {
		p.counter[noiseChannel] = p.noisePeriod()
		p.output[noiseChannel] = !p.output[noiseChannel]

		// the shift register moves on the rising edge of the noise
		// channel's clock
		if p.output[noiseChannel] {
			p.shiftLFSR()
		}
	}
}

func (p *PSG) noisePeriod() uint16 {
	switch p.noise & 0x03 {
	case 0:
		return 0x10
	case 1:
		return 0x20
	case 2:
		return 0x40
	}
	return p.tone[2]
}

func (p *PSG) shiftLFSR() {
	var feedback uint16
	if p.noise&0x04 == 0x04 {
		// white noise
		feedback = (p.lfsr ^ p.lfsr>>3) & 0x01
	} else {
		// periodic noise
		feedback = p.lfsr & 0x01
	}
	p.lfsr = p.lfsr>>1 | feedback<<15
}

// Sample returns the current output level of the PSG.
func (p *PSG) Sample() int16 {
	var s int16

	for ch := range 3 {
		v := volumeTable[p.volume[ch]]

		// a period of zero or one holds the output high
		if p.tone[ch] <= 1 || p.output[ch] {
			s += v
		} else {
			s -= v
		}
	}

	v := volumeTable[p.volume[noiseChannel]]
	if p.lfsr&0x01 == 0x01 {
		s += v
	} else {
		s -= v
	}

	return s
}

// SaveState copies the PSG state into the snapshot.
func (p *PSG) SaveState(s *snapshot.Snapshot) {
	s.PSG = snapshot.PSG{
		Tone:         p.tone,
		Noise:        p.noise,
		Volume:       p.volume,
		Latch:        p.latch,
		Counter:      p.counter,
		Output:       p.output,
		LFSR:         p.lfsr,
		TickCycles:   uint16(p.tickCycles),
		SampleCycles: uint16(p.sampleCycles),
	}
}

// LoadState restores the PSG state from the snapshot.
func (p *PSG) LoadState(s *snapshot.Snapshot) {
	p.tone = s.PSG.Tone
	p.noise = s.PSG.Noise
	p.volume = s.PSG.Volume
	p.latch = s.PSG.Latch
	p.counter = s.PSG.Counter
	p.output = s.PSG.Output
	p.lfsr = s.PSG.LFSR
	p.tickCycles = int(s.PSG.TickCycles)
	p.sampleCycles = int(s.PSG.SampleCycles)
}
