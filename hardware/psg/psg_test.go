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

package psg_test

import (
	"testing"

	"github.com/jetsetilly/gophersms/hardware/psg"
	"github.com/jetsetilly/gophersms/snapshot"
	"github.com/jetsetilly/gophersms/test"
)

type testSink struct {
	samples []int16
}

func (sink *testSink) PushSample(sample int16) {
	sink.samples = append(sink.samples, sample)
}

func write(p *psg.PSG, data ...uint8) {
	for _, d := range data {
		p.WriteData(d)
	}
}

func TestToneAndVolume(t *testing.T) {
	p := psg.NewPSG(nil)

	// tone 320 and volume 10 on each of the tone channels. white noise at the
	// fastest rate with volume 10
	write(p,
		0x80, 0x14, 0x9a,
		0xa0, 0x14, 0xba,
		0xc0, 0x14, 0xda,
		0xe4, 0xfa,
	)
	p.Step(100000)

	for ch := range 3 {
		test.ExpectEquality(t, p.Tone(ch), uint16(320), ch)
		test.ExpectEquality(t, p.Volume(ch), uint8(10), ch)
	}
	test.ExpectEquality(t, p.Tone(3), uint16(0x04))
	test.ExpectEquality(t, p.Volume(3), uint8(10))
}

func TestLatch(t *testing.T) {
	p := psg.NewPSG(nil)

	// low bits then high bits of channel 1
	write(p, 0xaf, 0x3f)
	test.ExpectEquality(t, p.Tone(1), uint16(0x3ff))

	// a latch byte changes only the low bits
	write(p, 0xa0)
	test.ExpectEquality(t, p.Tone(1), uint16(0x3f0))

	// a data byte following a volume latch changes the volume
	write(p, 0xd0, 0x07)
	test.ExpectEquality(t, p.Volume(2), uint8(0x07))
	test.ExpectEquality(t, p.Tone(1), uint16(0x3f0))
}

func TestSilence(t *testing.T) {
	sink := &testSink{}
	p := psg.NewPSG(sink)
	p.Step(psg.CyclesPerSample * 100)
	test.ExpectEquality(t, len(sink.samples), 100)
	for _, s := range sink.samples {
		test.ExpectEquality(t, s, int16(0))
	}
}

func TestConstantOutput(t *testing.T) {
	sink := &testSink{}
	p := psg.NewPSG(sink)

	// periods of zero and one hold the output high
	write(p, 0x81, 0x00, 0x90)
	p.Step(psg.CyclesPerSample * 100)
	for _, s := range sink.samples {
		test.ExpectEquality(t, s, sink.samples[0])
	}
	test.ExpectInequality(t, sink.samples[0], int16(0))
}

func TestSquareWave(t *testing.T) {
	sink := &testSink{}
	p := psg.NewPSG(sink)
	write(p, 0x88, 0x00, 0x90)
	p.Step(psg.CyclesPerSample * 1000)

	var high, low int
	for _, s := range sink.samples {
		if s > 0 {
			high++
		} else if s < 0 {
			low++
		}
	}
	test.ExpectInequality(t, high, 0)
	test.ExpectInequality(t, low, 0)
	test.ExpectApproximate(t, high, low, 0.1)
}

func TestStepDivision(t *testing.T) {
	// tone 8 on channel 0 and white noise on the tone 2 rate
	setup := func(p *psg.PSG) {
		write(p, 0x88, 0x00, 0x90, 0xc5, 0x01, 0xe7, 0xf4)
	}

	batch := &testSink{}
	p := psg.NewPSG(batch)
	setup(p)
	p.Step(psg.CyclesPerSample * 1000)

	incremental := &testSink{}
	p = psg.NewPSG(incremental)
	setup(p)
	for range 1000 {
		p.Step(psg.CyclesPerSample)
	}

	// uneven steps, similar to instruction lengths
	uneven := &testSink{}
	p = psg.NewPSG(uneven)
	setup(p)
	for c := 0; c < psg.CyclesPerSample*1000; {
		n := min(4+c%19, psg.CyclesPerSample*1000-c)
		p.Step(n)
		c += n
	}

	test.DemandEquality(t, len(batch.samples), 1000)
	test.DemandEquality(t, len(incremental.samples), 1000)
	test.DemandEquality(t, len(uneven.samples), 1000)
	for i := range batch.samples {
		test.ExpectEquality(t, batch.samples[i], incremental.samples[i], i)
		test.ExpectEquality(t, batch.samples[i], uneven.samples[i], i)
	}
}

func TestNoiseReseed(t *testing.T) {
	p := psg.NewPSG(nil)
	write(p, 0xe4, 0xf0)
	p.Step(10000)

	var s snapshot.Snapshot
	p.SaveState(&s)
	test.ExpectInequality(t, s.PSG.LFSR, uint16(0x8000))

	write(p, 0xe4)
	p.SaveState(&s)
	test.ExpectEquality(t, s.PSG.LFSR, uint16(0x8000))
}

func TestState(t *testing.T) {
	sink := &testSink{}
	p := psg.NewPSG(sink)
	write(p, 0x85, 0x02, 0x92, 0xe5, 0xf3)
	p.Step(1234)

	var s snapshot.Snapshot
	p.SaveState(&s)

	sink.samples = sink.samples[:0]
	p.Step(10000)
	first := append([]int16(nil), sink.samples...)

	var o snapshot.Snapshot
	p.SaveState(&o)

	// the same state and the same number of cycles produces the same samples
	p.LoadState(&s)
	sink.samples = sink.samples[:0]
	p.Step(10000)

	test.DemandEquality(t, len(sink.samples), len(first))
	for i := range first {
		test.ExpectEquality(t, sink.samples[i], first[i], i)
	}

	var o2 snapshot.Snapshot
	p.SaveState(&o2)
	test.ExpectSuccess(t, o.Equals(&o2))
}
