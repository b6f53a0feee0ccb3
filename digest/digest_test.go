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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gophersms/digest"
	"github.com/jetsetilly/gophersms/hardware/psg"
	"github.com/jetsetilly/gophersms/hardware/vdp"
	"github.com/jetsetilly/gophersms/test"
)

func TestInterfaces(t *testing.T) {
	test.DemandImplements[vdp.VideoSink](t, digest.NewVideo())
	test.DemandImplements[psg.AudioSink](t, digest.NewAudio())
	test.DemandImplements[digest.Digest](t, digest.NewVideo())
	test.DemandImplements[digest.Digest](t, digest.NewAudio())
}

func TestVideoChaining(t *testing.T) {
	line := make([]uint8, vdp.Width*4)
	line[0] = 0xff

	a := digest.NewVideo()
	b := digest.NewVideo()

	a.Blit(10, line)
	a.Present()
	b.Blit(10, line)
	b.Present()
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// identical frames produce a different digest because the previous
	// digest is part of the hash
	h := a.Hash()
	a.Present()
	test.ExpectInequality(t, a.Hash(), h)

	// a single pixel difference changes the digest
	b.Blit(11, line)
	b.Present()
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), "0000000000000000000000000000000000000000")

	// out of range scanlines are ignored
	a.Blit(-1, line)
	a.Blit(vdp.MaxHeight, line)
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()

	for i := 0; i < 10000; i++ {
		a.PushSample(int16(i))
		b.PushSample(int16(i))
	}
	test.ExpectEquality(t, a.Hash(), b.Hash())

	b.PushSample(0)
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), "0000000000000000000000000000000000000000")
}
