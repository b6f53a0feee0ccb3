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

// Package digest creates SHA-1 digests of the emulation output. The digest
// of each frame is chained into the digest of the next frame and so the
// final value is a fingerprint of the entire run.
//
// Video implements the vdp.VideoSink interface and Audio implements the
// psg.AudioSink interface. Both implement the Digest interface.
//
// Digests are used by the regression package and by headless runs to
// confirm that a change to the emulation has not changed its output.
package digest

// Digest implementations compute a running hash of some aspect of the
// emulation.
type Digest interface {
	Hash() string
	ResetDigest()
}
