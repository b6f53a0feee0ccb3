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

package recorder

import (
	"fmt"
	"hash/crc32"

	"github.com/jetsetilly/gophersms/hardware"
)

// recording file format
// ---------------------
//
// # gophersms recording
// cartridge, <cartridge crc>
// region, <region>
// <frame>, <packed input>, <state hash>
// ...

const magicLine = "# gophersms recording"

const fieldSep = ", "

const (
	lineMagic int = iota
	lineCartridge
	lineRegion
	numHeaderLines
)

const (
	fieldFrame int = iota
	fieldInput
	fieldHash
	numFields
)

// the hash of the console state is the checksum of the snapshot
func stateHash(con *hardware.Console) (string, error) {
	data, err := con.SaveState().MarshalBinary()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%08x", crc32.ChecksumIEEE(data)), nil
}
