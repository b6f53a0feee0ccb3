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

package snapshot

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"os"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/logger"
)

// Version of the binary format. Snapshots with a different version are not
// loaded.
const Version = 1

var magic = [4]byte{'G', 'S', 'M', 'S'}

type header struct {
	Magic   [4]byte
	Version uint16
}

var headerSize = binary.Size(header{})
var bodySize = binary.Size(Snapshot{})

// Size is the size in bytes of a snapshot in binary form.
var Size = headerSize + bodySize + 4

// Sentinal errors returned by UnmarshalBinary().
const (
	WrongSize    = "snapshot: wrong size (%d bytes)"
	WrongMagic   = "snapshot: not a snapshot"
	WrongVersion = "snapshot: unsupported version (%d)"
	WrongCRC     = "snapshot: data is corrupt"
)

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (s *Snapshot) MarshalBinary() ([]byte, error) {
	b := bytes.NewBuffer(make([]byte, 0, Size))

	err := binary.Write(b, binary.LittleEndian, header{Magic: magic, Version: Version})
	if err != nil {
		return nil, curated.Errorf("snapshot: %v", err)
	}

	err = binary.Write(b, binary.LittleEndian, s)
	if err != nil {
		return nil, curated.Errorf("snapshot: %v", err)
	}

	crc := crc32.ChecksumIEEE(b.Bytes()[headerSize:])
	err = binary.Write(b, binary.LittleEndian, crc)
	if err != nil {
		return nil, curated.Errorf("snapshot: %v", err)
	}

	return b.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. The
// receiver is not changed if an error is returned.
func (s *Snapshot) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return curated.Errorf(WrongSize, len(data))
	}

	var h header
	err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &h)
	if err != nil {
		return curated.Errorf("snapshot: %v", err)
	}
	if h.Magic != magic {
		return curated.Errorf(WrongMagic)
	}
	if h.Version != Version {
		return curated.Errorf(WrongVersion, h.Version)
	}

	body := data[headerSize : headerSize+bodySize]
	crc := binary.LittleEndian.Uint32(data[headerSize+bodySize:])
	if crc32.ChecksumIEEE(body) != crc {
		return curated.Errorf(WrongCRC)
	}

	var n Snapshot
	err = binary.Read(bytes.NewReader(body), binary.LittleEndian, &n)
	if err != nil {
		return curated.Errorf("snapshot: %v", err)
	}
	*s = n

	return nil
}

// Save the snapshot to the named file.
func Save(filename string, s *Snapshot) error {
	data, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	err = os.WriteFile(filename, data, 0644)
	if err != nil {
		return curated.Errorf("snapshot: %v", err)
	}
	return nil
}

// Load a snapshot from the named file. Returns false if the file does not
// exist or cannot be used for any reason. The reason is written to the log.
func Load(filename string) (*Snapshot, bool) {
	data, err := os.ReadFile(filename)
	if err != nil {
		logger.Logf(logger.Allow, "snapshot", "no snapshot: %v", err)
		return nil, false
	}

	s := &Snapshot{}
	err = s.UnmarshalBinary(data)
	if err != nil {
		logger.Logf(logger.Allow, "snapshot", "no snapshot: %s: %v", filename, err)
		return nil, false
	}

	return s, true
}
