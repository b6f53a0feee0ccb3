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

// Package snapshot defines the complete, serialisable state of the emulated
// console.
//
// A Snapshot is a flat value. Every field is a fixed size type or a fixed
// size array, so two snapshots can be compared with the == operator and a
// Snapshot can be copied by assignment. Each hardware component knows how to
// save its state into the relevant part of a Snapshot and how to restore its
// state from it. The snapshot package itself knows nothing of the hardware.
//
// Snapshots are stored on disk in a simple binary format:
//
//	magic     4 bytes   "GSMS"
//	version   uint16
//	body      the Snapshot fields in declaration order
//	crc       uint32    CRC-32 (IEEE) of the body
//
// All multi-byte values are little-endian. Booleans are a single byte.
//
// A snapshot that cannot be read for any reason is treated as absent. The
// Load() function returns false rather than an error.
package snapshot
