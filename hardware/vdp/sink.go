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

package vdp

// VideoSink implementations receive the output of the VDP.
type VideoSink interface {
	// Blit is called once for every scanline of the active display. The
	// rgba slice is Width*4 bytes long and must not be retained after the
	// function returns.
	Blit(scanline int, rgba []uint8)

	// Present is called at the end of every frame.
	Present()
}
