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

// Package vdp implements the video display processor. The VDP is stepped by
// the number of CPU cycles consumed by each instruction. Each time the
// horizontal counter overflows a new scanline begins, the interrupt flags are
// updated and, if the scanline is in the active display, the scanline is
// rasterized and sent to the VideoSink.
//
// The primary video mode (mode 4) is a tile and sprite mode with a 32 colour
// palette held in CRAM. The legacy modes (Graphics I, Graphics II, Text and
// Multicolor) are those of the earlier video chip on which the VDP is based
// and use a fixed palette of 16 colours.
//
// The VDP is accessed by the CPU through two ports. The data port reads and
// writes VRAM and CRAM at the current address. The control port is written
// twice to set the address and command, or to write a register. Reading the
// control port returns the status byte.
package vdp
