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

// Package hardware is the base package for the console emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Console type is the root of the emulation and contains references to
// all the sub-systems. The emulation is advanced one CPU instruction at a
// time with Step(), or one frame at a time with RunFrame(). The cycles
// consumed by each instruction are passed on to the VDP and the PSG before
// the next instruction begins.
//
// Output is sent to the vdp.VideoSink and psg.AudioSink implementations
// supplied to NewConsole(). Input is supplied with SetInput(), usually once
// per frame.
//
// The entire state of the console can be copied with SaveState() and
// restored with LoadState().
package hardware
