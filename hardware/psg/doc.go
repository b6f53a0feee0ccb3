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

// Package psg implements the programmable sound generator. The PSG has three
// square wave tone channels and one noise channel, each with a four bit
// attenuator.
//
// The PSG is written to through a single port. A byte with bit 7 set latches
// a channel and register type and sets the low four bits of the register. A
// byte with bit 7 clear sets the high bits of the most recently latched
// register.
//
// Samples are pushed to the AudioSink at SampleFreq.
package psg
