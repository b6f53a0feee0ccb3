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

// Package ports implements the I/O port controller of the console: the two
// joypad ports, the reset button and the pause button.
//
// The joypad ports are read through two port addresses. All inputs are active
// low:
//
//	port A	bit 0-3: player 1 up, down, left, right
//		bit 4-5: player 1 buttons 1 and 2
//		bit 6-7: player 2 up, down
//
//	port B	bit 0-1: player 2 left, right
//		bit 2-3: player 2 buttons 1 and 2
//		bit 4:   reset button
//		bit 5:   cartridge slot CONT line (always high)
//		bit 6-7: TH lines of port A and port B
//
// The pause button is not read through a port. Pressing it raises a
// non-maskable interrupt.
package ports
