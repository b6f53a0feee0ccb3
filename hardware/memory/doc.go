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

// Package memory implements the bus of the console. The bus connects the CPU
// to the cartridge mapper for memory accesses and to the VDP, the PSG and
// the I/O port controller for port accesses.
//
// The interfaces through which the CPU sees the bus are defined in the bus
// sub-package. The decoding of addresses and port numbers is described by the
// memorymap sub-package.
//
// The bus owns the devices attached to it and advances them with the Step()
// function after every CPU instruction.
package memory
