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

// Package bus defines the interfaces through which the CPU and the debugging
// tools see the rest of the console. The memory package provides the
// implementation.
package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. The Z80 has separate memory and I/O address spaces and so separate
// functions for each.
//
// Reads and writes never fail. Addresses that decode to nothing return
// whatever the implementation decides is on the data bus.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)

	// the full 16-bit port address is passed to In() and Out(). the
	// implementation may decode as few of the bits as it wishes
	In(port uint16) uint8
	Out(port uint16, data uint8)
}

// InterruptBus defines the interrupt lines as seen by the CPU.
type InterruptBus interface {
	// IRQ returns the state of the maskable interrupt line. The line is level
	// triggered and stays asserted until the source is acknowledged.
	IRQ() bool

	// NMI returns true if a non-maskable interrupt edge has occurred since
	// the last call to NMI(). Calling the function acknowledges the edge.
	NMI() bool
}

// DebuggerBus defines the meta-operations for memory. Peek and Poke do not
// trigger any of the side-effects of a normal access. For example, a Poke to
// a mapper control address does not change the bank.
type DebuggerBus interface {
	Peek(address uint16) uint8
	Poke(address uint16, value uint8)
}
