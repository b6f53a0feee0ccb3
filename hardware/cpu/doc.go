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

// Package cpu emulates the Z80 microprocessor.
//
// The CPU type requires an implementation of bus.CPUBus for memory and I/O
// accesses and an implementation of bus.InterruptBus for the interrupt lines.
// In the console both are provided by the memory.Bus type.
//
// The Step() function executes a single instruction, or services a single
// interrupt, and returns the number of cycles consumed. The caller is
// responsible for advancing the rest of the console by that number of
// cycles.
//
//	for {
//		cycles, err := mc.Step()
//		if err != nil {
//			return err
//		}
//		mem.Step(cycles)
//	}
//
// Instructions are decoded with the table in the instructions package and
// executed by a single function that switches on the Operation of the
// instruction Definition. Operands are resolved by the CPU at execution time.
//
// All documented instructions and all undocumented instructions are
// implemented, including the undocumented flag bits 3 and 5 and the internal
// MEMPTR register that affects them.
//
// Only the fixed vector interrupt mode is supported. Interrupt mode 0 is
// treated as the fixed vector mode because the console's data bus floats high
// during the interrupt acknowledge and so supplies the RST 38H instruction.
// Interrupt mode 2 is a fatal error.
//
// The LastResult field can be inspected for information about the last
// instruction executed.
package cpu
