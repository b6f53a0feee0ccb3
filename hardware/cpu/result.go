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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gophersms/hardware/cpu/instructions"
)

// Event identifies what happened during a call to Step().
type Event int

// List of valid Event values.
const (
	EventInstruction Event = iota
	EventHalted
	EventNMI
	EventIRQ
)

// Result records the outcome of the most recent call to Step().
type Result struct {
	Event Event

	// address of the first byte of the instruction. for interrupts, the
	// address of the interrupted instruction
	Address uint16

	// definition of the instruction. nil if Event is not EventInstruction
	Defn *instructions.Definition

	Cycles int
}

func (r Result) String() string {
	switch r.Event {
	case EventHalted:
		return fmt.Sprintf("%04x halted (%d)", r.Address, r.Cycles)
	case EventNMI:
		return fmt.Sprintf("%04x NMI (%d)", r.Address, r.Cycles)
	case EventIRQ:
		return fmt.Sprintf("%04x IRQ (%d)", r.Address, r.Cycles)
	}
	if r.Defn == nil {
		return fmt.Sprintf("%04x", r.Address)
	}
	return fmt.Sprintf("%04x %-12s %s (%d)", r.Address, r.Defn.Bytes(), r.Defn, r.Cycles)
}
