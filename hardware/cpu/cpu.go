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
	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware/cpu/instructions"
	"github.com/jetsetilly/gophersms/hardware/cpu/registers"
	"github.com/jetsetilly/gophersms/hardware/memory/bus"
	"github.com/jetsetilly/gophersms/snapshot"
)

// interrupt vectors
const (
	nmiVector = 0x0066
	irqVector = 0x0038
)

// CPU implements the Z80. Register logic is implemented by the Registers type
// in the registers sub-package.
type CPU struct {
	Reg registers.Registers

	mem   bus.CPUBus
	lines bus.InterruptBus

	// an EI instruction has been executed. maskable interrupts are not
	// accepted until after the next instruction
	eiPending bool

	// address of an indexed operand. the displacement is fetched once per
	// instruction and the address reused by read-modify-write instructions
	indexAddress  uint16
	indexResolved bool

	// the first error encountered during the current instruction
	err error

	// outcome of the most recent call to Step()
	LastResult Result
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem bus.CPUBus, lines bus.InterruptBus) *CPU {
	mc := &CPU{
		mem:   mem,
		lines: lines,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return mc.Reg.String()
}

// Reset the CPU to the power-on state. Execution begins at address zero.
func (mc *CPU) Reset() {
	mc.Reg.Reset()
	mc.eiPending = false
	mc.indexResolved = false
	mc.err = nil
	mc.LastResult = Result{}
}

// Step executes a single instruction or services a pending interrupt. Returns
// the number of cycles consumed.
func (mc *CPU) Step() (int, error) {
	// a pending EI blocks maskable interrupts for exactly one step
	eiPending := mc.eiPending
	mc.eiPending = false

	if mc.lines.NMI() {
		return mc.serviceNMI(), nil
	}

	if mc.Reg.IFF1 && !eiPending && mc.lines.IRQ() {
		return mc.serviceIRQ()
	}

	if mc.Reg.Halted {
		// the CPU executes NOPs while halted. the refresh register continues
		// to count
		mc.Reg.IncrementR()
		mc.LastResult = Result{Event: EventHalted, Address: mc.Reg.PC, Cycles: 4}
		return 4, nil
	}

	return mc.executeInstruction()
}

func (mc *CPU) serviceNMI() int {
	mc.LastResult = Result{Event: EventNMI, Address: mc.Reg.PC, Cycles: 11}
	mc.Reg.Halted = false
	mc.Reg.IncrementR()

	// IFF2 preserves the state of IFF1 so that RETN can restore it
	mc.Reg.IFF1 = false

	mc.push(mc.Reg.PC)
	mc.Reg.PC = nmiVector
	mc.Reg.MEMPTR = nmiVector

	return 11
}

func (mc *CPU) serviceIRQ() (int, error) {
	if mc.Reg.IM == 2 {
		return 0, curated.Errorf(UnsupportedInterruptMode, mc.Reg.IM, mc.Reg.PC)
	}

	mc.LastResult = Result{Event: EventIRQ, Address: mc.Reg.PC, Cycles: 13}
	mc.Reg.Halted = false
	mc.Reg.IncrementR()
	mc.Reg.IFF1 = false
	mc.Reg.IFF2 = false

	mc.push(mc.Reg.PC)
	mc.Reg.PC = irqVector
	mc.Reg.MEMPTR = irqVector

	return 13, nil
}

// fetch an opcode byte. opcode fetches advance the refresh register
func (mc *CPU) fetchOpcode() uint8 {
	mc.Reg.IncrementR()
	return mc.fetch8()
}

func (mc *CPU) fetch8() uint8 {
	v := mc.mem.Read(mc.Reg.PC)
	mc.Reg.PC++
	return v
}

func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch8()
	hi := mc.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) write16(address uint16, v uint16) {
	mc.mem.Write(address, uint8(v))
	mc.mem.Write(address+1, uint8(v>>8))
}

func (mc *CPU) push(v uint16) {
	mc.Reg.SP -= 2
	mc.write16(mc.Reg.SP, v)
}

func (mc *CPU) pop() uint16 {
	v := mc.read16(mc.Reg.SP)
	mc.Reg.SP += 2
	return v
}

// decode follows the prefix chain and returns the definition of the
// instruction at PC
func (mc *CPU) decode() *instructions.Definition {
	op := mc.fetchOpcode()

	switch op {
	case 0xcb:
		return instructions.Lookup(instructions.CB, mc.fetchOpcode())
	case 0xed:
		return instructions.Lookup(instructions.ED, mc.fetchOpcode())
	case 0xdd, 0xfd:
		prefix := instructions.DD
		if op == 0xfd {
			prefix = instructions.FD
		}

		// a second prefix supersedes this one. the second prefix will be
		// fetched by the next call to Step()
		switch mc.mem.Read(mc.Reg.PC) {
		case 0xdd, 0xed, 0xfd:
			return instructions.Lookup(prefix, 0xdd)
		}

		op = mc.fetchOpcode()
		if op != 0xcb {
			return instructions.Lookup(prefix, op)
		}

		// the displacement comes before the final opcode. neither byte is
		// an opcode fetch so the refresh register is not advanced
		if prefix == instructions.DD {
			prefix = instructions.DDCB
			mc.resolveIndex(instructions.IndIX)
		} else {
			prefix = instructions.FDCB
			mc.resolveIndex(instructions.IndIY)
		}
		return instructions.Lookup(prefix, mc.fetch8())
	}

	return instructions.Lookup(instructions.Unprefixed, op)
}

func (mc *CPU) executeInstruction() (int, error) {
	mc.LastResult = Result{Event: EventInstruction, Address: mc.Reg.PC}
	mc.indexResolved = false
	mc.err = nil

	defn := mc.decode()
	mc.LastResult.Defn = defn

	// the displacement of an indexed operand immediately follows the opcode.
	// it must be fetched before any immediate value
	if defn.Dest.IsIndexed() {
		mc.resolveIndex(defn.Dest)
	} else if defn.Src.IsIndexed() {
		mc.resolveIndex(defn.Src)
	}

	taken := mc.execute(defn)
	if mc.err != nil {
		return 0, mc.err
	}

	cycles := defn.Cycles
	if taken && defn.CyclesTaken > 0 {
		cycles = defn.CyclesTaken
	}
	mc.LastResult.Cycles = cycles

	return cycles, nil
}

// SaveState copies the CPU state into the snapshot.
func (mc *CPU) SaveState(s *snapshot.Snapshot) {
	r := &mc.Reg
	s.CPU = snapshot.CPU{
		AF: r.AF(), BC: r.BC(), DE: r.DE(), HL: r.HL(),
		AF_: r.AF_(), BC_: r.BC_(), DE_: r.DE_(), HL_: r.HL_(),
		IX: r.IX, IY: r.IY, SP: r.SP, PC: r.PC,
		I: r.I, R: r.R,
		MEMPTR:    r.MEMPTR,
		IFF1:      r.IFF1,
		IFF2:      r.IFF2,
		IM:        r.IM,
		Halted:    r.Halted,
		EIPending: mc.eiPending,
	}
}

// LoadState restores the CPU state from the snapshot.
func (mc *CPU) LoadState(s *snapshot.Snapshot) {
	r := &mc.Reg
	c := &s.CPU
	r.SetAF(c.AF)
	r.SetBC(c.BC)
	r.SetDE(c.DE)
	r.SetHL(c.HL)
	r.SetAF_(c.AF_)
	r.SetBC_(c.BC_)
	r.SetDE_(c.DE_)
	r.SetHL_(c.HL_)
	r.IX = c.IX
	r.IY = c.IY
	r.SP = c.SP
	r.PC = c.PC
	r.I = c.I
	r.R = c.R
	r.MEMPTR = c.MEMPTR
	r.IFF1 = c.IFF1
	r.IFF2 = c.IFF2
	r.IM = c.IM
	r.Halted = c.Halted
	mc.eiPending = c.EIPending
}
