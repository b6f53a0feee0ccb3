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

package cartridge

import (
	"fmt"
	"hash/crc32"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware/memory/memorymap"
	"github.com/jetsetilly/gophersms/logger"
	"github.com/jetsetilly/gophersms/snapshot"
)

// BankSize is the size of a ROM bank and of a slot.
const BankSize = 0x4000

// MaxBanks is the number of banks addressable by a slot selector.
const MaxBanks = 256

// size of the copier header found at the start of some dumps
const copierHeader = 512

const (
	workRAMSize = 0x2000
	saveRAMSize = 0x8000
)

// Sega scheme control registers
const (
	ramControl = 0xfffc
	slot0      = 0xfffd
	slot1      = 0xfffe
	slot2      = 0xffff
)

// Cartridge is the mapper and the memory attached to it.
type Cartridge struct {
	Variant Variant

	// ROM data padded to a whole number of banks
	rom      []uint8
	numBanks int

	// selectors are ANDed with the mask and then reduced modulo the number
	// of banks. the mask covers the next power of two
	bankMask uint8

	crc uint32

	// bank selected for each slot
	slots [3]uint8

	// RAM control register. Sega scheme only
	control uint8

	workRAM [workRAMSize]uint8
	saveRAM [saveRAMSize]uint8

	// save RAM has been enabled at least once since the cartridge was
	// created
	saveRAMUsed bool
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. Returns an error if the data is empty or if there is too much data to
// be addressed by the mapper.
func NewCartridge(data []uint8) (*Cartridge, error) {
	if len(data)%BankSize == copierHeader {
		data = data[copierHeader:]
	}

	if len(data) == 0 {
		return nil, curated.Errorf(Empty)
	}

	cart := &Cartridge{
		Variant:  fingerprint(data),
		numBanks: (len(data) + BankSize - 1) / BankSize,
		crc:      crc32.ChecksumIEEE(data),
	}

	if cart.numBanks > MaxBanks {
		return nil, curated.Errorf(TooLarge, cart.numBanks, MaxBanks)
	}

	cart.rom = make([]uint8, cart.numBanks*BankSize)
	copy(cart.rom, data)

	mask := 1
	for mask < cart.numBanks {
		mask <<= 1
	}
	cart.bankMask = uint8(mask - 1)

	cart.Reset()

	logger.Logf(logger.Allow, "cartridge", "%s mapper (%d banks)", cart.Variant, cart.numBanks)

	return cart, nil
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s mapper: slots %d %d %d", cart.Variant, cart.slots[0], cart.slots[1], cart.slots[2])
}

// NumBanks returns the number of 16k banks in the cartridge.
func (cart *Cartridge) NumBanks() int {
	return cart.numBanks
}

// CRC returns the CRC-32 of the cartridge data, not including any copier
// header.
func (cart *Cartridge) CRC() uint32 {
	return cart.crc
}

// Reset the mapper to the power-on state. Contents of save RAM are not
// affected.
func (cart *Cartridge) Reset() {
	switch cart.Variant {
	case Codemasters:
		cart.slots = [3]uint8{0, 1, 0}
	default:
		cart.slots = [3]uint8{0, 1, 2}
	}
	cart.control = 0
	clear(cart.workRAM[:])
}

// bank returns the physical bank for a selector value
func (cart *Cartridge) bank(selector uint8) int {
	return int(selector&cart.bankMask) % cart.numBanks
}

func (cart *Cartridge) readSlot(slot int, address uint16) uint8 {
	return cart.rom[cart.bank(cart.slots[slot])*BankSize+int(address&(BankSize-1))]
}

func (cart *Cartridge) saveRAMEnabled() bool {
	return cart.Variant == Sega && cart.control&0x08 == 0x08
}

func (cart *Cartridge) saveRAMOffset(address uint16) int {
	return int(cart.control>>2&0x01)*BankSize + int(address&(BankSize-1))
}

// ReadByte returns the value at the address as seen by the CPU.
func (cart *Cartridge) ReadByte(address uint16) uint8 {
	a, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.Fixed:
		if cart.Variant == Sega {
			return cart.rom[a]
		}
		return cart.readSlot(0, a)
	case memorymap.Slot0:
		return cart.readSlot(0, a)
	case memorymap.Slot1:
		return cart.readSlot(1, a)
	case memorymap.Slot2:
		if cart.saveRAMEnabled() {
			return cart.saveRAM[cart.saveRAMOffset(a)]
		}
		return cart.readSlot(2, a)
	}

	return cart.workRAM[a&memorymap.WorkRAMBits]
}

// WriteByte writes the value to the address. Writes to ROM are ignored unless
// the address is one of the mapper's control registers.
func (cart *Cartridge) WriteByte(address uint16, data uint8) {
	if a, area := memorymap.MapAddress(address); area == memorymap.WorkRAM {
		cart.workRAM[a&memorymap.WorkRAMBits] = data
	}

	switch cart.Variant {
	case Sega:
		switch address {
		case ramControl:
			cart.control = data
			if cart.saveRAMEnabled() {
				cart.saveRAMUsed = true
			}
		case slot0:
			cart.slots[0] = data
		case slot1:
			cart.slots[1] = data
		case slot2:
			cart.slots[2] = data
		default:
			if address >= 0x8000 && address < 0xc000 && cart.saveRAMEnabled() {
				cart.saveRAM[cart.saveRAMOffset(address)] = data
			}
		}

	case Codemasters:
		switch address {
		case 0x0000:
			cart.slots[0] = data
		case 0x4000:
			cart.slots[1] = data
		case 0x8000:
			cart.slots[2] = data
		}
	}
}

// ReadWord returns the little-endian 16-bit value at the address.
func (cart *Cartridge) ReadWord(address uint16) uint16 {
	return uint16(cart.ReadByte(address)) | uint16(cart.ReadByte(address+1))<<8
}

// WriteWord writes the 16-bit value to the address in little-endian order.
func (cart *Cartridge) WriteWord(address uint16, data uint16) {
	cart.WriteByte(address, uint8(data))
	cart.WriteByte(address+1, uint8(data>>8))
}

// PokeROM changes the ROM data underlying the address in the currently
// selected bank. Used by debugging tools.
func (cart *Cartridge) PokeROM(address uint16, data uint8) {
	switch {
	case address < 0x0400 && cart.Variant == Sega:
		cart.rom[address] = data
	case address < 0xc000:
		slot := int(address / BankSize)
		cart.rom[cart.bank(cart.slots[slot])*BankSize+int(address&(BankSize-1))] = data
	default:
		cart.workRAM[address&memorymap.WorkRAMBits] = data
	}
}

// SaveRAM returns a copy of the save RAM. Returns nil if the cartridge has not
// enabled save RAM since it was created.
func (cart *Cartridge) SaveRAM() []uint8 {
	if !cart.saveRAMUsed {
		return nil
	}
	d := make([]uint8, saveRAMSize)
	copy(d, cart.saveRAM[:])
	return d
}

// LoadSaveRAM replaces the contents of save RAM. Data longer than the save RAM
// is ignored.
func (cart *Cartridge) LoadSaveRAM(data []uint8) {
	copy(cart.saveRAM[:], data)
	cart.saveRAMUsed = true
}

// SaveState copies the mapper state into the snapshot.
func (cart *Cartridge) SaveState(s *snapshot.Snapshot) {
	s.Cartridge = cart.crc
	s.Mapper.Slots = cart.slots
	s.Mapper.Control = cart.control
	s.Mapper.WorkRAM = cart.workRAM
	s.Mapper.SaveRAM = cart.saveRAM
}

// LoadState restores the mapper state from the snapshot.
func (cart *Cartridge) LoadState(s *snapshot.Snapshot) {
	cart.slots = s.Mapper.Slots
	cart.control = s.Mapper.Control
	cart.workRAM = s.Mapper.WorkRAM
	cart.saveRAM = s.Mapper.SaveRAM
	if cart.saveRAMEnabled() {
		cart.saveRAMUsed = true
	}
}
