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

package cartridge_test

import (
	"testing"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/hardware/memory/cartridge"
	"github.com/jetsetilly/gophersms/snapshot"
	"github.com/jetsetilly/gophersms/test"
)

// cartridge data where every byte of a bank is the bank number
func numberedBanks(n int) []uint8 {
	d := make([]uint8, n*cartridge.BankSize)
	for i := range d {
		d[i] = uint8(i / cartridge.BankSize)
	}
	return d
}

func TestEmpty(t *testing.T) {
	_, err := cartridge.NewCartridge(nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridge.Empty))
}

func TestTooLarge(t *testing.T) {
	_, err := cartridge.NewCartridge(make([]uint8, (cartridge.MaxBanks+1)*cartridge.BankSize))
	test.ExpectSuccess(t, curated.Is(err, cartridge.TooLarge))

	_, err = cartridge.NewCartridge(make([]uint8, cartridge.MaxBanks*cartridge.BankSize))
	test.ExpectSuccess(t, err)
}

func TestPadding(t *testing.T) {
	cart, err := cartridge.NewCartridge(make([]uint8, 100))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.NumBanks(), 1)

	cart, err = cartridge.NewCartridge(make([]uint8, cartridge.BankSize+1))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.NumBanks(), 2)
}

func TestCopierHeader(t *testing.T) {
	d := append(make([]uint8, 512), numberedBanks(2)...)
	d[0] = 0xaa

	cart, err := cartridge.NewCartridge(d)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.NumBanks(), 2)
	test.ExpectEquality(t, cart.ReadByte(0x0000), uint8(0))
	test.ExpectEquality(t, cart.ReadByte(0x4000), uint8(1))
}

func TestSegaSlots(t *testing.T) {
	cart, err := cartridge.NewCartridge(numberedBanks(8))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Variant, cartridge.Sega)

	test.ExpectEquality(t, cart.ReadByte(0x0000), uint8(0))
	test.ExpectEquality(t, cart.ReadByte(0x4000), uint8(1))
	test.ExpectEquality(t, cart.ReadByte(0x8000), uint8(2))

	cart.WriteByte(0xfffd, 5)
	cart.WriteByte(0xfffe, 6)
	cart.WriteByte(0xffff, 7)

	// the first 1k never unmaps
	test.ExpectEquality(t, cart.ReadByte(0x03ff), uint8(0))
	test.ExpectEquality(t, cart.ReadByte(0x0400), uint8(5))
	test.ExpectEquality(t, cart.ReadByte(0x7fff), uint8(6))
	test.ExpectEquality(t, cart.ReadByte(0xbfff), uint8(7))

	// control writes also reach RAM
	test.ExpectEquality(t, cart.ReadByte(0xffff), uint8(7))
	test.ExpectEquality(t, cart.ReadByte(0xdfff), uint8(7))
}

func TestROMWritesIgnored(t *testing.T) {
	cart, err := cartridge.NewCartridge(numberedBanks(4))
	test.DemandSuccess(t, err)
	cart.WriteByte(0x1000, 0xff)
	cart.WriteByte(0x9000, 0xff)
	test.ExpectEquality(t, cart.ReadByte(0x1000), uint8(0))
	test.ExpectEquality(t, cart.ReadByte(0x9000), uint8(2))
}

func TestWorkRAMMirror(t *testing.T) {
	cart, err := cartridge.NewCartridge(numberedBanks(4))
	test.DemandSuccess(t, err)
	cart.WriteByte(0xc010, 0x42)
	test.ExpectEquality(t, cart.ReadByte(0xe010), uint8(0x42))
	cart.WriteWord(0xe100, 0x1234)
	test.ExpectEquality(t, cart.ReadWord(0xc100), uint16(0x1234))
	test.ExpectEquality(t, cart.ReadByte(0xc100), uint8(0x34))
}

func TestSaveRAM(t *testing.T) {
	cart, err := cartridge.NewCartridge(numberedBanks(4))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(cart.SaveRAM()), 0)

	// bank 0 of save RAM
	cart.WriteByte(0xfffc, 0x08)
	cart.WriteByte(0x8000, 0x11)
	test.ExpectEquality(t, cart.ReadByte(0x8000), uint8(0x11))

	// bank 1 of save RAM
	cart.WriteByte(0xfffc, 0x0c)
	test.ExpectEquality(t, cart.ReadByte(0x8000), uint8(0x00))
	cart.WriteByte(0x8000, 0x22)

	// ROM is visible again when save RAM is disabled
	cart.WriteByte(0xfffc, 0x00)
	test.ExpectEquality(t, cart.ReadByte(0x8000), uint8(2))

	sav := cart.SaveRAM()
	test.ExpectEquality(t, len(sav), 0x8000)
	test.ExpectEquality(t, sav[0x0000], uint8(0x11))
	test.ExpectEquality(t, sav[0x4000], uint8(0x22))
}

func TestCodemasters(t *testing.T) {
	d := numberedBanks(8)
	d[0x7fe6] = 0x34
	d[0x7fe7] = 0x12
	d[0x7fe8] = 0xcc
	d[0x7fe9] = 0xed

	cart, err := cartridge.NewCartridge(d)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Variant, cartridge.Codemasters)

	// slot 2 starts with bank 0
	test.ExpectEquality(t, cart.ReadByte(0x8000), uint8(0))

	cart.WriteByte(0x0000, 3)
	cart.WriteByte(0x4000, 4)
	cart.WriteByte(0x8000, 5)

	// no fixed area at the start of memory
	test.ExpectEquality(t, cart.ReadByte(0x0000), uint8(3))
	test.ExpectEquality(t, cart.ReadByte(0x4000), uint8(4))
	test.ExpectEquality(t, cart.ReadByte(0x8000), uint8(5))

	// the Sega registers have no effect
	cart.WriteByte(0xffff, 1)
	test.ExpectEquality(t, cart.ReadByte(0x8000), uint8(5))
}

func TestBankMaskContainment(t *testing.T) {
	for n := 1; n <= 64; n++ {
		cart, err := cartridge.NewCartridge(numberedBanks(n))
		test.DemandSuccess(t, err)

		for sel := range 256 {
			cart.WriteByte(0xfffe, uint8(sel))
			b := int(cart.ReadByte(0x4000))
			if b >= n {
				t.Fatalf("%d banks: selector %d maps to bank %d", n, sel, b)
			}
		}
	}
}

func TestState(t *testing.T) {
	cart, err := cartridge.NewCartridge(numberedBanks(8))
	test.DemandSuccess(t, err)
	cart.WriteByte(0xfffe, 3)
	cart.WriteByte(0xc000, 0x99)

	var s snapshot.Snapshot
	cart.SaveState(&s)
	test.ExpectEquality(t, s.Cartridge, cart.CRC())

	cart.WriteByte(0xfffe, 4)
	cart.WriteByte(0xc000, 0x00)
	cart.LoadState(&s)

	test.ExpectEquality(t, cart.ReadByte(0x4000), uint8(3))
	test.ExpectEquality(t, cart.ReadByte(0xc000), uint8(0x99))

	var o snapshot.Snapshot
	cart.SaveState(&o)
	test.ExpectSuccess(t, s.Equals(&o))
}
