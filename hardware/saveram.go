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

package hardware

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/logger"
)

// the save RAM file for a cartridge is named after the checksum of the
// cartridge data
func saveRAMFilename(dir string, crc uint32) string {
	return filepath.Join(dir, fmt.Sprintf("%08x.sav", crc))
}

// ReadSaveRAM loads the save RAM of the attached cartridge from the directory.
// A missing file is not an error.
func (con *Console) ReadSaveRAM(dir string) error {
	if con.Mem.Cart == nil {
		return nil
	}

	fn := saveRAMFilename(dir, con.Mem.Cart.CRC())

	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return curated.Errorf("console: save ram: %v", err)
	}

	con.Mem.Cart.LoadSaveRAM(data)
	logger.Logf(logger.Allow, "console", "save ram loaded from %s", fn)

	return nil
}

// WriteSaveRAM writes the save RAM of the attached cartridge to the directory.
// Nothing is written if the cartridge has never used save RAM.
func (con *Console) WriteSaveRAM(dir string) error {
	if con.Mem.Cart == nil {
		return nil
	}

	data := con.Mem.Cart.SaveRAM()
	if data == nil {
		return nil
	}

	fn := saveRAMFilename(dir, con.Mem.Cart.CRC())

	err := os.WriteFile(fn, data, 0600)
	if err != nil {
		return curated.Errorf("console: save ram: %v", err)
	}
	logger.Logf(logger.Allow, "console", "save ram written to %s", fn)

	return nil
}
