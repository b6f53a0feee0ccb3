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

package cartridgeloader

import (
	"path/filepath"
	"strings"
)

// FileExtensions is the list of file extensions recognised as cartridge data.
var FileExtensions = [...]string{".SMS", ".SG", ".BIN", ".ROM"}

// ArchiveExtensions is the list of file extensions for the supported archive
// types.
var ArchiveExtensions = [...]string{".ZIP"}

func hasExtension(s string, exts []string) bool {
	ext := strings.ToUpper(filepath.Ext(s))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// IsCartridgeFile returns true if the filename has one of the FileExtensions.
func IsCartridgeFile(filename string) bool {
	return hasExtension(filename, FileExtensions[:])
}

// TrimArchiveExt removes the file extension of any supported archive type
// from the end of the string.
func TrimArchiveExt(s string) string {
	if hasExtension(s, ArchiveExtensions[:]) {
		return strings.TrimSuffix(s, filepath.Ext(s))
	}
	return s
}
