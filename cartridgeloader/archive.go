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
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gophersms/curated"
)

// splitArchivePath looks for an archive file in the filename. If one is found
// the path to the archive and the path of the file inside the archive are
// returned. The inner path is empty if the filename names the archive itself.
func splitArchivePath(filename string) (string, string, bool) {
	filename = filepath.Clean(filename)
	lst := strings.Split(filename, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	var pth string
	for i, l := range lst {
		pth = filepath.Join(pth, l)

		fi, err := os.Stat(pth)
		if err != nil {
			return "", "", false
		}
		if fi.IsDir() {
			continue
		}
		if !hasExtension(pth, ArchiveExtensions[:]) {
			return "", "", false
		}

		// paths inside a zip file always use forward slashes
		return pth, strings.Join(lst[i+1:], "/"), true
	}

	return "", "", false
}

// loadArchive returns the contents of the named file in the archive. If inner
// is empty then the first file with a cartridge extension is used. The name
// of the file in the archive is also returned.
func loadArchive(archive string, inner string) ([]uint8, string, error) {
	zr, err := zip.OpenReader(archive)
	if err != nil {
		return nil, "", curated.Errorf("archive: %v", err)
	}
	defer zr.Close()

	var zf *zip.File
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if inner == "" {
			if IsCartridgeFile(f.Name) {
				zf = f
				break
			}
		} else if f.Name == inner {
			zf = f
			break
		}
	}

	if zf == nil {
		if inner == "" {
			return nil, "", curated.Errorf("archive: no cartridge in %s", filepath.Base(archive))
		}
		return nil, "", curated.Errorf("archive: %s not found in %s", inner, filepath.Base(archive))
	}

	r, err := zf.Open()
	if err != nil {
		return nil, "", curated.Errorf("archive: %v", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", curated.Errorf("archive: %v", err)
	}

	return data, zf.Name, nil
}
