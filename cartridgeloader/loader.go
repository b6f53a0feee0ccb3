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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gophersms/curated"
)

// Loader specifies the cartridge data to load and holds the data after a
// successful call to Load().
type Loader struct {
	// filename of cartridge to load. can be a URL or a path that includes a
	// zip archive
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []uint8

	// the name of the file in the archive. empty if the data did not come
	// from an archive
	ArchivedName string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the name of the cartridge without path or extension.
func (cl Loader) ShortName() string {
	name := cl.Filename
	if cl.ArchivedName != "" {
		name = cl.ArchivedName
	}
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = TrimArchiveExt(name)
	return strings.TrimSuffix(name, path.Ext(name))
}

// HasLoaded returns true if Load() has been successful.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Does nothing if the data has already been loaded.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	// single letter schemes are windows drive letters
	u, err := url.Parse(cl.Filename)
	if err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
	}

	var data []uint8

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("cartridgeloader: %v", resp.Status)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		if archive, inner, ok := splitArchivePath(cl.Filename); ok {
			data, cl.ArchivedName, err = loadArchive(archive, inner)
			if err != nil {
				return curated.Errorf("cartridgeloader: %v", err)
			}
		} else {
			data, err = os.ReadFile(cl.Filename)
			if err != nil {
				return curated.Errorf("cartridgeloader: %v", err)
			}
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(data) == 0 {
		return curated.Errorf("cartridgeloader: %v", "no data")
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}

	cl.Hash = hash
	cl.Data = data

	return nil
}
