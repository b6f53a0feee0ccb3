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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/jetsetilly/gophersms/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file while the emulator is running ***"

// NoPrefsFile is returned by Load() when the preferences file does not exist.
const NoPrefsFile = "prefs: no preferences file (%s)"

// the separator between key and value in the preferences file
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	slices.Sort(k)
	return k
}

// Add preference value to list of values to store/load from Disk. The key
// value is used to identify the value in the file.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(separator)) || strings.ContainsAny(key, " \n") {
		return curated.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: key already added (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all preferences in the Disk instance to their zero value.
func (dsk *Disk) Reset() error {
	for _, v := range dsk.entries {
		if err := v.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// Save current preference values to disk. Entries in the file that are not
// part of this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := readFile(dsk.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return curated.Errorf("prefs: %v", err)
	}
	if data == nil {
		data = make(map[string]string)
	}

	for k, v := range dsk.entries {
		data[k] = v.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, data[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0600); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. If saveOnFail is true then a missing
// preferences file will be created with the current values.
//
// Values on the command line stack take precedence over values in the file.
func (dsk *Disk) Load(saveOnFail bool) error {
	defer dsk.applyCommandLine()

	data, err := readFile(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if saveOnFail {
				return dsk.Save()
			}
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
		return curated.Errorf("prefs: %v", err)
	}

	for k, p := range dsk.entries {
		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	return nil
}

func (dsk *Disk) applyCommandLine() {
	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			_ = p.Set(v)
		}
	}
}

// readFile parses the preferences file into a map of key/value strings.
func readFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		l := scanner.Text()
		if l == WarningBoilerPlate {
			continue
		}
		kv := strings.SplitN(l, separator, 2)
		if len(kv) != 2 {
			continue
		}
		data[kv[0]] = kv[1]
	}

	return data, scanner.Err()
}
