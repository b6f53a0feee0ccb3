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

package database

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophersms/curated"
)

// Activity specifies the type of activity that will happen during a
// session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session keeps track of a database session.
type Session struct {
	path     string
	activity Activity

	entries map[int]Entry

	entryTypes map[string]Deserialiser
}

// StartSession starts a new database session. The init function is called
// before the database file is read and should register the entry types.
//
// A database file that doesn't exist is an empty database when reading or
// creating. It is an error when modifying.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, curated.Errorf("database: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) || activity == ActivityModifying {
			return nil, curated.Errorf("database: %v", err)
		}
		return db, nil
	}

	if err := db.parse(string(data)); err != nil {
		return nil, err
	}

	return db, nil
}

// EndSession closes the database. Entries are written to disk if
// commitChanges is true and the session was not started with
// ActivityReading.
func (db *Session) EndSession(commitChanges bool) error {
	if !commitChanges || db.activity == ActivityReading {
		return nil
	}

	f, err := os.Create(db.path)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}
	defer f.Close()

	if err := db.write(f); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}

func (db *Session) write(w io.Writer) error {
	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		fields, err := ent.Serialise()
		if err != nil {
			return err
		}

		s := strings.Builder{}
		s.WriteString(recordHeader(key, ent.ID()))
		for _, f := range fields {
			if strings.Contains(f, fieldSep) || strings.Contains(f, entrySep) {
				return curated.Errorf("illegal character in field (%s)", f)
			}
			s.WriteString(fieldSep)
			s.WriteString(f)
		}
		s.WriteString(entrySep)

		if _, err := io.WriteString(w, s.String()); err != nil {
			return err
		}
	}

	return nil
}

func (db *Session) parse(data string) error {
	lines := strings.Split(data, entrySep)

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		fields := strings.Split(line, fieldSep)
		if len(fields) < numLeaderFields {
			return curated.Errorf("database: too few fields at line %d", i+1)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf("database: invalid key (%s) at line %d", fields[leaderFieldKey], i+1)
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: duplicate key (%d) at line %d", key, i+1)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return curated.Errorf("database: unrecognised entry type (%s) at line %d", fields[leaderFieldID], i+1)
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return curated.Errorf("database: %v at line %d", err, i+1)
		}

		db.entries[key] = ent
	}

	return nil
}
