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

package database_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/database"
	"github.com/jetsetilly/gophersms/test"
)

type testEntry struct {
	name    string
	cleaned *int
}

func (e testEntry) ID() string {
	return "test"
}

func (e testEntry) String() string {
	return e.name
}

func (e testEntry) Serialise() ([]string, error) {
	return []string{e.name}, nil
}

func (e testEntry) CleanUp() error {
	if e.cleaned != nil {
		*e.cleaned++
	}
	return nil
}

func initTestSession(db *database.Session) error {
	return db.RegisterEntryType("test", func(fields []string) (database.Entry, error) {
		if len(fields) != 1 {
			return nil, curated.Errorf("wrong number of fields")
		}
		return testEntry{name: fields[0]}, nil
	})
}

func TestSession(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	// file doesn't exist and we're modifying it
	_, err := database.StartSession(pth, database.ActivityModifying, initTestSession)
	test.ExpectFailure(t, err)

	// reading a file that doesn't exist is the same as reading an empty
	// database. nothing is written
	db, err := database.StartSession(pth, database.ActivityReading, initTestSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 0)
	test.ExpectSuccess(t, db.EndSession(true))
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	db, err = database.StartSession(pth, database.ActivityCreating, initTestSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 0)

	key, err := db.Add(testEntry{name: "alpha"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, key, 0)
	key, err = db.Add(testEntry{name: "beta"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, key, 1)
	test.ExpectSuccess(t, db.EndSession(true))

	db, err = database.StartSession(pth, database.ActivityReading, initTestSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 2)

	w := &strings.Builder{}
	test.ExpectSuccess(t, db.List(w))
	test.ExpectEquality(t, w.String(), "000 alpha\n001 beta\nTotal: 2\n")

	_, err = db.Add(testEntry{name: "gamma"})
	test.ExpectFailure(t, err)
}

func TestDelete(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(pth, database.ActivityCreating, initTestSession)
	test.DemandSuccess(t, err)

	var cleaned int
	db.Add(testEntry{name: "alpha", cleaned: &cleaned})
	db.Add(testEntry{name: "beta", cleaned: &cleaned})

	test.ExpectSuccess(t, db.Delete(0))
	test.ExpectEquality(t, cleaned, 1)
	test.ExpectFailure(t, db.Delete(0))

	// deleted key is reused
	key, err := db.Add(testEntry{name: "gamma"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, key, 0)

	ent, err := db.Get(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ent.String(), "beta")
}

func TestSelect(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(pth, database.ActivityCreating, initTestSession)
	test.DemandSuccess(t, err)

	_, err = db.SelectAll(nil)
	test.ExpectFailure(t, err)

	db.Add(testEntry{name: "alpha"})
	db.Add(testEntry{name: "beta"})
	db.Add(testEntry{name: "gamma"})

	var names []string
	ent, err := db.SelectAll(func(_ int, ent database.Entry) error {
		names = append(names, ent.String())
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ent.String(), "gamma")
	test.ExpectEquality(t, strings.Join(names, " "), "alpha beta gamma")

	ent, err = db.SelectKeys(nil, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ent.String(), "beta")

	_, err = db.SelectKeys(nil, 10)
	test.ExpectFailure(t, err)
}

func TestUnknownEntryType(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(pth, database.ActivityCreating, initTestSession)
	test.DemandSuccess(t, err)
	db.Add(testEntry{name: "alpha"})
	test.DemandSuccess(t, db.EndSession(true))

	_, err = database.StartSession(pth, database.ActivityReading, nil)
	test.ExpectFailure(t, err)
}
