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

// Package database is a very simple way of storing structured and arbitrary
// entry types in a flat text file. Each line in the file is one entry: a
// key, the entry type ID and then the fields of the entry, all separated by
// commas.
//
// Use of a database requires starting a session with StartSession(), coupled
// with a call to EndSession() once we're done. For example (error handling
// removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
//	defer db.EndSession(true)
//
// The activity argument says what will happen during the session. The
// database file will be created if it does not exist and the activity is
// ActivityCreating. Changes are only written to disk by EndSession() if the
// activity is not ActivityReading.
//
// The initialisation function registers the entry types the database might
// contain:
//
//	func initDBSession(db *database.Session) error {
//		return db.RegisterEntryType("golden", deserialiseGolden)
//	}
//
// The deserialise function receives the fields of the entry (the key and ID
// are not included) and returns a new value that satisfies the Entry
// interface.
package database
