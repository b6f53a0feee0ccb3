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

package regression

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophersms/curated"
	"github.com/jetsetilly/gophersms/database"
	"github.com/jetsetilly/gophersms/logger"
	"github.com/jetsetilly/gophersms/paths"
)

// the location of the regression database and the stored artifacts
const (
	regressionPath   = "regression"
	regressionDBFile = "db"
	regressionStates = "goldens"
)

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the
	// newRegression flag is true when the entry is being added to the
	// database. artifacts are stored in stateDir.
	//
	// a failed regression returns false and a short reason.
	regress(newRegression bool, stateDir string) (bool, string, error)
}

// DefaultDatabase returns the path to the regression database in the
// resource directory.
func DefaultDatabase() (string, error) {
	return paths.ResourcePath(regressionPath, regressionDBFile)
}

// artifacts are stored in a directory next to the database file.
func stateDir(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), regressionStates)
}

func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(goldenEntryID, deserialiseGoldenEntry)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, dbPath string) error {
	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd runs the regressor for the first time and adds it to the
// database.
func RegressAdd(output io.Writer, dbPath string, reg Regressor) error {
	db, err := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	fmt.Fprintf(output, "adding: %s\n", reg)

	ok, _, err := reg.regress(true, stateDir(dbPath))
	if err != nil {
		db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}
	if !ok {
		db.EndSession(false)
		return curated.Errorf("regression: cannot create entry")
	}

	key, err := db.Add(reg)
	if err != nil {
		db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	fmt.Fprintf(output, "added as test #%03d\n", key)
	logger.Logf(logger.Allow, "regression", "added %s", reg)

	return db.EndSession(true)
}

// RegressDelete removes an entry from the database after confirmation. The
// confirmation reader can be nil, in which case no confirmation is asked for.
func RegressDelete(output io.Writer, confirmation io.Reader, dbPath string, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key (%s)", key)
	}

	db, err := database.StartSession(dbPath, database.ActivityModifying, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	ent, err := db.Get(v)
	if err != nil {
		db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	if confirmation != nil {
		fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

		confirm := make([]byte, 32)
		n, err := confirmation.Read(confirm)
		if err != nil && n == 0 {
			db.EndSession(false)
			return curated.Errorf("regression: %v", err)
		}

		if confirm[0] != 'y' && confirm[0] != 'Y' {
			return db.EndSession(false)
		}
	}

	if err := db.Delete(v); err != nil {
		db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	fmt.Fprintf(output, "deleted test #%03d from regression database\n", v)

	return db.EndSession(true)
}

// RegressRun runs the regression tests for the specified keys. All entries
// are run if the list of keys is empty. Returns the number of failed tests.
func RegressRun(output io.Writer, dbPath string, keys []string) (int, error) {
	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return 0, curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(false)

	keyList := make([]int, 0, len(keys))
	for _, k := range keys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return 0, curated.Errorf("regression: invalid key (%s)", k)
		}
		keyList = append(keyList, v)
	}

	var numSucceed, numFail, numError int

	onSelect := func(key int, ent database.Entry) error {
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: database entry (%s) is not a regressor", ent.ID())
		}

		msg := fmt.Sprintf("%03d %s", key, reg)
		fmt.Fprintf(output, "running: %s", msg)

		ok, reason, err := reg.regress(false, stateDir(dbPath))

		// clear the running line
		fmt.Fprintf(output, "\r%s\r", strings.Repeat(" ", len(msg)+9))

		switch {
		case err != nil:
			numError++
			fmt.Fprintf(output, "error: %s (%v)\n", msg, err)
		case !ok:
			numFail++
			fmt.Fprintf(output, "failure: %s (%s)\n", msg, reason)
		default:
			numSucceed++
			fmt.Fprintf(output, "succeed: %s\n", msg)
		}

		return nil
	}

	_, err = db.SelectKeys(onSelect, keyList...)
	if err != nil {
		return 0, curated.Errorf("regression: %v", err)
	}

	fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
	if numError > 0 {
		fmt.Fprintf(output, ", %d errors", numError)
	}
	fmt.Fprintf(output, "\n")

	return numFail + numError, nil
}
