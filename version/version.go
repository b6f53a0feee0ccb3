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

package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used in window titles and command line help.
const ApplicationName = "GopherSMS"

// set by the linker for release builds. for example:
//
//	go build -ldflags "-X github.com/jetsetilly/gophersms/version.number=v0.1.0"
var number string

var version string
var revision string

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// The version string is "unreleased" if the program was built without a
// version number but with VCS information. It is "local" if there is no
// information at all, which is normal for "go run .". The revision is
// suffixed with "+dirty" if the source had uncommitted changes.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Summary returns a single line suitable for log entries and help text.
func Summary() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

// fromSettings returns the version and revision strings for the release
// number and build settings.
func fromSettings(number string, settings []debug.BuildSetting) (string, string) {
	var vcs bool
	var rev string
	var modified bool

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if rev == "" {
		rev = "no revision information"
	} else if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}

func init() {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}
	version, revision = fromSettings(number, settings)
}
