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
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/gophersms/test"
)

func TestFromSettings(t *testing.T) {
	v, r := fromSettings("", nil)
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "no revision information")

	settings := []debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "false"},
	}
	v, r = fromSettings("", settings)
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "abc123")

	settings[2].Value = "true"
	v, r = fromSettings("", settings)
	test.ExpectEquality(t, r, "abc123+dirty")

	v, _ = fromSettings("v0.1.0", settings)
	test.ExpectEquality(t, v, "v0.1.0")
}
