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

package preferences

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophersms/hardware/vdp"
	"github.com/jetsetilly/gophersms/test"
)

func TestDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p := &Preferences{}
	p.SetDefaults()
	test.DemandSuccess(t, p.load(fn))

	test.ExpectEquality(t, p.TVRegion(), vdp.NTSC)
	test.ExpectEquality(t, p.SaveRAM.Get().(bool), true)

	// missing file was created with the default values
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "hardware.region :: NTSC"))
	test.ExpectSuccess(t, strings.Contains(string(data), "hardware.saveram :: true"))
}

func TestRegion(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p := &Preferences{}
	p.SetDefaults()
	test.DemandSuccess(t, p.load(fn))

	test.DemandSuccess(t, p.Region.Set("pal"))
	test.ExpectEquality(t, p.TVRegion(), vdp.PAL)
	test.DemandSuccess(t, p.Save())

	q := &Preferences{}
	q.SetDefaults()
	test.DemandSuccess(t, q.load(fn))
	test.ExpectEquality(t, q.TVRegion(), vdp.PAL)

	// unusable values fall back to the default region
	test.DemandSuccess(t, q.Region.Set("secam"))
	test.ExpectEquality(t, q.TVRegion(), vdp.NTSC)
}
