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

// Package prefs facilitates the storage of preferential values in the
// GopherSMS system. It is a thin layer over basic types that allows values to
// be saved to and loaded from disk.
//
// Preference values are declared as one of the types in this package (Bool,
// Int, String) and then added to a Disk instance with a unique key.
//
//	var region prefs.String
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("hardware.region", &region)
//	dsk.Load(true)
//
// More than one Disk instance can point to the same file. Saving one instance
// does not remove the entries of another from the file.
//
// The file format is a simple list of "key :: value" lines, preceded by a
// warning line.
//
// Values can be overridden from the command line with the command line
// stack. A prefs string is a list of key::value pairs separated by
// semi-colons. Values in the top-most group are applied when a Disk is
// loaded and are then forgotten.
package prefs
