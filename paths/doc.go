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

// Package paths contains functions to prepare paths for GopherSMS resources.
//
// The ResourcePath() function returns the correct path to the resource
// directory or file specified in the arguments. It handles the differences
// between release builds and development builds. Development builds keep
// resources in a ".gophersms" directory in the current working directory.
// Release builds, built with the "release" tag, keep resources in the
// user's configuration directory, as reported by os.UserConfigDir().
//
// In both cases the directory is created if it does not already exist.
package paths
