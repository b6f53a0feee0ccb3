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

// Package cartridgeloader is used to load the data that is to be attached to
// the emulated console.
//
// The Load() function handles loading of data from different sources. Local
// files and data over HTTP are supported. A local file can be a zip archive,
// in which case the first file in the archive with a recognised extension is
// loaded. A file inside an archive can also be named directly:
//
//	cl := cartridgeloader.NewLoader("roms/collection.zip/Wonder Boy.sms")
//	err := cl.Load()
//
// After a successful load the Hash field contains the SHA1 of the data. A Hash
// value set before loading is checked against the loaded data.
package cartridgeloader
