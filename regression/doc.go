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

// Package regression facilitates the regression testing of emulation code.
// Golden entries are added to a database with RegressAdd(). Each entry names
// a cartridge file, a TV region and a breakpoint address. When the entry is
// created the cartridge is run until the program counter reaches the
// breakpoint and the resulting snapshot is saved to disk, along with the
// digests of the video and audio output.
//
// RegressRun() repeats the emulation for selected entries and compares the
// results with the stored artifacts. Any difference is a regression.
//
// The database itself is managed by the database package.
package regression
