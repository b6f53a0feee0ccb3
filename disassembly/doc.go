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

// Package disassembly produces Z80 disassembly from console memory. Decoding
// uses the same instruction table as the CPU so the disassembly always agrees
// with what the CPU would execute.
//
// Disassembly is linear. Every address in the requested range is decoded in
// sequence, so data in the range will be shown as instructions.
package disassembly
