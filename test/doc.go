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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error and allow the test to continue.
// The Demand*() functions are fatal to the test and should be used when later
// parts of the test depend on the value being correct.
//
// The ExpectSuccess() and ExpectFailure() functions test for success under
// generic conditions. A bool is successful if it is true and an error is
// successful if it is nil. The untyped nil value is always considered a
// success because of how errors usually work.
//
// Tags can be added to any test function and will prefix the failure message.
// Useful when testing inside a loop.
package test
