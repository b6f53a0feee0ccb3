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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a pattern and placeholder values in the same
// way as fmt.Errorf().
//
// The pattern is remembered and can be tested for with the Is() and Has()
// functions. Packages export the patterns of errors that callers are
// expected to act upon. For example, the cartridge package exports:
//
//	const TooLarge = "cartridge: too large (%d banks)"
//
// and the caller can test for it with:
//
//	if curated.Is(err, cartridge.TooLarge) {
//		...
//	}
//
// Has() is similar but searches the entire chain of wrapped errors.
//
// The Error() implementation normalises the message so that duplicate
// adjacent parts are removed. Parts are separated by the sub-string ": ". So
// wrapping an error that begins "cpu: " with the pattern "cpu: %v" does not
// result in the message "cpu: cpu: ...".
package curated
