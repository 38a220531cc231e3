// This file is part of Gopher3DS.
//
// Gopher3DS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher3DS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher3DS.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Errors are created with the Errorf() function. Like Errorf() in the fmt
// package it takes a formatting pattern and placeholder values. The pattern
// is retained and can later be tested for with the Is() and Has() functions.
// Packages that raise conditions that a caller might want to distinguish
// should export their patterns as const strings. For example:
//
//	const BadThing = "bad thing: %s"
//
//	e := curated.Errorf(BadThing, "almost certainly")
//
//	if curated.Is(e, BadThing) {
//		fmt.Println("a bad thing happened")
//	}
//
// Is() tests the outer-most error only. Has() walks the chain of wrapped
// curated errors looking for the pattern at any depth.
//
// The Error() function normalises the message, removing duplicate adjacent
// parts from the message chain. Parts are separated by the sub-string ": ",
// as suggested on p239 of "The Go Programming Language" (Donovan,
// Kernighan). This means errors can be wrapped freely at every level of a
// call chain without the final message stuttering.
package curated
