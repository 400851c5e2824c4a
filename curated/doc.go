// This file is part of Mupen64Movie.
//
// Mupen64Movie is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mupen64Movie is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mupen64Movie.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It works like
// Errorf() in the fmt package, taking a formatting pattern and placeholder
// values, but the pattern doubles as the error's identity. The Is() function
// checks whether an error was created with a specific pattern:
//
//	e := curated.Errorf("decode: bad value: %d", 10)
//
//	if curated.Is(e, "decode: bad value: %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks for the pattern anywhere in the
// error chain, which is useful once an error has been wrapped by another
// call to Errorf(). IsAny() simply answers whether the error is curated at
// all - or put another way, whether the error is one of ours rather than one
// from an outside package.
//
// The Error() function normalises the message chain so that adjacent
// duplicate parts are printed only once. Parts are the sub-strings separated
// by ": ", as suggested on p239 of "The Go Programming Language" (Donovan,
// Kernighan). This means wrapping at every level of a call stack is safe; a
// message will never contain "decode: decode: ...".
//
// Sentinel errors are achieved by storing the pattern as a const string,
// suitably named and commented, and testing with Is() or Has().
package curated
