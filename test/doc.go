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

// Package test contains helper functions to remove common boilerplate from
// the _test.go files in the rest of the project.
//
// The Equate() function compares like-typed values for equality. Some types
// (eg. uint32) can be compared against an int literal for convenience. See
// the Equate() documentation for discussion of why.
//
// The ExpectedFailure() and ExpectedSuccess() functions test a value for a
// failure or success condition suitable for its type. For the error type,
// nil is a success. This follows from how errors are normally used in Go,
// even though it means a nil value of no particular type also counts as a
// success.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function tests the captured output
// for equality.
package test
