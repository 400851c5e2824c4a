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

// Package logger is the central log for the rest of the project. There is
// only one log and there is no need for more than one.
//
// Log entries are made with the Log() and Logf() functions. An entry is a tag
// and detail pair. The tag should identify the part of the project making the
// entry; the detail is the information being logged. Consecutive identical
// entries are folded into one entry with a repeat count.
//
// The accumulated log can be written out with the Write() and Tail()
// functions. The SetEcho() function attaches a writer that receives entries
// as they are made.
package logger

import "io"

// only allowing one central log for the entire application.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	central.logf(tag, detail, args...)
}

// Clear all entries from the central logger.
func Clear() {
	central.clear()
}

// Write the contents of the central logger to the specified io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries in the central logger to the specified
// io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho attaches an io.Writer that will receive log entries as they are
// made. A nil writer turns echoing off.
func SetEcho(output io.Writer) {
	central.echo = output
}
