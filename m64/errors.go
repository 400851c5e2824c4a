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

package m64

// Sentinel errors returned by the decoding functions. Test for them with
// curated.Is() or curated.Has(). None of them are retryable; a buffer that
// fails to decode will always fail in the same way.
const (
	// the buffer is smaller than the fixed header
	NotEnoughBytes = "m64: not enough bytes: %d of required %d"

	// the first four bytes are not the movie signature
	InvalidSignature = "m64: invalid signature: % 02x"

	// the header version is not the one this package decodes
	InvalidVersion = "m64: invalid version: %d"

	// a reserved region of the header contains a non-zero byte
	ReservedNotZero = "m64: reserved bytes not zero at offset %#03x"

	// the start type field is not one of the valid StartType values
	InvalidStartType = "m64: invalid start type: %#04x"

	// the input data is not a whole number of samples
	InputNotAligned = "m64: input data is not a multiple of %d bytes"

	// the header declares more input samples than the buffer holds
	TruncatedInputData = "m64: truncated input data: %d samples declared, %d in buffer"

	// an io.Reader failed before the movie could be decoded
	ReadError = "m64: read: %v"
)
