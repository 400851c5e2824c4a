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

// movie file header format
// ------------------------
//
// the header is a fixed 1024 bytes. all multi-byte integers are
// little-endian. the input samples follow immediately after the header and
// run to the end of the file.

// HeaderSize is the fixed number of bytes before the first input sample.
const HeaderSize = 0x400

// InputSize is the number of bytes in one packed input sample.
const InputSize = 4

// Version is the only header version this package decodes. Earlier versions
// of the format exist but no modern rerecording emulator writes them.
const Version = 3

// byte offsets of the header fields.
const (
	offSignature       = 0x000
	offVersion         = 0x004
	offUID             = 0x008
	offVIFrames        = 0x00c
	offRerecords       = 0x010
	offFPS             = 0x014
	offControllerCount = 0x015
	offInputCount      = 0x018
	offStartType       = 0x01c
	offControllerFlags = 0x020
	offROMName         = 0x0c4
	offROMCRC          = 0x0e4
	offROMCountryCode  = 0x0e8
	offVideoPlugin     = 0x122
	offSoundPlugin     = 0x162
	offInputPlugin     = 0x1a2
	offRSPPlugin       = 0x1e2
	offAuthor          = 0x222
	offDescription     = 0x300
)

// lengths of the fixed-size text fields.
const (
	ROMNameLen     = 32
	PluginLen      = 64
	AuthorLen      = 222
	DescriptionLen = 256
)

// the four signature bytes at the very start of every movie file. the first
// three bytes are the ASCII string "M64".
var signature = [4]byte{0x4d, 0x36, 0x34, 0x1a}

// the reserved regions of the header. a well-formed file has nothing but
// zeroes in these.
var reserved = []struct {
	origin int
	length int
}{
	{origin: 0x016, length: 2},
	{origin: 0x01e, length: 2},
	{origin: 0x024, length: 160},
	{origin: 0x0ea, length: 56},
}
