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

import (
	"fmt"
	"strings"
	"time"

	"github.com/tasmovie/mupen64movie/m64/controller"
)

// StartType indicates how the emulated machine must be prepared before the
// movie's inputs are replayed.
type StartType uint16

// List of valid StartType values.
const (
	// the machine state is loaded from a snapshot file stored alongside the
	// movie, with the "st" extension
	StartSnapshot StartType = 0x01

	// the machine is reset to its power-on state
	StartPowerOn StartType = 0x02

	// the machine is reset and the EEPROM contents are restored
	StartEEPROM StartType = 0x04
)

func (st StartType) String() string {
	switch st {
	case StartSnapshot:
		return "snapshot"
	case StartPowerOn:
		return "power-on"
	case StartEEPROM:
		return "EEPROM"
	}
	return fmt.Sprintf("unknown (%#04x)", uint16(st))
}

// Movie is the decoded form of a movie file. Every header field is present
// and the Inputs field contains every input sample in the file. Once
// decoded a Movie is never changed by this package.
//
// The text fields (ROMName, the plugin names, Author and Description) are
// raw bytes exactly as they appear in the file. They are NUL padded but not
// necessarily NUL terminated and no text encoding is assumed. Use
// TrimPadding() when a field is wanted as a string.
type Movie struct {
	// version of the header format. always 3 after a successful decode
	Version uint32

	// identifies the movie-savestate relationship. also used as the
	// recording time in unix epoch format
	UID uint32

	// number of vertical interrupt frames in the movie
	VIFrames uint32

	// rerecord count. the number of times the author loaded a state and
	// re-performed a section during recording
	Rerecords uint32

	// vertical interrupts per second. 50 for PAL, 60 for NTSC
	FPS uint8

	// number of controllers used by the movie
	ControllerCount uint8

	// number of input samples declared in the header. the length of the
	// Inputs field can legitimately be larger (see NewMovie)
	InputCount uint32

	// how the machine is prepared before replay
	StartType StartType

	// configuration of each controller port
	ControllerFlags [controller.NumPorts]controller.Flags

	// internal name of the ROM used when recording, directly from the ROM
	ROMName [ROMNameLen]byte

	// CRC32 of the ROM used when recording, directly from the ROM
	ROMCRC uint32

	// country code of the ROM used when recording, directly from the ROM
	ROMCountryCode uint16

	// names of the plugins used when recording, directly from each plugin
	VideoPlugin [PluginLen]byte
	SoundPlugin [PluginLen]byte
	InputPlugin [PluginLen]byte
	RSPPlugin   [PluginLen]byte

	// author(s) of the movie
	Author [AuthorLen]byte

	// free-text description of the movie
	Description [DescriptionLen]byte

	// the input samples, in replay order
	Inputs []controller.Input
}

func (mov Movie) String() string {
	return fmt.Sprintf("%s by %s (%d VI frames, %d rerecords)",
		TrimPadding(mov.ROMName[:]), TrimPadding(mov.Author[:]),
		mov.VIFrames, mov.Rerecords)
}

// RecordingTime interprets the UID field as the time the recording was
// started. The UID of older movies is not always a timestamp so the result
// should be treated with suspicion if it matters.
func (mov Movie) RecordingTime() time.Time {
	return time.Unix(int64(mov.UID), 0).UTC()
}

// TrimPadding removes the trailing NUL padding from one of the fixed-size
// text fields of a Movie. The decoder itself never trims or re-encodes text;
// this is the one concession to callers that want a field as a Go string.
func TrimPadding(field []byte) string {
	return strings.TrimRight(string(field), "\x00")
}
