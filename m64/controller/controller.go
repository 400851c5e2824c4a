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

package controller

import (
	"fmt"
	"strings"
)

// NumPorts is the number of controller ports on the console.
const NumPorts = 4

// Flags describes the configuration of a single controller port at the time
// the movie was recorded.
type Flags struct {
	// a controller is plugged into the port
	Present bool

	// the controller has a memory pak attached
	Mempak bool

	// the controller has a rumble pak attached
	Rumblepak bool
}

func (f Flags) String() string {
	if !f.Present {
		return "unplugged"
	}

	s := strings.Builder{}
	s.WriteString("plugged")
	if f.Mempak {
		s.WriteString(" +mempak")
	}
	if f.Rumblepak {
		s.WriteString(" +rumblepak")
	}
	return s.String()
}

// FlagsFromBits unpacks the controller flags field of a movie header. Bits 0
// to 3 indicate a controller present in ports 1 to 4; bits 4 to 7 a memory
// pak; bits 8 to 11 a rumble pak.
func FlagsFromBits(bits uint32) [NumPorts]Flags {
	var flags [NumPorts]Flags
	for i := 0; i < NumPorts; i++ {
		flags[i].Present = bits&(1<<i) != 0
		flags[i].Mempak = bits&(1<<(i+4)) != 0
		flags[i].Rumblepak = bits&(1<<(i+8)) != 0
	}
	return flags
}

// masks for the button bits in the lower half of a packed input sample.
const (
	maskDPadRight = 0x0001
	maskDPadLeft  = 0x0002
	maskDPadDown  = 0x0004
	maskDPadUp    = 0x0008
	maskStart     = 0x0010
	maskZ         = 0x0020
	maskB         = 0x0040
	maskA         = 0x0080
	maskCRight    = 0x0100
	maskCLeft     = 0x0200
	maskCDown     = 0x0400
	maskCUp       = 0x0800
	maskR         = 0x1000
	maskL         = 0x2000
	maskReserved1 = 0x4000
	maskReserved2 = 0x8000
)

// Input is a single sample of a controller's button and analogue stick
// state.
type Input struct {
	DPadRight bool
	DPadLeft  bool
	DPadDown  bool
	DPadUp    bool
	Start     bool
	Z         bool
	B         bool
	A         bool
	CRight    bool
	CLeft     bool
	CDown     bool
	CUp       bool
	R         bool
	L         bool

	// the two remaining button bits are unused by the console but are
	// preserved so that a sample survives a decode intact
	Reserved1 bool
	Reserved2 bool

	// analogue stick position
	X int8
	Y int8
}

// InputFromBits unpacks a four-byte input sample. The lower sixteen bits are
// the buttons, the upper sixteen bits the analogue stick axes.
func InputFromBits(bits uint32) Input {
	return Input{
		DPadRight: bits&maskDPadRight != 0,
		DPadLeft:  bits&maskDPadLeft != 0,
		DPadDown:  bits&maskDPadDown != 0,
		DPadUp:    bits&maskDPadUp != 0,
		Start:     bits&maskStart != 0,
		Z:         bits&maskZ != 0,
		B:         bits&maskB != 0,
		A:         bits&maskA != 0,
		CRight:    bits&maskCRight != 0,
		CLeft:     bits&maskCLeft != 0,
		CDown:     bits&maskCDown != 0,
		CUp:       bits&maskCUp != 0,
		R:         bits&maskR != 0,
		L:         bits&maskL != 0,
		Reserved1: bits&maskReserved1 != 0,
		Reserved2: bits&maskReserved2 != 0,
		X:         int8(bits >> 16),
		Y:         int8(bits >> 24),
	}
}

func (inp Input) String() string {
	labels := []struct {
		pressed bool
		label   string
	}{
		{inp.DPadRight, "dpad-right"},
		{inp.DPadLeft, "dpad-left"},
		{inp.DPadDown, "dpad-down"},
		{inp.DPadUp, "dpad-up"},
		{inp.Start, "start"},
		{inp.Z, "Z"},
		{inp.B, "B"},
		{inp.A, "A"},
		{inp.CRight, "C-right"},
		{inp.CLeft, "C-left"},
		{inp.CDown, "C-down"},
		{inp.CUp, "C-up"},
		{inp.R, "R"},
		{inp.L, "L"},
	}

	pressed := make([]string, 0, len(labels))
	for _, l := range labels {
		if l.pressed {
			pressed = append(pressed, l.label)
		}
	}
	if len(pressed) == 0 {
		pressed = append(pressed, "none")
	}

	return fmt.Sprintf("%s [%d, %d]", strings.Join(pressed, "+"), inp.X, inp.Y)
}
