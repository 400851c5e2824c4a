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
	"bytes"
	"encoding/binary"
	"io"

	"github.com/tasmovie/mupen64movie/curated"
	"github.com/tasmovie/mupen64movie/logger"
	"github.com/tasmovie/mupen64movie/m64/controller"
)

// NewMovie is the preferred method of initialisation for the Movie type. It
// decodes a complete movie file presented as a byte slice. Reading the bytes
// from wherever they live is the caller's job.
//
// Decoding is all-or-nothing. On failure the returned error is one of the
// sentinels defined in this package and no Movie is returned. The buffer is
// only ever read, never retained, so a decoded Movie is independent of it.
//
// The header declares an input sample count but the samples themselves
// simply run to the end of the buffer. A buffer holding fewer samples than
// declared is an error. A buffer holding more is decoded in full, with a log
// entry noting the difference; dumps of real movies carry surplus samples
// surprisingly often and rejecting them would be unhelpful.
func NewMovie(data []byte) (*Movie, error) {
	if len(data) < HeaderSize {
		return nil, curated.Errorf(NotEnoughBytes, len(data), HeaderSize)
	}

	if !bytes.Equal(data[offSignature:offSignature+4], signature[:]) {
		return nil, curated.Errorf(InvalidSignature, data[offSignature:offSignature+4])
	}

	mov := &Movie{
		Version:         binary.LittleEndian.Uint32(data[offVersion:]),
		UID:             binary.LittleEndian.Uint32(data[offUID:]),
		VIFrames:        binary.LittleEndian.Uint32(data[offVIFrames:]),
		Rerecords:       binary.LittleEndian.Uint32(data[offRerecords:]),
		FPS:             data[offFPS],
		ControllerCount: data[offControllerCount],
		InputCount:      binary.LittleEndian.Uint32(data[offInputCount:]),
		StartType:       StartType(binary.LittleEndian.Uint16(data[offStartType:])),
		ROMCRC:          binary.LittleEndian.Uint32(data[offROMCRC:]),
		ROMCountryCode:  binary.LittleEndian.Uint16(data[offROMCountryCode:]),
	}

	if mov.Version != Version {
		return nil, curated.Errorf(InvalidVersion, mov.Version)
	}

	for _, r := range reserved {
		for _, b := range data[r.origin : r.origin+r.length] {
			if b != 0 {
				return nil, curated.Errorf(ReservedNotZero, r.origin)
			}
		}
	}

	switch mov.StartType {
	case StartSnapshot, StartPowerOn, StartEEPROM:
	default:
		return nil, curated.Errorf(InvalidStartType, uint16(mov.StartType))
	}

	mov.ControllerFlags = controller.FlagsFromBits(binary.LittleEndian.Uint32(data[offControllerFlags:]))

	// text fields are copied verbatim. NUL padding is the caller's concern
	copy(mov.ROMName[:], data[offROMName:])
	copy(mov.VideoPlugin[:], data[offVideoPlugin:])
	copy(mov.SoundPlugin[:], data[offSoundPlugin:])
	copy(mov.InputPlugin[:], data[offInputPlugin:])
	copy(mov.RSPPlugin[:], data[offRSPPlugin:])
	copy(mov.Author[:], data[offAuthor:])
	copy(mov.Description[:], data[offDescription:])

	input := data[HeaderSize:]
	if len(input)%InputSize != 0 {
		return nil, curated.Errorf(InputNotAligned, InputSize)
	}

	numSamples := len(input) / InputSize
	if uint64(numSamples) < uint64(mov.InputCount) {
		return nil, curated.Errorf(TruncatedInputData, mov.InputCount, numSamples)
	}

	mov.Inputs = make([]controller.Input, numSamples)
	for i := range mov.Inputs {
		mov.Inputs[i] = controller.InputFromBits(binary.LittleEndian.Uint32(input[i*InputSize:]))
	}

	if uint64(numSamples) > uint64(mov.InputCount) {
		logger.Logf("m64", "%d input samples in buffer but header declares %d", numSamples, mov.InputCount)
	}

	return mov, nil
}

// NewMovieFromReader drains the io.Reader and decodes the result with
// NewMovie(). It exists for convenience only; there is no streaming decode
// because a movie file must be complete before any of it can be trusted.
func NewMovieFromReader(r io.Reader) (*Movie, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf(ReadError, err)
	}
	return NewMovie(data)
}
