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

// Package m64 decodes the .m64 movie files written by Mupen64 rerecording
// builds. A movie is a recording of controller input which, replayed against
// the same ROM and emulator configuration, reproduces a play session
// deterministically. The format is described at:
//
//	https://tasvideos.org/EmulatorResources/Mupen/M64
//
// The decoder works on a byte slice that already holds the whole file; where
// the bytes come from is the caller's business. The simplest use:
//
//	data, _ := os.ReadFile("movie.m64")
//	mov, err := m64.NewMovie(data)
//	if err != nil {
//		...
//	}
//	fmt.Println(m64.TrimPadding(mov.Author[:]))
//
// Decoding never writes to the supplied buffer, never reads beyond it and
// has no state of its own, so it is safe to decode from any number of
// goroutines at once.
//
// This package only decodes. Writing a movie file, editing one, or judging
// whether its inputs make sense for a particular ROM are jobs for whatever
// sits on top.
package m64
