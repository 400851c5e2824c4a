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

// Package controller defines the controller-facing types found in a movie
// file: the per-port configuration flags in the movie header and the packed
// input samples that follow it.
//
// Both types are bit-for-bit representations of what the console's input
// plugin produces. The FlagsFromBits() and InputFromBits() functions unpack
// the on-disk encoding; the types themselves carry no behaviour beyond
// String().
package controller
