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

package controller_test

import (
	"testing"

	"github.com/tasmovie/mupen64movie/m64/controller"
	"github.com/tasmovie/mupen64movie/test"
)

func TestFlagsFromBits(t *testing.T) {
	flags := controller.FlagsFromBits(0x0000)
	for i := 0; i < controller.NumPorts; i++ {
		test.Equate(t, flags[i].Present, false)
		test.Equate(t, flags[i].Mempak, false)
		test.Equate(t, flags[i].Rumblepak, false)
	}

	// port 1 present with mempak, port 4 present with rumblepak
	flags = controller.FlagsFromBits(0x0819)
	test.Equate(t, flags[0].Present, true)
	test.Equate(t, flags[0].Mempak, true)
	test.Equate(t, flags[0].Rumblepak, false)
	test.Equate(t, flags[1].Present, false)
	test.Equate(t, flags[2].Present, false)
	test.Equate(t, flags[3].Present, true)
	test.Equate(t, flags[3].Mempak, false)
	test.Equate(t, flags[3].Rumblepak, true)
}

func TestFlagsString(t *testing.T) {
	test.Equate(t, controller.Flags{}.String(), "unplugged")
	test.Equate(t, controller.Flags{Present: true}.String(), "plugged")
	test.Equate(t, controller.Flags{Present: true, Mempak: true}.String(), "plugged +mempak")
	test.Equate(t, controller.Flags{Present: true, Rumblepak: true}.String(), "plugged +rumblepak")
}

func TestInputFromBits(t *testing.T) {
	// no buttons, stick centred
	inp := controller.InputFromBits(0x00000000)
	test.Equate(t, inp.A, false)
	test.Equate(t, inp.X, 0)
	test.Equate(t, inp.Y, 0)

	// one bit per button, checked individually
	test.Equate(t, controller.InputFromBits(0x0001).DPadRight, true)
	test.Equate(t, controller.InputFromBits(0x0002).DPadLeft, true)
	test.Equate(t, controller.InputFromBits(0x0004).DPadDown, true)
	test.Equate(t, controller.InputFromBits(0x0008).DPadUp, true)
	test.Equate(t, controller.InputFromBits(0x0010).Start, true)
	test.Equate(t, controller.InputFromBits(0x0020).Z, true)
	test.Equate(t, controller.InputFromBits(0x0040).B, true)
	test.Equate(t, controller.InputFromBits(0x0080).A, true)
	test.Equate(t, controller.InputFromBits(0x0100).CRight, true)
	test.Equate(t, controller.InputFromBits(0x0200).CLeft, true)
	test.Equate(t, controller.InputFromBits(0x0400).CDown, true)
	test.Equate(t, controller.InputFromBits(0x0800).CUp, true)
	test.Equate(t, controller.InputFromBits(0x1000).R, true)
	test.Equate(t, controller.InputFromBits(0x2000).L, true)
	test.Equate(t, controller.InputFromBits(0x4000).Reserved1, true)
	test.Equate(t, controller.InputFromBits(0x8000).Reserved2, true)

	// a button bit sets nothing else
	inp = controller.InputFromBits(0x0080)
	test.Equate(t, inp.B, false)
	test.Equate(t, inp.Z, false)
	test.Equate(t, inp.X, 0)

	// axes are signed bytes. x in the third byte, y in the fourth
	inp = controller.InputFromBits(0x7f800000)
	test.Equate(t, inp.X, -128)
	test.Equate(t, inp.Y, 127)

	inp = controller.InputFromBits(0xec140000)
	test.Equate(t, inp.X, 20)
	test.Equate(t, inp.Y, -20)
}

func TestInputString(t *testing.T) {
	test.Equate(t, controller.InputFromBits(0x0000).String(), "none [0, 0]")
	test.Equate(t, controller.InputFromBits(0x00a0).String(), "Z+A [0, 0]")
	test.Equate(t, controller.InputFromBits(0xec140090).String(), "start+A [20, -20]")
}
