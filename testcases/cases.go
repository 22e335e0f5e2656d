// seehuhn.de/go/tangram - a tangram layout engine
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import "seehuhn.de/go/tangram"

var defaultCases = []TestCase{
	{
		Name:   "dragon",
		Scale:  tangram.DefaultScale,
		Tilt:   tangram.DefaultTilt,
		Width:  256,
		Height: 256,
	},
	{
		Name:   "upright",
		Scale:  tangram.DefaultScale,
		Tilt:   0,
		Width:  256,
		Height: 256,
	},
}

var scaleCases = []TestCase{
	{
		Name:   "tiny",
		Scale:  0.01,
		Tilt:   tangram.DefaultTilt,
		Width:  64,
		Height: 64,
	},
	{
		Name:   "quarter",
		Scale:  0.25,
		Tilt:   tangram.DefaultTilt,
		Width:  128,
		Height: 128,
	},
	{
		Name:   "unit",
		Scale:  1,
		Tilt:   tangram.DefaultTilt,
		Width:  128,
		Height: 128,
	},
	{
		Name:   "huge",
		Scale:  1000,
		Tilt:   tangram.DefaultTilt,
		Width:  128,
		Height: 128,
	},
}

var tiltCases = []TestCase{
	{
		Name:   "right_angle",
		Scale:  tangram.DefaultScale,
		Tilt:   90,
		Width:  128,
		Height: 128,
	},
	{
		Name:   "negative",
		Scale:  tangram.DefaultScale,
		Tilt:   -33,
		Width:  128,
		Height: 128,
	},
	{
		Name:   "upside_down",
		Scale:  tangram.DefaultScale,
		Tilt:   180,
		Width:  128,
		Height: 128,
	},
	{
		Name:   "full_turn",
		Scale:  tangram.DefaultScale,
		Tilt:   370,
		Width:  128,
		Height: 128,
	},
}

var canvasCases = []TestCase{
	{
		Name:   "wide",
		Scale:  tangram.DefaultScale,
		Tilt:   tangram.DefaultTilt,
		Width:  400,
		Height: 100,
	},
	{
		Name:   "tall",
		Scale:  tangram.DefaultScale,
		Tilt:   tangram.DefaultTilt,
		Width:  90,
		Height: 300,
	},
	{
		Name:   "small",
		Scale:  tangram.DefaultScale,
		Tilt:   tangram.DefaultTilt,
		Width:  12,
		Height: 12,
	},
	{
		Name:   "large",
		Scale:  tangram.DefaultScale,
		Tilt:   tangram.DefaultTilt,
		Width:  2000,
		Height: 2000,
	},
}
