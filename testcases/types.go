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

// Package testcases lists figure variants which are laid out, checked and
// drawn by the tests and by the helper commands.
package testcases

import (
	"seehuhn.de/go/tangram"
)

// TestCase defines a single figure variant.
type TestCase struct {
	Name   string  // lowercase a-z, 0-9 and _ only
	Scale  float64 // global scale
	Tilt   float64 // global tilt in degrees
	Width  int     // canvas width in pixels
	Height int     // canvas height in pixels
}

// Rules returns the proportion rules for the test case.
func (tc TestCase) Rules() *tangram.ProportionRules {
	return tangram.DefaultRules().WithScale(tc.Scale).WithTilt(tc.Tilt)
}

// Extent returns the half side, in layout units, of a view which shows
// the whole figure with some margin.
func (tc TestCase) Extent() float64 {
	return 1.5 * tc.Scale / tangram.DefaultScale
}
