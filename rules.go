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

package tangram

import (
	"maps"
	"math"
	"slices"
)

// Names of the entries of a proportion table.
const (
	RatioSquare         = "square"
	RatioSmallTriangle  = "small-triangle"
	RatioMediumTriangle = "medium-triangle"
	RatioParallelogram  = "parallelogram"
	RatioGlobalScale    = "global-scale"
	RatioGlobalTilt     = "global-tilt" // degrees
)

var ratioNames = []string{
	RatioSquare,
	RatioSmallTriangle,
	RatioMediumTriangle,
	RatioParallelogram,
	RatioGlobalScale,
	RatioGlobalTilt,
}

// Default values of the presentation parameters.
const (
	DefaultScale = 0.5
	DefaultTilt  = 10.0
)

// ProportionRules relates the size of every piece to the side of the large
// triangle.  The piece ratios are the defining proportions of the tangram;
// changing them breaks the figure.
//
// ProportionRules is immutable and safe for concurrent use.
type ProportionRules struct {
	table map[string]float64
}

// DefaultRules returns the tangram proportions with the default global
// scale and tilt.
func DefaultRules() *ProportionRules {
	return &ProportionRules{
		table: map[string]float64{
			RatioSquare:         0.5,
			RatioSmallTriangle:  0.5,
			RatioMediumTriangle: 1 / math.Sqrt2,
			RatioParallelogram:  0.5,
			RatioGlobalScale:    DefaultScale,
			RatioGlobalTilt:     DefaultTilt,
		},
	}
}

// NewProportionRules builds rules from an explicit table.  The table must
// contain exactly the six named ratios.  The values are not checked here;
// [Layout] rejects tables which lead to a degenerate figure.
func NewProportionRules(table map[string]float64) (*ProportionRules, error) {
	for _, name := range ratioNames {
		if _, ok := table[name]; !ok {
			return nil, &UnknownRatioError{Name: name, Missing: true}
		}
	}
	for name := range table {
		if !slices.Contains(ratioNames, name) {
			return nil, &UnknownRatioError{Name: name}
		}
	}
	return &ProportionRules{table: maps.Clone(table)}, nil
}

// Ratio returns the value of the named ratio.
func (r *ProportionRules) Ratio(name string) (float64, error) {
	v, ok := r.table[name]
	if !ok {
		return 0, &UnknownRatioError{Name: name}
	}
	return v, nil
}

// Scale returns the global scale factor.
func (r *ProportionRules) Scale() float64 {
	return r.table[RatioGlobalScale]
}

// Tilt returns the global tilt in degrees.
func (r *ProportionRules) Tilt() float64 {
	return r.table[RatioGlobalTilt]
}

// WithScale returns a copy of r with the global scale replaced.
func (r *ProportionRules) WithScale(scale float64) *ProportionRules {
	return r.with(RatioGlobalScale, scale)
}

// WithTilt returns a copy of r with the global tilt (in degrees) replaced.
func (r *ProportionRules) WithTilt(deg float64) *ProportionRules {
	return r.with(RatioGlobalTilt, deg)
}

func (r *ProportionRules) with(name string, v float64) *ProportionRules {
	table := maps.Clone(r.table)
	table[name] = v
	return &ProportionRules{table: table}
}
