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

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"seehuhn.de/go/tangram"
)

const (
	defaultWidth  = 1000 // canvas width in pixels
	defaultHeight = 1000 // canvas height in pixels
	defaultExtent = 1.0  // half side of the visible square, in layout units
)

// config holds the presentation parameters.  Values are taken from the
// defaults, then from the config file, then from the command line.
type config struct {
	Scale  float64 `toml:"scale"`
	Tilt   float64 `toml:"tilt"`
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Extent float64 `toml:"extent"`
}

func defaultConfig() config {
	return config{
		Scale:  tangram.DefaultScale,
		Tilt:   tangram.DefaultTilt,
		Width:  defaultWidth,
		Height: defaultHeight,
		Extent: defaultExtent,
	}
}

// loadConfig reads a TOML file into cfg.  Keys missing from the file keep
// their previous values, unknown keys are an error.
func loadConfig(path string, cfg *config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// override copies the values of all flags set on the command line.
func (c *config) override(flags *pflag.FlagSet, set *config) {
	if flags.Changed("scale") {
		c.Scale = set.Scale
	}
	if flags.Changed("tilt") {
		c.Tilt = set.Tilt
	}
	if flags.Changed("width") {
		c.Width = set.Width
	}
	if flags.Changed("height") {
		c.Height = set.Height
	}
	if flags.Changed("extent") {
		c.Extent = set.Extent
	}
}

// validate checks the canvas parameters.  Scale and tilt are checked by
// the layout.
func (c *config) validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid canvas size %dx%d", c.Width, c.Height))
	}
	if !(c.Extent > 0) {
		errs = append(errs, fmt.Errorf("invalid extent %g", c.Extent))
	}
	return errors.Join(errs...)
}

// rules returns the proportion rules for the configured scale and tilt.
func (c *config) rules() *tangram.ProportionRules {
	return tangram.DefaultRules().WithScale(c.Scale).WithTilt(c.Tilt)
}
