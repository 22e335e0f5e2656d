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
	"math"
	"testing"

	"github.com/spf13/pflag"

	"seehuhn.de/go/tangram"
)

func TestLoadConfigPartial(t *testing.T) {
	path := writeFile(t, "partial.toml", "# only the canvas\nwidth = 320\nextent = 2.5\n")

	cfg := defaultConfig()
	if err := loadConfig(path, &cfg); err != nil {
		t.Fatal(err)
	}
	want := defaultConfig()
	want.Width = 320
	want.Extent = 2.5
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestOverride(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	set := defaultConfig()
	flags.Float64Var(&set.Tilt, "tilt", set.Tilt, "")
	flags.IntVar(&set.Height, "height", set.Height, "")
	if err := flags.Parse([]string{"--tilt", "-20"}); err != nil {
		t.Fatal(err)
	}

	cfg := defaultConfig()
	cfg.Height = 17 // from a config file
	cfg.override(flags, &set)
	if cfg.Tilt != -20 {
		t.Errorf("tilt %g, want -20", cfg.Tilt)
	}
	if cfg.Height != 17 {
		t.Errorf("unset flag overrode the config file: height %d", cfg.Height)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*config)
		wantErr bool
	}{
		{"defaults", func(*config) {}, false},
		{"zero width", func(c *config) { c.Width = 0 }, true},
		{"negative height", func(c *config) { c.Height = -1 }, true},
		{"zero extent", func(c *config) { c.Extent = 0 }, true},
		{"nan extent", func(c *config) { c.Extent = math.NaN() }, true},
		{"odd tilt", func(c *config) { c.Tilt = 1000 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(&cfg)
			if err := cfg.validate(); (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigRules(t *testing.T) {
	cfg := defaultConfig()
	cfg.Scale = 4
	r := cfg.rules()
	if r.Scale() != 4 || r.Tilt() != tangram.DefaultTilt {
		t.Errorf("rules scale %g tilt %g", r.Scale(), r.Tilt())
	}
}
