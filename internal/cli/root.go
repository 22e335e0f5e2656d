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
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/tangram"
)

// options holds the flags shared by all commands.
type options struct {
	verbose    bool
	configFile string
	flags      config // values given on the command line
}

// NewRootCommand returns the tangram command with all subcommands.
func NewRootCommand() *cobra.Command {
	opts := &options{flags: defaultConfig()}

	root := &cobra.Command{
		Use:          "tangram",
		Short:        "Lay out the seven tangram pieces",
		Long:         `tangram computes where the seven pieces of a tangram go to form the dragon figure, draws the result and checks that the pieces fit.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&opts.configFile, "config", "", "TOML file with presentation parameters")
	pf.Float64Var(&opts.flags.Scale, "scale", opts.flags.Scale, "global scale")
	pf.Float64Var(&opts.flags.Tilt, "tilt", opts.flags.Tilt, "global tilt in degrees")

	root.AddCommand(newLayoutCmd(opts))
	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newCheckCmd(opts))

	return root
}

// Execute runs the tangram command line with the arguments of the process.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// resolve combines defaults, config file and command line flags.
func (o *options) resolve(cmd *cobra.Command) (config, error) {
	logger := loggerFromContext(cmd.Context())

	cfg := defaultConfig()
	if o.configFile != "" {
		if err := loadConfig(o.configFile, &cfg); err != nil {
			return cfg, err
		}
		logger.Debug("loaded config", "file", o.configFile)
	}
	cfg.override(cmd.Flags(), &o.flags)
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// figure lays out the tangram for the resolved configuration.
func (o *options) figure(cmd *cobra.Command) (*tangram.Figure, config, error) {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return nil, cfg, err
	}
	if err := cmd.Context().Err(); err != nil {
		return nil, cfg, err
	}

	f, err := tangram.Layout(tangram.StandardShapes(), cfg.rules())
	if err != nil {
		return nil, cfg, err
	}
	loggerFromContext(cmd.Context()).Debug("layout computed",
		"scale", cfg.Scale, "tilt", cfg.Tilt,
		"square", f.Measures.SquareSide, "large", f.Measures.Large.Side)
	return f, cfg, nil
}
