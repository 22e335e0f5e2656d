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
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/tangram"
	"seehuhn.de/go/tangram/paint"
)

// outputFormat returns "png" or "pdf", depending on the file name
// extension.
func outputFormat(name string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".png":
		return "png", nil
	case ".pdf":
		return "pdf", nil
	default:
		return "", fmt.Errorf("unsupported output format %q (must be .png or .pdf)", ext)
	}
}

func newRenderCmd(o *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the figure into a PNG or PDF file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New("no output file given (use -o)")
			}
			format, err := outputFormat(output)
			if err != nil {
				return err
			}

			f, cfg, err := o.figure(cmd)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			switch format {
			case "png":
				err = writePNG(output, f, cfg)
			case "pdf":
				size := float64(min(cfg.Width, cfg.Height))
				err = paint.WritePDF(output, f, size, cfg.Extent)
			}
			if err != nil {
				return err
			}
			prog.done("Wrote " + output)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "output file, .png or .pdf")
	flags.IntVar(&o.flags.Width, "width", o.flags.Width, "canvas width in pixels")
	flags.IntVar(&o.flags.Height, "height", o.flags.Height, "canvas height in pixels")
	flags.Float64Var(&o.flags.Extent, "extent", o.flags.Extent, "half side of the visible square")

	return cmd
}

func writePNG(name string, f *tangram.Figure, cfg config) (err error) {
	c := paint.NewCanvas(cfg.Width, cfg.Height, cfg.Extent)
	c.Draw(f)

	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return c.WritePNG(out)
}
