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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"seehuhn.de/go/tangram"
)

const defaultTolerance = 1e-4

func newCheckCmd(o *options) *cobra.Command {
	tol := defaultTolerance

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the pieces touch without gaps or overlaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(tol > 0) {
				return fmt.Errorf("invalid tolerance %g", tol)
			}
			f, _, err := o.figure(cmd)
			if err != nil {
				return err
			}

			// tolerances are relative to the size of the figure
			abs := tol * f.Scale
			r := tangram.Inspect(f, abs)
			writeReport(cmd.OutOrStdout(), r, abs)

			if err := r.Err(abs); err != nil {
				loggerFromContext(cmd.Context()).Error("layout check failed")
				return err
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&tol, "tol", tol, "tolerance, relative to the global scale")

	return cmd
}

func writeReport(w io.Writer, r *tangram.Report, tol float64) {
	printTitle(w, "anchoring links")
	for _, c := range r.Links() {
		if c.Gap <= tol {
			printSuccess(w, "%s / %s touch, shared edge %.6f", c.A, c.B, c.Shared)
		} else {
			printError(w, "%s / %s gap %.3g", c.A, c.B, c.Gap)
		}
	}

	printTitle(w, "overlaps")
	overlaps := 0
	for _, c := range r.Pairs {
		if c.Overlap > tol*tol {
			printError(w, "%s / %s overlap %.3g", c.A, c.B, c.Overlap)
			overlaps++
		}
	}
	if overlaps == 0 {
		printSuccess(w, "none among %d pairs", len(r.Pairs))
	}
	printDetail(w, "total area %.6f", r.Area)
}
