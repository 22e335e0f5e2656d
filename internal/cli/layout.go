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
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"seehuhn.de/go/tangram"
)

func newLayoutCmd(o *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the placement of every piece",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, _, err := o.figure(cmd)
			if err != nil {
				return err
			}
			if asJSON {
				return writeLayoutJSON(cmd.OutOrStdout(), f)
			}
			writeLayoutText(cmd.OutOrStdout(), f)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the placements as JSON")

	return cmd
}

func writeLayoutText(w io.Writer, f *tangram.Figure) {
	printTitle(w, "tangram, scale %g, tilt %g°", f.Scale, f.Tilt)
	for _, pl := range f.Placements {
		fmt.Fprintf(w, "%-21s %-14s offset (%9.6f, %9.6f)  angle %6.1f  scale %.6f\n",
			pl.Piece, pl.Kind, pl.Offset.X, pl.Offset.Y, pl.Angle, pl.Scale)
	}
}

// jsonPlacement is the record handed to a renderer for one piece.
type jsonPlacement struct {
	Piece     string      `json:"piece"`
	Kind      string      `json:"kind"`
	Offset    [2]float64  `json:"offset"`
	Angle     float64     `json:"angle"`
	Scale     float64     `json:"scale"`
	Transform [16]float64 `json:"transform"`
	Color     [4]float64  `json:"color"`
}

func writeLayoutJSON(w io.Writer, f *tangram.Figure) error {
	out := make([]jsonPlacement, 0, len(f.Placements))
	for _, pl := range f.Placements {
		out = append(out, jsonPlacement{
			Piece:     pl.Piece.String(),
			Kind:      pl.Kind.String(),
			Offset:    [2]float64{pl.Offset.X, pl.Offset.Y},
			Angle:     pl.Angle,
			Scale:     pl.Scale,
			Transform: pl.Transform,
			Color:     pl.Color,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
