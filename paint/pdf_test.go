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

package paint

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics/content"
	"seehuhn.de/go/pdf/graphics/content/builder"

	"seehuhn.de/go/tangram"
)

func TestWritePDF(t *testing.T) {
	f := defaultFigure(t)
	name := filepath.Join(t.TempDir(), "tangram.pdf")
	if err := WritePDF(name, f, 200, testExtent); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}

	if err := WritePDF(name, f, 0, testExtent); err == nil {
		t.Error("zero page size accepted")
	}
}

func TestPDFColours(t *testing.T) {
	f := defaultFigure(t)
	b := builder.New(content.Page, nil)
	drawPDF(b, f, 200, testExtent)
	if b.Err != nil {
		t.Fatal(b.Err)
	}

	var colours [][]float64
	fills := 0
	for _, op := range b.Stream {
		switch op.Name {
		case content.OpSetFillRGB:
			var rgb []float64
			for _, arg := range op.Args {
				x, ok := arg.(pdf.Number)
				if !ok {
					t.Fatalf("rg argument %v has type %T", arg, arg)
				}
				rgb = append(rgb, float64(x))
			}
			colours = append(colours, rgb)
		case content.OpFill:
			fills++
		}
	}

	// background plus one fill per piece
	if fills != tangram.NumPieces+1 {
		t.Errorf("%d fills, want %d", fills, tangram.NumPieces+1)
	}
	if len(colours) != tangram.NumPieces {
		t.Fatalf("%d RGB fill colours, want %d", len(colours), tangram.NumPieces)
	}
	for p := range tangram.Piece(tangram.NumPieces) {
		want := p.Color()
		got := colours[p]
		if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
			t.Errorf("%s: fill colour %v, want %v", p, got, want[:3])
		}
	}
}
