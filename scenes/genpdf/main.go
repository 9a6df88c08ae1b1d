// seehuhn.de/go/flowlines - generative flow-field line art
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

// Command genpdf renders every scene to a single-page vector PDF.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/flowlines"
	"seehuhn.de/go/flowlines/raster"
	"seehuhn.de/go/flowlines/scenes"
)

var outDir = flag.String("dir", "out", "output directory")

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(scenes.All)) {
		for _, sc := range scenes.All[category] {
			name := category + "_" + sc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			if err := writePDF(sc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writePDF(sc scenes.Scene, pdfPath string) error {
	r := flowlines.NewRenderer(sc.Width, sc.Height, sc.Params, sc.Seed)
	strokes := r.Render()

	paper := &pdf.Rectangle{
		URx: sc.Width,
		URy: sc.Height,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Paint the background first.
	bgR, bgG, bgB := raster.RGB(sc.Params.Background)
	page.SetFillColor(color.DeviceRGB{bgR, bgG, bgB})
	page.Rectangle(0, 0, sc.Width, sc.Height)
	page.Fill()

	// Strokes live in the canvas-centered frame with y pointing
	// down; the PDF origin is the bottom-left corner.
	page.Transform(matrix.Matrix{1, 0, 0, -1, sc.Width / 2, sc.Height / 2})

	if sc.Params.ShowField {
		page.SetStrokeColor(color.DeviceGray(0.6))
		page.SetLineWidth(0.5)
		for _, tick := range r.FieldOverlay() {
			page.MoveTo(tick.A.X, tick.A.Y)
			page.LineTo(tick.B.X, tick.B.Y)
		}
		page.Stroke()
	}

	for _, s := range strokes {
		cr, cg, cb := raster.RGB(s.Style.Color)
		page.SetStrokeColor(color.DeviceRGB{cr, cg, cb})
		page.SetLineWidth(s.Style.Width)
		if s.Style.Tip == flowlines.TipRound {
			page.SetLineCap(graphics.LineCapRound)
		} else {
			page.SetLineCap(graphics.LineCapSquare)
		}

		// All segments of one stroke share a paint operation.
		for _, seg := range s.Segments {
			page.MoveTo(seg[0].X, seg[0].Y)
			for _, p := range seg[1:] {
				page.LineTo(p.X, p.Y)
			}
		}
		page.Stroke()
	}

	return page.Close()
}
