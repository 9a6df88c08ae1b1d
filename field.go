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

package flowlines

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"seehuhn.de/go/geom/vec"
)

// fieldCell is one cell of the flow field: a position in the
// canvas-centered frame and a travel direction.
type fieldCell struct {
	pos   vec.Vec2
	angle float64 // 0 or π
}

// Field is a discrete grid of flow directions covering the canvas.
// Cells are spaced gridSpacing units apart. A Field is read-only
// after construction.
type Field struct {
	cells         []fieldCell // column-major: cells[c*rows+r]
	cols, rows    int
	width, height float64
}

// buildField samples the noise source on a regular grid and maps
// each value to a binary direction: values above 0.5 flow right
// (angle 0), the rest flow left (angle π).
//
// The noise offsets accumulate by resolution per column and per row.
// For a stationary noise function this equals c*resolution and
// r*resolution, but the accumulation order is kept so that results
// match across grid sizes.
func buildField(width, height, resolution float64, noise opensimplex.Noise) *Field {
	cols := int(math.Floor(width/gridSpacing)) + 1
	rows := int(math.Floor(height/gridSpacing)) + 1

	f := &Field{
		cells:  make([]fieldCell, cols*rows),
		cols:   cols,
		rows:   rows,
		width:  width,
		height: height,
	}

	noiseX := 0.0
	for c := range cols {
		noiseY := 0.0
		for r := range rows {
			angle := 0.0
			if noise.Eval2(noiseX, noiseY) <= 0.5 {
				angle = math.Pi
			}
			f.cells[c*rows+r] = fieldCell{
				pos:   f.cellPos(c, r),
				angle: angle,
			}
			noiseY += resolution
		}
		noiseX += resolution
	}
	return f
}

// Cols returns the number of grid columns.
func (f *Field) Cols() int { return f.cols }

// Rows returns the number of grid rows.
func (f *Field) Rows() int { return f.rows }

// cellPos returns the canvas-centered position of cell (c, r).
func (f *Field) cellPos(c, r int) vec.Vec2 {
	return vec.Vec2{
		X: float64(c)*gridSpacing - f.width/2,
		Y: float64(r)*gridSpacing - f.height/2,
	}
}

// cellIndex converts a canvas-centered point to grid indices,
// clamped to the grid. This is the single place where the centered
// frame meets the grid's top-left indexing.
func (f *Field) cellIndex(p vec.Vec2) (c, r int) {
	c = int(math.Floor((p.X + f.width/2) / gridSpacing))
	r = int(math.Floor((p.Y + f.height/2) / gridSpacing))
	c = max(0, min(c, f.cols-1))
	r = max(0, min(r, f.rows-1))
	return c, r
}

// angleAt returns the flow direction at a canvas-centered point.
func (f *Field) angleAt(p vec.Vec2) float64 {
	c, r := f.cellIndex(p)
	idx := c*f.rows + r
	if idx < 0 || idx >= len(f.cells) {
		return 0
	}
	return f.cells[idx].angle
}

// gridSpacing is the distance between adjacent field cells in
// canvas units.
const gridSpacing = 10
