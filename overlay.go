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

	"seehuhn.de/go/geom/vec"
)

// Segment is a line segment in the canvas-centered frame.
type Segment struct {
	A, B vec.Vec2
}

// FieldOverlay returns one short tick per field cell, starting at
// the cell position and oriented along its flow direction, for
// debugging the field. The tick length is 0.75 × the grid spacing.
//
// The field is built by Render; calling FieldOverlay before the
// first pass returns nil.
func (r *Renderer) FieldOverlay() []Segment {
	f := r.field
	if f == nil {
		return nil
	}

	const tickLen = 0.75 * gridSpacing
	ticks := make([]Segment, 0, len(f.cells))
	for i := range f.cells {
		cell := &f.cells[i]
		dir := vec.Vec2{
			X: math.Cos(cell.angle) * tickLen,
			Y: math.Sin(cell.angle) * tickLen,
		}
		ticks = append(ticks, Segment{A: cell.pos, B: cell.pos.Add(dir)})
	}
	return ticks
}
