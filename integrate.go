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

// integrate walks the flow field from seed and returns the visited
// points. Every visited point is marked in the occupancy index.
// The returned slice aliases an internal buffer and is only valid
// until the next call.
//
// The walk stops when the step budget is spent, when the next
// position would leave the canvas, or (after the first
// occupancyGraceSteps steps) usually when the next position lands
// on an occupied bucket. A result with fewer than minRawPoints
// points means no usable stroke.
func (r *Renderer) integrate(seed vec.Vec2) []vec.Vec2 {
	r.raw = r.raw[:0]

	maxSteps := int(math.Floor(r.Params.LineLength / r.Params.StepSize))
	base := r.Params.StepSize

	// Alternating step sizes give the stroke an irregular texture:
	// a run of long steps, then a run of short ones.
	step := base
	short := false
	runLeft := r.stepRunLength()

	pos := seed
	for i := range maxSteps {
		r.raw = append(r.raw, pos)
		r.occ.mark(pos)

		if runLeft == 0 {
			short = !short
			if short {
				step = base * shortStepFactor
			} else {
				step = base
			}
			runLeft = r.stepRunLength()
		}
		runLeft--

		angle := r.field.angleAt(pos)
		next := vec.Vec2{
			X: pos.X + math.Cos(angle)*step,
			Y: pos.Y + math.Sin(angle)*step,
		}

		if !r.inBounds(next) {
			break
		}
		if i >= occupancyGraceSteps && r.occ.occupied(next) &&
			r.rng.Float64() > occupancyEscapeProb {
			break
		}
		pos = next
	}
	return r.raw
}

// stepRunLength samples the number of steps until the next step-size
// swap, uniform in [3, 8).
func (r *Renderer) stepRunLength() int {
	return 3 + r.rng.IntN(5)
}

// inBounds reports whether p lies within the canvas-centered bounds.
func (r *Renderer) inBounds(p vec.Vec2) bool {
	b := r.Bounds()
	return p.X >= b.LLx && p.X <= b.URx &&
		p.Y >= b.LLy && p.Y <= b.URy
}

const (
	// shortStepFactor scales the base step size during short-step
	// runs.
	shortStepFactor = 0.25

	// occupancyGraceSteps is the number of initial steps during
	// which occupied buckets never terminate the walk.
	occupancyGraceSteps = 20

	// occupancyEscapeProb is the probability of continuing through
	// an occupied bucket after the grace period.
	occupancyEscapeProb = 0.4

	// minRawPoints is the minimum raw path length for a usable
	// stroke.
	minRawPoints = 3
)
