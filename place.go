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
	"seehuhn.de/go/geom/vec"
)

// placeStrokes samples candidate seed points and accumulates
// accepted strokes until count strokes are placed or the attempt
// budget (attemptFactor × count) is spent.
//
// A candidate is rejected if it lies within minSeedDistance of a
// previously accepted seed, if its occupancy bucket is already
// claimed, if integration yields fewer than minRawPoints points, or
// if stylization yields no segments. Rejections are normal
// outcomes; only the seed of an accepted stroke is recorded.
func (r *Renderer) placeStrokes(count int) []Stroke {
	r.seeds = r.seeds[:0]
	strokes := make([]Stroke, 0, max(count, 0))

	maxAttempts := attemptFactor * count
	attempts := 0
	for ; attempts < maxAttempts && len(strokes) < count; attempts++ {
		seed := vec.Vec2{
			X: (r.rng.Float64() - 0.5) * r.Width,
			Y: (r.rng.Float64() - 0.5) * r.Height,
		}
		if r.nearAcceptedSeed(seed) || r.occ.occupied(seed) {
			continue
		}

		raw := r.integrate(seed)
		if len(raw) < minRawPoints {
			continue
		}

		stroke := r.stylize(raw)
		if len(stroke.Segments) == 0 {
			continue
		}

		strokes = append(strokes, stroke)
		r.seeds = append(r.seeds, seed)
	}

	if len(strokes) < count {
		logger().Info("attempt budget exhausted",
			"requested", count,
			"placed", len(strokes),
			"attempts", attempts)
	} else {
		logger().Debug("pass complete",
			"placed", len(strokes),
			"attempts", attempts)
	}
	return strokes
}

// nearAcceptedSeed reports whether p lies within minSeedDistance of
// any previously accepted seed. A linear scan is fine here: the
// list holds at most NumLines entries.
func (r *Renderer) nearAcceptedSeed(p vec.Vec2) bool {
	for _, s := range r.seeds {
		if p.Sub(s).Length() < minSeedDistance {
			return true
		}
	}
	return false
}

const (
	// attemptFactor bounds the placement loop at attemptFactor
	// times the requested stroke count.
	attemptFactor = 3

	// minSeedDistance is the minimum distance between accepted
	// seed points in canvas units.
	minSeedDistance = 40
)
