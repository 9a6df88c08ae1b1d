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

// bucketKey identifies one occupancy bucket. Keys are derived by
// flooring coordinates; points outside the canvas are legal keys.
type bucketKey struct {
	x, y int
}

// occupancy is a coarse spatial hash recording which canvas regions
// already hold ink. It grows monotonically during one pass and is
// cleared between passes. Not safe for concurrent use.
type occupancy struct {
	buckets map[bucketKey]struct{}
}

func newOccupancy() *occupancy {
	return &occupancy{buckets: make(map[bucketKey]struct{})}
}

func bucketOf(p vec.Vec2) bucketKey {
	return bucketKey{
		x: int(math.Floor(p.X / bucketSize)),
		y: int(math.Floor(p.Y / bucketSize)),
	}
}

// occupied reports whether the bucket containing p is claimed.
func (o *occupancy) occupied(p vec.Vec2) bool {
	_, ok := o.buckets[bucketOf(p)]
	return ok
}

// mark claims the bucket containing p.
func (o *occupancy) mark(p vec.Vec2) {
	o.buckets[bucketOf(p)] = struct{}{}
}

// reset clears all buckets, keeping the map allocated.
func (o *occupancy) reset() {
	clear(o.buckets)
}

// bucketSize is the side length of one occupancy bucket in canvas
// units.
const bucketSize = 8
