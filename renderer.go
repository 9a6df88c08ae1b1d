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
	"math/rand/v2"

	opensimplex "github.com/ojrac/opensimplex-go"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// randSource is the randomness used by the placer and stylizer.
// *rand.Rand satisfies it; tests may substitute a deterministic
// source.
type randSource interface {
	Float64() float64
	IntN(n int) int
}

// Renderer generates one batch of styled strokes from a parameter
// vector and a canvas size. Create one instance and reuse it for
// multiple passes: internal buffers grow as needed but never
// shrink.
//
// All geometry is in the canvas-centered frame: the origin is the
// canvas center and coordinates range over ±Width/2 and ±Height/2.
//
// A Renderer is not safe for concurrent use. Independent strokes
// within a pass share the occupancy index, so a pass cannot be
// parallelized as-is.
type Renderer struct {
	// Params is the parameter vector for the next pass.
	Params Params

	// Width and Height are the canvas size in canvas units.
	Width, Height float64

	// Seed makes a pass deterministic: it seeds both the noise
	// source and the placement RNG at the start of every pass.
	Seed uint64

	// Pass-scoped state, rebuilt by Render.
	field *Field
	occ   *occupancy
	rng   randSource

	// Internal buffers (reused across strokes and passes)
	raw    []vec.Vec2 // integrator output
	dashed []vec.Vec2 // dash segmentation output
	waved  []vec.Vec2 // oscillation output
	seeds  []vec.Vec2 // accepted seed points
}

// NewRenderer returns a Renderer for the given canvas size,
// parameter vector, and seed.
func NewRenderer(width, height float64, params Params, seed uint64) *Renderer {
	return &Renderer{
		Params: params,
		Width:  width,
		Height: height,
		Seed:   seed,
		occ:    newOccupancy(),
	}
}

// Reset prepares the Renderer for a pass with new settings,
// preserving internal buffer capacity. Equivalent to NewRenderer
// but without allocations once buffers are warm.
func (r *Renderer) Reset(width, height float64, params Params, seed uint64) {
	r.Params = params
	r.Width = width
	r.Height = height
	r.Seed = seed
	r.field = nil

	r.raw = r.raw[:0]
	r.dashed = r.dashed[:0]
	r.waved = r.waved[:0]
	r.seeds = r.seeds[:0]
}

// Render executes one full pass: it rebuilds the flow field,
// clears the occupancy index, and places up to Params.NumLines
// strokes. Previous pass state is fully discarded; calling Render
// twice with the same settings yields the same strokes.
//
// The result may hold fewer than Params.NumLines strokes if the
// attempt budget runs out; this is a normal outcome at high
// density settings, not an error.
func (r *Renderer) Render() []Stroke {
	r.beginPass()
	return r.placeStrokes(r.Params.NumLines)
}

// beginPass discards all pass-scoped state and rebuilds it from the
// current settings.
func (r *Renderer) beginPass() {
	noise := opensimplex.NewNormalized(int64(r.Seed))
	r.field = buildField(r.Width, r.Height, r.Params.Resolution, noise)
	r.occ.reset()
	r.rng = rand.New(rand.NewPCG(r.Seed, r.Seed))
}

// Bounds returns the canvas bounds in the canvas-centered frame.
func (r *Renderer) Bounds() rect.Rect {
	return rect.Rect{
		LLx: -r.Width / 2,
		LLy: -r.Height / 2,
		URx: r.Width / 2,
		URy: r.Height / 2,
	}
}
