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

package flowlines_test

import (
	"maps"
	"reflect"
	"slices"
	"testing"

	"seehuhn.de/go/flowlines"
	"seehuhn.de/go/flowlines/scenes"
)

// checkStrokes verifies the structural invariants every pass must
// satisfy: the stroke count respects the target, every segment has
// at least two points, and no point strays further from the canvas
// than the oscillation amplitude allows.
func checkStrokes(t *testing.T, strokes []flowlines.Stroke, sc scenes.Scene) {
	t.Helper()

	if len(strokes) > sc.Params.NumLines {
		t.Errorf("placed %d strokes, target was %d", len(strokes), sc.Params.NumLines)
	}

	// The integrator keeps points inside the canvas; oscillation may
	// push them out by at most its amplitude.
	slack := 4 * remapClamped(sc.Params.Sweet, 0, 1, 0, 3)
	maxX := sc.Width/2 + slack
	maxY := sc.Height/2 + slack

	for i, s := range strokes {
		if len(s.Segments) == 0 {
			t.Fatalf("stroke %d has no segments", i)
		}
		for j, seg := range s.Segments {
			if len(seg) < 2 {
				t.Fatalf("stroke %d segment %d has %d points", i, j, len(seg))
			}
			for _, p := range seg {
				if p.X < -maxX || p.X > maxX || p.Y < -maxY || p.Y > maxY {
					t.Fatalf("stroke %d: point %v outside canvas (slack %g)",
						i, p, slack)
				}
			}
		}
	}
}

func remapClamped(v, inLo, inHi, outLo, outHi float64) float64 {
	if v < inLo {
		v = inLo
	} else if v > inHi {
		v = inHi
	}
	return outLo + (v-inLo)/(inHi-inLo)*(outHi-outLo)
}

func TestScenes(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(scenes.All)) {
		for _, sc := range scenes.All[category] {
			t.Run(category+"_"+sc.Name, func(t *testing.T) {
				checkStrokes(t, sc.Render(), sc)
			})
		}
	}
}

func TestRenderDefaults(t *testing.T) {
	sc := scenes.Scene{
		Name:   "defaults",
		Width:  800,
		Height: 600,
		Seed:   42,
		Params: flowlines.DefaultParams(),
	}
	strokes := sc.Render()
	if len(strokes) == 0 {
		t.Fatal("default parameters placed no strokes")
	}
	checkStrokes(t, strokes, sc)
}

func TestRenderSolidStrokes(t *testing.T) {
	// With no oscillation and oily solid lines, every stroke stays a
	// single segment: integrator steps are at most the base step
	// size, far below the 10-unit gap threshold.
	p := flowlines.DefaultParams()
	p.Sweet = 0
	p.Oiliness = 0.9

	sc := scenes.Scene{Width: 800, Height: 600, Seed: 5, Params: p}
	strokes := sc.Render()
	if len(strokes) == 0 {
		t.Fatal("no strokes placed")
	}
	for i, s := range strokes {
		if len(s.Segments) != 1 {
			t.Errorf("stroke %d has %d segments, want 1", i, len(s.Segments))
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	p := flowlines.DefaultParams()
	p.NumLines = 30

	r := flowlines.NewRenderer(400, 300, p, 99)
	first := r.Render()
	second := r.Render()
	if !reflect.DeepEqual(first, second) {
		t.Error("two passes with the same settings differ")
	}

	r2 := flowlines.NewRenderer(400, 300, p, 100)
	other := r2.Render()
	if reflect.DeepEqual(first, other) {
		t.Error("different seeds produced identical output")
	}
}

func TestRendererBounds(t *testing.T) {
	r := flowlines.NewRenderer(800, 600, flowlines.DefaultParams(), 1)
	b := r.Bounds()
	if b.LLx != -400 || b.URx != 400 || b.LLy != -300 || b.URy != 300 {
		t.Errorf("bounds %v, want x in ±400 and y in ±300", b)
	}
}

func TestRendererReset(t *testing.T) {
	p := flowlines.DefaultParams()
	p.NumLines = 20

	fresh := flowlines.NewRenderer(400, 300, p, 7)
	want := fresh.Render()

	reused := flowlines.NewRenderer(800, 600, flowlines.DefaultParams(), 1)
	reused.Render()
	reused.Reset(400, 300, p, 7)
	got := reused.Render()

	if !reflect.DeepEqual(got, want) {
		t.Error("reset renderer differs from a fresh one")
	}
}
