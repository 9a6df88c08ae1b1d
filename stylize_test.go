package flowlines

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// fixedRand is a randSource returning constant values, for style
// tests that must be deterministic.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }
func (f fixedRand) IntN(n int) int   { return 0 }

func line(n int, step float64) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		pts[i] = vec.Vec2{X: float64(i) * step}
	}
	return pts
}

func TestDashIdentityWhenOily(t *testing.T) {
	p := DefaultParams()
	p.Oiliness = 0.7
	r := NewRenderer(800, 600, p, 1)

	in := line(50, 6)
	out := r.applyDash(in)
	if len(out) != len(in) {
		t.Fatalf("got %d points, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("point %d changed: %v != %v", i, out[i], in[i])
		}
	}
}

func TestDashRuns(t *testing.T) {
	// At oiliness 0 the keep run is 5 and the drop run is 3:
	// indices 0-4, 8-12, 16-20, ... survive.
	p := DefaultParams()
	p.Oiliness = 0
	r := NewRenderer(800, 600, p, 1)

	in := line(20, 1)
	out := r.applyDash(in)

	var want []float64
	for i := 0; i < 20; i += 8 {
		for k := i; k < min(i+5, 20); k++ {
			want = append(want, float64(k))
		}
	}
	if len(out) != len(want) {
		t.Fatalf("got %d points, want %d", len(out), len(want))
	}
	for i, x := range want {
		if out[i].X != x {
			t.Errorf("point %d: got x=%g, want %g", i, out[i].X, x)
		}
	}
}

func TestDashShortensWithLowOiliness(t *testing.T) {
	in := line(200, 1)

	count := func(oil float64) int {
		p := DefaultParams()
		p.Oiliness = oil
		r := NewRenderer(800, 600, p, 1)
		return len(r.applyDash(in))
	}

	if count(0.1) >= count(0.6) {
		t.Error("lower oiliness should drop more points")
	}
}

func TestWaveIdentityWhenNotSweet(t *testing.T) {
	p := DefaultParams()
	p.Sweet = 0.1
	r := NewRenderer(800, 600, p, 1)

	in := line(50, 6)
	out := r.applyWave(in)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("point %d changed: %v != %v", i, out[i], in[i])
		}
	}
}

func TestWaveDisplacementBounded(t *testing.T) {
	for _, sweet := range []float64{0.2, 0.5, 1.0} {
		p := DefaultParams()
		p.Sweet = sweet
		r := NewRenderer(800, 600, p, 1)

		in := line(100, 6)
		out := r.applyWave(in)

		bound := 4 * remap(sweet, 0, 1, 0, 3)
		for i := range in {
			d := out[i].Sub(in[i]).Length()
			if d > bound+1e-9 {
				t.Fatalf("sweet=%g: point %d displaced by %g, bound %g",
					sweet, i, d, bound)
			}
		}
	}
}

func TestWaveDisplacesPerpendicular(t *testing.T) {
	// On a horizontal line the perpendicular is vertical, so x
	// coordinates must be untouched.
	p := DefaultParams()
	p.Sweet = 0.8
	r := NewRenderer(800, 600, p, 1)

	in := line(100, 6)
	out := r.applyWave(in)
	moved := false
	for i := range in {
		if out[i].X != in[i].X {
			t.Fatalf("point %d moved along the tangent", i)
		}
		if out[i].Y != in[i].Y {
			moved = true
		}
	}
	if !moved {
		t.Error("no point was displaced")
	}
}

func TestSplitSegments(t *testing.T) {
	pts := []vec.Vec2{
		{X: 0}, {X: 5}, {X: 9},
		{X: 50}, {X: 55}, // gap of 41 before this run
		{X: 200}, // isolated point, dropped
	}
	segs := splitSegments(pts)
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2", len(segs))
	}
	if len(segs[0]) != 3 || len(segs[1]) != 2 {
		t.Fatalf("segment lengths %d, %d; want 3, 2", len(segs[0]), len(segs[1]))
	}

	// Concatenating all segments plus dropped points reconstructs
	// the input in order.
	var all []vec.Vec2
	for _, s := range segs {
		if len(s) < 2 {
			t.Fatal("segment with fewer than 2 points emitted")
		}
		all = append(all, s...)
	}
	all = append(all, pts[len(pts)-1]) // the dropped isolated point
	for i := range pts {
		if all[i] != pts[i] {
			t.Fatalf("point %d: got %v, want %v", i, all[i], pts[i])
		}
	}
}

func TestSplitSegmentsDegenerate(t *testing.T) {
	if segs := splitSegments(nil); segs != nil {
		t.Error("nil input should yield no segments")
	}
	if segs := splitSegments(line(1, 1)); segs != nil {
		t.Error("single point should yield no segments")
	}
}

func TestBaseHue(t *testing.T) {
	cases := []struct{ spice, hue float64 }{
		{0, 240},
		{0.5, 120},
		{1, 0},
	}
	for _, c := range cases {
		if got := baseHue(c.spice); math.Abs(got-c.hue) > 1e-9 {
			t.Errorf("baseHue(%g) = %g, want %g", c.spice, got, c.hue)
		}
	}
}

func TestResolveStyle(t *testing.T) {
	p := DefaultParams()
	p.Spice = 0.5
	p.Acidity = 0
	p.Temperature = 0.5
	p.SoupLevel = 0.5
	p.Salt = 0.3

	// fixedRand(0.5) makes the hue jitter zero.
	style := resolveStyle(p, fixedRand(0.5))

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"hue", style.Color.H, 120},
		{"saturation", style.Color.S, 50},
		{"brightness", style.Color.B, 97.5},
		{"alpha", style.Color.A, 85},
		{"width", style.Width, 15},
		{"vibration", style.Vibration, 1.5},
		{"pressure[0]", style.Pressure[0], remap(0.3, 0, 1, 0.35, 3)},
		{"pressure[1]", style.Pressure[1], remap(0.3, 0, 1, 0.25, 0.5)},
		{"definition", style.Definition, 0.55},
		{"quality", style.Quality, 1.5},
		{"opacity", style.Opacity, 135},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %g, want %g", c.name, c.got, c.want)
		}
	}
	if style.PressureRange != [2]float64{0.8, 1} {
		t.Errorf("pressure range = %v, want [0.8, 1]", style.PressureRange)
	}
	if style.Tip != TipRound {
		t.Errorf("tip = %v, want round at salt 0.3", style.Tip)
	}
	if style.Rotation != RotationFollow {
		t.Errorf("rotation = %v, want follow at salt 0.3", style.Rotation)
	}
}

func TestResolveStyleTipSelection(t *testing.T) {
	cases := []struct {
		salt     float64
		tip      TipShape
		rotation RotationMode
	}{
		{0.2, TipRound, RotationFollow},
		{0.45, TipRectangle, RotationFollow},
		{0.6, TipRectangle, RotationNone},
		{1.0, TipRectangle, RotationNone},
	}
	for _, c := range cases {
		p := DefaultParams()
		p.Salt = c.salt
		style := resolveStyle(p, fixedRand(0.5))
		if style.Tip != c.tip {
			t.Errorf("salt=%g: tip %v, want %v", c.salt, style.Tip, c.tip)
		}
		if style.Rotation != c.rotation {
			t.Errorf("salt=%g: rotation %v, want %v", c.salt, style.Rotation, c.rotation)
		}
	}

	// The custom tip ratio grows from 0.5 to 1.5 across the salt
	// range; it never reaches the ellipse threshold.
	p := DefaultParams()
	p.Salt = 1
	if style := resolveStyle(p, fixedRand(0.5)); style.TipRatio != 1.5 {
		t.Errorf("tip ratio at salt 1 = %g, want 1.5", style.TipRatio)
	}
}

func TestHueJitterRange(t *testing.T) {
	p := DefaultParams()
	p.Spice = 0.5 // base hue 120
	p.Acidity = 1 // variance 30

	for _, f := range []float64{0, 0.25, 0.75, 1} {
		style := resolveStyle(p, fixedRand(f))
		d := math.Abs(style.Color.H - 120)
		if d > 30+1e-9 {
			t.Errorf("rand=%g: hue %g is more than 30 from base", f, style.Color.H)
		}
	}
}

func TestHueWrapsAround(t *testing.T) {
	p := DefaultParams()
	p.Spice = 1 // base hue 0
	p.Acidity = 1

	// rand 0 gives jitter -30, so the hue must wrap to 330.
	style := resolveStyle(p, fixedRand(0))
	if math.Abs(style.Color.H-330) > 1e-9 {
		t.Errorf("hue = %g, want 330", style.Color.H)
	}
}
