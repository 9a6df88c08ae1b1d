package scenes

import "seehuhn.de/go/flowlines"

// All maps a category name to its scenes.
var All = map[string][]Scene{
	"basic":   basicScenes,
	"texture": textureScenes,
	"color":   colorScenes,
}

// base returns the default parameter vector.
func base() flowlines.Params {
	return flowlines.DefaultParams()
}

var basicScenes = []Scene{
	{
		Name:   "defaults",
		Width:  800,
		Height: 600,
		Seed:   1,
		Params: base(),
	},
	{
		Name:   "dense_small",
		Width:  400,
		Height: 300,
		Seed:   7,
		Params: func() flowlines.Params {
			p := base()
			p.NumLines = 200
			p.LineLength = 600
			return p
		}(),
	},
	{
		Name:   "field_overlay",
		Width:  400,
		Height: 400,
		Seed:   3,
		Params: func() flowlines.Params {
			p := base()
			p.NumLines = 20
			p.ShowField = true
			return p
		}(),
	},
}

var textureScenes = []Scene{
	// Solid oily strokes: no dashing, no oscillation.
	{
		Name:   "solid_oily",
		Width:  800,
		Height: 600,
		Seed:   11,
		Params: func() flowlines.Params {
			p := base()
			p.Oiliness = 0.9
			p.Sweet = 0
			return p
		}(),
	},
	// Dry broken strokes: short keep runs, long gaps, thin dry ink.
	{
		Name:   "dry_broken",
		Width:  800,
		Height: 600,
		Seed:   12,
		Params: func() flowlines.Params {
			p := base()
			p.Oiliness = 0.1
			p.SoupLevel = 0.1
			return p
		}(),
	},
	// Smooth sine waves.
	{
		Name:   "wavy_smooth",
		Width:  800,
		Height: 600,
		Seed:   13,
		Params: func() flowlines.Params {
			p := base()
			p.Sweet = 0.9
			p.Salt = 0.2
			return p
		}(),
	},
	// Rough triangle waves with a rectangular tip.
	{
		Name:   "wavy_rough",
		Width:  800,
		Height: 600,
		Seed:   14,
		Params: func() flowlines.Params {
			p := base()
			p.Sweet = 0.8
			p.Salt = 1.0
			return p
		}(),
	},
}

var colorScenes = []Scene{
	{
		Name:   "hue_blue",
		Width:  600,
		Height: 600,
		Seed:   21,
		Params: func() flowlines.Params {
			p := base()
			p.Spice = 0
			p.Acidity = 0
			return p
		}(),
	},
	{
		Name:   "hue_green",
		Width:  600,
		Height: 600,
		Seed:   22,
		Params: func() flowlines.Params {
			p := base()
			p.Spice = 0.5
			p.Acidity = 0
			return p
		}(),
	},
	{
		Name:   "hue_red_hot",
		Width:  600,
		Height: 600,
		Seed:   23,
		Params: func() flowlines.Params {
			p := base()
			p.Spice = 1
			p.Acidity = 1
			p.Temperature = 1
			return p
		}(),
	},
}
