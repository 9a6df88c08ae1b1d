// Command genpng renders every scene to a PNG using the raster
// preview package.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

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
			pngPath := filepath.Join(*outDir, name+".png")
			if err := writePNG(sc, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writePNG(sc scenes.Scene, pngPath string) (err error) {
	r := flowlines.NewRenderer(sc.Width, sc.Height, sc.Params, sc.Seed)
	strokes := r.Render()

	canvas := raster.NewCanvas(int(sc.Width), int(sc.Height), sc.Params.Background)
	if sc.Params.ShowField {
		canvas.DrawTicks(r.FieldOverlay())
	}
	canvas.DrawStrokes(strokes)

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, canvas.Image())
}
