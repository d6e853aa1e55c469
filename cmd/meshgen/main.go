// Command meshgen is a flag-driven one-shot map generator: it builds a dual
// mesh and terrain map, runs the structural checker over it, and optionally
// exports a PNG and/or a GeoJSON file. Grounded on cmd/runner.go (in
// github.com/Flokey82/genworldvoronoi), which takes the same shape (build
// once, then a set of exportFoo boolean toggles) with -cpuprofile/-memprofile
// flags this module does not need.
package main

import (
	"encoding/json"
	"flag"
	"image/png"
	"log"
	"os"

	dualmesh "github.com/redblobgames/2513-mapgen4-csharp"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/boundary"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/render"
)

func main() {
	seed := flag.Int64("seed", 287, "world seed")
	width := flag.Float64("width", 1000, "map width")
	height := flag.Float64("height", 1000, "map height")
	spacing := flag.Float64("spacing", 50, "point spacing")
	windAngle := flag.Float64("wind-angle", 0, "wind angle, in degrees")
	exportPNG := flag.String("export-png", "", "write a rendered PNG to this path")
	exportGeoJSON := flag.String("export-geojson", "", "write a GeoJSON FeatureCollection to this path")
	drawRivers := flag.Bool("rivers", true, "include rivers in PNG/GeoJSON export")
	flag.Parse()

	cfg := dualmesh.NewConfig(*seed, boundary.Rect{Left: 0, Top: 0, Width: *width, Height: *height}, *spacing)
	cfg.Terrain.WindAngleDeg = *windAngle

	m, err := dualmesh.NewMapFromConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := m.Verify(); err != nil {
		log.Println("mesh verification found issues:", err)
	}

	if *exportPNG != "" {
		img := render.DrawPNG(m.Mesh, m.Terrain, render.Options{
			Width:        int(*width),
			Height:       int(*height),
			Scale:        1,
			DrawRivers:   *drawRivers,
			MinRiverFlow: 0.05,
		})
		f, err := os.Create(*exportPNG)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			log.Fatal(err)
		}
		log.Println("wrote", *exportPNG)
	}

	if *exportGeoJSON != "" {
		fc := render.ExportGeoJSON(m.Mesh, m.Terrain, *drawRivers, 0.05)
		data, err := json.Marshal(fc)
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*exportGeoJSON, data, 0o644); err != nil {
			log.Fatal(err)
		}
		log.Println("wrote", *exportGeoJSON)
	}
}
