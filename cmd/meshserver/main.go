// Command meshserver is an HTTP service that generates a map once at
// startup and serves rendered PNG tiles and a JSON mesh-stats endpoint,
// grounded on cmd/server/main.go (gorilla/mux router, package-level
// worldmap built once in main before ListenAndServe).
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"image/png"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	dualmesh "github.com/redblobgames/2513-mapgen4-csharp"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/boundary"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/render"
)

var worldmap *dualmesh.Map

var (
	seed      int64   = 12345
	width     float64 = 1000
	height    float64 = 1000
	spacing   float64 = 50
	windAngle float64 = 0
	addr      string  = ":3333"
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "world seed")
	flag.Float64Var(&width, "width", width, "map width")
	flag.Float64Var(&height, "height", height, "map height")
	flag.Float64Var(&spacing, "spacing", spacing, "point spacing")
	flag.Float64Var(&windAngle, "wind-angle", windAngle, "wind angle, in degrees")
	flag.StringVar(&addr, "addr", addr, "listen address")
}

func main() {
	flag.Parse()

	cfg := dualmesh.NewConfig(seed, boundary.Rect{Left: 0, Top: 0, Width: width, Height: height}, spacing)
	cfg.Terrain.WindAngleDeg = windAngle

	m, err := dualmesh.NewMapFromConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	worldmap = m

	router := mux.NewRouter()
	router.HandleFunc("/tile.png", tileHandler)
	router.HandleFunc("/stats", statsHandler)
	log.Fatal(http.ListenAndServe(addr, router))
}

func tileHandler(w http.ResponseWriter, r *http.Request) {
	img := render.DrawPNG(worldmap.Mesh, worldmap.Terrain, render.Options{
		Width:        int(width),
		Height:       int(height),
		Scale:        1,
		DrawRivers:   true,
		MinRiverFlow: 0.05,
	})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

type statsResponse struct {
	NumRegions        int `json:"num_regions"`
	NumSolidRegions   int `json:"num_solid_regions"`
	NumTriangles      int `json:"num_triangles"`
	NumSolidTriangles int `json:"num_solid_triangles"`
	NumSides          int `json:"num_sides"`
	NumSolidSides     int `json:"num_solid_sides"`
}

func statsHandler(w http.ResponseWriter, r *http.Request) {
	m := worldmap.Mesh
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(statsResponse{
		NumRegions:        m.NumRegions(),
		NumSolidRegions:   m.NumSolidRegions(),
		NumTriangles:      m.NumTriangles(),
		NumSolidTriangles: m.NumSolidTriangles(),
		NumSides:          m.NumSides(),
		NumSolidSides:     m.NumSolidSides(),
	})
}
