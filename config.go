// Package dualmesh builds a dual mesh from a planar Delaunay triangulation
// of a point set and runs the terrain pipeline on top of it, tying together
// internal/boundary, internal/delaunayadapter, internal/mesh and
// internal/terrain the way github.com/Flokey82/genworldvoronoi ties
// together its own mesh/geo/civ/bio layers behind a single NewMapFromConfig
// entry point (genworldvoronoi.go, config.go).
package dualmesh

import (
	"github.com/redblobgames/2513-mapgen4-csharp/internal/boundary"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/terrain"
)

// Config is the top-level configuration for building a Map, the planar
// analogue of the Config{GeoConfig, BioConfig, CivConfig} composition in
// config.go -- here composing the boundary/mesh shape parameters with
// terrain.Config.
type Config struct {
	Bounds  boundary.Rect
	Spacing float64
	// Jitter displaces interior (non-boundary) points by up to
	// +/- Jitter*Spacing/2 in each axis, the same role GeoConfig.Jitter plays
	// for MakeSphere's point distribution.
	Jitter float64

	Terrain *terrain.Config
}

// NewConfig returns a Config with sane default terrain parameters over the
// given rectangle and point spacing, the way NewConfig returns a Config
// with sane GeoConfig/BioConfig/CivConfig defaults.
func NewConfig(seed int64, bounds boundary.Rect, spacing float64) *Config {
	return &Config{
		Bounds:  bounds,
		Spacing: spacing,
		Jitter:  0.5,
		Terrain: terrain.NewConfig(seed),
	}
}
