package dualmesh

import (
	"fmt"
	"math/rand"

	"github.com/redblobgames/2513-mapgen4-csharp/internal/boundary"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/check"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/delaunayadapter"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/terrain"
)

// Map is a built dual mesh plus the terrain state layered on top of it, the
// planar analogue of Map (tiles.go/geo.go in
// github.com/Flokey82/genworldvoronoi), minus the civ/bio/species layers
// this module deliberately leaves out of scope.
type Map struct {
	Mesh    *mesh.DualMesh
	Terrain *terrain.Map
}

// NewMapFromConfig builds the boundary point rings (internal/boundary),
// triangulates them (internal/delaunayadapter), closes the result into a
// dual mesh (internal/mesh), and runs the terrain pipeline
// (internal/terrain) over it -- the same seed-in, fully-built-map-out shape
// as NewMapFromConfig(seed, cfg), minus the plate/civ/bio stages this
// module leaves out of scope.
func NewMapFromConfig(cfg *Config) (*Map, error) {
	interior, exterior, numBoundary := boundary.Generate(cfg.Bounds, cfg.Spacing)

	rnd := rand.New(rand.NewSource(cfg.Terrain.Seed))
	innerBounds := boundary.Rect{
		Left:   cfg.Bounds.Left + cfg.Spacing,
		Top:    cfg.Bounds.Top + cfg.Spacing,
		Width:  cfg.Bounds.Width - 2*cfg.Spacing,
		Height: cfg.Bounds.Height - 2*cfg.Spacing,
	}
	interiorFill := boundary.PoissonDisc(innerBounds, cfg.Spacing, rnd)

	points := make([]mesh.Point, 0, len(interior)+len(interiorFill)+len(exterior))
	points = append(points, interior...)
	points = append(points, interiorFill...)
	points = append(points, exterior...)
	points = boundary.Jitter(points, numBoundary, cfg.Spacing, cfg.Jitter, rnd.Float64)

	triangles, halfedges, err := delaunayadapter.Triangulate(points)
	if err != nil {
		return nil, fmt.Errorf("dualmesh: triangulate: %w", err)
	}

	m, err := mesh.NewDualMesh(points, numBoundary, triangles, halfedges)
	if err != nil {
		return nil, fmt.Errorf("dualmesh: build mesh: %w", err)
	}

	tm := terrain.NewMap(m, cfg.Terrain)

	return &Map{Mesh: m, Terrain: tm}, nil
}

// Verify runs the structural-invariant checker (internal/check) over the
// map's mesh, for an embedding shell to call once after construction.
func (mp *Map) Verify() error {
	return check.Verify(mp.Mesh)
}
