// Package delaunayadapter wraps github.com/fogleman/delaunay exactly the
// way meshSphere.go wraps it for the sphere's stereographic projection,
// translating flat points into delaunay.Point and its result back into the
// triangles[]/halfedges[] int slices mesh.NewDualMesh expects.
//
// The triangulator itself is someone else's problem: this adapter is a
// thin, separately testable seam, not a reimplementation.
package delaunayadapter

import (
	"fmt"

	"github.com/fogleman/delaunay"

	"github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"
)

// Triangulate runs the Delaunay triangulation over pts and returns the
// triangles[]/halfedges[] arrays in the convention
// mesh.AddGhostStructure/mesh.NewDualMesh expect: triangles has length 3T
// and gives, for side s, the region at which s begins; halfedges has the
// same length and gives, for side s, its opposite side, or -1 on the hull.
func Triangulate(pts []mesh.Point) (triangles, halfedges []int, err error) {
	if len(pts) < 3 {
		return nil, nil, fmt.Errorf("delaunayadapter: need at least 3 points, got %d", len(pts))
	}
	dpts := make([]delaunay.Point, len(pts))
	for i, p := range pts {
		dpts[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	tri, err := delaunay.Triangulate(dpts)
	if err != nil {
		return nil, nil, fmt.Errorf("delaunayadapter: triangulate: %w", err)
	}
	return tri.Triangles, tri.Halfedges, nil
}
