package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"
)

// A single triangle has a hull of 3 unpaired sides, so ghost closure must
// append exactly one ghost region and 3 ghost triangles (k=3).
func TestAddGhostStructure_SingleTriangle(t *testing.T) {
	pts := []mesh.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	triangles := []int{0, 1, 2}
	halfedges := []int{-1, -1, -1}

	newPts, newTriangles, newHalfedges, err := mesh.AddGhostStructure(pts, triangles, halfedges)
	require.NoError(t, err)

	require.Len(t, newPts, 4) // +1 ghost region
	require.Len(t, newTriangles, 3+3*3)
	require.Len(t, newHalfedges, 3+3*3)

	for s, opp := range newHalfedges {
		require.GreaterOrEqual(t, opp, 0, "side %d unpaired", s)
		assert.Equal(t, s, newHalfedges[opp])
	}

	ghostRegion := 3
	seen := 0
	for s := 3; s < len(newTriangles); s += 3 {
		if newTriangles[s+2] == ghostRegion {
			seen++
		}
	}
	assert.Equal(t, 3, seen, "every ghost triangle's third vertex should be the ghost region")
}

func TestAddGhostStructure_TwoTriangles(t *testing.T) {
	pts := []mesh.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	triangles := []int{0, 1, 2, 1, 3, 2}
	halfedges := []int{-1, 5, -1, -1, -1, 1}

	newPts, newTriangles, newHalfedges, err := mesh.AddGhostStructure(pts, triangles, halfedges)
	require.NoError(t, err)
	require.Len(t, newPts, 5)
	require.Greater(t, len(newTriangles), len(triangles))
	for s, opp := range newHalfedges {
		assert.GreaterOrEqual(t, opp, 0, "side %d", s)
		assert.Equal(t, s, newHalfedges[opp])
	}
}
