package delaunayadapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redblobgames/2513-mapgen4-csharp/internal/delaunayadapter"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"
)

func TestTriangulate_Square(t *testing.T) {
	pts := []mesh.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	triangles, halfedges, err := delaunayadapter.Triangulate(pts)
	require.NoError(t, err)

	require.Zero(t, len(triangles)%3)
	require.Equal(t, len(triangles), len(halfedges))
	assert.NotEmpty(t, triangles)
}

func TestTriangulate_TooFewPoints(t *testing.T) {
	_, _, err := delaunayadapter.Triangulate([]mesh.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.Error(t, err)
}
