package dualmesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dualmesh "github.com/redblobgames/2513-mapgen4-csharp"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/boundary"
)

func TestNewMapFromConfig_BuildsAVerifiedMesh(t *testing.T) {
	cfg := dualmesh.NewConfig(287, boundary.Rect{Left: 0, Top: 0, Width: 500, Height: 500}, 40)
	m, err := dualmesh.NewMapFromConfig(cfg)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.NoError(t, m.Verify())
	assert.Greater(t, m.Mesh.NumSolidRegions(), 0)
	assert.Equal(t, len(m.Terrain.ElevationR), m.Mesh.NumSolidRegions())
}

func TestNewMapFromConfig_Deterministic(t *testing.T) {
	bounds := boundary.Rect{Left: 0, Top: 0, Width: 400, Height: 400}

	cfgA := dualmesh.NewConfig(287, bounds, 40)
	a, err := dualmesh.NewMapFromConfig(cfgA)
	require.NoError(t, err)

	cfgB := dualmesh.NewConfig(287, bounds, 40)
	b, err := dualmesh.NewMapFromConfig(cfgB)
	require.NoError(t, err)

	require.Equal(t, len(a.Terrain.ElevationR), len(b.Terrain.ElevationR))
	for r := range a.Terrain.ElevationR {
		assert.Equal(t, a.Terrain.ElevationR[r], b.Terrain.ElevationR[r])
	}
}
