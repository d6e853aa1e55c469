package terrain_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redblobgames/2513-mapgen4-csharp/internal/delaunayadapter"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/terrain"
)

func buildMesh(t *testing.T, n int, w, h float64, seed int64) *mesh.DualMesh {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))
	pts := make([]mesh.Point, n)
	for i := range pts {
		pts[i] = mesh.Point{X: rnd.Float64() * w, Y: rnd.Float64() * h}
	}
	triangles, halfedges, err := delaunayadapter.Triangulate(pts)
	require.NoError(t, err)
	m, err := mesh.NewDualMesh(pts, 0, triangles, halfedges)
	require.NoError(t, err)
	return m
}

func TestPipeline_DownslopeTotality(t *testing.T) {
	m := buildMesh(t, 300, 1000, 1000, 287)
	cfg := terrain.NewConfig(287)
	tm := terrain.NewMap(m, cfg)

	assert.Len(t, tm.TOrder, m.NumSolidTriangles())
	for tri, s := range tm.SDownslopeT {
		assert.NotEqual(t, terrain.Unassigned, s, "triangle %d never assigned a downslope side", tri)
	}
}

func TestPipeline_Determinism(t *testing.T) {
	m := buildMesh(t, 300, 1000, 1000, 287)
	cfg := terrain.NewConfig(287)
	cfg.WindAngleDeg = 0

	a := terrain.NewMap(m, cfg)
	b := terrain.NewMap(m, cfg)

	require.Equal(t, len(a.ElevationR), len(b.ElevationR))
	for r := range a.ElevationR {
		assert.Equal(t, a.ElevationR[r], b.ElevationR[r], "region %d", r)
		assert.Equal(t, a.RainfallR[r], b.RainfallR[r], "region %d", r)
	}
	for s := range a.FlowS {
		assert.Equal(t, a.FlowS[s], b.FlowS[s], "side %d", s)
	}
}

func TestElevationHash_MatchesAcrossRuns(t *testing.T) {
	m := buildMesh(t, 200, 1000, 1000, 287)
	cfg := terrain.NewConfig(287)

	a := terrain.NewMap(m, cfg)
	b := terrain.NewMap(m, cfg)

	assert.Equal(t, a.ElevationHash(), b.ElevationHash())
}

func TestPipeline_HumidityNonNegative(t *testing.T) {
	m := buildMesh(t, 250, 800, 800, 5)
	cfg := terrain.NewConfig(5)
	tm := terrain.NewMap(m, cfg)

	// Every region in this mesh was built with numBoundaryRegions=0, so
	// there should be no boundary-forced humidity; this just asserts the
	// sweep left no negative or NaN humidity anywhere.
	for r := range tm.HumidityR {
		assert.GreaterOrEqual(t, tm.HumidityR[r], 0.0)
	}
	_ = tm
}

func TestRivers_WidthNonNegative(t *testing.T) {
	m := buildMesh(t, 300, 1000, 1000, 42)
	cfg := terrain.NewConfig(42)
	tm := terrain.NewMap(m, cfg)

	for _, seg := range tm.Rivers(0.01) {
		assert.GreaterOrEqual(t, seg.Width, 0.0)
	}
}
