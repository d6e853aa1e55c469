package mesh_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redblobgames/2513-mapgen4-csharp/internal/delaunayadapter"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"
)

// tinySquare is 4 corners plus 5 grid points inside a 100x100 box, no
// jitter -- small enough to eyeball the ghost closure by hand.
func tinySquare() []mesh.Point {
	return []mesh.Point{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}, // boundary prefix
		{X: 50, Y: 50}, {X: 25, Y: 25}, {X: 75, Y: 25}, {X: 25, Y: 75}, {X: 75, Y: 75},
	}
}

func randomPoints(n int, w, h float64, seed int64) []mesh.Point {
	rnd := rand.New(rand.NewSource(seed))
	pts := make([]mesh.Point, n)
	for i := range pts {
		pts[i] = mesh.Point{X: rnd.Float64() * w, Y: rnd.Float64() * h}
	}
	return pts
}

func buildMesh(t *testing.T, pts []mesh.Point, numBoundary int) *mesh.DualMesh {
	t.Helper()
	triangles, halfedges, err := delaunayadapter.Triangulate(pts)
	require.NoError(t, err)
	m, err := mesh.NewDualMesh(pts, numBoundary, triangles, halfedges)
	require.NoError(t, err)
	return m
}

func TestGhostClosure_TinySquare(t *testing.T) {
	m := buildMesh(t, tinySquare(), 4)

	require.Zero(t, m.NumSides()%3, "NumSides must be a multiple of 3")

	for s := 0; s < m.NumSides(); s++ {
		opp := m.SOpposite(s)
		require.GreaterOrEqual(t, opp, 0, "side %d unpaired after ghost closure", s)
		assert.Equal(t, s, m.SOpposite(opp), "halfedges[halfedges[%d]] != %d", s, s)
	}

	// Exactly one ghost region, at the final id.
	assert.Equal(t, m.NumRegions()-1, m.GhostRegion())
	assert.True(t, m.IsGhostR(m.GhostRegion()))
	for r := 0; r < m.GhostRegion(); r++ {
		assert.False(t, m.IsGhostR(r))
	}
}

func TestRandomPoints_PreAndPostClosureInvolution(t *testing.T) {
	pts := randomPoints(250, 1000, 1000, 42)
	triangles, halfedges, err := delaunayadapter.Triangulate(pts)
	require.NoError(t, err)

	for s, opp := range halfedges {
		if opp == -1 {
			continue
		}
		assert.Equal(t, s, halfedges[opp], "pre-closure: halfedges[halfedges[%d]] != %d", s, s)
	}

	m, err := mesh.NewDualMesh(pts, 0, triangles, halfedges)
	require.NoError(t, err)
	for s := 0; s < m.NumSides(); s++ {
		assert.NotEqual(t, -1, m.SOpposite(s))
		assert.Equal(t, s, m.SOpposite(m.SOpposite(s)))
	}
}

func TestInvariants_PrimalDualConsistency(t *testing.T) {
	pts := randomPoints(250, 1000, 1000, 7)
	m := buildMesh(t, pts, 0)

	for s := 0; s < m.NumSides(); s++ {
		opp := m.SOpposite(s)
		assert.Equal(t, m.RBegin(s), m.REnd(opp), "side %d", s)
		assert.Equal(t, m.TInner(s), m.TOuter(opp), "side %d", s)
		assert.Equal(t, m.RBegin(mesh.SNext(s)), m.RBegin(opp), "side %d", s)
		assert.Equal(t, mesh.TOf(s), mesh.TOf(mesh.SNext(s)))
		assert.Equal(t, mesh.TOf(s), mesh.TOf(mesh.SPrev(s)))
	}
}

func TestCirculatorClosure(t *testing.T) {
	pts := randomPoints(120, 500, 500, 99)
	m := buildMesh(t, pts, 0)

	var outS, outR, outT []int
	for r := 0; r < m.NumRegions()-1; r++ { // skip ghost region
		outS = m.SAroundR(outS, r)
		outR = m.RAroundR(outR, r)
		outT = m.TAroundR(outT, r)

		require.NotEmpty(t, outS, "region %d", r)
		assert.Equal(t, len(outS), len(outR))
		assert.Equal(t, len(outS), len(outT))

		for _, s := range outS {
			assert.Equal(t, r, m.RBegin(s))
		}
		// outS[i] lies in the triangle TAroundR emitted one step earlier
		// (the last one, for i = 0).
		for i, s := range outS {
			assert.Equal(t, mesh.TOf(s), outT[(i+len(outT)-1)%len(outT)])
		}
	}
}

func TestNeighborCache_MatchesRAroundR(t *testing.T) {
	pts := randomPoints(80, 400, 400, 17)
	m := buildMesh(t, pts, 0)

	cache := m.NeighborCache()
	require.Len(t, cache, m.NumRegions())

	var outR []int
	for r := 0; r < m.NumRegions()-1; r++ {
		outR = m.RAroundR(outR, r)
		assert.Equal(t, outR, cache[r], "region %d", r)
	}

	// Memoized: a second call must return an equal cache.
	assert.Equal(t, cache, m.NeighborCache())
}

func TestGhostTrianglePosition_NeverUsesNaN(t *testing.T) {
	pts := randomPoints(60, 300, 300, 3)
	m := buildMesh(t, pts, 0)

	for t2 := 0; t2 < m.NumTriangles(); t2++ {
		x, y := m.XOfT(t2), m.YOfT(t2)
		assert.False(t, math.IsNaN(x), "triangle %d x", t2)
		assert.False(t, math.IsNaN(y), "triangle %d y", t2)
	}
}
