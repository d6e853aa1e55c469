package boundary_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redblobgames/2513-mapgen4-csharp/internal/boundary"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"
)

func TestGenerate_InteriorPointsStayInsideBounds(t *testing.T) {
	b := boundary.Rect{Left: 0, Top: 0, Width: 200, Height: 150}
	interior, exterior, numBoundary := boundary.Generate(b, 20)

	require.Equal(t, len(interior), numBoundary)
	for _, p := range interior {
		assert.Greater(t, p.X, b.Left)
		assert.Less(t, p.X, b.Left+b.Width)
		assert.Greater(t, p.Y, b.Top)
		assert.Less(t, p.Y, b.Top+b.Height)
	}

	for _, p := range exterior {
		inside := p.X > b.Left && p.X < b.Left+b.Width && p.Y > b.Top && p.Y < b.Top+b.Height
		assert.False(t, inside, "exterior point %v should lie outside bounds", p)
	}
}

func TestJitter_LeavesBoundaryPrefixUntouched(t *testing.T) {
	b := boundary.Rect{Left: 0, Top: 0, Width: 100, Height: 100}
	interior, exterior, numBoundary := boundary.Generate(b, 20)

	combined := append(append([]mesh.Point{}, interior...), exterior...)
	rnd := rand.New(rand.NewSource(1))
	jittered := boundary.Jitter(combined, numBoundary, 20, 0.5, rnd.Float64)

	for i := 0; i < numBoundary; i++ {
		assert.Equal(t, interior[i], jittered[i])
	}
	assert.Len(t, jittered, len(combined))
}

func TestPoissonDisc_RespectsMinimumSpacing(t *testing.T) {
	b := boundary.Rect{Left: 0, Top: 0, Width: 200, Height: 200}
	rnd := rand.New(rand.NewSource(9))
	pts := boundary.PoissonDisc(b, 15, rnd)

	require.NotEmpty(t, pts)
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			dx, dy := pts[i].X-pts[j].X, pts[i].Y-pts[j].Y
			d2 := dx*dx + dy*dy
			assert.GreaterOrEqual(t, d2, 15.0*15.0-1e-6, "points %d,%d too close", i, j)
		}
	}
}
