package terrain

import (
	"math"
	"sort"

	"github.com/Flokey82/go_gens/vectors"

	"github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/various"
)

// WindField returns the wind vector to project a region's position onto
// when computing its wind priority. fixedWind below covers the single fixed
// planar angle the pipeline needs; WindField itself is a hook -- the planar
// generalization of going from a single wind angle (getGlobalWindVector for
// one latitude) to per-region wind vectors (assignWindVectors, geoWind.go,
// in github.com/Flokey82/genworldvoronoi) -- for experimenting with
// non-uniform winds without touching the sweep itself. Vec2 is the same
// vectors.Vec2 geoWind.go normalizes its wind vectors into.
type WindField func(r int) vectors.Vec2

// fixedWind returns a WindField that always points along angleDeg.
func fixedWind(angleDeg float64) WindField {
	rad := various.DegToRad(angleDeg)
	dir := vectors.Normalize(vectors.NewVec2(math.Cos(rad), math.Sin(rad)))
	return func(int) vectors.Vec2 { return dir }
}

// windOrder computes wind_priority[r] = x_of_r(r)*dx + y_of_r(r)*dy for
// every solid region and returns the permutation of [0, NumSolidRegions)
// sorted by wind_priority ascending, breaking ties on id for determinism.
func windOrder(m *mesh.DualMesh, wind WindField) (priority []float64, order []int) {
	n := m.NumSolidRegions()
	priority = make([]float64, n)
	order = make([]int, n)
	for r := 0; r < n; r++ {
		dir := wind(r)
		priority[r] = m.XOfR(r)*dir.X + m.YOfR(r)*dir.Y
		order[r] = r
	}
	sortByPriorityThenID(order, priority)
	return priority, order
}

// sortByPriorityThenID sorts order (a permutation of region/triangle ids)
// ascending by priority[id], breaking ties on id itself for determinism
// across runs.
func sortByPriorityThenID(order []int, priority []float64) {
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if priority[a] != priority[b] {
			return priority[a] < priority[b]
		}
		return a < b
	})
}
