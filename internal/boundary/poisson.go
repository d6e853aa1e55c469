package boundary

import (
	"math"
	"math/rand"

	"github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"
)

// maxTries is the number of candidate points tried around each active point
// before it is retired, the same default duals2/bluenoise.go's
// DefaultBlueNoiseConfig uses for Bridson's algorithm.
const maxTries = 30

// PoissonDisc fills the interior of bounds with Bridson's-algorithm
// Poisson-disc points spaced at least spacing apart, using rnd for
// determinism. It turns the boundary rings -- which Generate always keeps
// strictly inside bounds -- into a full interior point set for
// triangulation.
//
// Adapted from duals2/bluenoise.go's GenerateBlueNoise
// (github.com/YoshiDesign/ProceduralGeneration), a rand.Rand-seeded
// grid-accelerated Bridson sampler over a generic rectangle, retargeted to
// this module's mesh.Point/boundary.Rect types.
func PoissonDisc(b Rect, spacing float64, rnd *rand.Rand) []mesh.Point {
	if spacing <= 0 || b.Width <= 0 || b.Height <= 0 {
		return nil
	}

	cellSize := spacing / math.Sqrt2
	gridW := int(math.Ceil(b.Width / cellSize))
	gridH := int(math.Ceil(b.Height / cellSize))
	if gridW < 1 {
		gridW = 1
	}
	if gridH < 1 {
		gridH = 1
	}

	grid := make([]int, gridW*gridH)
	for i := range grid {
		grid[i] = -1
	}

	toGrid := func(p mesh.Point) (int, int) {
		gx := int((p.X - b.Left) / cellSize)
		gy := int((p.Y - b.Top) / cellSize)
		if gx < 0 {
			gx = 0
		} else if gx >= gridW {
			gx = gridW - 1
		}
		if gy < 0 {
			gy = 0
		} else if gy >= gridH {
			gy = gridH - 1
		}
		return gx, gy
	}

	var points []mesh.Point
	isValid := func(p mesh.Point) bool {
		if p.X < b.Left || p.X >= b.Left+b.Width || p.Y < b.Top || p.Y >= b.Top+b.Height {
			return false
		}
		gx, gy := toGrid(p)
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				nx, ny := gx+dx, gy+dy
				if nx < 0 || nx >= gridW || ny < 0 || ny >= gridH {
					continue
				}
				idx := grid[ny*gridW+nx]
				if idx == -1 {
					continue
				}
				other := points[idx]
				ddx, ddy := other.X-p.X, other.Y-p.Y
				if ddx*ddx+ddy*ddy < spacing*spacing {
					return false
				}
			}
		}
		return true
	}

	addPoint := func(p mesh.Point) int {
		idx := len(points)
		points = append(points, p)
		gx, gy := toGrid(p)
		grid[gy*gridW+gx] = idx
		return idx
	}

	first := mesh.Point{X: b.Left + rnd.Float64()*b.Width, Y: b.Top + rnd.Float64()*b.Height}
	active := []int{addPoint(first)}

	for len(active) > 0 {
		i := rnd.Intn(len(active))
		base := points[active[i]]

		found := false
		for try := 0; try < maxTries; try++ {
			angle := rnd.Float64() * 2 * math.Pi
			radius := spacing * (1 + rnd.Float64())
			cand := mesh.Point{X: base.X + radius*math.Cos(angle), Y: base.Y + radius*math.Sin(angle)}
			if isValid(cand) {
				idx := addPoint(cand)
				active = append(active, idx)
				found = true
				break
			}
		}
		if !found {
			active[i] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}

	return points
}
