package terrain

import (
	"math"

	"github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"
)

// assignRainfall performs the wind-ordered moisture sweep: each region
// collects humidity from its already-visited upwind neighbors, evaporates
// extra humidity over water, and drops orographic rainfall once humidity
// exceeds what the local elevation can still hold. order and priority must
// come from the same windOrder call: order
// drives the visitation sequence (ascending wind_priority) and priority is
// used to pick out, for each region, only the neighbors that lie strictly
// upwind of it -- which, because order visits ascending wind_priority,
// always means "already visited", but the spec's invariant is on priority,
// not visitation order, so this filters on priority directly.
func assignRainfall(m *mesh.DualMesh, order []int, priority []float64, elevationR []float64, raininess, evaporation, rainShadow float64, humidityR, rainfallR []float64) {
	var outR []int
	for _, r := range order {
		outR = m.RAroundR(outR, r)

		var sum float64
		var count int
		for _, nb := range outR {
			if m.IsGhostR(nb) || priority[nb] >= priority[r] {
				continue
			}
			sum += humidityR[nb]
			count++
		}
		humidity := 0.0
		if count > 0 {
			humidity = sum / float64(count)
		}

		rainfall := raininess * humidity

		if m.IsBoundaryR(r) {
			humidity = 1.0
		}

		if elevationR[r] < 0 {
			humidity += evaporation * math.Abs(elevationR[r])
		}

		if threshold := 1 - elevationR[r]; humidity > threshold {
			excess := humidity - threshold
			rainfall += raininess * rainShadow * excess
			humidity -= excess
		}

		humidityR[r] = humidity
		rainfallR[r] = rainfall
	}
}
