package terrain

import (
	"math"

	"github.com/Flokey82/go_gens/utils"

	"github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/noise"
	"github.com/redblobgames/2513-mapgen4-csharp/internal/various"
)

// elevationNoise bundles the two noise sources DesiredElevation needs: a
// multi-octave source for the base fractal terrain, and a coarser source
// used only above water to carve ridges.
type elevationNoise struct {
	base  *noise.Noise
	ridge *noise.Noise
	island float64
}

func newElevationNoise(seed int64, island float64) *elevationNoise {
	return &elevationNoise{
		base:   noise.New(5, 0.5, seed),
		ridge:  noise.New(2, 0.5, seed+1),
		island: island,
	}
}

// DesiredElevation samples the base fractal noise at (nx, ny), blends in an
// island mask that is highest at (nx, ny) = (0, 0) and falls off with
// max(|nx|, |ny|), clamps,
// then -- for points that ended up above water -- mixes in a second,
// coarser noise source to carve ridges.
func (e *elevationNoise) DesiredElevation(nx, ny float64) float64 {
	elev := e.base.Eval2(nx, ny)

	m := math.Max(math.Abs(nx), math.Abs(ny))
	elev = 0.5 * (elev + e.island*(0.75-2*m*m))
	elev = clamp(elev, -1, 1)

	if elev > 0 {
		m := e.ridge.Eval2(nx, ny)
		elev = math.Max(elev, math.Min(3*elev, math.Min(1, 5*elev)*(1-math.Abs(m)/0.5)))
	}
	return elev
}

// clamp restricts v to [lo, hi] using github.com/Flokey82/go_gens/utils'
// Min/Max, the same pair various.go composes into its own minMax scan.
func clamp(v, lo, hi float64) float64 {
	return utils.Max(utils.Min(v, hi), lo)
}

// assignTriangleElevation samples DesiredElevation at every solid triangle's
// center (scaled down by 1000 so the noise isn't wildly oversampled relative
// to typical map spacing) and adds a small coastline-roughening
// perturbation, clamping the result to [-1, 1].
func assignTriangleElevation(m *mesh.DualMesh, en *elevationNoise, noisyCoastlines float64, elevationT []float64) {
	various.KickOffChunkWorkers(m.NumSolidTriangles(), func(start, end int) {
		for t := start; t < end; t++ {
			raw := en.DesiredElevation(m.XOfT(t)/1000, m.YOfT(t)/1000)
			elevationT[t] = clamp(raw+noisyCoastlines*(1-raw*raw*raw*raw), -1, 1)
		}
	})
}

// assignRegionElevation averages elevation_t over the solid triangles around
// each region. If any incident triangle is underwater but the average comes out
// at or above sea level, the region is forced slightly underwater instead,
// preventing spurious land pixels from sticking out of the water.
func assignRegionElevation(m *mesh.DualMesh, elevationT, elevationR []float64) {
	var outT []int
	for r := 0; r < m.NumSolidRegions(); r++ {
		outT = m.TAroundR(outT, r)
		var sum float64
		var count int
		var anyUnderwater bool
		for _, t := range outT {
			if m.IsGhostT(t) { // ghost triangles carry no elevation
				continue
			}
			sum += elevationT[t]
			count++
			if elevationT[t] < 0 {
				anyUnderwater = true
			}
		}
		avg := sum / float64(count)
		if anyUnderwater && avg >= 0 {
			avg = -0.001
		}
		elevationR[r] = avg
	}
}
