package terrain

import "github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"

// Unassigned marks a triangle that the priority flood has not yet reached.
// OceanSink marks a triangle that is a local elevation minimum: it has no
// downhill side, so it is where flow terminates.
const (
	Unassigned = -999
	OceanSink  = -1
)

// assignDownslope runs a priority flood over the triangle mesh: every deep
// ocean triangle is a seed (elevation < -0.1), and the flood then spreads
// uphill one triangle at a time, always expanding from the globally lowest
// unvisited-but-reachable triangle, assigning each newly-reached triangle's
// downslope side to point back the way the flood came from. sDownslopeT
// and tOrder are zero-valued/empty on entry and fully populated (every
// solid triangle visited exactly once) on return.
func assignDownslope(m *mesh.DualMesh, elevationT []float64, sDownslopeT []int, tOrder *[]int) {
	n := m.NumSolidTriangles()
	for i := range sDownslopeT {
		sDownslopeT[i] = Unassigned
	}

	pq := newTriPriorityQueue()

	var outS []int
	for t := 0; t < n; t++ {
		if elevationT[t] >= -0.1 {
			continue
		}
		outS = m.SAroundT(outS, t)
		best := OceanSink
		bestElev := elevationT[t]
		for _, s := range outS {
			nb := m.TOuter(s)
			if nb >= n { // ghost neighbor, no elevation to compare
				continue
			}
			if elevationT[nb] < bestElev {
				bestElev = elevationT[nb]
				best = s
			}
		}
		sDownslopeT[t] = best
		*tOrder = append(*tOrder, t)
		pq.push(t, float32(elevationT[t]))
	}

	for pq.Len() > 0 {
		tCurrent, _ := pq.pop()
		outS = m.SAroundT(outS, tCurrent)
		for _, s := range outS {
			tNeighbor := m.TOuter(s)
			if tNeighbor >= n {
				continue
			}
			if sDownslopeT[tNeighbor] != Unassigned {
				continue
			}
			sDownslopeT[tNeighbor] = m.SOpposite(s)
			*tOrder = append(*tOrder, tNeighbor)
			pq.push(tNeighbor, float32(elevationT[tNeighbor]))
		}
	}
}
