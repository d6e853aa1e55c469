package terrain

import "github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"

// assignMoisture sets moisture_t[t] to the mean rainfall_r of the three
// regions at the corners of t.
func assignMoisture(m *mesh.DualMesh, rainfallR []float64, moistureT []float64) {
	var outR []int
	for t := 0; t < m.NumSolidTriangles(); t++ {
		outR = m.RAroundT(outR, t)
		var sum float64
		for _, r := range outR {
			sum += rainfallR[r]
		}
		moistureT[t] = sum / float64(len(outR))
	}
}

// assignFlow seeds flow_t for every land triangle from its own moisture,
// then walks tOrder in reverse -- from the triangles the flood reached last
// (the ridgelines) back to the ocean seeds -- accumulating each tributary's
// flow into its downstream neighbor's flow_t and into the flow_s of the
// side it crosses. A downstream land triangle strictly higher than its
// tributary is lowered to the tributary's elevation, a reverse-order
// lake-fill that keeps the downslope tree monotonically non-increasing.
func assignFlow(m *mesh.DualMesh, elevationT, moistureT []float64, sDownslopeT, tOrder []int, flowParam float64, flowT, flowS []float64) {
	for t := 0; t < m.NumSolidTriangles(); t++ {
		if elevationT[t] < 0 {
			flowT[t] = 0
			continue
		}
		flowT[t] = flowParam * moistureT[t] * moistureT[t]
	}
	for i := range flowS {
		flowS[i] = 0
	}

	for i := len(tOrder) - 1; i >= 0; i-- {
		tTributary := tOrder[i]
		s := sDownslopeT[tTributary]
		if s == Unassigned || s == OceanSink {
			continue
		}
		tDownstream := m.TOuter(s)

		flowT[tDownstream] += flowT[tTributary]
		flowS[s] += flowT[tTributary]

		if elevationT[tDownstream] >= 0 && elevationT[tTributary] >= 0 && elevationT[tDownstream] > elevationT[tTributary] {
			elevationT[tDownstream] = elevationT[tTributary]
		}
	}
}
