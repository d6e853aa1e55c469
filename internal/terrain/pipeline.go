package terrain

import (
	"log"
	"math"
	"time"

	"github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"
)

// Map holds every mutable per-element array the pipeline produces, keyed by
// the same region/triangle/side ids as the mesh it was built from. A Map
// borrows its mesh immutably for its whole lifetime; nothing in the
// pipeline mutates mesh.DualMesh.
type Map struct {
	Mesh *mesh.DualMesh
	Cfg  *Config

	ElevationT []float64
	ElevationR []float64
	HumidityR  []float64
	MoistureT  []float64
	RainfallR  []float64

	SDownslopeT []int
	TOrder      []int

	FlowT []float64
	FlowS []float64

	WindPriority []float64
	WindOrder    []int
}

// NewMap runs the full deterministic terrain pipeline over m, bracketing
// each stage with a log.Println/time.Since pair the way generateGeology
// (geo.go) logs each stage of plate/elevation generation.
func NewMap(m *mesh.DualMesh, cfg *Config) *Map {
	tm := &Map{
		Mesh:        m,
		Cfg:         cfg,
		ElevationT:  make([]float64, m.NumSolidTriangles()),
		ElevationR:  make([]float64, m.NumSolidRegions()),
		HumidityR:   make([]float64, m.NumSolidRegions()),
		MoistureT:   make([]float64, m.NumSolidTriangles()),
		RainfallR:   make([]float64, m.NumSolidRegions()),
		SDownslopeT: make([]int, m.NumSolidTriangles()),
		FlowT:       make([]float64, m.NumSolidTriangles()),
		FlowS:       make([]float64, m.NumSolidSides()),
	}

	start := time.Now()
	wind := fixedWind(cfg.WindAngleDeg)
	tm.WindPriority, tm.WindOrder = windOrder(m, wind)
	log.Println("terrain: wind order done in", time.Since(start))

	start = time.Now()
	en := newElevationNoise(cfg.Seed, cfg.Island)
	assignTriangleElevation(m, en, cfg.NoisyCoastlines, tm.ElevationT)
	assignRegionElevation(m, tm.ElevationT, tm.ElevationR)
	log.Println("terrain: elevation done in", time.Since(start))

	start = time.Now()
	assignRainfall(m, tm.WindOrder, tm.WindPriority, tm.ElevationR, cfg.Raininess, cfg.Evaporation, cfg.RainShadow, tm.HumidityR, tm.RainfallR)
	log.Println("terrain: rainfall done in", time.Since(start))

	start = time.Now()
	assignDownslope(m, tm.ElevationT, tm.SDownslopeT, &tm.TOrder)
	log.Println("terrain: downslope done in", time.Since(start))

	start = time.Now()
	assignMoisture(m, tm.RainfallR, tm.MoistureT)
	assignFlow(m, tm.ElevationT, tm.MoistureT, tm.SDownslopeT, tm.TOrder, cfg.Flow, tm.FlowT, tm.FlowS)
	log.Println("terrain: flow done in", time.Since(start))

	return tm
}

// RiverSegment is one drawable span of river: the two triangle-center
// endpoints of a solid side whose flow clears a threshold, and a width
// derived from that side's flow_s. This mirrors geoRivers.go, which derives
// drawable polylines/widths from its flux field for rendering -- here
// read-only and derived straight from flow_s, since this design carries no
// separate river/pool region state (see DESIGN.md).
type RiverSegment struct {
	X1, Y1, X2, Y2 float64
	Width          float64
}

// Rivers returns one RiverSegment per solid side whose flow_s is at least
// minFlow, in side-id order. It does not feed back into the pipeline.
func (tm *Map) Rivers(minFlow float64) []RiverSegment {
	var out []RiverSegment
	for s := 0; s < tm.Mesh.NumSolidSides(); s++ {
		flow := tm.FlowS[s]
		if flow < minFlow {
			continue
		}
		t1 := mesh.TOf(s)
		t2 := tm.Mesh.TOuter(s)
		out = append(out, RiverSegment{
			X1:    tm.Mesh.XOfT(t1),
			Y1:    tm.Mesh.YOfT(t1),
			X2:    tm.Mesh.XOfT(t2),
			Y2:    tm.Mesh.YOfT(t2),
			Width: widthForFlow(flow),
		})
	}
	return out
}

// widthForFlow maps a flow value to a drawable line width, the same
// sqrt-scaling shape tiles.go uses for river width
// (4*sqrt(flux/(2*maxFlux))), simplified to a fixed reference scale since
// this component has no access to a running max across calls.
func widthForFlow(flow float64) float64 {
	const referenceFlow = 1.0
	w := 4 * math.Sqrt(flow/referenceFlow)
	if w < 0.5 {
		return 0.5
	}
	if w > 8 {
		return 8
	}
	return w
}
