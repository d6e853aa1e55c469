// Package mesh implements the dual-mesh topology: a half-edge data
// structure that simultaneously exposes the primal triangle mesh (vertices
// at input points, faces at Delaunay triangles) and its dual polygon mesh
// (vertices at triangle centers, faces around input points).
//
// The index algebra and the ghost-closure algorithm are adapted from the
// south-pole-closure trick in github.com/Flokey82/genworldvoronoi's
// meshSphere.go (itself adapted from redblobgames/dual-mesh), generalized
// from "close the hole at a pole" to "close the hole around a planar hull".
package mesh

import "math"

// Point is a 2D coordinate. The ghost region's Point is {NaN, NaN}.
type Point struct {
	X, Y float64
}

// DualMesh owns the closed half-edge arrays and exposes O(1) accessors and
// allocation-free circulators over regions (r), sides (s) and triangles (t).
//
// Precondition: a DualMesh is only ever constructed already ghost-closed
// (see NewDualMesh) -- NumSolidRegions assumes this and will under-report
// by one region's worth of meaning if that invariant is ever violated by a
// caller constructing the zero value directly.
type DualMesh struct {
	Triangles []int // triangles[s] -> region at which side s begins
	Halfedges []int // halfedges[s] -> opposite side, always >= 0 after closure

	VertexR []Point // position of region r (ghost region: NaN, NaN)
	VertexT []Point // position of triangle t (centroid, or ghost offset)

	sOfR []int // one entry side per region, for circulators

	numRegions          int
	numBoundaryRegions  int
	numSides            int
	numSolidSides       int
	numTriangles        int
	numSolidTriangles   int

	neighborCache [][]int // lazily built, see NeighborCache
}

// t_of(s) = floor(s/3).
func TOf(s int) int { return s / 3 }

// s_next(s) = s+1 unless s is the last side of its triangle.
func SNext(s int) int {
	if s%3 == 2 {
		return s - 2
	}
	return s + 1
}

// s_prev(s) = s-1 unless s is the first side of its triangle.
func SPrev(s int) int {
	if s%3 == 0 {
		return s + 2
	}
	return s - 1
}

// NewDualMesh builds a closed dual mesh from triangulator output.
//
// points is the full point array (boundary prefix first, per the boundary
// generator's contract); numBoundaryRegions is the length of that prefix.
// triangles/halfedges are the raw, possibly-unclosed triangulator output;
// NewDualMesh performs ghost closure itself (see AddGhostStructure) before
// building the region/triangle indices.
func NewDualMesh(points []Point, numBoundaryRegions int, triangles, halfedges []int) (*DualMesh, error) {
	cPoints, cTriangles, cHalfedges, err := AddGhostStructure(points, triangles, halfedges)
	if err != nil {
		return nil, err
	}

	numSides := len(cTriangles)
	m := &DualMesh{
		Triangles:          cTriangles,
		Halfedges:          cHalfedges,
		VertexR:            cPoints,
		numRegions:         len(cPoints),
		numBoundaryRegions: numBoundaryRegions,
		numSides:           numSides,
		numSolidSides:      len(triangles),
		numTriangles:       numSides / 3,
		numSolidTriangles:  len(triangles) / 3,
	}
	m.update()
	return m, nil
}

// update recomputes the region entry-side index and all triangle center
// positions. It is called once by NewDualMesh; the mesh is immutable after
// construction, so there is no public re-Update.
func (m *DualMesh) update() {
	m.sOfR = make([]int, m.numRegions)
	for r := range m.sOfR {
		m.sOfR[r] = -1
	}
	for s := 0; s < m.numSides; s++ {
		endpoint := m.Triangles[SNext(s)]
		if m.sOfR[endpoint] == -1 || m.Halfedges[s] == -1 {
			m.sOfR[endpoint] = s
		}
	}

	m.VertexT = make([]Point, m.numTriangles)
	for t := 0; t < m.numTriangles; t++ {
		m.VertexT[t] = m.triangleCenter(t)
	}

	m.neighborCache = nil
}

// triangleCenter computes the position of triangle t: the centroid for a
// solid triangle, or a point just outside the hull edge it closes for a
// ghost triangle (rotate the boundary edge 90 degrees outward by a fixed
// offset).
func (m *DualMesh) triangleCenter(t int) Point {
	s := 3 * t
	a := m.VertexR[m.Triangles[s]]
	b := m.VertexR[m.Triangles[s+1]]
	c := m.VertexR[m.Triangles[s+2]]

	if !m.IsGhostT(t) {
		return Point{(a.X + b.X + c.X) / 3, (a.Y + b.Y + c.Y) / 3}
	}

	// Ghost triangle: a, b are the two real hull-edge regions (c is the
	// ghost region, whose position is NaN and must never be summed).
	mx, my := (a.X+b.X)/2, (a.Y+b.Y)/2
	dx, dy := b.X-a.X, b.Y-a.Y
	// rotate (dx,dy) -> (dy,-dx) and normalize, then push out by a fixed
	// visual/topological offset (not load-bearing numerically).
	px, py := dy, -dx
	length := math.Hypot(px, py)
	if length == 0 {
		return Point{mx, my}
	}
	const offset = 10
	return Point{mx + offset*px/length, my + offset*py/length}
}

// NumRegions returns the total number of regions, including the ghost region.
func (m *DualMesh) NumRegions() int { return m.numRegions }

// NumSolidRegions returns the number of non-ghost regions.
//
// Precondition: the mesh must have gone through ghost closure, which
// NewDualMesh always performs. See the DualMesh doc comment.
func (m *DualMesh) NumSolidRegions() int { return m.numRegions - 1 }

// NumBoundaryRegions returns the length of the boundary-region prefix.
func (m *DualMesh) NumBoundaryRegions() int { return m.numBoundaryRegions }

// NumSides returns the total number of sides, including ghost sides.
func (m *DualMesh) NumSides() int { return m.numSides }

// NumSolidSides returns the number of sides from the original triangulation.
func (m *DualMesh) NumSolidSides() int { return m.numSolidSides }

// NumTriangles returns the total number of triangles, including ghost triangles.
func (m *DualMesh) NumTriangles() int { return m.numTriangles }

// NumSolidTriangles returns the number of triangles from the original triangulation.
func (m *DualMesh) NumSolidTriangles() int { return m.numSolidTriangles }

// GhostRegion returns the id of the synthetic ghost region.
func (m *DualMesh) GhostRegion() int { return m.numRegions - 1 }

// RBegin returns the region at which side s begins.
func (m *DualMesh) RBegin(s int) int { return m.Triangles[s] }

// REnd returns the region at which side s ends.
func (m *DualMesh) REnd(s int) int { return m.Triangles[SNext(s)] }

// TInner returns the triangle that side s is a part of.
func (m *DualMesh) TInner(s int) int { return TOf(s) }

// TOuter returns the triangle on the other side of s.
func (m *DualMesh) TOuter(s int) int { return TOf(m.Halfedges[s]) }

// SOpposite returns the side opposite s.
func (m *DualMesh) SOpposite(s int) int { return m.Halfedges[s] }

// IsGhostS reports whether s is a side introduced by ghost closure.
func (m *DualMesh) IsGhostS(s int) bool { return s >= m.numSolidSides }

// IsBoundaryS reports whether s represents an actual hull edge: the
// "original" side of a ghost triangle, as opposed to its two closing sides.
func (m *DualMesh) IsBoundaryS(s int) bool { return m.IsGhostS(s) && s%3 == 0 }

// IsGhostT reports whether t is a triangle introduced by ghost closure.
func (m *DualMesh) IsGhostT(t int) bool { return 3*t >= m.numSolidSides }

// IsGhostR reports whether r is the single synthetic ghost region.
func (m *DualMesh) IsGhostR(r int) bool { return r == m.numRegions-1 }

// IsBoundaryR reports whether r is in the caller-declared boundary prefix.
func (m *DualMesh) IsBoundaryR(r int) bool { return r < m.numBoundaryRegions }

// XOfR returns the x coordinate of region r. Returns NaN for the ghost region.
func (m *DualMesh) XOfR(r int) float64 { return m.VertexR[r].X }

// YOfR returns the y coordinate of region r. Returns NaN for the ghost region.
func (m *DualMesh) YOfR(r int) float64 { return m.VertexR[r].Y }

// XOfT returns the x coordinate of triangle t's center.
func (m *DualMesh) XOfT(t int) float64 { return m.VertexT[t].X }

// YOfT returns the y coordinate of triangle t's center.
func (m *DualMesh) YOfT(t int) float64 { return m.VertexT[t].Y }

// NeighborCache returns, for every region, its neighboring regions in
// circulation order, building and memoizing it on first use: an opt-in fast
// path for callers doing repeated whole-mesh neighbor scans, layered on top
// of (not replacing) the allocation-free circulators.
func (m *DualMesh) NeighborCache() [][]int {
	if m.neighborCache != nil {
		return m.neighborCache
	}
	cache := make([][]int, m.numRegions)
	var buf []int
	for r := 0; r < m.numRegions; r++ {
		buf = m.RAroundR(buf, r)
		cache[r] = append([]int(nil), buf...)
	}
	m.neighborCache = cache
	return cache
}
