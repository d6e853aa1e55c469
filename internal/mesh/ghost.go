package mesh

import "math"

// AddGhostStructure closes every unpaired half-edge in (triangles,
// halfedges) with a synthetic triangle incident to one new ghost region,
// so that every side has a well-defined opposite afterwards.
//
// This is adapted directly from addSouthPoleToMesh (meshSphere.go in
// github.com/Flokey82/genworldvoronoi), which performs the identical closure
// to add a "south pole" region back into a stereographically-projected
// sphere triangulation. There the synthetic region was a real point (the
// pole); here it is the ghost region with an undefined (NaN) position,
// since a planar hull has no natural point to close onto.
func AddGhostStructure(points []Point, triangles, halfedges []int) (newPoints []Point, newTriangles, newHalfedges []int, err error) {
	numSides := len(triangles)

	var firstUnpaired, k int
	firstUnpaired = -1
	unpaired := make(map[int]int) // region at which an unpaired side begins -> that side
	for s := 0; s < numSides; s++ {
		if halfedges[s] == -1 {
			if firstUnpaired == -1 {
				firstUnpaired = s
			}
			unpaired[triangles[s]] = s
			k++
		}
	}

	if k == 0 {
		// Already closed (or degenerate input with no hull at all); still
		// append the ghost region so NumSolidRegions/GhostRegion stay valid.
		newPoints = append(append([]Point(nil), points...), Point{X: math.NaN(), Y: math.NaN()})
		return newPoints, append([]int(nil), triangles...), append([]int(nil), halfedges...), nil
	}

	rGhost := len(points)
	newPoints = append(append([]Point(nil), points...), Point{X: math.NaN(), Y: math.NaN()})

	newTriangles = make([]int, numSides+3*k)
	copy(newTriangles, triangles)
	newHalfedges = make([]int, numSides+3*k)
	copy(newHalfedges, halfedges)

	s := firstUnpaired
	for i := 0; i < k; i++ {
		sGhost := numSides + 3*i

		rEnd := newTriangles[SNext(s)]
		rBegin := newTriangles[s]

		newTriangles[sGhost] = rEnd
		newTriangles[sGhost+1] = rBegin
		newTriangles[sGhost+2] = rGhost

		newHalfedges[s] = sGhost
		newHalfedges[sGhost] = s

		kPrime := numSides + (3*i+4)%(3*k)
		newHalfedges[sGhost+2] = kPrime
		newHalfedges[kPrime] = sGhost + 2

		s = unpaired[newTriangles[SNext(s)]]
	}

	return newPoints, newTriangles, newHalfedges, nil
}
