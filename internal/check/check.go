// Package check implements the structural-invariant checker for a closed
// dual mesh: a set of property assertions over a mesh.DualMesh, exposed as
// a callable Verify for an embedding shell to run once after construction,
// plus the diagnostic skinny-triangle histogram over the pre-closure
// triangulator output.
//
// Verify aggregates every failure with errors.Join rather than returning on
// the first one, the same way NewMapFromConfig/newSphereMesh return errors
// instead of panicking past a failed triangulation -- grounded structurally
// on the validator style of matrix/validators.go in
// github.com/katalvlaran/lvlath, which returns one error per failed check
// for the caller to aggregate.
package check

import (
	"errors"
	"fmt"
	"math"

	"github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"
)

// maxCirculationSteps is the largest region circulation Verify accepts: a
// walk that returns more sides than this is reported as not closing within
// the bound. The walk itself runs inside SAroundR and is not cut short, so a
// walk that never returns to its start side does not terminate.
const maxCirculationSteps = 100

// Verify runs every structural invariant a closed dual mesh must satisfy
// (opposite-side involution, region/triangle/side index consistency,
// closed circulation) and returns a joined error describing every violation
// found, or nil if the mesh is sound. Out-of-range ids still panic: Verify
// only exercises the accessors/circulators on their declared domain, it
// never probes bad ids itself.
func Verify(m *mesh.DualMesh) error {
	var errs []error

	for s := 0; s < m.NumSides(); s++ {
		opp := m.SOpposite(s)
		if opp < 0 || opp >= m.NumSides() {
			errs = append(errs, fmt.Errorf("side %d: halfedges out of range: %d", s, opp))
			continue
		}
		if m.SOpposite(opp) != s {
			errs = append(errs, fmt.Errorf("side %d: halfedges[halfedges[s]] = %d, want %d", s, m.SOpposite(opp), s))
		}
		if m.RBegin(s) != m.REnd(opp) {
			errs = append(errs, fmt.Errorf("side %d: r_begin(s)=%d != r_end(opposite)=%d", s, m.RBegin(s), m.REnd(opp)))
		}
		if m.TInner(s) != m.TOuter(opp) {
			errs = append(errs, fmt.Errorf("side %d: t_inner(s)=%d != t_outer(opposite)=%d", s, m.TInner(s), m.TOuter(opp)))
		}
		if m.RBegin(mesh.SNext(s)) != m.RBegin(opp) {
			errs = append(errs, fmt.Errorf("side %d: r_begin(s_next(s))=%d != r_begin(opposite)=%d", s, m.RBegin(mesh.SNext(s)), m.RBegin(opp)))
		}
		if mesh.TOf(mesh.SNext(s)) != mesh.TOf(s) || mesh.TOf(mesh.SPrev(s)) != mesh.TOf(s) {
			errs = append(errs, fmt.Errorf("side %d: s_next/s_prev escaped triangle %d", s, mesh.TOf(s)))
		}
	}

	if m.NumSides()%3 != 0 {
		errs = append(errs, fmt.Errorf("NumSides=%d is not a multiple of 3", m.NumSides()))
	}

	var outS []int
	for t := 0; t < m.NumTriangles(); t++ {
		outS = m.SAroundT(outS, t)
		if len(outS) != 3 {
			errs = append(errs, fmt.Errorf("triangle %d: s_around_t returned %d sides, want 3", t, len(outS)))
			continue
		}
		for _, s := range outS {
			if m.TInner(s) != t {
				errs = append(errs, fmt.Errorf("triangle %d: side %d has t_inner=%d", t, s, m.TInner(s)))
			}
		}
	}

	for r := 0; r < m.NumRegions(); r++ {
		if m.IsGhostR(r) {
			continue
		}
		if err := verifyCirculation(m, r); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func verifyCirculation(m *mesh.DualMesh, r int) error {
	var outS []int
	outS = m.SAroundR(outS, r)
	if len(outS) == 0 {
		return fmt.Errorf("region %d: empty circulation", r)
	}
	if len(outS) > maxCirculationSteps {
		return fmt.Errorf("region %d: circulation did not close within %d steps", r, maxCirculationSteps)
	}
	for _, s := range outS {
		if m.RBegin(s) != r {
			return fmt.Errorf("region %d: side %d from s_around_r has r_begin=%d", r, s, m.RBegin(s))
		}
	}

	var outR, outT []int
	outR = m.RAroundR(outR, r)
	outT = m.TAroundR(outT, r)
	if len(outR) != len(outS) || len(outT) != len(outS) {
		return fmt.Errorf("region %d: circulator sizes disagree (s=%d r=%d t=%d)", r, len(outS), len(outR), len(outT))
	}
	tOfS := make([]int, len(outS))
	for i, s := range outS {
		tOfS[i] = mesh.TOf(s)
	}
	if !sameMultiset(tOfS, outT) {
		return fmt.Errorf("region %d: {t_of(s) : s in s_around_r}=%v != t_around_r=%v", r, tOfS, outT)
	}
	return nil
}

// sameMultiset reports whether a and b contain the same elements with the
// same multiplicities, ignoring order.
func sameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}

// PreClosureOpposite verifies halfedges[halfedges[s]] = s for every side of
// the raw, not-yet-ghost-closed triangulator output wherever halfedges[s]
// is not -1.
func PreClosureOpposite(halfedges []int) error {
	var errs []error
	for s, opp := range halfedges {
		if opp == -1 {
			continue
		}
		if opp < 0 || opp >= len(halfedges) {
			errs = append(errs, fmt.Errorf("side %d: halfedges out of range: %d", s, opp))
			continue
		}
		if halfedges[opp] != s {
			errs = append(errs, fmt.Errorf("side %d: halfedges[halfedges[s]]=%d, want %d", s, halfedges[opp], s))
		}
	}
	return errors.Join(errs...)
}

// AngleHistogram buckets the worst (smallest) interior angle of every
// pre-closure triangle into 5-degree buckets, keyed by the bucket's lower
// bound in degrees. Degenerate geometry is never fatal on its own; this is
// a diagnostic, not a rejection -- a small, explicit helper rather than a
// generic stats dependency.
func AngleHistogram(pts []mesh.Point, triangles []int) map[int]int {
	hist := make(map[int]int)
	for t := 0; t*3 < len(triangles); t++ {
		a := pts[triangles[3*t]]
		b := pts[triangles[3*t+1]]
		c := pts[triangles[3*t+2]]
		worst := math.Min(angleDeg(c, a, b), math.Min(angleDeg(a, b, c), angleDeg(b, c, a)))
		bucket := int(worst/5) * 5
		hist[bucket]++
	}
	return hist
}

// angleDeg returns the interior angle at vertex b of triangle (a, b, c), in
// degrees.
func angleDeg(a, b, c mesh.Point) float64 {
	ux, uy := a.X-b.X, a.Y-b.Y
	vx, vy := c.X-b.X, c.Y-b.Y
	dot := ux*vx + uy*vy
	lu := math.Hypot(ux, uy)
	lv := math.Hypot(vx, vy)
	if lu == 0 || lv == 0 {
		return 0
	}
	cos := dot / (lu * lv)
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}
