// Package boundary generates the interior and exterior point rings that
// close a rectangular map region before Delaunay triangulation, the planar
// counterpart of generateFibonacciSphere in meshSphere.go
// (github.com/Flokey82/genworldvoronoi): a pure function of shape parameters
// (there a sphere radius and point count, here a rectangle and spacing) that
// returns a flat point set for the triangulator.
package boundary

import (
	"math"

	"github.com/redblobgames/2513-mapgen4-csharp/internal/mesh"
)

// Rect is an axis-aligned rectangle described by its top-left corner and
// its width/height.
type Rect struct {
	Left, Top, Width, Height float64
}

const (
	curvature = 1.0
	epsilon   = 1e-4
)

// Generate returns the interior boundary ring (points just inside bounds,
// required to be the prefix of the point array handed to the triangulator),
// the exterior boundary ring (points just outside bounds, closing the
// primal polygons at the edge with real triangles instead of ghosts), and
// the length of the interior ring -- the NumBoundaryPoints value the caller
// must later pass to mesh.NewDualMesh.
func Generate(bounds Rect, spacing float64) (interior, exterior []mesh.Point, numBoundary int) {
	interior = interiorRing(bounds, spacing)
	exterior = exteriorRing(bounds, spacing)
	return interior, exterior, len(interior)
}

// inset returns the distance a boundary point at parametric position t
// (0 at one end of the edge, 1 at the other) is pulled in from the edge: a
// small constant plus a bulge that peaks at the middle of the edge. This
// keeps every point strictly inside bounds (Poisson-disc libraries and the
// triangulator both require that) and keeps the triangulator from emitting
// long, thin edge-hugging triangles.
func inset(t float64) float64 {
	c := t - 0.5
	return epsilon + curvature*4*c*c
}

func interiorRing(b Rect, h float64) []mesh.Point {
	nx := int(math.Ceil((b.Width - 2*curvature) / h))
	ny := int(math.Ceil((b.Height - 2*curvature) / h))
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}

	var pts []mesh.Point
	// Top edge, left to right.
	for i := 0; i < nx; i++ {
		t := fraction(i, nx)
		pts = append(pts, mesh.Point{X: b.Left + curvature + t*(b.Width-2*curvature), Y: b.Top + inset(t)})
	}
	// Right edge, top to bottom.
	for i := 0; i < ny; i++ {
		t := fraction(i, ny)
		pts = append(pts, mesh.Point{X: b.Left + b.Width - inset(t), Y: b.Top + curvature + t*(b.Height-2*curvature)})
	}
	// Bottom edge, right to left.
	for i := 0; i < nx; i++ {
		t := fraction(i, nx)
		pts = append(pts, mesh.Point{X: b.Left + b.Width - curvature - t*(b.Width-2*curvature), Y: b.Top + b.Height - inset(t)})
	}
	// Left edge, bottom to top.
	for i := 0; i < ny; i++ {
		t := fraction(i, ny)
		pts = append(pts, mesh.Point{X: b.Left + inset(t), Y: b.Top + b.Height - curvature - t*(b.Height-2*curvature)})
	}
	return pts
}

func exteriorRing(b Rect, h float64) []mesh.Point {
	offset := h / math.Sqrt2

	var pts []mesh.Point
	// Top edge, just above bounds.
	for x := b.Left + h/2; x < b.Left+b.Width; x += h {
		pts = append(pts, mesh.Point{X: x, Y: b.Top - offset})
	}
	// Right edge, just right of bounds.
	for y := b.Top + h/2; y < b.Top+b.Height; y += h {
		pts = append(pts, mesh.Point{X: b.Left + b.Width + offset, Y: y})
	}
	// Bottom edge, just below bounds.
	for x := b.Left + b.Width - h/2; x > b.Left; x -= h {
		pts = append(pts, mesh.Point{X: x, Y: b.Top + b.Height + offset})
	}
	// Left edge, just left of bounds.
	for y := b.Top + b.Height - h/2; y > b.Top; y -= h {
		pts = append(pts, mesh.Point{X: b.Left - offset, Y: y})
	}

	// Corners, so the exterior ring fully encloses the interior ring.
	pts = append(pts,
		mesh.Point{X: b.Left - offset, Y: b.Top - offset},
		mesh.Point{X: b.Left + b.Width + offset, Y: b.Top - offset},
		mesh.Point{X: b.Left + b.Width + offset, Y: b.Top + b.Height + offset},
		mesh.Point{X: b.Left - offset, Y: b.Top + b.Height + offset},
	)
	return pts
}

func fraction(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n)
}

// Jitter displaces every point in pts (skipping the first numBoundary
// points, the interior boundary prefix) by up to +/- spacing*amount/2 in each
// axis, using rnd -- the planar counterpart of the jitter parameter threaded
// through generateFibonacciSphere's rand.Rand. Callers are expected to pass
// only the interior fill and exterior ring after the interior boundary
// prefix, since jittering the interior boundary ring itself would break the
// curvature that keeps edge triangles well-shaped.
func Jitter(pts []mesh.Point, numBoundary int, spacing, amount float64, rnd func() float64) []mesh.Point {
	out := append([]mesh.Point(nil), pts...)
	for i := numBoundary; i < len(out); i++ {
		out[i].X += amount * spacing * (rnd() - 0.5)
		out[i].Y += amount * spacing * (rnd() - 0.5)
	}
	return out
}
