// Package various carries the small planar-geometry, concurrency and
// rounding helpers kept in the sibling various package this one is adapted
// from, trimmed to the 2D case this module needs: its sphere-only lat/lon
// conversions (coordinates.go), 3D centroid helper (triangles.go) and map
// serialization helpers (io.go) have no planar use here and are not carried
// over -- see DESIGN.md.
package various

import "math"

// RoundToDecimals rounds v to d decimal places, used to make a deterministic
// hash of elevation output comparable across runs.
func RoundToDecimals(v float64, d int) float64 {
	m := math.Pow(10, float64(d))
	return math.Round(v*m) / m
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }
