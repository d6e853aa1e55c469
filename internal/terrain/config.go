// Package terrain implements the deterministic terrain pipeline layered on
// top of a closed mesh.DualMesh: elevation from fractal noise plus an island
// mask, region elevation by averaging, a wind-ordered moisture sweep, a
// priority-flood downslope assignment, and a reverse-order flow
// accumulation producing river widths.
//
// The pipeline's results are a pure function of the mesh, the seed and
// Config. Apart from the one log line NewMap writes after each stage, no
// step performs I/O; no step may be cancelled.
package terrain

// Config holds the design-time tunable parameters of the terrain pipeline.
// Unlike GeoConfig (plate/volcano counts consumed by a much larger civ/bio
// pipeline), every field here is read by exactly one pipeline step.
type Config struct {
	Seed int64

	// WindAngleDeg is the fixed wind direction, in degrees, used to compute
	// wind priority.
	WindAngleDeg float64

	// NoisyCoastlines perturbs triangle elevation after the base noise
	// sample, roughening coastlines.
	NoisyCoastlines float64
	// Raininess scales both the baseline and orographic rainfall terms.
	Raininess float64
	// Evaporation scales the moisture added to an underwater region.
	Evaporation float64
	// RainShadow scales the extra rainfall produced from the orographic-lift
	// excess (the whole excess is subtracted from humidity).
	RainShadow float64
	// Flow scales the seed flow assigned to a land triangle from its own
	// moisture before tributaries are accumulated.
	Flow float64
	// Island scales the island mask blended into the base elevation noise.
	Island float64
}

// NewConfig returns a Config with sane defaults for every tunable, the way
// NewGeoConfig returns sane defaults for plate/point counts.
func NewConfig(seed int64) *Config {
	return &Config{
		Seed:            seed,
		WindAngleDeg:    0,
		NoisyCoastlines: 0.01,
		Raininess:       0.9,
		Evaporation:     0.5,
		RainShadow:      0.5,
		Flow:            0.2,
		Island:          0.5,
	}
}
