// Package noise wraps github.com/ojrac/opensimplex-go into a seeded,
// amplitude-normalized multi-octave 2D/3D noise source, the way the
// teacher's noise package wraps it for sphere terrain.
package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Noise evaluates multiple octaves of simplex noise at decreasing amplitude,
// normalized so the result stays in roughly [-1, 1] regardless of octave
// count.
type Noise struct {
	Octaves     int
	Persistence float64
	Amplitudes  []float64
	Seed        int64
	OS          opensimplex.Noise
}

// New returns a new Noise seeded deterministically from seed. Two Noise
// values built from the same seed, octaves and persistence always agree.
func New(octaves int, persistence float64, seed int64) *Noise {
	n := &Noise{
		Octaves:     octaves,
		Persistence: persistence,
		Amplitudes:  make([]float64, octaves),
		Seed:        seed,
		OS:          opensimplex.NewNormalized(seed),
	}
	for i := range n.Amplitudes {
		n.Amplitudes[i] = math.Pow(persistence, float64(i))
	}
	return n
}

// Eval2 returns the normalized multi-octave noise value at (x, y).
func (n *Noise) Eval2(x, y float64) float64 {
	var sum, sumOfAmplitudes float64
	for octave := 0; octave < n.Octaves; octave++ {
		freq := float64(int(1) << octave)
		sum += n.Amplitudes[octave] * n.OS.Eval2(x*freq, y*freq)
		sumOfAmplitudes += n.Amplitudes[octave]
	}
	return sum / sumOfAmplitudes
}

// Eval3 returns the normalized multi-octave noise value at (x, y, z).
func (n *Noise) Eval3(x, y, z float64) float64 {
	var sum, sumOfAmplitudes float64
	for octave := 0; octave < n.Octaves; octave++ {
		freq := float64(int(1) << octave)
		sum += n.Amplitudes[octave] * n.OS.Eval3(x*freq, y*freq, z*freq)
		sumOfAmplitudes += n.Amplitudes[octave]
	}
	return sum / sumOfAmplitudes
}

// PlusOneOctave returns a new Noise with one additional octave, sharing this
// Noise's seed and persistence.
func (n *Noise) PlusOneOctave() *Noise {
	return New(n.Octaves+1, n.Persistence, n.Seed)
}
