package terrain

import (
	"fmt"
	"hash/fnv"

	"github.com/redblobgames/2513-mapgen4-csharp/internal/various"
)

// ElevationHash returns a deterministic FNV-1a hash of elevation_r, each
// value first rounded to 4 decimal places so that repeated runs over the
// same mesh and Config reproduce the exact same hash.
func (tm *Map) ElevationHash() string {
	h := fnv.New64a()
	for _, e := range tm.ElevationR {
		fmt.Fprintf(h, "%.4f;", various.RoundToDecimals(e, 4))
	}
	return fmt.Sprintf("%x", h.Sum64())
}
