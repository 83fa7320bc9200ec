package anneal

import (
	"math"
	"math/rand"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 => use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// acceptanceLimits returns the Metropolis acceptance thresholds for a rank
// increase of 1 or 2 at the given temperature: limits[d-1] = exp(-d/temp).
//
// Complexity: O(1).
func acceptanceLimits(temperature float64) [2]float64 {
	return [2]float64{
		math.Exp(-1.0 / temperature),
		math.Exp(-2.0 / temperature),
	}
}
