// Package anneal runs simulated annealing over a partition.State, searching
// for a bipartition with small GF(2) cut-rank.
//
// Design goals:
//   - Determinism: identical Options.Seed and Options.Temperatures always
//     produce identical accepted-swap sequences.
//   - Two interchangeable drivers: Direct recomputes the candidate rank from
//     scratch (O(n^3) per candidate); Incremental uses swapeval to predict
//     it in O(n) per candidate. Given the same RNG stream both accept
//     exactly the same swaps.
//   - Zero surprises: a cooling schedule is just a []float64 of
//     temperatures, evaluated in the order given.
package anneal

import "errors"

// Sentinel errors.
var (
	// ErrNoTemperatures indicates Options.Temperatures is empty.
	ErrNoTemperatures = errors.New("anneal: no temperatures given")

	// ErrNonPositiveTemperature indicates a temperature <= 0 was supplied;
	// 1/temp would be undefined or the acceptance curve degenerate.
	ErrNonPositiveTemperature = errors.New("anneal: non-positive temperature")

	// ErrRankMismatch indicates the incrementally maintained cut-rank
	// diverged from the value swapeval predicted for the accepted swap.
	ErrRankMismatch = errors.New("anneal: partition cut-rank does not match predicted rank")
)

// Options configures an annealing run.
type Options struct {
	// Temperatures is the cooling schedule, evaluated in order. Each value
	// must be > 0.
	Temperatures []float64

	// Seed seeds the run's PRNG stream. Seed==0 uses a fixed default seed,
	// matching rngFromSeed's policy.
	Seed int64

	// Logger, if non-nil, receives one line per completed temperature step.
	Logger func(temperature float64, cutRank int)
}

func (o *Options) validate() error {
	if len(o.Temperatures) == 0 {
		return ErrNoTemperatures
	}
	for _, t := range o.Temperatures {
		if t <= 0 {
			return ErrNonPositiveTemperature
		}
	}
	return nil
}
