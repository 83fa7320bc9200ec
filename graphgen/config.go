// SPDX-License-Identifier: MIT
package graphgen

import "math/rand"

// Option customizes the behavior of a stochastic constructor.
type Option func(cfg *config)

type config struct {
	rng *rand.Rand
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRand sets an explicit *rand.Rand source for randomness. A nil rng is
// a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with seed and assigns it as the
// RNG source. Use this for reproducible randomness.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

func (c *config) rand() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}
	return rand.New(rand.NewSource(1))
}
