// SPDX-License-Identifier: MIT
//
// random.go — implementation of Random(nodes, edgeProbability).
//
// Canonical model: an Erdős-Rényi-style graph; each unordered pair {i,j},
// i<j, is an edge independently with probability edgeProbability.
//
// Contract:
//   - nodes >= 1 (else ErrTooFewNodes).
//   - 0 <= edgeProbability <= 1 (else ErrInvalidProbability).
//   - Stable trial order: i ascending, then j ascending (j>i), so results
//     are deterministic for a fixed RNG stream.
//
// Complexity: O(nodes^2) Bernoulli trials.
package graphgen

import "github.com/katalvlaran/cutrank/gf2"

const methodRandom = "Random"

// Random builds an Erdős-Rényi-style random graph over nodes vertices,
// including each edge independently with probability edgeProbability.
func Random(nodes int, edgeProbability float64, opts ...Option) (*gf2.Matrix, error) {
	if nodes < 1 {
		return nil, errorf(methodRandom, ErrTooFewNodes)
	}
	if edgeProbability < 0 || edgeProbability > 1 {
		return nil, errorf(methodRandom, ErrInvalidProbability)
	}

	m, err := gf2.NewMatrix(nodes, nodes)
	if err != nil {
		return nil, errorf(methodRandom, err)
	}

	rng := newConfig(opts...).rand()
	for i := 0; i < nodes-1; i++ {
		for j := i + 1; j < nodes; j++ {
			if rng.Float64() < edgeProbability {
				setEdge(m, i, j)
			}
		}
	}
	return m, nil
}
