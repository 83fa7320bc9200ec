// SPDX-License-Identifier: MIT
//
// Package graphgen builds gf2.Matrix adjacency matrices and the
// partition.State bipartitions used to exercise the cut-rank machinery:
// a deterministic 4-neighbor grid, an Erdős-Rényi-style random graph, and
// a random bipartition over either.
//
// Determinism: Grid never touches randomness. Random and RandomPartition
// consume a *rand.Rand resolved from Options (WithRand/WithSeed); the same
// options and inputs always produce the same matrix or partition.
package graphgen
