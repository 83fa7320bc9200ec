// Package cutrank searches for a low GF(2) cut-rank bipartition of a
// simple undirected graph's vertex set using simulated annealing.
//
// Given a graph G=(V,E) and a split of V into rows X and columns Y, the
// cut-rank is the rank, over the two-element field GF(2), of the
// adjacency submatrix indexed by X×Y. This module is a practical
// heuristic search for bipartitions with low cut-rank, not an exact
// minimiser.
//
// The packages are organized bottom-up:
//
//	gf2/        — dense GF(2) bit-matrices: zero/copy/add a block, add a
//	              Boolean product, rank-reduce, block inverse
//	partition/  — a bipartition of a graph plus the invertible core
//	              submatrix and its three derived matrices, updated
//	              incrementally by ApplySwap
//	swapeval/   — read-only cut-rank predictions for any hypothetical
//	              single-element swap, without mutating the partition
//	anneal/     — a Metropolis-style annealing sweep over a temperature
//	              schedule, built on the evaluator and the partition
//	graphgen/   — deterministic and randomized graph/bipartition
//	              construction used to exercise the above
//	regression/ — the named test scenarios as callable Go functions
//
// See SPEC_FULL.md and DESIGN.md for the full component contracts and
// the decisions behind them.
package cutrank
