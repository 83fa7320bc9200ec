// SPDX-License-Identifier: MIT
//
// Package regression turns the concrete scenarios used to validate the
// cut-rank annealing machinery into callable Go functions instead of a
// pinned output file: a triangle-pair and a complete-bipartite sanity
// check, a grid lower-bound runner, a sparse Erdős-Rényi average, and a
// rank-reduce agreement sweep.
//
// None of this is a command-line tool; it is test-and-benchmark material
// meant to be called from _test.go files or from a caller's own harness.
// GridLowerBound and SparseErdosRenyiAverage drive independent,
// single-threaded anneal.Incremental sweeps; TrianglePair,
// CompleteBipartite and RankReduceAgreement only build partitions and read
// their cut-rank. SparseErdosRenyiAverage fans trials out concurrently with
// golang.org/x/sync/errgroup, but no individual sweep is ever parallelised.
package regression
