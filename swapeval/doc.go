// Package swapeval computes the cut-rank a partition.State would report
// after a hypothetical ApplySwap, without performing the swap.
//
// Single evaluates one (row, column) candidate; Row evaluates every column
// against one fixed row; All evaluates every (row, column) pair. All three
// agree with directly recomputing the rank of the swapped adjacency block
// from scratch, but each candidate costs O(n) instead of the O(n^3) a
// from-scratch recomputation would need.
package swapeval
