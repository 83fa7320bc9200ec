// Package gf2 provides dense bit-matrix primitives over the two-element
// field GF(2), where addition is XOR and multiplication is AND.
//
// Matrix is a row-major bit matrix backed by packed 64-bit words, one word
// per 64 columns of a row. Every primitive addresses a rectangular block of
// a matrix through explicit row-index and column-index lists rather than
// contiguous ranges, so callers can operate on non-contiguous views (such as
// a vertex subset reordered during annealing) without copying data.
//
// The kernel is oblivious to graph semantics: it knows nothing about
// vertices, partitions, or cut-rank. Package partition builds the
// incremental cut-rank machinery on top of these primitives.
//
// Complexity notes are attached to each primitive; as a rule, an operation
// over a block of |R| rows and |C| columns costs O(|R|*|C|), and
// AddProduct over a shared index set K costs O(|R|*|K|*|C|) in the worst
// case, short-circuiting on zero factors.
package gf2
