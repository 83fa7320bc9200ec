package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrNonSquareAdjacency indicates the adjacency matrix is not square.
	ErrNonSquareAdjacency = errors.New("partition: adjacency matrix must be square")

	// ErrNonSymmetricAdjacency indicates adjacency[i][j] != adjacency[j][i] for some i, j.
	ErrNonSymmetricAdjacency = errors.New("partition: adjacency matrix must be symmetric")

	// ErrNonZeroDiagonal indicates adjacency[i][i] != 0 for some i (a self-loop).
	ErrNonZeroDiagonal = errors.New("partition: adjacency diagonal must be zero")

	// ErrSideFlagLength indicates the side-flag slice does not have one entry per node.
	ErrSideFlagLength = errors.New("partition: side flags must have one entry per node")

	// ErrIndexOutOfRange indicates a node index passed to an exported method is outside [0, n).
	ErrIndexOutOfRange = errors.New("partition: node index out of range")

	// ErrInvalidSwapEndpoints indicates ApplySwap was called with row not on the row side,
	// or column not on the column side, of the current bipartition.
	ErrInvalidSwapEndpoints = errors.New("partition: row must be on the row side and column on the column side")
)

func errorf(method string, err error) error {
	return fmt.Errorf("partition.%s: %w", method, err)
}

// invariantError marks a condition that the incremental maintenance scheme
// assumes can never occur for a State built and mutated only through this
// package's exported API. Seeing one means the bookkeeping invariants have
// been violated, not that the caller supplied bad input.
type invariantError struct {
	tag string
}

func (e *invariantError) Error() string {
	return "partition: invariant violated: " + e.tag
}

func panicInvariant(tag string) {
	panic(&invariantError{tag: tag})
}
