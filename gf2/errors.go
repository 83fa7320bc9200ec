package gf2

import (
	"errors"
	"fmt"
)

// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
var ErrInvalidDimensions = errors.New("gf2: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside the valid range.
var ErrIndexOutOfBounds = errors.New("gf2: index out of bounds")

// ErrNilMatrix indicates that a required *Matrix argument was nil.
var ErrNilMatrix = errors.New("gf2: matrix is nil")

// ErrSingular indicates a square block has no GF(2) inverse. Under the
// invariants maintained by package partition this must never occur at
// runtime; a caller reaching this path has a corrupted core submatrix.
var ErrSingular = errors.New("gf2: block is singular")

// errorf wraps an underlying error with the given method context.
func errorf(method string, err error) error {
	return fmt.Errorf("gf2.%s: %w", method, err)
}
