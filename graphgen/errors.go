// SPDX-License-Identifier: MIT
package graphgen

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates a requested graph size is smaller than the
// minimum the constructor can build.
var ErrTooFewNodes = errors.New("graphgen: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("graphgen: probability out of range")

// ErrInvalidPortion indicates a partition portion outside [0,1].
var ErrInvalidPortion = errors.New("graphgen: portion out of range")

func errorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
