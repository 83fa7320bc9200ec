// SPDX-License-Identifier: MIT
package regression

import (
	"errors"
	"fmt"
)

// ErrTooFewTrials indicates a non-positive trial count was requested.
var ErrTooFewTrials = errors.New("regression: trials must be positive")

func errorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
