// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinels are returned directly or wrapped with the method and
// coordinates; match them with errors.Is.
var (
	// ErrInvalidDimensions indicates a requested shape with rows or cols <= 0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside the shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf indicates a non-finite value under the strict numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
