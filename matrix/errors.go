// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors, indexers and validators return these sentinels (possibly
// wrapped with call-site context); callers match them via errors.Is.
// No function in this package panics on user-triggered conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so that wrapped chains stay
// greppable in logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the boundary.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive, or that a row-slice input is empty.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// At/Set MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates inconsistent dimensions, e.g. ragged rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
