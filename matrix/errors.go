// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation
// tag) and tests match them via errors.Is. Kernels never panic on
// user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// with fmt.Errorf("Op: %w", ErrX); callers match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilEntry indicates a nil *big.Rat where a value was required.
	ErrNilEntry = errors.New("matrix: nil entry")

	// ErrRagged indicates that input rows have differing lengths.
	ErrRagged = errors.New("matrix: rows have differing lengths")

	// ErrZeroVector indicates that a vector with no non-zero entry cannot be scaled.
	ErrZeroVector = errors.New("matrix: zero vector")
)
