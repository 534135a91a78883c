// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the guards every kernel runs first.
//  - Return tagged sentinels so call sites can match with errors.Is.

package matrix

import (
	"fmt"
	"math/big"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden behind the interface.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures m is non-nil and has at least one row and column.
func ValidateShape(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}

	return nil
}

// ValidateVector ensures v is non-empty and holds no nil entries.
func ValidateVector(v Vector) error {
	if len(v) == 0 {
		return validatorErrorf("ValidateVector", ErrInvalidDimensions)
	}
	for i, x := range v {
		if x == nil {
			return validatorErrorf(fmt.Sprintf("ValidateVector[%d]", i), ErrNilEntry)
		}
	}

	return nil
}

// IsZeroVector reports whether every entry of v is zero. Nil entries count as zero.
func IsZeroVector(v Vector) bool {
	for _, x := range v {
		if x != nil && x.Sign() != 0 {
			return false
		}
	}

	return true
}

// isIntegral reports whether x has denominator 1.
func isIntegral(x *big.Rat) bool {
	return x.IsInt()
}
