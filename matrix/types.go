// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface consumed by the kernels.
package matrix

import "math/big"

// Matrix represents a two-dimensional mutable array of exact rationals.
//
// Implementations must return copies from At and store copies in Set so that
// callers can never alias internal storage.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves a copy of the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (*big.Rat, error)

	// Set stores a copy of v at position (i, j).
	// Returns ErrOutOfRange on invalid indices and ErrNilEntry if v is nil.
	Set(i, j int, v *big.Rat) error

	// Clone returns a deep copy of the matrix.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Vector is a column of exact rationals, e.g. one null-space basis vector.
type Vector []*big.Rat
