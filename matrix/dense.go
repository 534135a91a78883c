// SPDX-License-Identifier: MIT

// Package matrix provides core linear algebra primitives over exact rationals.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing *big.Rat elements in a flat slice.
package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of *big.Rat values.
// r is rows, c is columns, and data holds r*c non-nil elements in row-major order.
type Dense struct {
	r, c int        // number of rows and columns
	data []*big.Rat // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice with one zero Rat per cell.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	// Allocate flat slice; every cell owns its own Rat
	data := make([]*big.Rat, rows*cols)
	for idx := range data {
		data[idx] = new(big.Rat)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromInts builds a Dense from a rectangular integer grid.
// Every row must have the same, non-zero length; otherwise ErrRagged or
// ErrInvalidDimensions is returned.
func NewDenseFromInts(rows [][]int) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromInts: %w", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFromInts: row %d has %d cols, want %d: %w", i, len(row), cols, ErrRagged)
		}
	}

	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, v := range row {
			m.data[i*cols+j].SetInt64(int64(v))
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// cell returns the live pointer stored at (row, col). Kernels use it to update
// entries in place; callers must have validated the indices.
func (m *Dense) cell(row, col int) *big.Rat {
	return m.data[row*m.c+col]
}

// At retrieves a copy of the element at (row, col).
// Complexity: O(1) plus the size of the copied Rat.
func (m *Dense) At(row, col int) (*big.Rat, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Rat).Set(m.data[idx]), nil
}

// Set stores a copy of v at (row, col).
func (m *Dense) Set(row, col int, v *big.Rat) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return denseErrorf("Set", row, col, ErrNilEntry)
	}
	m.data[idx].Set(v)

	return nil
}

// SetInt stores the integer v at (row, col).
func (m *Dense) SetInt(row, col int, v int64) error {
	idx, err := m.indexOf("SetInt", row, col)
	if err != nil {
		return err
	}
	m.data[idx].SetInt64(v)

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	return m.cloneDense()
}

func (m *Dense) cloneDense() *Dense {
	copyData := make([]*big.Rat, len(m.data))
	for idx, v := range m.data {
		copyData[idx] = new(big.Rat).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// swapRows exchanges rows a and b in place by swapping pointers.
func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	ra, rb := a*m.c, b*m.c
	for j := 0; j < m.c; j++ {
		m.data[ra+j], m.data[rb+j] = m.data[rb+j], m.data[ra+j]
	}
}

// String implements fmt.Stringer for easy debugging.
// Entries are printed in lowest terms ("a/b", or "a" when integral).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			sb.WriteString(m.data[i*m.c+j].RatString())
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// toDense converts any Matrix into a freshly allocated *Dense copy.
// *Dense inputs take the fast path (direct slice copy).
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.cloneDense(), nil
	}

	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			if v == nil {
				return nil, denseErrorf("At", i, j, ErrNilEntry)
			}
			out.data[i*out.c+j].Set(v)
		}
	}

	return out, nil
}
