// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping.
const (
	opRREF      = "RREF"
	opRank      = "Rank"
	opNullSpace = "NullSpace"
	opScale     = "IntegerScale"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RREF returns the reduced row-echelon form of m together with its pivot
// columns in ascending order. m is not mutated.
//
// Implementation (Gauss–Jordan):
//
//	Stage 1 (Validate): m non-nil with positive shape.
//	Stage 2 (Prepare): deep-copy m into a *Dense work matrix.
//	Stage 3 (Execute): for each column, take the first row at or below the
//	  current lead row with a non-zero entry, swap it up, scale it so the pivot
//	  is 1, then clear the column in every other row.
//	Stage 4 (Finalize): return the work matrix and the pivot columns.
//
// Every pivot equals 1 and is the only non-zero entry in its column; rows
// below the last pivot row are zero.
//
// Complexity: O(r·c·min(r,c)) rational operations, O(r·c) memory.
func RREF(m Matrix) (*Dense, []int, error) {
	// Stage 1: Validate
	if err := ValidateShape(m); err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}

	// Stage 2: Prepare
	work, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opRREF, err)
	}

	// Stage 3: Execute
	var (
		rows, cols = work.r, work.c
		lead       int            // next pivot row
		col, i, j  int            // loop indices
		pivotRow   int            // row holding the pivot for col
		inv        = new(big.Rat) // 1/pivot
		factor     = new(big.Rat) // multiple of the pivot row to subtract
		tmp        = new(big.Rat) // scratch product
		pivots     = make([]int, 0, min(rows, cols))
	)
	for col = 0; col < cols && lead < rows; col++ {
		// find pivot: first non-zero at or below lead
		pivotRow = -1
		for i = lead; i < rows; i++ {
			if work.cell(i, col).Sign() != 0 {
				pivotRow = i
				break
			}
		}
		if pivotRow < 0 {
			continue // free column
		}
		work.swapRows(pivotRow, lead)

		// normalize pivot row so the pivot is exactly 1
		inv.Inv(work.cell(lead, col))
		for j = col; j < cols; j++ {
			c := work.cell(lead, j)
			c.Mul(c, inv)
		}

		// eliminate col from every other row
		for i = 0; i < rows; i++ {
			if i == lead {
				continue
			}
			factor.Set(work.cell(i, col))
			if factor.Sign() == 0 {
				continue
			}
			for j = col; j < cols; j++ {
				tmp.Mul(factor, work.cell(lead, j))
				c := work.cell(i, j)
				c.Sub(c, tmp)
			}
		}

		pivots = append(pivots, col)
		lead++
	}

	// Stage 4: Finalize
	return work, pivots, nil
}

// Rank returns the number of pivots in the reduced row-echelon form of m.
func Rank(m Matrix) (int, error) {
	_, pivots, err := RREF(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return len(pivots), nil
}

// FreeColumns returns the columns in [0, cols) that are not listed in pivots,
// in ascending order. pivots must be ascending, as returned by RREF.
func FreeColumns(pivots []int, cols int) []int {
	free := make([]int, 0, cols-len(pivots))
	p := 0
	for col := 0; col < cols; col++ {
		if p < len(pivots) && pivots[p] == col {
			p++
			continue
		}
		free = append(free, col)
	}

	return free
}
