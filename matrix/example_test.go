// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvchem/matrix"
)

// ExampleNullSpace solves the homogeneous system behind 2 H2 + O2 → 2 H2O.
//
// Rows are elements (H, O); columns are species (H2, O2, H2O) with the
// product column negated.
func ExampleNullSpace() {
	m, _ := matrix.NewDenseFromInts([][]int{
		{2, 0, -2}, // H
		{0, 2, -1}, // O
	})

	basis, _ := matrix.NullSpace(m)
	coeffs, _ := matrix.IntegerScale(basis[0])
	fmt.Println(len(basis), coeffs)
	// Output:
	// 1 [2 1 2]
}

// ExampleRREF prints the reduced form and its pivot columns.
func ExampleRREF() {
	m, _ := matrix.NewDenseFromInts([][]int{{2, 4}, {1, 3}})
	r, pivots, _ := matrix.RREF(m)
	fmt.Print(r)
	fmt.Println(pivots)
	// Output:
	// [1, 0]
	// [0, 1]
	// [0 1]
}
