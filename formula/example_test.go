// SPDX-License-Identifier: MIT
package formula_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvchem/formula"
)

// ExampleDecompose expands a parenthesized group.
func ExampleDecompose() {
	c, err := formula.Decompose("Al2(SO4)3")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(c)
	// Output:
	// Al:2 O:12 S:3
}

// ExampleDecompose_error shows the position reported for a malformed formula.
func ExampleDecompose_error() {
	_, err := formula.Decompose("h2o")
	var pe *formula.ParseError
	if errors.As(err, &pe) {
		fmt.Println(pe.Pos, pe.Reason)
	}
	// Output:
	// 0 element symbol must start with an uppercase letter
}
