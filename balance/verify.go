// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvchem/formula"
)

// Verify reports whether eq conserves every element and carries only
// positive coefficients. It re-decomposes every species, so it also accepts
// equations that were not produced by Balance.
//
// Errors:
//   - ErrEmptySide if a side is empty.
//   - ErrUnbalanced for misaligned lengths, a non-positive coefficient, or
//     an element whose reactant and product totals differ.
//   - *formula.ParseError if a species fails to parse.
func Verify(eq *Equation) error {
	if eq == nil || len(eq.Reactants) == 0 || len(eq.Products) == 0 {
		return balanceErrorf(opVerify, ErrEmptySide)
	}
	if len(eq.ReactantCoefficients) != len(eq.Reactants) || len(eq.ProductCoefficients) != len(eq.Products) {
		return fmt.Errorf("%s: coefficient count does not match species count: %w", opVerify, ErrUnbalanced)
	}

	totals := make(map[string]*big.Int)
	if err := accumulate(totals, eq.Reactants, eq.ReactantCoefficients, 1); err != nil {
		return err
	}
	if err := accumulate(totals, eq.Products, eq.ProductCoefficients, -1); err != nil {
		return err
	}
	for _, el := range sortedKeys(totals) {
		if totals[el].Sign() != 0 {
			return fmt.Errorf("%s: element %s off by %d: %w", opVerify, el, totals[el], ErrUnbalanced)
		}
	}

	return nil
}

// accumulate adds sign*coeff*count per element. Products of a coefficient
// and a count can exceed int, so totals are kept as big.Int.
func accumulate(totals map[string]*big.Int, species []string, coeffs []int, sign int64) error {
	for i, s := range species {
		if coeffs[i] <= 0 {
			return fmt.Errorf("%s: coefficient %d for %s: %w", opVerify, coeffs[i], s, ErrUnbalanced)
		}
		c, err := formula.Decompose(s)
		if err != nil {
			return balanceErrorf(opVerify, err)
		}
		coeff := big.NewInt(int64(coeffs[i]))
		for el, n := range c {
			if totals[el] == nil {
				totals[el] = new(big.Int)
			}
			term := new(big.Int).Mul(coeff, big.NewInt(sign*int64(n)))
			totals[el].Add(totals[el], term)
		}
	}

	return nil
}

func sortedKeys(m map[string]*big.Int) []string {
	c := make(formula.Composition, len(m))
	for el := range m {
		c[el] = 0
	}

	return c.Elements()
}
