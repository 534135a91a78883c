// SPDX-License-Identifier: MIT

package balance

import (
	"github.com/katalvlaran/lvchem/formula"
	"github.com/katalvlaran/lvchem/matrix"
)

// StoichiometricMatrix builds the element × species matrix for a reaction.
//
// Row i belongs to elements[i]. Column j < len(reactants) holds the count of
// that element in reactants[j]; the remaining columns hold the NEGATED counts
// of the products, so a coefficient vector x balances the reaction exactly
// when M·x = 0. Elements absent from a species contribute 0.
func StoichiometricMatrix(elements []string, reactants, products []formula.Composition) (*matrix.Dense, error) {
	m, err := matrix.NewDense(len(elements), len(reactants)+len(products))
	if err != nil {
		return nil, err
	}

	offset := len(reactants)
	for i, el := range elements {
		for j, c := range reactants {
			if err = m.SetInt(i, j, int64(c.Count(el))); err != nil {
				return nil, err
			}
		}
		for j, c := range products {
			if err = m.SetInt(i, offset+j, -int64(c.Count(el))); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
