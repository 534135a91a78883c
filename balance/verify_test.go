// SPDX-License-Identifier: MIT
package balance_test

import (
	"testing"

	"github.com/katalvlaran/lvchem/balance"
	"github.com/katalvlaran/lvchem/formula"
	"github.com/stretchr/testify/assert"
)

func water(r0, r1, p0 int) *balance.Equation {
	return &balance.Equation{
		Reactants:            []string{"H2", "O2"},
		Products:             []string{"H2O"},
		ReactantCoefficients: []int{r0, r1},
		ProductCoefficients:  []int{p0},
		Coefficients:         []int{r0, r1, p0},
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	assert.NoError(t, balance.Verify(water(2, 1, 2)))
	assert.NoError(t, balance.Verify(water(4, 2, 4)), "non-minimal but conserving")

	assert.ErrorIs(t, balance.Verify(water(1, 1, 1)), balance.ErrUnbalanced)
	assert.ErrorIs(t, balance.Verify(water(0, 0, 0)), balance.ErrUnbalanced)
	assert.ErrorIs(t, balance.Verify(water(-2, -1, -2)), balance.ErrUnbalanced)
	assert.ErrorIs(t, balance.Verify(nil), balance.ErrEmptySide)

	short := water(2, 1, 2)
	short.ProductCoefficients = nil
	assert.ErrorIs(t, balance.Verify(short), balance.ErrUnbalanced)

	bad := water(2, 1, 2)
	bad.Products = []string{"H2o"}
	assert.ErrorIs(t, balance.Verify(bad), formula.ErrParse)
}

func TestVerify_LargeCoefficients(t *testing.T) {
	t.Parallel()

	// 4 * 2^62 and 8 * 2^62 agree modulo 2^64 but differ by 2^64.
	uneven := &balance.Equation{
		Reactants:            []string{"H4"},
		Products:             []string{"H8"},
		ReactantCoefficients: []int{1 << 62},
		ProductCoefficients:  []int{1 << 62},
	}
	assert.ErrorIs(t, balance.Verify(uneven), balance.ErrUnbalanced)

	even := &balance.Equation{
		Reactants:            []string{"H4"},
		Products:             []string{"H2", "H2"},
		ReactantCoefficients: []int{1 << 62},
		ProductCoefficients:  []int{1 << 62, 1 << 62},
	}
	assert.NoError(t, balance.Verify(even))
}
