// SPDX-License-Identifier: MIT
package balance_test

import (
	"testing"

	"github.com/katalvlaran/lvchem/balance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()
	eq := &balance.Equation{
		Reactants:            []string{"H2", "O2"},
		Products:             []string{"H2O"},
		ReactantCoefficients: []int{2, 1},
		ProductCoefficients:  []int{2},
		Coefficients:         []int{2, 1, 2},
	}
	assert.Equal(t, "2 H2 + O2 → 2 H2O", balance.Format(eq))
	assert.Equal(t, "2 H2 + O2 → 2 H2O", eq.String())
	assert.Equal(t, []string{"H2", "O2", "H2O"}, eq.Species())
	assert.Equal(t, "", balance.Format(nil))
}

func TestParseReaction(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in        string
		reactants []string
		products  []string
	}{
		{"H2 + O2 -> H2O", []string{"H2", "O2"}, []string{"H2O"}},
		{"H2+O2→H2O", []string{"H2", "O2"}, []string{"H2O"}},
		{"  C2H4 + O2 = CO2 + H2O ", []string{"C2H4", "O2"}, []string{"CO2", "H2O"}},
		{"N2 + H2 <=> NH3", []string{"N2", "H2"}, []string{"NH3"}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			r, p, err := balance.ParseReaction(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.reactants, r)
			assert.Equal(t, tc.products, p)
		})
	}
}

func TestParseReaction_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want error
	}{
		{"H2 + O2", balance.ErrMalformedReaction},
		{"", balance.ErrMalformedReaction},
		{" -> H2O", balance.ErrEmptySide},
		{"H2 + O2 -> ", balance.ErrEmptySide},
		{"H2 + + O2 -> H2O", balance.ErrMalformedReaction},
		{"H2 + O2 -> H2O +", balance.ErrMalformedReaction},
		{"H2 + O2 => H2O", balance.ErrMalformedReaction},
		{"H2 + O2 --> H2O", balance.ErrMalformedReaction},
		{"H2 + O2 <- H2O", balance.ErrMalformedReaction},
		{"H2 = O2 = H2O", balance.ErrMalformedReaction},
		{"H2 -> O2 -> H2O", balance.ErrMalformedReaction},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			_, _, err := balance.ParseReaction(tc.in)
			assert.ErrorIs(t, err, tc.want)
			assert.NotEqual(t, balance.KindParse, balance.Kind(err))
		})
	}
}

func TestParseReaction_ThenBalance(t *testing.T) {
	t.Parallel()
	r, p, err := balance.ParseReaction("Fe + O2 -> Fe2O3")
	require.NoError(t, err)
	eq, err := balance.Balance(r, p)
	require.NoError(t, err)
	assert.Equal(t, "4 Fe + 3 O2 → 2 Fe2O3", balance.Format(eq))
}
