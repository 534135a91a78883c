// SPDX-License-Identifier: MIT
package molar_test

import (
	"testing"

	"github.com/katalvlaran/lvchem/formula"
	"github.com/katalvlaran/lvchem/molar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Table(t *testing.T) {
	t.Parallel()
	tab := molar.Default()
	require.Equal(t, 118, tab.Len())
	assert.Same(t, tab, molar.Default())

	els := tab.Elements()
	for i, e := range els {
		assert.Equal(t, i+1, e.Number, e.Symbol)
		assert.Positive(t, e.Weight, e.Symbol)
	}

	no, ok := tab.Lookup("No")
	require.True(t, ok)
	assert.Equal(t, "Nobelium", no.Name)

	_, ok = tab.Lookup("Xx")
	assert.False(t, ok)
}

func TestMass(t *testing.T) {
	t.Parallel()

	cases := []struct {
		formula string
		want    float64
	}{
		{"H2O", 18.015},
		{"NaCl", 58.44},
		{"Ca(OH)2", 74.092},
		{"CO2", 44.009},
		{"C6H12O6", 180.156},
	}
	for _, tc := range cases {
		t.Run(tc.formula, func(t *testing.T) {
			t.Parallel()
			got, err := molar.Mass(tc.formula)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestMass_Errors(t *testing.T) {
	t.Parallel()
	_, err := molar.Mass("Xx2")
	assert.ErrorIs(t, err, molar.ErrUnknownElement)

	_, err = molar.Mass("h2o")
	assert.ErrorIs(t, err, formula.ErrParse)
}

func TestParse(t *testing.T) {
	t.Parallel()
	tab, err := molar.Parse([]byte("elements:\n  - {number: 2, symbol: \"D\", name: Deuterium, weight: 2.014}\n  - {number: 1, symbol: \"H\", name: Hydrogen, weight: 1.008}\n"))
	require.NoError(t, err)
	assert.Equal(t, "H", tab.Elements()[0].Symbol)

	m, err := tab.MassOf(formula.Composition{"D": 2})
	require.NoError(t, err)
	assert.InDelta(t, 4.028, m, 1e-9)

	_, err = tab.Mass("H2O")
	assert.ErrorIs(t, err, molar.ErrUnknownElement)

	bad := []string{
		"elements: []",
		"elements:\n  - {number: 1, symbol: \"H\", weight: 0}",
		"elements:\n  - {number: 1, weight: 1}",
		"elements:\n  - {number: 1, symbol: \"H\", weight: 1}\n  - {number: 2, symbol: \"H\", weight: 2}",
		"elements: [",
	}
	for _, b := range bad {
		_, err := molar.Parse([]byte(b))
		assert.ErrorIs(t, err, molar.ErrInvalidTable, b)
	}
}

func TestConcentration(t *testing.T) {
	t.Parallel()

	c, err := molar.FromMoles(0.5, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, c, 1e-12)

	c, err = molar.FromMass("NaCl", 58.44, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c, 1e-9)

	c, err = molar.Dilute(2, 0.1, 0.4)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, c, 1e-12)

	_, err = molar.FromMoles(1, 0)
	assert.ErrorIs(t, err, molar.ErrNonPositiveVolume)
	_, err = molar.FromMoles(-1, 1)
	assert.ErrorIs(t, err, molar.ErrNegativeAmount)
	_, err = molar.FromMass("NaCl", 1, -1)
	assert.ErrorIs(t, err, molar.ErrNonPositiveVolume)
	_, err = molar.FromMass("Qq", 1, 1)
	assert.ErrorIs(t, err, molar.ErrUnknownElement)
	_, err = molar.Dilute(1, 1, 0)
	assert.ErrorIs(t, err, molar.ErrNonPositiveVolume)
	_, err = molar.Dilute(-1, 1, 1)
	assert.ErrorIs(t, err, molar.ErrNegativeAmount)
}
