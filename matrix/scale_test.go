// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lvchem/matrix"
	"github.com/stretchr/testify/require"
)

func TestIntegerScale(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   []string
		want []int64
	}{
		{"clears denominators", []string{"1/2", "-3/4", "1"}, []int64{2, -3, 4}},
		{"divides common factor", []string{"2", "4", "6"}, []int64{1, 2, 3}},
		{"keeps zeros", []string{"0", "3/2"}, []int64{0, 1}},
		{"already minimal", []string{"2", "1", "2"}, []int64{2, 1, 2}},
		{"negative orientation kept", []string{"-1/3", "-2/3"}, []int64{-1, -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.IntegerScale(Vec(t, tc.in...))
			require.NoError(t, err)
			require.Len(t, got, len(tc.want))
			for i, w := range tc.want {
				require.Zerof(t, got[i].Cmp(big.NewInt(w)), "entry %d: got %s want %d", i, got[i], w)
			}
		})
	}
}

func TestIntegerScale_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.IntegerScale(Vec(t, "0", "0"))
	require.ErrorIs(t, err, matrix.ErrZeroVector)

	_, err = matrix.IntegerScale(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.IntegerScale(matrix.Vector{big.NewRat(1, 1), nil})
	require.ErrorIs(t, err, matrix.ErrNilEntry)
}
