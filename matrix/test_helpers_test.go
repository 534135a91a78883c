// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the rational kernels.
//   • Keep assertions readable by comparing RatString forms.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lvchem/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type, forcing the interface
// fallback path in kernels that special-case *Dense.
type hide struct{ matrix.Matrix }

// MustInts builds a *Dense from an integer grid or fails the test.
func MustInts(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromInts(rows)
	require.NoError(t, err)

	return m
}

// RatStrings renders every entry of m in row-major order.
func RatStrings(t *testing.T, m matrix.Matrix) [][]string {
	t.Helper()
	out := make([][]string, m.Rows())
	for i := range out {
		out[i] = make([]string, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v.RatString()
		}
	}

	return out
}

// VecStrings renders a vector as RatStrings.
func VecStrings(v matrix.Vector) []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = x.RatString()
	}

	return out
}

// Vec builds a Vector from "a/b" literals.
func Vec(t *testing.T, lits ...string) matrix.Vector {
	t.Helper()
	v := make(matrix.Vector, len(lits))
	for i, s := range lits {
		r, ok := new(big.Rat).SetString(s)
		require.Truef(t, ok, "bad rational literal %q", s)
		v[i] = r
	}

	return v
}
