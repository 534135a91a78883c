// SPDX-License-Identifier: MIT

package matrix

import "math/big"

// NullSpace returns a basis of {x : m·x = 0}, one vector per free column of
// the reduced row-echelon form of m, in ascending free-column order.
//
// For a free column f the basis vector has x[f] = 1, every other free entry 0,
// and x[p] = −R[k][f] for the k-th pivot column p. An empty (non-nil) slice
// means the null space is trivial.
//
// Complexity: RREF cost + O(c·f) for f free columns.
func NullSpace(m Matrix) ([]Vector, error) {
	reduced, pivots, err := RREF(m)
	if err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}

	cols := reduced.c
	free := FreeColumns(pivots, cols)
	basis := make([]Vector, 0, len(free))
	for _, f := range free {
		v := make(Vector, cols)
		for j := range v {
			v[j] = new(big.Rat)
		}
		v[f].SetInt64(1)
		for k, p := range pivots {
			v[p].Neg(reduced.cell(k, f))
		}
		basis = append(basis, v)
	}

	return basis, nil
}

// MulVec returns m·v as a fresh Vector. len(v) must equal m.Cols().
func MulVec(m Matrix, v Vector) (Vector, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf("MulVec", err)
	}
	if err := ValidateVector(v); err != nil {
		return nil, matrixErrorf("MulVec", err)
	}
	if len(v) != m.Cols() {
		return nil, matrixErrorf("MulVec", ErrOutOfRange)
	}

	out := make(Vector, m.Rows())
	tmp := new(big.Rat)
	for i := range out {
		out[i] = new(big.Rat)
		for j, x := range v {
			a, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("MulVec", err)
			}
			tmp.Mul(a, x)
			out[i].Add(out[i], tmp)
		}
	}

	return out, nil
}
