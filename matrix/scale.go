// SPDX-License-Identifier: MIT

package matrix

import "math/big"

// IntegerScale returns the smallest integer vector parallel to v with the
// same orientation: v is multiplied by the least common multiple of its
// denominators, then divided by the greatest common divisor of the resulting
// numerators. Signs are preserved.
//
// Example: (1/2, -3/4, 1) → (2, -3, 4).
//
// Errors:
//   - ErrInvalidDimensions / ErrNilEntry from ValidateVector.
//   - ErrZeroVector if every entry is zero.
//
// Complexity: O(n) big-integer gcd operations.
func IntegerScale(v Vector) ([]*big.Int, error) {
	if err := ValidateVector(v); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if IsZeroVector(v) {
		return nil, matrixErrorf(opScale, ErrZeroVector)
	}

	// Stage 1: least common multiple of denominators (skipped when integral)
	lcm := big.NewInt(1)
	g := new(big.Int)
	for _, x := range v {
		if isIntegral(x) {
			continue
		}
		d := x.Denom()
		g.GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Quo(d, g))
	}

	// Stage 2: clear denominators
	out := make([]*big.Int, len(v))
	scaled := new(big.Rat)
	lcmRat := new(big.Rat).SetInt(lcm)
	for i, x := range v {
		scaled.Mul(x, lcmRat)
		out[i] = new(big.Int).Set(scaled.Num()) // scaled is integral here
	}

	// Stage 3: divide through by the gcd of the numerators
	gcd := new(big.Int)
	abs := new(big.Int)
	for _, n := range out {
		if n.Sign() == 0 {
			continue
		}
		abs.Abs(n)
		if gcd.Sign() == 0 {
			gcd.Set(abs)
			continue
		}
		gcd.GCD(nil, nil, gcd, abs)
	}
	if gcd.Cmp(big.NewInt(1)) != 0 {
		for _, n := range out {
			n.Quo(n, gcd)
		}
	}

	return out, nil
}
