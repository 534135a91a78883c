// SPDX-License-Identifier: MIT

// Package matrix offers exact-rational dense matrices and the elimination
// kernels needed to solve homogeneous linear systems without rounding.
//
// What:
//
//   - Dense: a row-major matrix of *big.Rat values with bounds-checked At/Set.
//   - RREF: reduced row-echelon form by Gauss–Jordan elimination, returning
//     the pivot columns alongside the reduced matrix.
//   - NullSpace: one basis vector per free (non-pivot) column.
//   - IntegerScale: the smallest integer multiple of a rational vector.
//
// Why:
//
//   - Stoichiometric coefficients are exact integers; floating point
//     elimination can cancel small terms and produce 0.999999… coefficients.
//     Every operation here is exact, so a vector read off the null space can
//     be scaled to integers with no tolerance guesswork.
//
// Complexity:
//
//   - RREF: O(r·c·min(r,c)) rational operations, Memory: O(r·c).
//   - NullSpace: RREF + O(c·f) where f is the number of free columns.
//   - IntegerScale: O(n) gcd/lcm steps on big integers.
//
// Errors:
//
//   - ErrInvalidDimensions: requested rows or cols ≤ 0.
//   - ErrOutOfRange: At/Set index outside the matrix.
//   - ErrNilMatrix: nil matrix passed to a kernel.
//   - ErrNilEntry: nil *big.Rat passed to Set or IntegerScale.
//   - ErrRagged: rows of differing lengths in NewDenseFromInts.
//   - ErrZeroVector: IntegerScale on an all-zero vector.
//
// Determinism:
//
//   - Pivot search scans rows top to bottom and takes the first non-zero
//     entry; exact arithmetic makes magnitude pivoting unnecessary.
package matrix
