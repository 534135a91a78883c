// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"
	"math"
	"math/big"
	"slices"
	"sort"

	"github.com/katalvlaran/lvchem/formula"
	"github.com/katalvlaran/lvchem/matrix"
)

// Balance returns the minimal positive integer coefficients that conserve
// every element between reactants and products.
//
// Both lists are sorted alphabetically (byte order) before anything else;
// the returned Equation carries the sorted lists and coefficients aligned to
// them. The caller's slices are not modified.
//
// Stages:
//  1. Guards: non-empty sides, species cap.
//  2. Decompose each species; the first parse error is returned as is.
//  3. Reject differing element sets with ErrElementMismatch.
//  4. Build the stoichiometric matrix and take its null space.
//  5. Dimension 0 → ErrNoSolution; dimension > 1 → ErrIndeterminate unless
//     WithAggregateFreeColumns is set.
//  6. Scale the direction to the smallest integer vector, orient it
//     positive, split into reactant and product coefficients.
//
// Example:
//
//	eq, _ := Balance([]string{"H2", "O2"}, []string{"H2O"})
//	// eq.Coefficients == []int{2, 1, 2}
func Balance(reactants, products []string, opts ...Option) (*Equation, error) {
	o := gatherOptions(opts...)

	// Stage 1: guards
	if len(reactants) == 0 || len(products) == 0 {
		return nil, balanceErrorf(opBalance, ErrEmptySide)
	}
	if n := len(reactants) + len(products); n > o.maxSpecies {
		return nil, fmt.Errorf("%s: %d species, limit %d: %w", opBalance, n, o.maxSpecies, ErrTooManySpecies)
	}

	// Stage 2: canonical order, then decomposition
	rs := sortedCopy(reactants)
	ps := sortedCopy(products)
	rc, err := formula.DecomposeAll(rs)
	if err != nil {
		return nil, balanceErrorf(opBalance, err)
	}
	pc, err := formula.DecomposeAll(ps)
	if err != nil {
		return nil, balanceErrorf(opBalance, err)
	}

	// Stage 3: element sets must agree
	re, pe := formula.ElementSet(rc), formula.ElementSet(pc)
	if !slices.Equal(re, pe) {
		return nil, fmt.Errorf("%s: reactants %v, products %v: %w", opBalance, re, pe, ErrElementMismatch)
	}

	// Stage 4: null space of the stoichiometric matrix
	m, err := StoichiometricMatrix(re, rc, pc)
	if err != nil {
		return nil, balanceErrorf(opBalance, err)
	}
	basis, err := matrix.NullSpace(m)
	if err != nil {
		return nil, balanceErrorf(opBalance, err)
	}
	o.logger.Debug("stoichiometric matrix reduced",
		"elements", len(re), "species", m.Cols(), "nullity", len(basis))

	// Stage 5: pick the balancing direction
	var coeffs []*big.Int
	switch {
	case len(basis) == 0:
		return nil, balanceErrorf(opBalance, ErrNoSolution)
	case len(basis) == 1:
		if coeffs, err = orientPositive(basis[0]); err != nil {
			return nil, balanceErrorf(opBalance, err)
		}
	case !o.aggregate:
		return nil, fmt.Errorf("%s: %d independent reactions: %w", opBalance, len(basis), ErrIndeterminate)
	default:
		if coeffs, err = aggregate(m, basis); err != nil {
			return nil, balanceErrorf(opBalance, err)
		}
	}

	// Stage 6: split
	all, err := toInts(coeffs)
	if err != nil {
		return nil, balanceErrorf(opBalance, err)
	}
	eq := &Equation{
		Reactants:            rs,
		Products:             ps,
		ReactantCoefficients: slices.Clone(all[:len(rs)]),
		ProductCoefficients:  slices.Clone(all[len(rs):]),
		Coefficients:         all,
	}
	o.logger.Debug("reaction balanced", "equation", Format(eq))

	return eq, nil
}

// orientPositive scales v to its smallest integer form and flips the sign so
// every entry is positive. A zero entry or mixed signs mean no strictly
// positive balance exists along v.
func orientPositive(v matrix.Vector) ([]*big.Int, error) {
	ints, err := matrix.IntegerScale(v)
	if err != nil {
		return nil, err
	}

	var pos, neg int
	for _, n := range ints {
		switch n.Sign() {
		case 1:
			pos++
		case -1:
			neg++
		default:
			return nil, ErrNoSolution
		}
	}
	if pos > 0 && neg > 0 {
		return nil, ErrNoSolution
	}
	if neg > 0 {
		for _, n := range ints {
			n.Neg(n)
		}
	}

	return ints, nil
}

// aggregate sums the integer-scaled, absolute-valued basis vectors, reduces
// the sum by its gcd and keeps it only if it still satisfies m·x = 0.
func aggregate(m matrix.Matrix, basis []matrix.Vector) ([]*big.Int, error) {
	sum := make(matrix.Vector, m.Cols())
	for i := range sum {
		sum[i] = new(big.Rat)
	}
	abs := new(big.Rat)
	for _, v := range basis {
		ints, err := matrix.IntegerScale(v)
		if err != nil {
			return nil, err
		}
		for i, n := range ints {
			abs.SetInt(n).Abs(abs)
			sum[i].Add(sum[i], abs)
		}
	}

	residual, err := matrix.MulVec(m, sum)
	if err != nil {
		return nil, err
	}
	if !matrix.IsZeroVector(residual) {
		return nil, fmt.Errorf("aggregated coefficients do not conserve elements: %w", ErrIndeterminate)
	}

	ints, err := matrix.IntegerScale(sum)
	if err != nil {
		return nil, err
	}
	for _, n := range ints {
		if n.Sign() <= 0 {
			return nil, fmt.Errorf("aggregated coefficients not positive: %w", ErrIndeterminate)
		}
	}

	return ints, nil
}

func toInts(xs []*big.Int) ([]int, error) {
	out := make([]int, len(xs))
	for i, x := range xs {
		if !x.IsInt64() || x.Int64() > math.MaxInt {
			return nil, fmt.Errorf("coefficient %s: %w", x, ErrCoefficientOverflow)
		}
		out[i] = int(x.Int64())
	}

	return out, nil
}

func sortedCopy(xs []string) []string {
	out := slices.Clone(xs)
	sort.Strings(out)

	return out
}
