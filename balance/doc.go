// SPDX-License-Identifier: MIT

// Package balance finds the minimal positive integer stoichiometric
// coefficients of a chemical reaction.
//
// What:
//
//   - Balance sorts reactants and products alphabetically, decomposes every
//     species with package formula, builds the element × species matrix
//     (product columns negated), reduces it over the rationals and reads the
//     coefficients off the one-dimensional null space.
//   - Verify re-checks conservation of every element for an Equation.
//   - Format renders "2 H2 + O2 → 2 H2O", omitting coefficients of 1.
//   - ParseReaction splits "H2 + O2 -> H2O" into species lists.
//
// Ordering:
//
//	Output coefficients always align with the SORTED species lists held in
//	Equation.Reactants / Equation.Products, not with the caller's order.
//
// Errors (all terminal, no partial result):
//
//   - *formula.ParseError: a species failed to parse (matches formula.ErrParse).
//   - ErrElementMismatch: reactant and product element sets differ; checked
//     before any matrix work.
//   - ErrNoSolution: the null space is trivial, or its only direction has a
//     zero or mixed-sign entry so no strictly positive balance exists.
//   - ErrIndeterminate: the null space has more than one dimension (several
//     independent reactions); see WithAggregateFreeColumns.
//   - ErrEmptySide, ErrTooManySpecies, ErrCoefficientOverflow: input guards.
//
// Concurrency:
//
//	Balance keeps no global state and may be called from many goroutines.
//
// Complexity:
//
//	O(e·s·min(e,s)) exact rational operations for e elements and s species.
package balance
