// SPDX-License-Identifier: MIT

package balance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvchem/formula"
)

var (
	// ErrElementMismatch indicates that reactants and products contain different element sets.
	ErrElementMismatch = errors.New("balance: reactant and product elements differ")

	// ErrNoSolution indicates that no strictly positive balance exists.
	ErrNoSolution = errors.New("balance: no solution")

	// ErrIndeterminate indicates a null space with more than one dimension.
	ErrIndeterminate = errors.New("balance: indeterminate, more than one independent reaction")

	// ErrEmptySide indicates an empty reactant or product list.
	ErrEmptySide = errors.New("balance: reactants and products must be non-empty")

	// ErrTooManySpecies indicates more species than Options allow.
	ErrTooManySpecies = errors.New("balance: too many species")

	// ErrCoefficientOverflow indicates a coefficient that does not fit in an int.
	ErrCoefficientOverflow = errors.New("balance: coefficient overflow")

	// ErrUnbalanced is returned by Verify when an element is not conserved.
	ErrUnbalanced = errors.New("balance: equation is not balanced")

	// ErrMalformedReaction is returned by ParseReaction for unusable input.
	ErrMalformedReaction = errors.New("balance: malformed reaction")
)

// Operation tags for error wrapping.
const (
	opBalance       = "Balance"
	opVerify        = "Verify"
	opParseReaction = "ParseReaction"
)

func balanceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Kind names for user-facing surfaces (HTTP, MCP, CLI --json).
const (
	KindParse           = "parse"
	KindElementMismatch = "element_mismatch"
	KindNoSolution      = "no_solution"
	KindIndeterminate   = "indeterminate"
	KindEmptySide       = "empty_side"
	KindTooManySpecies  = "too_many_species"
	KindOverflow        = "overflow"
	KindUnbalanced      = "unbalanced"
	KindMalformed       = "malformed_reaction"
	KindInternal        = "internal"
)

// Kind collapses err into a stable kind name. It returns "" for a nil error
// and KindInternal for anything it does not recognize.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, formula.ErrParse):
		return KindParse
	case errors.Is(err, ErrElementMismatch):
		return KindElementMismatch
	case errors.Is(err, ErrNoSolution):
		return KindNoSolution
	case errors.Is(err, ErrIndeterminate):
		return KindIndeterminate
	case errors.Is(err, ErrEmptySide):
		return KindEmptySide
	case errors.Is(err, ErrTooManySpecies):
		return KindTooManySpecies
	case errors.Is(err, ErrCoefficientOverflow):
		return KindOverflow
	case errors.Is(err, ErrUnbalanced):
		return KindUnbalanced
	case errors.Is(err, ErrMalformedReaction):
		return KindMalformed
	default:
		return KindInternal
	}
}
