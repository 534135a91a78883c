// SPDX-License-Identifier: MIT

// Package cache memoizes balanced equations.
//
// Balancing is deterministic for a given multiset of reactants and products,
// so results are keyed by the sorted species lists (see Key). Two backends
// are provided: an in-process map (NewMemory) and Redis (NewRedis).
// Failures are never cached.
package cache

import (
	"context"
	"slices"
	"sort"
	"strings"

	"github.com/katalvlaran/lvchem/balance"
	"github.com/katalvlaran/lvchem/formula"
)

// Cache stores balanced equations by key.
type Cache interface {
	// Get returns the cached equation and true, or nil and false on a miss.
	Get(ctx context.Context, key string) (*balance.Equation, bool, error)
	// Set stores eq under key.
	Set(ctx context.Context, key string, eq *balance.Equation) error
}

// Key returns the canonical cache key for a reaction: both sides sorted,
// species joined by "+", sides joined by "=". Input slices are not modified.
// The key is only unambiguous for species that parse as formulas, which
// never contain "+" or "="; Balance checks that before any lookup.
//
//	Key([]string{"O2", "H2"}, []string{"H2O"}) == "H2+O2=H2O"
func Key(reactants, products []string) string {
	return joinSorted(reactants) + "=" + joinSorted(products)
}

func joinSorted(xs []string) string {
	s := slices.Clone(xs)
	sort.Strings(s)

	return strings.Join(s, "+")
}

// Balance returns the cached equation for the reaction or computes it with
// balance.Balance and stores it. A cache read or write failure does not fail
// the call; the error from balancing is returned unchanged.
// Species that do not parse bypass the cache entirely.
// The key does not include opts, so a Cache must only serve one option set.
func Balance(ctx context.Context, c Cache, reactants, products []string, opts ...balance.Option) (eq *balance.Equation, hit bool, err error) {
	if c == nil || !parses(reactants) || !parses(products) {
		eq, err = balance.Balance(reactants, products, opts...)

		return eq, false, err
	}

	key := Key(reactants, products)
	if eq, ok, gerr := c.Get(ctx, key); gerr == nil && ok {
		return eq, true, nil
	}

	eq, err = balance.Balance(reactants, products, opts...)
	if err != nil {
		return nil, false, err
	}
	_ = c.Set(ctx, key, eq)

	return eq, false, nil
}

func parses(species []string) bool {
	_, err := formula.DecomposeAll(species)

	return err == nil
}

func cloneEquation(eq *balance.Equation) *balance.Equation {
	if eq == nil {
		return nil
	}

	return &balance.Equation{
		Reactants:            slices.Clone(eq.Reactants),
		Products:             slices.Clone(eq.Products),
		ReactantCoefficients: slices.Clone(eq.ReactantCoefficients),
		ProductCoefficients:  slices.Clone(eq.ProductCoefficients),
		Coefficients:         slices.Clone(eq.Coefficients),
	}
}
