// SPDX-License-Identifier: MIT

// Package balance: functional configuration for Balance.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values.
//   - Options fields are unexported; public APIs consume ...Option.
package balance

import (
	"log/slog"

	"github.com/katalvlaran/lvchem/internal/logging"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxSpecies bounds reactants+products. The matrix has one column
	// per species, so this caps the elimination cost.
	DefaultMaxSpecies = 64

	// DefaultAggregateFreeColumns keeps the strict policy: a null space with
	// more than one dimension is ErrIndeterminate.
	DefaultAggregateFreeColumns = false
)

const panicMaxSpeciesInvalid = "balance: WithMaxSpecies: n must be >= 2"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	maxSpecies int          // DefaultMaxSpecies
	aggregate  bool         // DefaultAggregateFreeColumns
	logger     *slog.Logger // no-op unless WithLogger
}

// WithMaxSpecies caps len(reactants)+len(products).
// Panics if n < 2, since a reaction needs at least one species on each side.
func WithMaxSpecies(n int) Option {
	if n < 2 {
		panic(panicMaxSpeciesInvalid)
	}

	return func(o *Options) { o.maxSpecies = n }
}

// WithAggregateFreeColumns accepts reactions whose null space has several
// dimensions by summing the integer-scaled, absolute-valued basis vectors.
// The sum is kept only if it is strictly positive and still conserves every
// element; otherwise Balance returns ErrIndeterminate.
//
// The result is one valid balance among many; callers that need a specific
// combination must constrain the reaction instead.
func WithAggregateFreeColumns() Option {
	return func(o *Options) { o.aggregate = true }
}

// WithLogger routes debug traces (matrix shape, rank, null-space dimension)
// to l. A nil logger restores the no-op default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = logging.NewNop()
		}
		o.logger = l
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		maxSpecies: DefaultMaxSpecies,
		aggregate:  DefaultAggregateFreeColumns,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
