// SPDX-License-Identifier: MIT

// Package molar computes molar masses and molar concentrations on top of
// package formula.
//
// The periodic table is embedded as YAML (elements.yaml) and decoded once on
// first use by Default. Custom tables can be built with Parse, for example to
// pin isotopic masses.
//
// All functions are pure; a *Table is read-only after construction and safe
// for concurrent use.
package molar

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvchem/formula"
)

var (
	// ErrUnknownElement indicates a symbol that is not in the table.
	ErrUnknownElement = errors.New("molar: unknown element")

	// ErrInvalidTable indicates malformed element data.
	ErrInvalidTable = errors.New("molar: invalid element table")
)

//go:embed elements.yaml
var elementsYAML []byte

// Element is one row of the periodic table.
type Element struct {
	Number int     `yaml:"number" json:"number"`
	Symbol string  `yaml:"symbol" json:"symbol"`
	Name   string  `yaml:"name" json:"name"`
	Weight float64 `yaml:"weight" json:"weight"` // g/mol
}

// Table maps element symbols to their data.
type Table struct {
	bySymbol map[string]Element
	ordered  []Element // by atomic number
}

type tableFile struct {
	Elements []Element `yaml:"elements"`
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the embedded IUPAC table. It panics only if the embedded
// data is corrupt, which the package tests rule out.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(elementsYAML)
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})

	return defaultTable
}

// Parse decodes a YAML document of the form
//
//	elements:
//	  - {number: 1, symbol: "H", name: Hydrogen, weight: 1.008}
//
// Symbols must be unique and weights positive.
func Parse(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if len(f.Elements) == 0 {
		return nil, fmt.Errorf("%w: no elements", ErrInvalidTable)
	}

	t := &Table{bySymbol: make(map[string]Element, len(f.Elements))}
	for _, e := range f.Elements {
		switch {
		case e.Symbol == "":
			return nil, fmt.Errorf("%w: element %d has no symbol", ErrInvalidTable, e.Number)
		case e.Weight <= 0:
			return nil, fmt.Errorf("%w: %s has weight %v", ErrInvalidTable, e.Symbol, e.Weight)
		}
		if _, dup := t.bySymbol[e.Symbol]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %s", ErrInvalidTable, e.Symbol)
		}
		t.bySymbol[e.Symbol] = e
		t.ordered = append(t.ordered, e)
	}
	sort.SliceStable(t.ordered, func(i, j int) bool { return t.ordered[i].Number < t.ordered[j].Number })

	return t, nil
}

// Len returns the number of elements in t.
func (t *Table) Len() int { return len(t.ordered) }

// Elements returns a copy of all rows ordered by atomic number.
func (t *Table) Elements() []Element {
	return append([]Element(nil), t.ordered...)
}

// Lookup returns the row for symbol.
func (t *Table) Lookup(symbol string) (Element, bool) {
	e, ok := t.bySymbol[symbol]

	return e, ok
}

// MassOf sums count × weight over c in g/mol.
func (t *Table) MassOf(c formula.Composition) (float64, error) {
	var sum float64
	for _, sym := range c.Elements() {
		e, ok := t.bySymbol[sym]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownElement, sym)
		}
		sum += float64(c[sym]) * e.Weight
	}

	return sum, nil
}

// Mass decomposes f and returns its molar mass in g/mol.
// Parse failures are returned unchanged (they match formula.ErrParse).
func (t *Table) Mass(f string) (float64, error) {
	c, err := formula.Decompose(f)
	if err != nil {
		return 0, err
	}

	return t.MassOf(c)
}

// Mass is Default().Mass(f).
func Mass(f string) (float64, error) {
	return Default().Mass(f)
}
