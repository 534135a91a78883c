// SPDX-License-Identifier: MIT

package formula

import (
	"sort"
	"strconv"
	"strings"
)

// Composition maps an element symbol to its atom count in one formula unit.
// A symbol absent from the map has count 0. Values returned by Decompose are
// never mutated by this package; use Clone before editing.
type Composition map[string]int

// Elements returns the element symbols in ascending order.
func (c Composition) Elements() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Count returns the number of atoms of symbol, 0 when absent.
func (c Composition) Count(symbol string) int {
	return c[symbol]
}

// Atoms returns the total number of atoms.
func (c Composition) Atoms() int {
	total := 0
	for _, n := range c {
		total += n
	}

	return total
}

// Clone returns an independent copy.
func (c Composition) Clone() Composition {
	out := make(Composition, len(c))
	for k, v := range c {
		out[k] = v
	}

	return out
}

// String renders the composition in symbol order, e.g. "H:2 O:1".
func (c Composition) String() string {
	var sb strings.Builder
	for i, el := range c.Elements() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(el)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(c[el]))
	}

	return sb.String()
}

// ElementSet returns the sorted union of element symbols over comps.
func ElementSet(comps []Composition) []string {
	seen := make(map[string]struct{})
	for _, c := range comps {
		for el := range c {
			seen[el] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for el := range seen {
		out = append(out, el)
	}
	sort.Strings(out)

	return out
}
