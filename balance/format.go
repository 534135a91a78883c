// SPDX-License-Identifier: MIT

package balance

import (
	"fmt"
	"strconv"
	"strings"
)

// Arrow separates the two sides in Format output.
const Arrow = "→"

// arrows accepted by ParseReaction, longest first.
var arrows = []string{"<=>", "->", "→", "="}

// arrowRunes may not survive inside a side once the arrow is cut out.
const arrowRunes = "<>-=→"

// Format renders eq as "2 H2 + O2 → 2 H2O". A coefficient of 1 is omitted.
func Format(eq *Equation) string {
	if eq == nil {
		return ""
	}
	var sb strings.Builder
	writeSide(&sb, eq.Reactants, eq.ReactantCoefficients)
	sb.WriteString(" " + Arrow + " ")
	writeSide(&sb, eq.Products, eq.ProductCoefficients)

	return sb.String()
}

func writeSide(sb *strings.Builder, species []string, coeffs []int) {
	for i, s := range species {
		if i > 0 {
			sb.WriteString(" + ")
		}
		if i < len(coeffs) && coeffs[i] != 1 {
			sb.WriteString(strconv.Itoa(coeffs[i]))
			sb.WriteByte(' ')
		}
		sb.WriteString(s)
	}
}

// ParseReaction splits a reaction string into reactant and product formulas.
// Sides are separated by the first of "<=>", "->", "→" or "="; species by
// "+". Surrounding whitespace is trimmed. A second arrow, or the remains of
// an unsupported one such as "=>" or "-->", is ErrMalformedReaction.
// Formulas themselves are not validated here; Balance does that.
//
//	ParseReaction("H2 + O2 -> H2O") // ["H2" "O2"], ["H2O"]
func ParseReaction(s string) (reactants, products []string, err error) {
	left, right, ok := splitArrow(s)
	if !ok {
		return nil, nil, fmt.Errorf("%s: %q has no arrow: %w", opParseReaction, s, ErrMalformedReaction)
	}
	if reactants, err = splitSide(left); err != nil {
		return nil, nil, fmt.Errorf("%s: reactants of %q: %w", opParseReaction, s, err)
	}
	if products, err = splitSide(right); err != nil {
		return nil, nil, fmt.Errorf("%s: products of %q: %w", opParseReaction, s, err)
	}

	return reactants, products, nil
}

func splitArrow(s string) (left, right string, ok bool) {
	for _, a := range arrows {
		if l, r, found := strings.Cut(s, a); found {
			return l, r, true
		}
	}

	return "", "", false
}

func splitSide(side string) ([]string, error) {
	side = strings.TrimSpace(side)
	if side == "" {
		return nil, ErrEmptySide
	}
	parts := strings.Split(side, "+")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || strings.ContainsAny(p, arrowRunes) {
			return nil, ErrMalformedReaction
		}
		out = append(out, p)
	}

	return out, nil
}
