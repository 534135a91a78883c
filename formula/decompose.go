// SPDX-License-Identifier: MIT

package formula

// group is one open level of parentheses while decomposing.
type group struct {
	counts Composition
	open   int // byte offset of "(", -1 for the top level
	parts  int // symbols or sub-groups seen at this level
}

// Decompose parses formula into a Composition.
//
// Implementation:
//
//	Stage 1 (Tokenize): see Tokenize.
//	Stage 2 (Execute): walk the tokens with a stack of groups. A symbol adds
//	  its count (the following number, else 1) to the innermost group. ")"
//	  pops the innermost group, multiplies it by the following number (else 1)
//	  and merges it into its parent.
//	Stage 3 (Finalize): reject unclosed groups and return the top level.
//
// Example:
//
//	c, _ := Decompose("Ca(OH)2") // Ca:1 H:2 O:2
//
// Errors: *ParseError, see the package documentation.
// Complexity: O(n) tokens plus the merge cost of each closed group.
func Decompose(formula string) (Composition, error) {
	// Stage 1: Tokenize
	toks, err := Tokenize(formula)
	if err != nil {
		return nil, err
	}

	// Stage 2: Execute
	stack := []*group{{counts: Composition{}, open: -1}}
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		top := stack[len(stack)-1]

		switch tok.Kind {
		case TokenSymbol:
			n := 1
			if i+1 < len(toks) && toks[i+1].Kind == TokenNumber {
				n = toks[i+1].Count
				i++
			}
			if top.counts[tok.Text] > MaxCount-n {
				return nil, parseErr(formula, tok.Pos, ReasonOverflow)
			}
			top.counts[tok.Text] += n
			top.parts++

		case TokenOpen:
			stack = append(stack, &group{counts: Composition{}, open: tok.Pos})

		case TokenClose:
			if len(stack) == 1 {
				return nil, parseErr(formula, tok.Pos, ReasonStrayClose)
			}
			if top.parts == 0 {
				return nil, parseErr(formula, top.open, ReasonEmptyGroup)
			}
			k := 1
			if i+1 < len(toks) && toks[i+1].Kind == TokenNumber {
				k = toks[i+1].Count
				i++
			}
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			for el, n := range top.counts {
				if n > MaxCount/k || parent.counts[el] > MaxCount-n*k {
					return nil, parseErr(formula, tok.Pos, ReasonOverflow)
				}
				parent.counts[el] += n * k
			}
			parent.parts++

		case TokenNumber:
			// Tokenize only emits numbers after a symbol or ")", both of which
			// consume it above.
			return nil, parseErr(formula, tok.Pos, ReasonDanglingNumber)
		}
	}

	// Stage 3: Finalize
	if len(stack) > 1 {
		return nil, parseErr(formula, stack[len(stack)-1].open, ReasonUnclosedGroup)
	}

	return stack[0].counts, nil
}

// DecomposeAll decomposes every formula in order. The first failure is
// returned unchanged and no partial result is produced.
func DecomposeAll(formulas []string) ([]Composition, error) {
	out := make([]Composition, len(formulas))
	for i, f := range formulas {
		c, err := Decompose(f)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}

// MustDecompose is like Decompose but panics on error. Intended for
// package-level fixtures and tests with literal formulas.
func MustDecompose(formula string) Composition {
	c, err := Decompose(formula)
	if err != nil {
		panic(err)
	}

	return c
}
