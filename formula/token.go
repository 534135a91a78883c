// SPDX-License-Identifier: MIT

package formula

import "math"

// MaxCount bounds every multiplier and every accumulated atom count.
const MaxCount = math.MaxInt32

// TokenKind classifies a Token.
type TokenKind int

const (
	// TokenSymbol is an element symbol such as "O" or "Na".
	TokenSymbol TokenKind = iota
	// TokenOpen is "(".
	TokenOpen
	// TokenClose is ")".
	TokenClose
	// TokenNumber is a run of digits; Count holds its value.
	TokenNumber
)

// String returns a short name for the kind.
func (k TokenKind) String() string {
	switch k {
	case TokenSymbol:
		return "symbol"
	case TokenOpen:
		return "open"
	case TokenClose:
		return "close"
	case TokenNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Token is one lexeme of a formula. Pos is its byte offset in the input.
type Token struct {
	Kind  TokenKind
	Text  string
	Count int
	Pos   int
}

// Tokenize splits formula into tokens, left to right.
//
// Implementation:
//   - Stage 1: an uppercase letter starts a symbol that absorbs every
//     following lowercase letter.
//   - Stage 2: a digit run becomes one TokenNumber ("12" is twelve), and must
//     directly follow a symbol or ")".
//   - Stage 3: "(" and ")" become group tokens; balance is checked later by
//     Decompose, which knows the nesting.
//
// Errors: *ParseError for empty input, lowercase-led symbols, dangling or zero
// numbers, overflow and any character outside [A-Za-z0-9()].
func Tokenize(formula string) ([]Token, error) {
	if formula == "" {
		return nil, parseErr(formula, 0, ReasonEmpty)
	}

	toks := make([]Token, 0, len(formula))
	i := 0
	for i < len(formula) {
		c := formula[i]
		switch {
		case isUpper(c):
			start := i
			i++
			for i < len(formula) && isLower(formula[i]) {
				i++
			}
			toks = append(toks, Token{Kind: TokenSymbol, Text: formula[start:i], Pos: start})

		case isLower(c):
			return nil, parseErr(formula, i, ReasonLowercase)

		case isDigit(c):
			start := i
			if len(toks) == 0 || (toks[len(toks)-1].Kind != TokenSymbol && toks[len(toks)-1].Kind != TokenClose) {
				return nil, parseErr(formula, start, ReasonDanglingNumber)
			}
			n := 0
			for i < len(formula) && isDigit(formula[i]) {
				d := int(formula[i] - '0')
				if n > (MaxCount-d)/10 {
					return nil, parseErr(formula, start, ReasonOverflow)
				}
				n = n*10 + d
				i++
			}
			if n == 0 {
				return nil, parseErr(formula, start, ReasonZeroCount)
			}
			toks = append(toks, Token{Kind: TokenNumber, Text: formula[start:i], Count: n, Pos: start})

		case c == '(':
			toks = append(toks, Token{Kind: TokenOpen, Text: "(", Pos: i})
			i++

		case c == ')':
			toks = append(toks, Token{Kind: TokenClose, Text: ")", Pos: i})
			i++

		default:
			return nil, parseErr(formula, i, ReasonUnexpected)
		}
	}

	return toks, nil
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
