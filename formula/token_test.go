// SPDX-License-Identifier: MIT
package formula_test

import (
	"testing"

	"github.com/katalvlaran/lvchem/formula"
	"github.com/stretchr/testify/require"
)

func TestTokenize_MergesSymbolsAndNumbers(t *testing.T) {
	t.Parallel()

	toks, err := formula.Tokenize("Al2(SO4)12")
	require.NoError(t, err)

	type short struct {
		kind  formula.TokenKind
		text  string
		count int
		pos   int
	}
	got := make([]short, len(toks))
	for i, tk := range toks {
		got[i] = short{tk.Kind, tk.Text, tk.Count, tk.Pos}
	}
	require.Equal(t, []short{
		{formula.TokenSymbol, "Al", 0, 0},
		{formula.TokenNumber, "2", 2, 2},
		{formula.TokenOpen, "(", 0, 3},
		{formula.TokenSymbol, "S", 0, 4},
		{formula.TokenSymbol, "O", 0, 5},
		{formula.TokenNumber, "4", 4, 6},
		{formula.TokenClose, ")", 0, 7},
		{formula.TokenNumber, "12", 12, 8},
	}, got)
}

func TestTokenKind_String(t *testing.T) {
	t.Parallel()
	require.Equal(t, "symbol", formula.TokenSymbol.String())
	require.Equal(t, "open", formula.TokenOpen.String())
	require.Equal(t, "close", formula.TokenClose.String())
	require.Equal(t, "number", formula.TokenNumber.String())
	require.Equal(t, "unknown", formula.TokenKind(42).String())
}
