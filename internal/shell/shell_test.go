// SPDX-License-Identifier: MIT
package shell_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchem/cache"
	"github.com/katalvlaran/lvchem/internal/shell"
)

func run(t *testing.T, input string, opts ...shell.Option) string {
	t.Helper()
	var out bytes.Buffer
	err := shell.New(strings.NewReader(input), &out, opts...).Run(context.Background())
	require.NoError(t, err)

	return out.String()
}

func lines(xs ...string) string {
	return strings.Join(xs, "\n") + "\n"
}

func TestBalance_RepromptsOnInvalidReaction(t *testing.T) {
	out := run(t, lines(
		"F",
		"h2", "*", "H2O", "*", // parse failure
		"H2", "*", "O2", "*", // element mismatch
		"O2", "H2", "*", "H2O", "*",
		"exit",
	))

	assert.Equal(t, 2, strings.Count(out, shell.MsgInvalidReaction))
	assert.Contains(t, out, "Find hereafter the balanced chemical equation:")
	assert.Contains(t, out, "2 H2 + O2 → 2 H2O")
	assert.Contains(t, out, "Bye!")
}

func TestBalance_UsesCache(t *testing.T) {
	mem := cache.NewMemory()
	run(t, lines("f", "H2", "O2", "*", "H2O", "*", "exit"), shell.WithCache(mem))
	assert.Equal(t, 1, mem.Len())
}

func TestMolarMass(t *testing.T) {
	out := run(t, lines("G", "Xx", "H2O", "exit"))
	assert.Contains(t, out, shell.MsgInvalidFormula)
	assert.Contains(t, out, "➢ M = 18.015 g/mol")
}

func TestConcentration(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"moles", lines("H", "1", "0.5", "0.25", "exit"), "➢ c = 2 mol/L"},
		{"mass", lines("H", "2", "NaCl", "58.44", "1", "exit"), "➢ c = 1 mol/L"},
		{"dilution", lines("H", "3", "2", "0.1", "0.4", "exit"), "➢ c = 0.5 mol/L"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, run(t, tc.input), tc.want)
		})
	}
}

func TestConcentration_InvalidDataReprompts(t *testing.T) {
	out := run(t, lines(
		"H",
		"1", "0.5", "0", // zero volume
		"1", "abc", // not a number
		"9", // unknown mode
		"1", "0.5", "0.25",
		"exit",
	))
	assert.Equal(t, 2, strings.Count(out, shell.MsgInvalidData))
	assert.Contains(t, out, shell.MsgInvalidChoice)
	assert.Contains(t, out, "➢ c = 2 mol/L")
}

func TestMenu(t *testing.T) {
	out := run(t, lines("Z", "exit"))
	assert.Contains(t, out, "What would you like to calculate?")
	assert.Contains(t, out, shell.MsgInvalidChoice)

	out = run(t, lines("exit"), shell.WithRenderer(func(string) (string, error) {
		return "RENDERED MENU\n", nil
	}))
	assert.Contains(t, out, "RENDERED MENU")
	assert.NotContains(t, out, "What would you like to calculate?")
}

func TestEndOfInput(t *testing.T) {
	// input ends in the middle of a flow
	out := run(t, lines("F", "H2", "O2"))
	assert.NotContains(t, out, "Bye!")

	out = run(t, "")
	assert.Contains(t, out, "Make your choice")
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := shell.New(strings.NewReader("F\n"), &out).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
