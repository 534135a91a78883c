// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchem/balance"
	"github.com/katalvlaran/lvchem/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvPath, "")
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestBalanceCmd(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"reaction string", []string{"balance", "C2H4 + O2 -> CO2 + H2O"}, "C2H4 + 3 O2 → 2 CO2 + 2 H2O\n"},
		{"unquoted words", []string{"balance", "H2", "+", "O2", "=", "H2O"}, "2 H2 + O2 → 2 H2O\n"},
		{"flags", []string{"balance", "-r", "Fe", "-r", "O2", "-p", "Fe2O3"}, "4 Fe + 3 O2 → 2 Fe2O3\n"},
		{"aggregate", []string{"balance", "--aggregate", "H2 + O2 -> H2O + H2O2"}, "3 H2 + 2 O2 → 2 H2O + H2O2\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, "", tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestBalanceCmd_JSON(t *testing.T) {
	out, err := execute(t, "", "balance", "--json", "H2 + O2 -> H2O")
	require.NoError(t, err)

	var got struct {
		Coefficients []int  `json:"coefficients"`
		Formatted    string `json:"formatted"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []int{2, 1, 2}, got.Coefficients)
	assert.Equal(t, "2 H2 + O2 → 2 H2O", got.Formatted)

	out, err = execute(t, "", "balance", "--json", "H2 -> O2")
	assert.ErrorIs(t, err, balance.ErrElementMismatch)
	var e errorOutput
	require.NoError(t, json.Unmarshal([]byte(out), &e))
	assert.Equal(t, balance.KindElementMismatch, e.Kind)
}

func TestBalanceCmd_Errors(t *testing.T) {
	_, err := execute(t, "", "balance", "H2 + O2 -> H2O + H2O2")
	assert.ErrorIs(t, err, balance.ErrIndeterminate)

	_, err = execute(t, "", "balance", "-r", "H2", "H2 -> H2")
	assert.Error(t, err)

	_, err = execute(t, "", "balance", "H2 + O2")
	assert.ErrorIs(t, err, balance.ErrMalformedReaction)
}

func TestDecomposeAndMassCmd(t *testing.T) {
	out, err := execute(t, "", "decompose", "H2O", "Ca(OH)2")
	require.NoError(t, err)
	assert.Equal(t, "H2O: H:2 O:1\nCa(OH)2: Ca:1 H:2 O:2\n", out)

	out, err = execute(t, "", "mass", "H2O")
	require.NoError(t, err)
	assert.Equal(t, "H2O: 18.015 g/mol\n", out)

	_, err = execute(t, "", "decompose", "h2o")
	assert.Error(t, err)
	_, err = execute(t, "", "mass")
	assert.Error(t, err)
}

func TestConcentrationCmd(t *testing.T) {
	out, err := execute(t, "", "concentration", "--moles", "0.5", "--volume", "0.25")
	require.NoError(t, err)
	assert.Equal(t, "c = 2 mol/L\n", out)

	out, err = execute(t, "", "concentration", "--mass", "58.44", "--formula", "NaCl", "--volume", "1")
	require.NoError(t, err)
	assert.Equal(t, "c = 1 mol/L\n", out)

	out, err = execute(t, "", "concentration", "--ci", "2", "--vi", "0.1", "--vf", "0.4")
	require.NoError(t, err)
	assert.Equal(t, "c = 0.5 mol/L\n", out)

	_, err = execute(t, "", "concentration")
	assert.Error(t, err)
	_, err = execute(t, "", "concentration", "--mass", "1", "--volume", "1")
	assert.Error(t, err)
	_, err = execute(t, "", "concentration", "--moles", "1", "--ci", "1")
	assert.Error(t, err)
}

func TestShellCmd(t *testing.T) {
	out, err := execute(t, "F\nH2\nO2\n*\nH2O\n*\nexit\n", "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "2 H2 + O2 → 2 H2O")
}

func TestConfigFlag(t *testing.T) {
	p := filepath.Join(t.TempDir(), "lvchem.toml")
	require.NoError(t, os.WriteFile(p, []byte("[balance]\nmax_species = 2\n"), 0o600))

	_, err := execute(t, "", "--config", p, "balance", "H2 + O2 -> H2O")
	assert.ErrorIs(t, err, balance.ErrTooManySpecies)

	_, err = execute(t, "", "--log-level", "loud", "version")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "lvchem version dev\n", out)
}
