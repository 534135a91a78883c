// SPDX-License-Identifier: MIT
package shell_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchem/internal/shell"
)

func TestNewRenderer(t *testing.T) {
	render, err := shell.NewRenderer()
	require.NoError(t, err)
	out, err := render("**Molar mass**")
	require.NoError(t, err)
	assert.Contains(t, out, "Molar mass")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, shell.IsTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, shell.IsTerminal(f))
}
