// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvchem/balance"
	"github.com/katalvlaran/lvchem/config"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	t.Setenv("LVCHEM_TEST_PW", "s3cret")
	p := write(t, "lvchem.yaml", `
log:
  level: debug
balance:
  max_species: 12
  aggregate_free_columns: true
server:
  addr: ":9090"
  read_timeout: 5s
cache:
  backend: redis
  redis:
    addr: "redis:6379"
    password: "${LVCHEM_TEST_PW}"
    ttl: 10m
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 12, cfg.Balance.MaxSpecies)
	assert.True(t, cfg.Balance.AggregateFreeColumns)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout.Duration)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout.Duration, "default kept")
	assert.Equal(t, config.CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, "s3cret", cfg.Cache.Redis.Password)
	assert.Equal(t, 10*time.Minute, cfg.Cache.Redis.TTL.Duration)
	assert.Equal(t, "lvchem:balance:", cfg.Cache.Redis.Prefix)
	assert.Len(t, cfg.BalanceOptions(), 2)
}

func TestLoad_TOML(t *testing.T) {
	p := write(t, "lvchem.toml", `
[log]
level = "warn"

[cache]
backend = "none"

[mcp]
transport = "sse"
port = 9000
`)
	cfg, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, config.CacheNone, cfg.Cache.Backend)
	assert.Equal(t, config.TransportSSE, cfg.MCP.Transport)
	assert.Equal(t, 9000, cfg.MCP.Port)
	assert.Equal(t, balance.DefaultMaxSpecies, cfg.Balance.MaxSpecies)
	assert.Len(t, cfg.BalanceOptions(), 1)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		file string
		body string
		want error
	}{
		{"unknown extension", "c.json", "{}", config.ErrUnsupportedFormat},
		{"bad level", "c.yaml", "log:\n  level: loud\n", config.ErrInvalid},
		{"bad backend", "c.toml", "[cache]\nbackend = \"disk\"\n", config.ErrInvalid},
		{"bad transport", "c.yaml", "mcp:\n  transport: grpc\n", config.ErrInvalid},
		{"max species too small", "c.yaml", "balance:\n  max_species: 1\n", config.ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(write(t, tc.file, tc.body))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := config.Load(write(t, "c.yaml", "log:\n  colour: red\n"))
	assert.Error(t, err, "unknown yaml field")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	p := write(t, "c.yml", "server:\n  addr: \":7000\"\n")
	t.Setenv(config.EnvPath, p)
	cfg, err := config.LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
}
