// SPDX-License-Identifier: MIT

// Package config loads lvchem settings from a YAML or TOML file.
//
// The format is picked by extension (.yaml, .yml, .toml). Missing fields take
// the values of Default; string fields holding secrets or addresses may
// reference environment variables as $VAR or ${VAR}.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvchem/balance"
	"github.com/katalvlaran/lvchem/internal/logging"
)

// EnvPath names the environment variable consulted by LoadFromEnv.
const EnvPath = "LVCHEM_CONFIG"

var (
	// ErrUnsupportedFormat indicates a file extension other than yaml/yml/toml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid indicates a value that fails validation.
	ErrInvalid = errors.New("config: invalid value")
)

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// MCP transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config holds the complete application configuration.
type Config struct {
	Log     LogConfig     `yaml:"log" toml:"log"`
	Balance BalanceConfig `yaml:"balance" toml:"balance"`
	Server  ServerConfig  `yaml:"server" toml:"server"`
	Cache   CacheConfig   `yaml:"cache" toml:"cache"`
	MCP     MCPConfig     `yaml:"mcp" toml:"mcp"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}

// BalanceConfig mirrors the balance package options.
type BalanceConfig struct {
	MaxSpecies           int  `yaml:"max_species" toml:"max_species"`
	AggregateFreeColumns bool `yaml:"aggregate_free_columns" toml:"aggregate_free_columns"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr         string   `yaml:"addr" toml:"addr"`
	ReadTimeout  Duration `yaml:"read_timeout" toml:"read_timeout"`
	WriteTimeout Duration `yaml:"write_timeout" toml:"write_timeout"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend string      `yaml:"backend" toml:"backend"`
	Redis   RedisConfig `yaml:"redis" toml:"redis"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string   `yaml:"addr" toml:"addr"`
	Password string   `yaml:"password" toml:"password"`
	DB       int      `yaml:"db" toml:"db"`
	Prefix   string   `yaml:"prefix" toml:"prefix"`
	TTL      Duration `yaml:"ttl" toml:"ttl"`
}

// MCPConfig holds Model Context Protocol server settings.
type MCPConfig struct {
	Transport string `yaml:"transport" toml:"transport"`
	Port      int    `yaml:"port" toml:"port"`
}

// Duration wraps time.Duration for text decoding ("30s", "5m").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))

	return err
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info"},
		Balance: BalanceConfig{MaxSpecies: balance.DefaultMaxSpecies},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  Duration{10 * time.Second},
			WriteTimeout: Duration{30 * time.Second},
		},
		Cache: CacheConfig{
			Backend: CacheMemory,
			Redis:   RedisConfig{Addr: "localhost:6379", Prefix: "lvchem:balance:"},
		},
		MCP: MCPConfig{Transport: TransportStdio, Port: 8081},
	}
}

// Load reads path over Default. An empty path returns Default unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	cfg.expandEnvVars()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromEnv loads the file named by $LVCHEM_CONFIG, or Default if unset.
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv(EnvPath))
}

func (c *Config) expandEnvVars() {
	c.Server.Addr = os.ExpandEnv(c.Server.Addr)
	c.Cache.Redis.Addr = os.ExpandEnv(c.Cache.Redis.Addr)
	c.Cache.Redis.Password = os.ExpandEnv(c.Cache.Redis.Password)
}

// Validate checks enumerations and ranges.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if c.Balance.MaxSpecies < 2 {
		return fmt.Errorf("%w: balance.max_species must be >= 2, got %d", ErrInvalid, c.Balance.MaxSpecies)
	}
	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("%w: cache.backend %q", ErrInvalid, c.Cache.Backend)
	}
	switch c.MCP.Transport {
	case TransportStdio, TransportSSE:
	default:
		return fmt.Errorf("%w: mcp.transport %q", ErrInvalid, c.MCP.Transport)
	}
	if c.MCP.Port <= 0 || c.MCP.Port > 65535 {
		return fmt.Errorf("%w: mcp.port %d", ErrInvalid, c.MCP.Port)
	}

	return nil
}

// BalanceOptions converts the balance section into balance options.
func (c *Config) BalanceOptions() []balance.Option {
	opts := []balance.Option{balance.WithMaxSpecies(c.Balance.MaxSpecies)}
	if c.Balance.AggregateFreeColumns {
		opts = append(opts, balance.WithAggregateFreeColumns())
	}

	return opts
}
