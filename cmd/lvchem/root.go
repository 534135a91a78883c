// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvchem/cache"
	"github.com/katalvlaran/lvchem/config"
	"github.com/katalvlaran/lvchem/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries state resolved once per invocation by the root command.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "lvchem",
		Short:             "Balance chemical equations and compute molar quantities",
		Long:              `lvchem balances chemical equations with exact rational arithmetic, decomposes formulas into element counts and computes molar masses and concentrations.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML or TOML config file (default $"+config.EnvPath+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	root.AddCommand(
		newBalanceCmd(a),
		newDecomposeCmd(),
		newMassCmd(a),
		newConcentrationCmd(),
		newShellCmd(a),
		newServeCmd(a),
		newMCPCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	path := a.configPath
	if path == "" {
		path = os.Getenv(config.EnvPath)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	levelName := cfg.Log.Level
	if a.logLevel != "" {
		levelName = a.logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logging.New(level)
	a.logger.Debug("configuration loaded", "path", path, "cache", cfg.Cache.Backend)

	return nil
}

// openCache builds the configured cache. The returned closer is never nil.
func (a *app) openCache(ctx context.Context) (cache.Cache, func(), error) {
	noop := func() {}
	switch a.cfg.Cache.Backend {
	case config.CacheMemory:
		return cache.NewMemory(), noop, nil
	case config.CacheRedis:
		rc := a.cfg.Cache.Redis
		r := cache.Dial(rc.Addr, rc.Password, rc.DB,
			cache.WithPrefix(rc.Prefix),
			cache.WithTTL(rc.TTL.Duration),
		)
		if err := r.Ping(ctx); err != nil {
			_ = r.Close()

			return nil, noop, fmt.Errorf("redis %s: %w", rc.Addr, err)
		}

		return cache.Logged(r, a.logger), func() { _ = r.Close() }, nil
	default:
		return nil, noop, nil
	}
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
