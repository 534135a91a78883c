// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/lvchem/balance"
)

// Logged wraps c so every Get and Set failure is logged at warn level before
// being returned. Balance treats those failures as misses, so this is where
// an unhealthy backend becomes visible.
func Logged(c Cache, logger *slog.Logger) Cache {
	if c == nil || logger == nil {
		return c
	}

	return &logged{next: c, logger: logger}
}

type logged struct {
	next   Cache
	logger *slog.Logger
}

func (l *logged) Get(ctx context.Context, key string) (*balance.Equation, bool, error) {
	eq, ok, err := l.next.Get(ctx, key)
	if err != nil {
		l.logger.WarnContext(ctx, "cache get failed", "key", key, "error", err)
	}

	return eq, ok, err
}

func (l *logged) Set(ctx context.Context, key string, eq *balance.Equation) error {
	err := l.next.Set(ctx, key, eq)
	if err != nil {
		l.logger.WarnContext(ctx, "cache set failed", "key", key, "error", err)
	}

	return err
}
