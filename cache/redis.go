// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/katalvlaran/lvchem/balance"
)

// DefaultPrefix namespaces every key written by Redis.
const DefaultPrefix = "lvchem:balance:"

// Redis is a Cache backed by a Redis server. Equations are stored as JSON.
type Redis struct {
	client backend.UniversalClient
	prefix string
	ttl    time.Duration
}

// Option configures a Redis cache.
type Option func(*Redis)

// WithTTL sets the expiration for entries. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(r *Redis) {
		r.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

// NewRedis wraps an existing client.
func NewRedis(client backend.UniversalClient, opts ...Option) *Redis {
	r := &Redis{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Dial creates a client for addr and wraps it.
func Dial(addr, password string, db int, opts ...Option) *Redis {
	return NewRedis(backend.NewClient(&backend.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}), opts...)
}

func (r *Redis) key(k string) string {
	return r.prefix + k
}

// Get implements Cache.
func (r *Redis) Get(ctx context.Context, key string) (*balance.Equation, bool, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("cache: redis get %s: %w", key, err)
	}

	var eq balance.Equation
	if err := json.Unmarshal(val, &eq); err != nil {
		return nil, false, fmt.Errorf("cache: decode %s: %w", key, err)
	}

	return &eq, true, nil
}

// Set implements Cache.
func (r *Redis) Set(ctx context.Context, key string, eq *balance.Equation) error {
	data, err := json.Marshal(eq)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err := r.client.Set(ctx, r.key(key), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set %s: %w", key, err)
	}

	return nil
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
