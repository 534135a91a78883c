// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"sync"

	"github.com/katalvlaran/lvchem/balance"
)

// Memory is an in-process Cache. Stored and returned equations are copies,
// so callers may mutate them freely.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]*balance.Equation
}

// NewMemory returns an empty Memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]*balance.Equation)}
}

// Get implements Cache.
func (m *Memory) Get(_ context.Context, key string) (*balance.Equation, bool, error) {
	m.mu.RLock()
	eq, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	return cloneEquation(eq), true, nil
}

// Set implements Cache.
func (m *Memory) Set(_ context.Context, key string, eq *balance.Equation) error {
	c := cloneEquation(eq)
	m.mu.Lock()
	m.entries[key] = c
	m.mu.Unlock()

	return nil
}

// Len returns the number of cached entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
