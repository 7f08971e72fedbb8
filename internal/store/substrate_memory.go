// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

type memorySubstrate struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemorySubstrate returns a process-local [Substrate]. Contents are lost
// on exit.
func NewMemorySubstrate() Substrate {
	return &memorySubstrate{items: make(map[string]string)}
}

func (s *memorySubstrate) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

func (s *memorySubstrate) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

func (s *memorySubstrate) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

func (s *memorySubstrate) Close() error {
	return nil
}
