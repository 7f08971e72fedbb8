// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

type pebbleSubstrate struct {
	db *pebble.DB
}

// NewPebbleSubstrate opens a pebble database in dir on fs. A nil fs means
// the OS filesystem.
func NewPebbleSubstrate(dir string, fs vfs.FS) (Substrate, error) {
	if fs == nil {
		fs = vfs.Default
	}

	db, err := pebble.Open(dir, &pebble.Options{FS: fs})
	if err != nil {
		return nil, fmt.Errorf("open pebble database: %w", err)
	}
	return &pebbleSubstrate{db: db}, nil
}

func (s *pebbleSubstrate) GetItem(_ context.Context, key string) (string, bool, error) {
	v, closer, err := s.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get item %q: %w", key, err)
	}
	defer closer.Close()

	// v is only valid until closer is closed
	return string(v), true, nil
}

func (s *pebbleSubstrate) SetItem(_ context.Context, key, value string) error {
	if err := s.db.Set([]byte(key), []byte(value), pebble.Sync); err != nil {
		return fmt.Errorf("set item %q: %w", key, err)
	}
	return nil
}

func (s *pebbleSubstrate) RemoveItem(_ context.Context, key string) error {
	if err := s.db.Delete([]byte(key), pebble.Sync); err != nil {
		return fmt.Errorf("remove item %q: %w", key, err)
	}
	return nil
}

func (s *pebbleSubstrate) Close() error {
	return s.db.Close()
}
