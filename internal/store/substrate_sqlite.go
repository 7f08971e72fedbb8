// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type sqliteSubstrate struct {
	db  *DB
	now func() time.Time
}

// NewSQLiteSubstrate returns a [Substrate] over the kv_store table of a
// migrated database.
func NewSQLiteSubstrate(db *DB) Substrate {
	return &sqliteSubstrate{db: db, now: time.Now}
}

func (s *sqliteSubstrate) GetItem(ctx context.Context, key string) (string, bool, error) {
	query, args, err := buildGetItemQuery(key)
	if err != nil {
		return "", false, fmt.Errorf("build get item query: %w", err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.db.logger.Err(err).Str("func", "sqliteSubstrate.GetItem").Str("key", key).Msg("error reading item")
		return "", false, fmt.Errorf("get item %q: %w", key, err)
	}
	return value, true, nil
}

func (s *sqliteSubstrate) SetItem(ctx context.Context, key, value string) error {
	query, args, err := buildSetItemQuery(key, value, s.now())
	if err != nil {
		return fmt.Errorf("build set item query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.db.logger.Err(err).Str("func", "sqliteSubstrate.SetItem").Str("key", key).Msg("error writing item")
		return fmt.Errorf("set item %q: %w", key, err)
	}
	return nil
}

func (s *sqliteSubstrate) RemoveItem(ctx context.Context, key string) error {
	query, args, err := buildRemoveItemQuery(key)
	if err != nil {
		return fmt.Errorf("build remove item query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.db.logger.Err(err).Str("func", "sqliteSubstrate.RemoveItem").Str("key", key).Msg("error removing item")
		return fmt.Errorf("remove item %q: %w", key, err)
	}
	return nil
}

func (s *sqliteSubstrate) Close() error {
	return s.db.Close()
}
