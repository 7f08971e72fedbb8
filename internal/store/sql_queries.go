// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_store"
	kvKeyColumn   = "item_key"
	kvValueColumn = "item_value"
	kvTimeColumn  = "updated_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetItemQuery(key string) (string, []any, error) {
	return psql.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

// buildSetItemQuery builds an upsert keyed by item_key.
func buildSetItemQuery(key, value string, now time.Time) (string, []any, error) {
	return psql.
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvTimeColumn).
		Values(key, value, now.UnixMilli()).
		Suffix("ON CONFLICT(" + kvKeyColumn + ") DO UPDATE SET " +
			kvValueColumn + " = excluded." + kvValueColumn + ", " +
			kvTimeColumn + " = excluded." + kvTimeColumn).
		ToSql()
}

func buildRemoveItemQuery(key string) (string, []any, error) {
	return psql.
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}
