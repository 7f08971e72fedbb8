// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_CreatesKVStore(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, Migrate(db))

	rows, err := db.Query(`SELECT name, type, "notnull", pk FROM pragma_table_info('kv_store') ORDER BY cid`)
	require.NoError(t, err)
	defer rows.Close()

	type column struct {
		name, typ   string
		notNull, pk int
	}
	var got []column
	for rows.Next() {
		var c column
		require.NoError(t, rows.Scan(&c.name, &c.typ, &c.notNull, &c.pk))
		got = append(got, c)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []column{
		{name: "item_key", typ: "TEXT", notNull: 0, pk: 1},
		{name: "item_value", typ: "TEXT", notNull: 1},
		{name: "updated_at", typ: "INTEGER", notNull: 1},
	}, got)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, Migrate(db))

	_, err := db.Exec(`INSERT INTO kv_store (item_key, item_value, updated_at) VALUES ('k', 'v', 1)`)
	require.NoError(t, err)

	// второй прогон ничего не пересоздаёт
	require.NoError(t, Migrate(db))

	var value string
	require.NoError(t, db.QueryRow(`SELECT item_value FROM kv_store WHERE item_key = 'k'`).Scan(&value))
	assert.Equal(t, "v", value)

	var version int64
	require.NoError(t, db.QueryRow(`SELECT MAX(version_id) FROM goose_db_version`).Scan(&version))
	assert.Equal(t, int64(1), version)
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// ожиданий нет: первый же запрос goose вернёт ошибку
	err = Migrate(db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}
