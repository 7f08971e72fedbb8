// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jazbelrose/mylg-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockSubstrate(t *testing.T) (*sqliteSubstrate, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteSubstrate(&DB{DB: db, logger: logger.Nop()}).(*sqliteSubstrate)
	s.now = func() time.Time { return time.UnixMilli(42) }
	return s, mock
}

func TestSQLiteSubstrate_GetItem(t *testing.T) {
	query, _, _ := buildGetItemQuery("k1")

	t.Run("found", func(t *testing.T) {
		s, mock := newMockSubstrate(t)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("k1").
			WillReturnRows(sqlmock.NewRows([]string{"item_value"}).AddRow("v1"))

		v, ok, err := s.GetItem(context.Background(), "k1")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v1", v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		s, mock := newMockSubstrate(t)
		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs("k1").
			WillReturnRows(sqlmock.NewRows([]string{"item_value"}))

		_, ok, err := s.GetItem(context.Background(), "k1")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("db error", func(t *testing.T) {
		s, mock := newMockSubstrate(t)
		dbErr := errors.New("disk I/O error")
		mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("k1").WillReturnError(dbErr)

		_, ok, err := s.GetItem(context.Background(), "k1")

		assert.ErrorIs(t, err, dbErr)
		assert.False(t, ok)
	})
}

func TestSQLiteSubstrate_SetItem(t *testing.T) {
	s, mock := newMockSubstrate(t)
	query, _, _ := buildSetItemQuery("k1", "v1", time.UnixMilli(42))
	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("k1", "v1", int64(42)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.SetItem(context.Background(), "k1", "v1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSubstrate_RemoveItem(t *testing.T) {
	s, mock := newMockSubstrate(t)
	query, _, _ := buildRemoveItemQuery("k1")
	mock.ExpectExec(regexp.QuoteMeta(query)).
		WithArgs("k1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.RemoveItem(context.Background(), "k1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSubstrate_SetItemError(t *testing.T) {
	s, mock := newMockSubstrate(t)
	dbErr := errors.New("database is locked")
	mock.ExpectExec("INSERT INTO kv_store").WillReturnError(dbErr)

	err := s.SetItem(context.Background(), "k1", "v1")

	assert.ErrorIs(t, err, dbErr)
}
