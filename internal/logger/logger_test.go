// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test-role")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "client").Component("detail-cache")

	l.Warn().Msg("fetch failed")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "detail-cache", entry["component"])
	assert.Equal(t, "client", entry["role"])
}

func TestGetChildLogger_DoesNotAffectParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "client")

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})

	parent.Info().Msg("parent")
	entry := decodeEntry(t, &buf)
	assert.NotContains(t, entry, "trace_id")
}

func TestFromContext_FallbackWhenMissing(t *testing.T) {
	fallback := Nop()

	got := FromContext(context.Background(), fallback)

	assert.Same(t, fallback, got)
}

func TestFromContext_UsesAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	attached := newLogger(&buf, "ctx-role")
	ctx := attached.WithContext(context.Background())

	FromContext(ctx, Nop()).Info().Msg("from ctx")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "ctx-role", entry["role"])
}

func TestFromRequest_UsesRequestContext(t *testing.T) {
	var buf bytes.Buffer
	attached := newLogger(&buf, "req-role")
	r := httptest.NewRequest("GET", "/projects", nil)
	r = r.WithContext(attached.WithContext(r.Context()))

	FromRequest(r).Info().Msg("from request")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "req-role", entry["role"])
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := NewClientLogger("cli", path)

	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role":"cli"`)
}

func TestNop_Discards(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error().Msg("nothing")
	})
}
