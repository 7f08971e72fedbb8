// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN":      "tok",
		"APP_CSRF_TOKEN": "csrf",
		"APP_OWNER":      "owner-1",

		"STORAGE_DRIVER":          "badger",
		"STORAGE_DB_DATABASE_URI": "/var/lib/mylg",
		"STORAGE_LIST_TTL":        "2m",

		"SERVER_ADDRESS": "localhost:9000",

		"ADAPTER_ADDRESS":            "http://api.local",
		"ADAPTER_REQUEST_TIMEOUT":    "5s",
		"ADAPTER_RETRY_COUNT":        "4",
		"ADAPTER_RETRY_DELAY":        "250ms",
		"ADAPTER_RATE_LIMIT":         "10",
		"ADAPTER_RATE_WINDOW":        "30s",
		"ADAPTER_AUTH_POLL_ATTEMPTS": "2",
		"ADAPTER_AUTH_POLL_INTERVAL": "100ms",

		"WORKERS_CONCURRENCY":   "6",
		"WORKERS_HYDRATION_RPS": "2.5",
		"WORKERS_SYNC_INTERVAL": "1m",

		"CACHE_DETAIL_CAPACITY":         "64",
		"CACHE_DISABLE_TIMELINE_REPAIR": "true",
	}
	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, envVars)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "tok", cfg.App.Token)
	assert.Equal(t, "csrf", cfg.App.CSRFToken)
	assert.Equal(t, "owner-1", cfg.App.OwnerID)

	assert.Equal(t, DriverBadger, cfg.Storage.Driver)
	assert.Equal(t, "/var/lib/mylg", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Storage.ListTTL)

	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)

	assert.Equal(t, "http://api.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 4, cfg.Adapter.RetryCount)
	assert.Equal(t, 250*time.Millisecond, cfg.Adapter.RetryDelay)
	assert.Equal(t, 10, cfg.Adapter.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RateWindow)
	assert.Equal(t, 2, cfg.Adapter.AuthPollAttempts)
	assert.Equal(t, 100*time.Millisecond, cfg.Adapter.AuthPollInterval)

	assert.Equal(t, 6, cfg.Workers.Concurrency)
	assert.Equal(t, 2.5, cfg.Workers.HydrationRPS)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)

	assert.Equal(t, 64, cfg.Cache.DetailCapacity)
	assert.True(t, cfg.Cache.DisableTimelineRepair)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg, map[string]string{}))
	assert.Equal(t, "", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "", cfg.Storage.Driver)
}

func TestParseEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://from-process")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg, nil))

	assert.Equal(t, "http://from-process", cfg.Adapter.HTTPAddress)
}

func TestParseEnv_DriverCaseInsensitive(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg, map[string]string{"STORAGE_DRIVER": " SQLite "}))

	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
}

func TestParseEnv_InvalidValue(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, map[string]string{"ADAPTER_RETRY_COUNT": "three"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
