// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session-level settings: credentials handed over by the
	// external sign-in flow and the default owner.
	App App `envPrefix:"APP_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen settings of the stub API server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote API address and the request client policy.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds concurrency and background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Cache holds detail cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Token is the bearer token used for outbound requests.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// CSRFToken is attached to state-changing requests.
	// Env: APP_CSRF_TOKEN
	CSRFToken string `env:"CSRF_TOKEN"`

	// OwnerID is the default owner for list commands and the refresh job.
	// Env: APP_OWNER
	OwnerID string `env:"OWNER"`

	// LogFile is where the CLI writes its JSON log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// Version is reported by the stub server.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// Driver selects the key-value substrate: sqlite, badger, pebble or
	// memory.
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the substrate location.
	DB DB `envPrefix:"DB_"`

	// ListTTL is how long a fetched project list stays fresh.
	// Env: STORAGE_LIST_TTL
	ListTTL time.Duration `env:"LIST_TTL"`
}

// DB holds the location of the local database.
type DB struct {
	// DSN is the SQLite file name, or the directory for badger and pebble.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings of the stub server.
type Server struct {
	// HTTPAddress is the TCP address the stub server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the remote API address and the request client policy.
type Adapter struct {
	// HTTPAddress is the base URL of the remote API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single attempt.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// Env: ADAPTER_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`

	// RateLimit is the number of requests allowed per path within
	// RateWindow.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`

	// Env: ADAPTER_RATE_WINDOW
	RateWindow time.Duration `env:"RATE_WINDOW"`

	// Env: ADAPTER_AUTH_POLL_ATTEMPTS
	AuthPollAttempts int `env:"AUTH_POLL_ATTEMPTS"`

	// Env: ADAPTER_AUTH_POLL_INTERVAL
	AuthPollInterval time.Duration `env:"AUTH_POLL_INTERVAL"`
}

// Workers holds concurrency and background job settings.
type Workers struct {
	// Concurrency bounds simultaneous network tasks.
	// Env: WORKERS_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`

	// HydrationRPS paces background detail hydration after a list fetch.
	// Env: WORKERS_HYDRATION_RPS
	HydrationRPS float64 `env:"HYDRATION_RPS"`

	// SyncInterval is the period of the list refresh job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Cache holds detail cache settings.
type Cache struct {
	// DetailCapacity bounds the number of cached project records.
	// Env: CACHE_DETAIL_CAPACITY
	DetailCapacity int `env:"DETAIL_CAPACITY"`

	// DisableTimelineRepair turns off the write-back of timelines whose
	// events lacked identifiers or were duplicated.
	// Env: CACHE_DISABLE_TIMELINE_REPAIR
	DisableTimelineRepair bool `env:"DISABLE_TIMELINE_REPAIR"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. Returns a fully populated *StructuredConfig or an error if any
// source fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
