// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds session-level client settings.
type ClientApp struct {
	Token     string
	CSRFToken string
	OwnerID   string
	LogFile   string
}

// ClientAdapter holds the remote API address and the request client policy.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote API.
	HTTPAddress string
	// RequestTimeout bounds a single attempt.
	RequestTimeout time.Duration

	// RetryCount is the number of retries after the first attempt.
	RetryCount int
	// RetryDelay is the fixed pause between attempts.
	RetryDelay time.Duration

	// RateLimit requests are allowed per path within RateWindow.
	RateLimit  int
	RateWindow time.Duration

	// AuthPollAttempts token reads are made AuthPollInterval apart before a
	// request gives up waiting for a token.
	AuthPollAttempts int
	AuthPollInterval time.Duration
}

// ClientDB contains the local database location.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Driver selects the substrate (see Driver* constants).
	Driver string
	// DB holds the substrate location.
	DB ClientDB
	// ListTTL is the freshness window of cached project lists.
	ListTTL time.Duration
}

// ClientWorkers contains concurrency and background job settings.
type ClientWorkers struct {
	Concurrency  int
	HydrationRPS float64
	SyncInterval time.Duration
}

// ClientCache contains detail cache settings.
type ClientCache struct {
	DetailCapacity int
	RepairTimeline bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Cache   ClientCache
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Token:     cfg.App.Token,
			CSRFToken: cfg.App.CSRFToken,
			OwnerID:   cfg.App.OwnerID,
			LogFile:   cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:      cfg.Adapter.HTTPAddress,
			RequestTimeout:   cfg.Adapter.RequestTimeout,
			RetryCount:       cfg.Adapter.RetryCount,
			RetryDelay:       cfg.Adapter.RetryDelay,
			RateLimit:        cfg.Adapter.RateLimit,
			RateWindow:       cfg.Adapter.RateWindow,
			AuthPollAttempts: cfg.Adapter.AuthPollAttempts,
			AuthPollInterval: cfg.Adapter.AuthPollInterval,
		},
		Storage: ClientStorage{
			Driver:  cfg.Storage.Driver,
			DB:      ClientDB{DSN: cfg.Storage.DB.DSN},
			ListTTL: cfg.Storage.ListTTL,
		},
		Workers: ClientWorkers{
			Concurrency:  cfg.Workers.Concurrency,
			HydrationRPS: cfg.Workers.HydrationRPS,
			SyncInterval: cfg.Workers.SyncInterval,
		},
		Cache: ClientCache{
			DetailCapacity: cfg.Cache.DetailCapacity,
			RepairTimeline: !cfg.Cache.DisableTimelineRepair,
		},
	}
}
