// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "slices"

// validate checks the merged [StructuredConfig]. Cross-field rules live in
// the client and server views; here only values no view can accept are
// rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RetryCount < 0 || cfg.Adapter.RateLimit < 0 || cfg.Workers.Concurrency < 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	drivers := []string{DriverSQLite, DriverBadger, DriverPebble, DriverMemory}
	if !slices.Contains(drivers, cfg.Storage.Driver) {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Driver != DriverMemory && cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.ListTTL <= 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RateLimit <= 0 || cfg.Adapter.RateWindow <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RetryCount < 0 || cfg.Adapter.RetryDelay < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.Concurrency <= 0 || cfg.Workers.HydrationRPS <= 0 || cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Cache.DetailCapacity <= 0 {
		return ErrInvalidCacheConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	return nil
}
