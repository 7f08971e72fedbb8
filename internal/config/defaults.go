// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverBadger = "badger"
	DriverPebble = "pebble"
	DriverMemory = "memory"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Driver:  DriverSQLite,
			DB:      DB{DSN: "mylg-sync.db"},
			ListTTL: 5 * time.Minute,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:      "http://localhost:8080",
			RequestTimeout:   10 * time.Second,
			RetryCount:       3,
			RetryDelay:       500 * time.Millisecond,
			RateLimit:        30,
			RateWindow:       time.Minute,
			AuthPollAttempts: 5,
			AuthPollInterval: 300 * time.Millisecond,
		},
		Workers: Workers{
			Concurrency:  3,
			HydrationRPS: 10,
			SyncInterval: 5 * time.Minute,
		},
		Cache: Cache{
			DetailCapacity: 512,
		},
	}
}
