// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environ, a NAME -> value map. Field names come
// from the `env` and `envPrefix` tags of [StructuredConfig]. A nil environ
// reads the process environment.
//
// The storage driver is matched case-insensitively, so STORAGE_DRIVER=SQLite
// selects sqlite.
func parseEnv(cfg *StructuredConfig, environ map[string]string) error {
	if environ == nil {
		environ = env.ToMap(os.Environ())
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	return nil
}
