// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/jazbelrose/mylg-sync/internal/config"
	"github.com/jazbelrose/mylg-sync/internal/logger"
)

// ClientStorages groups the client-side persistence into a single value that
// can be passed to the service layer.
type ClientStorages struct {
	// Substrate is the raw key-value store selected by the driver.
	Substrate Substrate

	// TTL caches short-lived values such as project lists.
	TTL *TTLCache
}

// NewClientStorages opens the substrate selected by cfg.Driver:
//   - sqlite: opens cfg.DB.DSN and runs migrations;
//   - badger, pebble: open the directory cfg.DB.DSN (badger keeps an
//     empty DSN in memory);
//   - memory: keeps everything in process.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	substrate, err := openSubstrate(cfg, log)
	if err != nil {
		return nil, err
	}

	return &ClientStorages{
		Substrate: substrate,
		TTL:       NewTTLCache(substrate, log),
	}, nil
}

func openSubstrate(cfg config.ClientStorage, log *logger.Logger) (Substrate, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteSubstrate(db), nil
	case config.DriverBadger:
		return NewBadgerSubstrate(cfg.DB.DSN)
	case config.DriverPebble:
		return NewPebbleSubstrate(cfg.DB.DSN, nil)
	case config.DriverMemory:
		return NewMemorySubstrate(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Close releases the substrate.
func (s *ClientStorages) Close() error {
	return s.Substrate.Close()
}
