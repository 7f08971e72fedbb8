// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jazbelrose/mylg-sync/internal/logger"
)

// ttlEntry is the stored envelope. Times are unix milliseconds.
type ttlEntry struct {
	WrittenAt int64           `json:"writtenAt"`
	TTL       int64           `json:"ttl"`
	Payload   json.RawMessage `json:"payload"`
}

func (e ttlEntry) expired(nowMs int64) bool {
	return nowMs-e.WrittenAt > e.TTL
}

// TTLCache stores JSON values with an expiry on top of a [Substrate].
//
// An entry is logically absent once more than its TTL has passed since it was
// written; such entries are removed lazily by the read that notices them.
// Reads never fail: malformed entries and substrate errors read as absent.
type TTLCache struct {
	substrate Substrate
	now       func() time.Time
	logger    *logger.Logger
}

// TTLOption configures a [TTLCache].
type TTLOption func(*TTLCache)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) TTLOption {
	return func(c *TTLCache) { c.now = now }
}

// NewTTLCache returns a cache over substrate.
func NewTTLCache(substrate Substrate, log *logger.Logger, opts ...TTLOption) *TTLCache {
	if log == nil {
		log = logger.Nop()
	}
	c := &TTLCache{
		substrate: substrate,
		now:       time.Now,
		logger:    log.Component("ttl-cache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Set stores value under key for ttl.
func (c *TTLCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl < time.Millisecond {
		return ErrInvalidTTL
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache value %q: %w", key, err)
	}

	raw, err := json.Marshal(ttlEntry{
		WrittenAt: c.now().UnixMilli(),
		TTL:       ttl.Milliseconds(),
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("encode cache entry %q: %w", key, err)
	}

	return c.substrate.SetItem(ctx, key, string(raw))
}

// Get decodes the live value under key into dst and reports whether it was
// found. dst may be nil to only test presence.
func (c *TTLCache) Get(ctx context.Context, key string, dst any) bool {
	log := c.logger.With().Str("func", "TTLCache.Get").Str("key", key).Logger()

	raw, ok, err := c.substrate.GetItem(ctx, key)
	if err != nil {
		log.Warn().Err(err).Msg("substrate read failed")
		return false
	}
	if !ok {
		return false
	}

	var entry ttlEntry
	if err = json.Unmarshal([]byte(raw), &entry); err != nil {
		log.Warn().Err(err).Msg("malformed cache entry")
		return false
	}

	if entry.expired(c.now().UnixMilli()) {
		if err = c.substrate.RemoveItem(ctx, key); err != nil {
			log.Warn().Err(err).Msg("failed to remove expired entry")
		}
		return false
	}

	if dst == nil {
		return true
	}
	if err = json.Unmarshal(entry.Payload, dst); err != nil {
		log.Warn().Err(err).Msg("cache payload does not match destination")
		return false
	}
	return true
}

// Age returns how long ago the live entry under key was written.
func (c *TTLCache) Age(ctx context.Context, key string) (time.Duration, bool) {
	raw, ok, err := c.substrate.GetItem(ctx, key)
	if err != nil || !ok {
		return 0, false
	}

	var entry ttlEntry
	if err = json.Unmarshal([]byte(raw), &entry); err != nil {
		return 0, false
	}
	nowMs := c.now().UnixMilli()
	if entry.expired(nowMs) {
		return 0, false
	}
	return time.Duration(nowMs-entry.WrittenAt) * time.Millisecond, true
}

// Delete removes key.
func (c *TTLCache) Delete(ctx context.Context, key string) error {
	return c.substrate.RemoveItem(ctx, key)
}
