// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache implements the single-flight detail cache: at most one
// remote fetch per key is in flight, concurrent readers share its result and
// fetched records are merged over what the caller already knows.
//
// Reads through [DetailCache.Get] never fail. When a fetch fails the caller
// gets its fallback back and the error is kept for [DetailCache.LastError].
package cache

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/jazbelrose/mylg-sync/internal/logger"
	"github.com/jazbelrose/mylg-sync/internal/metrics"
	"github.com/jazbelrose/mylg-sync/internal/workers"
)

// DefaultCapacity bounds the number of cached records when the config does
// not.
const DefaultCapacity = 512

// FetchFunc loads the full record for key from the remote side.
type FetchFunc[T any] func(ctx context.Context, key string) (T, error)

// MergeFunc combines a freshly fetched record with a previously known one.
// fallback may be nil.
type MergeFunc[T any] func(fresh T, fallback *T) T

// CompleteFunc reports whether a cached record can be served without a
// fetch.
type CompleteFunc[T any] func(T) bool

// Config describes a [DetailCache]. Only Fetch is required.
type Config[T any] struct {
	Fetch FetchFunc[T]

	// Merge defaults to keeping the fresh record as is.
	Merge MergeFunc[T]

	// Complete defaults to treating every cached record as complete.
	Complete CompleteFunc[T]

	// Capacity is the LRU bound. Zero means DefaultCapacity.
	Capacity int

	// Pool gates fetches. Defaults to a pool of workers.DefaultPoolSize.
	Pool *workers.Pool

	Metrics *metrics.Metrics
	Logger  *logger.Logger
}

// Entry is a cached record with its revision. Revisions come from a single
// per-cache sequence, so a key that is invalidated and stored again never
// reuses an old revision.
type Entry[T any] struct {
	Value     T
	Revision  uint64
	UpdatedAt time.Time
}

// DetailCache is a bounded map of fully merged records with single-flight
// hydration. The zero value is not usable; construct with [New].
type DetailCache[T any] struct {
	fetch    FetchFunc[T]
	merge    MergeFunc[T]
	complete CompleteFunc[T]
	pool     *workers.Pool
	metrics  *metrics.Metrics
	logger   *logger.Logger
	now      func() time.Time

	group singleflight.Group

	mu         sync.Mutex
	entries    *lru.Cache[string, Entry[T]]
	lastErr    map[string]error
	seq        uint64
	generation uint64
}

// New builds a cache from cfg.
func New[T any](cfg Config[T]) (*DetailCache[T], error) {
	if cfg.Fetch == nil {
		return nil, ErrNoFetch
	}
	if cfg.Capacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.Merge == nil {
		cfg.Merge = func(fresh T, _ *T) T { return fresh }
	}
	if cfg.Complete == nil {
		cfg.Complete = func(T) bool { return true }
	}
	if cfg.Pool == nil {
		cfg.Pool = workers.NewPool(workers.DefaultPoolSize)
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	entries, err := lru.New[string, Entry[T]](cfg.Capacity)
	if err != nil {
		return nil, err
	}

	return &DetailCache[T]{
		fetch:    cfg.Fetch,
		merge:    cfg.Merge,
		complete: cfg.Complete,
		pool:     cfg.Pool,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger.Component("detail-cache"),
		now:      time.Now,
		entries:  entries,
		lastErr:  make(map[string]error),
	}, nil
}

type hydrateResult[T any] struct {
	value T
}

// Get returns the record for key.
//
// A complete cached record is returned directly. Otherwise Get joins the
// in-flight fetch for key or starts one; the fetched record is merged over
// the complete cached record, else fallback, else the incomplete cached
// record, and stored. The shared fetch is not cancelled when ctx is; ctx
// only bounds how long this caller waits.
//
// On failure, or when ctx ends first, Get returns fallback, or the cached
// record when fallback is nil, or the zero T.
func (c *DetailCache[T]) Get(ctx context.Context, key string, fallback *T) T {
	log := logger.FromContext(ctx, c.logger).With().
		Str("func", "DetailCache.Get").
		Str("key", key).
		Logger()

	c.mu.Lock()
	e, ok := c.entries.Get(key)
	if ok && c.complete(e.Value) {
		c.mu.Unlock()
		c.metrics.ObserveCache(metrics.CacheHit)
		return e.Value
	}
	c.metrics.ObserveCache(metrics.CacheMiss)

	// registering under c.mu keeps a completing fetch from storing between
	// the lookup above and the join below
	start := fetchStart{generation: c.generation, revision: e.Revision}
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		c.metrics.ObserveCache(metrics.CacheFetch)
		v, err := c.hydrate(fetchCtx, key, fallback, start)
		return hydrateResult[T]{value: v}, err
	})
	c.mu.Unlock()

	select {
	case res := <-ch:
		if res.Shared {
			c.metrics.ObserveCache(metrics.CacheShared)
		}
		if res.Err != nil {
			c.metrics.ObserveCache(metrics.CacheFailure)
			log.Warn().Err(res.Err).Msg("detail fetch failed, serving fallback")
			return c.fallbackOrCached(key, fallback)
		}
		return res.Val.(hydrateResult[T]).value
	case <-ctx.Done():
		log.Debug().Err(ctx.Err()).Msg("stopped waiting for detail fetch")
		return c.fallbackOrCached(key, fallback)
	}
}

// fetchStart is the cache state seen when a fetch was started.
type fetchStart struct {
	generation uint64
	revision   uint64
}

func (c *DetailCache[T]) hydrate(ctx context.Context, key string, fallback *T, start fetchStart) (T, error) {
	fresh, err := workers.Submit(ctx, c.pool, func(ctx context.Context) (T, error) {
		return c.fetch(ctx, key)
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		var zero T
		c.lastErr[key] = err
		return zero, err
	}
	if start.generation != c.generation {
		var zero T
		return zero, ErrPurged
	}

	cur, ok := c.entries.Peek(key)

	// the entry was written while the fetch was in flight: the fetched
	// record is older than it and only fills what it lacks
	if ok && cur.Revision != start.revision {
		merged := c.merge(cur.Value, &fresh)
		c.storeLocked(key, merged)
		delete(c.lastErr, key)
		return merged, nil
	}

	var base *T
	if ok && c.complete(cur.Value) {
		base = &cur.Value
	} else if fallback != nil {
		base = fallback
	} else if ok {
		base = &cur.Value
	}

	merged := c.merge(fresh, base)
	c.storeLocked(key, merged)
	delete(c.lastErr, key)
	return merged, nil
}

func (c *DetailCache[T]) fallbackOrCached(key string, fallback *T) T {
	if fallback != nil {
		return *fallback
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries.Peek(key); ok {
		return e.Value
	}
	var zero T
	return zero
}

func (c *DetailCache[T]) storeLocked(key string, value T) Entry[T] {
	c.seq++
	e := Entry[T]{Value: value, Revision: c.seq, UpdatedAt: c.now()}
	if evicted := c.entries.Add(key, e); evicted {
		c.metrics.ObserveCache(metrics.CacheEviction)
	}
	return e
}

// Snapshot returns the cached entry for key without fetching and without
// refreshing its recency.
func (c *DetailCache[T]) Snapshot(key string) (Entry[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Peek(key)
}

// Put replaces the cached record for key.
func (c *DetailCache[T]) Put(key string, value T) Entry[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.lastErr, key)
	return c.storeLocked(key, value)
}

// CompareAndSwap stores value only if the current revision of key equals
// revision. Revision 0 expects no entry. It returns the entry that is cached
// after the call and whether the swap happened.
func (c *DetailCache[T]) CompareAndSwap(key string, revision uint64, value T) (Entry[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cur, _ := c.entries.Peek(key)
	if cur.Revision != revision {
		return cur, false
	}
	delete(c.lastErr, key)
	return c.storeLocked(key, value), true
}

// Invalidate drops the cached record and last error for key. A fetch already
// in flight still stores its result.
func (c *DetailCache[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Remove(key)
	delete(c.lastErr, key)
}

// Purge drops every record. Fetches in flight at the time finish but do not
// store their results.
func (c *DetailCache[T]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Purge()
	clear(c.lastErr)
	c.generation++
}

// LastError returns the error of the most recent failed fetch for key, or
// nil when the last fetch succeeded or the record was replaced since.
func (c *DetailCache[T]) LastError(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr[key]
}

// Len returns the number of cached records.
func (c *DetailCache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}
